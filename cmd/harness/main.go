// Command harness is a thin urfave/cli entrypoint over the Orchestrator
// boundary (spec §6): self-test, test-by-name, and list. It performs no
// flag-parsing logic of its own beyond what urfave/cli provides out of the
// box - progress printing and CLI validation are out of scope per spec.md's
// Non-goals.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/bitshash/smharness/config"
	"github.com/bitshash/smharness/hashes"
	"github.com/bitshash/smharness/orchestrator"
	"github.com/bitshash/smharness/ulog"
	"github.com/urfave/cli/v2"
)

func main() {
	logger := ulog.New("harness")

	app := &cli.App{
		Name:  "harness",
		Usage: "hash-function quality test harness",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "all", Usage: "run every sub-test"},
			&cli.BoolFlag{Name: "really-all", Usage: "run every sub-test including BIC and DiffDist"},
			&cli.Float64Flag{Name: "confidence", Value: 0.99999, Usage: "statistical confidence level"},
		},
		Commands: []*cli.Command{
			{
				Name:  "self-test",
				Usage: "verify every registered hash descriptor",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "validate", Usage: "also run the full sub-test suite, not just verification"},
				},
				Action: func(c *cli.Context) error {
					o := orchestrator.New(config.LoadSettings(), logger)
					cfg := configFromFlags(c)

					reports := o.SelfTest(context.Background(), cfg, c.Bool("validate"))
					failed := 0
					for _, r := range reports {
						status := "ok"
						if !r.VerificationOK {
							status = "VERIFICATION FAILED"
							failed++
						}
						fmt.Printf("%-20s %s\n", r.DescriptorName, status)
					}
					if failed > 0 {
						return cli.Exit(fmt.Sprintf("%d descriptor(s) failed verification", failed), 1)
					}
					return nil
				},
			},
			{
				Name:      "test",
				Usage:     "run the suite against a registered hash by name",
				ArgsUsage: "<name>",
				Action: func(c *cli.Context) error {
					name := c.Args().First()
					if name == "" {
						return cli.Exit("missing hash name", 2)
					}

					o := orchestrator.New(config.LoadSettings(), logger)
					cfg := configFromFlags(c)

					suite, ok := o.TestByName(context.Background(), name, cfg)
					if !ok {
						return cli.Exit(fmt.Sprintf("no such hash: %s", name), 2)
					}

					fmt.Printf("%s: %s\n", suite.DescriptorName, suite.OverallVerdict)
					for _, r := range suite.SubTests {
						fmt.Printf("  %-12s %s\n", r.Name, r.Verdict)
					}
					if suite.OverallVerdict == orchestrator.Fail {
						return cli.Exit("", 1)
					}
					return nil
				},
			},
			{
				Name:  "list",
				Usage: "list registered hash descriptors",
				Action: func(c *cli.Context) error {
					for _, d := range hashes.All {
						fmt.Printf("%-16s hash_bits=%-4d seed_bits=%-4d %s\n", d.Name, d.HashBits, d.SeedBits, d.Description)
					}
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}

func configFromFlags(c *cli.Context) *config.TestConfiguration {
	var opts []config.Option
	opts = append(opts, config.WithConfidence(c.Float64("confidence")))
	if c.Bool("all") {
		opts = append(opts, config.WithAll())
	}
	if c.Bool("really-all") {
		opts = append(opts, config.WithReallyAll())
	}
	return config.New(opts...)
}
