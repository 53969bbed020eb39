// Package ulog wraps zerolog the way the teacher's util package does -
// a named, levelled logger with a pretty console mode and a plain JSON
// mode, selected by configuration rather than hardcoded.
package ulog

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ordishs/gocore"
	"github.com/rs/zerolog"
)

const (
	colorRed    = 31
	colorGreen  = 32
	colorYellow = 33
	colorBlue   = 34
	colorWhite  = 37
	colorBold   = 1
)

// Logger is the harness-wide structured logger surface. Sub-tests and the
// orchestrator log through this interface; nothing in the statistical core
// writes to stdout directly.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	With() zerolog.Context
}

// ZLogger is the concrete zerolog-backed Logger.
type ZLogger struct {
	zerolog.Logger
	service string
}

// New builds a logger for the named component. Pretty console output is
// used unless PRETTY_LOGS is explicitly disabled via gocore's config
// source, matching the teacher's toggle.
func New(service string, logLevel ...string) *ZLogger {
	if service == "" {
		service = "smharness"
	}

	var z *ZLogger
	if gocore.Config().GetBool("PRETTY_LOGS", true) {
		z = prettyLogger(service)
	} else {
		z = &ZLogger{
			zerolog.New(os.Stdout).With().Timestamp().Logger(),
			service,
		}
	}

	if len(logLevel) > 0 {
		setLevel(logLevel[0], z)
	}

	return z
}

func setLevel(level string, z *ZLogger) {
	switch strings.ToUpper(level) {
	case "DEBUG":
		z.Logger = z.Logger.Level(zerolog.DebugLevel)
	case "WARN":
		z.Logger = z.Logger.Level(zerolog.WarnLevel)
	case "ERROR":
		z.Logger = z.Logger.Level(zerolog.ErrorLevel)
	default:
		z.Logger = z.Logger.Level(zerolog.InfoLevel)
	}
}

func prettyLogger(service string) *ZLogger {
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}

	output.FormatTimestamp = func(i interface{}) string {
		parsed, _ := time.Parse(time.RFC3339, fmt.Sprintf("%s", i))
		return parsed.Format("15:04:05")
	}

	output.FormatLevel = func(i interface{}) string {
		l := strings.ToUpper(fmt.Sprintf("%-6s", i))
		switch i {
		case "debug":
			l = colorize(l, colorBlue)
		case "info":
			l = colorize(l, colorGreen)
		case "warn":
			l = colorize(l, colorYellow)
		case "error", "fatal", "panic":
			l = colorize(l, colorRed)
		default:
			l = colorize(l, colorWhite)
		}
		return fmt.Sprintf("| %s|", l)
	}

	output.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("| %-10s| %s", service, i)
	}

	return &ZLogger{
		zerolog.New(output).With().Timestamp().Logger(),
		service,
	}
}

func (z *ZLogger) Debugf(format string, args ...interface{}) { z.Logger.Debug().Msgf(format, args...) }
func (z *ZLogger) Infof(format string, args ...interface{})  { z.Logger.Info().Msgf(format, args...) }
func (z *ZLogger) Warnf(format string, args ...interface{})  { z.Logger.Warn().Msgf(format, args...) }
func (z *ZLogger) Errorf(format string, args ...interface{}) { z.Logger.Error().Msgf(format, args...) }

// With creates a child logger context, used to attach sub-test/descriptor
// fields without a data race on the shared base logger.
func (z *ZLogger) With() zerolog.Context { return z.Logger.With() }

func colorize(s string, c int) string {
	if os.Getenv("NO_COLOR") != "" {
		return s
	}
	return fmt.Sprintf("\x1b[%dm%s\x1b[0m", c, s)
}

// Nop returns a Logger that discards everything, used by tests and by
// library callers who don't want harness output.
func Nop() *ZLogger {
	return &ZLogger{zerolog.New(nopWriter{}), "nop"}
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
