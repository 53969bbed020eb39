package hashes

import (
	"encoding/binary"

	"github.com/bitshash/smharness/blob"
	"github.com/bitshash/smharness/hashsurface"
	"github.com/dchest/siphash"
)

// SipHash64 wraps github.com/dchest/siphash's 64-bit SipHash-2-4, keyed by
// a 128-bit seed split into two 64-bit halves (k0, k1) - concretely
// grounded on Scenario B of spec.md §8, which names SipHash-64 directly.
var SipHash64 = &hashsurface.Descriptor{
	Name:        "siphash-2-4",
	Description: "dchest/siphash 64-bit SipHash-2-4, 128-bit seed as two key halves",
	HashBits:    64,
	SeedBits:    128,
	HashFn:      sipHash64Hash,
}

func sipHash64Hash(key []byte, seed blob.Blob) blob.Blob {
	seedBytes := seed.Bytes()
	buf := make([]byte, 16)
	copy(buf, seedBytes)

	k0 := binary.LittleEndian.Uint64(buf[0:8])
	k1 := binary.LittleEndian.Uint64(buf[8:16])

	v := siphash.Hash(k0, k1, key)
	return blob.FromUint64(64, v)
}
