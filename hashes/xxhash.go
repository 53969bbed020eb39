package hashes

import (
	"github.com/bitshash/smharness/blob"
	"github.com/bitshash/smharness/hashsurface"
	"github.com/cespare/xxhash/v2"
)

// XXHash64 wraps github.com/cespare/xxhash/v2. The library exposes no
// public seed parameter, so the seed is folded into the input by hashing
// an 8-byte little-endian seed prefix followed by the key - the same
// technique used for the FNV binding (hashes/fnv.go).
var XXHash64 = &hashsurface.Descriptor{
	Name:        "xxhash-64",
	Description: "cespare/xxhash/v2, seed folded in as an 8-byte prefix",
	HashBits:    64,
	SeedBits:    64,
	HashFn:      xxhash64Hash,
}

func xxhash64Hash(key []byte, seed blob.Blob) blob.Blob {
	d := xxhash.New()
	seedBytes := seed.Bytes()
	buf := make([]byte, 8)
	copy(buf, seedBytes)
	d.Write(buf)
	d.Write(key)
	return blob.FromUint64(64, d.Sum64())
}
