package hashes

import (
	"github.com/bitshash/smharness/blob"
	"github.com/bitshash/smharness/hashsurface"
	"github.com/spaolacci/murmur3"
)

// Murmur32 wraps github.com/spaolacci/murmur3's 32-bit seeded hash.
var Murmur32 = &hashsurface.Descriptor{
	Name:        "murmur3-32",
	Description: "spaolacci/murmur3 MurmurHash3_x86_32",
	HashBits:    32,
	SeedBits:    32,
	HashFn:      murmur32Hash,
}

func murmur32Hash(key []byte, seed blob.Blob) blob.Blob {
	v := murmur3.Sum32WithSeed(key, uint32(seed.Low32()))
	return blob.FromUint64(32, uint64(v))
}
