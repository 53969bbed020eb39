package hashes

import (
	"hash/fnv"

	"github.com/bitshash/smharness/blob"
	"github.com/bitshash/smharness/hashsurface"
)

// FNV1a32 wraps the standard library's FNV-1a 32-bit hash as a
// dependency-free reference point, used where a baseline unaffected by any
// third-party hash bug clarifies a result. Like xxhash, it has no native
// seed parameter, so the seed is folded in as a 4-byte prefix.
var FNV1a32 = &hashsurface.Descriptor{
	Name:        "fnv1a-32",
	Description: "stdlib hash/fnv FNV-1a, seed folded in as a 4-byte prefix",
	HashBits:    32,
	SeedBits:    32,
	HashFn:      fnv1a32Hash,
}

func fnv1a32Hash(key []byte, seed blob.Blob) blob.Blob {
	h := fnv.New32a()
	seedBytes := seed.Bytes()
	buf := make([]byte, 4)
	copy(buf, seedBytes)
	h.Write(buf)
	h.Write(key)
	return blob.FromUint64(32, uint64(h.Sum32()))
}
