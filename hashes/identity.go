// Package hashes provides concrete HashDescriptor bindings exercising the
// Hash Surface end-to-end: a deliberately bad reference hash plus a handful
// of real third-party hash libraries (spec §4.11).
package hashes

import (
	"encoding/binary"

	"github.com/bitshash/smharness/blob"
	"github.com/bitshash/smharness/hashsurface"
)

// Identity32 is Scenario A's bad reference hash: the first 32 bits of the
// key XORed with the seed, with no mixing at all. The harness must fail
// this hash on nearly every sub-test (spec §8 Scenario A).
var Identity32 = &hashsurface.Descriptor{
	Name:        "identity-32",
	Description: "first 32 bits of key XOR seed - deliberately unmixed reference hash",
	HashBits:    32,
	SeedBits:    32,
	HashFn:      identityHash,
}

func identityHash(key []byte, seed blob.Blob) blob.Blob {
	var buf [4]byte
	copy(buf[:], key)
	v := binary.LittleEndian.Uint32(buf[:])
	return blob.FromUint64(32, uint64(v)^seed.Low64())
}
