// Copyright (c) 2026 Starbound Labs
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// github.com:starboundlabs/astrohash/primitives/primitives.go

// Package primitives wraps the fixed-parameter hash and cipher primitives
// that the AstroHash mixing driver is built from. Every function here is a
// thin adapter over a single well-known implementation; none of them
// reimplement cryptographic or hashing internals.
package primitives

import (
	"crypto/rc4"
	"crypto/sha256"
	"encoding/binary"
	"hash/fnv"

	"github.com/dchest/siphash"
	"github.com/zeebo/xxh3"
	"golang.org/x/crypto/chacha20"
)

// SHA256 returns the SHA-256 digest of input.
func SHA256(input []byte) [32]byte {
	return sha256.Sum256(input)
}

// ChaCha20Keystream256 returns 256 bytes of ChaCha20 keystream produced by
// encrypting an all-zero plaintext under key with a fixed twelve-byte
// all-zero nonce. The nonce is fixed by construction: every call reseeds the
// key, so nonce reuse carries none of the usual stream-cipher risk.
func ChaCha20Keystream256(key [32]byte) [256]byte {
	cipher, err := chacha20.NewUnauthenticatedCipher(key[:], make([]byte, chacha20.NonceSize))
	if err != nil {
		// key is always 32 bytes and the nonce is always chacha20.NonceSize;
		// construction cannot fail for these fixed-size inputs.
		panic(err)
	}
	var out [256]byte
	cipher.XORKeyStream(out[:], out[:])
	return out
}

// NewRC4 keys an RC4 cipher from key. RC4 is used here purely as a
// deterministic keystream generator driven by mixing-driver state, never as
// a confidentiality primitive.
func NewRC4(key []byte) *rc4.Cipher {
	c, err := rc4.NewCipher(key)
	if err != nil {
		// rc4.NewCipher only fails for key lengths outside [1,256], and every
		// caller here keys from the full 256-byte working buffer.
		panic(err)
	}
	return c
}

// ApplyRC4 runs the keystream of c over buf in place.
func ApplyRC4(c *rc4.Cipher, buf []byte) {
	c.XORKeyStream(buf, buf)
}

// FNV1a64 returns the 64-bit FNV-1a hash of input.
func FNV1a64(input []byte) uint64 {
	h := fnv.New64a()
	h.Write(input)
	return h.Sum64()
}

// XXH3Seeded64 returns the seeded 64-bit XXH3 hash of input.
func XXH3Seeded64(input []byte, seed uint64) uint64 {
	return xxh3.HashSeed(input, seed)
}

// SipHash24 returns the SipHash-2-4 of input keyed by k0, k1.
func SipHash24(input []byte, k0, k1 uint64) uint64 {
	return siphash.Hash(k0, k1, input)
}

// LE32 encodes v as four little-endian bytes, used by the finalizer when
// serializing suffix-array indices for consensus-stable hashing regardless
// of host byte order.
func LE32(v uint32) [4]byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return b
}
