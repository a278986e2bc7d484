// Copyright (c) 2026 Starbound Labs
//
// github.com:starboundlabs/astrohash/primitives/primitives_test.go

package primitives

import (
	"encoding/hex"
	"testing"
)

func TestSHA256KnownVectors(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
	}
	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			got := SHA256([]byte(c.input))
			want, err := hex.DecodeString(c.want)
			if err != nil {
				t.Fatalf("decoding want: %v", err)
			}
			if hex.EncodeToString(got[:]) != hex.EncodeToString(want) {
				t.Fatalf("SHA256(%q) = %x, want %x", c.input, got, want)
			}
		})
	}
}

func TestFNV1a64KnownVectors(t *testing.T) {
	cases := []struct {
		input string
		want  uint64
	}{
		{"", 0xcbf29ce484222325},
		{"a", 0xaf63dc4c8601ec8c},
	}
	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			got := FNV1a64([]byte(c.input))
			if got != c.want {
				t.Fatalf("FNV1a64(%q) = %#x, want %#x", c.input, got, c.want)
			}
		})
	}
}

func TestChaCha20Keystream256Deterministic(t *testing.T) {
	var key [32]byte
	for i := range key {
		key[i] = byte(i)
	}
	a := ChaCha20Keystream256(key)
	b := ChaCha20Keystream256(key)
	if a != b {
		t.Fatal("ChaCha20Keystream256 not deterministic for a fixed key")
	}

	key[0] ^= 1
	c := ChaCha20Keystream256(key)
	if a == c {
		t.Fatal("ChaCha20Keystream256 did not change with the key")
	}
}

func TestRC4RoundTrips(t *testing.T) {
	key := []byte("a reasonably long rc4 key material")
	plain := []byte("the quick brown fox jumps over the lazy dog")

	buf := make([]byte, len(plain))
	copy(buf, plain)

	enc := NewRC4(key)
	ApplyRC4(enc, buf)
	if string(buf) == string(plain) {
		t.Fatal("ApplyRC4 did not change the buffer")
	}

	dec := NewRC4(key)
	ApplyRC4(dec, buf)
	if string(buf) != string(plain) {
		t.Fatalf("RC4 did not round-trip: got %q, want %q", buf, plain)
	}
}

func TestXXH3SeededVariesWithSeed(t *testing.T) {
	input := []byte("astrohash")
	a := XXH3Seeded64(input, 0)
	b := XXH3Seeded64(input, 1)
	if a == b {
		t.Fatal("XXH3Seeded64 did not change with the seed")
	}
}

func TestSipHash24VariesWithKeys(t *testing.T) {
	input := []byte("astrohash")
	a := SipHash24(input, 0, 0)
	b := SipHash24(input, 1, 2)
	if a == b {
		t.Fatal("SipHash24 did not change with the keys")
	}
}

func TestLE32(t *testing.T) {
	got := LE32(0x01020304)
	want := [4]byte{0x04, 0x03, 0x02, 0x01}
	if got != want {
		t.Fatalf("LE32(0x01020304) = %v, want %v", got, want)
	}
}
