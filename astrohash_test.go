// Copyright (c) 2026 Starbound Labs
//
// github.com:starboundlabs/astrohash/astrohash_test.go

package astrohash

import (
	"bytes"
	"encoding/hex"
	"errors"
	"math/bits"
	"testing"
)

func mustInput(t *testing.T, data []byte) *AlignedInput {
	t.Helper()
	in, err := NewAlignedInput(data)
	if err != nil {
		t.Fatalf("NewAlignedInput: %v", err)
	}
	return in
}

func TestZeroInputVector(t *testing.T) {
	in := mustInput(t, make([]byte, InputSize))
	got := Hash(in, NewScratchPad())

	want, err := hex.DecodeString("0ebbbd8a31edadfe098f2d770d84b719588675ab88a0a17067d00a8f36182265")
	if err != nil {
		t.Fatalf("decoding expected vector: %v", err)
	}
	if !bytes.Equal(got[:], want) {
		t.Fatalf("Hash(zero) = %x, want %x", got, want)
	}
}

func TestASCIITagVector(t *testing.T) {
	data := make([]byte, InputSize)
	copy(data, []byte("xelis-hashing-algorithm"))
	in := mustInput(t, data)
	got := Hash(in, NewScratchPad())

	want, err := hex.DecodeString("6a6aad08cf3b766cb0c4097cfac3033d1e92eeb6585373518b38031cb0564415")
	if err != nil {
		t.Fatalf("decoding expected vector: %v", err)
	}
	if !bytes.Equal(got[:], want) {
		t.Fatalf("Hash(tag) = %x, want %x", got, want)
	}
}

func TestSingleBitInputIsDeterministic(t *testing.T) {
	data := make([]byte, InputSize)
	data[0] = 0x01
	in := mustInput(t, data)

	first := Hash(in, NewScratchPad())
	second := Hash(in, NewScratchPad())
	if first != second {
		t.Fatalf("Hash(single-bit) not deterministic: %x != %x", first, second)
	}
}

func TestCounterSweepDistinctness(t *testing.T) {
	seen := make(map[[32]byte]int, 1001)
	for i := 0; i <= 1000; i++ {
		data := make([]byte, InputSize)
		data[0] = byte(i & 0xFF)
		data[1] = byte((i >> 8) & 0xFF)
		in := mustInput(t, data)

		digest := Hash(in, NewScratchPad())
		if prior, exists := seen[digest]; exists {
			t.Fatalf("collision between counter %d and %d: %x", prior, i, digest)
		}
		seen[digest] = i
	}
}

func TestHashIsPureFunctionOfInput(t *testing.T) {
	data := make([]byte, InputSize)
	copy(data, []byte("repeat-me"))
	in := mustInput(t, data)

	a := Hash(in, NewScratchPad())
	b := Hash(in, NewScratchPad())
	if a != b {
		t.Fatalf("two calls with fresh scratchpads diverged: %x != %x", a, b)
	}
}

func TestReusedScratchPadMatchesFresh(t *testing.T) {
	dataX := make([]byte, InputSize)
	copy(dataX, []byte("first-call"))
	dataY := make([]byte, InputSize)
	copy(dataY, []byte("second-call"))

	inX := mustInput(t, dataX)
	inY := mustInput(t, dataY)

	reused := NewScratchPad()
	_ = Hash(inX, reused)
	fromReused := Hash(inY, reused)

	fromFresh := Hash(inY, NewScratchPad())
	if fromReused != fromFresh {
		t.Fatalf("reusing a scratchpad changed the digest: %x != %x", fromReused, fromFresh)
	}
}

func TestAvalanche(t *testing.T) {
	const samples = 1000
	var totalDistance int
	base := make([]byte, InputSize)
	for n := 0; n < samples; n++ {
		data := make([]byte, InputSize)
		copy(data, base)
		data[n%InputSize] ^= 1 << (n % 8)

		a := Hash(mustInput(t, base), NewScratchPad())
		b := Hash(mustInput(t, data), NewScratchPad())

		dist := 0
		for i := range a {
			dist += bits.OnesCount8(a[i] ^ b[i])
		}
		totalDistance += dist
	}

	mean := float64(totalDistance) / float64(samples)
	if mean < 96 || mean > 160 {
		t.Fatalf("mean Hamming distance %.1f outside expected avalanche band (96-160)", mean)
	}
}

func TestNewAlignedInputRejectsWrongLength(t *testing.T) {
	_, err := NewAlignedInput(make([]byte, InputSize-1))
	if err == nil {
		t.Fatal("expected an error for a short input")
	}
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected a *FormatError, got %T", err)
	}
	if fe.Want != InputSize || fe.Got != InputSize-1 {
		t.Fatalf("unexpected FormatError fields: %+v", fe)
	}
}
