// Copyright (c) 2026 Starbound Labs
//
// github.com:starboundlabs/astrohash/difficulty/difficulty_test.go

package difficulty

import (
	"math/big"
	"testing"
)

func TestCompactToTargetRoundTrip(t *testing.T) {
	cases := []uint32{
		0x1d00ffff,
		0x1b0404cb,
		0x207fffff,
	}
	for _, bits := range cases {
		target, err := CompactToTarget(bits)
		if err != nil {
			t.Fatalf("CompactToTarget(%#x): %v", bits, err)
		}
		got := TargetToCompact(target)
		if got != bits {
			t.Errorf("TargetToCompact(CompactToTarget(%#x)) = %#x, want %#x", bits, got, bits)
		}
	}
}

func TestValidateHash(t *testing.T) {
	target := big.NewInt(0)
	target.SetString("00000000ffff0000000000000000000000000000000000000000000000000000", 16)

	var low [32]byte
	low[31] = 1
	if err := ValidateHash(low, target); err != nil {
		t.Fatalf("ValidateHash(low) = %v, want nil", err)
	}

	var high [32]byte
	for i := range high {
		high[i] = 0xff
	}
	if err := ValidateHash(high, target); err == nil {
		t.Fatal("ValidateHash(high) = nil, want ErrHashAboveTarget")
	}
}

func TestDifficultyTargetRoundTrip(t *testing.T) {
	maxTarget := new(big.Int).Lsh(big.NewInt(1), 224)
	target := DifficultyToTarget(2.0, maxTarget)
	diff := TargetToDifficulty(target, maxTarget)
	if diff < 1.9 || diff > 2.1 {
		t.Fatalf("TargetToDifficulty(DifficultyToTarget(2.0)) = %f, want ~2.0", diff)
	}
}

func TestCompactToTargetOverflow(t *testing.T) {
	if _, err := CompactToTarget(0xff7fffff); err != ErrInvalidCompactBits {
		t.Fatalf("expected ErrInvalidCompactBits, got %v", err)
	}
}
