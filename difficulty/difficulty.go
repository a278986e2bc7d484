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
// github.com:starboundlabs/astrohash/difficulty/difficulty.go

// Package difficulty converts between AstroHash's 32-byte digest space and
// the compact ("nBits") target encoding used to gate proof-of-work
// acceptance, the reason the digest exists in the first place.
package difficulty

import (
	"errors"
	"math/big"
)

// TargetSize is the byte width of a full target, matching digest size.
const TargetSize = 32

// ErrHashAboveTarget is returned by ValidateHash when a digest, read as a
// big-endian integer, exceeds the target.
var ErrHashAboveTarget = errors.New("astrohash/difficulty: hash above target")

// ErrInvalidCompactBits is returned when a compact-bits value decodes to a
// target wider than TargetSize bytes.
var ErrInvalidCompactBits = errors.New("astrohash/difficulty: compact bits overflow target size")

// CompactToTarget decodes a compact ("nBits") uint32 into a full big-endian
// target. The high byte is the number of significant bytes, the low three
// bytes are the mantissa, left-shifted into place.
func CompactToTarget(bits uint32) (*big.Int, error) {
	size := int(bits >> 24)
	mantissa := new(big.Int).SetUint64(uint64(bits & 0x007fffff))
	if bits&0x00800000 != 0 {
		mantissa.SetUint64(0)
	}

	target := new(big.Int)
	switch {
	case size <= 3:
		shift := uint(8 * (3 - size))
		target.Rsh(mantissa, shift)
	default:
		shift := uint(8 * (size - 3))
		target.Lsh(mantissa, shift)
	}

	if target.BitLen() > TargetSize*8 {
		return nil, ErrInvalidCompactBits
	}
	return target, nil
}

// TargetToCompact encodes a full target as compact ("nBits").
func TargetToCompact(target *big.Int) uint32 {
	if target.Sign() == 0 {
		return 0
	}
	raw := target.Bytes()
	size := uint32(len(raw))

	var mantissa uint32
	switch {
	case len(raw) >= 3:
		mantissa = uint32(raw[0])<<16 | uint32(raw[1])<<8 | uint32(raw[2])
	case len(raw) == 2:
		mantissa = uint32(raw[0])<<16 | uint32(raw[1])<<8
	default:
		mantissa = uint32(raw[0]) << 16
	}

	if mantissa&0x00800000 != 0 {
		mantissa >>= 8
		size++
	}
	return size<<24 | mantissa
}

// DifficultyToTarget converts a difficulty value into a full target, where
// target = maxTarget / difficulty. A difficulty of zero is treated as one.
func DifficultyToTarget(difficulty float64, maxTarget *big.Int) *big.Int {
	if difficulty <= 0 {
		difficulty = 1
	}
	diffRat := new(big.Float).SetFloat64(difficulty)
	maxRat := new(big.Float).SetInt(maxTarget)
	result := new(big.Float).Quo(maxRat, diffRat)
	target, _ := result.Int(nil)
	return target
}

// TargetToDifficulty is the inverse of DifficultyToTarget.
func TargetToDifficulty(target, maxTarget *big.Int) float64 {
	if target.Sign() == 0 {
		target = big.NewInt(1)
	}
	targetF := new(big.Float).SetInt(target)
	maxF := new(big.Float).SetInt(maxTarget)
	result := new(big.Float).Quo(maxF, targetF)
	f, _ := result.Float64()
	return f
}

// ValidateHash reports whether digest, interpreted as a big-endian unsigned
// integer, is at or below target.
func ValidateHash(digest [32]byte, target *big.Int) error {
	value := new(big.Int).SetBytes(digest[:])
	if value.Cmp(target) > 0 {
		return ErrHashAboveTarget
	}
	return nil
}
