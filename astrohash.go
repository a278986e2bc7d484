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
// github.com:starboundlabs/astrohash/astrohash.go

// Package astrohash implements the AstroHash proof-of-work function: a
// 200-byte-input, 32-byte-output hash built from data-dependent branching,
// keystream-cipher rekeying, and a suffix-array-driven finalization step.
// The digest is used as block identity in a consensus protocol, so every
// arithmetic choice below (including ones that look like bugs) is fixed by
// consensus and must not be "simplified."
package astrohash

import (
	"github.com/starboundlabs/astrohash/branch"
	"github.com/starboundlabs/astrohash/internal/suffixarray"
	"github.com/starboundlabs/astrohash/primitives"
)

// maxTries is the iteration count that, once exceeded, ends the loop: 260
// ordinary iterations plus a 16-iteration grace window. The exit check runs
// after an iteration's work, so at most maxTries+1 iterations run.
const maxTries = 260 + 16

// minTriesForEarlyStop is the iteration count at or below which the
// data[255] early-stop condition is not even consulted.
const minTriesForEarlyStop = 260

// Hash computes the 32-byte AstroHash digest of the 200-byte input held by
// in, using scratch as the iteration scratchpad. scratch may be freshly
// allocated or reused from a prior call; it is zeroed at the start of every
// call (each suffix array runs over the whole buffer, including the part this
// call has not written yet, which a prior call may have filled), so reuse
// never changes the result.
func Hash(in *AlignedInput, scratch *ScratchPad) [32]byte {
	inputBytes := in.Bytes()

	// Step 1+2: expand the input through SHA-256 then a ChaCha20 keystream.
	data := primitives.ChaCha20Keystream256(primitives.SHA256(inputBytes[:]))

	// Step 3: key RC4 from the expanded buffer and run it once over itself.
	rc4 := primitives.NewRC4(data[:])
	primitives.ApplyRC4(rc4, data[:])

	// Step 4: seed the rolling accumulators.
	lhash := primitives.FNV1a64(data[:])
	prevLhash := lhash
	var tries uint64

	// suffixAttempt's update in the reference reads
	// "(lhash as u8) & 0b1111111 + 128", where '+' binds tighter than '&' in
	// the reference language: (lhash as u8) & (0x7F+128) == (lhash as u8) &
	// 0xFF == (lhash as u8). The "+128" contributes nothing; it is reproduced
	// here as the resolved arithmetic rather than as Go code that merely
	// looks like the original surprising expression.
	suffixAttempt := uint64(byte(lhash))

	pad := &scratch.data
	clear(pad[:])

	for {
		tries++

		combined := byte(prevLhash ^ lhash)
		r := primitives.XXH3Seeded64([]byte{combined}, tries)
		branchCode := byte(r)
		pos1 := byte(r >> 8)
		pos2 := byte(r >> 16)

		if pos1 > pos2 {
			pos1, pos2 = pos2, pos1
		}
		if pos2-pos1 > 64 {
			pos2 = pos1 + ((pos2 - pos1) & 0x1f)
		}

		switch {
		case branch.IsRekeyBranch(branchCode):
			rc4 = primitives.NewRC4(data[:])
			branch.Apply(branchCode, &data, pos1, pos2)
		case branch.IsRehashBranch(branchCode):
			pivot := data[pos2]
			for i := int(pos1); i < int(pos2); i++ {
				data[i] = branch.Pipeline(branchCode, data[i], pivot)
				prevLhash += lhash
				lhash = primitives.XXH3Seeded64(data[:pos2], 0)
			}
		default:
			branch.Apply(branchCode, &data, pos1, pos2)
		}

		dpMinus := data[pos1] - data[pos2]

		if dpMinus < 0x10 {
			prevLhash += lhash
			lhash = primitives.XXH3Seeded64(data[:pos2], tries)
		}
		if dpMinus < 0x20 {
			prevLhash += lhash
			lhash = primitives.FNV1a64(data[:pos2])
		}
		if dpMinus < 0x30 {
			prevLhash += lhash
			lhash = primitives.SipHash24(data[:pos2], tries, prevLhash)
		}
		if dpMinus <= 0x40 {
			primitives.ApplyRC4(rc4, data[:])
		}

		data[255] ^= data[pos1] ^ data[pos2]

		copy(pad[(tries-1)*256:tries*256], data[:])

		if tries == suffixAttempt {
			suffixAttempt += uint64(byte(lhash))

			sa := suffixarray.Build(pad[:])
			saBytes := make([]byte, 0, len(sa)*4)
			for _, idx := range sa {
				le := primitives.LE32(uint32(idx))
				saBytes = append(saBytes, le[:]...)
			}

			data = primitives.ChaCha20Keystream256(primitives.SHA256(saBytes))
		}

		if tries > maxTries || (data[255] >= 0xf0 && tries > minTriesForEarlyStop) {
			break
		}
	}

	dataLen := (tries-4)*256 + (uint64(data[253])<<8|uint64(data[254]))&0x3ff
	return primitives.SHA256(pad[:dataLen])
}
