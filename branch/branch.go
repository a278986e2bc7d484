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
// github.com:starboundlabs/astrohash/branch/branch.go

// Package branch holds the 256-entry consensus dispatch table used by the
// AstroHash mixing driver and the small interpreter that applies it. Every
// entry is a fixed pipeline of four byte operators; the table itself lives
// in table_data.go and must never be edited by hand.
package branch

import "math/bits"

// opCode names one operator from the closed per-byte operator catalogue.
type opCode uint8

const (
	opNOT opCode = iota
	opXORP
	opANDP
	opADD
	opSUB97
	opMUL
	opSHL3
	opSHR3
	opROTL1
	opROTL3
	opROTL5
	opROTLT
	opREV
	opXORPOP
	opXORROT2
	opXORROT4
)

// apply runs a single operator against tmp, with pivot as the sampled value
// of data[pos2] for this step.
func apply(code opCode, tmp, pivot byte) byte {
	switch code {
	case opNOT:
		return ^tmp
	case opXORP:
		return tmp ^ pivot
	case opANDP:
		return tmp & pivot
	case opADD:
		return tmp + tmp
	case opSUB97:
		return tmp - (tmp ^ 97)
	case opMUL:
		return tmp * tmp
	case opSHL3:
		return tmp << (tmp & 3)
	case opSHR3:
		return tmp >> (tmp & 3)
	case opROTL1:
		return bits.RotateLeft8(tmp, 1)
	case opROTL3:
		return bits.RotateLeft8(tmp, 3)
	case opROTL5:
		return bits.RotateLeft8(tmp, 5)
	case opROTLT:
		return bits.RotateLeft8(tmp, int(tmp))
	case opREV:
		return bits.Reverse8(tmp)
	case opXORPOP:
		return tmp ^ byte(bits.OnesCount8(tmp))
	case opXORROT2:
		return tmp ^ bits.RotateLeft8(tmp, 2)
	case opXORROT4:
		return tmp ^ bits.RotateLeft8(tmp, 4)
	default:
		panic("branch: unknown operator code")
	}
}

// NumEntries is the fixed size of the consensus dispatch table.
const NumEntries = 256

// Pipeline runs the four-operator sequence selected by code once against
// tmp, using pivot as the sampled comparison byte. The driver calls this
// once per byte in [pos1, pos2); it is exposed separately from Apply so
// branches with a per-step side effect (branch 253) can interleave their
// extra work between steps.
func Pipeline(code byte, tmp, pivot byte) byte {
	entry := table[code]
	for _, op := range entry {
		tmp = apply(op, tmp, pivot)
	}
	return tmp
}

// Apply mutates data[pos1:pos2] in place by running the four-operator
// pipeline selected by code against each byte, sampling data[pos2] as the
// pivot for every step (read-only; pos2 itself is never written by this
// loop). It is the straight-line form of the dispatch used by every branch
// that has no per-step side effect.
func Apply(code byte, data *[256]byte, pos1, pos2 byte) {
	pivot := data[pos2]
	for i := int(pos1); i < int(pos2); i++ {
		data[i] = Pipeline(code, data[i], pivot)
	}
}

// IsRehashBranch reports whether code is the branch (253) that performs an
// additional per-step lhash rehash alongside its operator pipeline.
func IsRehashBranch(code byte) bool {
	return code == 253
}

// IsRekeyBranch reports whether code is one of the aliased branches
// (254, 255) that rekey the shared RC4 state before running their pipeline.
func IsRekeyBranch(code byte) bool {
	return code == 254 || code == 255
}
