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
// github.com:starboundlabs/astrohash/aligned.go

package astrohash

import "fmt"

// InputSize is the fixed length, in bytes, of an AstroHash input.
const InputSize = 200

// FormatError reports that a byte slice could not be viewed as a
// fixed-size AstroHash collaborator buffer. It is the only error kind the
// package produces; the mixing driver itself cannot fail on well-formed
// input.
type FormatError struct {
	Want int
	Got  int
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("astrohash: expected %d bytes, got %d", e.Want, e.Got)
}

// AlignedInput is a fixed 200-byte view over the bytes fed to Hash. Its only
// contract is to expose a contiguous 200-byte view; "aligned" names the
// 8-byte-alignment wrapper the reference implementation uses to satisfy its
// own runtime's casting requirements; Go's slices need no such alignment
// dance, so this type only preserves the fixed-size contract.
type AlignedInput struct {
	data [InputSize]byte
}

// NewAlignedInput copies data into a fixed 200-byte buffer. It returns a
// *FormatError if data is not exactly InputSize bytes long.
func NewAlignedInput(data []byte) (*AlignedInput, error) {
	if len(data) != InputSize {
		return nil, &FormatError{Want: InputSize, Got: len(data)}
	}
	in := &AlignedInput{}
	copy(in.data[:], data)
	return in, nil
}

// Bytes returns a pointer to the fixed 200-byte view.
func (in *AlignedInput) Bytes() *[InputSize]byte {
	return &in.data
}

// maxLength is the largest scratchpad offset the mixing driver may reach,
// fixed by consensus: (256 * 384) - 1.
const maxLength = 256*384 - 1

// ScratchPadSize is the fixed byte length of a ScratchPad.
const ScratchPadSize = maxLength + 64

// ScratchPad is a reusable accumulation buffer for one AstroHash invocation.
// It may be passed to successive Hash calls; Hash zeroes it at the start of
// every call, so reuse never changes the digest a fresh ScratchPad would
// have produced.
type ScratchPad struct {
	data [ScratchPadSize]byte
}

// NewScratchPad returns a freshly zeroed ScratchPad.
func NewScratchPad() *ScratchPad {
	return &ScratchPad{}
}
