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
// github.com:starboundlabs/astrohash/header/header.go

// Package header provides the fixed-layout block header that serializes to
// exactly the 200-byte buffer AstroHash consumes as its input, and uses
// AstroHash as the header's identity function.
package header

import (
	"encoding/binary"

	"github.com/starboundlabs/astrohash"
)

// Size is the serialized header length, matching astrohash.InputSize.
const Size = astrohash.InputSize

// BlockHeader is a minimal proof-of-work header: enough fields to anchor a
// block in its chain/DAG and gate it behind a nonce search, with the
// remainder of the 200-byte buffer reserved for future extension.
type BlockHeader struct {
	Version    uint32
	PrevHash   [32]byte
	MerkleRoot [32]byte
	Timestamp  uint64
	Bits       uint32
	Nonce      uint64
}

// Serialize writes the header fields into a canonical 200-byte little-endian
// layout. Bytes beyond the populated fields are left zero; this is always
// exactly Size bytes regardless of field contents.
func (h *BlockHeader) Serialize() [Size]byte {
	var buf [Size]byte
	binary.LittleEndian.PutUint32(buf[0:4], h.Version)
	copy(buf[4:36], h.PrevHash[:])
	copy(buf[36:68], h.MerkleRoot[:])
	binary.LittleEndian.PutUint64(buf[68:76], h.Timestamp)
	binary.LittleEndian.PutUint32(buf[76:80], h.Bits)
	binary.LittleEndian.PutUint64(buf[80:88], h.Nonce)
	return buf
}

// Hash serializes h and computes its AstroHash digest, the block's identity.
func (h *BlockHeader) Hash() [32]byte {
	buf := h.Serialize()
	in, err := astrohash.NewAlignedInput(buf[:])
	if err != nil {
		// Serialize always produces exactly Size == astrohash.InputSize
		// bytes, so construction cannot fail.
		panic(err)
	}
	return astrohash.Hash(in, astrohash.NewScratchPad())
}
