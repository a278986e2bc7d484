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
// github.com:starboundlabs/astrohash/cmd/astrohash/main.go

package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/starboundlabs/astrohash"
)

func main() {
	filename := flag.String("file", "", "path to a file whose first 200 bytes (zero-padded) are hashed")
	hexInput := flag.String("hex", "", "hex-encoded input, zero-padded or truncated to 200 bytes")
	empty := flag.Bool("empty", false, "hash a 200-byte all-zero input")

	flag.Parse()

	var raw []byte
	switch {
	case *empty:
		raw = make([]byte, astrohash.InputSize)
	case *hexInput != "":
		decoded, err := hex.DecodeString(*hexInput)
		if err != nil {
			log.Fatal(err)
		}
		raw = decoded
	case *filename != "":
		data, err := os.ReadFile(*filename)
		if err != nil {
			log.Fatal(err)
		}
		raw = data
	default:
		fmt.Println("Expected one of --file, --hex, or --empty. Quitting.")
		fmt.Println()
		flag.Usage()
		return
	}

	padded := make([]byte, astrohash.InputSize)
	copy(padded, raw)

	in, err := astrohash.NewAlignedInput(padded)
	if err != nil {
		log.Fatal(err)
	}

	digest := astrohash.Hash(in, astrohash.NewScratchPad())
	fmt.Printf("0x%x\n", digest)
}
