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
// github.com:starboundlabs/astrohash/cmd/astrobench/main.go

// astrobench measures AstroHash throughput, in the style of the reference
// implementation's own benchmark_cpu_hash test: a counter-swept sequence of
// inputs, timed end to end, reported as hashes per second.
package main

import (
	"flag"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/starboundlabs/astrohash"
)

func main() {
	iterations := flag.Int("iterations", 1000, "number of hashes to compute")
	workers := flag.Int("workers", runtime.GOMAXPROCS(0), "number of concurrent workers")
	flag.Parse()

	n := *iterations
	jobs := make(chan int, n)
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)

	var wg sync.WaitGroup
	start := time.Now()
	for w := 0; w < *workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			scratch := astrohash.NewScratchPad()
			for i := range jobs {
				data := make([]byte, astrohash.InputSize)
				data[0] = byte(i)
				data[1] = byte(i >> 8)
				in, err := astrohash.NewAlignedInput(data)
				if err != nil {
					panic(err)
				}
				astrohash.Hash(in, scratch)
			}
		}()
	}
	wg.Wait()
	elapsed := time.Since(start)

	fmt.Printf("Time took: %s\n", elapsed)
	fmt.Printf("H/s: %.2f\n", float64(n)/elapsed.Seconds())
	fmt.Printf("ms per hash: %.3f\n", float64(elapsed.Milliseconds())/float64(n))
}
