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
// github.com:starboundlabs/astrohash/internal/suffixarray/suffixarray.go

// Package suffixarray builds the sorted suffix-index permutation of a byte
// slice using prefix doubling. This is the one component of the mixing
// driver that the retrieved example pack carries no library for: Go's own
// standard library index/suffixarray package is built for substring search
// and does not expose the raw sorted-suffix permutation the finalizer
// needs, and no third-party suffix-array module turned up anywhere in the
// pack. Prefix doubling is the standard O(n log^2 n) construction.
package suffixarray

import "sort"

// Build returns the suffix array of data: a permutation of [0, len(data))
// such that data[sa[i]:] < data[sa[i+1]:] for every i (lexicographic order
// of suffixes). The returned slice always has length len(data).
func Build(data []byte) []int32 {
	n := len(data)
	sa := make([]int32, n)
	rank := make([]int32, n)
	tmp := make([]int32, n)

	for i := 0; i < n; i++ {
		sa[i] = int32(i)
		rank[i] = int32(data[i])
	}

	rankAt := func(i int32) int32 {
		if int(i) >= n {
			return -1
		}
		return rank[i]
	}

	for k := 1; k < n; k *= 2 {
		kk := int32(k)
		sort.Slice(sa, func(a, b int) bool {
			ia, ib := sa[a], sa[b]
			if rank[ia] != rank[ib] {
				return rank[ia] < rank[ib]
			}
			return rankAt(ia+kk) < rankAt(ib+kk)
		})

		tmp[sa[0]] = 0
		for i := 1; i < n; i++ {
			prev, cur := sa[i-1], sa[i]
			same := rank[prev] == rank[cur] && rankAt(prev+kk) == rankAt(cur+kk)
			if same {
				tmp[cur] = tmp[prev]
			} else {
				tmp[cur] = tmp[prev] + 1
			}
		}
		copy(rank, tmp)

		if rank[sa[n-1]] == int32(n-1) {
			break
		}
	}

	return sa
}
