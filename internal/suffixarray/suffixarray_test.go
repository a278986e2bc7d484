// Copyright (c) 2026 Starbound Labs
//
// github.com:starboundlabs/astrohash/internal/suffixarray/suffixarray_test.go

package suffixarray

import (
	"bytes"
	"sort"
	"testing"
)

func bruteForce(data []byte) []int32 {
	n := len(data)
	sa := make([]int32, n)
	for i := range sa {
		sa[i] = int32(i)
	}
	sort.Slice(sa, func(a, b int) bool {
		return bytes.Compare(data[sa[a]:], data[sa[b]:]) < 0
	})
	return sa
}

func TestBuildMatchesBruteForce(t *testing.T) {
	cases := [][]byte{
		[]byte(""),
		[]byte("a"),
		[]byte("banana"),
		[]byte("mississippi"),
		[]byte{0, 0, 0, 0, 0},
		[]byte{5, 4, 3, 2, 1, 0},
	}
	for _, data := range cases {
		got := Build(data)
		want := bruteForce(data)
		if len(got) != len(want) {
			t.Fatalf("Build(%q) len = %d, want %d", data, len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("Build(%q)[%d] = %d, want %d", data, i, got[i], want[i])
			}
		}
	}
}

func TestBuildReturnsPermutation(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")
	sa := Build(data)
	seen := make([]bool, len(data))
	for _, idx := range sa {
		if seen[idx] {
			t.Fatalf("index %d appears more than once", idx)
		}
		seen[idx] = true
	}
}

func TestBuildOrdersSuffixes(t *testing.T) {
	data := []byte("banana")
	sa := Build(data)
	for i := 1; i < len(sa); i++ {
		if bytes.Compare(data[sa[i-1]:], data[sa[i]:]) >= 0 {
			t.Fatalf("suffix at sa[%d]=%d not strictly less than sa[%d]=%d", i-1, sa[i-1], i, sa[i])
		}
	}
}
