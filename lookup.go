// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package gsacads

import "sort"

// SuffixArray pairs a sentinel-framed text with its suffix array and
// answers substring queries over it.
type SuffixArray[I Index, S Symbol] struct {
	text []S
	sa   []I
}

// NewSuffixArray builds the suffix array of the sentinel-framed text with
// the default engine configuration and wraps it for queries. The text must
// satisfy the sentinel contract of Builder.Build.
func NewSuffixArray[I Index, S Symbol](text []S) (*SuffixArray[I, S], error) {
	sa := make([]I, len(text))
	if err := BuildDS1(text, sa); err != nil {
		return nil, err
	}
	return &SuffixArray[I, S]{text: text, sa: sa}, nil
}

// SA exposes the underlying suffix array. Callers must not modify it.
func (x *SuffixArray[I, S]) SA() []I {
	return x.sa
}

// comparePrefix compares a suffix with a prefix lexicographically. A
// suffix that runs out while matching counts as smaller; a prefix that
// runs out counts as a match.
func comparePrefix[S Symbol](suf, prefix []S) int {
	minLen := len(suf)
	if minLen > len(prefix) {
		minLen = len(prefix)
	}
	for i := 0; i < minLen; i++ {
		if suf[i] < prefix[i] {
			return -1
		}
		if suf[i] > prefix[i] {
			return 1
		}
	}
	if len(suf) < len(prefix) {
		return -1
	}
	return 0
}

// Lookup returns the start positions of all suffixes beginning with
// prefix, in lexicographical suffix order. An empty prefix matches every
// suffix, the sentinel ones included. The returned slice aliases the
// suffix array and must not be modified.
func (x *SuffixArray[I, S]) Lookup(prefix []S) []I {
	if len(prefix) == 0 {
		return x.sa
	}
	// Left boundary where suffix >= prefix, right boundary where
	// suffix > prefix.
	l := sort.Search(len(x.sa), func(i int) bool {
		return comparePrefix(x.text[x.sa[i]:], prefix) >= 0
	})
	r := l + sort.Search(len(x.sa)-l, func(i int) bool {
		return comparePrefix(x.text[x.sa[l+i]:], prefix) > 0
	})
	return x.sa[l:r]
}

// LookupTextOrder returns the matches of Lookup sorted by text position.
func (x *SuffixArray[I, S]) LookupTextOrder(prefix []S) []I {
	indices := x.Lookup(prefix)
	cp := make([]I, len(indices))
	copy(cp, indices)
	sort.Slice(cp, func(i, j int) bool {
		return cp[i] < cp[j]
	})
	return cp
}
