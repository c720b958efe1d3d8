// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package gsacads

import "sort"

// refSuffixArray builds a suffix array by plain prefix doubling and is the
// independent reference construction used to cross-check the double-sort
// engine. Positions are ranked by their first symbol, then repeatedly
// re-sorted by the rank pair (rank[p], rank[p+h]) with h doubling each
// round; after a round the ranks encode the order of the length-2h
// prefixes, so the array is done as soon as all ranks are distinct.
// Positions past the end rank below everything, which makes a shorter
// suffix sort before its extensions.
//
// It shares no machinery with the engine: no groups, no markers, no radix
// sorting, and O(n log^2 n) runtime, which is fine for a checker.
func refSuffixArray(text []int32) []int32 {
	n := len(text)
	if n == 0 {
		return []int32{}
	}
	sa := make([]int32, n)
	rank := make([]int32, n)
	next := make([]int32, n)
	for i := range sa {
		sa[i] = int32(i)
	}
	sort.Slice(sa, func(i, j int) bool {
		return text[sa[i]] < text[sa[j]]
	})
	rank[sa[0]] = 0
	for i := 1; i < n; i++ {
		rank[sa[i]] = rank[sa[i-1]]
		if text[sa[i]] != text[sa[i-1]] {
			rank[sa[i]]++
		}
	}
	for h := int32(1); ; h *= 2 {
		rankAt := func(p int32) int32 {
			if int(p) < n {
				return rank[p]
			}
			return -1
		}
		sort.Slice(sa, func(i, j int) bool {
			a, b := sa[i], sa[j]
			if rank[a] != rank[b] {
				return rank[a] < rank[b]
			}
			return rankAt(a+h) < rankAt(b+h)
		})
		next[sa[0]] = 0
		for i := 1; i < n; i++ {
			next[sa[i]] = next[sa[i-1]]
			if rank[sa[i]] != rank[sa[i-1]] || rankAt(sa[i]+h) != rankAt(sa[i-1]+h) {
				next[sa[i]]++
			}
		}
		copy(rank, next)
		if int(rank[sa[n-1]]) == n-1 {
			break
		}
	}
	return sa
}
