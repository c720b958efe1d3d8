// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package gsacads

import "sort"

// p1Group describes a contiguous SA interval [start, start+size) whose
// members share a common prefix of length lyndon. resolvable means the
// membership of the interval is already determined; finalized means the
// order inside it is fixed.
type p1Group[I Index] struct {
	start, size I
	lyndon      I
	resolvable  bool
	finalized   bool
}

// p2Group is a phase-1 output group consumed by phase 2, stripped of the
// phase-1 state flags.
type p2Group[I Index] struct {
	start, size, lyndon I
}

// extract returns the big-endian concatenation of p bytes starting at
// position i. Only valid on byte alphabets with i+p <= len(text).
func extract[I Index, S Symbol](text []S, i, p int) I {
	k := I(0)
	for j := 0; j < p; j++ {
		k = k<<8 | I(text[i+j])
	}
	return k
}

// safeExtract is extract with logical zero padding past the end of the
// text, so it is defined for every position.
func safeExtract[I Index, S Symbol](text []S, i, p int) I {
	k := I(0)
	for j := 0; j < p; j++ {
		k <<= 8
		if i+j < len(text) {
			k |= I(text[i+j])
		}
	}
	return k
}

// comparePrefixAt compares the zero-padded length-p symbol prefixes of the
// suffixes starting at a and b.
func comparePrefixAt[S Symbol](text []S, a, b uint64, p int) int {
	n := uint64(len(text))
	for j := uint64(0); j < uint64(p); j++ {
		var ca, cb S
		if a+j < n {
			ca = text[a+j]
		}
		if b+j < n {
			cb = text[b+j]
		}
		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}
	}
	return 0
}

// sortByPrefix partitions the interior positions into prefix-equal buckets
// of length prefix, writing a preliminary ordering into sa and returning
// the initial group list for phase 1 in left-to-right order. The two
// sentinel suffixes are placed at sa[0] and sa[1]; interior entries carry
// the type-S marker.
func sortByPrefix[I Index, S Symbol](text []S, sa []I, prefix int) []p1Group[I] {
	if uint64(^S(0)) == 0xFF {
		if prefix == 1 {
			return bucketBytes1[I](text, sa)
		}
		return bucketBytes[I](text, sa, prefix)
	}
	return bucketLarge[I](text, sa, prefix)
}

// bucketBytes1 is the single-byte bucket pass: one histogram over the
// text, prefix sums into bucket borders starting at offset 2, then a
// left-to-right stable placement.
func bucketBytes1[I Index, S Symbol](text []S, sa []I) []p1Group[I] {
	n := len(text)
	groups := make([]p1Group[I], 0, 256)
	var hist [256]I
	for _, c := range text {
		hist[c]++
	}
	left := I(2)
	for b := 1; b < 256; b++ {
		gsize := hist[b]
		hist[b] = left
		if gsize > 0 {
			groups = append(groups, p1Group[I]{start: left, size: gsize, lyndon: 1, resolvable: true})
		}
		left += gsize
	}
	hist[0] = 0
	for i := 0; i < n; i++ {
		c := text[i]
		if i == 0 || i == n-1 {
			sa[hist[c]] = I(i)
		} else {
			sa[hist[c]] = condWrap(isTypeS(text, uint64(i)), I(i))
		}
		hist[c]++
	}
	sa[0] = I(n - 1)
	sa[1] = 0
	return groups
}

// bucketBytes is the two- and three-byte bucket pass. Bucket keys are the
// big-endian byte concatenations starting at each position, with zero
// padding at the end of the text.
func bucketBytes[I Index, S Symbol](text []S, sa []I, prefix int) []p1Group[I] {
	n := len(text)
	buckets := 1 << (8 * prefix)
	hist := make([]I, buckets)
	stop := n - prefix - 1
	if stop < 1 {
		stop = 1
	}
	for i := 1; i < stop; i++ {
		hist[extract[I](text, i, prefix)]++
	}
	for i := stop; i < n-1; i++ {
		hist[safeExtract[I](text, i, prefix)]++
	}
	groups := make([]p1Group[I], 0, 256)
	left := I(2)
	for b := buckets >> 8; b < buckets; b++ {
		gsize := hist[b]
		hist[b] = left
		if gsize > 0 {
			groups = append(groups, p1Group[I]{start: left, size: gsize, lyndon: I(prefix), resolvable: true})
		}
		left += gsize
	}
	for i := 1; i < stop; i++ {
		k := extract[I](text, i, prefix)
		sa[hist[k]] = condWrap(isTypeS(text, uint64(i)), I(i))
		hist[k]++
	}
	for i := stop; i < n-1; i++ {
		k := safeExtract[I](text, i, prefix)
		sa[hist[k]] = condWrap(isTypeS(text, uint64(i)), I(i))
		hist[k]++
	}
	sa[0] = I(n - 1)
	sa[1] = 0
	return groups
}

// bucketLarge handles alphabets too large to histogram. It fills sa with
// the identity permutation, sorts it by (zero-padded prefix, position),
// and splits the interior range into equal-prefix runs.
func bucketLarge[I Index, S Symbol](text []S, sa []I, prefix int) []p1Group[I] {
	n := len(text)
	for i := 0; i < n; i++ {
		sa[i] = I(i)
	}
	sort.Slice(sa, func(a, b int) bool {
		c := comparePrefixAt(text, uint64(sa[a]), uint64(sa[b]), prefix)
		if c != 0 {
			return c < 0
		}
		return sa[a] < sa[b]
	})
	groups := make([]p1Group[I], 0, 256)
	left := I(2)
	gsize := I(1)
	for i := 2; i < n-1; i++ {
		if comparePrefixAt(text, uint64(sa[i]), uint64(sa[i+1]), prefix) == 0 {
			gsize++
		} else {
			groups = append(groups, p1Group[I]{start: left, size: gsize, lyndon: I(prefix), resolvable: true})
			left = I(i + 1)
			gsize = 1
		}
	}
	groups = append(groups, p1Group[I]{start: left, size: gsize, lyndon: I(prefix), resolvable: true})
	for i := 2; i < n; i++ {
		v := sa[i]
		sa[i] = condWrap(isTypeS(text, uint64(v)), v)
	}
	sa[0] = I(n - 1)
	sa[1] = 0
	return groups
}
