// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package gsacads

import "fmt"

// Verify checks that sa is the suffix array of the sentinel-framed text
// without rebuilding it: sentinel placement, entry range, first-symbol
// bucket order, that sa is a permutation, and the rank condition that
// equal-symbol neighbors are ordered like their successor suffixes. An
// array passing all five is correct.
func Verify[I Index, S Symbol](text []S, sa []I) error {
	n := len(text)
	if len(sa) != n {
		return fmt.Errorf("gsacads: sa length %d does not match text length %d", len(sa), n)
	}
	if n < 3 {
		return ErrTooShort
	}
	if uint64(sa[0]) != uint64(n-1) || sa[1] != 0 {
		return fmt.Errorf("gsacads: sentinel suffixes misplaced: sa[0]=%d sa[1]=%d", sa[0], sa[1])
	}
	for i := 0; i < n; i++ {
		if uint64(sa[i]) >= uint64(n) {
			return fmt.Errorf("gsacads: sa[%d]=%d out of range", i, sa[i])
		}
	}
	for i := 1; i < n; i++ {
		if text[sa[i-1]] > text[sa[i]] {
			return fmt.Errorf("gsacads: first symbols out of order at sa[%d]", i)
		}
	}
	isa := make([]I, n)
	empty := I(n)
	for i := range isa {
		isa[i] = empty
	}
	for i := 0; i < n; i++ {
		if isa[sa[i]] != empty {
			return fmt.Errorf("gsacads: position %d occurs twice in sa", sa[i])
		}
		isa[sa[i]] = I(i)
	}
	for i := 1; i < n; i++ {
		a, b := sa[i-1], sa[i]
		if uint64(a) != uint64(n-1) && text[a] == text[b] {
			if isa[a+1] >= isa[b+1] {
				return fmt.Errorf("gsacads: suffixes %d and %d out of order at sa[%d]", a, b, i)
			}
		}
	}
	return nil
}

// VerifyAgainst cross-checks sa against an independent construction: the
// prefix-doubling reference is run on the text with the leading sentinel
// stripped and compared under the two-sentinel placement convention.
// Symbols must fit an int32.
func VerifyAgainst[I Index, S Symbol](text []S, sa []I) error {
	n := len(text)
	if len(sa) != n {
		return fmt.Errorf("gsacads: sa length %d does not match text length %d", len(sa), n)
	}
	if n < 3 {
		return ErrTooShort
	}
	stripped := make([]int32, n-1)
	for i := 1; i < n; i++ {
		if uint64(text[i]) > 1<<31-1 {
			return fmt.Errorf("gsacads: symbol %d at position %d too large for the reference check", text[i], i)
		}
		stripped[i-1] = int32(text[i])
	}
	ref := refSuffixArray(stripped)
	if uint64(sa[0]) != uint64(n-1) || sa[1] != 0 {
		return fmt.Errorf("gsacads: sentinel suffixes misplaced: sa[0]=%d sa[1]=%d", sa[0], sa[1])
	}
	for i := 1; i < n-1; i++ {
		if uint64(sa[i+1]) != uint64(ref[i])+1 {
			return fmt.Errorf("gsacads: mismatch with reference at sa[%d]: %d vs %d", i+1, sa[i+1], ref[i]+1)
		}
	}
	return nil
}
