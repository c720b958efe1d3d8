// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package gsacads

import (
	"fmt"
	"os"
	"slices"
)

// NewInstance frames raw symbols with the two sentinel positions: the
// returned vector has length len(data)+2 with the data in the interior
// and zeros at both ends. The interior is not rewritten; see Standardize.
func NewInstance[S Symbol](data []S) []S {
	text := make([]S, len(data)+2)
	copy(text[1:], data)
	return text
}

// Standardize rewrites the interior of a sentinel-framed text so no
// interior position holds a zero, preserving the relative order of all
// suffixes: every symbol below the smallest unused symbol is incremented,
// which is a monotone rewrite. Only with a completely full alphabet is
// there nowhere to shift; interior zeros are then replaced by ones, which
// may merge suffixes, and the call reports itself as lossy. The sentinels
// are (re)written in both cases. Returns the interior alphabet size as
// counted before the rewrite, except in the lossy case, where it is one
// less because the zeros have been merged into the ones.
func Standardize[S Symbol](text []S) (sigma int, lossy bool) {
	if uint64(^S(0)) == 0xFF {
		return standardizeBytes(text)
	}
	return standardizeLarge(text)
}

// standardizeBytes finds the smallest unused symbol with a 256-entry
// occurrence table.
func standardizeBytes[S Symbol](text []S) (sigma int, lossy bool) {
	n := len(text)
	var occurs [256]bool
	for i := 1; i < n-1; i++ {
		occurs[text[i]] = true
	}
	for _, b := range occurs {
		if b {
			sigma++
		}
	}
	if occurs[0] {
		increase := S(0)
		for c := 1; c < 256; c++ {
			if !occurs[c] {
				increase = S(c)
				break
			}
		}
		if increase == 0 {
			// Full alphabet: nowhere to shift, merge zeros into ones.
			for i := 1; i < n-1; i++ {
				if text[i] == 0 {
					text[i] = 1
				}
			}
			sigma = 255
			lossy = true
		} else {
			for i := 1; i < n-1; i++ {
				if text[i] < increase {
					text[i]++
				}
			}
		}
	}
	if n > 0 {
		text[0] = 0
		text[n-1] = 0
	}
	return sigma, lossy
}

// standardizeLarge handles alphabets too large to histogram: a sorted
// copy of the interior yields the alphabet size and the first gap, i.e.
// the smallest unused symbol. With no gap below the maximum, the first
// free symbol sits right past it.
func standardizeLarge[S Symbol](text []S) (sigma int, lossy bool) {
	n := len(text)
	if n <= 2 {
		if n > 0 {
			text[0] = 0
			text[n-1] = 0
		}
		return 0, false
	}
	sorted := make([]S, n-2)
	copy(sorted, text[1:n-1])
	slices.Sort(sorted)

	sigma = 1
	increase := S(0)
	for i := 1; i < len(sorted); i++ {
		if sorted[i] != sorted[i-1] {
			sigma++
			if increase == 0 && sorted[i]-sorted[i-1] > 1 {
				increase = sorted[i-1] + 1
			}
		}
	}
	if sorted[0] == 0 {
		if increase == 0 {
			if sorted[len(sorted)-1] == ^S(0) {
				// Every symbol from zero through the maximum occurs:
				// nowhere to shift, merge zeros into ones.
				for i := 1; i < n-1; i++ {
					if text[i] == 0 {
						text[i] = 1
					}
				}
				sigma--
				lossy = true
			} else {
				// Contiguous from zero: the first free symbol follows
				// the maximum.
				increase = sorted[len(sorted)-1] + 1
			}
		}
		if !lossy {
			for i := 1; i < n-1; i++ {
				if text[i] < increase {
					text[i]++
				}
			}
		}
	}
	text[0] = 0
	text[n-1] = 0
	return sigma, lossy
}

// ReadInstance reads a file into a sentinel-framed, standardized byte
// text. A positive prefixLen truncates the file to that many bytes.
// Returns the text and its interior alphabet size.
func ReadInstance(path string, prefixLen int) ([]byte, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("gsacads: reading instance: %w", err)
	}
	if prefixLen > 0 && prefixLen < len(data) {
		data = data[:prefixLen]
	}
	text := NewInstance(data)
	sigma, _ := Standardize(text)
	return text, sigma, nil
}
