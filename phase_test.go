package gsacads

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// runPhase1 drives bucketing and phase 1 and returns the state phase 2
// would receive.
func runPhase1(text []byte, prefix int) (sa, isa []uint32, groups []p2Group[uint32]) {
	n := len(text)
	sa = make([]uint32, n)
	input := sortByPrefix(text, sa, prefix)
	isa = make([]uint32, n)
	groups = phase1(text, sa, isa, input, MSDRadix[uint32]{})
	return sa, isa, groups
}

// Every phase-1 output group must cover a contiguous interval, its members
// must share their full agreed-length prefix, and isa must map members to
// the group's left border.
func TestPhase1GroupInvariant(t *testing.T) {
	interiors := []string{
		"banana",
		"aaaaaaaaaaaa",
		"abababababab",
		"aabaabaabaab",
		"mississippi",
	}
	for trial := 0; trial < 30; trial++ {
		raw := genRandText(1+rand.Intn(200), 1+rand.Intn(3))
		interiors = append(interiors, string(raw[1:len(raw)-1]))
	}
	for _, interior := range interiors {
		text := instance(interior)
		n := len(text)
		sa, isa, groups := runPhase1(text, 1)

		assert.Equal(t, uint32(0), groups[0].start)
		assert.Equal(t, uint32(1), groups[1].start)
		left := uint32(2)
		for _, g := range groups[2:] {
			assert.Equal(t, left, g.start)
			first := unwrap(sa[g.start])
			for i := g.start; i < g.start+g.size; i++ {
				v := unwrap(sa[i])
				assert.Equal(t, g.start, isa[v])
				if g.size > 1 {
					for d := uint32(0); d < g.lyndon; d++ {
						assert.Equal(t, text[first+d], text[v+d], "interior=%q group=%d", interior, g.start)
					}
				}
			}
			left += g.size
		}
		assert.Equal(t, uint32(n), left)
	}
}

// The type-S marker semantics must hold on the whole working range when
// phase 2 takes over.
func TestPhase1Markers(t *testing.T) {
	text := instance("aabaabaabaabaab")
	sa, _, _ := runPhase1(text, 1)
	for i := 2; i < len(text); i++ {
		v := unwrap(sa[i])
		assert.Equal(t, isTypeS(text, uint64(v)), isFlagged(sa[i]), "i=%d", i)
	}
}

// Within a phase-2 input group, the run labelling must chain: an entry
// with a positive sub-id steps to its right neighbor by exactly the
// group's agreed length.
func TestPhase2RunInvariant(t *testing.T) {
	for _, interior := range []string{"aaaaaaaaaaaaaaaa", "abababababababab", "aabaabaabaabaabaab"} {
		text := instance(interior)
		sa, _, groups := runPhase1(text, 1)
		sawRun := false
		for _, g := range groups[2:] {
			if g.size == 1 {
				continue
			}
			iv := sa[g.start : g.start+g.size]
			ids := make([]uint32, g.size)
			for i := g.size - 1; i > 0; i-- {
				if unwrap(iv[i-1])+g.lyndon == unwrap(iv[i]) {
					ids[i-1] = ids[i] + 1
				}
			}
			for i := uint32(0); i < g.size-1; i++ {
				if ids[i] > 0 {
					sawRun = true
					assert.Equal(t, unwrap(iv[i])+g.lyndon, unwrap(iv[i+1]), "interior=%q", interior)
				}
			}
		}
		assert.True(t, sawRun, "expected chained runs for %q", interior)
	}
}

// After phase 2 every position has its final rank in isa except the
// type-S ones, whose updates are skipped, and no marker survives.
func TestPhase2Finalization(t *testing.T) {
	text := instance("abaabaaabaaaab")
	n := len(text)
	sa, isa, groups := runPhase1(text, 1)
	phase2(sa, isa, groups, MSDRadix[uint32]{})

	assert.Equal(t, makeSA(text), sa)
	assert.Equal(t, uint32(0), isa[n-1])
	assert.Equal(t, uint32(1), isa[0])
	for i := 2; i < n; i++ {
		v := sa[i]
		assert.False(t, isFlagged(v))
		if !isTypeS(text, uint64(v)) {
			assert.Equal(t, uint32(i), isa[v], "position %d", v)
		}
	}
}
