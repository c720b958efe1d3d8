// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package gsacads

// sgCountThreshold is the length of the preallocated border buffer; groups
// with at least that many runs take a side allocation.
const sgCountThreshold = 256 * 1024

// phase2 walks the groups left to right and finalizes the order inside
// each, writing final SA entries and, for non-type-S positions, final ISA
// ranks. Groups of size one only need their marker stripped and their rank
// recorded.
//
// A larger group is first partitioned into runs: maximal stretches of
// consecutive entries whose values climb by exactly the group's prefix
// length. Run ids count distance from the run tail, so id 0 collects the
// tails. The partition is stable. Runs are then resolved in ascending id
// order; by then each member's successor sits either in an earlier group
// or in the previously resolved run, so its rank is final and serves as
// the sort key.
func phase2[I Index](sa, isa []I, groups []p2Group[I], sorter Sorter[I]) {
	n := len(sa)
	maxGroupSize := I(0)
	for _, g := range groups {
		if g.size > maxGroupSize {
			maxGroupSize = g.size
		}
	}

	borderBuf := make([]I, sgCountThreshold)
	grouped := make([]KV[I], maxGroupSize+1)
	scratch := make([]KV[I], maxGroupSize+1)
	subgroupSize := make([]I, maxGroupSize+1)
	subgroupID := make([]I, maxGroupSize)

	left := I(2)
	for g := 2; g < len(groups); g++ {
		gsize := groups[g].size
		if gsize == 1 {
			sa[left] = unwrap(sa[left])
			isa[sa[left]] = left
			left++
			continue
		}

		lyn := groups[g].lyndon
		iv := sa[left : left+gsize]

		for i := I(0); i <= gsize; i++ {
			subgroupSize[i] = 0
		}
		subgroupID[gsize-1] = 0
		subgroupSize[0] = 1
		for i := gsize - 1; i > 0; i-- {
			if unwrap(iv[i-1])+lyn == unwrap(iv[i]) {
				subgroupID[i-1] = subgroupID[i] + 1
			} else {
				subgroupID[i-1] = 0
			}
			subgroupSize[subgroupID[i-1]]++
		}

		sgCount := I(0)
		for subgroupSize[sgCount] > 0 {
			sgCount++
		}
		border := borderBuf
		if sgCount >= sgCountThreshold {
			border = make([]I, sgCount)
		}
		localLeft := I(0)
		for i := I(0); i < sgCount; i++ {
			border[i] = localLeft
			localLeft += subgroupSize[i]
		}
		for i := I(0); i < gsize; i++ {
			b := subgroupID[i]
			grouped[border[b]].Value = iv[i]
			border[b]++
		}

		prev := I(0)
		for j := I(0); j < sgCount; j++ {
			stop := border[j]
			run := grouped[prev:stop]

			// Lexicographical ranks of the inducing successors.
			for i := range run {
				run[i].Key = isa[unwrap(run[i].Value)+lyn]
			}

			if stop-prev < 33 {
				insertionSort(run, true)
			} else {
				// Increasing sort; stability is carried by the run
				// partition, not the sorter.
				sorter.Sort(run, scratch[:len(run)], I(n-1), true, false)
			}

			for i := I(0); i < stop-prev; i++ {
				iv[prev+i] = run[i].Value
			}
			for i := prev; i < stop; i++ {
				if !isFlagged(iv[i]) {
					isa[iv[i]] = left + i
				} else {
					iv[i] = unwrap(iv[i])
				}
			}
			prev = stop
		}

		left += gsize
	}
}
