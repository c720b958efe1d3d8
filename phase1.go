// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package gsacads

import "sort"

// phase1 refines the bucketed groups until every group is either a
// singleton with a final rank or ready for phase 2, meaning its members
// share a known-length prefix, in-group successors form step-l chains and
// every out-group successor will carry a final rank by the time phase 2
// reaches the group. isa maps every position to its current group's left
// border (or its final rank once fixed). The returned list covers
// sa[0..n) contiguously in left-to-right order, sentinel groups included.
//
// Each pass derives a sort key per member from the rank of the suffix
// l symbols ahead: equal keys mean the successors share their own group's
// agreed prefix, so the members agree on a strictly longer prefix. The
// per-group sort is stable, which keeps members in ascending text order
// throughout; this is what makes the phase-2 run detection work.
func phase1[I Index, S Symbol](text []S, sa, isa []I, input []p1Group[I], sorter Sorter[I]) []p2Group[I] {
	n := len(sa)
	isa[n-1] = 0
	isa[0] = 1

	// lyndonAt[s] is the agreed prefix length of the group starting at s;
	// 0 marks a start whose position already has a final rank.
	lyndonAt := make([]I, n)

	out := make([]p2Group[I], 0, len(input))
	work := make([]p1Group[I], 0, len(input))
	maxSize := I(0)
	for _, g := range input {
		for i := g.start; i < g.start+g.size; i++ {
			isa[unwrap(sa[i])] = g.start
		}
		if g.size == 1 {
			out = append(out, p2Group[I]{g.start, 1, g.lyndon})
		} else {
			lyndonAt[g.start] = g.lyndon
			work = append(work, g)
			if g.size > maxSize {
				maxSize = g.size
			}
		}
	}

	kvs := make([]KV[I], maxSize)
	scratch := make([]KV[I], maxSize)

	for len(work) > 0 {
		next := make([]p1Group[I], 0, len(work))
		for _, g := range work {
			s, sz, l := g.start, g.size, g.lyndon
			iv := sa[s : s+sz]
			kv := kvs[:sz]
			for i := I(0); i < sz; i++ {
				kv[i] = KV[I]{Key: isa[unwrap(iv[i])+l], Value: iv[i]}
			}

			// Hand off once phase 2 can finalize the group on its own:
			// no successor in a later group, in-group successors exactly
			// one member ahead and never type-S (their ranks must be
			// written when their run finishes), and earlier-group
			// successors either not type-S or already rank-final.
			ready := true
			for i := I(0); i < sz; i++ {
				k := kv[i].Key
				if k > s {
					ready = false
					break
				}
				u := unwrap(iv[i]) + l
				if k == s {
					if i+1 >= sz || unwrap(iv[i+1]) != u || isTypeS(text, uint64(u)) {
						ready = false
						break
					}
				} else if isTypeS(text, uint64(u)) && lyndonAt[k] != 0 {
					ready = false
					break
				}
			}
			if ready {
				out = append(out, p2Group[I]{s, sz, l})
				continue
			}

			sorter.Sort(kv, scratch[:sz], I(n-1), true, true)
			for i := range kv {
				iv[i] = kv[i].Value
			}

			// Split into maximal equal-key runs. Singletons take their
			// final rank; the rest agree on l plus whatever their common
			// successor group has agreed on so far.
			for i := I(0); i < sz; {
				j := i + 1
				for j < sz && kv[j].Key == kv[i].Key {
					j++
				}
				ns, nsz := s+i, j-i
				if nsz == 1 {
					isa[unwrap(iv[i])] = ns
					lyndonAt[ns] = 0
					out = append(out, p2Group[I]{ns, 1, l})
				} else {
					for t := i; t < j; t++ {
						isa[unwrap(iv[t])] = ns
					}
					nl := l + l
					if kv[i].Key != s {
						nl = l + lyndonAt[kv[i].Key]
					}
					lyndonAt[ns] = nl
					next = append(next, p1Group[I]{start: ns, size: nsz, lyndon: nl, resolvable: true})
				}
				i = j
			}
		}
		work = next
	}

	sort.Slice(out, func(a, b int) bool { return out[a].start < out[b].start })
	result := make([]p2Group[I], 0, len(out)+2)
	result = append(result, p2Group[I]{0, 1, 1}, p2Group[I]{1, 1, 1})
	result = append(result, out...)
	return result
}
