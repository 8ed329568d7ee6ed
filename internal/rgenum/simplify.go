package rgenum

// Simplify collapses adjacent entries of g.GenomeSegs that share a root
// chromosome and meet only at "natural" joins — every realised adjacency
// between them, in every chromosome, is the reference-consistent
// continuation (plus-plus immediate successor, or minus-minus immediate
// predecessor, with matching parental origin) — back into a single
// segment. It returns a new genome; g is not modified.
//
// Simplify is idempotent: Simplify(Simplify(g)) produces the same genome_segs
// and chromosome content as Simplify(g), since a genome with no further
// mergeable adjacent pair is a fixed point of the pass below.
func Simplify(g Genome) Genome {
	out := g.Clone()
	for {
		next, natPrev := naturalJoinFlags(out)
		merged := false
		for i := 0; i < len(out.GenomeSegs)-1; i++ {
			if !sameRoot(out.GenomeSegs[i], out.GenomeSegs[i+1]) {
				continue
			}
			if next[i] && natPrev[i+1] {
				mergeAdjacent(&out, i)
				merged = true
				break
			}
		}
		if !merged {
			return out
		}
	}
}

func sameRoot(a, b Segment) bool {
	return len(a.SegIndexes) > 0 && len(b.SegIndexes) > 0 &&
		a.SegIndexes[0] == b.SegIndexes[0] && a.IsMaternal == b.IsMaternal
}

// naturalJoinFlags computes, for every GenomeSegs entry, whether its
// right side (natural_next) and left side (natural_prev) abut only the
// reference-consistent neighbor across every chromosome that contains it.
// A chromosome telomere on the relevant side forces the flag false, as
// does any realised adjacency to something other than the expected
// neighbor.
func naturalJoinFlags(g Genome) (natNext, natPrev []bool) {
	n := len(g.GenomeSegs)
	natNext = make([]bool, n)
	natPrev = make([]bool, n)
	for i := 0; i < n; i++ {
		natNext[i] = i+1 < n && sameRoot(g.GenomeSegs[i], g.GenomeSegs[i+1])
		natPrev[i] = i > 0 && sameRoot(g.GenomeSegs[i-1], g.GenomeSegs[i])
	}

	for _, chr := range g.Chromosomes {
		for p, seg := range chr.Segments {
			idx := g.genomeSegIndex(seg)
			if idx < 0 {
				// Invariant violation: a chromosome segment with no
				// genome_segs representative. Simplify is best-effort here;
				// callers that need the error should validate separately.
				continue
			}

			if natNext[idx] {
				expected := idx + 1
				if seg.IsPlus {
					if p+1 >= len(chr.Segments) || !neighborMatches(chr.Segments[p+1], g.GenomeSegs[expected], true) {
						natNext[idx] = false
					}
				} else {
					if p-1 < 0 || !neighborMatches(chr.Segments[p-1], g.GenomeSegs[expected], false) {
						natNext[idx] = false
					}
				}
			}

			if natPrev[idx] {
				expected := idx - 1
				if seg.IsPlus {
					if p-1 < 0 || !neighborMatches(chr.Segments[p-1], g.GenomeSegs[expected], true) {
						natPrev[idx] = false
					}
				} else {
					if p+1 >= len(chr.Segments) || !neighborMatches(chr.Segments[p+1], g.GenomeSegs[expected], false) {
						natPrev[idx] = false
					}
				}
			}
		}
	}

	return natNext, natPrev
}

func neighborMatches(actual, expectedIdentity Segment, expectPlus bool) bool {
	return actual.SameIdentity(expectedIdentity) && actual.IsPlus == expectPlus
}

// mergeAdjacent merges GenomeSegs[i+1] into GenomeSegs[i]: every realised
// reference-consistent adjacency between the two identities, in any
// chromosome, becomes one segment carrying identity i; GenomeSegs[i+1] is
// then dropped.
func mergeAdjacent(g *Genome, i int) {
	left := g.GenomeSegs[i]
	right := g.GenomeSegs[i+1]

	for ci := range g.Chromosomes {
		chr := &g.Chromosomes[ci]
		segs := chr.Segments
		out := make([]Segment, 0, len(segs))
		p := 0
		for p < len(segs) {
			if p+1 < len(segs) && segs[p].SameIdentity(left) && segs[p].IsPlus &&
				segs[p+1].SameIdentity(right) && segs[p+1].IsPlus {
				out = append(out, Segment{SegIndexes: cloneInts(left.SegIndexes), IsPlus: true, IsMaternal: segs[p].IsMaternal})
				p += 2
				continue
			}
			if p+1 < len(segs) && segs[p].SameIdentity(right) && !segs[p].IsPlus &&
				segs[p+1].SameIdentity(left) && !segs[p+1].IsPlus {
				out = append(out, Segment{SegIndexes: cloneInts(left.SegIndexes), IsPlus: false, IsMaternal: segs[p].IsMaternal})
				p += 2
				continue
			}
			out = append(out, segs[p])
			p++
		}
		chr.Segments = out
	}

	kept := make([]Segment, 0, len(g.GenomeSegs)-1)
	kept = append(kept, g.GenomeSegs[:i+1]...)
	kept = append(kept, g.GenomeSegs[i+2:]...)
	g.GenomeSegs = kept
}

func cloneInts(in []int) []int {
	out := make([]int, len(in))
	copy(out, in)
	return out
}
