package rgenum

import "fmt"

// breakpointRange is one candidate two-breakpoint geometry for DEL, TD, and
// INV: a genome in which the necessary splice(s) have already been
// propagated genome-wide, plus the inclusive segment range in Chr the
// operator should act on (delete, yank-and-reinsert, or invert).
type breakpointRange struct {
	Genome Genome
	Chr    int
	From   int
	To     int
}

// spliceTargetAll splits the segment at chromosome ci, position i, into
// splitInto pieces, and propagates the same split to every other occurrence
// of that segment's identity across g, mirroring the reference
// implementation's pairing of splice_one_seg (the target position) with
// splice_all_segs (every homologous paralog): Genome.SpliceAll already
// matches identity wherever it appears, including the target itself, so one
// call performs both.
func spliceTargetAll(g *Genome, ci, i, splitInto int) error {
	identity := g.Chromosomes[ci].Segments[i]
	return g.SpliceAll(identity, splitInto)
}

// enumerateBreakpointRanges produces every breakpoint geometry reachable in
// g, mirroring the shared structure of enum_dels/enum_tds/enum_invs: for
// every chromosome and every pair of breakpoints b1 <= b2,
//
//   - b1 == b2: the segment at b1 is split into three and the middle third
//     is the range an operator acts on;
//   - b1 < b2 naming the same segment identity (the locus appears twice in
//     one chromosome, e.g. after a prior tandem duplication): both
//     breakpoints land in the same pre-split segment, split it into three,
//     and the range depends on which of the two breakpoints is geometrically
//     first on the plus strand — both orderings are distinct and both are
//     enumerated;
//   - b1 < b2 naming different identities: each is split into two, and the
//     range spans the inner halves, keeping the outer two halves as
//     flanking survivors.
func enumerateBreakpointRanges(g Genome) ([]breakpointRange, error) {
	var out []breakpointRange
	for ci, chr := range g.Chromosomes {
		n := chr.NSegs()
		for b1 := 0; b1 < n; b1++ {
			same := g.Clone()
			if err := spliceTargetAll(&same, ci, b1, 3); err != nil {
				return nil, fmt.Errorf("enumerate_breakpoint_ranges chr %d b1=%d: %w", ci, b1, err)
			}
			out = append(out, breakpointRange{Genome: same, Chr: ci, From: b1 + 1, To: b1 + 1})

			for b2 := b1 + 1; b2 < n; b2++ {
				if chr.Segments[b1].SameIdentity(chr.Segments[b2]) {
					b1Plus := chr.Segments[b1].IsPlus
					b2Plus := chr.Segments[b2].IsPlus

					// Option 1: on the plus strand, b1's breakpoint precedes b2's.
					opt1 := g.Clone()
					if err := spliceTargetAll(&opt1, ci, b1, 3); err != nil {
						return nil, fmt.Errorf("enumerate_breakpoint_ranges chr %d b1=%d: %w", ci, b1, err)
					}
					from1 := b1 + 1
					if !b1Plus {
						from1 = b1 + 2
					}
					to1 := b2 + 2
					if b2Plus {
						to1++
					}
					out = append(out, breakpointRange{Genome: opt1, Chr: ci, From: from1, To: to1})

					// Option 2: on the plus strand, b2's breakpoint precedes b1's.
					opt2 := g.Clone()
					if err := spliceTargetAll(&opt2, ci, b1, 3); err != nil {
						return nil, fmt.Errorf("enumerate_breakpoint_ranges chr %d b1=%d: %w", ci, b1, err)
					}
					from2 := b1 + 2
					if !b1Plus {
						from2 = b1 + 1
					}
					to2 := b2 + 2
					if !b2Plus {
						to2++
					}
					out = append(out, breakpointRange{Genome: opt2, Chr: ci, From: from2, To: to2})
					continue
				}

				diff := g.Clone()
				if err := spliceTargetAll(&diff, ci, b1, 2); err != nil {
					return nil, fmt.Errorf("enumerate_breakpoint_ranges chr %d b1=%d: %w", ci, b1, err)
				}
				if err := spliceTargetAll(&diff, ci, b2+1, 2); err != nil {
					return nil, fmt.Errorf("enumerate_breakpoint_ranges chr %d b2=%d: %w", ci, b2, err)
				}
				out = append(out, breakpointRange{Genome: diff, Chr: ci, From: b1 + 1, To: b2 + 1})
			}
		}
	}
	return out, nil
}
