package rgenum

import "fmt"

// balCandidate is one reciprocal-exchange outcome produced at a given
// pair of chromosome/segment breakpoints, before any chromosome loss is
// applied. c1 and c2 are the indices of the two participating
// chromosomes in the resulting genome (both still present).
type balCandidate struct {
	genome Genome
	c1, c2 int
}

// balTranslocCandidates enumerates every reciprocal exchange between two
// distinct chromosomes, each broken at one chosen segment. Two junction
// geometries are produced per breakpoint pair: a "+/-" junction that
// preserves the orientation of each exchanged arm, and a "++/--" junction
// that inverts each exchanged arm before fusing it to the other
// chromosome's break end.
func balTranslocCandidates(g Genome) ([]balCandidate, error) {
	var out []balCandidate
	n := len(g.Chromosomes)
	for c1 := 0; c1 < n; c1++ {
		for c2 := c1 + 1; c2 < n; c2++ {
			for s1 := 0; s1 < g.Chromosomes[c1].NSegs(); s1++ {
				for s2 := 0; s2 < g.Chromosomes[c2].NSegs(); s2++ {
					seg1 := g.Chromosomes[c1].Segments[s1]
					seg2 := g.Chromosomes[c2].Segments[s2]

					base := g.Clone()
					if err := base.SpliceAll(seg1, 2); err != nil {
						return nil, fmt.Errorf("bal_transloc chr %d seg %d: %w", c1, s1, err)
					}
					// A seg2 sharing seg1's identity was already split above.
					if !seg2.SameIdentity(seg1) {
						if err := base.SpliceAll(seg2, 2); err != nil {
							return nil, fmt.Errorf("bal_transloc chr %d seg %d: %w", c2, s2, err)
						}
					}

					for _, invert := range []bool{false, true} {
						cand := base.Clone()
						if err := swapTails(&cand, c1, s1, c2, s2, invert); err != nil {
							return nil, fmt.Errorf("bal_transloc chr %d/%d seg %d/%d: %w", c1, c2, s1, s2, err)
						}
						out = append(out, balCandidate{genome: cand, c1: c1, c2: c2})
					}
				}
			}
		}
	}
	return out, nil
}

// opBalTransloc enumerates every balanced reciprocal translocation:
// both derivative chromosomes survive, each carrying the other's tail.
func opBalTransloc(g Genome) ([]Genome, error) {
	candidates, err := balTranslocCandidates(g)
	if err != nil {
		return nil, err
	}
	out := make([]Genome, 0, len(candidates))
	for i, cand := range candidates {
		ng := cand.genome
		ng.MakeHistory(BalTransloc, i)
		out = append(out, ng)
	}
	return out, nil
}

// tailOrEmpty yanks [from, end] from chr, or returns an empty chromosome
// if from is past the last segment (nothing to exchange).
func tailOrEmpty(chr Chromosome, from int) (Chromosome, error) {
	if from > chr.NSegs()-1 {
		return Chromosome{}, nil
	}
	return YankRange(chr, from, chr.NSegs()-1)
}

// swapTails exchanges the tails of chromosomes c1 and c2 starting
// immediately after the spliced breakpoint segments at s1 and s2. When
// invert is true each exchanged tail is inverted before being fused to
// its new chromosome, modeling the "++/--" junction geometry; when false
// it models the "+/-" junction, preserving orientation.
func swapTails(g *Genome, c1, s1, c2, s2 int, invert bool) error {
	chr1 := g.Chromosomes[c1]
	chr2 := g.Chromosomes[c2]

	tail1, err := tailOrEmpty(chr1, s1+1)
	if err != nil {
		return err
	}
	tail2, err := tailOrEmpty(chr2, s2+1)
	if err != nil {
		return err
	}

	if invert {
		if tail1.NSegs() > 0 {
			if err := tail1.InvertRange(0, tail1.NSegs()-1); err != nil {
				return err
			}
		}
		if tail2.NSegs() > 0 {
			if err := tail2.InvertRange(0, tail2.NSegs()-1); err != nil {
				return err
			}
		}
	}

	if err := chr1.DeleteRange(s1+1, chr1.NSegs()-1); err != nil {
		return err
	}
	if err := chr2.DeleteRange(s2+1, chr2.NSegs()-1); err != nil {
		return err
	}

	newChr1, err := InsertChromosome(chr1, tail2, chr1.NSegs())
	if err != nil {
		return err
	}
	newChr2, err := InsertChromosome(chr2, tail1, chr2.NSegs())
	if err != nil {
		return err
	}

	g.Chromosomes[c1] = newChr1
	g.Chromosomes[c2] = newChr2
	return nil
}
