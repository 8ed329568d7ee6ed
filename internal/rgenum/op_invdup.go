package rgenum

import "fmt"

// opInvDup enumerates every inverted duplication: a contiguous segment
// range is copied, the copy inverted, and the inverted copy inserted
// either immediately before or immediately after the original range.
// Disabled by default (Config.EnableInvDup) since it multiplies the
// branching factor heavily for comparatively rare events.
func opInvDup(g Genome) ([]Genome, error) {
	var out []Genome
	app := 0
	for ci, chr := range g.Chromosomes {
		n := chr.NSegs()
		for i := 0; i < n; i++ {
			for j := i; j < n; j++ {
				dup, err := YankRange(chr, i, j)
				if err != nil {
					return nil, fmt.Errorf("op_inv_dup chr %d [%d,%d]: %w", ci, i, j, err)
				}
				if err := dup.InvertRange(0, dup.NSegs()-1); err != nil {
					return nil, fmt.Errorf("op_inv_dup chr %d [%d,%d]: %w", ci, i, j, err)
				}
				for _, before := range []int{i, j + 1} {
					ng := g.Clone()
					newChr, err := InsertChromosome(ng.Chromosomes[ci], dup, before)
					if err != nil {
						return nil, fmt.Errorf("op_inv_dup chr %d [%d,%d]: %w", ci, i, j, err)
					}
					ng.Chromosomes[ci] = newChr
					ng.MakeHistory(InvDup, app)
					app++
					out = append(out, ng)
				}
			}
		}
	}
	return out, nil
}
