package rgenum

import "fmt"

// opTelBreak enumerates every telomere-loss breakpoint: each chromosome
// segment is spliced into two, and the two resulting products — one
// retaining the left telomere, one retaining the right — are emitted as
// separate genomes, the discarded side lost entirely.
func opTelBreak(g Genome) ([]Genome, error) {
	var out []Genome
	app := 0
	for ci, chr := range g.Chromosomes {
		for si := 0; si < chr.NSegs(); si++ {
			seg := chr.Segments[si]
			spliced := g.Clone()
			if err := spliced.SpliceAll(seg, 2); err != nil {
				return nil, fmt.Errorf("op_tel_break chr %d seg %d: %w", ci, si, err)
			}

			leftG := spliced.Clone()
			if err := leftG.Chromosomes[ci].DeleteRange(si+1, leftG.Chromosomes[ci].NSegs()-1); err != nil {
				return nil, fmt.Errorf("op_tel_break chr %d seg %d: %w", ci, si, err)
			}
			leftG.MakeHistory(TelBreak, app)
			out = append(out, leftG)
			app++

			rightG := spliced.Clone()
			if err := rightG.Chromosomes[ci].DeleteRange(0, si); err != nil {
				return nil, fmt.Errorf("op_tel_break chr %d seg %d: %w", ci, si, err)
			}
			rightG.MakeHistory(TelBreak, app)
			out = append(out, rightG)
			app++
		}
	}
	return out, nil
}
