package rgenum

import "fmt"

// opFoldBack enumerates every fold-back (break-fusion-bridge) event: a
// chromosome is broken like opTelBreak, the discarded side lost, and the
// surviving arm is then folded back on itself — a copy of the surviving
// arm, inverted, fused to the break end. Any genome this produces
// restricts its further lineage to TelBreak/FoldBack only, enforced by
// the caller.
func opFoldBack(g Genome) ([]Genome, error) {
	var out []Genome
	app := 0
	for ci, chr := range g.Chromosomes {
		for si := 0; si < chr.NSegs(); si++ {
			seg := chr.Segments[si]
			spliced := g.Clone()
			if err := spliced.SpliceAll(seg, 2); err != nil {
				return nil, fmt.Errorf("op_fold_back chr %d seg %d: %w", ci, si, err)
			}

			leftG := spliced.Clone()
			if err := leftG.Chromosomes[ci].DeleteRange(si+1, leftG.Chromosomes[ci].NSegs()-1); err != nil {
				return nil, fmt.Errorf("op_fold_back chr %d seg %d: %w", ci, si, err)
			}
			survivors, err := YankRange(leftG.Chromosomes[ci], 0, leftG.Chromosomes[ci].NSegs()-1)
			if err != nil {
				return nil, fmt.Errorf("op_fold_back chr %d seg %d: %w", ci, si, err)
			}
			if err := survivors.InvertRange(0, survivors.NSegs()-1); err != nil {
				return nil, fmt.Errorf("op_fold_back chr %d seg %d: %w", ci, si, err)
			}
			newChr, err := InsertChromosome(leftG.Chromosomes[ci], survivors, leftG.Chromosomes[ci].NSegs())
			if err != nil {
				return nil, fmt.Errorf("op_fold_back chr %d seg %d: %w", ci, si, err)
			}
			leftG.Chromosomes[ci] = newChr
			leftG.MakeHistory(FoldBack, app)
			out = append(out, leftG)
			app++

			rightG := spliced.Clone()
			if err := rightG.Chromosomes[ci].DeleteRange(0, si); err != nil {
				return nil, fmt.Errorf("op_fold_back chr %d seg %d: %w", ci, si, err)
			}
			survivorsR, err := YankRange(rightG.Chromosomes[ci], 0, rightG.Chromosomes[ci].NSegs()-1)
			if err != nil {
				return nil, fmt.Errorf("op_fold_back chr %d seg %d: %w", ci, si, err)
			}
			if err := survivorsR.InvertRange(0, survivorsR.NSegs()-1); err != nil {
				return nil, fmt.Errorf("op_fold_back chr %d seg %d: %w", ci, si, err)
			}
			newChrR, err := InsertChromosome(rightG.Chromosomes[ci], survivorsR, 0)
			if err != nil {
				return nil, fmt.Errorf("op_fold_back chr %d seg %d: %w", ci, si, err)
			}
			rightG.Chromosomes[ci] = newChrR
			rightG.MakeHistory(FoldBack, app)
			out = append(out, rightG)
			app++
		}
	}
	return out, nil
}
