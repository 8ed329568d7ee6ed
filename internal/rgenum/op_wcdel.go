package rgenum

import "fmt"

// opWCDel enumerates every whole-chromosome loss.
func opWCDel(g Genome) ([]Genome, error) {
	out := make([]Genome, 0, len(g.Chromosomes))
	for c := range g.Chromosomes {
		ng := g.Clone()
		if err := ng.LoseChromosome(c); err != nil {
			return nil, fmt.Errorf("op_wc_del %d: %w", c, err)
		}
		ng.MakeHistory(WCDel, c)
		out = append(out, ng)
	}
	return out, nil
}
