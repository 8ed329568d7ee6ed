package rgenum

import "fmt"

// opUnbalTransloc enumerates every unbalanced translocation: the same
// reciprocal-exchange geometry as opBalTransloc, after which one of the two
// derivative chromosomes is lost. Each balanced candidate yields two
// genomes, one losing each derivative chromosome.
func opUnbalTransloc(g Genome) ([]Genome, error) {
	candidates, err := balTranslocCandidates(g)
	if err != nil {
		return nil, err
	}

	out := make([]Genome, 0, 2*len(candidates))
	app := 0
	for _, cand := range candidates {
		loseFirst := cand.genome.Clone()
		if err := loseFirst.LoseChromosome(cand.c1); err != nil {
			return nil, fmt.Errorf("unbal_transloc lose %d: %w", cand.c1, err)
		}
		loseFirst.MakeHistory(UnbalTransloc, app)
		out = append(out, loseFirst)
		app++

		loseSecond := cand.genome.Clone()
		if err := loseSecond.LoseChromosome(cand.c2); err != nil {
			return nil, fmt.Errorf("unbal_transloc lose %d: %w", cand.c2, err)
		}
		loseSecond.MakeHistory(UnbalTransloc, app)
		out = append(out, loseSecond)
		app++
	}
	return out, nil
}
