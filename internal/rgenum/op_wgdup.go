package rgenum

// opWGDup enumerates whole-genome duplication: every chromosome is
// copied once, doubling the chromosome count. Unlike the other
// duplicative operators this applies once to the whole genome rather
// than once per chromosome, so it produces a single result.
func opWGDup(g Genome) ([]Genome, error) {
	ng := g.Clone()
	extra := make([]Chromosome, len(ng.Chromosomes))
	for i, c := range ng.Chromosomes {
		extra[i] = c.Clone()
	}
	ng.Chromosomes = append(ng.Chromosomes, extra...)
	ng.MakeHistory(WGDup, 0)
	return []Genome{ng}, nil
}
