package rgenum

import "fmt"

// Genome is a collection of chromosomes plus the universe of distinct
// segment identities ever created on it, together with the derivation that
// produced it.
type Genome struct {
	Chromosomes []Chromosome
	// GenomeSegs is the universe of distinct segment identities present or
	// reachable in this genome, in canonical insertion order. Every
	// identity appearing in any chromosome has a representative here.
	GenomeSegs []Segment
	History    []HistoryEntry
	DupDepth   int
	WGDDepth   int
}

// Depth is the total number of applied events.
func (g Genome) Depth() int {
	return len(g.History)
}

// NChrs returns the current chromosome count.
func (g Genome) NChrs() int {
	return len(g.Chromosomes)
}

// NewWildType builds the starting genome of nChrs reference chromosomes,
// each a single unsplit segment. When diploid is true each reference
// chromosome is represented twice, once per parental origin, matching the
// reference implementation's create_genome(n_chrs, paired).
func NewWildType(nChrs int, diploid bool) (Genome, error) {
	if nChrs <= 0 {
		return Genome{}, fmt.Errorf("new_wild_type: n_chrs %d must be positive: %w", nChrs, ErrInvalidRange)
	}
	if nChrs > MaxRootChromosomes {
		return Genome{}, fmt.Errorf("new_wild_type: n_chrs %d: %w", nChrs, ErrTooManyRootChromosomes)
	}

	var g Genome
	for i := 0; i < nChrs; i++ {
		g.Chromosomes = append(g.Chromosomes, NewChromosome(i, false))
		g.GenomeSegs = append(g.GenomeSegs, Segment{SegIndexes: []int{i}, IsPlus: true, IsMaternal: false})
		if diploid {
			g.Chromosomes = append(g.Chromosomes, NewChromosome(i, true))
			g.GenomeSegs = append(g.GenomeSegs, Segment{SegIndexes: []int{i}, IsPlus: true, IsMaternal: true})
		}
	}
	return g, nil
}

// Clone returns a deep copy of g; no slice backing array is shared with g.
func (g Genome) Clone() Genome {
	out := Genome{
		Chromosomes: make([]Chromosome, len(g.Chromosomes)),
		GenomeSegs:  make([]Segment, len(g.GenomeSegs)),
		History:     make([]HistoryEntry, len(g.History)),
		DupDepth:    g.DupDepth,
		WGDDepth:    g.WGDDepth,
	}
	for i, c := range g.Chromosomes {
		out.Chromosomes[i] = c.Clone()
	}
	for i, s := range g.GenomeSegs {
		out.GenomeSegs[i] = s.Clone()
	}
	copy(out.History, g.History)
	return out
}

// MakeHistory appends a history entry for an applied event, incrementing
// DupDepth and WGDDepth where appropriate.
func (g *Genome) MakeHistory(kind EventKind, appIndex int) {
	g.History = append(g.History, HistoryEntry{Kind: kind, AppIndex: appIndex})
	if kind.isDuplicative() {
		g.DupDepth++
	}
	if kind == WGDup {
		g.WGDDepth++
	}
}

// LoseChromosome removes chromosome at index c from the genome's sequence.
// GenomeSegs is left untouched: a lost chromosome's segment identities may
// still be referenced by surviving paralogs.
func (g *Genome) LoseChromosome(c int) error {
	if c < 0 || c >= len(g.Chromosomes) {
		return fmt.Errorf("lose_chromosome %d: %w", c, ErrInvalidRange)
	}
	g.Chromosomes = append(g.Chromosomes[:c], g.Chromosomes[c+1:]...)
	return nil
}

// genomeSegIndex returns the index into GenomeSegs of the entry matching
// identity, or -1 if none exists.
func (g Genome) genomeSegIndex(identity Segment) int {
	for i, s := range g.GenomeSegs {
		if s.SameIdentity(identity) {
			return i
		}
	}
	return -1
}

// SpliceAll applies SpliceOne(·, splitInto) to every chromosome position
// whose current segment identity equals identity, and replaces the
// matching GenomeSegs entry with splitInto fresh entries carrying the
// extended identities. This preserves the invariant that homologous loci
// share identical identities across paralogs, which every operator relies
// on to recognize "same segment" relations across chromosomes.
func (g *Genome) SpliceAll(identity Segment, splitInto int) error {
	for ci := range g.Chromosomes {
		chr := &g.Chromosomes[ci]
		for si := 0; si < len(chr.Segments); si++ {
			if chr.Segments[si].SameIdentity(identity) {
				if err := chr.SpliceOne(si, splitInto); err != nil {
					return fmt.Errorf("splice_all chr %d seg %d: %w", ci, si, err)
				}
				si += splitInto - 1
			}
		}
	}

	idx := g.genomeSegIndex(identity)
	if idx < 0 {
		return fmt.Errorf("splice_all: %w", ErrMissingGenomeSeg)
	}
	parent := g.GenomeSegs[idx]
	children := make([]Segment, splitInto)
	for k := 0; k < splitInto; k++ {
		// genome_segs carries the identity-tree structure only, so unlike
		// chromosome segments its child indexes are not orientation-aware:
		// the reference implementation's splice_all_segs assigns the raw
		// position k regardless of the parent's strand.
		si := make([]int, len(parent.SegIndexes)+1)
		copy(si, parent.SegIndexes)
		si[len(parent.SegIndexes)] = k
		children[k] = Segment{SegIndexes: si, IsPlus: true, IsMaternal: parent.IsMaternal}
	}
	out := make([]Segment, 0, len(g.GenomeSegs)+splitInto-1)
	out = append(out, g.GenomeSegs[:idx]...)
	out = append(out, children...)
	out = append(out, g.GenomeSegs[idx+1:]...)
	g.GenomeSegs = out
	return nil
}
