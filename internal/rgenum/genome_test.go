package rgenum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWildType_Haploid(t *testing.T) {
	g, err := NewWildType(3, false)
	require.NoError(t, err)
	assert.Equal(t, 3, g.NChrs())
	assert.Len(t, g.GenomeSegs, 3)
	assert.Equal(t, 0, g.Depth())
}

func TestNewWildType_Diploid(t *testing.T) {
	g, err := NewWildType(2, true)
	require.NoError(t, err)
	assert.Equal(t, 4, g.NChrs())
	assert.Len(t, g.GenomeSegs, 4)
}

func TestNewWildType_RejectsOutOfRangeChromosomeCount(t *testing.T) {
	_, err := NewWildType(0, false)
	require.ErrorIs(t, err, ErrInvalidRange)

	_, err = NewWildType(MaxRootChromosomes+1, false)
	require.ErrorIs(t, err, ErrTooManyRootChromosomes)
}

func TestGenome_Clone_Independence(t *testing.T) {
	g, err := NewWildType(1, false)
	require.NoError(t, err)
	c := g.Clone()
	c.Chromosomes[0].Segments[0].SegIndexes[0] = 99
	assert.Equal(t, 0, g.Chromosomes[0].Segments[0].SegIndexes[0])
}

func TestGenome_LoseChromosome(t *testing.T) {
	g, err := NewWildType(2, false)
	require.NoError(t, err)
	require.NoError(t, g.LoseChromosome(0))
	assert.Equal(t, 1, g.NChrs())
	assert.Equal(t, []int{1}, g.Chromosomes[0].Segments[0].SegIndexes)
}

func TestGenome_SpliceAll_PropagatesAcrossParalogs(t *testing.T) {
	g, err := NewWildType(1, false)
	require.NoError(t, err)
	// duplicate the chromosome so the identity appears twice
	g.Chromosomes = append(g.Chromosomes, g.Chromosomes[0].Clone())

	identity := Segment{SegIndexes: []int{0}, IsPlus: true, IsMaternal: false}
	require.NoError(t, g.SpliceAll(identity, 2))

	for _, c := range g.Chromosomes {
		require.Equal(t, 2, c.NSegs())
		assert.Equal(t, []int{0, 0}, c.Segments[0].SegIndexes)
		assert.Equal(t, []int{0, 1}, c.Segments[1].SegIndexes)
	}
	require.Len(t, g.GenomeSegs, 2)
}

func TestGenome_SpliceAll_ChildIndexNotOrientationAwareInGenomeSegs(t *testing.T) {
	g, err := NewWildType(1, false)
	require.NoError(t, err)
	g.Chromosomes[0].Segments[0].IsPlus = false

	identity := Segment{SegIndexes: []int{0}, IsPlus: false, IsMaternal: false}
	require.NoError(t, g.SpliceAll(identity, 2))

	// chromosome children are orientation-aware (reversed order of indices)
	assert.Equal(t, []int{0, 1}, g.Chromosomes[0].Segments[0].SegIndexes)
	assert.Equal(t, []int{0, 0}, g.Chromosomes[0].Segments[1].SegIndexes)

	// genome_segs children are always assigned in plain order
	assert.Equal(t, []int{0, 0}, g.GenomeSegs[0].SegIndexes)
	assert.Equal(t, []int{0, 1}, g.GenomeSegs[1].SegIndexes)
}
