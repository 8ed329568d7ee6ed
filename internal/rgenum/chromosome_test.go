package rgenum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChromosome_SpliceOne(t *testing.T) {
	c := NewChromosome(0, false)
	require.NoError(t, c.SpliceOne(0, 3))
	require.Equal(t, 3, c.NSegs())
	assert.Equal(t, []int{0, 0}, c.Segments[0].SegIndexes)
	assert.Equal(t, []int{0, 1}, c.Segments[1].SegIndexes)
	assert.Equal(t, []int{0, 2}, c.Segments[2].SegIndexes)
}

func TestChromosome_SpliceOne_RespectsMaxTimesDivided(t *testing.T) {
	c := Chromosome{Segments: []Segment{{SegIndexes: make([]int, MaxTimesDivided), IsPlus: true}}}
	err := c.SpliceOne(0, 2)
	require.ErrorIs(t, err, ErrTimesDividedExceeded)
}

func TestChromosome_DeleteRange(t *testing.T) {
	c := Chromosome{Segments: []Segment{{SegIndexes: []int{0}}, {SegIndexes: []int{1}}, {SegIndexes: []int{2}}}}
	require.NoError(t, c.DeleteRange(1, 1))
	require.Equal(t, 2, c.NSegs())
	assert.Equal(t, []int{0}, c.Segments[0].SegIndexes)
	assert.Equal(t, []int{2}, c.Segments[1].SegIndexes)
}

func TestChromosome_DeleteRange_NoOpWhenToLessThanFrom(t *testing.T) {
	c := Chromosome{Segments: []Segment{{SegIndexes: []int{0}}}}
	require.NoError(t, c.DeleteRange(1, 0))
	assert.Equal(t, 1, c.NSegs())
}

func TestYankRange_DoesNotModifySource(t *testing.T) {
	c := Chromosome{Segments: []Segment{{SegIndexes: []int{0}}, {SegIndexes: []int{1}}}}
	yanked, err := YankRange(c, 0, 1)
	require.NoError(t, err)
	yanked.Segments[0].SegIndexes[0] = 42
	assert.Equal(t, 0, c.Segments[0].SegIndexes[0])
}

func TestInsertChromosome(t *testing.T) {
	dst := Chromosome{Segments: []Segment{{SegIndexes: []int{0}}, {SegIndexes: []int{1}}}}
	src := Chromosome{Segments: []Segment{{SegIndexes: []int{9}}}}
	out, err := InsertChromosome(dst, src, 1)
	require.NoError(t, err)
	require.Equal(t, 3, out.NSegs())
	assert.Equal(t, []int{9}, out.Segments[1].SegIndexes)
}

func TestChromosome_InvertRange(t *testing.T) {
	c := Chromosome{Segments: []Segment{
		{SegIndexes: []int{0}, IsPlus: true},
		{SegIndexes: []int{1}, IsPlus: true},
		{SegIndexes: []int{2}, IsPlus: false},
	}}
	require.NoError(t, c.InvertRange(0, 2))
	assert.Equal(t, []int{2}, c.Segments[0].SegIndexes)
	assert.True(t, c.Segments[0].IsPlus)
	assert.Equal(t, []int{0}, c.Segments[2].SegIndexes)
	assert.False(t, c.Segments[2].IsPlus)
}
