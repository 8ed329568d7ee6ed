package rgenum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A single-segment chromosome offers only the b1==b2 breakpoint geometry:
// the segment splits into three and the middle third is acted on. This
// naturally keeps the outer two thirds as survivors, so a whole chromosome
// is never lost through opDel — that remains WCDel's concern.
func TestOpDel_SingleSegmentSplitsIntoThreeAndDeletesMiddle(t *testing.T) {
	g, err := NewWildType(1, false)
	require.NoError(t, err)
	results, err := opDel(g)
	require.NoError(t, err)
	require.Len(t, results, 1)

	segs := results[0].Chromosomes[0].Segments
	require.Len(t, segs, 2)
	assert.Equal(t, []int{0, 0}, segs[0].SegIndexes)
	assert.Equal(t, []int{0, 2}, segs[1].SegIndexes)
	assert.Equal(t, Del, results[0].History[len(results[0].History)-1].Kind)
}

// Two breakpoints naming different identities (here, the outer two thirds
// of an already-split segment) delete the run strictly between their inner
// halves, keeping one half of each outer third as the surviving flanks.
func TestOpDel_TwoBreakpointsDifferentIdentityKeepsOuterHalves(t *testing.T) {
	g, err := NewWildType(1, false)
	require.NoError(t, err)
	require.NoError(t, g.SpliceAll(g.Chromosomes[0].Segments[0], 3))

	results, err := opDel(g)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	for _, r := range results {
		assert.Equal(t, Del, r.History[len(r.History)-1].Kind)
	}

	// b1 names the first third [0,0], b2 the last third [0,2]: different
	// identities, so each splits in two and only the inner halves and
	// everything between are lost, leaving exactly the outer two halves:
	// the first half of [0,0] ([0,0,0]) and the second half of [0,2]
	// ([0,2,1]).
	var found bool
	for _, r := range results {
		segs := r.Chromosomes[0].Segments
		if len(segs) == 2 && segs[0].SameIdentity(Segment{SegIndexes: []int{0, 0, 0}}) &&
			segs[1].SameIdentity(Segment{SegIndexes: []int{0, 2, 1}}) {
			found = true
			break
		}
	}
	assert.True(t, found, "expected a result keeping only the outer halves of the first and last thirds")
}

// A single-segment chromosome splits into three, the middle third is
// yanked and reinserted after itself, producing a true tandem duplicate of
// the middle piece: four segments where positions 1 and 2 share identity.
func TestOpTD_SingleSegmentDuplicatesMiddleThird(t *testing.T) {
	g, err := NewWildType(1, false)
	require.NoError(t, err)
	results, err := opTD(g)
	require.NoError(t, err)
	require.Len(t, results, 1)

	segs := results[0].Chromosomes[0].Segments
	require.Len(t, segs, 4)
	assert.Equal(t, []int{0, 0}, segs[0].SegIndexes)
	assert.Equal(t, []int{0, 1}, segs[1].SegIndexes)
	assert.Equal(t, segs[1].SegIndexes, segs[2].SegIndexes)
	assert.Equal(t, []int{0, 2}, segs[3].SegIndexes)
}

// A single-segment chromosome splits into three and only the middle third
// is inverted, leaving the outer two thirds in their original orientation.
func TestOpInv_SingleSegmentInvertsMiddleThird(t *testing.T) {
	g, err := NewWildType(1, false)
	require.NoError(t, err)
	results, err := opInv(g)
	require.NoError(t, err)
	require.Len(t, results, 1)

	segs := results[0].Chromosomes[0].Segments
	require.Len(t, segs, 3)
	assert.True(t, segs[0].IsPlus)
	assert.False(t, segs[1].IsPlus)
	assert.True(t, segs[2].IsPlus)
}

// A chromosome carrying two segments of the same identity (as a prior
// tandem duplication leaves behind) presents breakpoint pairs that can
// straddle the shared locus two geometrically distinct ways; both must be
// enumerated, in addition to the two single-breakpoint (b1==b2) cases.
func TestEnumerateBreakpointRanges_SameIdentityEnumeratesBothOrderings(t *testing.T) {
	g := Genome{
		Chromosomes: []Chromosome{{Segments: []Segment{
			{SegIndexes: []int{0, 1}, IsPlus: true},
			{SegIndexes: []int{0, 1}, IsPlus: true},
		}}},
		GenomeSegs: []Segment{{SegIndexes: []int{0, 1}, IsPlus: true}},
	}

	ranges, err := enumerateBreakpointRanges(g)
	require.NoError(t, err)
	require.Len(t, ranges, 4)

	// ranges[1] and ranges[2] are the two orderings of the b1<b2
	// same-identity pair; they must resolve to different ranges.
	assert.NotEqual(t, ranges[1].From, ranges[2].From)
}

// After a tandem duplication, op_del's same-identity dual-ordering case
// produces two distinct deletion results straddling the shared locus.
func TestOpDel_SameIdentityBreakpointsEnumerateBothOrderings(t *testing.T) {
	g := Genome{
		Chromosomes: []Chromosome{{Segments: []Segment{
			{SegIndexes: []int{0, 1}, IsPlus: true},
			{SegIndexes: []int{0, 1}, IsPlus: true},
		}}},
		GenomeSegs: []Segment{{SegIndexes: []int{0, 1}, IsPlus: true}},
	}

	results, err := opDel(g)
	require.NoError(t, err)
	require.Len(t, results, 4)
	assert.NotEqual(t, results[1].Chromosomes[0].NSegs(), results[2].Chromosomes[0].NSegs(),
		"the two same-identity orderings must be geometrically distinct")
}

func TestOpTelBreak_ProducesTwoComplementaryProducts(t *testing.T) {
	g, err := NewWildType(1, false)
	require.NoError(t, err)
	require.NoError(t, g.Chromosomes[0].SpliceOne(0, 3))
	require.NoError(t, g.SpliceAll(Segment{SegIndexes: []int{0}, IsPlus: true}, 3))

	results, err := opTelBreak(g)
	require.NoError(t, err)
	// 3 segments, break at each of the 3 positions, 2 products each
	assert.Len(t, results, 6)
	for _, r := range results {
		assert.Less(t, r.Chromosomes[0].NSegs(), 4)
	}
}

func TestOpFoldBack_DoublesSurvivingArmInverted(t *testing.T) {
	g, err := NewWildType(1, false)
	require.NoError(t, err)
	results, err := opFoldBack(g)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	for _, r := range results {
		segs := r.Chromosomes[0].Segments
		require.Len(t, segs, 2)
		assert.True(t, segs[0].SameIdentity(segs[1]))
		assert.NotEqual(t, segs[0].IsPlus, segs[1].IsPlus)
	}
}

func TestOpWCDup_AppendsChromosomeCopy(t *testing.T) {
	g, err := NewWildType(2, false)
	require.NoError(t, err)
	results, err := opWCDup(g)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, 3, results[0].NChrs())
}

func TestOpWCDel_RemovesOneChromosomePerResult(t *testing.T) {
	g, err := NewWildType(2, false)
	require.NoError(t, err)
	results, err := opWCDel(g)
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, r := range results {
		assert.Equal(t, 1, r.NChrs())
	}
}

func TestOpWGDup_DoublesEveryChromosome(t *testing.T) {
	g, err := NewWildType(2, false)
	require.NoError(t, err)
	results, err := opWGDup(g)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 4, results[0].NChrs())
	assert.Equal(t, 1, results[0].WGDDepth)
}

func TestOpBalTransloc_ExchangesTails(t *testing.T) {
	g, err := NewWildType(2, false)
	require.NoError(t, err)
	require.NoError(t, g.Chromosomes[0].SpliceOne(0, 2))
	require.NoError(t, g.Chromosomes[1].SpliceOne(0, 2))
	require.NoError(t, g.SpliceAll(Segment{SegIndexes: []int{0}, IsPlus: true}, 2))
	require.NoError(t, g.SpliceAll(Segment{SegIndexes: []int{1}, IsPlus: true}, 2))

	results, err := opBalTransloc(g)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	for _, r := range results {
		assert.Equal(t, 2, r.NChrs())
	}
}

func TestOpUnbalTransloc_ProducesTwoLossVariantsPerBalancedCase(t *testing.T) {
	g, err := NewWildType(2, false)
	require.NoError(t, err)

	balanced, err := balTranslocCandidates(g)
	require.NoError(t, err)
	results, err := opUnbalTransloc(g)
	require.NoError(t, err)
	assert.Len(t, results, 2*len(balanced))
	for _, r := range results {
		assert.Equal(t, 1, r.NChrs())
	}
}
