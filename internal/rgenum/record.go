package rgenum

import (
	"fmt"
	"sort"
	"strings"
)

// Record is one emitted genome in the enumeration: the history that
// produced it plus the several derived views the output writer renders
// as columns.
type Record struct {
	Depth           int
	DupDepth        int
	WGDDepth        int
	History         string
	DetailedHistory string
	CNProfile       string
	Junctions       string
	Fingerprint     string
}

// BuildRecord derives every column of a Record. simplified is the
// post-Simplify genome used for the copy-number profile and junction
// summary and the fingerprint; raw is the pre-Simplify genome used for
// the history label's application indices.
func BuildRecord(simplified, raw Genome) Record {
	return buildRecordFromHistory(simplified, raw.History)
}

// buildRecordFromHistory builds a Record whose depth measures and history
// labels are derived from history rather than from the genome that
// produced simplified. handleNextStep uses this to emit a rediscovered
// fingerprint under its previously stored (better-or-equal) derivation,
// per the reference implementation's handle_next_step replace-or-keep
// dispatch.
func buildRecordFromHistory(simplified Genome, history []HistoryEntry) Record {
	depth, dupDepth, wgdDepth := historyDepths(history)
	return Record{
		Depth:           depth,
		DupDepth:        dupDepth,
		WGDDepth:        wgdDepth,
		History:         historyLabel(history),
		DetailedHistory: detailedHistoryLabel(history),
		CNProfile:       cnProfile(simplified),
		Junctions:       junctionSummary(simplified),
		Fingerprint:     Fingerprint(simplified),
	}
}

// historyDepths recovers (depth, dup_depth, wgd_depth) by parsing a stored
// history, matching the reference implementation's practice of deriving
// both depth measures from the detailed history string alone.
func historyDepths(h []HistoryEntry) (depth, dupDepth, wgdDepth int) {
	depth = len(h)
	for _, e := range h {
		if e.Kind.isDuplicative() {
			dupDepth++
		}
		if e.Kind == WGDup {
			wgdDepth++
		}
	}
	return depth, dupDepth, wgdDepth
}

// historyLabel renders the event tags in application order, "-"-joined,
// e.g. "del-td-fb". The root (no history) renders as a single space, per
// spec.md §6.
func historyLabel(h []HistoryEntry) string {
	if len(h) == 0 {
		return " "
	}
	tags := make([]string, len(h))
	for i, e := range h {
		tags[i] = e.Kind.tag()
	}
	return strings.Join(tags, "-")
}

// detailedHistoryLabel renders each event as its tag immediately followed
// by its application index (no separator between them), "-"-joined across
// events, e.g. "del0-td2-fb0". The root renders as a single space, per
// spec.md §6.
func detailedHistoryLabel(h []HistoryEntry) string {
	if len(h) == 0 {
		return " "
	}
	parts := make([]string, len(h))
	for i, e := range h {
		parts[i] = fmt.Sprintf("%s%d", e.Kind.tag(), e.AppIndex)
	}
	return strings.Join(parts, "-")
}

// cnProfile reports, per locus in genome_segs order, the paternal and
// maternal copy numbers as "paternal,maternal". genome_segs carries
// paternal and maternal identities as distinct entries (is_maternal is
// part of identity, per Segment.SameIdentity), so all entries naming the
// same seg_indexes are folded into a single per-locus pair here, placed at
// the position of the first such entry.
// Consecutive loci are separated by "/" when they share a root chromosome
// (seg_indexes[0] equal) and ";" otherwise; the profile ends with a
// trailing space after the last locus.
func cnProfile(g Genome) string {
	counts := make(map[string][2]int, len(g.GenomeSegs))
	type locus struct {
		root int
		key  string
	}
	var order []locus
	seen := map[string]bool{}
	for _, s := range g.GenomeSegs {
		key := segIndexKey(s.SegIndexes)
		if !seen[key] {
			seen[key] = true
			order = append(order, locus{root: s.SegIndexes[0], key: key})
		}
	}
	for _, chr := range g.Chromosomes {
		for _, s := range chr.Segments {
			key := segIndexKey(s.SegIndexes)
			c := counts[key]
			if s.IsMaternal {
				c[1]++
			} else {
				c[0]++
			}
			counts[key] = c
		}
	}

	var b strings.Builder
	for i, l := range order {
		if i > 0 {
			if l.root == order[i-1].root {
				b.WriteString("/")
			} else {
				b.WriteString(";")
			}
		}
		c := counts[l.key]
		fmt.Fprintf(&b, "%d,%d", c[0], c[1])
	}
	b.WriteString(" ")
	return b.String()
}

// segIndexKey renders a seg_indexes path as a map key, ignoring
// is_maternal, so paternal and maternal genome_segs entries for the same
// locus collapse to one cn_profile column.
func segIndexKey(segIndexes []int) string {
	var b strings.Builder
	for _, v := range segIndexes {
		fmt.Fprintf(&b, "%d.", v)
	}
	return b.String()
}

// junctionEndpoint is one side of a realised adjacency: the segment's
// canonical genome_segs position and the printed sign of the side facing
// into the junction.
type junctionEndpoint struct {
	id   int
	plus bool
}

func (e junctionEndpoint) less(o junctionEndpoint) bool {
	if e.id != o.id {
		return e.id < o.id
	}
	return !e.plus && o.plus // '-' sorts before '+'
}

func (e junctionEndpoint) String() string {
	sign := "+"
	if !e.plus {
		sign = "-"
	}
	return fmt.Sprintf("%d%s", e.id, sign)
}

// junction is one realised, non-reference-consistent adjacency, its two
// endpoints already ordered low-before-high per junctionLabel.
type junction struct{ low, high junctionEndpoint }

// junctionSummary reports every realised adjacency that is not
// reference-consistent, deduplicated and sorted by (low-end id, low-end
// side) then (high-end id, high-end side), encoded "s1{+|-},s2{+|-}".
// Natural reference-consistent adjacencies are excluded: they are never
// junctions, they are the uninterrupted reference.
func junctionSummary(g Genome) string {
	ids := make(map[string]int, len(g.GenomeSegs))
	for _, s := range g.GenomeSegs {
		key := s.IdentityKey()
		if _, ok := ids[key]; !ok {
			ids[key] = len(ids)
		}
	}

	seen := map[junction]bool{}
	var junctions []junction
	for _, chr := range g.Chromosomes {
		for i := 0; i+1 < len(chr.Segments); i++ {
			left, right := chr.Segments[i], chr.Segments[i+1]
			if isNaturalAdjacency(left, right) {
				continue
			}
			j := junctionLabel(ids, left, right)
			if !seen[j] {
				seen[j] = true
				junctions = append(junctions, j)
			}
		}
	}

	sort.Slice(junctions, func(i, k int) bool {
		a, b := junctions[i], junctions[k]
		if a.low != b.low {
			return a.low.less(b.low)
		}
		return a.high.less(b.high)
	})

	parts := make([]string, len(junctions))
	for i, j := range junctions {
		parts[i] = fmt.Sprintf("%s,%s", j.low, j.high)
	}
	return strings.Join(parts, ",")
}

func isNaturalAdjacency(left, right Segment) bool {
	if !sameRoot(left, right) {
		return false
	}
	if left.IsPlus && right.IsPlus {
		return adjacentIndex(left, right, true)
	}
	if !left.IsPlus && !right.IsPlus {
		return adjacentIndex(right, left, true)
	}
	return false
}

func adjacentIndex(earlier, later Segment, plus bool) bool {
	n := len(earlier.SegIndexes)
	if n != len(later.SegIndexes) {
		return false
	}
	for i := 0; i < n-1; i++ {
		if earlier.SegIndexes[i] != later.SegIndexes[i] {
			return false
		}
	}
	return later.SegIndexes[n-1] == earlier.SegIndexes[n-1]+1
}

// junctionLabel derives the two endpoints of the adjacency between left and
// right: the outgoing side of left (sign of its is_plus) and the incoming
// side of right (sign of its ¬is_plus), then orders them low-before-high by
// (id, side) so the same physical junction canonicalizes identically
// regardless of which chromosome or direction it was encountered in.
func junctionLabel(ids map[string]int, left, right Segment) junction {
	a := junctionEndpoint{id: ids[left.IdentityKey()], plus: left.IsPlus}
	b := junctionEndpoint{id: ids[right.IdentityKey()], plus: !right.IsPlus}
	if a.less(b) {
		return junction{low: a, high: b}
	}
	return junction{low: b, high: a}
}
