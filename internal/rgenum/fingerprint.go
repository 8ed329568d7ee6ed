package rgenum

import (
	"fmt"
	"strconv"
	"strings"
)

// Fingerprint computes the canonical, representation-invariant string
// identifying g up to chromosome permutation, per-chromosome reversal, and
// genome-wide relabeling of which parental allele is called "maternal" (a
// symmetry of any diploid genome, since the maternal/paternal tags are an
// arbitrary naming convention rather than an intrinsic property of a
// locus). g is expected to already be simplified; Fingerprint does not
// simplify its input.
func Fingerprint(g Genome) string {
	plain := canonicalString(g)
	flipped := canonicalString(flipMaternal(g))
	if flipped < plain {
		return flipped
	}
	return plain
}

func flipMaternal(g Genome) Genome {
	out := g.Clone()
	for ci := range out.Chromosomes {
		segs := out.Chromosomes[ci].Segments
		for si := range segs {
			segs[si].IsMaternal = !segs[si].IsMaternal
		}
	}
	for si := range out.GenomeSegs {
		out.GenomeSegs[si].IsMaternal = !out.GenomeSegs[si].IsMaternal
	}
	return out
}

// idGroup records the canonical numbering chosen, within one branch, for
// every segment identity sharing a single (root chromosome, allele) locus.
type idGroup struct {
	ids map[string]int
	rev bool
}

// branch is one candidate representation in the fingerprint's
// branch-and-bound search: the partial output string for chromosomes
// already emitted, which chromosome indices have been used, the id
// assignment chosen so far per (root, allele) group, and the next free
// canonical id.
type branch struct {
	out     string
	used    map[int]bool
	groups  map[string]*idGroup
	nextID  int
	refLens []int
}

func newBranch() branch {
	return branch{used: map[int]bool{}, groups: map[string]*idGroup{}}
}

func (b branch) clone() branch {
	nb := branch{
		out:     b.out,
		nextID:  b.nextID,
		used:    make(map[int]bool, len(b.used)),
		groups:  make(map[string]*idGroup, len(b.groups)),
		refLens: append([]int(nil), b.refLens...),
	}
	for k, v := range b.used {
		nb.used[k] = v
	}
	for k, v := range b.groups {
		ids := make(map[string]int, len(v.ids))
		for ik, iv := range v.ids {
			ids[ik] = iv
		}
		nb.groups[k] = &idGroup{ids: ids, rev: v.rev}
	}
	return nb
}

// canonicalString runs the branch-and-bound search described in the
// canonical fingerprint algorithm: every chromosome ordering and per-
// chromosome orientation is explored, pruning to the lexicographically
// smallest partial string after each chromosome is fully emitted.
func canonicalString(g Genome) string {
	n := len(g.Chromosomes)
	if n == 0 {
		return "[]"
	}

	frontier := []branch{newBranch()}
	for round := 0; round < n; round++ {
		var next []branch
		for _, b := range frontier {
			for c := 0; c < n; c++ {
				if b.used[c] {
					continue
				}
				for _, rev := range []bool{false, true} {
					next = append(next, emitChromosome(g, b, c, rev)...)
				}
			}
		}
		frontier = pruneMinimal(next)
	}

	for i := range frontier {
		frontier[i].out += "[" + joinInts(frontier[i].refLens) + "]"
	}
	frontier = pruneMinimal(frontier)
	return frontier[0].out
}

type segToken struct {
	branch branch
	token  string
}

// emitChromosome appends the emission of chromosome index c, in the given
// orientation, to b: "{" + semicolon-joined per-segment tokens + "}". A
// segment whose (root, allele) locus is new to b forks two sub-branches,
// one numbering that locus's segments in forward genome_segs order, one in
// reverse.
func emitChromosome(g Genome, b branch, c int, reversed bool) []branch {
	segs := g.Chromosomes[c].Segments
	ordered := make([]Segment, len(segs))
	copy(ordered, segs)
	if reversed {
		for i, j := 0, len(ordered)-1; i < j; i, j = i+1, j-1 {
			ordered[i], ordered[j] = ordered[j], ordered[i]
		}
		for i := range ordered {
			ordered[i].IsPlus = !ordered[i].IsPlus
		}
	}

	type state struct {
		branch branch
		tokens []string
	}
	states := []state{{branch: b.clone(), tokens: nil}}

	for _, seg := range ordered {
		var nextStates []state
		for _, st := range states {
			for _, r := range emitSegment(g, st.branch, seg) {
				nextStates = append(nextStates, state{branch: r.branch, tokens: append(append([]string(nil), st.tokens...), r.token)})
			}
		}
		states = nextStates
	}

	out := make([]branch, 0, len(states))
	for _, st := range states {
		nb := st.branch
		nb.used[c] = true
		nb.out += "{" + strings.Join(st.tokens, ";") + "}"
		out = append(out, nb)
	}
	return out
}

// emitSegment resolves one segment's token, forking when its (root,
// allele) locus has not yet been assigned canonical ids in b.
func emitSegment(g Genome, b branch, seg Segment) []segToken {
	groupKey := groupKeyOf(seg)
	if grp, ok := b.groups[groupKey]; ok {
		canonID := grp.ids[seg.IdentityKey()]
		return []segToken{{branch: b, token: encodeToken(canonID, seg.IsMaternal, grp.rev, seg.IsPlus)}}
	}

	entries := locusEntries(g, seg.SegIndexes[0], seg.IsMaternal)
	results := make([]segToken, 0, 2)
	for _, rev := range []bool{false, true} {
		nb := b.clone()
		ordered := append([]Segment(nil), entries...)
		if rev {
			for i, j := 0, len(ordered)-1; i < j; i, j = i+1, j-1 {
				ordered[i], ordered[j] = ordered[j], ordered[i]
			}
		}
		ids := make(map[string]int, len(ordered))
		base := nb.nextID
		for i, e := range ordered {
			ids[e.IdentityKey()] = base + i
		}
		nb.nextID = base + len(ordered)
		nb.groups[groupKey] = &idGroup{ids: ids, rev: rev}
		nb.refLens = append(nb.refLens, len(ordered))

		canonID := ids[seg.IdentityKey()]
		results = append(results, segToken{branch: nb, token: encodeToken(canonID, seg.IsMaternal, rev, seg.IsPlus)})
	}
	return results
}

func groupKeyOf(seg Segment) string {
	return fmt.Sprintf("%d|%v", seg.SegIndexes[0], seg.IsMaternal)
}

// locusEntries returns every GenomeSegs entry belonging to the exact
// (rootID, isMaternal) locus, in genome_segs order.
func locusEntries(g Genome, rootID int, isMaternal bool) []Segment {
	var out []Segment
	for _, s := range g.GenomeSegs {
		if len(s.SegIndexes) > 0 && s.SegIndexes[0] == rootID && s.IsMaternal == isMaternal {
			out = append(out, s)
		}
	}
	return out
}

func encodeToken(canonID int, isMaternal, groupRev, isPlus bool) string {
	mat := 0
	if isMaternal {
		mat = 1
	}
	rev := 0
	if groupRev != !isPlus {
		rev = 1
	}
	return fmt.Sprintf("%d,%d,%d", canonID, mat, rev)
}

func pruneMinimal(branches []branch) []branch {
	if len(branches) <= 1 {
		return branches
	}
	min := branches[0].out
	for _, b := range branches[1:] {
		if b.out < min {
			min = b.out
		}
	}
	out := branches[:0]
	for _, b := range branches {
		if b.out == min {
			out = append(out, b)
		}
	}
	return out
}

func joinInts(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
