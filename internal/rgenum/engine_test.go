package rgenum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_Run_EmitsWildTypeFirst(t *testing.T) {
	root, err := NewWildType(1, false)
	require.NoError(t, err)

	engine := NewEngine(Config{MaxDepthDup: 1, MaxDepthNonDup: 1}, nil)
	records, err := engine.Run(root)
	require.NoError(t, err)
	require.NotEmpty(t, records)

	assert.Equal(t, " ", records[0].History)
	assert.Equal(t, 0, records[0].Depth)
}

// A fingerprint may be rediscovered via an unrelated derivation (e.g.
// losing either of two otherwise-identical chromosomes in a wild-type
// genome yields isomorphic genomes): the engine re-emits it rather than
// silently dropping the duplicate, so long as no later emission of that
// fingerprint ever improves on an earlier one in both depth measures at
// once.
func TestEngine_Run_RepeatedFingerprintsNeverStrictlyImprove(t *testing.T) {
	root, err := NewWildType(2, false)
	require.NoError(t, err)

	engine := NewEngine(Config{MaxDepthDup: 2, MaxDepthNonDup: 2}, nil)
	records, err := engine.Run(root)
	require.NoError(t, err)

	best := map[string]Record{}
	for _, rec := range records {
		prior, ok := best[rec.Fingerprint]
		if ok {
			strictlyBetter := rec.Depth < prior.Depth && rec.DupDepth < prior.DupDepth
			assert.False(t, strictlyBetter, "fingerprint %s re-emitted strictly better than an earlier record", rec.Fingerprint)
		}
		if !ok || (rec.Depth <= prior.Depth && rec.DupDepth <= prior.DupDepth) {
			best[rec.Fingerprint] = rec
		}
	}
}

func TestEngine_Run_RespectsDepthBounds(t *testing.T) {
	root, err := NewWildType(1, false)
	require.NoError(t, err)

	engine := NewEngine(Config{MaxDepthDup: 1, MaxDepthNonDup: 1}, nil)
	records, err := engine.Run(root)
	require.NoError(t, err)

	for _, rec := range records {
		assert.LessOrEqual(t, rec.DupDepth, 1)
		assert.LessOrEqual(t, rec.Depth, 1)
	}
}

func TestEngine_Run_FoldBackRestrictsLineage(t *testing.T) {
	root, err := NewWildType(1, false)
	require.NoError(t, err)

	engine := NewEngine(Config{MaxDepthDup: 2, MaxDepthNonDup: 2}, nil)
	records, err := engine.Run(root)
	require.NoError(t, err)

	for _, rec := range records {
		if rec.History == " " {
			continue
		}
		tags := splitTags(rec.History)
		for i, tag := range tags {
			if tag == "fb" {
				for _, after := range tags[i+1:] {
					assert.Contains(t, []string{"tb", "fb"}, after, "history %q continues past fold_back with %q", rec.DetailedHistory, after)
				}
			}
		}
	}
}

func splitTags(history string) []string {
	var out []string
	start := 0
	for i := 0; i <= len(history); i++ {
		if i == len(history) || history[i] == '-' {
			out = append(out, history[start:i])
			start = i + 1
		}
	}
	return out
}
