package rgenum

import (
	"fmt"

	"go.uber.org/zap"
)

// Config bounds a search. MaxDepthNonDup caps total depth (every event,
// duplicative or not) an expanded history may reach; MaxDepthDup separately
// caps the count of duplicative events (TD/InvDup/FoldBack/WCDup/WGDup)
// within that history, gating the duplicative operators even while
// MaxDepthNonDup still has headroom.
type Config struct {
	MaxDepthDup    int
	MaxDepthNonDup int
	EnableInvDup   bool
}

// Engine owns one enumeration run: the bounds on expansion, the dedup
// table of genomes already seen, and an optional progress logger.
type Engine struct {
	cfg     Config
	seen    map[string][]HistoryEntry
	records []Record
	logger  *zap.SugaredLogger
}

// NewEngine builds an Engine ready to enumerate from a starting genome.
func NewEngine(cfg Config, logger *zap.SugaredLogger) *Engine {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Engine{cfg: cfg, seen: map[string][]HistoryEntry{}, logger: logger}
}

// Records returns every emitted record accumulated so far.
func (e *Engine) Records() []Record {
	return e.records
}

// Run enumerates every reachable, depth-bounded rearrangement history
// starting from root and returns the accumulated records.
func (e *Engine) Run(root Genome) ([]Record, error) {
	if err := e.Bridge(root); err != nil {
		return nil, err
	}
	return e.records, nil
}

// Bridge is the entry point shared by the outermost call and every
// operator: it decides, for a candidate genome produced by one operator
// application, whether to emit it, and if so whether to keep expanding
// from it. allowedAfterFoldBack restricts the lineage to TelBreak/FoldBack
// once true, matching the reference implementation's
// handle_next_step_after_fold_back.
func (e *Engine) Bridge(g Genome) error {
	return e.handleNextStep(g, false)
}

func (e *Engine) handleNextStep(g Genome, afterFoldBack bool) error {
	simplified := Simplify(g)
	key := Fingerprint(simplified)

	if prior, ok := e.seen[key]; ok {
		prevDepth, prevDupDepth, _ := historyDepths(prior)
		if prevDepth <= g.Depth() && prevDupDepth <= g.DupDepth {
			e.logger.Debugw("duplicate fingerprint, prior derivation not worse", "fingerprint", key)
			e.records = append(e.records, buildRecordFromHistory(simplified, prior))
			return nil
		}
		e.logger.Debugw("duplicate fingerprint, new derivation replaces prior", "fingerprint", key)
	}
	e.seen[key] = g.History

	e.emit(simplified, g)

	if afterFoldBack {
		return e.expandAfterFoldBack(g)
	}
	return e.Expand(g)
}

// emit appends the record for g to the accumulated output. simplified is
// g after Simplify, used for the cn_profile and junction summaries.
func (e *Engine) emit(simplified, raw Genome) {
	e.records = append(e.records, BuildRecord(simplified, raw))
}

// Expand applies every enabled operator to g at every eligible position
// and recurses into each resulting genome via handleNextStep, honoring
// the DupDepth/NonDupDepth bounds in e.cfg.
func (e *Engine) Expand(g Genome) error {
	if g.Depth() >= e.cfg.MaxDepthNonDup {
		return nil
	}

	for _, op := range []func(Genome) ([]Genome, error){opDel, opInv, opTelBreak, opBalTransloc, opUnbalTransloc} {
		if err := e.applyOp(op, g, false); err != nil {
			return err
		}
	}
	if g.NChrs() > 1 {
		if err := e.applyOp(opWCDel, g, false); err != nil {
			return err
		}
	}

	if g.DupDepth < e.cfg.MaxDepthDup {
		ops := []func(Genome) ([]Genome, error){opTD, opWCDup}
		if e.cfg.EnableInvDup {
			ops = append(ops, opInvDup)
		}
		for _, op := range ops {
			if err := e.applyOp(op, g, false); err != nil {
				return err
			}
		}

		if err := e.applyOp(opFoldBack, g, true); err != nil {
			return fmt.Errorf("expand: fold_back: %w", err)
		}

		if g.WGDDepth == 0 {
			if err := e.applyOp(opWGDup, g, false); err != nil {
				return err
			}
		}
	}

	return nil
}

func (e *Engine) applyOp(op func(Genome) ([]Genome, error), g Genome, afterFoldBack bool) error {
	results, err := op(g)
	if err != nil {
		return err
	}
	return e.applyAndRecurse(results, afterFoldBack)
}

// expandAfterFoldBack is the restricted expansion used once a lineage has
// produced a fold-back: only further telomere breaks and fold-backs are
// permitted, matching the reference implementation's BFB restriction.
func (e *Engine) expandAfterFoldBack(g Genome) error {
	if g.Depth() >= e.cfg.MaxDepthNonDup {
		return nil
	}

	if err := e.applyOp(opTelBreak, g, true); err != nil {
		return err
	}

	if g.DupDepth < e.cfg.MaxDepthDup {
		if err := e.applyOp(opFoldBack, g, true); err != nil {
			return fmt.Errorf("expand_after_fold_back: %w", err)
		}
	}

	return nil
}

func (e *Engine) applyAndRecurse(results []Genome, afterFoldBack bool) error {
	for _, r := range results {
		if err := e.handleNextStep(r, afterFoldBack); err != nil {
			return err
		}
	}
	return nil
}
