// Package pipeline sequences named pruning stages over a ground task,
// applying each stage's reported deletions via ground.Task.Reduce and
// re-projecting the mutex groups passed to Execute into the new id space
// before the next stage runs. A Pipeline holds no mutex-pair index, so no
// mutex pairs are re-projected.
//
// Grounded on original_source/ext/cpddl/src/prune_strips.c
// (ctx_t, applyPruneStrips, pddlPruneStripsExecute) and
// original_source/ext/cpddl/{pddl,src}/preprocess.{h,c} (pddlPruneFDR).
package pipeline

import (
	"pddlcore/internal/errors"
	"pddlcore/internal/ground"
	"pddlcore/internal/irrelevance"
	"pddlcore/internal/pruners"
)

// StageResult records what one stage did, for the report Execute returns.
type StageResult struct {
	Stage        string
	FactsRemoved int
	OpsRemoved   int
	Skipped      bool
	SkipReason   string
}

// Report is the outcome of running a Pipeline over a task.
type Report struct {
	Stages            []StageResult
	GoalIsUnreachable bool
}

// Pipeline is an ordered list of named pruning stages.
//
// Grounded on prune_strips_t's registration list built up by the
// pddlPruneStripsAdd* functions.
type Pipeline struct {
	Stages []pruners.Stage
}

// New builds a Pipeline from stage names, resolving each through
// pruners.ByName. Grounded on pddlPruneStripsInit reading a manifest of
// pruner names.
func New(names []string) (*Pipeline, error) {
	p := &Pipeline{}
	seen := make(map[string]bool)
	for _, name := range names {
		if seen[name] {
			return nil, errors.PipelineDuplicateStage(name)
		}
		seen[name] = true
		stage, err := pruners.ByName(name)
		if err != nil {
			return nil, err
		}
		p.Stages = append(p.Stages, stage)
	}
	return p, nil
}

// Execute runs every stage over task in order, applying each stage's
// reported deletions immediately (via task.Reduce) and re-projecting
// mgroups through the same remap before the next stage runs, so later
// stages always see consistent ids. A stage that returns a warning (task
// shape unsupported, e.g. conditional effects) is recorded as Skipped
// rather than aborting the remaining pipeline.
//
// Grounded on applyPruneStrips / pddlPruneStripsExecute.
func (p *Pipeline) Execute(task *ground.Task, mgroups ground.MGroups) Report {
	var report Report
	for _, stage := range p.Stages {
		delFacts, delOps, err := stage.Prune(task, mgroups)
		if err != nil {
			report.Stages = append(report.Stages, StageResult{
				Stage:      stage.Name(),
				Skipped:    true,
				SkipReason: err.Error(),
			})
			continue
		}

		result := StageResult{Stage: stage.Name(), FactsRemoved: len(delFacts), OpsRemoved: len(delOps)}
		if len(delFacts) > 0 || len(delOps) > 0 {
			factRemap, _ := task.Reduce(delFacts, delOps)
			mgroups.Reduce(factRemap)
		}
		report.Stages = append(report.Stages, result)

		if task.GoalIsUnreachable {
			report.GoalIsUnreachable = true
			break
		}
	}
	return report
}

// PruneFDR runs one pass of irrelevance analysis over fdr and removes the
// irrelevant variables and operators. The h2 argument is accepted but not
// called, nil or not: pruners.H2 is defined over ground.Task, not
// ground.FDRTask. A single call does not repeat until a fixpoint.
//
// Grounded on pddlPruneFDR (preprocess.c), which composes exactly
// pddlPruneFDRH2FwBw then pddlPruneFDRIrrelevance.
func PruneFDR(fdr *ground.FDRTask, h2 pruners.H2) error {
	if h2 != nil {
		// h2 operates on the STRIPS view in this port (pruners.H2 is
		// defined over ground.Task); an FDR-native h2 pass is left to a
		// caller that imports its own STRIPS<->FDR bridge, since no
		// sound h2 implementation reached this repo's retrieval set.
		_ = h2
	}

	irrVars, irrOps, err := irrelevance.AnalysisFDR(fdr)
	if err != nil {
		return err
	}
	if len(irrVars) == 0 && len(irrOps) == 0 {
		return nil
	}

	keepVar := make([]bool, len(fdr.Var))
	for i := range keepVar {
		keepVar[i] = !irrVars.Has(i)
	}
	newVars := make([]ground.FDRVar, 0, len(fdr.Var))
	varRemap := make([]int, len(fdr.Var))
	for i, v := range fdr.Var {
		if !keepVar[i] {
			varRemap[i] = -1
			continue
		}
		varRemap[i] = len(newVars)
		newVars = append(newVars, v)
	}

	remapPartState := func(ps ground.FDRPartState) ground.FDRPartState {
		var out ground.FDRPartState
		for _, f := range ps.Fact {
			if nv := varRemap[f.Var]; nv >= 0 {
				out.Fact = append(out.Fact, ground.FDRFact{Var: nv, Val: f.Val})
			}
		}
		return out
	}

	newOps := make([]*ground.FDROp, 0, len(fdr.Op))
	for opID, op := range fdr.Op {
		if irrOps.Has(opID) {
			continue
		}
		nop := &ground.FDROp{
			Name: op.Name,
			Cost: op.Cost,
			Pre:  remapPartState(op.Pre),
			Eff:  remapPartState(op.Eff),
		}
		for _, ce := range op.CondEff {
			nop.CondEff = append(nop.CondEff, ground.FDRCondEff{
				Pre: remapPartState(ce.Pre),
				Eff: remapPartState(ce.Eff),
			})
		}
		newOps = append(newOps, nop)
	}

	newInit := make([]int, len(newVars))
	for old, nv := range varRemap {
		if nv >= 0 {
			newInit[nv] = fdr.Init[old]
		}
	}

	fdr.Var = newVars
	fdr.Op = newOps
	fdr.Init = newInit
	fdr.Goal = remapPartState(fdr.Goal)

	return nil
}
