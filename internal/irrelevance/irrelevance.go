// Package irrelevance performs backward goal-regression analysis over a
// ground task to find facts/operators (or FDR variables/operators) that
// can never contribute to reaching the goal, plus static-fact detection.
//
// Grounded on original_source/ext/cpddl/src/irrelevance.c.
package irrelevance

import (
	"pddlcore/internal/errors"
	"pddlcore/internal/ground"
)

const (
	unmarked = 0
	skip     = 1
	needed   = -1
)

func enqueue(op *ground.Op, factIrr, opIrr []int, opID int, queue *[]int) {
	opIrr[opID] = needed
	for _, f := range op.Pre {
		if factIrr[f] == unmarked {
			factIrr[f] = needed
			*queue = append(*queue, f)
		}
	}
}

func backward(task *ground.Task, cref *ground.CrossRef, factIrr, opIrr []int) {
	var queue []int
	for _, f := range task.Goal {
		if factIrr[f] == unmarked {
			factIrr[f] = needed
			queue = append(queue, f)
		}
	}

	for len(queue) > 0 {
		f := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		cf := cref.Fact[f]
		for _, opID := range cf.OpAdd {
			if opIrr[opID] == unmarked {
				enqueue(task.Op[opID], factIrr, opIrr, opID, &queue)
			}
		}
		for _, opID := range cf.OpDel {
			if opIrr[opID] == unmarked {
				enqueue(task.Op[opID], factIrr, opIrr, opID, &queue)
			}
		}
	}
}

// Analysis runs backward irrelevance analysis over task: a fact is
// relevant if its value is needed to reach the goal; an operator is
// relevant if some relevant fact's precondition depends on it. Static
// facts (never added or deleted by any operator, true in the initial
// state) are detected as a special case and reported separately.
//
// seedIrrelevantFacts/seedIrrelevantOps let a caller pre-mark ids as
// already known irrelevant (skipped, not re-exported), matching
// pddlIrrelevanceAnalysis's optional input sets.
//
// Grounded on pddlIrrelevanceAnalysis. Returns a *errors.PlannerError when
// task.HasCondEff, matching the C source's refusal to run over
// conditional effects (the only STRIPS consumers allowed to call this are
// guaranteed conditional-effect-free).
func Analysis(task *ground.Task, seedIrrelevantFacts, seedIrrelevantOps ground.IntSet) (irrelevantFacts, irrelevantOps, staticFacts ground.IntSet, err error) {
	if task.HasCondEff {
		return nil, nil, nil, errors.New(errors.ErrorPipelineUnsupportedInput, "irrelevance",
			"irrelevance analysis does not support conditional effects").Build()
	}

	cref := ground.NewCrossRef(task)
	factIrr := make([]int, len(task.Fact))
	opIrr := make([]int, len(task.Op))

	for _, f := range seedIrrelevantFacts {
		factIrr[f] = skip
	}
	for _, o := range seedIrrelevantOps {
		opIrr[o] = skip
	}

	for f := range task.Fact {
		if len(cref.Fact[f].OpAdd) == 0 && len(cref.Fact[f].OpDel) == 0 && cref.Fact[f].IsInit {
			factIrr[f] = skip
			staticFacts.Add(f)
		}
	}

	backward(task, cref, factIrr, opIrr)

	for f := range task.Fact {
		if factIrr[f] >= 0 && !seedIrrelevantFacts.Has(f) {
			irrelevantFacts.Add(f)
		}
	}
	for o := range task.Op {
		if opIrr[o] >= 0 && !seedIrrelevantOps.Has(o) {
			irrelevantOps.Add(o)
		}
	}

	return irrelevantFacts, irrelevantOps, staticFacts, nil
}
