// Package pruners implements the individual named pruning stages the
// pipeline composes: irrelevance, DTG-unreachability, FAM-group dead-end
// detection, and operator deduplication, plus pluggable interfaces for the
// h2/h3 delete-relaxation pruners (no sound, complete h2/h3 implementation
// is in the retrieved corpus; a default no-op stands in and a caller may
// supply a real one).
//
// Grounded on original_source/ext/cpddl/src/prune_strips.c
// (pddlPruneStripsAddIrrelevance, pddlPruneStripsAddUnreachableInDTGs,
// pddlPruneStripsAddFAMGroupDeadEnd, pddlPruneStripsAddH2,
// pddlPruneStripsAddH2FwBw, pddlPruneStripsAddH3,
// pddlPruneStripsAddDeduplicateOps).
package pruners

import (
	"pddlcore/internal/dtg"
	"pddlcore/internal/errors"
	"pddlcore/internal/ground"
	"pddlcore/internal/irrelevance"
)

// Stage is one named pruning pass over a task: it reports which facts and
// operators are safe to remove, or a warning when the task's shape (most
// commonly conditional effects) disqualifies it. Grounded on
// prune_strips_t's prune function pointer.
type Stage interface {
	Name() string
	Prune(task *ground.Task, mgroups ground.MGroups) (delFacts, delOps ground.IntSet, warn error)
}

type stageFunc struct {
	name string
	fn   func(task *ground.Task, mgroups ground.MGroups) (ground.IntSet, ground.IntSet, error)
}

func (s stageFunc) Name() string { return s.name }
func (s stageFunc) Prune(task *ground.Task, mgroups ground.MGroups) (ground.IntSet, ground.IntSet, error) {
	return s.fn(task, mgroups)
}

// Irrelevance wraps internal/irrelevance.Analysis as a Stage: facts/ops
// the backward goal-regression walk never marks needed are pruned.
//
// Grounded on pddlPruneStripsAddIrrelevance.
func Irrelevance() Stage {
	return stageFunc{name: "irrelevance", fn: func(task *ground.Task, _ ground.MGroups) (ground.IntSet, ground.IntSet, error) {
		facts, ops, _, err := irrelevance.Analysis(task, nil, nil)
		return facts, ops, err
	}}
}

// UnreachableInDTGs wraps internal/dtg.UnreachableInMGroupsDTGs as a Stage:
// facts/ops a mutex group's own domain-transition graph can never reach
// from its initial member are pruned.
//
// Grounded on pddlPruneStripsAddUnreachableInDTGs.
func UnreachableInDTGs() Stage {
	return stageFunc{name: "unreachable-in-dtgs", fn: func(task *ground.Task, mgroups ground.MGroups) (ground.IntSet, ground.IntSet, error) {
		var facts, ops ground.IntSet
		dtg.UnreachableInMGroupsDTGs(task, mgroups, &facts, &ops)
		return facts, ops, nil
	}}
}

// FAMGroupDeadEnd prunes operators that can never fire: an operator whose
// precondition pins two facts that the same fact-alternating-mutex group
// proves can never hold together is a dead end and is removed outright (no
// facts are pruned by this stage, only operators).
//
// This is the sound-but-incomplete default spec.md documents for h2/h3's
// sibling stage: it only catches the FAM-group case, not the full
// h2-style pairwise-mutex dead-end search (that needs a MutexPairs index
// built by an external mutex-inference pass, out of this package's
// scope).
//
// Grounded on pddlPruneStripsAddFAMGroupDeadEnd.
func FAMGroupDeadEnd() Stage {
	return stageFunc{name: "fam-group-dead-end", fn: func(task *ground.Task, mgroups ground.MGroups) (ground.IntSet, ground.IntSet, error) {
		var delOps ground.IntSet
		for opID, op := range task.Op {
			if preIsDeadEnd(op.Pre, mgroups) {
				delOps.Add(opID)
			}
		}
		return nil, delOps, nil
	}}
}

// preIsDeadEnd reports whether pre pins two or more members of the same
// fact-alternating-mutex group (IsFAMGroup set), which can never hold at
// once.
func preIsDeadEnd(pre ground.IntSet, mgroups ground.MGroups) bool {
	for _, mg := range mgroups {
		if !mg.IsFAMGroup {
			continue
		}
		if len(ground.Intersect(pre, mg.Fact)) > 1 {
			return true
		}
	}
	return false
}

// DeduplicateOps removes every operator that is a byte-for-byte duplicate
// (same pre/add/del/cost) of an earlier-numbered operator, keeping the
// first occurrence.
//
// Grounded on pddlPruneStripsAddDeduplicateOps.
func DeduplicateOps() Stage {
	return stageFunc{name: "deduplicate-ops", fn: func(task *ground.Task, _ ground.MGroups) (ground.IntSet, ground.IntSet, error) {
		var delOps ground.IntSet
		seen := make(map[string]bool)
		for opID, op := range task.Op {
			key := opKey(op)
			if seen[key] {
				delOps.Add(opID)
				continue
			}
			seen[key] = true
		}
		return nil, delOps, nil
	}}
}

func opKey(op *ground.Op) string {
	b := make([]byte, 0, 64)
	appendSet := func(s ground.IntSet) {
		for _, v := range s {
			b = appendInt(b, v)
			b = append(b, ',')
		}
		b = append(b, ';')
	}
	appendSet(op.Pre)
	appendSet(op.Add)
	appendSet(op.Del)
	b = appendInt(b, op.Cost)
	return string(b)
}

func appendInt(b []byte, v int) []byte {
	if v == 0 {
		return append(b, '0')
	}
	if v < 0 {
		b = append(b, '-')
		v = -v
	}
	start := len(b)
	for v > 0 {
		b = append(b, byte('0'+v%10))
		v /= 10
	}
	for i, j := start, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return b
}

// H2 is the pluggable delete-relaxation h2 dead-operator detector. No
// sound h2 implementation is in the retrieved corpus (lm_cut.c/hmax.c were
// not part of the retrieval); a caller that has one supplies it here.
// Grounded on pddlPruneStripsAddH2's call shape, not its body.
type H2 interface {
	DeadOps(task *ground.Task) (ground.IntSet, error)
}

// H3 is the pluggable triple-relaxation h3 dead-operator detector,
// analogous to H2 but over fact pairs-of-pairs. Same caveat as H2.
type H3 interface {
	DeadOps(task *ground.Task) (ground.IntSet, error)
}

// H2Stage adapts an H2 implementation into a Stage. A nil impl is a no-op
// (reports nothing dead), matching "h2 unavailable, skip" rather than
// failing the pipeline.
func H2Stage(impl H2) Stage {
	return stageFunc{name: "h2", fn: func(task *ground.Task, _ ground.MGroups) (ground.IntSet, ground.IntSet, error) {
		if impl == nil {
			return nil, nil, nil
		}
		ops, err := impl.DeadOps(task)
		return nil, ops, err
	}}
}

// H3Stage adapts an H3 implementation into a Stage, same no-op-when-nil
// convention as H2Stage.
func H3Stage(impl H3) Stage {
	return stageFunc{name: "h3", fn: func(task *ground.Task, _ ground.MGroups) (ground.IntSet, ground.IntSet, error) {
		if impl == nil {
			return nil, nil, nil
		}
		ops, err := impl.DeadOps(task)
		return nil, ops, err
	}}
}

// ByName returns the named built-in stage, or a
// *errors.PlannerError(ErrorPipelineUnknownPruner) if name isn't one of
// the registered built-ins (h2/h3 aren't resolvable by name since they
// require a caller-supplied implementation).
func ByName(name string) (Stage, error) {
	switch name {
	case "irrelevance":
		return Irrelevance(), nil
	case "unreachable-in-dtgs":
		return UnreachableInDTGs(), nil
	case "fam-group-dead-end":
		return FAMGroupDeadEnd(), nil
	case "deduplicate-ops":
		return DeduplicateOps(), nil
	default:
		return nil, errors.PipelineUnknownPruner(name)
	}
}
