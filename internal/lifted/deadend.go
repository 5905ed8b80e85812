package lifted

import (
	"pddlcore/internal/domain"
	"pddlcore/internal/formula"
	"pddlcore/internal/unify"
)

// deadEndCollectNegConds checks every positive add atom of eff against
// every other mutex-group atom: if adding it could refill the group
// instance the action is about to empty, either the whole combination is
// hopeless (the refill always happens, or happens exactly when the
// delete/goal/precondition unifier already holds) — signaled by returning
// false to abort the caller's computation entirely — or the refill is
// merely conditional, in which case its negation is folded into cond so
// the strengthened precondition rules it out.
func deadEndCollectNegConds(task *Task, action *Action, mg *MGroup, pre formula.Formula,
	unifyGoalDelPre *unify.State, mgDelAtom domain.Atom, condDel formula.Formula, cond *formula.Junc) bool {

	eqPred := task.Preds.EqPred
	for _, addNode := range formula.AllAtoms(action.Eff) {
		if addNode.Neg {
			continue
		}
		add := addNode.Atom
		for _, mgAtom := range mg.Cond {
			if add.Pred != mgAtom.Pred {
				continue
			}
			if atomEqualArgs(mgAtom, mgDelAtom) {
				continue
			}

			u := unify.Copy(unifyGoalDelPre)
			if !u.Unify(add, mgAtom) {
				continue
			}
			if !checkInequality(u, eqPred, action, pre) {
				continue
			}

			if unify.Equal(u, unifyGoalDelPre) {
				return false
			}

			c := u.ToCond(action.Param, eqPred)
			c = formula.Simplify(c)
			if formula.IsEntailed(c, condDel) {
				return false
			}

			c = formula.Negate(c)
			c = formula.Simplify(c)
			formula.JuncAdd(cond, c)
		}
	}
	return true
}

// deadEndAdd is reached once a (goal, del, pre) unifier is fixed: it
// asserts the action must not be allowed to fire under that unifier's
// bindings unless some other group atom could still be (re-)added
// afterward, and records the resulting strengthening condition keyed by
// pre.
func deadEndAdd(task *Task, action *Action, mg *MGroup, pre formula.Formula,
	unifyGoalDelPre *unify.State, mgDelAtom domain.Atom, acs *actionConds) {

	eqPred := task.Preds.EqPred
	condDel := unifyGoalDelPre.ToCond(action.Param, eqPred)
	condDel = formula.Simplify(condDel)

	cond := formula.NewEmptyAnd()
	if !deadEndCollectNegConds(task, action, mg, pre, unifyGoalDelPre, mgDelAtom, condDel, cond) {
		return
	}

	formula.JuncAdd(cond, condDel)
	merged := formula.Simplify(cond)

	list := acs.conditions(pre)
	for _, c := range *list {
		if formula.Equal(merged, c) {
			return
		}
	}
	*list = append(*list, merged)
}

// deadEndPre extends a (goal, del) unifier with a binding of some positive
// precondition atom (from either the action's full precondition or pre,
// the trigger this search is running under) to the same group atom the
// effect is about to delete.
func deadEndPre(task *Task, action *Action, mg *MGroup, pre formula.Formula,
	unifyDel *unify.State, mgAtom domain.Atom, acs *actionConds) {

	eqPred := task.Preds.EqPred
	for _, p := range [2]formula.Formula{action.Pre, pre} {
		if p == nil {
			continue
		}
		for _, preNode := range formula.AllAtoms(p) {
			if preNode.Neg {
				continue
			}
			preAtom := preNode.Atom
			if preAtom.Pred != mgAtom.Pred {
				continue
			}

			u := unify.Copy(unifyDel)
			if !u.Unify(preAtom, mgAtom) {
				continue
			}
			if !checkInequality(u, eqPred, action, p) {
				continue
			}
			deadEndAdd(task, action, mg, pre, u, mgAtom, acs)
		}
	}
}

// deadEndDel extends a goal unifier with a binding of some negative
// effect atom (a delete) to a group atom.
func deadEndDel(task *Task, action *Action, mg *MGroup, pre formula.Formula, unifyGoal *unify.State, acs *actionConds) {
	eqPred := task.Preds.EqPred
	for _, delNode := range formula.AllAtoms(action.Eff) {
		if !delNode.Neg {
			continue
		}
		del := delNode.Atom
		for _, mgAtom := range mg.Cond {
			if del.Pred != mgAtom.Pred {
				continue
			}

			u := unify.Copy(unifyGoal)
			if !u.Unify(del, mgAtom) {
				continue
			}
			if !checkInequality(u, eqPred, action, pre) {
				continue
			}
			deadEndPre(task, action, mg, pre, u, mgAtom, acs)
		}
	}
}

// deadEndGoal starts the dead-end search at the task goal: a group
// instance the goal requires can become unreachable if this action both
// deletes it and offers no way to re-add it.
func deadEndGoal(task *Task, action *Action, mg *MGroup, pre formula.Formula, acs *actionConds) {
	for _, goalNode := range formula.AllAtoms(task.Goal) {
		goalAtom := goalNode.Atom
		for _, mgAtom := range mg.Cond {
			if goalAtom.Pred != mgAtom.Pred {
				continue
			}
			u := unify.Init(task.Types, action.Param, mg.Param)
			if !u.Unify(goalAtom, mgAtom) {
				continue
			}
			u.ResetCountedVars()
			deadEndDel(task, action, mg, pre, u, acs)
		}
	}
}

// compileInDeadEnd runs the dead-end search for one action against one
// lifted mutex group, rooted at the task goal. It deliberately does not
// repeat the search per conditional-effect trigger the way compileInMutex
// does: a conditional effect only deletes a group instance when its
// trigger holds, and folding that into the search would require tracking
// the trigger as a third side condition throughout deadEndGoal/Del/Pre/Add.
// This is a known soundness boundary, not an oversight: compile-in may
// miss a dead-end that only arises through a conditional effect's delete.
func compileInDeadEnd(task *Task, action *Action, mgroupIn *MGroup, acs *actionConds) {
	mg := DoubleCounted(mgroupIn)
	deadEndGoal(task, action, mg, action.Pre, acs)
}
