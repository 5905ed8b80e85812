package lifted

import (
	"pddlcore/internal/domain"
	"pddlcore/internal/formula"
	"pddlcore/internal/unify"
)

// checkInequality tests a candidate unification against every negated
// equality literal visible at this point: the action's full precondition,
// plus pre itself when it differs (a conditional effect's trigger, whose
// inequalities are not necessarily repeated in the action's precondition).
func checkInequality(u *unify.State, eqPred int, action *Action, pre formula.Formula) bool {
	if !u.CheckInequality(action.Param, eqPred, action.Pre) {
		return false
	}
	return pre == nil || u.CheckInequality(action.Param, eqPred, pre)
}

func atomEqualArgs(a, b domain.Atom) bool {
	if a.Pred != b.Pred || len(a.Args) != len(b.Args) {
		return false
	}
	for i := range a.Args {
		if a.Args[i] != b.Args[i] {
			return false
		}
	}
	return true
}

// condAtomsNotEqual builds the condition under which a1 and a2 (already
// known to resolve under unifierCond to atoms of the same predicate) are
// distinguishable ground atoms: a disjunction of per-argument inequality
// literals, one for every argument position not already forced equal by
// unifierCond. Static information collapses the result immediately: a
// different predicate makes the atoms always distinguishable (true), two
// zero-arity atoms of the same predicate are never distinguishable
// (false), disjoint argument types or mismatched concrete objects at some
// position make the atoms always distinguishable, and identical concrete
// objects at a position contribute nothing to distinguish them.
func condAtomsNotEqual(types *domain.Types, param *domain.Params, eqPred int, a1, a2 domain.Atom, unifierCond formula.Formula) formula.Formula {
	if a1.Pred != a2.Pred {
		return formula.NewBool(true)
	}
	if len(a1.Args) == 0 {
		return formula.NewBool(false)
	}

	existing := formula.AllAtoms(unifierCond)
	or := formula.NewEmptyOr()

	for i := range a1.Args {
		arg1, arg2 := a1.Args[i], a2.Args[i]
		var eq domain.Atom

		switch {
		case arg1.IsParam() && arg2.IsParam():
			type1 := param.Param[arg1.Param].Type
			type2 := param.Param[arg2.Param].Type
			if types.AreDisjoint(type1, type2) {
				return formula.NewBool(true)
			}
			if arg1.Param < arg2.Param {
				eq = domain.Atom{Pred: eqPred, Args: []domain.Arg{arg1, arg2}}
			} else {
				eq = domain.Atom{Pred: eqPred, Args: []domain.Arg{arg2, arg1}}
			}

		case arg1.IsParam():
			ty := param.Param[arg1.Param].Type
			if !types.ObjectHasType(ty, arg2.Obj) {
				return formula.NewBool(true)
			}
			eq = domain.Atom{Pred: eqPred, Args: []domain.Arg{arg1, arg2}}

		case arg2.IsParam():
			ty := param.Param[arg2.Param].Type
			if !types.ObjectHasType(ty, arg1.Obj) {
				return formula.NewBool(true)
			}
			eq = domain.Atom{Pred: eqPred, Args: []domain.Arg{arg2, arg1}}

		default:
			if arg1.Obj != arg2.Obj {
				return formula.NewBool(true)
			}
			continue
		}

		implied := false
		for _, a := range existing {
			if !a.Neg && atomEqualArgs(a.Atom, eq) {
				implied = true
				break
			}
		}
		if implied {
			continue
		}

		eq.Neg = true
		formula.JuncAdd(or, formula.FromAtom(eq))
	}

	if formula.JuncIsEmpty(or) {
		return formula.NewBool(false)
	}
	return or
}

// mutexUnify2 extends unify1 by pairing a second precondition atom with a
// second mutex-group atom. If the two resulting pairings are consistent
// and genuinely distinguish preAtom1 from preAtom2, it records the
// condition under which the action would make both group atoms hold at
// once: the unifier's own bindings, conjoined with the assertion that
// preAtom1 and preAtom2 really are different ground atoms.
func mutexUnify2(task *Task, action *Action, pre, pre2 formula.Formula,
	preAtom1 domain.Atom, unify1 *unify.State,
	preAtom2, mgAtom2 domain.Atom, acs *actionConds) {

	eqPred := task.Preds.EqPred
	u := unify.Copy(unify1)
	if !u.Unify(preAtom2, mgAtom2) {
		return
	}
	if !checkInequality(u, eqPred, action, pre) {
		return
	}
	if !u.AtomsDiffer(action.Param, preAtom1, action.Param, preAtom2) {
		return
	}

	unifierCond := u.ToCond(action.Param, eqPred)
	ineqCond := condAtomsNotEqual(task.Types, action.Param, eqPred, preAtom1, preAtom2, unifierCond)
	actionC := formula.Simplify(formula.NewAnd2(unifierCond, ineqCond))

	list := acs.conditions(pre)
	for _, c := range *list {
		if formula.Equal(actionC, c) {
			return
		}
	}
	*list = append(*list, actionC)
}

// mutexUnify1 pairs one precondition atom with one mutex-group atom, then
// searches every later precondition atom (continuing the same scan, plus
// pre2 from the start when given) for a second group atom to pair it with.
func mutexUnify1(task *Task, action *Action, mg *MGroup, pre, pre2 formula.Formula,
	cont formula.AtomIter, preAtom1 domain.Atom, mgIdx1 int, mgAtom1 domain.Atom, acs *actionConds) {

	eqPred := task.Preds.EqPred
	u := unify.Init(task.Types, action.Param, mg.Param)
	u.ApplyEquality(action.Param, eqPred, pre)
	if !u.Unify(preAtom1, mgAtom1) {
		return
	}
	if !checkInequality(u, eqPred, action, pre) {
		return
	}

	scan := func(it formula.AtomIter) {
		for {
			n2, ok := it.Next()
			if !ok {
				return
			}
			if n2.Neg {
				continue
			}
			for mgIdx2, mgAtom2 := range mg.Cond {
				if mgIdx2 == mgIdx1 {
					continue
				}
				if n2.Pred != mgAtom2.Pred {
					continue
				}
				mutexUnify2(task, action, pre, pre2, preAtom1, u, n2.Atom, mgAtom2, acs)
			}
		}
	}

	scan(cont)
	if pre2 != nil {
		scan(formula.NewAtomIter(pre2))
	}
}

// mutex searches pre for atoms that unify with some atom of mg, and for
// every such pairing looks for a second, independent pairing (from later
// in pre, or from pre2) of the same predicate. Every consistent pair of
// pairings is a way the action could push two group atoms true together.
func mutex(task *Task, action *Action, mg *MGroup, pre, pre2 formula.Formula, acs *actionConds) {
	it := formula.NewAtomIter(pre)
	for {
		n1, ok := it.Next()
		if !ok {
			return
		}
		if n1.Neg {
			continue
		}
		cont := it.Clone()
		for mgIdx1, mgAtom1 := range mg.Cond {
			if n1.Pred != mgAtom1.Pred {
				continue
			}
			mutexUnify1(task, action, mg, pre, pre2, cont.Clone(), n1.Atom, mgIdx1, mgAtom1, acs)
		}
	}
}

// compileInMutex runs the mutex search for one action against one lifted
// mutex group: once against the action's own precondition, and once per
// conditional effect against that effect's trigger (with the action's
// precondition as auxiliary context, since it also holds whenever the
// trigger does).
func compileInMutex(task *Task, action *Action, mgroupIn *MGroup, acs *actionConds) {
	mg := DoubleCounted(mgroupIn)

	mutex(task, action, mg, action.Pre, nil, acs)

	for _, when := range formula.AllWhens(action.Eff) {
		mutex(task, action, mg, when.Cond, action.Pre, acs)
	}
}
