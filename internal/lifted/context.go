package lifted

import "pddlcore/internal/formula"

// actionConds accumulates, per precondition formula identity (an action's
// main precondition, or one of its conditional effects' triggers), every
// extra condition discovered so far that must be negated and conjoined in.
// Conditions are keyed by the identity of the precondition formula pointer
// they were derived against, matching the reference implementation's use
// of the precondition's address as the map key.
type actionConds struct {
	keys  []formula.Formula
	conds [][]formula.Formula
}

func (a *actionConds) conditions(pre formula.Formula) *[]formula.Formula {
	for i, k := range a.keys {
		if k == pre {
			return &a.conds[i]
		}
	}
	a.keys = append(a.keys, pre)
	a.conds = append(a.conds, nil)
	return &a.conds[len(a.conds)-1]
}

// merge folds every condition collected against pre into a single
// strengthening conjunct: the conjunction of the negation of each one,
// normalized. Returns nil if nothing was ever collected against pre.
func (a *actionConds) merge(pre formula.Formula) formula.Formula {
	var conds []formula.Formula
	for i, k := range a.keys {
		if k == pre {
			conds = a.conds[i]
		}
	}
	if conds == nil {
		return nil
	}

	var out formula.Formula = formula.NewEmptyAnd()
	for _, c := range conds {
		neg := formula.Negate(c)
		neg = formula.Simplify(neg)
		neg = formula.Normalize(neg)
		neg = formula.Simplify(neg)

		formula.JuncAdd(out.(*formula.Junc), neg)
		out = formula.Simplify(out)
		out = formula.Normalize(out)
		out = formula.Simplify(out)
		if !formula.IsAnd(out) {
			and := formula.NewEmptyAnd()
			formula.JuncAdd(and, out)
			out = and
		}
	}
	out = formula.Simplify(out)
	out = formula.Normalize(out)
	return formula.Simplify(out)
}
