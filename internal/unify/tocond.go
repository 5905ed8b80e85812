package unify

import (
	"pddlcore/internal/domain"
	"pddlcore/internal/formula"
)

// ToCond materializes the current bindings of one side of u as a formula:
// the conjunction of (1) an equality literal for every pair of slots on
// that side sharing a variable identity, (2) an equality literal for every
// slot bound to a concrete object, and (3) for every slot whose resolved
// type has been refined below its declared type, a disjunction asserting
// it is one of the refined type's inhabitants. An empty conjunction (no
// bindings at all) is reported as the trivially true condition.
func (u *State) ToCond(param *domain.Params, eqPred int) formula.Formula {
	side := sideOf(u, param)
	m := u.Map[side]
	n := len(m)

	and := formula.NewEmptyAnd()

	for v1 := 0; v1 < n; v1++ {
		for v2 := v1 + 1; v2 < n; v2++ {
			if m[v1].varID == m[v2].varID && m[v1].varID >= 0 {
				formula.JuncAdd(and, eqAtom(eqPred, domain.ParamArg(v1), domain.ParamArg(v2)))
			}
		}
	}

	for v := 0; v < n; v++ {
		if m[v].obj >= 0 {
			formula.JuncAdd(and, eqAtom(eqPred, domain.ParamArg(v), domain.ObjArg(m[v].obj)))
		}
	}

	for v := 0; v < n; v++ {
		if m[v].varID >= 0 && m[v].varType != param.Param[v].Type {
			or := formula.NewEmptyOr()
			for _, obj := range u.Types.ObjectsOfType(m[v].varType) {
				formula.JuncAdd(or, eqAtom(eqPred, domain.ParamArg(v), domain.ObjArg(obj)))
			}
			formula.JuncAdd(and, or)
		}
	}

	if formula.JuncIsEmpty(and) {
		return formula.NewBool(true)
	}
	return and
}

func eqAtom(eqPred int, a, b domain.Arg) *formula.AtomNode {
	return formula.FromAtom(domain.Atom{Pred: eqPred, Args: []domain.Arg{a, b}})
}
