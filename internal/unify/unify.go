// Package unify implements the typed first-order unifier (component A):
// first-order unification of parametric atoms under a type lattice,
// materializing equality/inequality conditions for the compile-in engine.
// It is grounded function-for-function on original_source/ext/cpddl's
// pddl/unify.h and src/unify.c.
package unify

import (
	"pddlcore/internal/domain"
	"pddlcore/internal/errors"
	"pddlcore/internal/formula"
)

// value is the resolved state of one parameter slot: either an object
// binding, a variable identity together with the most specific type known
// for it, or unbound (Var < 0 with no object set, which never actually
// happens post-Init — every slot starts with a fresh variable identity).
type value struct {
	obj     domain.ObjectID
	varID   int
	varType domain.TypeID
}

const noVar = -1

// State is a unification state over two parameter lists, selected by side
// index: by convention side 0 is the action's parameters, side 1 is the
// mutex group's. Every parameter slot starts unbound with a fresh,
// globally unique variable identity; slots that come to share a variable
// identity are proven equal.
type State struct {
	Types  *domain.Types
	Param  [2]*domain.Params
	Map    [2][]value
	VarCap int
}

// Init allocates a fresh state where every parameter slot of both lists is
// unbound and assigned a unique fresh variable identity.
func Init(types *domain.Types, p0, p1 *domain.Params) *State {
	errors.Invariant(p0 != p1, "unify.Init: the two parameter lists must be distinct")
	u := &State{Types: types, Param: [2]*domain.Params{p0, p1}}
	u.Map[0] = make([]value, p0.Size())
	u.Map[1] = make([]value, p1.Size())
	v := 0
	for i, slot := range p0.Param {
		u.Map[0][i] = value{obj: domain.UndefObject, varID: v, varType: slot.Type}
		v++
	}
	for i, slot := range p1.Param {
		u.Map[1][i] = value{obj: domain.UndefObject, varID: v, varType: slot.Type}
		v++
	}
	u.VarCap = v
	return u
}

// Copy deep-copies a unification state.
func Copy(u *State) *State {
	n := &State{Types: u.Types, Param: u.Param, VarCap: u.VarCap}
	n.Map[0] = append([]value(nil), u.Map[0]...)
	n.Map[1] = append([]value(nil), u.Map[1]...)
	return n
}

func sideOf(u *State, p *domain.Params) int {
	switch p {
	case u.Param[0]:
		return 0
	case u.Param[1]:
		return 1
	default:
		errors.Invariant(false, "unify: parameter list does not belong to this unification state")
		return -1
	}
}

func initVal(m []value, a domain.Atom, argi int) value {
	arg := a.Args[argi]
	if arg.IsParam() {
		return m[arg.Param]
	}
	return value{obj: arg.Obj, varID: noVar}
}

func (u *State) unifyVars(var1, var2 int, varType domain.TypeID) {
	for side := 0; side < 2; side++ {
		for i := range u.Map[side] {
			if u.Map[side][i].varID == var1 || u.Map[side][i].varID == var2 {
				u.Map[side][i].varID = var1
				u.Map[side][i].varType = varType
			}
		}
	}
}

func (u *State) unifyVarObj(v int, obj domain.ObjectID) {
	for side := 0; side < 2; side++ {
		for i := range u.Map[side] {
			if u.Map[side][i].varID == v {
				u.Map[side][i].obj = obj
				u.Map[side][i].varID = noVar
				u.Map[side][i].varType = 0
			}
		}
	}
}

// unifyVals merges two resolved values, extending the state. Returns
// false if the merge is impossible: predicate/arity already checked by
// the caller, this only rejects type/identity incompatibilities.
func (u *State) unifyVals(v0, v1 value) bool {
	switch {
	case v0.varID >= 0 && v1.varID >= 0:
		var toType domain.TypeID
		switch {
		case u.Types.IsSubset(v1.varType, v0.varType):
			toType = v1.varType
		case u.Types.IsSubset(v0.varType, v1.varType):
			toType = v0.varType
		default:
			return false
		}
		if u.Types.IsEmpty(toType) {
			return false
		}
		u.unifyVars(v0.varID, v1.varID, toType)
		return true

	case v0.varID >= 0:
		if !u.Types.ObjectHasType(v0.varType, v1.obj) {
			return false
		}
		u.unifyVarObj(v0.varID, v1.obj)
		return true

	case v1.varID >= 0:
		if !u.Types.ObjectHasType(v1.varType, v0.obj) {
			return false
		}
		u.unifyVarObj(v1.varID, v0.obj)
		return true

	default:
		return v0.obj == v1.obj
	}
}

// Unify attempts to extend u so that atom_a (interpreted under side 0's
// parameters) equals atom_b (interpreted under side 1's parameters).
// Returns false when unification is impossible (predicate/arity mismatch,
// incompatible types, or conflicting object bindings); on failure u may
// be left partially extended and must be discarded by the caller — every
// caller in this module works on a fresh Init or a Copy and drops it on
// failure.
func (u *State) Unify(a1, a2 domain.Atom) bool {
	if a1.Pred != a2.Pred || len(a1.Args) != len(a2.Args) {
		return false
	}
	for argi := range a1.Args {
		v0 := initVal(u.Map[0], a1, argi)
		v1 := initVal(u.Map[1], a2, argi)
		if !u.unifyVals(v0, v1) {
			return false
		}
	}
	return true
}

func applyEquality(u *State, side, eqPred int, cond formula.Formula) bool {
	if cond == nil {
		return true
	}
	m := u.Map[side]
	for _, eq := range formula.AllAtoms(cond) {
		if eq.Neg || eq.Pred != eqPred {
			continue
		}
		v0 := initVal(m, eq.Atom, 0)
		v1 := initVal(m, eq.Atom, 1)
		if !u.unifyVals(v0, v1) {
			return false
		}
	}
	return true
}

// ApplyEquality scans cond for positive atoms of eqPred and unifies the
// two argument slots each one names, extending u. cond may be nil (no-op).
func (u *State) ApplyEquality(param *domain.Params, eqPred int, cond formula.Formula) bool {
	return applyEquality(u, sideOf(u, param), eqPred, cond)
}

func checkInequality(m []value, eqPred int, cond formula.Formula) bool {
	if cond == nil {
		return true
	}
	for _, ineq := range formula.AllAtoms(cond) {
		if !ineq.Neg || ineq.Pred != eqPred {
			continue
		}
		v0 := initVal(m, ineq.Atom, 0)
		v1 := initVal(m, ineq.Atom, 1)
		if v0 == v1 {
			return false
		}
	}
	return true
}

// CheckInequality returns true iff every negated eqPred atom in cond names
// two parameter slots whose current values are not identical (comparing
// both object binding and variable identity + type).
func (u *State) CheckInequality(param *domain.Params, eqPred int, cond formula.Formula) bool {
	return checkInequality(u.Map[sideOf(u, param)], eqPred, cond)
}

// AtomsDiffer returns true iff there is at least one argument position
// whose resolved value differs between a1 (under param1) and a2 (under
// param2) on the current map. This is a syntactic check on the current
// bindings, not a satisfiability query.
func (u *State) AtomsDiffer(param1 *domain.Params, a1 domain.Atom, param2 *domain.Params, a2 domain.Atom) bool {
	if a1.Pred != a2.Pred || len(a1.Args) != len(a2.Args) {
		return true
	}
	idx1 := sideOf(u, param1)
	idx2 := sideOf(u, param2)
	for i := range a1.Args {
		v1 := initVal(u.Map[idx1], a1, i)
		v2 := initVal(u.Map[idx2], a2, i)
		if v1 != v2 {
			return true
		}
	}
	return false
}

// Equal reports structural equality of two unification states over the
// same pair of parameter lists.
func Equal(u, v *State) bool {
	if u.Param[0] != v.Param[0] || u.Param[1] != v.Param[1] {
		return false
	}
	return mapEqual(u.Map[0], v.Map[0]) && mapEqual(u.Map[1], v.Map[1])
}

func mapEqual(a, b []value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ResetCountedVars re-freshens the variable identities of every parameter
// slot flagged IsCountedVar, resetting it to unbound. Used to treat
// counted mutex-group parameters as unrestricted once the rest of the
// unifier has been fixed (e.g. against a goal atom).
func (u *State) ResetCountedVars() {
	v := 0
	for side := 0; side < 2; side++ {
		for i, slot := range u.Param[side].Param {
			if slot.IsCountedVar {
				u.Map[side][i] = value{obj: domain.UndefObject, varID: v, varType: slot.Type}
			}
			v++
		}
	}
}
