package unify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pddlcore/internal/domain"
	"pddlcore/internal/formula"
)

func newTypes() (*domain.Types, domain.TypeID, domain.TypeID) {
	types := domain.NewTypes()
	object := types.AddType("object", -1)
	block := types.AddType("block", object)
	types.AddObject("a", block)
	types.AddObject("b", block)
	types.AddObject("c", block)
	return types, object, block
}

func TestUnifyObjectArgs(t *testing.T) {
	types, _, block := newTypes()
	preds := domain.NewPredicates()
	on := preds.Add("on", 2)

	aObj := domain.ObjArg(0)
	bObj := domain.ObjArg(1)

	actionParams := domain.NewParams()
	mgParams := domain.NewParams(domain.Param{Type: block})

	atom1 := domain.Atom{Pred: on, Args: []domain.Arg{aObj, bObj}}
	atom2 := domain.Atom{Pred: on, Args: []domain.Arg{aObj, domain.ParamArg(0)}}

	u := Init(types, actionParams, mgParams)
	ok := u.Unify(atom1, atom2)
	assert.True(t, ok)
}

func TestUnifyMismatchedPredicateFails(t *testing.T) {
	types, _, block := newTypes()
	preds := domain.NewPredicates()
	on := preds.Add("on", 2)
	clear := preds.Add("clear", 1)

	p0 := domain.NewParams(domain.Param{Type: block}, domain.Param{Type: block})
	p1 := domain.NewParams(domain.Param{Type: block})

	a1 := domain.Atom{Pred: on, Args: []domain.Arg{domain.ParamArg(0), domain.ParamArg(1)}}
	a2 := domain.Atom{Pred: clear, Args: []domain.Arg{domain.ParamArg(0)}}

	u := Init(types, p0, p1)
	assert.False(t, u.Unify(a1, a2))
}

func TestUnifyParamToParamMergesVariables(t *testing.T) {
	types, _, block := newTypes()
	preds := domain.NewPredicates()
	on := preds.Add("on", 2)

	p0 := domain.NewParams(domain.Param{Type: block}, domain.Param{Type: block})
	p1 := domain.NewParams(domain.Param{Type: block}, domain.Param{Type: block})

	a1 := domain.Atom{Pred: on, Args: []domain.Arg{domain.ParamArg(0), domain.ParamArg(1)}}
	a2 := domain.Atom{Pred: on, Args: []domain.Arg{domain.ParamArg(0), domain.ParamArg(1)}}

	u := Init(types, p0, p1)
	assert.True(t, u.Unify(a1, a2))

	// the two sides' corresponding slots must now share a variable identity
	assert.Equal(t, u.Map[0][0].varID, u.Map[1][0].varID)
	assert.Equal(t, u.Map[0][1].varID, u.Map[1][1].varID)
}

func TestApplyEqualityUnifiesNamedSlots(t *testing.T) {
	types, _, block := newTypes()
	preds := domain.NewPredicates()

	p := domain.NewParams(domain.Param{Type: block}, domain.Param{Type: block})
	other := domain.NewParams()

	eq := formula.FromAtom(domain.Atom{
		Pred: preds.EqPred,
		Args: []domain.Arg{domain.ParamArg(0), domain.ParamArg(1)},
	})

	u := Init(types, p, other)
	assert.True(t, u.ApplyEquality(p, preds.EqPred, eq))
	assert.Equal(t, u.Map[0][0].varID, u.Map[0][1].varID)
}

func TestCheckInequalityRejectsIdenticalSlots(t *testing.T) {
	types, _, block := newTypes()
	preds := domain.NewPredicates()

	p := domain.NewParams(domain.Param{Type: block})
	other := domain.NewParams()

	ineq := formula.FromAtom(domain.Atom{
		Pred: preds.EqPred,
		Neg:  true,
		Args: []domain.Arg{domain.ParamArg(0), domain.ParamArg(0)},
	})

	u := Init(types, p, other)
	assert.False(t, u.CheckInequality(p, preds.EqPred, ineq))
}

func TestResetCountedVarsUnbinds(t *testing.T) {
	types, _, block := newTypes()

	p := domain.NewParams(domain.Param{Type: block, IsCountedVar: true})
	other := domain.NewParams()

	u := Init(types, p, other)
	u.Map[0][0].obj = 0
	u.Map[0][0].varID = noVar

	u.ResetCountedVars()
	assert.True(t, u.Map[0][0].varID >= 0)
	assert.Equal(t, domain.UndefObject, u.Map[0][0].obj)
}

func TestEqualComparesBothSides(t *testing.T) {
	types, _, block := newTypes()
	p0 := domain.NewParams(domain.Param{Type: block})
	p1 := domain.NewParams(domain.Param{Type: block})

	u1 := Init(types, p0, p1)
	u2 := Copy(u1)
	assert.True(t, Equal(u1, u2))

	u2.Map[0][0].obj = 0
	assert.False(t, Equal(u1, u2))
}
