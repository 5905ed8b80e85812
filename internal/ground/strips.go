package ground

// Fact is a single ground proposition. NegOf links a fact to its negation
// counterpart once one has been synthesized (binary-fact encoding) or
// discovered (an FDR import of a two-valued variable); -1 means "none yet".
//
// Grounded on original_source's pddl_fact_t as used throughout mg_strips.c
// (fact.name, fact.neg_of).
type Fact struct {
	Name  string
	NegOf int
}

// CondEff is a conditional effect attached to an Op: Add/Del fire only when
// Pre holds in addition to the operator's own precondition.
type CondEff struct {
	Pre IntSet
	Add IntSet
	Del IntSet
}

// Op is a ground operator. Pre/Add/Del are fact-id sets; Add and Del are
// disjoint within a single operator view (spec invariant: "operator
// pre/add/del are pairwise disjoint ... add ∩ del = ∅ after normalization").
type Op struct {
	Name    string
	Cost    int
	Pre     IntSet
	Add     IntSet
	Del     IntSet
	CondEff []CondEff
}

// Task is a ground STRIPS planning task: facts indexed by contiguous id,
// operators, the initial state, and the goal.
//
// Grounded on pddl_strips_t (original_source/ext/cpddl/pddl/mg_strips.h's
// only direct dependency, reconstructed from its field uses across
// mg_strips.c, dtg.c, irrelevance.c, prune_strips.c).
type Task struct {
	Fact              []*Fact
	Op                []*Op
	Init              IntSet
	Goal              IntSet
	HasCondEff        bool
	GoalIsUnreachable bool
}

// NewTask returns an empty task.
func NewTask() *Task {
	return &Task{}
}

// AddFact appends fact and returns its new id.
func (t *Task) AddFact(fact Fact) int {
	t.Fact = append(t.Fact, &fact)
	return len(t.Fact) - 1
}

// AddOp appends op and returns its new id.
func (t *Task) AddOp(op *Op) int {
	t.Op = append(t.Op, op)
	return len(t.Op) - 1
}

// Clone returns a deep copy, mirroring pddlStripsInitCopy.
func (t *Task) Clone() *Task {
	out := &Task{
		HasCondEff:        t.HasCondEff,
		GoalIsUnreachable: t.GoalIsUnreachable,
		Init:              t.Init.Clone(),
		Goal:              t.Goal.Clone(),
	}
	out.Fact = make([]*Fact, len(t.Fact))
	for i, f := range t.Fact {
		cp := *f
		out.Fact[i] = &cp
	}
	out.Op = make([]*Op, len(t.Op))
	for i, op := range t.Op {
		cp := *op
		cp.Pre = op.Pre.Clone()
		cp.Add = op.Add.Clone()
		cp.Del = op.Del.Clone()
		cp.CondEff = make([]CondEff, len(op.CondEff))
		for j, ce := range op.CondEff {
			cp.CondEff[j] = CondEff{Pre: ce.Pre.Clone(), Add: ce.Add.Clone(), Del: ce.Del.Clone()}
		}
		out.Op[i] = &cp
	}
	return out
}

// UncoveredDeleteEffects returns every fact that some operator deletes
// without also requiring it in its precondition — the preparation step
// mutex-group promotion runs before treating a group as exactly-one
// ("uncovered delete" in spec terms).
func (t *Task) UncoveredDeleteEffects() IntSet {
	var out IntSet
	for _, op := range t.Op {
		for _, f := range op.Del {
			if !op.Pre.Has(f) {
				out.Add(f)
			}
		}
	}
	return out
}

// Reduce compacts the fact and operator id spaces, dropping every id in
// delFacts/delOps and shifting the rest down to stay contiguous. It returns
// the fact and operator remap tables (old id -> new id, or -1 if removed)
// so callers holding other structures indexed by the old ids (mutex-pair
// index, mutex groups, a fact cross-reference) can re-project themselves.
//
// Grounded on pddlStripsReduce as called from pddlMGStripsReduce
// (mg_strips.c) and prune_strips.c's applyPruneStrips.
func (t *Task) Reduce(delFacts, delOps IntSet) (factRemap, opRemap []int) {
	factRemap = make([]int, len(t.Fact))
	next := 0
	for id := range t.Fact {
		if delFacts.Has(id) {
			factRemap[id] = -1
			continue
		}
		factRemap[id] = next
		next++
	}

	opRemap = make([]int, len(t.Op))
	nextOp := 0
	for id := range t.Op {
		if delOps.Has(id) {
			opRemap[id] = -1
			continue
		}
		opRemap[id] = nextOp
		nextOp++
	}

	newFacts := make([]*Fact, 0, next)
	for id, f := range t.Fact {
		if factRemap[id] < 0 {
			continue
		}
		nf := *f
		if nf.NegOf >= 0 {
			nf.NegOf = factRemap[nf.NegOf]
		}
		newFacts = append(newFacts, &nf)
	}
	t.Fact = newFacts

	newOps := make([]*Op, 0, nextOp)
	for id, op := range t.Op {
		if opRemap[id] < 0 {
			continue
		}
		no := *op
		no.Pre = op.Pre.Clone()
		no.Pre.Remap(factRemap)
		no.Add = op.Add.Clone()
		no.Add.Remap(factRemap)
		no.Del = op.Del.Clone()
		no.Del.Remap(factRemap)
		no.CondEff = make([]CondEff, len(op.CondEff))
		for j, ce := range op.CondEff {
			pre, add, del := ce.Pre.Clone(), ce.Add.Clone(), ce.Del.Clone()
			pre.Remap(factRemap)
			add.Remap(factRemap)
			del.Remap(factRemap)
			no.CondEff[j] = CondEff{Pre: pre, Add: add, Del: del}
		}
		newOps = append(newOps, &no)
	}
	t.Op = newOps

	if !IsDisjoint(t.Goal, delFacts) {
		t.GoalIsUnreachable = true
	}

	t.Init.Remap(factRemap)
	t.Goal.Remap(factRemap)

	return factRemap, opRemap
}
