package ground

// CrossRefFact is the per-fact slice of a CrossRef: which operators
// reference this fact in their precondition, add effects, or delete
// effects, and whether it holds in the initial state.
type CrossRefFact struct {
	OpPre  IntSet
	OpAdd  IntSet
	OpDel  IntSet
	IsInit bool
}

// CrossRef is the fact cross-reference index: for every fact, the sets of
// operators that read or write it. internal/dtg and internal/irrelevance
// both use it instead of re-scanning every operator per fact.
//
// Grounded on pddl_strips_fact_cross_ref_t as used in dtg.c
// (cref->fact[fact].op_pre/op_add) and irrelevance.c
// (cref.fact[fact_id].op_add/op_del/is_init). The C constructor takes five
// boolean flags selecting which of the four indices to actually build, an
// allocation-avoidance optimization with no effect on results; this port
// always builds all four since the corpus this package belongs to never
// needs to skip the cost of doing so.
type CrossRef struct {
	Fact []CrossRefFact
}

// NewCrossRef builds the cross-reference index for t.
func NewCrossRef(t *Task) *CrossRef {
	cref := &CrossRef{Fact: make([]CrossRefFact, len(t.Fact))}
	for _, f := range t.Init {
		cref.Fact[f].IsInit = true
	}
	for opID, op := range t.Op {
		for _, f := range op.Pre {
			cref.Fact[f].OpPre.Add(opID)
		}
		for _, f := range op.Add {
			cref.Fact[f].OpAdd.Add(opID)
		}
		for _, f := range op.Del {
			cref.Fact[f].OpDel.Add(opID)
		}
	}
	return cref
}
