package formula

// Normalize rewrites f into a canonical AND-of-OR (conjunctive normal
// form) shape, built by first simplifying, distributing OR over AND into
// clauses, and simplifying the resulting junction tree again so duplicate
// clauses and duplicate literals within a clause collapse. Normalize∘
// Simplify is idempotent: normalizing an already-normalized-and-simplified
// formula reproduces a structurally Equal result.
func Normalize(f Formula) Formula {
	s := Simplify(f)
	if b, ok := s.(*Bool); ok {
		return b
	}

	clauses := cnfClauses(s)
	and := NewEmptyAnd()
	for _, clause := range clauses {
		or := &Junc{Or: true, Kids: clause}
		JuncAdd(and, or)
	}
	return Simplify(and)
}

// cnfClauses distributes f into a list of clauses (each clause a list of
// literal-like leaves: atoms, boolean constants, or opaque when nodes)
// such that f is equivalent to the conjunction of the disjunction of each
// clause's leaves.
func cnfClauses(f Formula) [][]Formula {
	switch n := f.(type) {
	case *Bool:
		if n.Val {
			return nil // an always-true conjunct contributes no clause
		}
		return [][]Formula{{NewBool(false)}}
	case *AtomNode, *When:
		return [][]Formula{{f}}
	case *Junc:
		if !n.Or {
			var out [][]Formula
			for _, k := range n.Kids {
				out = append(out, cnfClauses(k)...)
			}
			return out
		}
		// OR: distribute every child's clause list across the others.
		acc := [][]Formula{{}}
		for _, k := range n.Kids {
			kidClauses := cnfClauses(k)
			var next [][]Formula
			for _, accClause := range acc {
				for _, kc := range kidClauses {
					merged := append(append([]Formula{}, accClause...), kc...)
					next = append(next, merged)
				}
			}
			acc = next
		}
		return acc
	default:
		return [][]Formula{{f}}
	}
}
