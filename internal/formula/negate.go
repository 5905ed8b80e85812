package formula

// Negate builds the negation of f, pushing the negation inward so the
// result is itself in the and/or/atom/bool/when shape (no top-level "not"
// node exists in this kernel). Double negation cancels: Negate(Negate(f))
// is structurally Equal to f for every f this kernel produces.
func Negate(f Formula) Formula {
	switch n := f.(type) {
	case *Bool:
		return NewBool(!n.Val)
	case *AtomNode:
		a := n.Atom
		a.Neg = !a.Neg
		return FromAtom(a)
	case *Junc:
		// De Morgan: not(AND xs) = OR(not xs), not(OR xs) = AND(not xs).
		out := &Junc{Or: !n.Or}
		for _, k := range n.Kids {
			JuncAdd(out, Negate(k))
		}
		return out
	case *When:
		// Negation of a conditional effect is not a meaningful boolean
		// operation (When is an effect-tree node, not a condition), but
		// the kernel must not crash if asked: negate the guarded effect,
		// keeping the same trigger.
		return NewWhen(n.Cond, Negate(n.Eff))
	default:
		return f
	}
}
