package lifted

import "pddlcore/internal/domain"

// DoubleCounted returns a copy of mg where every counted parameter slot
// gets an independent twin appended to the parameter list, and every atom
// of the group is paired with a second copy referencing the twin slots in
// place of the originals. This lets two distinct atoms of the same mutex
// group bind a counted variable to two different objects at once: without
// it, two occurrences of a counted predicate would be forced to agree on
// the counted argument merely because they share one parameter slot.
func DoubleCounted(mg *MGroup) *MGroup {
	orig := mg.Param.Param
	remap := make([]int, len(orig))
	dup := append([]domain.Param(nil), orig...)
	for i, p := range orig {
		if p.IsCountedVar {
			remap[i] = len(dup)
			dup = append(dup, p)
		} else {
			remap[i] = -1
		}
	}

	cond := make([]domain.Atom, 0, len(mg.Cond)*2)
	cond = append(cond, mg.Cond...)
	for _, a := range mg.Cond {
		twin := domain.Atom{Pred: a.Pred, Neg: a.Neg, Args: make([]domain.Arg, len(a.Args))}
		for i, arg := range a.Args {
			if arg.IsParam() && remap[arg.Param] >= 0 {
				twin.Args[i] = domain.ParamArg(remap[arg.Param])
			} else {
				twin.Args[i] = arg
			}
		}
		cond = append(cond, twin)
	}

	return &MGroup{Param: domain.NewParams(dup...), Cond: cond}
}
