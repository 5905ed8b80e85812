// Package dtg finds facts and operators made unreachable by the implicit
// domain-transition graph a mutex group induces over its own members.
//
// Grounded on original_source/ext/cpddl/src/dtg.c.
package dtg

import "pddlcore/internal/ground"

// UnreachableInMGroup builds the implicit transition graph over mg's
// members (an edge fact->fact for every operator whose precondition pins
// down a single member of mg and whose add effect introduces another
// member) and runs a forward BFS from initFact. Every member not reached
// is appended to unreachableFacts; every operator mentioning such a fact in
// its precondition or add effects is appended to unreachableOps.
//
// Grounded on pddlUnreachableInMGroupDTG.
func UnreachableInMGroup(initFact int, mg *ground.MGroup, ops []*ground.Op, cref *ground.CrossRef, unreachableFacts, unreachableOps *ground.IntSet) {
	if len(ops) == 0 || len(mg.Fact) == 0 || !mg.Fact.Has(initFact) {
		return
	}

	size := len(mg.Fact)
	factToIdx := make(map[int]int, size)
	for mi, fact := range mg.Fact {
		factToIdx[fact] = mi
	}

	reaches := make([]ground.IntSet, size)
	for mi, to := range mg.Fact {
		for _, opID := range cref.Fact[to].OpAdd {
			op := ops[opID]
			pre := ground.Intersect(op.Pre, mg.Fact)
			switch {
			case len(pre) == 0:
				// No member of mg constrains this operator's firing: it
				// can add `to` from any member, so every member reaches it.
				for from := 0; from < size; from++ {
					reaches[from].Add(mi)
				}
			case len(pre) > 1:
				// Pins down more than one member at once: shouldn't be
				// possible in an exactly-one group, treat conservatively
				// as unreachable-inducing.
				unreachableOps.Add(opID)
			default:
				from := pre[0]
				if from != to {
					reaches[factToIdx[from]].Add(mi)
				}
			}
		}
	}

	reached := make([]bool, size)
	queue := []int{factToIdx[initFact]}
	reached[factToIdx[initFact]] = true
	for len(queue) > 0 {
		fid := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		for _, to := range reaches[fid] {
			if !reached[to] {
				reached[to] = true
				queue = append(queue, to)
			}
		}
	}

	for mi, fact := range mg.Fact {
		if reached[mi] {
			continue
		}
		unreachableFacts.Add(fact)
		unreachableOps.Union(cref.Fact[fact].OpPre)
		unreachableOps.Union(cref.Fact[fact].OpAdd)
	}
}

// UnreachableInMGroupsDTGs runs UnreachableInMGroup over every group in
// mgroups whose initial-state intersection picks out exactly one member
// (a group with an ambiguous or absent initial fact is skipped — its DTG
// has no unique starting point), unioning the results.
//
// Grounded on pddlUnreachableInMGroupsDTGs.
func UnreachableInMGroupsDTGs(task *ground.Task, mgroups ground.MGroups, unreachableFacts, unreachableOps *ground.IntSet) {
	if len(mgroups) == 0 {
		return
	}

	cref := ground.NewCrossRef(task)
	for _, mg := range mgroups {
		init := ground.Intersect(task.Init, mg.Fact)
		if len(init) != 1 {
			continue
		}
		UnreachableInMGroup(init[0], mg, task.Op, cref, unreachableFacts, unreachableOps)
	}
}
