package ground

import "sort"

// MGroup is a ground mutex group: a set of facts of which (once promoted)
// exactly one holds in any reachable state.
//
// Grounded on pddl_mgroup_t (mg_strips.c: mg->mgroup, is_exactly_one,
// is_goal, is_fam_group).
type MGroup struct {
	Fact        IntSet
	IsExactlyOne bool
	IsGoal       bool
	IsFAMGroup   bool
}

// MGroups is an ordered collection of mutex groups.
type MGroups []*MGroup

// Add appends a fresh group over facts and returns it.
func (g *MGroups) Add(facts IntSet) *MGroup {
	mg := &MGroup{Fact: facts.Clone()}
	*g = append(*g, mg)
	return mg
}

// RemoveSubsets drops every group whose fact set is a subset of another
// group's (ties broken by keeping the earlier one), matching
// pddlMGroupsRemoveSubsets.
func (g *MGroups) RemoveSubsets() {
	keep := make([]bool, len(*g))
	for i := range *g {
		keep[i] = true
	}
	for i, a := range *g {
		if !keep[i] {
			continue
		}
		for j, b := range *g {
			if i == j || !keep[j] {
				continue
			}
			if isSubset(a.Fact, b.Fact) && (len(a.Fact) < len(b.Fact) || j < i) {
				keep[i] = false
				break
			}
		}
	}
	out := make(MGroups, 0, len(*g))
	for i, mg := range *g {
		if keep[i] {
			out = append(out, mg)
		}
	}
	*g = out
}

func isSubset(a, b IntSet) bool {
	for _, v := range a {
		if !b.Has(v) {
			return false
		}
	}
	return true
}

// RemoveSmall drops every group with fewer than minSize facts, matching
// pddlMGroupsRemoveSmall.
func (g *MGroups) RemoveSmall(minSize int) {
	out := make(MGroups, 0, len(*g))
	for _, mg := range *g {
		if len(mg.Fact) >= minSize {
			out = append(out, mg)
		}
	}
	*g = out
}

// SortUniq sorts groups by their fact-set contents and removes exact
// duplicates, matching pddlMGroupsSortUniq.
func (g *MGroups) SortUniq() {
	sort.SliceStable(*g, func(i, j int) bool {
		return lessIntSet((*g)[i].Fact, (*g)[j].Fact)
	})
	out := (*g)[:0]
	for i, mg := range *g {
		if i > 0 && equalIntSet(mg.Fact, (*g)[i-1].Fact) {
			continue
		}
		out = append(out, mg)
	}
	*g = out
}

func lessIntSet(a, b IntSet) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

func equalIntSet(a, b IntSet) bool {
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

// SortBySizeDesc orders groups by descending fact-set size, matching
// pddlMGroupsSortBySizeDesc.
func (g *MGroups) SortBySizeDesc() {
	sort.SliceStable(*g, func(i, j int) bool {
		return len((*g)[i].Fact) > len((*g)[j].Fact)
	})
}

// Reduce re-projects every group's fact set through a Task.Reduce remap
// table, dropping facts that were removed, matching pddlMGroupsReduce.
func (g MGroups) Reduce(factRemap []int) {
	for _, mg := range g {
		mg.Fact.Remap(factRemap)
	}
}

// SetExactlyOne recomputes IsExactlyOne for every group against t, matching
// pddlMGroupsSetExactlyOne: a group is exactly-one if every reachable state
// (approximated here, as in the original, by checking init and every
// operator's effect on the group) has precisely one member true.
func (g MGroups) SetExactlyOne(t *Task) {
	for _, mg := range g {
		mg.IsExactlyOne = t.IsExactlyOneMGroup(mg.Fact)
	}
}

// SetGoal recomputes IsGoal for every group against t's goal.
func (g MGroups) SetGoal(t *Task) {
	for _, mg := range g {
		mg.IsGoal = !IsDisjoint(mg.Fact, t.Goal)
	}
}

// IsExactlyOneMGroup reports whether facts form an exactly-one mutex group
// over t: exactly one member in the initial state, and every operator adds
// a member exactly when it deletes one (and never adds/deletes more than
// one). Grounded on pddlStripsIsExactlyOneMGroup.
func (t *Task) IsExactlyOneMGroup(facts IntSet) bool {
	if len(Intersect(t.Init, facts)) != 1 {
		return false
	}
	for _, op := range t.Op {
		addIn := len(Intersect(op.Add, facts))
		delIn := len(Intersect(op.Del, facts))
		if addIn > 1 || delIn > 1 {
			return false
		}
		if addIn != delIn {
			return false
		}
	}
	return true
}

// IsFAMGroup reports whether facts form a fact-alternating-mutex group:
// every operator deletes at most one member and adds at most one member
// (weaker than exactly-one — no requirement on the initial state or that
// add/del counts match). Grounded on pddlStripsIsFAMGroup.
func (t *Task) IsFAMGroup(facts IntSet) bool {
	for _, op := range t.Op {
		if len(Intersect(op.Add, facts)) > 1 || len(Intersect(op.Del, facts)) > 1 {
			return false
		}
	}
	return true
}
