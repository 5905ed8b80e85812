// Package ground holds the grounded STRIPS/FDR planning-task data model:
// facts, operators, mutex groups, the mutex-pair index, and the fact
// cross-reference index the analyses in internal/dtg, internal/irrelevance,
// internal/promote, and internal/pipeline all read and mutate.
package ground

import "sort"

// IntSet is a sorted, duplicate-free set of small non-negative integers —
// the Go stand-in for original_source's pddl_iset_t, which every STRIPS/FDR
// structure here (fact pre/add/del sets, mutex-group membership, the
// cross-reference index) is built from.
type IntSet []int

func (s IntSet) search(v int) (int, bool) {
	i := sort.SearchInts(s, v)
	return i, i < len(s) && s[i] == v
}

// Has reports whether v is a member.
func (s IntSet) Has(v int) bool {
	_, ok := s.search(v)
	return ok
}

// Add inserts v, keeping s sorted and duplicate-free.
func (s *IntSet) Add(v int) {
	i, ok := s.search(v)
	if ok {
		return
	}
	*s = append(*s, 0)
	copy((*s)[i+1:], (*s)[i:])
	(*s)[i] = v
}

// Remove deletes v if present.
func (s *IntSet) Remove(v int) {
	i, ok := s.search(v)
	if !ok {
		return
	}
	*s = append((*s)[:i], (*s)[i+1:]...)
}

// Union adds every member of other into s.
func (s *IntSet) Union(other IntSet) {
	for _, v := range other {
		s.Add(v)
	}
}

// Minus removes every member of other from s.
func (s *IntSet) Minus(other IntSet) {
	for _, v := range other {
		s.Remove(v)
	}
}

// Intersect returns a fresh set holding the members common to a and b.
func Intersect(a, b IntSet) IntSet {
	var out IntSet
	for _, v := range a {
		if b.Has(v) {
			out.Add(v)
		}
	}
	return out
}

// IsDisjoint reports whether a and b share no member.
func IsDisjoint(a, b IntSet) bool {
	for _, v := range a {
		if b.Has(v) {
			return false
		}
	}
	return true
}

// Clone returns an independent copy.
func (s IntSet) Clone() IntSet {
	out := make(IntSet, len(s))
	copy(out, s)
	return out
}

// Remap rewrites s in place through remap, a mapping from old id to new id
// (entries of -1 mean "this id was removed" and are dropped from the set).
// Used by Task.Reduce / MutexPairs.Reduce / MGroups.Reduce after a fact or
// operator compaction.
func (s *IntSet) Remap(remap []int) {
	out := make(IntSet, 0, len(*s))
	for _, v := range *s {
		if nv := remap[v]; nv >= 0 {
			out.Add(nv)
		}
	}
	*s = out
}
