package ground

// MutexPairs is a sparse index over unordered fact pairs giving O(1)
// is-mutex queries, used by the compile-in engine's callers and by the
// pruning pipeline's h2/h2-fw-bw/h3 collaborators.
//
// Grounded on pddl_mutex_pairs_t as used in mg_strips.c's
// pddlMGStripsNumStatesApproxMC (PDDL_MUTEX_PAIRS_FOR_EACH,
// pddlMutexPairsIsMutex) and prune_strips.c's pddlMutexPairsReduce.
type MutexPairs struct {
	pair  map[[2]int]struct{}
	facts int
}

// NewMutexPairs returns an empty index sized for numFacts facts.
func NewMutexPairs(numFacts int) *MutexPairs {
	return &MutexPairs{pair: make(map[[2]int]struct{}), facts: numFacts}
}

func normPair(f1, f2 int) [2]int {
	if f1 > f2 {
		f1, f2 = f2, f1
	}
	return [2]int{f1, f2}
}

// Add records f1 and f2 as mutex.
func (m *MutexPairs) Add(f1, f2 int) {
	if f1 == f2 {
		return
	}
	m.pair[normPair(f1, f2)] = struct{}{}
}

// IsMutex reports whether f1 and f2 are recorded as mutex.
func (m *MutexPairs) IsMutex(f1, f2 int) bool {
	if f1 == f2 {
		return false
	}
	_, ok := m.pair[normPair(f1, f2)]
	return ok
}

// NumMutexPairs returns the number of distinct recorded pairs.
func (m *MutexPairs) NumMutexPairs() int {
	return len(m.pair)
}

// ForEach calls fn once per recorded pair, f1 < f2.
func (m *MutexPairs) ForEach(fn func(f1, f2 int)) {
	for p := range m.pair {
		fn(p[0], p[1])
	}
}

// Reduce re-projects the index through a Task.Reduce fact remap table,
// dropping any pair that mentions a removed fact, matching
// pddlMutexPairsReduce.
func (m *MutexPairs) Reduce(factRemap []int) {
	next := make(map[[2]int]struct{}, len(m.pair))
	newFacts := 0
	for _, nf := range factRemap {
		if nf >= 0 && nf+1 > newFacts {
			newFacts = nf + 1
		}
	}
	for p := range m.pair {
		nf1, nf2 := factRemap[p[0]], factRemap[p[1]]
		if nf1 < 0 || nf2 < 0 {
			continue
		}
		next[normPair(nf1, nf2)] = struct{}{}
	}
	m.pair = next
	m.facts = newFacts
}
