package ground

import "testing"

func twoOpTask() *Task {
	t := NewTask()
	t.AddFact(Fact{Name: "p", NegOf: -1})
	t.AddFact(Fact{Name: "q", NegOf: -1})
	t.AddFact(Fact{Name: "r", NegOf: -1})
	t.AddOp(&Op{Name: "op0", Pre: IntSet{0}, Add: IntSet{1}, Del: IntSet{0}})
	t.AddOp(&Op{Name: "op1", Pre: IntSet{1}, Add: IntSet{2}, Del: IntSet{1}})
	t.Init = IntSet{0}
	t.Goal = IntSet{2}
	return t
}

func TestIntSetAddIsSortedUnique(t *testing.T) {
	var s IntSet
	s.Add(3)
	s.Add(1)
	s.Add(3)
	s.Add(2)
	want := IntSet{1, 2, 3}
	if !equalIntSet(s, want) {
		t.Fatalf("got %v want %v", s, want)
	}
}

func TestIntSetRemoveAndHas(t *testing.T) {
	s := IntSet{1, 2, 3}
	s.Remove(2)
	if s.Has(2) {
		t.Fatal("2 should have been removed")
	}
	if !s.Has(1) || !s.Has(3) {
		t.Fatal("unrelated members should survive")
	}
}

func TestIntersectAndIsDisjoint(t *testing.T) {
	a := IntSet{1, 2, 3}
	b := IntSet{2, 3, 4}
	got := Intersect(a, b)
	if !equalIntSet(got, IntSet{2, 3}) {
		t.Fatalf("got %v", got)
	}
	if IsDisjoint(a, b) {
		t.Fatal("a and b share members")
	}
	if !IsDisjoint(IntSet{1}, IntSet{2}) {
		t.Fatal("disjoint sets reported as overlapping")
	}
}

func TestTaskReduceCompactsIdsAndRemapsNegOf(t *testing.T) {
	task := NewTask()
	task.AddFact(Fact{Name: "a", NegOf: 1})
	task.AddFact(Fact{Name: "b", NegOf: 0})
	task.AddFact(Fact{Name: "c", NegOf: -1}) // removed
	task.AddOp(&Op{Name: "keep", Pre: IntSet{0}, Add: IntSet{1}})
	task.AddOp(&Op{Name: "gone", Pre: IntSet{2}}) // removed
	task.Init = IntSet{0}
	task.Goal = IntSet{1}

	factRemap, opRemap := task.Reduce(IntSet{2}, IntSet{1})

	if len(task.Fact) != 2 {
		t.Fatalf("expected 2 facts after reduce, got %d", len(task.Fact))
	}
	if len(task.Op) != 1 {
		t.Fatalf("expected 1 op after reduce, got %d", len(task.Op))
	}
	if task.Fact[0].NegOf != 1 || task.Fact[1].NegOf != 0 {
		t.Fatalf("neg_of links not remapped: %+v %+v", task.Fact[0], task.Fact[1])
	}
	if factRemap[2] != -1 {
		t.Fatalf("removed fact should remap to -1, got %d", factRemap[2])
	}
	if opRemap[1] != -1 {
		t.Fatalf("removed op should remap to -1, got %d", opRemap[1])
	}
	if task.GoalIsUnreachable {
		t.Fatal("goal fact was not removed, should still be reachable")
	}
}

func TestTaskReduceMarksGoalUnreachableWhenGoalFactRemoved(t *testing.T) {
	task := NewTask()
	task.AddFact(Fact{NegOf: -1})
	task.Goal = IntSet{0}
	task.Reduce(IntSet{0}, nil)
	if !task.GoalIsUnreachable {
		t.Fatal("removing a goal fact must mark the task goal-unreachable")
	}
}

func TestReduceNoOpIsNoOp(t *testing.T) {
	task := twoOpTask()
	before := task.Clone()
	task.Reduce(nil, nil)
	if len(task.Fact) != len(before.Fact) || len(task.Op) != len(before.Op) {
		t.Fatal("reduce(empty, empty) must not change fact/op counts")
	}
}

func TestUncoveredDeleteEffects(t *testing.T) {
	task := twoOpTask()
	// op0 deletes fact 0 which it also requires in pre: covered.
	// op1 deletes fact 1 which it also requires in pre: covered.
	got := task.UncoveredDeleteEffects()
	if len(got) != 0 {
		t.Fatalf("expected no uncovered deletes, got %v", got)
	}

	task.AddOp(&Op{Name: "op2", Pre: IntSet{}, Add: IntSet{0}, Del: IntSet{2}})
	got = task.UncoveredDeleteEffects()
	if !equalIntSet(got, IntSet{2}) {
		t.Fatalf("expected fact 2 to be an uncovered delete, got %v", got)
	}
}

func TestIsExactlyOneMGroup(t *testing.T) {
	task := twoOpTask()
	if !task.IsExactlyOneMGroup(IntSet{0, 1, 2}) {
		t.Fatal("{0,1,2} should be an exactly-one group: op0 moves 0->1, op1 moves 1->2")
	}
	if task.IsExactlyOneMGroup(IntSet{0, 2}) {
		t.Fatal("{0,2}: op0 deletes 0 but adds 1 (outside the set), so it is not exactly-one")
	}
}

func TestMGroupsRemoveSubsetsAndSmall(t *testing.T) {
	var g MGroups
	g.Add(IntSet{0, 1})
	g.Add(IntSet{0})
	g.Add(IntSet{0, 1, 2})
	g.RemoveSubsets()
	if len(g) != 1 {
		t.Fatalf("expected only the superset group to survive, got %d groups", len(g))
	}
	if !equalIntSet(g[0].Fact, IntSet{0, 1, 2}) {
		t.Fatalf("wrong surviving group: %v", g[0].Fact)
	}

	var g2 MGroups
	g2.Add(IntSet{0})
	g2.Add(IntSet{0, 1})
	g2.RemoveSmall(2)
	if len(g2) != 1 || len(g2[0].Fact) != 2 {
		t.Fatalf("RemoveSmall(2) should drop the singleton group, got %v", g2)
	}
}

func TestMutexPairsAddIsMutexAndReduce(t *testing.T) {
	mp := NewMutexPairs(4)
	mp.Add(0, 2)
	mp.Add(1, 3)
	if !mp.IsMutex(0, 2) || !mp.IsMutex(2, 0) {
		t.Fatal("IsMutex should be symmetric")
	}
	if mp.IsMutex(0, 1) {
		t.Fatal("unrelated pair reported mutex")
	}

	remap := []int{0, -1, 1, 2} // fact 1 removed
	mp.Reduce(remap)
	if mp.IsMutex(0, 2) {
		t.Fatal("pair mentioning a removed fact must not survive Reduce")
	}
	if !mp.IsMutex(0, 1) { // was (0,2) -> (0,1)
		t.Fatal("surviving pair should be remapped to the new fact ids")
	}
}

func TestCrossRefIndexesByRole(t *testing.T) {
	task := twoOpTask()
	cref := NewCrossRef(task)
	if !cref.Fact[0].IsInit {
		t.Fatal("fact 0 is in init")
	}
	if !cref.Fact[0].OpPre.Has(0) {
		t.Fatal("op0 requires fact 0")
	}
	if !cref.Fact[1].OpAdd.Has(0) {
		t.Fatal("op0 adds fact 1")
	}
	if !cref.Fact[0].OpDel.Has(0) {
		t.Fatal("op0 deletes fact 0")
	}
}
