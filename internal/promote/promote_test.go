package promote

import (
	"testing"

	"pddlcore/internal/ground"
)

// lightTask: "on" has no counterpart fact yet, so binary-encoding it
// synthesizes its "off" value, the fact "NOT:on".
func lightTask() *ground.Task {
	task := ground.NewTask()
	on := task.AddFact(ground.Fact{Name: "on", NegOf: -1})
	task.AddOp(&ground.Op{Name: "turn-on", Add: ground.IntSet{on}})
	task.AddOp(&ground.Op{Name: "turn-off", Del: ground.IntSet{on}})
	task.Init = ground.IntSet{}
	task.Goal = ground.IntSet{on}
	return task
}

func TestEncodeBinaryFactLinksNegationBothWays(t *testing.T) {
	task := lightTask()
	neg := EncodeBinaryFact(task, 0)
	if task.Fact[0].NegOf != neg || task.Fact[neg].NegOf != 0 {
		t.Fatalf("fact and its negation must link to each other, got %d<->%d", task.Fact[0].NegOf, task.Fact[neg].NegOf)
	}
	if !task.Init.Has(neg) {
		t.Fatal("off is the fact's initial truth value (on was not in Init), so its negation must be in Init")
	}
	turnOn := task.Op[0]
	if !turnOn.Del.Has(neg) {
		t.Fatal("turn-on adds on, so it must also delete the synthesized off")
	}
	turnOff := task.Op[1]
	if !turnOff.Add.Has(neg) {
		t.Fatal("turn-off deletes on, so it must also add the synthesized off")
	}
}

func TestPrepareMGroupsStripsUncoveredDeleteAndDropsTooSmall(t *testing.T) {
	task := ground.NewTask()
	f := task.AddFact(ground.Fact{Name: "f", NegOf: -1})
	g := task.AddFact(ground.Fact{Name: "g", NegOf: -1})
	h := task.AddFact(ground.Fact{Name: "h", NegOf: -1})
	k := task.AddFact(ground.Fact{Name: "k", NegOf: -1})
	// clear-f deletes f without requiring it: f is an uncovered delete.
	task.AddOp(&ground.Op{Name: "clear-f", Del: ground.IntSet{f}})
	task.Init = ground.IntSet{f, g, k}
	task.Goal = ground.IntSet{}

	// {f,g,h} keeps {g,h} once f is stripped; {f,k} is left with k alone
	// and is dropped as too small.
	candidates := ground.MGroups{{Fact: ground.IntSet{f, g, h}}, {Fact: ground.IntSet{f, k}}}
	out := PrepareMGroups(task, candidates)
	if len(out) != 1 {
		t.Fatalf("expected only the {g,h} group to survive with f stripped, got %d groups", len(out))
	}
	if out[0].Fact.Has(f) || !out[0].Fact.Has(g) {
		t.Fatalf("f should have been stripped as an uncovered delete, g kept: %v", out[0].Fact)
	}
}

func TestMakeMGroupExactlyOneAddsCatchAllFact(t *testing.T) {
	task := ground.NewTask()
	a := task.AddFact(ground.Fact{Name: "a", NegOf: -1})
	b := task.AddFact(ground.Fact{Name: "b", NegOf: -1})
	// clear deletes a without adding b: after firing, neither a nor b
	// holds, so {a,b} alone isn't exactly-one.
	task.AddOp(&ground.Op{Name: "clear", Pre: ground.IntSet{a}, Del: ground.IntSet{a}})
	task.Init = ground.IntSet{a}
	task.Goal = ground.IntSet{}

	facts := ground.IntSet{a, b}
	if task.IsExactlyOneMGroup(facts) {
		t.Fatal("group should not start out exactly-one")
	}

	mg := MakeMGroupExactlyOne(task, facts)
	if mg == nil {
		t.Fatal("group shares a with Init, so it should not be dropped")
	}
	if !mg.IsExactlyOne {
		t.Fatal("adding the catch-all fact should make the group exactly-one")
	}
	if len(mg.Fact) != 3 {
		t.Fatalf("expected a, b, and one catch-all fact, got %d members", len(mg.Fact))
	}
}

func TestMakeMGroupExactlyOneDropsGroupDisjointFromInit(t *testing.T) {
	task := ground.NewTask()
	a := task.AddFact(ground.Fact{Name: "a", NegOf: -1})
	b := task.AddFact(ground.Fact{Name: "b", NegOf: -1})
	task.Init = ground.IntSet{}
	task.Goal = ground.IntSet{}

	if mg := MakeMGroupExactlyOne(task, ground.IntSet{a, b}); mg != nil {
		t.Fatalf("a group sharing no member with Init should be dropped, got %v", mg)
	}
}

func TestEncodeMGroupsDropsUnresolvableGroups(t *testing.T) {
	task := ground.NewTask()
	a := task.AddFact(ground.Fact{Name: "a", NegOf: -1})
	b := task.AddFact(ground.Fact{Name: "b", NegOf: -1})
	// clear-both deletes a and b in one shot without adding either: no
	// catch-all fact can fix this, since an operator touching two members
	// at once breaks the "at most one" invariant regardless.
	task.AddOp(&ground.Op{Name: "clear-both", Del: ground.IntSet{a, b}})
	task.Init = ground.IntSet{a}
	task.Goal = ground.IntSet{}

	prepared := ground.MGroups{{Fact: ground.IntSet{a, b}}}
	out := EncodeMGroups(task, prepared)
	if len(out) != 0 {
		t.Fatalf("group touched by a double-delete operator cannot become exactly-one, got %d survivors", len(out))
	}
}

func TestEncodeBinaryFactsCoversRemainingFacts(t *testing.T) {
	task := ground.NewTask()
	a := task.AddFact(ground.Fact{Name: "a", NegOf: -1})
	b := task.AddFact(ground.Fact{Name: "b", NegOf: -1})
	task.Init = ground.IntSet{a}
	task.Goal = ground.IntSet{}

	// neither a nor b is covered by any group, so both get paired with a
	// synthesized negation.
	out := EncodeBinaryFacts(task, nil)
	if len(out) != 2 {
		t.Fatalf("expected one two-valued group per uncovered fact, got %d", len(out))
	}
	for _, mg := range out {
		if len(mg.Fact) != 2 || !mg.IsExactlyOne {
			t.Fatalf("every binary-encoded pair should be an exactly-one group of size 2, got %v", mg)
		}
	}
	if task.Fact[a].NegOf < 0 || task.Fact[b].NegOf < 0 {
		t.Fatal("both a and b should now have a synthesized negation")
	}
}

func TestPromoteCoversEveryFact(t *testing.T) {
	task := ground.NewTask()
	on := task.AddFact(ground.Fact{Name: "on", NegOf: -1})
	loud := task.AddFact(ground.Fact{Name: "loud", NegOf: -1})
	task.AddOp(&ground.Op{Name: "turn-on", Add: ground.IntSet{on}})
	task.AddOp(&ground.Op{Name: "turn-off", Del: ground.IntSet{on}})
	task.Init = ground.IntSet{loud}
	task.Goal = ground.IntSet{on}

	out := Promote(task, nil)

	covered := make(map[int]bool)
	for _, mg := range out {
		for _, f := range mg.Fact {
			covered[f] = true
		}
	}
	for f := 0; f < len(task.Fact); f++ {
		if !covered[f] {
			t.Fatalf("Promote must leave every fact covered by some group, %q is not", task.Fact[f].Name)
		}
	}
}

func TestToFDRPartitionsFactsIntoVariables(t *testing.T) {
	task := lightTask()
	neg := EncodeBinaryFact(task, 0)
	mgroups := ground.MGroups{{Fact: ground.IntSet{0, neg}, IsExactlyOne: true}}

	fdr := ToFDR(task, mgroups)
	if len(fdr.Var) != 1 {
		t.Fatalf("on/off should collapse into a single FDR variable, got %d", len(fdr.Var))
	}
	if len(fdr.Var[0].Val) != 2 {
		t.Fatalf("the on/off variable should have two values, got %d", len(fdr.Var[0].Val))
	}
}

func TestToFDRGivesUncoveredFactsTwoValuedVariables(t *testing.T) {
	task := ground.NewTask()
	a := task.AddFact(ground.Fact{Name: "a", NegOf: -1})
	task.Init = ground.IntSet{a}
	task.Goal = ground.IntSet{a}

	fdr := ToFDR(task, nil)
	if len(fdr.Var) != 1 {
		t.Fatalf("an uncovered fact should still get its own FDR variable, got %d", len(fdr.Var))
	}
	if len(fdr.Var[0].Val) != 2 {
		t.Fatalf("ToFDR must binary-encode a still-uncovered fact rather than emit a single-valued variable, got %d values", len(fdr.Var[0].Val))
	}
	if got, ok := fdr.Goal.Get(0); !ok || got != 0 {
		t.Fatalf("goal should pin variable 0 to fact a's value index, got %d ok=%v", got, ok)
	}
}
