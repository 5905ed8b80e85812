package irrelevance

import (
	"testing"

	"pddlcore/internal/ground"
)

// sunnyTask: fact 0 "sunny" is in init, never appears in any effect, and is
// not in the goal — a textbook static + irrelevant fact. Fact 1 is the goal
// and is reached by op0, whose precondition is fact 2 (relevant). Fact 3 is
// wholly unconnected (never in pre/add/del/goal) and must also be reported
// irrelevant, but NOT static (it is not in the initial state).
func sunnyTask() *ground.Task {
	task := ground.NewTask()
	task.AddFact(ground.Fact{Name: "sunny", NegOf: -1})     // 0
	task.AddFact(ground.Fact{Name: "goal-fact", NegOf: -1}) // 1
	task.AddFact(ground.Fact{Name: "pre-fact", NegOf: -1})  // 2
	task.AddFact(ground.Fact{Name: "unrelated", NegOf: -1}) // 3
	task.AddOp(&ground.Op{Name: "op0", Pre: ground.IntSet{2}, Add: ground.IntSet{1}})
	task.Init = ground.IntSet{0, 2}
	task.Goal = ground.IntSet{1}
	return task
}

func TestAnalysisFindsStaticFact(t *testing.T) {
	task := sunnyTask()
	_, _, static, err := Analysis(task, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !static.Has(0) {
		t.Fatalf("sunny (fact 0) should be reported static, got %v", static)
	}
}

func TestAnalysisMarksRelevantChain(t *testing.T) {
	task := sunnyTask()
	irrFacts, irrOps, _, err := Analysis(task, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if irrFacts.Has(1) || irrFacts.Has(2) {
		t.Fatalf("goal fact and its precondition must be relevant, got irrelevant: %v", irrFacts)
	}
	if irrOps.Has(0) {
		t.Fatal("op0 reaches the goal fact and must be relevant")
	}
}

func TestAnalysisMarksUnrelatedFactIrrelevantButNotStatic(t *testing.T) {
	task := sunnyTask()
	irrFacts, _, static, err := Analysis(task, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !irrFacts.Has(3) {
		t.Fatalf("fact 3 is never needed for the goal, should be irrelevant: %v", irrFacts)
	}
	if static.Has(3) {
		t.Fatal("fact 3 is not in init, must not be reported static")
	}
}

func TestAnalysisRejectsConditionalEffects(t *testing.T) {
	task := sunnyTask()
	task.HasCondEff = true
	_, _, _, err := Analysis(task, nil, nil)
	if err == nil {
		t.Fatal("expected an error for a task with conditional effects")
	}
}

func TestAnalysisFDRMirrorsStripsShape(t *testing.T) {
	fdr := &ground.FDRTask{
		Var: []ground.FDRVar{
			{Name: "v0", Val: []ground.FDRVal{{Name: "a", GlobalID: 0}, {Name: "b", GlobalID: 1}}},
			{Name: "v1", Val: []ground.FDRVal{{Name: "x", GlobalID: 2}, {Name: "y", GlobalID: 3}}},
		},
		Op: []*ground.FDROp{
			{
				Name: "op0",
				Pre:  ground.FDRPartState{Fact: []ground.FDRFact{{Var: 0, Val: 0}}},
				Eff:  ground.FDRPartState{Fact: []ground.FDRFact{{Var: 1, Val: 1}}},
			},
		},
		Goal: ground.FDRPartState{Fact: []ground.FDRFact{{Var: 1, Val: 1}}},
	}

	irrVars, irrOps, err := AnalysisFDR(fdr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if irrVars.Has(0) || irrVars.Has(1) {
		t.Fatalf("both variables feed the goal chain, neither should be irrelevant: %v", irrVars)
	}
	if irrOps.Has(0) {
		t.Fatal("op0 sets the goal variable, must be relevant")
	}
}
