package fixture

import "testing"

const lightSwitch = `
fixture "light-switch" {
  facts: on, off;

  op turn-on {
    pre: off;
    add: on;
    del: off;
  }

  op turn-off {
    pre: on;
    add: off;
    del: on;
    cost: 2;
  }

  init: off;
  goal: on;
}
`

func TestParseTaskBuildsGroundTask(t *testing.T) {
	task, err := ParseTask("light-switch.fixture", lightSwitch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(task.Fact) != 2 {
		t.Fatalf("expected 2 facts, got %d", len(task.Fact))
	}
	if len(task.Op) != 2 {
		t.Fatalf("expected 2 operators, got %d", len(task.Op))
	}
	if task.Op[1].Cost != 2 {
		t.Fatalf("turn-off declared cost: 2, got %d", task.Op[1].Cost)
	}
	if task.Op[0].Cost != 1 {
		t.Fatalf("turn-on has no declared cost, should default to 1, got %d", task.Op[0].Cost)
	}
	if len(task.Init) != 1 || len(task.Goal) != 1 {
		t.Fatalf("expected a single-fact init and goal, got init=%v goal=%v", task.Init, task.Goal)
	}
}

func TestParseTaskRejectsUnknownFact(t *testing.T) {
	src := `
fixture "broken" {
  facts: a;
  init: a;
  goal: b;
}
`
	if _, err := ParseTask("broken.fixture", src); err == nil {
		t.Fatal("expected an error referencing the undeclared fact b")
	}
}

func TestParseTaskRejectsMalformedSource(t *testing.T) {
	if _, err := ParseTask("bad.fixture", "not a fixture at all"); err == nil {
		t.Fatal("expected a parse error for malformed source")
	}
}
