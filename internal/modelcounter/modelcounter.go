// Package modelcounter estimates the number of boolean assignments
// consistent with a task's mutex structure by shelling out to an
// approximate-model-counting SAT solver (approxmc-compatible CLI) over a
// DIMACS CNF encoding of the mutex groups and mutex pairs.
//
// Grounded on original_source/ext/cpddl/src/mg_strips.c's
// pddlMGStripsNumStatesApproxMC, which builds a DIMACS CNF in memory and
// pipes it to a forked approxmc process, then parses its
// "Number of solutions is: k x 2^e" summary line.
package modelcounter

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"

	"pddlcore/internal/ground"
)

// CNF is a boolean formula in conjunctive normal form over numbered
// variables, DIMACS literal convention (positive int = variable true,
// negative = variable false).
type CNF struct {
	NumVars int
	Clauses [][]int
}

func (c *CNF) addClause(lits ...int) {
	c.Clauses = append(c.Clauses, lits)
}

// WriteDIMACS renders c in the DIMACS CNF text format approxmc-family
// tools read on stdin.
func (c *CNF) WriteDIMACS(w *bufio.Writer) error {
	if _, err := fmt.Fprintf(w, "p cnf %d %d\n", c.NumVars, len(c.Clauses)); err != nil {
		return err
	}
	for _, clause := range c.Clauses {
		for _, lit := range clause {
			if _, err := fmt.Fprintf(w, "%d ", lit); err != nil {
				return err
			}
		}
		if _, err := w.WriteString("0\n"); err != nil {
			return err
		}
	}
	return w.Flush()
}

// BuildCNF encodes one boolean variable per fact and constrains it with:
// an at-least-one clause for every exactly-one mutex group, plus a
// pairwise exclusion clause for every recorded mutex pair. It also adds
// the group's own pairwise at-most-one clauses directly, rather than
// relying solely on the caller's mutex index to already cover every
// intra-group pair — pddlMGStripsNumStatesApproxMC emits only the
// at-least-one disjunction per group and leans on its mutex_pairs_t
// (built from the same mg_strips, so it already contains every
// intra-group exclusion) for the rest; encoding both here directly keeps
// BuildCNF correct even when called with a mutex index that wasn't built
// from these same mgroups.
//
// Grounded on the clause-building loop inside pddlMGStripsNumStatesApproxMC
// (mutex groups and the mutex-pair index are the only structures it reads
// before invoking the solver).
func BuildCNF(task *ground.Task, mgroups ground.MGroups, mutex *ground.MutexPairs) *CNF {
	cnf := &CNF{NumVars: len(task.Fact)}
	factVar := func(f int) int { return f + 1 }

	for _, mg := range mgroups {
		if !mg.IsExactlyOne {
			continue
		}
		atLeastOne := make([]int, len(mg.Fact))
		for i, f := range mg.Fact {
			atLeastOne[i] = factVar(f)
		}
		cnf.addClause(atLeastOne...)
		for i := 0; i < len(mg.Fact); i++ {
			for j := i + 1; j < len(mg.Fact); j++ {
				cnf.addClause(-factVar(mg.Fact[i]), -factVar(mg.Fact[j]))
			}
		}
	}

	if mutex != nil {
		mutex.ForEach(func(f1, f2 int) {
			cnf.addClause(-factVar(f1), -factVar(f2))
		})
	}

	return cnf
}

var solutionLine = regexp.MustCompile(`Number of solutions is:\s*(\d+)\s*x\s*2\^(\d+)`)

// Count runs binary (an approxmc-compatible CLI) over cnf's DIMACS
// encoding via stdin and parses its "Number of solutions is: k x 2^e"
// summary line, returning the mantissa and exponent of that approximate
// count. The caller multiplies them out (float64(mantissa) *
// math.Pow(2, float64(exponent))) since the raw count can vastly exceed
// any fixed-width integer.
//
// Grounded on pddlMGStripsNumStatesApproxMC's pipe/fork/exec sequence and
// its sscanf of the same summary line.
func Count(ctx context.Context, binary string, cnf *CNF) (mantissa int64, exponent int, err error) {
	cmd := exec.CommandContext(ctx, binary)

	var input bytes.Buffer
	w := bufio.NewWriter(&input)
	if err := cnf.WriteDIMACS(w); err != nil {
		return 0, 0, fmt.Errorf("modelcounter: encoding CNF: %w", err)
	}
	cmd.Stdin = &input

	out, err := cmd.Output()
	if err != nil {
		return 0, 0, fmt.Errorf("modelcounter: running %s: %w", binary, err)
	}

	m := solutionLine.FindSubmatch(out)
	if m == nil {
		return 0, 0, fmt.Errorf("modelcounter: could not find a solution-count line in %s's output", binary)
	}
	mantissa, err = strconv.ParseInt(string(m[1]), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("modelcounter: parsing mantissa: %w", err)
	}
	exp64, err := strconv.ParseInt(string(m[2]), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("modelcounter: parsing exponent: %w", err)
	}
	return mantissa, int(exp64), nil
}
