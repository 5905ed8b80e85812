package irrelevance

import (
	"pddlcore/internal/errors"
	"pddlcore/internal/ground"
)

func enqueueFDR(op *ground.FDROp, varIrr, opIrr []int, opID int, queue *[]int) {
	opIrr[opID] = needed
	for _, f := range op.Pre.Fact {
		if varIrr[f.Var] == unmarked {
			varIrr[f.Var] = needed
			*queue = append(*queue, f.Var)
		}
	}
}

func backwardFDR(fdr *ground.FDRTask, varToOp []ground.IntSet, varIrr, opIrr []int) {
	var queue []int
	for _, f := range fdr.Goal.Fact {
		if varIrr[f.Var] == unmarked {
			varIrr[f.Var] = needed
			queue = append(queue, f.Var)
		}
	}

	for len(queue) > 0 {
		varID := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		for _, opID := range varToOp[varID] {
			if opIrr[opID] == unmarked {
				enqueueFDR(fdr.Op[opID], varIrr, opIrr, opID, &queue)
			}
		}
	}
}

// AnalysisFDR is the FDR variant of Analysis: it operates on variables
// rather than facts, using a variable-to-operator index built from each
// operator's effect supports.
//
// Grounded on pddlIrrelevanceAnalysisFDR.
func AnalysisFDR(fdr *ground.FDRTask) (irrelevantVars, irrelevantOps ground.IntSet, err error) {
	if fdr.HasCondEff {
		return nil, nil, errors.New(errors.ErrorPipelineUnsupportedInput, "irrelevance",
			"irrelevance analysis does not support conditional effects").Build()
	}

	varToOp := make([]ground.IntSet, len(fdr.Var))
	for opID, op := range fdr.Op {
		for _, f := range op.Eff.Fact {
			varToOp[f.Var].Add(opID)
		}
	}

	varIrr := make([]int, len(fdr.Var))
	opIrr := make([]int, len(fdr.Op))

	backwardFDR(fdr, varToOp, varIrr, opIrr)

	for v := range fdr.Var {
		if varIrr[v] >= 0 {
			irrelevantVars.Add(v)
		}
	}
	for o := range fdr.Op {
		if opIrr[o] >= 0 {
			irrelevantOps.Add(o)
		}
	}

	return irrelevantVars, irrelevantOps, nil
}
