package lifted

import "pddlcore/internal/formula"

// CompileInLiftedMGroups strengthens every action's precondition (and its
// conditional effects' triggers) to forbid the action from violating any
// of mgroups' mutex invariants and/or walking a required mutex-group
// instance into a state with no way back, per cfg. Reports whether any
// action was actually changed.
func CompileInLiftedMGroups(task *Task, mgroups []*MGroup, cfg Config) bool {
	if len(mgroups) == 0 {
		return false
	}

	changed := false
	for _, action := range task.Actions {
		acs := &actionConds{}
		for _, mg := range mgroups {
			if cfg.PruneMutex {
				compileInMutex(task, action, mg, acs)
			}
			if cfg.PruneDeadEnd {
				compileInDeadEnd(task, action, mg, acs)
			}
		}

		if c := acs.merge(action.Pre); c != nil {
			action.Pre = formula.NewAnd2(action.Pre, c)
			changed = true
		}

		for _, when := range formula.AllWhens(action.Eff) {
			if c := acs.merge(when.Cond); c != nil {
				when.Cond = formula.NewAnd2(when.Cond, c)
				changed = true
			}
		}
	}

	return changed
}
