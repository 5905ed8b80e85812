// Package promote turns a set of candidate ground mutex groups into a
// true exactly-one-valued finite-domain variable set: it strips
// uncovered-delete facts out of each candidate group, grows what survives
// into a real exactly-one invariant (adding a shared "none of these" fact
// where needed), binary-encodes every fact no group ends up covering, and
// imports the result into an FDR task.
//
// Grounded on original_source/ext/cpddl/src/mg_strips.c's promotion half
// (findUncoveredDelEffs, prepareMGroups, makeMGroupExactlyOne,
// encodeMGroups, encodeBinaryFact, encodeBinaryFacts, pddlMGStripsInit).
package promote

import (
	"fmt"
	"sort"

	"pddlcore/internal/ground"
)

// PrepareMGroups copies candidates, removes every uncovered-delete-effect
// fact (task.UncoveredDeleteEffects) from each group's membership, and
// re-normalizes the result: subset groups and groups left with fewer than
// two facts are dropped, duplicates are merged, and the survivors are
// ordered largest first.
//
// Grounded on findUncoveredDelEffs + prepareMGroups (mg_strips.c).
func PrepareMGroups(task *ground.Task, candidates ground.MGroups) ground.MGroups {
	uncovered := task.UncoveredDeleteEffects()

	out := make(ground.MGroups, len(candidates))
	for i, mg := range candidates {
		facts := mg.Fact.Clone()
		facts.Minus(uncovered)
		out[i] = &ground.MGroup{Fact: facts}
	}
	out.RemoveSubsets()
	out.RemoveSmall(2)
	out.SortUniq()
	out.SortBySizeDesc()
	return out
}

// EncodeBinaryFact synthesizes the negation of fact as a fresh fact (named
// "NOT:"+fact's name) and rewrites every operator that adds or deletes
// fact to also touch the new negation, so the pair behaves as a true
// exactly-one-of-two invariant. Returns the new fact's id, or the existing
// negation's id if fact was already binary-encoded.
//
// Grounded on encodeBinaryFact (mg_strips.c).
func EncodeBinaryFact(task *ground.Task, fact int) int {
	if task.Fact[fact].NegOf >= 0 {
		return task.Fact[fact].NegOf
	}

	negID := task.AddFact(ground.Fact{Name: "NOT:" + task.Fact[fact].Name, NegOf: fact})
	task.Fact[fact].NegOf = negID

	if !task.Init.Has(fact) {
		task.Init.Add(negID)
	}

	for _, op := range task.Op {
		addsFact := op.Add.Has(fact)
		delsFact := op.Del.Has(fact)
		if delsFact && !addsFact {
			op.Add.Add(negID)
		}
		if !delsFact && addsFact {
			op.Del.Add(negID)
		}
	}
	return negID
}

// MakeMGroupExactlyOne grows a single prepared group (already stripped of
// uncovered-delete facts) into a true exactly-one invariant by adding one
// shared "none of these" fact: every operator that deletes a member
// without adding another also adds the catch-all, and every operator that
// adds a member without deleting another also removes it. It returns nil
// — dropping the group entirely — when facts shares no member with Init,
// matching the original source's own early-out: a group whose surviving,
// delete-safe members are never true initially isn't a useful invariant
// to promote.
//
// Grounded on makeMGroupExactlyOne (mg_strips.c).
func MakeMGroupExactlyOne(task *ground.Task, facts ground.IntSet) *ground.MGroup {
	if ground.IsDisjoint(facts, task.Init) {
		return nil
	}

	mg := &ground.MGroup{Fact: facts.Clone()}
	if task.IsExactlyOneMGroup(mg.Fact) {
		mg.IsExactlyOne = true
		return mg
	}

	name := "NOT:"
	for i, f := range mg.Fact {
		if i > 0 {
			name += ";"
		}
		name += task.Fact[f].Name
	}
	noneID := task.AddFact(ground.Fact{Name: name, NegOf: -1})
	mg.Fact.Add(noneID)

	for _, op := range task.Op {
		inDel := len(ground.Intersect(op.Del, facts)) > 0
		inAdd := len(ground.Intersect(op.Add, facts)) > 0
		if inDel && !inAdd {
			op.Add.Add(noneID)
		}
		if !inDel && inAdd {
			op.Del.Add(noneID)
		}
	}
	if ground.IsDisjoint(task.Init, facts) {
		task.Init.Add(noneID)
	}

	mg.IsExactlyOne = task.IsExactlyOneMGroup(mg.Fact)
	return mg
}

// EncodeMGroups runs the promotion step over prepared (PrepareMGroups'
// output): a group of size one or less is skipped outright, an
// already-exactly-one group is copied through unchanged, and every other
// group is grown via MakeMGroupExactlyOne or dropped if that reports no
// useful invariant.
//
// Grounded on encodeMGroups (mg_strips.c).
func EncodeMGroups(task *ground.Task, prepared ground.MGroups) ground.MGroups {
	var out ground.MGroups
	for _, mg := range prepared {
		if len(mg.Fact) <= 1 {
			continue
		}
		if task.IsExactlyOneMGroup(mg.Fact) {
			out = append(out, &ground.MGroup{Fact: mg.Fact.Clone(), IsExactlyOne: true})
			continue
		}
		// The original source asserts every group reaches exactly-one by
		// this point rather than checking; a Go library parsing untrusted
		// candidate groups drops what still fails instead of panicking.
		if encoded := MakeMGroupExactlyOne(task, mg.Fact); encoded != nil && encoded.IsExactlyOne {
			out = append(out, encoded)
		}
	}
	return out
}

// EncodeBinaryFacts binary-encodes every fact in task that no group in
// mgroups already covers, registering each resulting (fact, negation)
// pair as its own two-valued group. Returns mgroups plus the new pairs.
//
// Grounded on encodeBinaryFacts (mg_strips.c).
func EncodeBinaryFacts(task *ground.Task, mgroups ground.MGroups) ground.MGroups {
	var covered ground.IntSet
	for _, mg := range mgroups {
		covered.Union(mg.Fact)
	}

	out := append(ground.MGroups(nil), mgroups...)
	factCount := len(task.Fact)
	for f := 0; f < factCount; f++ {
		if covered.Has(f) {
			continue
		}
		neg := EncodeBinaryFact(task, f)
		covered.Add(f)
		covered.Add(neg)

		var pair ground.IntSet
		pair.Add(f)
		pair.Add(neg)
		mg := out.Add(pair)
		mg.IsExactlyOne = true
	}
	return out
}

// Promote runs the full mutex-group promotion pipeline over task and a
// candidate mgroup list: strip uncovered-delete facts and re-normalize
// (PrepareMGroups), grow survivors into real exactly-one invariants or
// drop them (EncodeMGroups), then binary-encode every fact no surviving
// group covers (EncodeBinaryFacts). The result is ready for ToFDR.
//
// Grounded on pddlMGStripsInit (mg_strips.c).
func Promote(task *ground.Task, candidates ground.MGroups) ground.MGroups {
	prepared := PrepareMGroups(task, candidates)
	encoded := EncodeMGroups(task, prepared)
	out := EncodeBinaryFacts(task, encoded)
	out.SortBySizeDesc()
	return out
}

// ToFDR imports task plus its mgroups into an FDR task: each group becomes
// one finite-domain variable whose values are its member facts. mgroups
// must be pairwise disjoint and, as produced by Promote, already cover
// every fact; any fact a caller's mgroups still leave uncovered is
// binary-encoded here too (via EncodeBinaryFact), since an FDR variable
// needs at least two values — a bare singleton would have no way to
// represent the fact being false.
//
// mg_strips.c's own pddlMGStripsInitFDR runs the opposite direction (it
// rebuilds the STRIPS view from an already-grounded FDR task, for the
// h2/mutex passes, which only understand STRIPS); no STRIPS-to-FDR
// builder reached this repo's retrieval set, since that construction
// happens upstream of every file original_source/ retrieved. ToFDR is the
// same var/value/global-id field correspondence inverted to the
// direction this module's pipeline needs (ground STRIPS in, FDR out).
func ToFDR(task *ground.Task, mgroups ground.MGroups) *ground.FDRTask {
	fdr := &ground.FDRTask{HasCondEff: task.HasCondEff, GoalIsUnreachable: task.GoalIsUnreachable}

	factVar := make([]int, len(task.Fact))
	factVal := make([]int, len(task.Fact))
	for i := range factVar {
		factVar[i] = -1
	}
	grow := func(id int) {
		for len(factVar) <= id {
			factVar = append(factVar, -1)
			factVal = append(factVal, 0)
		}
	}

	addVar := func(members []int) int {
		sort.Ints(members)
		varID := len(fdr.Var)
		vals := make([]ground.FDRVal, len(members))
		for i, f := range members {
			grow(f)
			vals[i] = ground.FDRVal{Name: task.Fact[f].Name, GlobalID: f}
			factVar[f] = varID
			factVal[f] = i
		}
		fdr.Var = append(fdr.Var, ground.FDRVar{Name: fmt.Sprintf("var%d", varID), Val: vals})
		return varID
	}

	for _, mg := range mgroups {
		addVar(append([]int(nil), mg.Fact...))
	}

	factCount := len(task.Fact)
	for f := 0; f < factCount; f++ {
		if f < len(factVar) && factVar[f] >= 0 {
			continue
		}
		neg := task.Fact[f].NegOf
		if neg < 0 {
			neg = EncodeBinaryFact(task, f)
		}
		grow(neg)
		if factVar[neg] >= 0 {
			continue
		}
		addVar([]int{f, neg})
	}

	toPartState := func(facts ground.IntSet) ground.FDRPartState {
		var ps ground.FDRPartState
		for _, f := range facts {
			ps.Fact = append(ps.Fact, ground.FDRFact{Var: factVar[f], Val: factVal[f]})
		}
		sort.Slice(ps.Fact, func(i, j int) bool { return ps.Fact[i].Var < ps.Fact[j].Var })
		return ps
	}

	fdr.Init = make([]int, len(fdr.Var))
	for f := range task.Fact {
		if task.Init.Has(f) {
			fdr.Init[factVar[f]] = factVal[f]
		}
	}

	fdr.Goal = toPartState(task.Goal)

	for _, op := range task.Op {
		fop := &ground.FDROp{Name: op.Name, Cost: op.Cost, Pre: toPartState(op.Pre)}
		for _, f := range op.Add {
			fop.Eff.Fact = append(fop.Eff.Fact, ground.FDRFact{Var: factVar[f], Val: factVal[f]})
		}
		sort.Slice(fop.Eff.Fact, func(i, j int) bool { return fop.Eff.Fact[i].Var < fop.Eff.Fact[j].Var })
		for _, ce := range op.CondEff {
			fop.CondEff = append(fop.CondEff, ground.FDRCondEff{
				Pre: toPartState(ce.Pre),
				Eff: toPartState(ce.Add),
			})
		}
		fdr.Op = append(fdr.Op, fop)
	}

	return fdr
}
