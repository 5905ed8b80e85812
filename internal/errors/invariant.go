package errors

// Invariant panics with a *PlannerError carrying ErrorInvariant when cond
// is false. It is used (by internal/unify's parameter-list checks) for
// conditions that can only be false due to a bug in that component or its
// caller — never for a condition that can legitimately arise from fixture
// or manifest input, which must instead return a *PlannerError built from
// the ErrorFixture* / ErrorPipeline* constructors.
func Invariant(cond bool, message string) {
	if cond {
		return
	}
	panic(New(ErrorInvariant, "invariant", message).Build())
}
