package errors

import "fmt"

// Builder provides a fluent interface for constructing a PlannerError.
type Builder struct {
	err PlannerError
}

// New starts building an error of the given code and stage.
func New(code, stage, message string) *Builder {
	return &Builder{err: PlannerError{
		Level:   LevelError,
		Code:    code,
		Stage:   stage,
		Message: message,
	}}
}

// Warn starts building a warning instead of an error.
func Warn(code, stage, message string) *Builder {
	b := New(code, stage, message)
	b.err.Level = LevelWarn
	return b
}

// WithNote adds a note to the error.
func (b *Builder) WithNote(note string) *Builder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

// WithHelp sets the help text of the error.
func (b *Builder) WithHelp(help string) *Builder {
	b.err.HelpText = help
	return b
}

// Build returns the completed error.
func (b *Builder) Build() *PlannerError {
	return &b.err
}

// FixtureParseError wraps a participle parse failure with the fixture
// error code, so callers always get a *PlannerError regardless of how the
// underlying parser reports its own errors.
func FixtureParseError(cause error) *PlannerError {
	return New(ErrorFixtureParse, "fixture", fmt.Sprintf("fixture source is malformed: %s", cause)).Build()
}

// FixtureUnknownPredicate builds the error raised when a fixture atom names
// a predicate that was never declared.
func FixtureUnknownPredicate(name string) *PlannerError {
	return New(ErrorFixtureUnknownPred, "fixture", fmt.Sprintf("undeclared predicate %q", name)).
		WithHelp("declare the predicate before any fact or condition that uses it").
		Build()
}

// FixtureUnknownObject builds the error raised when a fixture atom argument
// names an object that was never declared.
func FixtureUnknownObject(name string) *PlannerError {
	return New(ErrorFixtureUnknownObj, "fixture", fmt.Sprintf("undeclared object %q", name)).Build()
}

// FixtureArityMismatch builds the error raised when an atom's argument count
// does not match its predicate's declared arity.
func FixtureArityMismatch(pred string, want, got int) *PlannerError {
	return New(ErrorFixtureArity, "fixture", fmt.Sprintf("predicate %q takes %d argument(s), got %d", pred, want, got)).Build()
}

// PipelineUnknownPruner builds the error raised when a pipeline manifest
// names a pruner that was never registered.
func PipelineUnknownPruner(name string) *PlannerError {
	return New(ErrorPipelineUnknownPruner, "pipeline", fmt.Sprintf("unknown pruner %q", name)).
		WithHelp("check the pruner name against the registered pruner list").
		Build()
}

// PipelineDuplicateStage builds the error raised when a manifest lists the
// same pruner stage twice.
func PipelineDuplicateStage(name string) *PlannerError {
	return New(ErrorPipelineCycle, "pipeline", fmt.Sprintf("pruner %q listed more than once", name)).Build()
}

// PipelineUnsupportedInput builds the warning logged when a pruner stage is
// skipped because the task's shape (conditional effects, most commonly)
// disqualifies it. Skipping a pruner is not a pipeline failure.
func PipelineUnsupportedInput(stage, reason string) *PlannerError {
	return Warn(ErrorPipelineUnsupportedInput, stage, reason).Build()
}
