package errors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReporterFormatError(t *testing.T) {
	reporter := NewReporter()

	err := FixtureUnknownPredicate("on-table")
	formatted := reporter.Format(err)

	assert.Contains(t, formatted, "error["+ErrorFixtureUnknownPred+"]")
	assert.Contains(t, formatted, "on-table")
	assert.Contains(t, formatted, "fixture")
	assert.Contains(t, formatted, "help:")
}

func TestReporterFormatWarning(t *testing.T) {
	reporter := NewReporter()

	err := Warn(ErrorPipelineCycle, "pipeline", "pruner \"dtg\" listed twice").Build()
	formatted := reporter.Format(err)

	assert.Contains(t, formatted, "warning["+ErrorPipelineCycle+"]")
}

func TestPipelineUnknownPruner(t *testing.T) {
	err := PipelineUnknownPruner("h9")
	assert.Equal(t, ErrorPipelineUnknownPruner, err.Code)
	assert.Contains(t, err.Message, "h9")
	assert.NotEmpty(t, err.HelpText)
}

func TestFixtureArityMismatch(t *testing.T) {
	err := FixtureArityMismatch("on", 2, 3)
	assert.Equal(t, ErrorFixtureArity, err.Code)
	assert.True(t, strings.Contains(err.Message, "2") && strings.Contains(err.Message, "3"))
}

func TestCategory(t *testing.T) {
	assert.Equal(t, "Fixture", Category(ErrorFixtureUnknownPred))
	assert.Equal(t, "Pipeline", Category(ErrorPipelineUnknownPruner))
	assert.Equal(t, "Internal", Category(ErrorInvariant))
}

func TestInvariantPanics(t *testing.T) {
	assert.NotPanics(t, func() { Invariant(true, "fine") })
	assert.Panics(t, func() { Invariant(false, "should never happen") })
}
