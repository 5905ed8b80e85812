package errors

// Error codes for the preprocessing pipeline.
// Codes are grouped by the stage that raises them so a code alone tells a
// reader roughly where in the pipeline to look.
//
// Error code ranges:
// P0001-P0099: Internal invariant violations (programmer error, not user-facing)
// P0100-P0199: Fixture / manifest loading errors
// P0200-P0299: Pruner pipeline configuration errors
const (
	ErrorInvariant = "P0001"

	ErrorFixtureParse       = "P0100"
	ErrorFixtureUnknownPred = "P0101"
	ErrorFixtureUnknownType = "P0102"
	ErrorFixtureUnknownObj  = "P0103"
	ErrorFixtureArity       = "P0104"

	ErrorPipelineUnknownPruner    = "P0200"
	ErrorPipelineBadManifest      = "P0201"
	ErrorPipelineCycle            = "P0202"
	ErrorPipelineUnsupportedInput = "P0203"
)

// Describe returns a short human-readable description of an error code,
// used by the reporter as a fallback when no message was supplied.
func Describe(code string) string {
	switch code {
	case ErrorInvariant:
		return "internal invariant violated"
	case ErrorFixtureParse:
		return "fixture source could not be parsed"
	case ErrorFixtureUnknownPred:
		return "fixture references an undeclared predicate"
	case ErrorFixtureUnknownType:
		return "fixture references an undeclared type"
	case ErrorFixtureUnknownObj:
		return "fixture references an undeclared object"
	case ErrorFixtureArity:
		return "atom arity does not match its predicate's declared arity"
	case ErrorPipelineUnknownPruner:
		return "pipeline manifest names a pruner that is not registered"
	case ErrorPipelineBadManifest:
		return "pipeline manifest is malformed"
	case ErrorPipelineCycle:
		return "pipeline manifest names a pruner stage more than once"
	case ErrorPipelineUnsupportedInput:
		return "pruner does not support this task's shape and was skipped"
	default:
		return "unknown error"
	}
}

// Category returns the stage name an error code belongs to.
func Category(code string) string {
	switch {
	case code >= "P0001" && code < "P0100":
		return "Internal"
	case code >= "P0100" && code < "P0200":
		return "Fixture"
	case code >= "P0200" && code < "P0300":
		return "Pipeline"
	default:
		return "Unknown"
	}
}
