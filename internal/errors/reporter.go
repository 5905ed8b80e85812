package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Level is the severity of a reported error.
type Level string

const (
	LevelError Level = "error"
	LevelWarn  Level = "warning"
	LevelNote  Level = "note"
)

// PlannerError is a structured error raised anywhere in the preprocessing
// pipeline: a fixture load, a pipeline manifest, or an internal invariant.
type PlannerError struct {
	Level    Level
	Code     string
	Message  string
	Stage    string // which component raised it, e.g. "dtg", "irrelevance"
	Notes    []string
	HelpText string
}

func (e *PlannerError) Error() string {
	if e.Stage != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Stage, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Reporter formats PlannerErrors for CLI output with the same Rust-inspired
// coloring the rest of this codebase's tooling uses, minus source-span
// rendering: pipeline errors point at a pipeline stage, not a line/column.
type Reporter struct{}

// NewReporter constructs a Reporter.
func NewReporter() *Reporter { return &Reporter{} }

// Format renders err as a multi-line, colorized report.
func (r *Reporter) Format(err *PlannerError) string {
	var b strings.Builder

	levelColor := r.levelColor(err.Level)
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	b.WriteString(fmt.Sprintf("%s[%s]: %s\n", levelColor(string(err.Level)), err.Code, bold(err.Message)))
	if err.Stage != "" {
		b.WriteString(fmt.Sprintf("  %s %s\n", dim("-->"), err.Stage))
	}
	for _, note := range err.Notes {
		b.WriteString(fmt.Sprintf("  %s %s\n", color.New(color.FgBlue).Sprint("note:"), note))
	}
	if err.HelpText != "" {
		b.WriteString(fmt.Sprintf("  %s %s\n", color.New(color.FgGreen).Sprint("help:"), err.HelpText))
	}
	return b.String()
}

func (r *Reporter) levelColor(l Level) func(...interface{}) string {
	switch l {
	case LevelError:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	case LevelWarn:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	case LevelNote:
		return color.New(color.FgBlue, color.Bold).SprintFunc()
	default:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	}
}
