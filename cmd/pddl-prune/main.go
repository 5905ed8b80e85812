// Command pddl-prune reads a ground-task fixture and an optional pipeline
// manifest, runs the named pruning stages over the task, and reports what
// each stage removed.
//
// Grounded on the teacher's main.go CLI shape (minimal flag-package
// argument handling, fatih/color for error/status output) repurposed from
// "parse and type-check a Kanso source file" onto "load a fixture, run the
// pruning pipeline, report the result".
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"pddlcore/internal/fixture"
	"pddlcore/internal/pipeline"
)

var defaultStages = []string{"irrelevance", "unreachable-in-dtgs", "fam-group-dead-end", "deduplicate-ops"}

func main() {
	fixturePath := flag.String("fixture", "", "path to a fixture file (required)")
	manifestPath := flag.String("pipeline", "", "path to a YAML pipeline manifest (default: the built-in stage order)")
	flag.Parse()

	if *fixturePath == "" {
		color.Red("Usage: pddl-prune --fixture <file> [--pipeline <manifest.yaml>]")
		os.Exit(1)
	}

	src, err := os.ReadFile(*fixturePath)
	if err != nil {
		color.Red("Failed to read fixture: %s", err)
		os.Exit(1)
	}

	task, err := fixture.ParseTask(*fixturePath, string(src))
	if err != nil {
		color.Red("Failed to parse fixture: %s", err)
		os.Exit(1)
	}

	stages := defaultStages
	if *manifestPath != "" {
		manifestSrc, err := os.ReadFile(*manifestPath)
		if err != nil {
			color.Red("Failed to read pipeline manifest: %s", err)
			os.Exit(1)
		}
		manifest, err := fixture.ParseManifest(manifestSrc)
		if err != nil {
			color.Red("Failed to parse pipeline manifest: %s", err)
			os.Exit(1)
		}
		stages = manifest.Stages
	}

	p, err := pipeline.New(stages)
	if err != nil {
		color.Red("Failed to build pipeline: %s", err)
		os.Exit(1)
	}

	before := len(task.Fact)
	beforeOps := len(task.Op)
	report := p.Execute(task, nil)

	for _, s := range report.Stages {
		if s.Skipped {
			color.Yellow("  %-22s skipped: %s", s.Stage, s.SkipReason)
			continue
		}
		fmt.Printf("  %-22s -%d facts -%d ops\n", s.Stage, s.FactsRemoved, s.OpsRemoved)
	}

	if report.GoalIsUnreachable {
		color.Red("goal is unreachable after pruning")
		os.Exit(2)
	}

	color.Green("done: %d -> %d facts, %d -> %d operators", before, len(task.Fact), beforeOps, len(task.Op))
}
