// Package fixture parses the flat ground-task fixture DSL used by tests
// and by cmd/pddl-prune's --fixture flag, and converts a parsed Document
// into an internal/ground.Task.
//
// Grounded on the teacher's participle-based grammar package (parser
// construction via participle.Build[T], participle.Lexer,
// participle.Elide), repurposed onto this repo's own flat ground-task
// syntax rather than the teacher's Kanso source language.
package fixture

import (
	"sync"

	"github.com/alecthomas/participle/v2"

	"pddlcore/internal/errors"
	"pddlcore/internal/ground"
)

var (
	parserOnce sync.Once
	parserInst *participle.Parser[Document]
	parserErr  error
)

func parser() (*participle.Parser[Document], error) {
	parserOnce.Do(func() {
		parserInst, parserErr = participle.Build[Document](
			participle.Lexer(fixtureLexer),
			participle.Elide("Whitespace", "Comment"),
			participle.UseLookahead(2),
		)
	})
	return parserInst, parserErr
}

// Parse parses src (named filename for error messages) into a Document.
func Parse(filename, src string) (*Document, error) {
	p, err := parser()
	if err != nil {
		return nil, errors.FixtureParseError(err)
	}
	doc, err := p.ParseString(filename, src)
	if err != nil {
		return nil, errors.FixtureParseError(err)
	}
	return doc, nil
}

// ToTask converts doc into a ground.Task: every name in doc.Facts becomes
// a fact id in declaration order, and every op/init/goal reference must
// name a previously declared fact.
func ToTask(doc *Document) (*ground.Task, error) {
	task := ground.NewTask()
	factID := make(map[string]int, len(doc.Facts))
	for _, name := range doc.Facts {
		factID[name] = task.AddFact(ground.Fact{Name: name, NegOf: -1})
	}

	resolve := func(names []string) (ground.IntSet, error) {
		var out ground.IntSet
		for _, name := range names {
			id, ok := factID[name]
			if !ok {
				return nil, errors.FixtureUnknownPredicate(name)
			}
			out.Add(id)
		}
		return out, nil
	}

	for _, opDecl := range doc.Ops {
		pre, err := resolve(opDecl.Pre)
		if err != nil {
			return nil, err
		}
		add, err := resolve(opDecl.Add)
		if err != nil {
			return nil, err
		}
		del, err := resolve(opDecl.Del)
		if err != nil {
			return nil, err
		}
		cost := 1
		if opDecl.Cost != nil {
			cost = *opDecl.Cost
		}
		task.AddOp(&ground.Op{Name: opDecl.Name, Cost: cost, Pre: pre, Add: add, Del: del})
	}

	init, err := resolve(doc.Init)
	if err != nil {
		return nil, err
	}
	goal, err := resolve(doc.Goal)
	if err != nil {
		return nil, err
	}
	task.Init = init
	task.Goal = goal

	return task, nil
}

// ParseTask parses src directly into a ground.Task, the common case for
// tests and the CLI.
func ParseTask(filename, src string) (*ground.Task, error) {
	doc, err := Parse(filename, src)
	if err != nil {
		return nil, err
	}
	return ToTask(doc)
}
