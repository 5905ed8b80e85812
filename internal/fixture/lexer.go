package fixture

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// fixtureLexer tokenizes the fixture DSL: a flat, ground STRIPS task
// description used by this package's tests and by cmd/pddl-prune's
// --fixture flag.
//
// Grounded on the teacher's grammar/lexer.go lexer.MustStateful pattern,
// trimmed to this DSL's smaller token set (no operator-precedence tokens,
// no doc-comment distinct from a plain comment).
var fixtureLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Comment", `//[^\n]*`, nil},
		{"String", `"[^"]*"`, nil},
		{"Integer", `[0-9]+`, nil},
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_-]*`, nil},
		{"Punctuation", `[{}:;,()]`, nil},
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
