package formula

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"

	"pddlcore/internal/domain"
)

// Printer renders a formula as a human-readable string for log messages
// and test failure output, resolving parameter slots against a names list
// and object ids against a type lattice.
type Printer struct {
	ParamNames []string
	Types      *domain.Types
	Preds      *domain.Predicates
}

// String renders f. Parameter slot names are normalized to snake_case so
// formulas read uniformly regardless of how the originating fixture
// capitalized identifiers (mirrors the teacher's use of strcase to
// normalize identifiers pulled in from mixed-case sources).
func (p *Printer) String(f Formula) string {
	var b strings.Builder
	p.write(&b, f)
	return b.String()
}

func (p *Printer) paramName(i int) string {
	if i >= 0 && i < len(p.ParamNames) {
		return strcase.ToSnake(p.ParamNames[i])
	}
	return fmt.Sprintf("?x%d", i)
}

func (p *Printer) argString(a domain.Arg) string {
	if a.IsParam() {
		return "?" + p.paramName(a.Param)
	}
	if p.Types != nil {
		return p.Types.ObjectName(a.Obj)
	}
	return fmt.Sprintf("obj%d", a.Obj)
}

func (p *Printer) write(b *strings.Builder, f Formula) {
	switch n := f.(type) {
	case *Bool:
		if n.Val {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case *AtomNode:
		if n.Neg {
			b.WriteString("not ")
		}
		name := fmt.Sprintf("p%d", n.Pred)
		if p.Preds != nil {
			name = p.Preds.Get(n.Pred).Name
		}
		b.WriteString(name)
		b.WriteString("(")
		for i, a := range n.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(p.argString(a))
		}
		b.WriteString(")")
	case *Junc:
		sep := " and "
		if n.Or {
			sep = " or "
		}
		b.WriteString("(")
		for i, k := range n.Kids {
			if i > 0 {
				b.WriteString(sep)
			}
			p.write(b, k)
		}
		b.WriteString(")")
	case *When:
		b.WriteString("when(")
		p.write(b, n.Cond)
		b.WriteString(" => ")
		p.write(b, n.Eff)
		b.WriteString(")")
	}
}
