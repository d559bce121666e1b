// Package pygen emits Python source for a checked program. It is a
// single traversal over the annotated tree; every inconsistency it can
// detect (missing payloads, unresolved symbols) is a Go error wrapping
// ErrInternal, never a user diagnostic, because the checker has already
// accepted the unit.
package pygen

import (
	"errors"
	"fmt"
	"strings"

	"warlang/internal/ast"
	"warlang/internal/sema"
)

// ErrInternal marks an internal consistency failure between the checker
// and the generator.
var ErrInternal = errors.New("internal code generation error")

const indentUnit = "    "

type generator struct {
	builder *ast.Builder
	info    *sema.Info
	out     strings.Builder
	indent  int
}

// Generate renders the program as Python. The output is always
// syntactically valid Python: empty suites produce `pass`.
func Generate(program *ast.Program, builder *ast.Builder, info *sema.Info) (string, error) {
	g := generator{builder: builder, info: info}
	for _, id := range program.Stmts {
		if err := g.emitStmt(id); err != nil {
			return "", err
		}
	}
	return g.out.String(), nil
}

func (g *generator) line(s string) {
	for i := 0; i < g.indent; i++ {
		g.out.WriteString(indentUnit)
	}
	g.out.WriteString(s)
	g.out.WriteByte('\n')
}

func (g *generator) internalf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInternal, fmt.Sprintf(format, args...))
}
