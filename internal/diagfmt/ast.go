package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"warlang/internal/ast"
)

// DumpProgram prints the tree in an indented, line-per-node form for
// the parse subcommand and for debugging parser changes.
func DumpProgram(w io.Writer, program *ast.Program, b *ast.Builder) {
	d := dumper{w: w, b: b}
	fmt.Fprintf(w, "program (%d statements)\n", len(program.Stmts))
	for _, id := range program.Stmts {
		d.stmt(id, 1)
	}
}

type dumper struct {
	w io.Writer
	b *ast.Builder
}

func (d *dumper) printf(depth int, format string, args ...any) {
	fmt.Fprintf(d.w, "%s%s\n", strings.Repeat("  ", depth), fmt.Sprintf(format, args...))
}

func (d *dumper) stmt(id ast.StmtID, depth int) {
	stmt := d.b.Stmts.Get(id)
	if stmt == nil {
		d.printf(depth, "<missing stmt %d>", id)
		return
	}
	switch stmt.Kind {
	case ast.StmtDecl:
		data, _ := d.b.Stmts.Decl(id)
		d.printf(depth, "decl %s %s @%s", data.Type, d.b.MustLookup(data.Name), stmt.Span)
		if data.Init.IsValid() {
			d.expr(data.Init, depth+1)
		}
	case ast.StmtAssign:
		data, _ := d.b.Stmts.Assign(id)
		d.printf(depth, "assign %s @%s", d.b.MustLookup(data.Name), stmt.Span)
		d.expr(data.Value, depth+1)
	case ast.StmtIncr:
		data, _ := d.b.Stmts.Incr(id)
		d.printf(depth, "incr %s @%s", d.b.MustLookup(data.Name), stmt.Span)
	case ast.StmtIf:
		data, _ := d.b.Stmts.If(id)
		d.printf(depth, "shield @%s", stmt.Span)
		d.expr(data.Cond, depth+1)
		d.stmt(data.Then, depth+1)
		if data.Else.IsValid() {
			d.printf(depth, "retreat")
			d.stmt(data.Else, depth+1)
		}
	case ast.StmtWhile:
		data, _ := d.b.Stmts.While(id)
		d.printf(depth, "march @%s", stmt.Span)
		d.expr(data.Cond, depth+1)
		d.stmt(data.Body, depth+1)
	case ast.StmtFor:
		data, _ := d.b.Stmts.For(id)
		d.printf(depth, "deploy @%s", stmt.Span)
		d.stmt(data.Init, depth+1)
		d.expr(data.Cond, depth+1)
		d.stmt(data.Update, depth+1)
		d.stmt(data.Body, depth+1)
	case ast.StmtBlock:
		data, _ := d.b.Stmts.Block(id)
		d.printf(depth, "block (%d statements)", len(data.Stmts))
		for _, s := range data.Stmts {
			d.stmt(s, depth+1)
		}
	case ast.StmtShout:
		data, _ := d.b.Stmts.Shout(id)
		d.printf(depth, "shout (%d args)", len(data.Args))
		for _, a := range data.Args {
			d.expr(a, depth+1)
		}
	case ast.StmtScout:
		data, _ := d.b.Stmts.Scout(id)
		d.printf(depth, "scout %s @%s", d.b.MustLookup(data.Name), stmt.Span)
	default:
		d.printf(depth, "<unknown stmt kind %d>", stmt.Kind)
	}
}

func (d *dumper) expr(id ast.ExprID, depth int) {
	expr := d.b.Exprs.Get(id)
	if expr == nil {
		d.printf(depth, "<missing expr %d>", id)
		return
	}
	switch expr.Kind {
	case ast.ExprIdent:
		data, _ := d.b.Exprs.Ident(id)
		d.printf(depth, "ident %s", d.b.MustLookup(data.Name))
	case ast.ExprLit:
		data, _ := d.b.Exprs.Literal(id)
		d.printf(depth, "lit %s", d.b.MustLookup(data.Value))
	case ast.ExprUnary:
		data, _ := d.b.Exprs.Unary(id)
		d.printf(depth, "unary %s", data.Op)
		d.expr(data.Operand, depth+1)
	case ast.ExprBinary:
		data, _ := d.b.Exprs.Binary(id)
		d.printf(depth, "binary %s", data.Op)
		d.expr(data.Left, depth+1)
		d.expr(data.Right, depth+1)
	case ast.ExprGroup:
		data, _ := d.b.Exprs.Group(id)
		d.printf(depth, "group")
		d.expr(data.Inner, depth+1)
	default:
		d.printf(depth, "<unknown expr kind %d>", expr.Kind)
	}
}
