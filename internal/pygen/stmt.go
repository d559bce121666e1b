package pygen

import (
	"strings"

	"warlang/internal/ast"
	"warlang/internal/types"
)

func (g *generator) emitStmt(id ast.StmtID) error {
	stmt := g.builder.Stmts.Get(id)
	if stmt == nil {
		return g.internalf("missing statement node %d", id)
	}
	switch stmt.Kind {
	case ast.StmtDecl:
		return g.emitDecl(id)
	case ast.StmtAssign:
		return g.emitAssign(id)
	case ast.StmtIncr:
		return g.emitIncr(id)
	case ast.StmtIf:
		return g.emitIf(id, "if")
	case ast.StmtWhile:
		return g.emitWhile(id)
	case ast.StmtFor:
		return g.emitFor(id)
	case ast.StmtBlock:
		return g.emitBareBlock(id)
	case ast.StmtShout:
		return g.emitShout(id)
	case ast.StmtScout:
		return g.emitScout(id)
	default:
		return g.internalf("unknown statement kind %d", stmt.Kind)
	}
}

// emitDecl erases the type: `soldier x = 5;` becomes `x = 5`. A bare
// declaration binds None so the name exists.
func (g *generator) emitDecl(id ast.StmtID) error {
	decl, ok := g.builder.Stmts.Decl(id)
	if !ok {
		return g.internalf("statement %d is not a declaration", id)
	}
	name := g.builder.MustLookup(decl.Name)

	if !decl.Init.IsValid() {
		g.line(name + " = None")
		return nil
	}
	value, err := g.emitExpr(decl.Init)
	if err != nil {
		return err
	}
	g.line(name + " = " + value)
	return nil
}

func (g *generator) emitAssign(id ast.StmtID) error {
	assign, ok := g.builder.Stmts.Assign(id)
	if !ok {
		return g.internalf("statement %d is not an assignment", id)
	}
	value, err := g.emitExpr(assign.Value)
	if err != nil {
		return err
	}
	g.line(g.builder.MustLookup(assign.Name) + " = " + value)
	return nil
}

func (g *generator) emitIncr(id ast.StmtID) error {
	incr, ok := g.builder.Stmts.Incr(id)
	if !ok {
		return g.internalf("statement %d is not an increment", id)
	}
	g.line(g.builder.MustLookup(incr.Name) + " += 1")
	return nil
}

// emitIf renders shield/retreat as if/elif/else. A retreat carrying
// another shield continues the chain with elif.
func (g *generator) emitIf(id ast.StmtID, keyword string) error {
	data, ok := g.builder.Stmts.If(id)
	if !ok {
		return g.internalf("statement %d is not a conditional", id)
	}
	cond, err := g.emitExpr(data.Cond)
	if err != nil {
		return err
	}
	g.line(keyword + " " + cond + ":")
	if err := g.emitSuite(data.Then); err != nil {
		return err
	}

	if !data.Else.IsValid() {
		return nil
	}
	if g.builder.Stmts.Get(data.Else).Kind == ast.StmtIf {
		return g.emitIf(data.Else, "elif")
	}
	g.line("else:")
	return g.emitSuite(data.Else)
}

func (g *generator) emitWhile(id ast.StmtID) error {
	data, ok := g.builder.Stmts.While(id)
	if !ok {
		return g.internalf("statement %d is not a loop", id)
	}
	cond, err := g.emitExpr(data.Cond)
	if err != nil {
		return err
	}
	g.line("while " + cond + ":")
	return g.emitSuite(data.Body)
}

// emitFor lowers a deploy loop to its while form: the initializer runs
// once, the update runs at the end of every iteration.
func (g *generator) emitFor(id ast.StmtID) error {
	data, ok := g.builder.Stmts.For(id)
	if !ok {
		return g.internalf("statement %d is not a counted loop", id)
	}
	if err := g.emitStmt(data.Init); err != nil {
		return err
	}
	cond, err := g.emitExpr(data.Cond)
	if err != nil {
		return err
	}
	g.line("while " + cond + ":")

	g.indent++
	body, ok := g.builder.Stmts.Block(data.Body)
	if !ok {
		g.indent--
		return g.internalf("deploy body %d is not a block", data.Body)
	}
	for _, s := range body.Stmts {
		if err := g.emitStmt(s); err != nil {
			g.indent--
			return err
		}
	}
	if err := g.emitStmt(data.Update); err != nil {
		g.indent--
		return err
	}
	g.indent--
	return nil
}

// emitSuite renders a block as an indented Python suite, emitting
// `pass` when the block is empty so the output stays valid.
func (g *generator) emitSuite(id ast.StmtID) error {
	block, ok := g.builder.Stmts.Block(id)
	if !ok {
		return g.internalf("statement %d is not a block", id)
	}
	g.indent++
	defer func() { g.indent-- }()

	if len(block.Stmts) == 0 {
		g.line("pass")
		return nil
	}
	for _, s := range block.Stmts {
		if err := g.emitStmt(s); err != nil {
			return err
		}
	}
	return nil
}

// emitBareBlock handles a block used as a statement. Python has no
// block statement, so the contents are emitted inline; an empty block
// still produces a `pass` to keep surrounding suites valid.
func (g *generator) emitBareBlock(id ast.StmtID) error {
	block, ok := g.builder.Stmts.Block(id)
	if !ok {
		return g.internalf("statement %d is not a block", id)
	}
	if len(block.Stmts) == 0 {
		g.line("pass")
		return nil
	}
	for _, s := range block.Stmts {
		if err := g.emitStmt(s); err != nil {
			return err
		}
	}
	return nil
}

func (g *generator) emitShout(id ast.StmtID) error {
	data, ok := g.builder.Stmts.Shout(id)
	if !ok {
		return g.internalf("statement %d is not a shout", id)
	}
	args := make([]string, 0, len(data.Args))
	for _, arg := range data.Args {
		s, err := g.emitExpr(arg)
		if err != nil {
			return err
		}
		args = append(args, s)
	}
	g.line("print(" + strings.Join(args, ", ") + ")")
	return nil
}

// emitScout reads a line of input coerced to the target's checked
// type; a flag compares the raw text against "Ally".
func (g *generator) emitScout(id ast.StmtID) error {
	data, ok := g.builder.Stmts.Scout(id)
	if !ok {
		return g.internalf("statement %d is not a scout", id)
	}
	symID, ok := g.info.TargetSymbols[id]
	if !ok {
		return g.internalf("scout statement %d has no resolved target", id)
	}
	name := g.builder.MustLookup(data.Name)

	switch g.info.Table.Symbol(symID).Type {
	case types.Int:
		g.line(name + " = int(input())")
	case types.Float:
		g.line(name + " = float(input())")
	case types.String:
		g.line(name + " = input()")
	case types.Bool:
		g.line(name + ` = (input() == "Ally")`)
	default:
		return g.internalf("scout target '%s' has no usable type", name)
	}
	return nil
}
