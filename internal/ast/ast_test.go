package ast_test

import (
	"testing"

	"warlang/internal/ast"
	"warlang/internal/source"
)

func span(start, end uint32) source.Span {
	return source.Span{File: 1, Start: start, End: end}
}

func TestArenaOneBasedIDs(t *testing.T) {
	a := ast.NewArena[int](4)
	if got := a.Get(0); got != nil {
		t.Error("Get(0) must be nil")
	}
	first := a.Allocate(10)
	second := a.Allocate(20)
	if first != 1 || second != 2 {
		t.Errorf("ids = %d, %d", first, second)
	}
	if *a.Get(first) != 10 || *a.Get(second) != 20 {
		t.Error("arena returned wrong values")
	}
	if a.Len() != 2 {
		t.Errorf("Len = %d", a.Len())
	}
}

func TestInvalidIDs(t *testing.T) {
	if ast.NoExprID.IsValid() || ast.NoStmtID.IsValid() {
		t.Error("zero IDs must be invalid")
	}
	if !ast.ExprID(1).IsValid() {
		t.Error("ExprID(1) must be valid")
	}
}

func TestExprRoundTrip(t *testing.T) {
	b := ast.NewBuilder(ast.Hints{})

	name := b.Interner.Intern("x")
	id := b.Exprs.NewIdent(span(0, 1), name)
	five := b.Exprs.NewLiteral(span(4, 5), ast.LitInt, b.Interner.Intern("5"))
	bin := b.Exprs.NewBinary(span(0, 5), ast.BinAdd, id, five)

	data, ok := b.Exprs.Binary(bin)
	if !ok {
		t.Fatal("Binary accessor failed")
	}
	if data.Op != ast.BinAdd || data.Left != id || data.Right != five {
		t.Errorf("binary data = %+v", data)
	}

	// accessors refuse mismatched kinds
	if _, ok := b.Exprs.Ident(bin); ok {
		t.Error("Ident accessor accepted a binary expression")
	}
	identData, ok := b.Exprs.Ident(id)
	if !ok || b.MustLookup(identData.Name) != "x" {
		t.Error("ident name did not round-trip")
	}
}

func TestStmtRoundTrip(t *testing.T) {
	b := ast.NewBuilder(ast.Hints{})

	name := b.Interner.Intern("i")
	init := b.Exprs.NewLiteral(span(12, 13), ast.LitInt, b.Interner.Intern("0"))
	decl := b.Stmts.NewDecl(span(0, 14), ast.TypeSoldier, name, span(8, 9), init)

	data, ok := b.Stmts.Decl(decl)
	if !ok {
		t.Fatal("Decl accessor failed")
	}
	if data.Type != ast.TypeSoldier || data.Init != init {
		t.Errorf("decl data = %+v", data)
	}

	block := b.Stmts.NewBlock(span(0, 20), []ast.StmtID{decl})
	blockData, ok := b.Stmts.Block(block)
	if !ok || len(blockData.Stmts) != 1 || blockData.Stmts[0] != decl {
		t.Error("block contents did not round-trip")
	}

	if _, ok := b.Stmts.While(decl); ok {
		t.Error("While accessor accepted a declaration")
	}
}

func TestBareDeclHasNoInit(t *testing.T) {
	b := ast.NewBuilder(ast.Hints{})
	decl := b.Stmts.NewDecl(span(0, 10), ast.TypeIntel, b.Interner.Intern("msg"), span(6, 9), ast.NoExprID)
	data, _ := b.Stmts.Decl(decl)
	if data.Init.IsValid() {
		t.Error("bare declaration must carry NoExprID")
	}
}

func TestOperatorSpelling(t *testing.T) {
	if ast.BinLtEq.String() != "<=" || ast.BinAnd.String() != "&&" {
		t.Error("binary operator spelling wrong")
	}
	if ast.UnaryNot.String() != "!" {
		t.Error("unary operator spelling wrong")
	}
	if ast.TypeForce.String() != "force" {
		t.Error("decl type spelling wrong")
	}
}
