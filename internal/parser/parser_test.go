package parser_test

import (
	"testing"

	"warlang/internal/ast"
	"warlang/internal/diag"
	"warlang/internal/lexer"
	"warlang/internal/parser"
	"warlang/internal/source"
	"warlang/internal/testkit"
)

type parseResult struct {
	program *ast.Program
	arenas  *ast.Builder
	file    *source.File
	bag     *diag.Bag
	ok      bool
}

func parseString(t *testing.T, input string) parseResult {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.war", []byte(input))
	file := fs.Get(id)

	bag := diag.NewBag(64)
	reporter := diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	arenas := ast.NewBuilder(ast.Hints{})

	res := parser.ParseProgram(file, lx, arenas, parser.Options{Reporter: reporter})
	return parseResult{program: res.Program, arenas: arenas, file: file, bag: bag, ok: res.Ok}
}

func mustParse(t *testing.T, input string) parseResult {
	t.Helper()
	res := parseString(t, input)
	if !res.ok || res.bag.HasErrors() {
		t.Fatalf("parse failed for %q: %v", input, res.bag.Items())
	}
	return res
}

func TestParseDecl(t *testing.T) {
	res := mustParse(t, "soldier x = 5;")
	if len(res.program.Stmts) != 1 {
		t.Fatalf("stmt count = %d", len(res.program.Stmts))
	}
	decl, ok := res.arenas.Stmts.Decl(res.program.Stmts[0])
	if !ok {
		t.Fatal("expected a declaration")
	}
	if decl.Type != ast.TypeSoldier {
		t.Errorf("type = %v", decl.Type)
	}
	if res.arenas.MustLookup(decl.Name) != "x" {
		t.Errorf("name = %q", res.arenas.MustLookup(decl.Name))
	}
	lit, ok := res.arenas.Exprs.Literal(decl.Init)
	if !ok || lit.Kind != ast.LitInt {
		t.Error("initializer must be an int literal")
	}
}

func TestParseBareDecl(t *testing.T) {
	res := mustParse(t, "intel msg;")
	decl, _ := res.arenas.Stmts.Decl(res.program.Stmts[0])
	if decl.Init.IsValid() {
		t.Error("bare declaration must have no initializer")
	}
}

func TestParseAllDeclTypes(t *testing.T) {
	res := mustParse(t, "soldier a; force b; intel c; flag d;")
	want := []ast.DeclType{ast.TypeSoldier, ast.TypeForce, ast.TypeIntel, ast.TypeFlag}
	if len(res.program.Stmts) != 4 {
		t.Fatalf("stmt count = %d", len(res.program.Stmts))
	}
	for i, id := range res.program.Stmts {
		decl, ok := res.arenas.Stmts.Decl(id)
		if !ok || decl.Type != want[i] {
			t.Errorf("stmt %d: wrong declaration type", i)
		}
	}
}

func TestPrecedence(t *testing.T) {
	// 1 + 2 * 3 must parse as 1 + (2 * 3)
	res := mustParse(t, "soldier x = 1 + 2 * 3;")
	decl, _ := res.arenas.Stmts.Decl(res.program.Stmts[0])
	top, ok := res.arenas.Exprs.Binary(decl.Init)
	if !ok || top.Op != ast.BinAdd {
		t.Fatalf("top operator should be +")
	}
	right, ok := res.arenas.Exprs.Binary(top.Right)
	if !ok || right.Op != ast.BinMul {
		t.Error("right operand should be the multiplication")
	}
}

func TestLeftAssociativity(t *testing.T) {
	// 10 - 3 - 2 must parse as (10 - 3) - 2
	res := mustParse(t, "soldier x = 10 - 3 - 2;")
	decl, _ := res.arenas.Stmts.Decl(res.program.Stmts[0])
	top, _ := res.arenas.Exprs.Binary(decl.Init)
	if top.Op != ast.BinSub {
		t.Fatal("top operator should be -")
	}
	left, ok := res.arenas.Exprs.Binary(top.Left)
	if !ok || left.Op != ast.BinSub {
		t.Error("left operand should be the inner subtraction")
	}
}

func TestLogicalPrecedence(t *testing.T) {
	// a || b && c must parse as a || (b && c)
	res := mustParse(t, "flag f = a || b && c;")
	decl, _ := res.arenas.Stmts.Decl(res.program.Stmts[0])
	top, _ := res.arenas.Exprs.Binary(decl.Init)
	if top.Op != ast.BinOr {
		t.Fatal("top operator should be ||")
	}
	right, ok := res.arenas.Exprs.Binary(top.Right)
	if !ok || right.Op != ast.BinAnd {
		t.Error("right operand should be the &&")
	}
}

func TestGroupOverridesPrecedence(t *testing.T) {
	res := mustParse(t, "soldier x = (1 + 2) * 3;")
	decl, _ := res.arenas.Stmts.Decl(res.program.Stmts[0])
	top, _ := res.arenas.Exprs.Binary(decl.Init)
	if top.Op != ast.BinMul {
		t.Fatal("top operator should be *")
	}
	if _, ok := res.arenas.Exprs.Group(top.Left); !ok {
		t.Error("left operand should be a group")
	}
}

func TestUnaryChain(t *testing.T) {
	res := mustParse(t, "flag f = !!x;")
	decl, _ := res.arenas.Stmts.Decl(res.program.Stmts[0])
	outer, ok := res.arenas.Exprs.Unary(decl.Init)
	if !ok || outer.Op != ast.UnaryNot {
		t.Fatal("outer unary missing")
	}
	inner, ok := res.arenas.Exprs.Unary(outer.Operand)
	if !ok || inner.Op != ast.UnaryNot {
		t.Error("inner unary missing")
	}
}

func TestParseIfElse(t *testing.T) {
	res := mustParse(t, "shield (x > 3) { x = x + 1; } retreat { x = 0; }")
	ifData, ok := res.arenas.Stmts.If(res.program.Stmts[0])
	if !ok {
		t.Fatal("expected a shield statement")
	}
	if !ifData.Else.IsValid() {
		t.Error("retreat branch missing")
	}
	cond, ok := res.arenas.Exprs.Binary(ifData.Cond)
	if !ok || cond.Op != ast.BinGt {
		t.Error("condition should be the > comparison")
	}
}

func TestElseIfChain(t *testing.T) {
	res := mustParse(t, "shield (a) {} retreat shield (b) {} retreat {}")
	outer, ok := res.arenas.Stmts.If(res.program.Stmts[0])
	if !ok {
		t.Fatal("expected a shield statement")
	}
	inner, ok := res.arenas.Stmts.If(outer.Else)
	if !ok {
		t.Fatal("retreat shield must nest another shield")
	}
	if !inner.Else.IsValid() {
		t.Error("final retreat must bind to the nearest shield")
	}
}

func TestParseWhile(t *testing.T) {
	res := mustParse(t, "march (x < 10) { x = x + 1; }")
	data, ok := res.arenas.Stmts.While(res.program.Stmts[0])
	if !ok {
		t.Fatal("expected a march statement")
	}
	body, _ := res.arenas.Stmts.Block(data.Body)
	if len(body.Stmts) != 1 {
		t.Errorf("body stmt count = %d", len(body.Stmts))
	}
}

func TestParseFor(t *testing.T) {
	res := mustParse(t, "deploy (soldier i = 0; i < 5; i++) { shout(i); }")
	data, ok := res.arenas.Stmts.For(res.program.Stmts[0])
	if !ok {
		t.Fatal("expected a deploy statement")
	}
	if _, ok := res.arenas.Stmts.Decl(data.Init); !ok {
		t.Error("init should be a declaration")
	}
	if _, ok := res.arenas.Stmts.Incr(data.Update); !ok {
		t.Error("update should be an increment")
	}
}

func TestParseForAssignUpdate(t *testing.T) {
	res := mustParse(t, "deploy (i = 0; i < 5; i = i + 2) {}")
	data, _ := res.arenas.Stmts.For(res.program.Stmts[0])
	if _, ok := res.arenas.Stmts.Assign(data.Init); !ok {
		t.Error("init should be an assignment")
	}
	if _, ok := res.arenas.Stmts.Assign(data.Update); !ok {
		t.Error("update should be an assignment")
	}
}

func TestParseShout(t *testing.T) {
	res := mustParse(t, `shout("total:", x + 1, Ally);`)
	data, ok := res.arenas.Stmts.Shout(res.program.Stmts[0])
	if !ok {
		t.Fatal("expected a shout statement")
	}
	if len(data.Args) != 3 {
		t.Errorf("arg count = %d", len(data.Args))
	}
}

func TestParseScout(t *testing.T) {
	res := mustParse(t, "scout(x);")
	data, ok := res.arenas.Stmts.Scout(res.program.Stmts[0])
	if !ok {
		t.Fatal("expected a scout statement")
	}
	if res.arenas.MustLookup(data.Name) != "x" {
		t.Error("scout target did not round-trip")
	}
}

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		input string
		code  diag.Code
	}{
		{"soldier x = 5", diag.SynExpectSemicolon},
		{"soldier = 5;", diag.SynExpectIdentifier},
		{"x + 1;", diag.SynExpectAssign},
		{"soldier x = ;", diag.SynExpectExpression},
		{"soldier x = (1 + 2;", diag.SynUnclosedParen},
		{"march (x) { soldier y = 1;", diag.SynUnclosedBrace},
		{"shield (x) soldier y;", diag.SynExpectBlock},
		{"retreat {}", diag.SynExpectStatement},
		{"deploy (shout(1); x; x++) {}", diag.SynExpectStatement},
	}
	for _, tt := range tests {
		res := parseString(t, tt.input)
		if res.ok {
			t.Errorf("%q: parse succeeded, want failure", tt.input)
			continue
		}
		found := false
		for _, d := range res.bag.Items() {
			if d.Code == tt.code {
				found = true
			}
		}
		if !found {
			t.Errorf("%q: missing code %v in %v", tt.input, tt.code, res.bag.Items())
		}
	}
}

func TestFailFastStopsAtFirstError(t *testing.T) {
	// both statements are broken; only the first may be reported
	res := parseString(t, "soldier x = ;\nforce = 1;")
	if res.ok {
		t.Fatal("parse should fail")
	}
	errs := 0
	for _, d := range res.bag.Items() {
		if d.Severity == diag.SevError {
			errs++
		}
	}
	if errs != 1 {
		t.Errorf("error count = %d, want 1 (fail-fast)", errs)
	}
}

func TestEOFDiagnosticSpanPointsPastLastToken(t *testing.T) {
	res := parseString(t, "soldier x = 5")
	if res.ok {
		t.Fatal("parse should fail")
	}
	d := res.bag.Items()[0]
	// "soldier x = 5" is 13 bytes; the missing ';' is reported just past it
	if d.Primary.Start != 13 || d.Primary.End != 13 {
		t.Errorf("span = %v, want empty span at offset 13", d.Primary)
	}
}

func TestProgramSpanCoversStatements(t *testing.T) {
	res := mustParse(t, "soldier x = 1;\nsoldier y = 2;")
	if res.program.Span.Start != 0 {
		t.Errorf("program span start = %d", res.program.Span.Start)
	}
	if res.program.Span.End != 29 {
		t.Errorf("program span end = %d", res.program.Span.End)
	}
}

func TestSpanInvariants(t *testing.T) {
	programs := []string{
		"soldier x = 5;",
		"soldier x = 1; shout(x + 2 * 3);",
		"shield (Ally) { shout(1); } retreat { shout(2); }",
		"deploy (soldier i = 0; i < 10; i++) { shout(i); }",
		"intel s; scout(s); march (s == \"go\") { s = \"stop\"; }",
	}
	for _, src := range programs {
		res := mustParse(t, src)
		if err := testkit.CheckSpanInvariants(res.arenas, res.program, res.file); err != nil {
			t.Errorf("%q: %v", src, err)
		}
	}
}
