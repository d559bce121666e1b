package pygen_test

import (
	"errors"
	"testing"

	"warlang/internal/ast"
	"warlang/internal/diag"
	"warlang/internal/lexer"
	"warlang/internal/parser"
	"warlang/internal/pygen"
	"warlang/internal/sema"
	"warlang/internal/source"
)

func generate(t *testing.T, input string) string {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.war", []byte(input))
	file := fs.Get(id)

	bag := diag.NewBag(64)
	reporter := diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	arenas := ast.NewBuilder(ast.Hints{})

	res := parser.ParseProgram(file, lx, arenas, parser.Options{Reporter: reporter})
	if !res.Ok {
		t.Fatalf("parse failed: %v", bag.Items())
	}
	info := sema.Check(res.Program, arenas, sema.Options{Reporter: reporter})
	if bag.HasErrors() {
		t.Fatalf("check failed: %v", bag.Items())
	}

	out, err := pygen.Generate(res.Program, arenas, info)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	return out
}

func TestDeclErasesType(t *testing.T) {
	if got := generate(t, "soldier x = 5;"); got != "x = 5\n" {
		t.Errorf("output = %q", got)
	}
	if got := generate(t, "intel msg;"); got != "msg = None\n" {
		t.Errorf("bare decl output = %q", got)
	}
}

func TestIfElse(t *testing.T) {
	got := generate(t, "soldier x = 5; shield (x > 3) { x = x + 1; } retreat { x = 0; }")
	want := `x = 5
if (x > 3):
    x = (x + 1)
else:
    x = 0
`
	if got != want {
		t.Errorf("output:\n%s\nwant:\n%s", got, want)
	}
}

func TestElifChain(t *testing.T) {
	got := generate(t, "soldier x = 1; shield (x > 2) {} retreat shield (x > 1) { shout(x); } retreat {}")
	want := `x = 1
if (x > 2):
    pass
elif (x > 1):
    print(x)
else:
    pass
`
	if got != want {
		t.Errorf("output:\n%s\nwant:\n%s", got, want)
	}
}

func TestWhile(t *testing.T) {
	got := generate(t, "soldier x = 0; march (x < 3) { x = x + 1; }")
	want := `x = 0
while (x < 3):
    x = (x + 1)
`
	if got != want {
		t.Errorf("output:\n%s\nwant:\n%s", got, want)
	}
}

func TestDeployLowersToWhile(t *testing.T) {
	got := generate(t, "deploy (soldier i = 0; i < 5; i++) { shout(i); }")
	want := `i = 0
while (i < 5):
    print(i)
    i += 1
`
	if got != want {
		t.Errorf("output:\n%s\nwant:\n%s", got, want)
	}
}

func TestDeployEmptyBodyStillUpdates(t *testing.T) {
	got := generate(t, "deploy (soldier i = 0; i < 5; i = i + 2) {}")
	want := `i = 0
while (i < 5):
    i = (i + 2)
`
	if got != want {
		t.Errorf("output:\n%s\nwant:\n%s", got, want)
	}
}

func TestEmptySuitesEmitPass(t *testing.T) {
	got := generate(t, "march (Enemy) {}")
	want := `while False:
    pass
`
	if got != want {
		t.Errorf("output:\n%s\nwant:\n%s", got, want)
	}
}

func TestLogicalOperatorsAndBools(t *testing.T) {
	got := generate(t, "flag ok = Ally && !(1 == 2) || Enemy;")
	want := "ok = ((True and (not (1 == 2))) or False)\n"
	if got != want {
		t.Errorf("output = %q", got)
	}
}

func TestFullParenthesization(t *testing.T) {
	got := generate(t, "soldier x = 1 + 2 * 3;")
	want := "x = (1 + (2 * 3))\n"
	if got != want {
		t.Errorf("output = %q", got)
	}
	// explicit groups reorder the tree; no doubled parens
	got = generate(t, "soldier y = (1 + 2) * 3;")
	want = "y = ((1 + 2) * 3)\n"
	if got != want {
		t.Errorf("output = %q", got)
	}
}

func TestShoutMultipleArgs(t *testing.T) {
	got := generate(t, `soldier x = 1; shout("value:", x, x + 1);`)
	want := `x = 1
print("value:", x, (x + 1))
`
	if got != want {
		t.Errorf("output:\n%s", got)
	}
}

func TestScoutCoercion(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"soldier n; scout(n);", "n = None\nn = int(input())\n"},
		{"force f; scout(f);", "f = None\nf = float(input())\n"},
		{"intel s; scout(s);", "s = None\ns = input()\n"},
		{"flag b; scout(b);", "b = None\nb = (input() == \"Ally\")\n"},
	}
	for _, tt := range tests {
		if got := generate(t, tt.input); got != tt.want {
			t.Errorf("%q: output = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNestedIndentation(t *testing.T) {
	got := generate(t, "soldier x = 0; march (x < 2) { shield (x == 0) { shout(x); } x = x + 1; }")
	want := `x = 0
while (x < 2):
    if (x == 0):
        print(x)
    x = (x + 1)
`
	if got != want {
		t.Errorf("output:\n%s\nwant:\n%s", got, want)
	}
}

func TestStringLiteralsPassThrough(t *testing.T) {
	got := generate(t, `intel s = "line\nbreak \"quoted\"";`)
	want := "s = \"line\\nbreak \\\"quoted\\\"\"\n"
	if got != want {
		t.Errorf("output = %q", got)
	}
}

func TestUnresolvedIdentIsInternalError(t *testing.T) {
	// hand-build an identifier the checker never saw
	arenas := ast.NewBuilder(ast.Hints{})
	name := arenas.Interner.Intern("ghost")
	exprID := arenas.Exprs.NewIdent(source.Span{File: 1, Start: 0, End: 5}, name)
	stmtID := arenas.Stmts.NewShout(source.Span{File: 1, Start: 0, End: 12}, []ast.ExprID{exprID})
	program := &ast.Program{File: 1, Stmts: []ast.StmtID{stmtID}}

	info := sema.Check(&ast.Program{File: 1}, arenas, sema.Options{Reporter: diag.NopReporter{}})
	_, err := pygen.Generate(program, arenas, info)
	if !errors.Is(err, pygen.ErrInternal) {
		t.Errorf("err = %v, want ErrInternal", err)
	}
}
