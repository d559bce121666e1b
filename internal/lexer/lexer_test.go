package lexer_test

import (
	"testing"

	"warlang/internal/diag"
	"warlang/internal/lexer"
	"warlang/internal/source"
	"warlang/internal/token"
)

// testReporter collects every diagnostic the lexer reports.
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

func (r *testReporter) ErrorCount() int {
	count := 0
	for _, d := range r.diagnostics {
		if d.Severity == diag.SevError {
			count++
		}
	}
	return count
}

func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.war", []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	return lx, reporter
}

func collectAllTokens(lx *lexer.Lexer) []token.Token {
	tokens := make([]token.Token, 0)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}

func expectTokens(t *testing.T, input string, expected []token.Kind) {
	t.Helper()
	lx, reporter := makeTestLexer(input)
	tokens := collectAllTokens(lx)

	if reporter.ErrorCount() != 0 {
		t.Fatalf("unexpected lexical errors for %q: %v", input, reporter.diagnostics)
	}
	if len(tokens) != len(expected) {
		t.Fatalf("token count for %q: got %d, want %d", input, len(tokens), len(expected))
	}
	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("token %d for %q: got %v, want %v", i, input, tok.Kind, expected[i])
		}
	}
}

func TestKeywordsAndIdents(t *testing.T) {
	expectTokens(t, "soldier x = 5;", []token.Kind{
		token.KwSoldier, token.Ident, token.Assign, token.IntLit, token.Semicolon, token.EOF,
	})
	expectTokens(t, "force intel flag shield retreat march deploy shout scout", []token.Kind{
		token.KwForce, token.KwIntel, token.KwFlag, token.KwShield, token.KwRetreat,
		token.KwMarch, token.KwDeploy, token.KwShout, token.KwScout, token.EOF,
	})
	expectTokens(t, "Ally Enemy ally _x x1", []token.Kind{
		token.BoolLit, token.BoolLit, token.Ident, token.Ident, token.Ident, token.EOF,
	})
}

func TestOperators(t *testing.T) {
	expectTokens(t, "+ - * / % = == != < <= > >= && || ! ++ ( ) { } ; ,", []token.Kind{
		token.Plus, token.Minus, token.Star, token.Slash, token.Percent, token.Assign,
		token.EqEq, token.BangEq, token.Lt, token.LtEq, token.Gt, token.GtEq,
		token.AndAnd, token.OrOr, token.Bang, token.PlusPlus,
		token.LParen, token.RParen, token.LBrace, token.RBrace,
		token.Semicolon, token.Comma, token.EOF,
	})
}

func TestGreedyOperatorMatching(t *testing.T) {
	// '<=' must not split into '<' '='
	expectTokens(t, "x<=y", []token.Kind{token.Ident, token.LtEq, token.Ident, token.EOF})
	expectTokens(t, "i++", []token.Kind{token.Ident, token.PlusPlus, token.EOF})
	// '+ +' with a space stays two tokens
	expectTokens(t, "+ +", []token.Kind{token.Plus, token.Plus, token.EOF})
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"0", token.IntLit},
		{"42", token.IntLit},
		{"3.14", token.FloatLit},
		{"1e10", token.FloatLit},
		{"2.5e-3", token.FloatLit},
		{"7E+2", token.FloatLit},
	}
	for _, tt := range tests {
		lx, reporter := makeTestLexer(tt.input)
		tok := lx.Next()
		if reporter.ErrorCount() != 0 {
			t.Errorf("%q: unexpected errors %v", tt.input, reporter.diagnostics)
		}
		if tok.Kind != tt.kind {
			t.Errorf("%q: kind = %v, want %v", tt.input, tok.Kind, tt.kind)
		}
		if tok.Text != tt.input {
			t.Errorf("%q: text = %q", tt.input, tok.Text)
		}
	}
}

func TestMalformedNumbers(t *testing.T) {
	tests := []struct {
		input string
		msg   string
	}{
		{"1.2.3", "more than one decimal point"},
		{"1e+", "exponent"},
		{"123abc", "identifier characters"},
		{"5.", "decimal point"},
	}
	for _, tt := range tests {
		lx, reporter := makeTestLexer(tt.input)
		tok := lx.Next()
		if tok.Kind != token.Invalid {
			t.Errorf("%q: kind = %v, want Invalid", tt.input, tok.Kind)
		}
		if reporter.ErrorCount() != 1 {
			t.Errorf("%q: error count = %d, want 1", tt.input, reporter.ErrorCount())
			continue
		}
		if reporter.diagnostics[0].Code != diag.LexBadNumber {
			t.Errorf("%q: code = %v, want LexBadNumber", tt.input, reporter.diagnostics[0].Code)
		}
	}
}

func TestStrings(t *testing.T) {
	lx, reporter := makeTestLexer(`"hello world"`)
	tok := lx.Next()
	if reporter.ErrorCount() != 0 || tok.Kind != token.StringLit {
		t.Fatalf("plain string: kind=%v errs=%v", tok.Kind, reporter.diagnostics)
	}
	if tok.Text != `"hello world"` {
		t.Errorf("text = %q", tok.Text)
	}

	lx, reporter = makeTestLexer(`"say \"hi\" and \\ back"`)
	tok = lx.Next()
	if reporter.ErrorCount() != 0 || tok.Kind != token.StringLit {
		t.Fatalf("escaped string: kind=%v errs=%v", tok.Kind, reporter.diagnostics)
	}
}

func TestUnterminatedString(t *testing.T) {
	for _, input := range []string{`"open`, "\"line\nbreak\""} {
		lx, reporter := makeTestLexer(input)
		tok := lx.Next()
		if tok.Kind != token.Invalid {
			t.Errorf("%q: kind = %v, want Invalid", input, tok.Kind)
		}
		if reporter.ErrorCount() == 0 {
			t.Errorf("%q: expected a lexical error", input)
		} else if reporter.diagnostics[0].Code != diag.LexUnterminatedString {
			t.Errorf("%q: code = %v", input, reporter.diagnostics[0].Code)
		}
	}
}

func TestBadEscape(t *testing.T) {
	lx, reporter := makeTestLexer(`"bad \q escape"`)
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Errorf("kind = %v, want Invalid", tok.Kind)
	}
	if reporter.ErrorCount() == 0 {
		t.Fatal("expected a lexical error")
	}
	if got := reporter.diagnostics[0].Code; got != diag.LexBadEscape {
		t.Errorf("code = %v, want LexBadEscape", got)
	}
}

func TestCommentsSkipped(t *testing.T) {
	expectTokens(t, "# whole line\nsoldier x; # trailing", []token.Kind{
		token.KwSoldier, token.Ident, token.Semicolon, token.EOF,
	})
}

func TestSlashSlashRejected(t *testing.T) {
	lx, reporter := makeTestLexer("// not a comment")
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Errorf("kind = %v, want Invalid", tok.Kind)
	}
	if reporter.ErrorCount() != 1 || reporter.diagnostics[0].Code != diag.LexUnknownChar {
		t.Errorf("diagnostics = %v", reporter.diagnostics)
	}
}

func TestUnknownCharPosition(t *testing.T) {
	// the diagnostic must point exactly at the offending character
	lx, reporter := makeTestLexer("soldier x = 5 @;")
	collectAllTokens(lx)
	if reporter.ErrorCount() != 1 {
		t.Fatalf("error count = %d, want 1", reporter.ErrorCount())
	}
	d := reporter.diagnostics[0]
	if d.Code != diag.LexUnknownChar {
		t.Errorf("code = %v", d.Code)
	}
	if d.Primary.Start != 14 || d.Primary.End != 15 {
		t.Errorf("span = %v, want 14-15", d.Primary)
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx, _ := makeTestLexer("march x")
	p := lx.Peek()
	n := lx.Next()
	if p.Kind != n.Kind || p.Span != n.Span {
		t.Errorf("Peek %v differs from Next %v", p, n)
	}
	if lx.Next().Kind != token.Ident {
		t.Error("stream advanced incorrectly after Peek")
	}
}

func TestEOFIsSticky(t *testing.T) {
	lx, _ := makeTestLexer("")
	for i := 0; i < 3; i++ {
		if tok := lx.Next(); tok.Kind != token.EOF {
			t.Fatalf("call %d: kind = %v, want EOF", i, tok.Kind)
		}
	}
}

func TestTokenSpans(t *testing.T) {
	lx, _ := makeTestLexer("march (x)")
	tok := lx.Next()
	if tok.Span.Start != 0 || tok.Span.End != 5 {
		t.Errorf("march span = %v", tok.Span)
	}
	tok = lx.Next() // '('
	if tok.Span.Start != 6 || tok.Span.End != 7 {
		t.Errorf("paren span = %v", tok.Span)
	}
}
