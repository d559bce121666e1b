package lexer

import (
	"testing"

	"warlang/internal/source"
)

func makeCursor(t *testing.T, input string) Cursor {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("cursor.war", []byte(input))
	return NewCursor(fs.Get(id))
}

func TestCursorBumpAndEOF(t *testing.T) {
	c := makeCursor(t, "ab")
	if c.EOF() {
		t.Fatal("EOF at start of non-empty file")
	}
	if b := c.Bump(); b != 'a' {
		t.Errorf("Bump = %q", b)
	}
	if b := c.Bump(); b != 'b' {
		t.Errorf("Bump = %q", b)
	}
	if !c.EOF() {
		t.Error("expected EOF after consuming everything")
	}
	if b := c.Bump(); b != 0 {
		t.Errorf("Bump at EOF = %q, want 0", b)
	}
}

func TestCursorPeek2(t *testing.T) {
	c := makeCursor(t, "<=")
	b0, b1, ok := c.Peek2()
	if !ok || b0 != '<' || b1 != '=' {
		t.Errorf("Peek2 = %q %q %v", b0, b1, ok)
	}
	if c.Off != 0 {
		t.Error("Peek2 consumed input")
	}

	c = makeCursor(t, "<")
	if _, _, ok := c.Peek2(); ok {
		t.Error("Peek2 reported ok with a single byte left")
	}
}

func TestCursorEat(t *testing.T) {
	c := makeCursor(t, "=+")
	if !c.Eat('=') {
		t.Error("Eat('=') failed")
	}
	if c.Eat('=') {
		t.Error("Eat consumed a non-matching byte")
	}
	if c.Off != 1 {
		t.Errorf("Off = %d, want 1", c.Off)
	}
}

func TestCursorMarkSpanReset(t *testing.T) {
	c := makeCursor(t, "march")
	m := c.Mark()
	for i := 0; i < 5; i++ {
		c.Bump()
	}
	sp := c.SpanFrom(m)
	if sp.Start != 0 || sp.End != 5 {
		t.Errorf("span = %v", sp)
	}
	c.Reset(m)
	if c.Off != 0 {
		t.Errorf("Off after Reset = %d", c.Off)
	}
}
