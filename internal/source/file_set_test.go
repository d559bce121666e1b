package source

import (
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("test.war", []byte("soldier x = 5;"), 0)
	if id1 != 0 {
		t.Errorf("expected first FileID to be 0, got %d", id1)
	}

	latestID, exists := fs.GetLatest("test.war")
	if !exists {
		t.Error("expected file to exist after Add")
	}
	if latestID != id1 {
		t.Errorf("expected latest ID to be %d, got %d", id1, latestID)
	}

	// same path again: new ID, index points at the newest version
	id2 := fs.Add("test.war", []byte("soldier x = 6;"), 0)
	if id2 != 1 {
		t.Errorf("expected second FileID to be 1, got %d", id2)
	}

	latestID, exists = fs.GetLatest("test.war")
	if !exists || latestID != id2 {
		t.Errorf("expected latest ID to be %d, got %d (exists=%v)", id2, latestID, exists)
	}

	if string(fs.Get(id1).Content) != "soldier x = 5;" {
		t.Error("first version content was clobbered")
	}
}

func TestAddVirtualLineIdx(t *testing.T) {
	fs := NewFileSet()

	id := fs.AddVirtual("a.war", []byte("a\nb\n"))
	file := fs.Get(id)

	expected := []uint32{1, 3}
	if len(file.LineIdx) != len(expected) {
		t.Fatalf("expected LineIdx length %d, got %d", len(expected), len(file.LineIdx))
	}
	for i := range expected {
		if file.LineIdx[i] != expected[i] {
			t.Errorf("LineIdx[%d] = %d, want %d", i, file.LineIdx[i], expected[i])
		}
	}
	if file.Flags&FileVirtual == 0 {
		t.Error("expected FileVirtual flag")
	}
}

func TestResolveLineCol(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("t.war", []byte("soldier x = 5;\nmarch (x) {\n}\n"))

	tests := []struct {
		name  string
		off   uint32
		line  uint32
		col   uint32
	}{
		{"start of file", 0, 1, 1},
		{"middle of first line", 8, 1, 9},
		{"newline stays on its own line", 14, 1, 15},
		{"start of second line", 15, 2, 1},
		{"middle of second line", 21, 2, 7},
		{"third line brace", 27, 3, 1},
		{"offset past final newline", 29, 4, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
			if start.Line != tt.line || start.Col != tt.col {
				t.Errorf("Resolve(%d) = %d:%d, want %d:%d", tt.off, start.Line, start.Col, tt.line, tt.col)
			}
		})
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("t.war", []byte("first\nsecond\nthird"))
	f := fs.Get(id)

	if got := f.GetLine(1); got != "first" {
		t.Errorf("GetLine(1) = %q", got)
	}
	if got := f.GetLine(2); got != "second" {
		t.Errorf("GetLine(2) = %q", got)
	}
	if got := f.GetLine(3); got != "third" {
		t.Errorf("GetLine(3) = %q", got)
	}
	if got := f.GetLine(4); got != "" {
		t.Errorf("GetLine(4) = %q, want empty", got)
	}
}

func TestNormalizeCRLF(t *testing.T) {
	out, changed := normalizeCRLF([]byte("a\r\nb\rc\n"))
	if !changed {
		t.Error("expected change flag")
	}
	if string(out) != "a\nb\rc\n" {
		t.Errorf("normalizeCRLF = %q", out)
	}

	out, changed = normalizeCRLF([]byte("plain"))
	if changed || string(out) != "plain" {
		t.Errorf("normalizeCRLF on plain input changed: %q %v", out, changed)
	}
}
