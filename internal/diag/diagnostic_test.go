package diag

import "testing"

func TestSeverityOrdering(t *testing.T) {
	if !(SevInfo < SevWarning && SevWarning < SevError) {
		t.Fatal("severity levels must order info < warning < error")
	}
	want := map[Severity]string{
		SevInfo:    "info",
		SevWarning: "warning",
		SevError:   "error",
	}
	for sev, label := range want {
		if sev.String() != label {
			t.Errorf("%d.String() = %q, want %q", sev, sev.String(), label)
		}
	}
}

func TestWithNote(t *testing.T) {
	d := NewError(SemaDuplicateSymbol, span(10, 11), "duplicate declaration of 'x'")
	d = d.WithNote(span(2, 3), "previous declaration is here")

	if len(d.Notes) != 1 {
		t.Fatalf("note count = %d, want 1", len(d.Notes))
	}
	note := d.Notes[0]
	if note.Message != "previous declaration is here" {
		t.Errorf("note message = %q", note.Message)
	}
	if note.Span != span(2, 3) {
		t.Errorf("note span = %v", note.Span)
	}
}

func TestWithNoteDoesNotMutateOriginal(t *testing.T) {
	base := NewError(SemaDuplicateSymbol, span(0, 1), "duplicate")
	with := base.WithNote(span(4, 5), "here")

	if len(base.Notes) != 0 {
		t.Errorf("base notes = %d, want 0", len(base.Notes))
	}
	if len(with.Notes) != 1 {
		t.Errorf("with notes = %d, want 1", len(with.Notes))
	}
}
