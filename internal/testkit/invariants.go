package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"warlang/internal/ast"
	"warlang/internal/source"
)

// CheckSpanInvariants runs a minimal set of span invariants on a parsed
// program:
// 1) the program span is non-empty and within file content bounds
// 2) every top-level statement span is non-empty and inside the program span
// 3) the program span covers the union of statement spans (if any exist)
func CheckSpanInvariants(b *ast.Builder, prog *ast.Program, sf *source.File) error {
	if b == nil || prog == nil || sf == nil {
		return fmt.Errorf("nil builder, program or file")
	}

	if prog.Span.End <= prog.Span.Start {
		return fmt.Errorf("program span is empty: %v", prog.Span)
	}
	if prog.Span.File != sf.ID {
		return fmt.Errorf("program span points to different file id: got=%d want=%d", prog.Span.File, sf.ID)
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	if prog.Span.End > lenContent {
		return fmt.Errorf("program span end beyond content: %d > %d", prog.Span.End, lenContent)
	}

	var union source.Span
	var haveStmt bool
	for _, id := range prog.Stmts {
		stmt := b.Stmts.Get(id)
		if stmt == nil {
			return fmt.Errorf("nil statement for id=%d", id)
		}
		sp := stmt.Span
		if sp.End <= sp.Start {
			return fmt.Errorf("empty statement span: %v", sp)
		}
		if sp.File != sf.ID {
			return fmt.Errorf("statement span file mismatch: got=%d want=%d", sp.File, sf.ID)
		}
		if sp.Start < prog.Span.Start || sp.End > prog.Span.End {
			return fmt.Errorf("statement span %v is outside program span %v", sp, prog.Span)
		}
		if !haveStmt {
			union = sp
			haveStmt = true
		} else {
			union = union.Cover(sp)
		}
	}

	if haveStmt {
		if union.Start < prog.Span.Start || union.End > prog.Span.End {
			return fmt.Errorf("program span %v does not cover union of statements %v", prog.Span, union)
		}
	}
	return nil
}
