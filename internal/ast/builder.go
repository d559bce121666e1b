package ast

import (
	"warlang/internal/source"
)

type Hints struct{ Stmts, Exprs uint }

// Builder aggregates the node arenas and the string interner for one
// compilation.
type Builder struct {
	Stmts    *Stmts
	Exprs    *Exprs
	Interner *source.Interner
}

func NewBuilder(hints Hints) *Builder {
	if hints.Stmts == 0 {
		hints.Stmts = 1 << 8
	}
	if hints.Exprs == 0 {
		hints.Exprs = 1 << 8
	}
	return &Builder{
		Stmts:    NewStmts(hints.Stmts),
		Exprs:    NewExprs(hints.Exprs),
		Interner: source.NewInterner(),
	}
}

// MustLookup resolves an interned name, panicking on an ID the builder
// never produced.
func (b *Builder) MustLookup(id source.StringID) string {
	return b.Interner.MustLookup(id)
}
