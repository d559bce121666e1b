package sema

import (
	"warlang/internal/ast"
	"warlang/internal/symbols"
	"warlang/internal/types"
)

// Info is the semantic annotation produced by Check and consumed
// read-only by code generation.
type Info struct {
	// ExprTypes has an entry for every expression that was checked.
	ExprTypes map[ast.ExprID]types.Kind
	// IdentSymbols resolves identifier expressions to their symbols.
	IdentSymbols map[ast.ExprID]symbols.SymbolID
	// DeclSymbols resolves declaration statements to the symbols they
	// introduced.
	DeclSymbols map[ast.StmtID]symbols.SymbolID
	// TargetSymbols resolves the named target of assignment, increment,
	// and scout statements.
	TargetSymbols map[ast.StmtID]symbols.SymbolID
	// Table owns the scope tree and symbols behind the maps above.
	Table *symbols.Table
}

func newInfo(table *symbols.Table) *Info {
	return &Info{
		ExprTypes:     make(map[ast.ExprID]types.Kind),
		IdentSymbols:  make(map[ast.ExprID]symbols.SymbolID),
		DeclSymbols:   make(map[ast.StmtID]symbols.SymbolID),
		TargetSymbols: make(map[ast.StmtID]symbols.SymbolID),
		Table:         table,
	}
}

// TypeOf returns the checked type of an expression, or Invalid for an
// expression the checker never reached.
func (i *Info) TypeOf(id ast.ExprID) types.Kind {
	if k, ok := i.ExprTypes[id]; ok {
		return k
	}
	return types.Invalid
}
