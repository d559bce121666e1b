package symbols

import (
	"warlang/internal/ast"
	"warlang/internal/source"
)

// Table owns the scope tree and symbol arena for one compilation.
type Table struct {
	scopes  *ast.Arena[Scope]
	symbols *ast.Arena[Symbol]
}

func NewTable() *Table {
	return &Table{
		scopes:  ast.NewArena[Scope](1 << 4),
		symbols: ast.NewArena[Symbol](1 << 6),
	}
}

// NewScope allocates a scope under parent (NoScopeID for the root).
func (t *Table) NewScope(parent ScopeID, span source.Span) ScopeID {
	return ScopeID(t.scopes.Allocate(Scope{
		Parent:    parent,
		Span:      span,
		NameIndex: make(map[source.StringID]SymbolID),
	}))
}

func (t *Table) Scope(id ScopeID) *Scope {
	return t.scopes.Get(uint32(id))
}

func (t *Table) Symbol(id SymbolID) *Symbol {
	return t.symbols.Get(uint32(id))
}

// Declare binds sym in scope. When the name is already bound in this
// exact scope, the existing symbol is returned with ok=false and the
// table is left unchanged (first declaration wins).
func (t *Table) Declare(scope ScopeID, sym Symbol) (SymbolID, bool) {
	sc := t.Scope(scope)
	if existing, dup := sc.NameIndex[sym.Name]; dup {
		return existing, false
	}
	id := SymbolID(t.symbols.Allocate(sym))
	sc.NameIndex[sym.Name] = id
	sc.Symbols = append(sc.Symbols, id)
	return id, true
}

// LookupLocal resolves name in scope only, ignoring parents.
func (t *Table) LookupLocal(scope ScopeID, name source.StringID) (SymbolID, bool) {
	id, ok := t.Scope(scope).NameIndex[name]
	return id, ok
}

// Lookup resolves name in scope or any enclosing scope. Inner bindings
// shadow outer ones.
func (t *Table) Lookup(scope ScopeID, name source.StringID) (SymbolID, bool) {
	for cur := scope; cur.IsValid(); cur = t.Scope(cur).Parent {
		if id, ok := t.Scope(cur).NameIndex[name]; ok {
			return id, true
		}
	}
	return NoSymbolID, false
}
