package symbols

import (
	"warlang/internal/source"
)

// Scope is a lexical scope. Parent links are arena indices, so the
// whole scope tree lives in two flat slices inside Table.
type Scope struct {
	Parent    ScopeID
	Span      source.Span
	NameIndex map[source.StringID]SymbolID
	Symbols   []SymbolID
}
