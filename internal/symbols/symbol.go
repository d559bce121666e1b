package symbols

import (
	"warlang/internal/source"
	"warlang/internal/types"
)

// Symbol is one declared variable. WarLang has no functions or types to
// declare, so variables are the whole symbol space.
type Symbol struct {
	Name     source.StringID
	Type     types.Kind
	DeclSpan source.Span
	// Initialized tracks whether the binding definitely holds a value:
	// set by an initializer, an assignment, or a scout read.
	Initialized bool
}
