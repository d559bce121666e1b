package types

import (
	"warlang/internal/ast"
)

// Kind is a WarLang value type. The language has no compound types, so
// a flat enum is the whole type system.
type Kind uint8

const (
	Invalid Kind = iota
	Int
	Float
	Bool
	String
	Void
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case Float:
		return "float"
	case Bool:
		return "bool"
	case String:
		return "string"
	case Void:
		return "void"
	default:
		return "invalid"
	}
}

// Keyword returns the WarLang surface keyword for the kind, used in
// diagnostics ("soldier (int)" style).
func (k Kind) Keyword() string {
	switch k {
	case Int:
		return "soldier"
	case Float:
		return "force"
	case Bool:
		return "flag"
	case String:
		return "intel"
	default:
		return ""
	}
}

// Describe renders the kind for user-facing messages.
func (k Kind) Describe() string {
	if kw := k.Keyword(); kw != "" {
		return kw + " (" + k.String() + ")"
	}
	return k.String()
}

// FromDecl maps a syntactic type keyword to its semantic kind.
func FromDecl(t ast.DeclType) Kind {
	switch t {
	case ast.TypeSoldier:
		return Int
	case ast.TypeForce:
		return Float
	case ast.TypeIntel:
		return String
	case ast.TypeFlag:
		return Bool
	default:
		return Invalid
	}
}

// IsNumeric reports whether k participates in arithmetic.
func (k Kind) IsNumeric() bool {
	return k == Int || k == Float
}

// Widen returns the common arithmetic type of two numeric operands.
// The only widening in the language is int to float.
func Widen(a, b Kind) (Kind, bool) {
	if !a.IsNumeric() || !b.IsNumeric() {
		return Invalid, false
	}
	if a == Float || b == Float {
		return Float, true
	}
	return Int, true
}

// AssignableTo reports whether a value of type src can be stored in a
// binding of type dst. Identity always holds; int widens to float.
// Booleans never convert, in either direction.
func AssignableTo(src, dst Kind) bool {
	if src == dst {
		return src != Invalid && src != Void
	}
	return src == Int && dst == Float
}

// Comparable reports whether == and != apply to the operand pair.
func Comparable(a, b Kind) bool {
	if a.IsNumeric() && b.IsNumeric() {
		return true
	}
	return a == b && (a == Bool || a == String)
}

// Ordered reports whether < <= > >= apply to the operand pair.
func Ordered(a, b Kind) bool {
	if a.IsNumeric() && b.IsNumeric() {
		return true
	}
	return a == String && b == String
}
