package types_test

import (
	"testing"

	"warlang/internal/ast"
	"warlang/internal/types"
)

func TestFromDecl(t *testing.T) {
	tests := []struct {
		decl ast.DeclType
		kind types.Kind
	}{
		{ast.TypeSoldier, types.Int},
		{ast.TypeForce, types.Float},
		{ast.TypeIntel, types.String},
		{ast.TypeFlag, types.Bool},
	}
	for _, tt := range tests {
		if got := types.FromDecl(tt.decl); got != tt.kind {
			t.Errorf("FromDecl(%v) = %v, want %v", tt.decl, got, tt.kind)
		}
	}
}

func TestWiden(t *testing.T) {
	if k, ok := types.Widen(types.Int, types.Int); !ok || k != types.Int {
		t.Errorf("int+int = %v %v", k, ok)
	}
	if k, ok := types.Widen(types.Int, types.Float); !ok || k != types.Float {
		t.Errorf("int+float = %v %v", k, ok)
	}
	if k, ok := types.Widen(types.Float, types.Int); !ok || k != types.Float {
		t.Errorf("float+int = %v %v", k, ok)
	}
	if _, ok := types.Widen(types.Bool, types.Int); ok {
		t.Error("bool must not widen")
	}
	if _, ok := types.Widen(types.String, types.String); ok {
		t.Error("strings are not arithmetic operands")
	}
}

func TestAssignableTo(t *testing.T) {
	if !types.AssignableTo(types.Int, types.Float) {
		t.Error("int must be assignable to float")
	}
	if types.AssignableTo(types.Float, types.Int) {
		t.Error("float must not narrow to int")
	}
	if types.AssignableTo(types.Bool, types.Int) || types.AssignableTo(types.Int, types.Bool) {
		t.Error("bool never converts")
	}
	if !types.AssignableTo(types.String, types.String) {
		t.Error("identity assignment must hold")
	}
	if types.AssignableTo(types.Invalid, types.Invalid) || types.AssignableTo(types.Void, types.Void) {
		t.Error("invalid and void are never assignable")
	}
}

func TestComparableOrdered(t *testing.T) {
	if !types.Comparable(types.Int, types.Float) {
		t.Error("mixed numerics are comparable")
	}
	if !types.Comparable(types.Bool, types.Bool) {
		t.Error("bool equality is allowed")
	}
	if types.Ordered(types.Bool, types.Bool) {
		t.Error("bool has no ordering")
	}
	if !types.Ordered(types.String, types.String) {
		t.Error("strings are ordered")
	}
	if types.Ordered(types.String, types.Int) || types.Comparable(types.String, types.Int) {
		t.Error("string and int never compare")
	}
}

func TestDescribe(t *testing.T) {
	if got := types.Int.Describe(); got != "soldier (int)" {
		t.Errorf("Describe = %q", got)
	}
	if got := types.Void.Describe(); got != "void" {
		t.Errorf("Describe(void) = %q", got)
	}
}
