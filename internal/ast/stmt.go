package ast

import (
	"warlang/internal/source"
)

type StmtKind uint8

const (
	StmtDecl StmtKind = iota
	StmtAssign
	StmtIncr
	StmtIf
	StmtWhile
	StmtFor
	StmtBlock
	StmtShout
	StmtScout
)

type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Payload PayloadID
}

// DeclType is the syntactic type keyword of a declaration. Mapping to
// semantic types happens during checking.
type DeclType uint8

const (
	TypeSoldier DeclType = iota // int
	TypeForce                   // float
	TypeIntel                   // string
	TypeFlag                    // bool
)

func (t DeclType) String() string {
	switch t {
	case TypeSoldier:
		return "soldier"
	case TypeForce:
		return "force"
	case TypeIntel:
		return "intel"
	case TypeFlag:
		return "flag"
	default:
		return "?"
	}
}

// StmtDeclData: `soldier x = 5;` or `soldier x;` (Init == NoExprID).
type StmtDeclData struct {
	Type     DeclType
	Name     source.StringID
	NameSpan source.Span
	Init     ExprID
}

// StmtAssignData: `x = expr;`.
type StmtAssignData struct {
	Name     source.StringID
	NameSpan source.Span
	Value    ExprID
}

// StmtIncrData: `x++`, only valid in a deploy update clause.
type StmtIncrData struct {
	Name     source.StringID
	NameSpan source.Span
}

// StmtIfData: `shield (cond) {...}` with optional `retreat` branch.
type StmtIfData struct {
	Cond ExprID
	Then StmtID
	Else StmtID // NoStmtID when there is no retreat
}

// StmtWhileData: `march (cond) {...}`.
type StmtWhileData struct {
	Cond ExprID
	Body StmtID
}

// StmtForData: `deploy (init; cond; update) {...}`. All three clauses
// are required by the grammar.
type StmtForData struct {
	Init   StmtID // decl or assign
	Cond   ExprID
	Update StmtID // assign or incr
	Body   StmtID
}

type StmtBlockData struct {
	Stmts []StmtID
}

// StmtShoutData: `shout(a, b, ...);` with at least one argument.
type StmtShoutData struct {
	Args []ExprID
}

// StmtScoutData: `scout(x);` reads input into an existing variable.
type StmtScoutData struct {
	Name     source.StringID
	NameSpan source.Span
}
