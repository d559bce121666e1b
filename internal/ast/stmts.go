package ast

import (
	"warlang/internal/source"
)

// Stmts manages allocation of statements.
type Stmts struct {
	Arena   *Arena[Stmt]
	Decls   *Arena[StmtDeclData]
	Assigns *Arena[StmtAssignData]
	Incrs   *Arena[StmtIncrData]
	Ifs     *Arena[StmtIfData]
	Whiles  *Arena[StmtWhileData]
	Fors    *Arena[StmtForData]
	Blocks  *Arena[StmtBlockData]
	Shouts  *Arena[StmtShoutData]
	Scouts  *Arena[StmtScoutData]
}

func NewStmts(capHint uint) *Stmts {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Stmts{
		Arena:   NewArena[Stmt](capHint),
		Decls:   NewArena[StmtDeclData](capHint),
		Assigns: NewArena[StmtAssignData](capHint),
		Incrs:   NewArena[StmtIncrData](capHint),
		Ifs:     NewArena[StmtIfData](capHint),
		Whiles:  NewArena[StmtWhileData](capHint),
		Fors:    NewArena[StmtForData](capHint),
		Blocks:  NewArena[StmtBlockData](capHint),
		Shouts:  NewArena[StmtShoutData](capHint),
		Scouts:  NewArena[StmtScoutData](capHint),
	}
}

func (s *Stmts) new(kind StmtKind, span source.Span, payload PayloadID) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the statement with the given ID.
func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}

// NewDecl creates a declaration statement.
func (s *Stmts) NewDecl(span source.Span, ty DeclType, name source.StringID, nameSpan source.Span, init ExprID) StmtID {
	payload := s.Decls.Allocate(StmtDeclData{Type: ty, Name: name, NameSpan: nameSpan, Init: init})
	return s.new(StmtDecl, span, PayloadID(payload))
}

// Decl returns the declaration data for the given statement ID.
func (s *Stmts) Decl(id StmtID) (*StmtDeclData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtDecl {
		return nil, false
	}
	return s.Decls.Get(uint32(stmt.Payload)), true
}

// NewAssign creates an assignment statement.
func (s *Stmts) NewAssign(span source.Span, name source.StringID, nameSpan source.Span, value ExprID) StmtID {
	payload := s.Assigns.Allocate(StmtAssignData{Name: name, NameSpan: nameSpan, Value: value})
	return s.new(StmtAssign, span, PayloadID(payload))
}

// Assign returns the assignment data for the given statement ID.
func (s *Stmts) Assign(id StmtID) (*StmtAssignData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtAssign {
		return nil, false
	}
	return s.Assigns.Get(uint32(stmt.Payload)), true
}

// NewIncr creates an increment statement.
func (s *Stmts) NewIncr(span source.Span, name source.StringID, nameSpan source.Span) StmtID {
	payload := s.Incrs.Allocate(StmtIncrData{Name: name, NameSpan: nameSpan})
	return s.new(StmtIncr, span, PayloadID(payload))
}

// Incr returns the increment data for the given statement ID.
func (s *Stmts) Incr(id StmtID) (*StmtIncrData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtIncr {
		return nil, false
	}
	return s.Incrs.Get(uint32(stmt.Payload)), true
}

// NewIf creates a conditional statement.
func (s *Stmts) NewIf(span source.Span, cond ExprID, then, els StmtID) StmtID {
	payload := s.Ifs.Allocate(StmtIfData{Cond: cond, Then: then, Else: els})
	return s.new(StmtIf, span, PayloadID(payload))
}

// If returns the conditional data for the given statement ID.
func (s *Stmts) If(id StmtID) (*StmtIfData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtIf {
		return nil, false
	}
	return s.Ifs.Get(uint32(stmt.Payload)), true
}

// NewWhile creates a loop statement.
func (s *Stmts) NewWhile(span source.Span, cond ExprID, body StmtID) StmtID {
	payload := s.Whiles.Allocate(StmtWhileData{Cond: cond, Body: body})
	return s.new(StmtWhile, span, PayloadID(payload))
}

// While returns the loop data for the given statement ID.
func (s *Stmts) While(id StmtID) (*StmtWhileData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtWhile {
		return nil, false
	}
	return s.Whiles.Get(uint32(stmt.Payload)), true
}

// NewFor creates a counted loop statement.
func (s *Stmts) NewFor(span source.Span, init StmtID, cond ExprID, update, body StmtID) StmtID {
	payload := s.Fors.Allocate(StmtForData{Init: init, Cond: cond, Update: update, Body: body})
	return s.new(StmtFor, span, PayloadID(payload))
}

// For returns the counted-loop data for the given statement ID.
func (s *Stmts) For(id StmtID) (*StmtForData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtFor {
		return nil, false
	}
	return s.Fors.Get(uint32(stmt.Payload)), true
}

// NewBlock creates a block statement.
func (s *Stmts) NewBlock(span source.Span, stmts []StmtID) StmtID {
	payload := s.Blocks.Allocate(StmtBlockData{Stmts: stmts})
	return s.new(StmtBlock, span, PayloadID(payload))
}

// Block returns the block data for the given statement ID.
func (s *Stmts) Block(id StmtID) (*StmtBlockData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtBlock {
		return nil, false
	}
	return s.Blocks.Get(uint32(stmt.Payload)), true
}

// NewShout creates an output statement.
func (s *Stmts) NewShout(span source.Span, args []ExprID) StmtID {
	payload := s.Shouts.Allocate(StmtShoutData{Args: args})
	return s.new(StmtShout, span, PayloadID(payload))
}

// Shout returns the output data for the given statement ID.
func (s *Stmts) Shout(id StmtID) (*StmtShoutData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtShout {
		return nil, false
	}
	return s.Shouts.Get(uint32(stmt.Payload)), true
}

// NewScout creates an input statement.
func (s *Stmts) NewScout(span source.Span, name source.StringID, nameSpan source.Span) StmtID {
	payload := s.Scouts.Allocate(StmtScoutData{Name: name, NameSpan: nameSpan})
	return s.new(StmtScout, span, PayloadID(payload))
}

// Scout returns the input data for the given statement ID.
func (s *Stmts) Scout(id StmtID) (*StmtScoutData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtScout {
		return nil, false
	}
	return s.Scouts.Get(uint32(stmt.Payload)), true
}
