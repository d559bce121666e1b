package sema

import (
	"warlang/internal/ast"
	"warlang/internal/diag"
	"warlang/internal/source"
	"warlang/internal/symbols"
	"warlang/internal/types"
)

func (c *Checker) checkStmt(id ast.StmtID) {
	stmt := c.builder.Stmts.Get(id)
	if stmt == nil {
		return
	}
	switch stmt.Kind {
	case ast.StmtDecl:
		c.checkDecl(id)
	case ast.StmtAssign:
		c.checkAssign(id)
	case ast.StmtIncr:
		c.checkIncr(id)
	case ast.StmtIf:
		c.checkIf(id)
	case ast.StmtWhile:
		c.checkWhile(id)
	case ast.StmtFor:
		c.checkFor(id)
	case ast.StmtBlock:
		c.checkBlock(id)
	case ast.StmtShout:
		c.checkShout(id)
	case ast.StmtScout:
		c.checkScout(id)
	}
}

func (c *Checker) checkDecl(id ast.StmtID) {
	decl, _ := c.builder.Stmts.Decl(id)
	declType := types.FromDecl(decl.Type)

	initialized := false
	if decl.Init.IsValid() {
		initType := c.typeExpr(decl.Init)
		if initType != types.Invalid && !types.AssignableTo(initType, declType) {
			c.errAt(diag.SemaAssignIncompatible, c.builder.Exprs.Get(decl.Init).Span,
				"cannot initialize "+declType.Describe()+" variable '"+c.name(decl.Name)+"' with "+initType.Describe()+" value")
		}
		initialized = true
	}

	sym, ok := c.table.Declare(c.scope, symbols.Symbol{
		Name:        decl.Name,
		Type:        declType,
		DeclSpan:    decl.NameSpan,
		Initialized: initialized,
	})
	if !ok {
		prev := c.table.Symbol(sym)
		c.report(diag.SemaDuplicateSymbol, diag.SevError, decl.NameSpan,
			"variable '"+c.name(decl.Name)+"' is already declared in this scope",
			[]diag.Note{{Span: prev.DeclSpan, Message: "previous declaration is here"}})
		return
	}
	c.info.DeclSymbols[id] = sym
}

// resolveTarget looks up the named target of an assignment-like
// statement and records it in TargetSymbols.
func (c *Checker) resolveTarget(id ast.StmtID, name source.StringID, nameSpan source.Span) (symbols.SymbolID, bool) {
	sym, ok := c.table.Lookup(c.scope, name)
	if !ok {
		c.errAt(diag.SemaUnresolvedSymbol, nameSpan,
			"undeclared variable '"+c.name(name)+"'")
		return symbols.NoSymbolID, false
	}
	c.info.TargetSymbols[id] = sym
	return sym, true
}

func (c *Checker) checkAssign(id ast.StmtID) {
	assign, _ := c.builder.Stmts.Assign(id)
	valueType := c.typeExpr(assign.Value)

	sym, ok := c.resolveTarget(id, assign.Name, assign.NameSpan)
	if !ok {
		return
	}
	target := c.table.Symbol(sym)
	if valueType != types.Invalid && !types.AssignableTo(valueType, target.Type) {
		c.errAt(diag.SemaAssignIncompatible, c.builder.Exprs.Get(assign.Value).Span,
			"cannot assign "+valueType.Describe()+" value to "+target.Type.Describe()+" variable '"+c.name(assign.Name)+"'")
	}
	target.Initialized = true
}

func (c *Checker) checkIncr(id ast.StmtID) {
	incr, _ := c.builder.Stmts.Incr(id)
	sym, ok := c.resolveTarget(id, incr.Name, incr.NameSpan)
	if !ok {
		return
	}
	target := c.table.Symbol(sym)
	if !target.Type.IsNumeric() {
		c.errAt(diag.SemaInvalidUnaryOp, incr.NameSpan,
			"'++' requires a numeric variable, '"+c.name(incr.Name)+"' is "+target.Type.Describe())
	}
	if !target.Initialized {
		c.warnAt(diag.SemaUninitializedUse, incr.NameSpan,
			"variable '"+c.name(incr.Name)+"' may be used before it is assigned")
	}
}

func (c *Checker) checkCondition(cond ast.ExprID, construct string) {
	condType := c.typeExpr(cond)
	if condType != types.Invalid && condType != types.Bool {
		c.errAt(diag.SemaConditionNotBool, c.builder.Exprs.Get(cond).Span,
			construct+" condition must be flag (bool), got "+condType.Describe())
	}
}

func (c *Checker) checkIf(id ast.StmtID) {
	data, _ := c.builder.Stmts.If(id)
	c.checkCondition(data.Cond, "shield")
	c.checkStmt(data.Then)
	if data.Else.IsValid() {
		c.checkStmt(data.Else)
	}
}

func (c *Checker) checkWhile(id ast.StmtID) {
	data, _ := c.builder.Stmts.While(id)
	c.checkCondition(data.Cond, "march")
	c.checkStmt(data.Body)
}

// checkFor runs the whole deploy header and body in one child scope,
// so a variable declared in the initializer is visible in the
// condition, update, and body, and dies with the loop.
func (c *Checker) checkFor(id ast.StmtID) {
	data, _ := c.builder.Stmts.For(id)
	span := c.builder.Stmts.Get(id).Span
	c.enterScope(span, func() {
		c.checkStmt(data.Init)
		c.checkCondition(data.Cond, "deploy")
		c.checkStmt(data.Update)
		c.checkStmt(data.Body)
	})
}

func (c *Checker) checkBlock(id ast.StmtID) {
	data, _ := c.builder.Stmts.Block(id)
	span := c.builder.Stmts.Get(id).Span
	c.enterScope(span, func() {
		for _, s := range data.Stmts {
			c.checkStmt(s)
		}
	})
}

func (c *Checker) checkShout(id ast.StmtID) {
	data, _ := c.builder.Stmts.Shout(id)
	for _, arg := range data.Args {
		c.typeExpr(arg)
	}
}

func (c *Checker) checkScout(id ast.StmtID) {
	scout, _ := c.builder.Stmts.Scout(id)
	sym, ok := c.resolveTarget(id, scout.Name, scout.NameSpan)
	if !ok {
		return
	}
	c.table.Symbol(sym).Initialized = true
}
