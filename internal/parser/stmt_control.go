package parser

import (
	"warlang/internal/ast"
	"warlang/internal/diag"
	"warlang/internal/token"
)

// parseCondition parses a parenthesized condition: '(' expr ')'.
func (p *Parser) parseCondition(after string) (ast.ExprID, bool) {
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after '"+after+"'"); !ok {
		return ast.NoExprID, false
	}
	cond, ok := p.parseExpr()
	if !ok {
		return ast.NoExprID, false
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')'"); !ok {
		return ast.NoExprID, false
	}
	return cond, true
}

// parseBlock parses '{' stmt* '}'.
func (p *Parser) parseBlock() (ast.StmtID, bool) {
	open, ok := p.expect(token.LBrace, diag.SynExpectBlock, "expected '{'")
	if !ok {
		return ast.NoStmtID, false
	}

	var stmts []ast.StmtID
	for !p.at(token.RBrace) {
		if p.at(token.EOF) {
			p.err(diag.SynUnclosedBrace, "expected '}' before end of input")
			return ast.NoStmtID, false
		}
		id, ok := p.parseStmt()
		if !ok {
			return ast.NoStmtID, false
		}
		stmts = append(stmts, id)
	}
	closing := p.advance()

	return p.arenas.Stmts.NewBlock(open.Span.Cover(closing.Span), stmts), true
}

// parseIf parses `shield (cond) block` with an optional `retreat`
// branch. A retreat may carry a block or another shield, so else-if
// chains bind each retreat to the nearest shield.
func (p *Parser) parseIf() (ast.StmtID, bool) {
	kw := p.advance()

	cond, ok := p.parseCondition("shield")
	if !ok {
		return ast.NoStmtID, false
	}
	then, ok := p.parseBlock()
	if !ok {
		return ast.NoStmtID, false
	}

	els := ast.NoStmtID
	end := p.arenas.Stmts.Get(then).Span
	if p.at(token.KwRetreat) {
		p.advance()
		if p.at(token.KwShield) {
			els, ok = p.parseIf()
		} else {
			els, ok = p.parseBlock()
		}
		if !ok {
			return ast.NoStmtID, false
		}
		end = p.arenas.Stmts.Get(els).Span
	}

	return p.arenas.Stmts.NewIf(kw.Span.Cover(end), cond, then, els), true
}

// parseWhile parses `march (cond) block`.
func (p *Parser) parseWhile() (ast.StmtID, bool) {
	kw := p.advance()

	cond, ok := p.parseCondition("march")
	if !ok {
		return ast.NoStmtID, false
	}
	body, ok := p.parseBlock()
	if !ok {
		return ast.NoStmtID, false
	}

	span := kw.Span.Cover(p.arenas.Stmts.Get(body).Span)
	return p.arenas.Stmts.NewWhile(span, cond, body), true
}

// parseFor parses `deploy (init; cond; update) block`. The init clause
// is a declaration or assignment; the update clause is an assignment or
// `name++`.
func (p *Parser) parseFor() (ast.StmtID, bool) {
	kw := p.advance()

	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after 'deploy'"); !ok {
		return ast.NoStmtID, false
	}

	var init ast.StmtID
	var ok bool
	switch p.lx.Peek().Kind {
	case token.KwSoldier, token.KwForce, token.KwIntel, token.KwFlag:
		init, ok = p.parseDecl(true)
	case token.Ident:
		init, ok = p.parseAssign(true)
	default:
		p.err(diag.SynExpectStatement, "expected declaration or assignment in deploy initializer")
		return ast.NoStmtID, false
	}
	if !ok {
		return ast.NoStmtID, false
	}

	cond, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	if _, ok := p.expectSemicolon(); !ok {
		return ast.NoStmtID, false
	}

	update, ok := p.parseForUpdate()
	if !ok {
		return ast.NoStmtID, false
	}

	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')'"); !ok {
		return ast.NoStmtID, false
	}
	body, ok := p.parseBlock()
	if !ok {
		return ast.NoStmtID, false
	}

	span := kw.Span.Cover(p.arenas.Stmts.Get(body).Span)
	return p.arenas.Stmts.NewFor(span, init, cond, update, body), true
}

// parseForUpdate parses the update clause of a deploy loop: either
// `name = expr` or `name++`, with no trailing semicolon.
func (p *Parser) parseForUpdate() (ast.StmtID, bool) {
	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.NoStmtID, false
	}

	if p.at(token.PlusPlus) {
		opTok := p.advance()
		return p.arenas.Stmts.NewIncr(nameSpan.Cover(opTok.Span), name, nameSpan), true
	}

	if _, ok := p.expect(token.Assign, diag.SynExpectAssign, "expected '=' or '++' in deploy update"); !ok {
		return ast.NoStmtID, false
	}
	value, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	span := nameSpan.Cover(p.arenas.Exprs.Get(value).Span)
	return p.arenas.Stmts.NewAssign(span, name, nameSpan, value), true
}
