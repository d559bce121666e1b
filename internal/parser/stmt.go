package parser

import (
	"warlang/internal/ast"
	"warlang/internal/diag"
	"warlang/internal/token"
)

func declType(kind token.Kind) (ast.DeclType, bool) {
	switch kind {
	case token.KwSoldier:
		return ast.TypeSoldier, true
	case token.KwForce:
		return ast.TypeForce, true
	case token.KwIntel:
		return ast.TypeIntel, true
	case token.KwFlag:
		return ast.TypeFlag, true
	default:
		return ast.TypeSoldier, false
	}
}

// parseDecl parses `type name;` or `type name = expr;`. The caller has
// already checked that the current token is a type keyword.
func (p *Parser) parseDecl(requireSemi bool) (ast.StmtID, bool) {
	typeTok := p.advance()
	ty, _ := declType(typeTok.Kind)

	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.NoStmtID, false
	}

	init := ast.NoExprID
	end := nameSpan
	if p.at(token.Assign) {
		p.advance()
		init, ok = p.parseExpr()
		if !ok {
			return ast.NoStmtID, false
		}
		end = p.arenas.Exprs.Get(init).Span
	}

	if requireSemi {
		semi, ok := p.expectSemicolon()
		if !ok {
			return ast.NoStmtID, false
		}
		end = semi
	}

	span := typeTok.Span.Cover(end)
	return p.arenas.Stmts.NewDecl(span, ty, name, nameSpan, init), true
}

// parseAssign parses `name = expr;`. The caller has already checked
// that the current token is an identifier.
func (p *Parser) parseAssign(requireSemi bool) (ast.StmtID, bool) {
	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.NoStmtID, false
	}

	if _, ok := p.expect(token.Assign, diag.SynExpectAssign, "expected '=' after identifier"); !ok {
		return ast.NoStmtID, false
	}

	value, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}

	end := p.arenas.Exprs.Get(value).Span
	if requireSemi {
		semi, ok := p.expectSemicolon()
		if !ok {
			return ast.NoStmtID, false
		}
		end = semi
	}

	span := nameSpan.Cover(end)
	return p.arenas.Stmts.NewAssign(span, name, nameSpan, value), true
}

// parseShout parses `shout(expr, ...);` with at least one argument.
func (p *Parser) parseShout() (ast.StmtID, bool) {
	kw := p.advance()

	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after 'shout'"); !ok {
		return ast.NoStmtID, false
	}

	var args []ast.ExprID
	for {
		arg, ok := p.parseExpr()
		if !ok {
			return ast.NoStmtID, false
		}
		args = append(args, arg)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}

	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')'"); !ok {
		return ast.NoStmtID, false
	}
	semi, ok := p.expectSemicolon()
	if !ok {
		return ast.NoStmtID, false
	}

	return p.arenas.Stmts.NewShout(kw.Span.Cover(semi), args), true
}

// parseScout parses `scout(name);`.
func (p *Parser) parseScout() (ast.StmtID, bool) {
	kw := p.advance()

	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after 'scout'"); !ok {
		return ast.NoStmtID, false
	}
	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.NoStmtID, false
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')'"); !ok {
		return ast.NoStmtID, false
	}
	semi, ok := p.expectSemicolon()
	if !ok {
		return ast.NoStmtID, false
	}

	return p.arenas.Stmts.NewScout(kw.Span.Cover(semi), name, nameSpan), true
}
