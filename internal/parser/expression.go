package parser

import (
	"warlang/internal/ast"
	"warlang/internal/diag"
	"warlang/internal/token"
)

// parseExpr is the expression entry point.
func (p *Parser) parseExpr() (ast.ExprID, bool) {
	return p.parseBinary(0)
}

// parseBinary is a precedence climber: it parses a unary operand and
// then folds in binary operators whose precedence exceeds minPrec.
// Left associativity comes from recursing with prec+1 on the right.
func (p *Parser) parseBinary(minPrec int) (ast.ExprID, bool) {
	left, ok := p.parseUnary()
	if !ok {
		return ast.NoExprID, false
	}

	for {
		opTok := p.lx.Peek()
		prec := binaryPrec(opTok.Kind)
		if prec < 0 || prec < minPrec {
			return left, true
		}
		p.advance()

		right, ok := p.parseBinary(prec + 1)
		if !ok {
			return ast.NoExprID, false
		}

		span := p.arenas.Exprs.Get(left).Span.Cover(p.arenas.Exprs.Get(right).Span)
		left = p.arenas.Exprs.NewBinary(span, tokenKindToBinaryOp(opTok.Kind), left, right)
	}
}

func (p *Parser) parseUnary() (ast.ExprID, bool) {
	if op, ok := unaryOp(p.lx.Peek().Kind); ok {
		opTok := p.advance()
		operand, ok := p.parseUnary()
		if !ok {
			return ast.NoExprID, false
		}
		span := opTok.Span.Cover(p.arenas.Exprs.Get(operand).Span)
		return p.arenas.Exprs.NewUnary(span, op, operand), true
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() (ast.ExprID, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.Ident:
		p.advance()
		name := p.arenas.Interner.Intern(tok.Text)
		return p.arenas.Exprs.NewIdent(tok.Span, name), true

	case token.IntLit:
		p.advance()
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.LitInt, p.arenas.Interner.Intern(tok.Text)), true

	case token.FloatLit:
		p.advance()
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.LitFloat, p.arenas.Interner.Intern(tok.Text)), true

	case token.StringLit:
		p.advance()
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.LitString, p.arenas.Interner.Intern(tok.Text)), true

	case token.BoolLit:
		p.advance()
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.LitBool, p.arenas.Interner.Intern(tok.Text)), true

	case token.LParen:
		open := p.advance()
		inner, ok := p.parseExpr()
		if !ok {
			return ast.NoExprID, false
		}
		closing, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')'")
		if !ok {
			return ast.NoExprID, false
		}
		return p.arenas.Exprs.NewGroup(open.Span.Cover(closing.Span), inner), true

	default:
		p.report(diag.SynExpectExpression, diag.SevError, p.getDiagnosticSpan(),
			"expected expression, got "+tok.Kind.Describe())
		return ast.NoExprID, false
	}
}
