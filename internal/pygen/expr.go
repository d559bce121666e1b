package pygen

import (
	"warlang/internal/ast"
)

func pythonBinaryOp(op ast.BinaryOp) string {
	switch op {
	case ast.BinAnd:
		return "and"
	case ast.BinOr:
		return "or"
	default:
		return op.String()
	}
}

// emitExpr renders an expression. Compound expressions are fully
// parenthesized, so WarLang evaluation order survives without
// replaying precedence on the Python side.
func (g *generator) emitExpr(id ast.ExprID) (string, error) {
	expr := g.builder.Exprs.Get(id)
	if expr == nil {
		return "", g.internalf("missing expression node %d", id)
	}

	switch expr.Kind {
	case ast.ExprIdent:
		data, ok := g.builder.Exprs.Ident(id)
		if !ok {
			return "", g.internalf("expression %d is not an identifier", id)
		}
		if _, resolved := g.info.IdentSymbols[id]; !resolved {
			return "", g.internalf("identifier '%s' has no resolved symbol", g.builder.MustLookup(data.Name))
		}
		return g.builder.MustLookup(data.Name), nil

	case ast.ExprLit:
		return g.emitLiteral(id)

	case ast.ExprUnary:
		data, ok := g.builder.Exprs.Unary(id)
		if !ok {
			return "", g.internalf("expression %d is not unary", id)
		}
		operand, err := g.emitExpr(data.Operand)
		if err != nil {
			return "", err
		}
		if data.Op == ast.UnaryNot {
			return "(not " + operand + ")", nil
		}
		return "(-" + operand + ")", nil

	case ast.ExprBinary:
		data, ok := g.builder.Exprs.Binary(id)
		if !ok {
			return "", g.internalf("expression %d is not binary", id)
		}
		left, err := g.emitExpr(data.Left)
		if err != nil {
			return "", err
		}
		right, err := g.emitExpr(data.Right)
		if err != nil {
			return "", err
		}
		return "(" + left + " " + pythonBinaryOp(data.Op) + " " + right + ")", nil

	case ast.ExprGroup:
		// explicit parens in the source are already implied by full
		// parenthesization of compound operands
		data, ok := g.builder.Exprs.Group(id)
		if !ok {
			return "", g.internalf("expression %d is not a group", id)
		}
		return g.emitExpr(data.Inner)

	default:
		return "", g.internalf("unknown expression kind %d", expr.Kind)
	}
}

func (g *generator) emitLiteral(id ast.ExprID) (string, error) {
	data, ok := g.builder.Exprs.Literal(id)
	if !ok {
		return "", g.internalf("expression %d is not a literal", id)
	}
	text := g.builder.MustLookup(data.Value)

	switch data.Kind {
	case ast.LitInt, ast.LitFloat:
		// decimal spelling and escape set are shared with Python
		return text, nil
	case ast.LitString:
		return text, nil
	case ast.LitBool:
		if text == "Ally" {
			return "True", nil
		}
		return "False", nil
	default:
		return "", g.internalf("unknown literal kind %d", data.Kind)
	}
}
