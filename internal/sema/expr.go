package sema

import (
	"warlang/internal/ast"
	"warlang/internal/diag"
	"warlang/internal/types"
)

// typeExpr types an expression bottom-up and records the result. An
// Invalid operand poisons the result without a second diagnostic, so
// one broken subexpression reports once.
func (c *Checker) typeExpr(id ast.ExprID) types.Kind {
	expr := c.builder.Exprs.Get(id)
	if expr == nil {
		return types.Invalid
	}

	var result types.Kind
	switch expr.Kind {
	case ast.ExprIdent:
		result = c.typeIdent(id)
	case ast.ExprLit:
		result = c.typeLiteral(id)
	case ast.ExprUnary:
		result = c.typeUnary(id)
	case ast.ExprBinary:
		result = c.typeBinary(id)
	case ast.ExprGroup:
		data, _ := c.builder.Exprs.Group(id)
		result = c.typeExpr(data.Inner)
	default:
		result = types.Invalid
	}

	c.info.ExprTypes[id] = result
	return result
}

func (c *Checker) typeIdent(id ast.ExprID) types.Kind {
	data, _ := c.builder.Exprs.Ident(id)
	span := c.builder.Exprs.Get(id).Span

	sym, ok := c.table.Lookup(c.scope, data.Name)
	if !ok {
		c.errAt(diag.SemaUnresolvedSymbol, span,
			"undeclared variable '"+c.name(data.Name)+"'")
		return types.Invalid
	}
	c.info.IdentSymbols[id] = sym

	symbol := c.table.Symbol(sym)
	if !symbol.Initialized {
		c.warnAt(diag.SemaUninitializedUse, span,
			"variable '"+c.name(data.Name)+"' may be used before it is assigned")
	}
	return symbol.Type
}

func (c *Checker) typeLiteral(id ast.ExprID) types.Kind {
	data, _ := c.builder.Exprs.Literal(id)
	switch data.Kind {
	case ast.LitInt:
		return types.Int
	case ast.LitFloat:
		return types.Float
	case ast.LitString:
		return types.String
	case ast.LitBool:
		return types.Bool
	default:
		return types.Invalid
	}
}

func (c *Checker) typeUnary(id ast.ExprID) types.Kind {
	data, _ := c.builder.Exprs.Unary(id)
	operand := c.typeExpr(data.Operand)
	if operand == types.Invalid {
		return types.Invalid
	}
	span := c.builder.Exprs.Get(id).Span

	switch data.Op {
	case ast.UnaryNeg:
		if !operand.IsNumeric() {
			c.errAt(diag.SemaInvalidUnaryOp, span,
				"unary '-' requires a numeric operand, got "+operand.Describe())
			return types.Invalid
		}
		return operand
	case ast.UnaryNot:
		if operand != types.Bool {
			c.errAt(diag.SemaInvalidUnaryOp, span,
				"unary '!' requires a flag (bool) operand, got "+operand.Describe())
			return types.Invalid
		}
		return types.Bool
	default:
		return types.Invalid
	}
}

func (c *Checker) typeBinary(id ast.ExprID) types.Kind {
	data, _ := c.builder.Exprs.Binary(id)
	left := c.typeExpr(data.Left)
	right := c.typeExpr(data.Right)
	if left == types.Invalid || right == types.Invalid {
		return types.Invalid
	}
	span := c.builder.Exprs.Get(id).Span

	invalid := func() types.Kind {
		c.errAt(diag.SemaInvalidBinaryOp, span,
			"operator '"+data.Op.String()+"' is not defined for "+left.Describe()+" and "+right.Describe())
		return types.Invalid
	}

	switch data.Op {
	case ast.BinAdd:
		// '+' doubles as string concatenation
		if left == types.String && right == types.String {
			return types.String
		}
		if widened, ok := types.Widen(left, right); ok {
			return widened
		}
		return invalid()

	case ast.BinSub, ast.BinMul, ast.BinDiv, ast.BinMod:
		if widened, ok := types.Widen(left, right); ok {
			return widened
		}
		return invalid()

	case ast.BinEq, ast.BinNotEq:
		if types.Comparable(left, right) {
			return types.Bool
		}
		return invalid()

	case ast.BinLt, ast.BinLtEq, ast.BinGt, ast.BinGtEq:
		if types.Ordered(left, right) {
			return types.Bool
		}
		return invalid()

	case ast.BinAnd, ast.BinOr:
		if left == types.Bool && right == types.Bool {
			return types.Bool
		}
		return invalid()

	default:
		return types.Invalid
	}
}
