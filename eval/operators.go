/*
File    : zoe/eval/operators.go
Author  : the zoe project
License : MIT
*/

package eval

import (
	"math"
	"math/big"

	"github.com/akashmaji946/zoe/diag"
	"github.com/akashmaji946/zoe/environment"
	"github.com/akashmaji946/zoe/parser"
	"github.com/akashmaji946/zoe/value"
)

func typeMismatch(pos parser.Position, op parser.BinaryOp, left, right value.Value) *diag.Diagnostic {
	return posError(pos, "operand type mismatch for `%s`: %s and %s", op, left.Type(), right.Type())
}

func (ev *Evaluator) evalBinary(n *parser.BinaryExpression, env *environment.Environment) (value.Value, *diag.Diagnostic) {
	left, d := ev.evalExpression(n.Left, env)
	if d != nil {
		return nil, d
	}
	right, d := ev.evalExpression(n.Right, env)
	if d != nil {
		return nil, d
	}

	switch n.Op {
	case parser.OpAnd, parser.OpOr:
		lb, lok := left.(*value.Boolean)
		rb, rok := right.(*value.Boolean)
		if !lok || !rok {
			return nil, typeMismatch(n.Position, n.Op, left, right)
		}
		if n.Op == parser.OpAnd {
			return value.NewBoolean(lb.Value && rb.Value), nil
		}
		return value.NewBoolean(lb.Value || rb.Value), nil

	case parser.OpEq:
		return value.NewBoolean(value.Equal(left, right)), nil
	case parser.OpNeq:
		return value.NewBoolean(!value.Equal(left, right)), nil

	case parser.OpLt, parser.OpGt:
		return ev.evalRelational(n, left, right)

	case parser.OpAdd:
		return ev.evalAdd(n, left, right)

	case parser.OpSub, parser.OpMul, parser.OpDiv, parser.OpMod:
		return ev.evalArith(n, left, right)
	}

	return nil, posError(n.Position, "unsupported operator `%s`", n.Op)
}

func (ev *Evaluator) evalRelational(n *parser.BinaryExpression, left, right value.Value) (value.Value, *diag.Diagnostic) {
	switch l := left.(type) {
	case *value.Integer:
		r, ok := right.(*value.Integer)
		if !ok {
			return nil, typeMismatch(n.Position, n.Op, left, right)
		}
		cmp := l.Value.Cmp(r.Value)
		return value.NewBoolean(cmpResult(n.Op, cmp)), nil
	case *value.Float:
		r, ok := right.(*value.Float)
		if !ok {
			return nil, typeMismatch(n.Position, n.Op, left, right)
		}
		switch {
		case l.Value < r.Value:
			return value.NewBoolean(cmpResult(n.Op, -1)), nil
		case l.Value > r.Value:
			return value.NewBoolean(cmpResult(n.Op, 1)), nil
		default:
			return value.NewBoolean(cmpResult(n.Op, 0)), nil
		}
	default:
		return nil, posError(n.Position, "`%s` requires two Integers or two Floats, got %s", n.Op, left.Type())
	}
}

func cmpResult(op parser.BinaryOp, cmp int) bool {
	if op == parser.OpLt {
		return cmp < 0
	}
	return cmp > 0
}

func (ev *Evaluator) evalAdd(n *parser.BinaryExpression, left, right value.Value) (value.Value, *diag.Diagnostic) {
	switch l := left.(type) {
	case *value.Integer:
		r, ok := right.(*value.Integer)
		if !ok {
			return nil, typeMismatch(n.Position, n.Op, left, right)
		}
		return value.NewIntegerFromBig(new(big.Int).Add(l.Value, r.Value)), nil
	case *value.Float:
		r, ok := right.(*value.Float)
		if !ok {
			return nil, typeMismatch(n.Position, n.Op, left, right)
		}
		return value.NewFloat(l.Value + r.Value), nil
	case *value.String:
		r, ok := right.(*value.String)
		if !ok {
			return nil, typeMismatch(n.Position, n.Op, left, right)
		}
		buf := make([]byte, 0, l.Len()+r.Len())
		buf = append(buf, l.Bytes...)
		buf = append(buf, r.Bytes...)
		return &value.String{Bytes: buf}, nil
	default:
		return nil, posError(n.Position, "`+` requires two Integers, two Floats, or two Strings, got %s", left.Type())
	}
}

func (ev *Evaluator) evalArith(n *parser.BinaryExpression, left, right value.Value) (value.Value, *diag.Diagnostic) {
	switch l := left.(type) {
	case *value.Integer:
		r, ok := right.(*value.Integer)
		if !ok {
			return nil, typeMismatch(n.Position, n.Op, left, right)
		}
		switch n.Op {
		case parser.OpSub:
			return value.NewIntegerFromBig(new(big.Int).Sub(l.Value, r.Value)), nil
		case parser.OpMul:
			return value.NewIntegerFromBig(new(big.Int).Mul(l.Value, r.Value)), nil
		case parser.OpDiv:
			if r.Value.Sign() == 0 {
				return nil, posError(n.Position, "division by zero")
			}
			return value.NewIntegerFromBig(new(big.Int).Quo(l.Value, r.Value)), nil
		case parser.OpMod:
			if r.Value.Sign() == 0 {
				return nil, posError(n.Position, "division by zero")
			}
			return value.NewIntegerFromBig(new(big.Int).Rem(l.Value, r.Value)), nil
		}
	case *value.Float:
		r, ok := right.(*value.Float)
		if !ok {
			return nil, typeMismatch(n.Position, n.Op, left, right)
		}
		switch n.Op {
		case parser.OpSub:
			return value.NewFloat(l.Value - r.Value), nil
		case parser.OpMul:
			return value.NewFloat(l.Value * r.Value), nil
		case parser.OpDiv:
			if r.Value == 0 {
				return nil, posError(n.Position, "division by zero")
			}
			return value.NewFloat(l.Value / r.Value), nil
		case parser.OpMod:
			if r.Value == 0 {
				return nil, posError(n.Position, "division by zero")
			}
			return value.NewFloat(math.Mod(l.Value, r.Value)), nil
		}
	}
	return nil, posError(n.Position, "`%s` requires two Integers or two Floats, got %s", n.Op, left.Type())
}

func (ev *Evaluator) evalUnary(n *parser.UnaryExpression, env *environment.Environment) (value.Value, *diag.Diagnostic) {
	operand, d := ev.evalExpression(n.Operand, env)
	if d != nil {
		return nil, d
	}
	switch n.Op {
	case parser.OpNot:
		b, ok := operand.(*value.Boolean)
		if !ok {
			return nil, posError(n.Position, "`!` requires a Boolean, got %s", operand.Type())
		}
		return value.NewBoolean(!b.Value), nil
	case parser.OpNeg:
		switch o := operand.(type) {
		case *value.Integer:
			return value.NewIntegerFromBig(new(big.Int).Neg(o.Value)), nil
		case *value.Float:
			return value.NewFloat(-o.Value), nil
		default:
			return nil, posError(n.Position, "unary `-` requires an Integer or Float, got %s", operand.Type())
		}
	}
	return nil, posError(n.Position, "unsupported unary operator `%s`", n.Op)
}
