/*
File    : zoe/eval/evaluator.go
Author  : the zoe project
License : MIT
*/

// Package eval is the tree-walking evaluator: it consumes an AST (package
// parser) plus a scope (package environment) and produces either a runtime
// value or a diagnostic. Non-local return is implemented as a sentinel
// value threaded through the ordinary return channel of every eval*
// function, grounded on the existing evaluator's IsError/ReturnValue
// propagation idiom but expressed as Go's (value, error)-shaped return
// instead of a value-encoded error variant.
package eval

import (
	"math/big"

	"github.com/akashmaji946/zoe/diag"
	"github.com/akashmaji946/zoe/environment"
	"github.com/akashmaji946/zoe/function"
	"github.com/akashmaji946/zoe/parser"
	"github.com/akashmaji946/zoe/value"
)

// maxCallDepth bounds nested Call activations so runaway recursion surfaces
// as a runtime diagnostic instead of a host stack overflow.
const maxCallDepth = 2000

// Evaluator walks an AST. It carries no scope of its own — every Eval*
// method is given the scope to evaluate against — so one Evaluator can be
// reused across REPL lines against a persistent root scope.
type Evaluator struct {
	callDepth int
}

// New creates an Evaluator.
func New() *Evaluator {
	return &Evaluator{}
}

// returnSignal wraps a value that is unwinding out of a function body via
// `return`. It implements value.Value purely so it can travel through the
// same return channel as an ordinary result; callers must not let it escape
// past the Call that introduced the activation (enforced in evalCall).
type returnSignal struct {
	value.Value
	Position parser.Position
}

// Run evaluates a whole program against env, returning the value of the
// last statement (used by the REPL; ignored in file mode) or the first
// diagnostic encountered.
func (ev *Evaluator) Run(prog *parser.Program, env *environment.Environment) (value.Value, *diag.Diagnostic) {
	result, d := ev.evalStatements(prog.Statements, env)
	if d != nil {
		return nil, d
	}
	if rs, ok := result.(*returnSignal); ok {
		// `return` unwinding past the outermost call: there is no enclosing
		// function activation left to catch it, so it is a runtime error
		// rather than a value to hand back to the caller.
		return nil, posError(rs.Position, "return used outside of a function")
	}
	return result, d
}

func posError(pos parser.Position, format string, args ...any) *diag.Diagnostic {
	return diag.Newf(diag.Eval, pos.Line, pos.Column, format, args...)
}

func (ev *Evaluator) evalStatements(stmts []parser.Statement, env *environment.Environment) (value.Value, *diag.Diagnostic) {
	var result value.Value = value.Nil
	for _, stmt := range stmts {
		v, d := ev.evalStatement(stmt, env)
		if d != nil {
			return nil, d
		}
		result = v
		if _, ok := v.(*returnSignal); ok {
			return v, nil
		}
	}
	return result, nil
}

func (ev *Evaluator) evalStatement(stmt parser.Statement, env *environment.Environment) (value.Value, *diag.Diagnostic) {
	switch n := stmt.(type) {
	case *parser.VarStatement:
		v, d := ev.evalExpression(n.Value, env)
		if d != nil {
			return nil, d
		}
		if err := env.Declare(n.Name, v); err != nil {
			return nil, posError(n.Position, "%s", err.Error())
		}
		return v, nil

	case *parser.ExpressionStatement:
		return ev.evalExpression(n.Expr, env)

	case *parser.BlockStatement:
		return ev.evalBlock(n, env)

	case *parser.IfStatement:
		return ev.evalIf(n, env)

	case *parser.ReturnStatement:
		var v value.Value = value.Nil
		if n.Value != nil {
			var d *diag.Diagnostic
			v, d = ev.evalExpression(n.Value, env)
			if d != nil {
				return nil, d
			}
		}
		return &returnSignal{Value: v, Position: n.Position}, nil

	default:
		return nil, posError(stmt.Pos(), "unsupported statement")
	}
}

// evalBlock creates a fresh child scope of env and evaluates the block's
// statements in it.
func (ev *Evaluator) evalBlock(n *parser.BlockStatement, env *environment.Environment) (value.Value, *diag.Diagnostic) {
	child := environment.New(env)
	result, d := ev.evalStatements(n.Statements, child)
	if d != nil {
		return nil, d
	}
	if _, ok := result.(*returnSignal); ok {
		return result, nil
	}
	return value.Nil, nil
}

func (ev *Evaluator) evalIf(n *parser.IfStatement, env *environment.Environment) (value.Value, *diag.Diagnostic) {
	for _, clause := range n.Clauses {
		cond, d := ev.evalExpression(clause.Condition, env)
		if d != nil {
			return nil, d
		}
		b, ok := cond.(*value.Boolean)
		if !ok {
			return nil, posError(clause.Condition.Pos(), "if condition must be a Boolean, got %s", cond.Type())
		}
		if b.Value {
			return ev.evalBlock(clause.Body, env)
		}
	}
	if n.Else != nil {
		return ev.evalBlock(n.Else, env)
	}
	return value.Nil, nil
}

func (ev *Evaluator) evalExpression(expr parser.Expression, env *environment.Environment) (value.Value, *diag.Diagnostic) {
	switch n := expr.(type) {
	case *parser.IntegerLiteral:
		return value.NewIntegerFromBig(new(big.Int).Set(n.Value)), nil
	case *parser.FloatLiteral:
		return value.NewFloat(n.Value), nil
	case *parser.StringLiteral:
		return value.NewString(n.Value), nil
	case *parser.BooleanLiteral:
		return value.NewBoolean(n.Value), nil
	case *parser.NullLiteral:
		return value.Nil, nil

	case *parser.Identifier:
		v, ok := env.Lookup(n.Name)
		if !ok {
			return nil, posError(n.Position, "undefined variable `%s`", n.Name)
		}
		return v, nil

	case *parser.ObjectLiteral:
		obj := value.NewObject()
		for _, prop := range n.Properties {
			var v value.Value
			if prop.Value != nil {
				var d *diag.Diagnostic
				v, d = ev.evalExpression(prop.Value, env)
				if d != nil {
					return nil, d
				}
			} else {
				var ok bool
				v, ok = env.Lookup(prop.Name)
				if !ok {
					return nil, posError(n.Position, "undefined variable `%s`", prop.Name)
				}
			}
			obj.Set(prop.Name, v)
		}
		return obj, nil

	case *parser.FunctionLiteral:
		return function.New(n.Params, n.Body, env), nil

	case *parser.BinaryExpression:
		return ev.evalBinary(n, env)

	case *parser.UnaryExpression:
		return ev.evalUnary(n, env)

	case *parser.AssignmentExpression:
		return ev.evalAssignment(n, env)

	case *parser.MemberExpression:
		return ev.evalMember(n, env)

	case *parser.SubscriptExpression:
		return ev.evalSubscriptRead(n, env)

	case *parser.CallExpression:
		return ev.evalCall(n, env)

	default:
		return nil, posError(expr.Pos(), "unsupported expression")
	}
}
