/*
File    : zoe/eval/call.go
Author  : the zoe project
License : MIT
*/

package eval

import (
	"github.com/akashmaji946/zoe/diag"
	"github.com/akashmaji946/zoe/environment"
	"github.com/akashmaji946/zoe/function"
	"github.com/akashmaji946/zoe/parser"
	"github.com/akashmaji946/zoe/value"
)

func (ev *Evaluator) evalCall(n *parser.CallExpression, env *environment.Environment) (value.Value, *diag.Diagnostic) {
	callee, d := ev.evalExpression(n.Callee, env)
	if d != nil {
		return nil, d
	}

	args := make([]value.Value, 0, len(n.Args))
	for _, a := range n.Args {
		v, d := ev.evalExpression(a, env)
		if d != nil {
			return nil, d
		}
		args = append(args, v)
	}

	switch fn := callee.(type) {
	case *value.HostFunction:
		result, err := fn.Fn(args)
		if err != nil {
			if d, ok := err.(*diag.Diagnostic); ok {
				return nil, d
			}
			return nil, posError(n.Position, "%s", err.Error())
		}
		return result, nil

	case *function.Function:
		return ev.callFunction(n, fn, args)

	default:
		return nil, posError(n.Position, "non-function types are not callable: %s", callee.Type())
	}
}

func (ev *Evaluator) callFunction(n *parser.CallExpression, fn *function.Function, args []value.Value) (value.Value, *diag.Diagnostic) {
	if len(args) != len(fn.Params) {
		return nil, posError(n.Position, "function expects %d argument(s), got %d", len(fn.Params), len(args))
	}

	ev.callDepth++
	defer func() { ev.callDepth-- }()
	if ev.callDepth > maxCallDepth {
		return nil, posError(n.Position, "stack overflow")
	}

	// The new frame's parent is the closure's captured scope, not the
	// caller's scope: this is what makes scoping lexical rather than
	// dynamic. The body's statements run directly in this frame (no
	// further child scope), since the parameters *are* the body's
	// outermost bindings.
	callEnv := environment.New(fn.Env)
	for i, param := range fn.Params {
		if err := callEnv.Declare(param, args[i]); err != nil {
			return nil, posError(n.Position, "duplicate parameter name: %s", param)
		}
	}

	result, d := ev.evalStatements(fn.Body.Statements, callEnv)
	if d != nil {
		return nil, d
	}
	if rs, ok := result.(*returnSignal); ok {
		return rs.Value, nil
	}
	return value.Nil, nil
}
