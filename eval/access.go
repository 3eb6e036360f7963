/*
File    : zoe/eval/access.go
Author  : the zoe project
License : MIT
*/

package eval

import (
	"github.com/akashmaji946/zoe/diag"
	"github.com/akashmaji946/zoe/environment"
	"github.com/akashmaji946/zoe/parser"
	"github.com/akashmaji946/zoe/value"
)

func (ev *Evaluator) evalMember(n *parser.MemberExpression, env *environment.Environment) (value.Value, *diag.Diagnostic) {
	objv, d := ev.evalExpression(n.Object, env)
	if d != nil {
		return nil, d
	}
	obj, ok := objv.(*value.Object)
	if !ok {
		return nil, posError(n.Position, "member access requires an Object, got %s", objv.Type())
	}
	v, ok := obj.Get(n.Property)
	if !ok {
		return nil, posError(n.Position, "field `%s` not present", n.Property)
	}
	return v, nil
}

func (ev *Evaluator) evalSubscriptRead(n *parser.SubscriptExpression, env *environment.Environment) (value.Value, *diag.Diagnostic) {
	targetv, d := ev.evalExpression(n.Target, env)
	if d != nil {
		return nil, d
	}
	str, ok := targetv.(*value.String)
	if !ok {
		return nil, posError(n.Position, "subscript target must be a String, got %s", targetv.Type())
	}
	idxv, d := ev.evalExpression(n.Index, env)
	if d != nil {
		return nil, d
	}
	idx, ok := idxv.(*value.Integer)
	if !ok {
		return nil, posError(n.Position, "subscript index must be an Integer, got %s", idxv.Type())
	}
	if !idx.Value.IsInt64() {
		return nil, posError(n.Position, "index out of range")
	}
	i := idx.Value.Int64()
	if i < 0 || i >= int64(str.Len()) {
		return nil, posError(n.Position, "index out of range")
	}
	return value.NewInteger(int64(str.Bytes[i])), nil
}

func (ev *Evaluator) evalAssignment(n *parser.AssignmentExpression, env *environment.Environment) (value.Value, *diag.Diagnostic) {
	switch target := n.Target.(type) {
	case *parser.Identifier:
		v, d := ev.evalExpression(n.Value, env)
		if d != nil {
			return nil, d
		}
		if !env.Assign(target.Name, v) {
			return nil, posError(n.Position, "undefined variable `%s`", target.Name)
		}
		return v, nil

	case *parser.MemberExpression:
		objv, d := ev.evalExpression(target.Object, env)
		if d != nil {
			return nil, d
		}
		obj, ok := objv.(*value.Object)
		if !ok {
			return nil, posError(n.Position, "member assignment target must be an Object, got %s", objv.Type())
		}
		v, d := ev.evalExpression(n.Value, env)
		if d != nil {
			return nil, d
		}
		obj.Set(target.Property, v)
		return v, nil

	case *parser.SubscriptExpression:
		targetv, d := ev.evalExpression(target.Target, env)
		if d != nil {
			return nil, d
		}
		str, ok := targetv.(*value.String)
		if !ok {
			return nil, posError(n.Position, "subscript assignment target must be a String, got %s", targetv.Type())
		}
		idxv, d := ev.evalExpression(target.Index, env)
		if d != nil {
			return nil, d
		}
		idx, ok := idxv.(*value.Integer)
		if !ok {
			return nil, posError(n.Position, "subscript index must be an Integer, got %s", idxv.Type())
		}
		if !idx.Value.IsInt64() {
			return nil, posError(n.Position, "index out of range")
		}
		i := idx.Value.Int64()
		if i < 0 || i >= int64(str.Len()) {
			return nil, posError(n.Position, "index out of range")
		}
		v, d := ev.evalExpression(n.Value, env)
		if d != nil {
			return nil, d
		}
		bv, ok := v.(*value.Integer)
		if !ok {
			return nil, posError(n.Position, "subscript store requires an Integer, got %s", v.Type())
		}
		// Open Question: out-of-[0,255] subscript writes. This
		// implementation raises a diagnostic rather than truncating,
		// matching every other type-mismatch case's fail-loud posture.
		if !bv.Value.IsInt64() {
			return nil, posError(n.Position, "subscript store value out of range [0,255]")
		}
		bi := bv.Value.Int64()
		if bi < 0 || bi > 255 {
			return nil, posError(n.Position, "subscript store value out of range [0,255]")
		}
		str.Bytes[i] = byte(bi)
		return v, nil

	default:
		return nil, posError(n.Position, "invalid assignment target")
	}
}
