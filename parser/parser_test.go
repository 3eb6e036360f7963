/*
File    : zoe/parser/parser_test.go
Author  : the zoe project
License : MIT
*/

package parser

import (
	"testing"

	"github.com/akashmaji946/zoe/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) (*Program, []string) {
	t.Helper()
	tokens, lexDiags := lexer.Lex(src)
	require.Empty(t, lexDiags)
	prog, diags := Parse(tokens)
	var msgs []string
	for _, d := range diags {
		msgs = append(msgs, d.Error())
	}
	return prog, msgs
}

func TestParseArithmeticPrecedence(t *testing.T) {
	prog, diags := parse(t, "var x = 1 + 2 * 3;")
	require.Empty(t, diags)
	require.Len(t, prog.Statements, 1)
	v := prog.Statements[0].(*VarStatement)
	assert.Equal(t, "x", v.Name)

	add, ok := v.Value.(*BinaryExpression)
	require.True(t, ok)
	assert.Equal(t, OpAdd, add.Op)
	_, ok = add.Left.(*IntegerLiteral)
	require.True(t, ok)
	mul, ok := add.Right.(*BinaryExpression)
	require.True(t, ok)
	assert.Equal(t, OpMul, mul.Op)
}

func TestParseAssignmentIsRightAssociative(t *testing.T) {
	prog, diags := parse(t, "a = b = 1;")
	require.Empty(t, diags)
	stmt := prog.Statements[0].(*ExpressionStatement)
	outer, ok := stmt.Expr.(*AssignmentExpression)
	require.True(t, ok)
	assert.Equal(t, "a", outer.Target.(*Identifier).Name)
	inner, ok := outer.Value.(*AssignmentExpression)
	require.True(t, ok)
	assert.Equal(t, "b", inner.Target.(*Identifier).Name)
}

func TestParseInvalidAssignmentTargetIsError(t *testing.T) {
	_, diags := parse(t, "1 + 2 = 3;")
	require.NotEmpty(t, diags)
}

func TestParseIfElifElse(t *testing.T) {
	prog, diags := parse(t, `if a { 1; } elif b { 2; } else { 3; }`)
	require.Empty(t, diags)
	ifStmt := prog.Statements[0].(*IfStatement)
	require.Len(t, ifStmt.Clauses, 2)
	require.NotNil(t, ifStmt.Else)
}

func TestParseFunctionLiteralAndCall(t *testing.T) {
	prog, diags := parse(t, `var make = fn (n) { return n; }; make(10)();`)
	require.Empty(t, diags)
	require.Len(t, prog.Statements, 2)
	v := prog.Statements[0].(*VarStatement)
	fn, ok := v.Value.(*FunctionLiteral)
	require.True(t, ok)
	assert.Equal(t, []string{"n"}, fn.Params)

	exprStmt := prog.Statements[1].(*ExpressionStatement)
	outerCall, ok := exprStmt.Expr.(*CallExpression)
	require.True(t, ok)
	assert.Empty(t, outerCall.Args)
	innerCall, ok := outerCall.Callee.(*CallExpression)
	require.True(t, ok)
	require.Len(t, innerCall.Args, 1)
}

func TestParseMemberAndSubscript(t *testing.T) {
	prog, diags := parse(t, `a.b[0] = 1;`)
	require.Empty(t, diags)
	stmt := prog.Statements[0].(*ExpressionStatement)
	assign, ok := stmt.Expr.(*AssignmentExpression)
	require.True(t, ok)
	sub, ok := assign.Target.(*SubscriptExpression)
	require.True(t, ok)
	member, ok := sub.Target.(*MemberExpression)
	require.True(t, ok)
	assert.Equal(t, "b", member.Property)
}

func TestParseObjectLiteralShorthandAndOrder(t *testing.T) {
	prog, diags := parse(t, `var o = { x: 1, y };`)
	require.Empty(t, diags)
	v := prog.Statements[0].(*VarStatement)
	obj, ok := v.Value.(*ObjectLiteral)
	require.True(t, ok)
	require.Len(t, obj.Properties, 2)
	assert.Equal(t, "x", obj.Properties[0].Name)
	assert.NotNil(t, obj.Properties[0].Value)
	assert.Equal(t, "y", obj.Properties[1].Name)
	assert.Nil(t, obj.Properties[1].Value)
}

func TestParseErrorRecoverySynchronizes(t *testing.T) {
	prog, diags := parse(t, "var x = ; var y = 2;")
	require.NotEmpty(t, diags)
	// The parser should recover enough to still see the second statement.
	found := false
	for _, s := range prog.Statements {
		if vs, ok := s.(*VarStatement); ok && vs.Name == "y" {
			found = true
		}
	}
	assert.True(t, found, "parser should recover and parse statements after an error")
}

func TestParseMissingSemicolonRecovers(t *testing.T) {
	prog, diags := parse(t, "var x = 1 var y = 2;")
	require.NotEmpty(t, diags)
	assert.NotEmpty(t, prog.Statements)
}
