/*
File    : zoe/eval/eval_test.go
Author  : the zoe project
License : MIT
*/

package eval

import (
	"bytes"
	"testing"

	"github.com/akashmaji946/zoe/diag"
	"github.com/akashmaji946/zoe/lexer"
	"github.com/akashmaji946/zoe/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run lexes, parses, and evaluates src against a fresh root scope, returning
// everything printed via `print` and the runtime diagnostic, if any. A lex or
// parse diagnostic fails the test instead of being returned.
func run(t *testing.T, src string) (string, *diag.Diagnostic) {
	t.Helper()
	tokens, lexDiags := lexer.Lex(src)
	require.Empty(t, lexDiags)

	prog, parseDiags := parser.Parse(tokens)
	require.Empty(t, parseDiags)

	var out bytes.Buffer
	env := NewRootEnvironment(&out)
	_, d := New().Run(prog, env)
	return out.String(), d
}

func TestSeedArithmeticPrecedence(t *testing.T) {
	out, d := run(t, `var x = 1 + 2 * 3; print(x);`)
	require.Nil(t, d)
	assert.Equal(t, "7\n", out)
}

func TestSeedClosureCapture(t *testing.T) {
	out, d := run(t, `
		var make = fn (n) { return fn () { n = n + 1; return n; }; };
		var c = make(10);
		print(c());
		print(c());
		print(c());
	`)
	require.Nil(t, d)
	assert.Equal(t, "11\n12\n13\n", out)
}

func TestSeedObjectMutationThroughAlias(t *testing.T) {
	out, d := run(t, `
		var a = { x: 1 };
		var b = a;
		b.x = 42;
		print(a.x);
	`)
	require.Nil(t, d)
	assert.Equal(t, "42\n", out)
}

func TestSeedStringByteOps(t *testing.T) {
	out, d := run(t, `
		var s = "hi";
		print(strings.len(s));
		s[0] = 72;
		print(s);
	`)
	require.Nil(t, d)
	assert.Equal(t, "2\nHi\n", out)
}

func TestSeedNonLocalReturn(t *testing.T) {
	out, d := run(t, `
		var f = fn (n) { if n < 0 { return 0; } return n * 2; };
		print(f(-1));
		print(f(5));
	`)
	require.Nil(t, d)
	assert.Equal(t, "0\n10\n", out)
}

func TestSeedTypeErrorDiagnostic(t *testing.T) {
	_, d := run(t, `print(1 + "x");`)
	require.NotNil(t, d)
	assert.Contains(t, d.Error(), "error:")
}

func TestFloatStringificationShowsTrailingPointZero(t *testing.T) {
	out, d := run(t, `print(3.0); print(3.5);`)
	require.Nil(t, d)
	assert.Equal(t, "3.0\n3.5\n", out)
}

func TestObjectStringification(t *testing.T) {
	out, d := run(t, `print({ a: 1, b: 2 }); print({});`)
	require.Nil(t, d)
	assert.Equal(t, "{ a: 1, b: 2 }\n{}\n", out)
}

func TestFunctionAndHostFunctionStringification(t *testing.T) {
	out, d := run(t, `var f = fn () {}; print(f); print(strings.len);`)
	require.Nil(t, d)
	assert.Equal(t, "[Zoe Function]\n[JavaScript Function]\n", out)
}

func TestAndOrDoNotShortCircuit(t *testing.T) {
	out, d := run(t, `
		var calls = { n: 0 };
		var bump = fn () { calls.n = calls.n + 1; return true; };
		var x = false and bump();
		print(calls.n);
	`)
	require.Nil(t, d)
	assert.Equal(t, "1\n", out)
}

func TestDivisionByZero(t *testing.T) {
	_, d := run(t, `print(1 / 0);`)
	require.NotNil(t, d)
	assert.Contains(t, d.Message, "division by zero")

	_, d = run(t, `print(1 % 0);`)
	require.NotNil(t, d)
	assert.Contains(t, d.Message, "division by zero")
}

func TestUndefinedVariable(t *testing.T) {
	_, d := run(t, `print(missing);`)
	require.NotNil(t, d)
	assert.Contains(t, d.Message, "undefined variable")
}

func TestArityMismatch(t *testing.T) {
	_, d := run(t, `var f = fn (a, b) { return a; }; f(1);`)
	require.NotNil(t, d)
	assert.Contains(t, d.Message, "argument")
}

func TestNonCallable(t *testing.T) {
	_, d := run(t, `var x = 1; x();`)
	require.NotNil(t, d)
	assert.Contains(t, d.Message, "not callable")
}

func TestSubscriptOutOfRange(t *testing.T) {
	_, d := run(t, `var s = "hi"; print(s[5]);`)
	require.NotNil(t, d)
	assert.Contains(t, d.Message, "out of range")
}

func TestSubscriptWriteOutOfByteRangeIsDiagnostic(t *testing.T) {
	_, d := run(t, `var s = "hi"; s[0] = 999;`)
	require.NotNil(t, d)
	assert.Contains(t, d.Message, "out of range")
}

func TestShadowingAcrossFrames(t *testing.T) {
	out, d := run(t, `
		var x = 1;
		if true {
			var x = 2;
			print(x);
		}
		print(x);
	`)
	require.Nil(t, d)
	assert.Equal(t, "2\n1\n", out)
}

func TestRedeclarationInSameFrameIsError(t *testing.T) {
	_, d := run(t, `var x = 1; var x = 2;`)
	require.NotNil(t, d)
}

func TestBareTopLevelReturnIsDiagnostic(t *testing.T) {
	_, d := run(t, `return 5;`)
	require.NotNil(t, d)
	assert.Contains(t, d.Message, "return used outside of a function")
}
