/*
File    : zoe/function/function.go
Author  : the zoe project
License : MIT
*/

// Package function defines the Function runtime value: a closure pairing a
// parameter list and body block with the scope that was active when the
// literal was evaluated. It is kept separate from package value so that a
// closure can reference both the AST (package parser) and the environment
// (package environment) without package value importing either — which
// would be an import cycle, since environment imports value. Grounded on
// the equivalent separation in the existing
// function package, whose "reference the current scope, not a copy" closure
// semantics this package keeps unchanged.
package function

import (
	"github.com/akashmaji946/zoe/environment"
	"github.com/akashmaji946/zoe/parser"
)

// Function is a closure value: parameter names, body, and the captured
// environment. It implements value.Value structurally (Type/String) without
// importing that package.
type Function struct {
	Params []string
	Body   *parser.BlockStatement
	Env    *environment.Environment
}

func New(params []string, body *parser.BlockStatement, env *environment.Environment) *Function {
	return &Function{Params: params, Body: body, Env: env}
}

func (f *Function) Type() string   { return "function" }
func (f *Function) String() string { return "[Zoe Function]" }
