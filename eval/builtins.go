/*
File    : zoe/eval/builtins.go
Author  : the zoe project
License : MIT
*/

package eval

import (
	"fmt"
	"io"

	"github.com/akashmaji946/zoe/environment"
	"github.com/akashmaji946/zoe/value"
)

// NewRootEnvironment builds the root scope with the three host builtins
// preloaded as ordinary bindings, per the language reference's "install
// them into the root scope at startup" design note. `strings.len` is not a
// special call form: `strings` is preloaded as an ordinary Object holding a
// `len` field bound to a HostFunction, so `strings.len(s)` is evaluated by
// the same Member-then-Call machinery user code goes through.
func NewRootEnvironment(out io.Writer) *environment.Environment {
	root := environment.New(nil)

	root.Declare("print", &value.HostFunction{Name: "print", Fn: printBuiltin(out)})
	root.Declare("panic", &value.HostFunction{Name: "panic", Fn: panicBuiltin})

	stringsModule := value.NewObject()
	stringsModule.Set("len", &value.HostFunction{Name: "strings.len", Fn: stringsLenBuiltin})
	root.Declare("strings", stringsModule)

	return root
}

func printBuiltin(out io.Writer) func([]value.Value) (value.Value, error) {
	return func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("print expects exactly one argument, got %d", len(args))
		}
		fmt.Fprintln(out, args[0].String())
		return value.Nil, nil
	}
}

// panicBuiltin stringifies its argument and surfaces it as the error that
// becomes a fatal diagnostic at the Call boundary.
func panicBuiltin(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("panic expects exactly one argument, got %d", len(args))
	}
	return nil, fmt.Errorf("%s", args[0].String())
}

func stringsLenBuiltin(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("strings.len expects exactly one argument, got %d", len(args))
	}
	s, ok := args[0].(*value.String)
	if !ok {
		return nil, fmt.Errorf("strings.len expects a String argument, got %s", args[0].Type())
	}
	return value.NewInteger(int64(s.Len())), nil
}
