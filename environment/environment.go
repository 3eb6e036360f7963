/*
File    : zoe/environment/environment.go
Author  : the zoe project
License : MIT
*/

// Package environment implements the lexical scope chain: frames that hold
// name-to-value bindings and an optional parent frame, grounded on the
// existing scope package's parent-link shape but trimmed to the single
// `var` binding kind the language has (no const/let bookkeeping).
package environment

import (
	"fmt"

	"github.com/akashmaji946/zoe/value"
)

// Environment is a single scope frame.
type Environment struct {
	vars   map[string]value.Value
	parent *Environment
}

// New allocates an empty frame with an optional parent link. Passing nil
// creates the root frame.
func New(parent *Environment) *Environment {
	return &Environment{vars: make(map[string]value.Value), parent: parent}
}

// Declare inserts name into this frame. Redeclaring a name already present
// in this exact frame is an error; shadowing a parent frame's binding is
// allowed and simply creates a new, closer binding.
func (e *Environment) Declare(name string, v value.Value) error {
	if _, exists := e.vars[name]; exists {
		return fmt.Errorf("identifier redeclared: %s", name)
	}
	e.vars[name] = v
	return nil
}

// Lookup walks the parent chain and returns the first binding found.
func (e *Environment) Lookup(name string) (value.Value, bool) {
	for frame := e; frame != nil; frame = frame.parent {
		if v, ok := frame.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Assign walks the parent chain and overwrites the first existing binding.
// It never creates a new binding; it reports whether one was found.
func (e *Environment) Assign(name string, v value.Value) bool {
	for frame := e; frame != nil; frame = frame.parent {
		if _, ok := frame.vars[name]; ok {
			frame.vars[name] = v
			return true
		}
	}
	return false
}
