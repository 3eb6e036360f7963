/*
File    : zoe/value/value.go
Author  : the zoe project
License : MIT
*/

// Package value implements the runtime value model: the tagged sum of
// Null, Boolean, Integer, Float, String, Object, and HostFunction described
// in the language reference. Function lives in a sibling package (see
// github.com/akashmaji946/zoe/function) so that closures can reference an
// environment and an AST block without value importing either.
package value

import (
	"fmt"
	"math/big"
	"strings"
)

// Value is the interface every runtime variant implements. Type returns a
// short discriminator ("null", "boolean", "integer", ...); String renders
// the value per the language's stringification rules.
type Value interface {
	Type() string
	String() string
}

// Type discriminator constants, used for equality/dispatch checks that need
// to compare kinds without a type switch.
const (
	TypeNull         = "null"
	TypeBoolean      = "boolean"
	TypeInteger      = "integer"
	TypeFloat        = "float"
	TypeString       = "string"
	TypeObject       = "object"
	TypeFunction     = "function"
	TypeHostFunction = "host-function"
)

// Null is the singleton null value. All null values compare equal; there is
// exactly one instance, Nil.
type Null struct{}

// Nil is the single Null instance. Callers never construct Null directly.
var Nil = &Null{}

func (*Null) Type() string   { return TypeNull }
func (*Null) String() string { return "nil" }

// Boolean wraps a bool. Booleans are copied on assignment, not shared.
type Boolean struct {
	Value bool
}

func NewBoolean(b bool) *Boolean { return &Boolean{Value: b} }

func (b *Boolean) Type() string { return TypeBoolean }
func (b *Boolean) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// Integer is an arbitrary-precision signed integer, backed by math/big
// since no third-party big-integer library appears anywhere in the
// reference pack for this domain.
type Integer struct {
	Value *big.Int
}

func NewInteger(i int64) *Integer { return &Integer{Value: big.NewInt(i)} }

func NewIntegerFromBig(i *big.Int) *Integer { return &Integer{Value: i} }

func (i *Integer) Type() string   { return TypeInteger }
func (i *Integer) String() string { return i.Value.String() }

// Float is an IEEE-754 double.
type Float struct {
	Value float64
}

func NewFloat(f float64) *Float { return &Float{Value: f} }

func (f *Float) Type() string { return TypeFloat }
func (f *Float) String() string {
	s := fmt.Sprintf("%g", f.Value)
	// %g drops the fractional part for whole-valued floats (e.g. "3" for
	// 3.0); the language requires a visible ".0" in that case.
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// String is a mutable byte buffer, always held behind a pointer so that
// assignment copies the handle and not the bytes: aliases observe each
// other's subscript mutations, matching the shared-by-reference semantics
// every other reference type in this package needs.
type String struct {
	Bytes []byte
}

func NewString(s string) *String { return &String{Bytes: []byte(s)} }

func (s *String) Type() string   { return TypeString }
func (s *String) String() string { return string(s.Bytes) }

// Len returns the byte length of the buffer (strings are byte sequences,
// not code-point sequences).
func (s *String) Len() int { return len(s.Bytes) }

// Object is an insertion-ordered mapping from string keys to values, shared
// by reference like String. Keys tracks insertion order separately from the
// map so that iteration (printing, in particular) is deterministic.
type Object struct {
	Keys   []string
	Fields map[string]Value
}

func NewObject() *Object {
	return &Object{Fields: make(map[string]Value)}
}

func (o *Object) Type() string { return TypeObject }

// Get looks up a field by name.
func (o *Object) Get(name string) (Value, bool) {
	v, ok := o.Fields[name]
	return v, ok
}

// Set inserts or overwrites a field, recording new keys in insertion order.
func (o *Object) Set(name string, v Value) {
	if _, exists := o.Fields[name]; !exists {
		o.Keys = append(o.Keys, name)
	}
	o.Fields[name] = v
}

// String renders "{ k1: v1, k2: v2 }" in insertion order, descending into
// nested objects with a recursion cap rather than true cycle detection
// (Open Question in the language reference; see the design ledger).
func (o *Object) String() string {
	return o.stringDepth(0)
}

// maxPrintDepth bounds object-printing recursion; reaching it prints a
// placeholder instead of walking further, standing in for real cycle
// detection for the common case of accidental self-reference.
const maxPrintDepth = 64

func (o *Object) stringDepth(depth int) string {
	if depth >= maxPrintDepth {
		return "{ ... }"
	}
	if len(o.Keys) == 0 {
		return "{}"
	}
	var b strings.Builder
	b.WriteString("{ ")
	for i, k := range o.Keys {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k)
		b.WriteString(": ")
		if nested, ok := o.Fields[k].(*Object); ok {
			b.WriteString(nested.stringDepth(depth + 1))
		} else {
			b.WriteString(o.Fields[k].String())
		}
	}
	b.WriteString(" }")
	return b.String()
}

// HostFunction is an opaque host-provided callable. Fn receives the already
// -evaluated argument list and returns either a result value or a
// diagnostic; the diag type is carried as `error` here to keep this package
// free of a dependency on the diag package's concrete type while remaining
// substitutable with it (diag.Diagnostic implements error).
type HostFunction struct {
	Name string
	Fn   func(args []Value) (Value, error)
}

func (h *HostFunction) Type() string   { return TypeHostFunction }
func (h *HostFunction) String() string { return "[JavaScript Function]" }

// Equal implements reference/value equality for ==/!=: value-equality for
// the value-like variants, reference identity for the shared variants.
func Equal(a, b Value) bool {
	if a.Type() != b.Type() {
		return false
	}
	switch av := a.(type) {
	case *Null:
		return true
	case *Boolean:
		return av.Value == b.(*Boolean).Value
	case *Integer:
		return av.Value.Cmp(b.(*Integer).Value) == 0
	case *Float:
		return av.Value == b.(*Float).Value
	case *String:
		return av == b.(*String)
	case *Object:
		return av == b.(*Object)
	case *HostFunction:
		return av == b.(*HostFunction)
	default:
		// Function (defined in the function package) and any other
		// reference type: compare by interface identity.
		return a == b
	}
}
