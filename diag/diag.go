/*
File    : zoe/diag/diag.go
Author  : the zoe project
License : MIT
*/

// Package diag defines the single diagnostic shape shared by the lexer,
// parser, and evaluator, so every phase reports failures the same way.
package diag

import "fmt"

// Phase identifies which stage of the pipeline produced a Diagnostic.
type Phase string

const (
	Lex   Phase = "lex"
	Parse Phase = "parse"
	Eval  Phase = "eval"
)

// Diagnostic is a single reported failure. Position is optional: runtime
// diagnostics that cannot be tied to a source location leave HasPosition
// false.
type Diagnostic struct {
	Phase       Phase
	Message     string
	Line        int
	Column      int
	HasPosition bool
}

// New builds a Diagnostic with no known source position.
func New(phase Phase, format string, args ...any) *Diagnostic {
	return &Diagnostic{Phase: phase, Message: fmt.Sprintf(format, args...)}
}

// Newf builds a Diagnostic carrying a source position.
func Newf(phase Phase, line, column int, format string, args ...any) *Diagnostic {
	return &Diagnostic{
		Phase:       phase,
		Message:     fmt.Sprintf(format, args...),
		Line:        line,
		Column:      column,
		HasPosition: true,
	}
}

// Error renders the diagnostic in the mandatory "error: ..." single-line
// format, with position appended when known.
func (d *Diagnostic) Error() string {
	if d == nil {
		return ""
	}
	if d.HasPosition {
		return fmt.Sprintf("error: %s (line %d, column %d)", d.Message, d.Line, d.Column)
	}
	return fmt.Sprintf("error: %s", d.Message)
}
