/*
File    : zoe/repl/repl.go
Author  : the zoe project
License : MIT
*/

// Package repl implements the Read-Eval-Print Loop: an interactive session
// that lexes, parses, and evaluates one line at a time against a scope that
// persists across lines, printing diagnostics and continuing rather than
// exiting. Grounded on the existing repl package's readline+color idiom,
// adapted to the `>` prompt the language reference mandates. The loop ends
// on EOF (Ctrl+D) or on a line reading `.exit`.
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/zoe/diag"
	"github.com/akashmaji946/zoe/environment"
	"github.com/akashmaji946/zoe/eval"
	"github.com/akashmaji946/zoe/lexer"
	"github.com/akashmaji946/zoe/parser"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// Prompt is the mandated REPL prompt.
const Prompt = "> "

// Repl holds the banner metadata shown at startup.
type Repl struct {
	Banner  string
	Version string
	Author  string
	License string
}

func New(banner, version, author, license string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, License: license}
}

func (r *Repl) printBanner(writer io.Writer) {
	if r.Banner != "" {
		cyanColor.Fprintln(writer, r.Banner)
	}
	cyanColor.Fprintf(writer, "zoe %s — %s\n", r.Version, r.Author)
	cyanColor.Fprintln(writer, "Type your code and press enter. Ctrl+D or '.exit' to quit.")
}

// Start runs the REPL against reader/writer until EOF or '.exit'. reader is
// accepted for interface symmetry with the file-mode driver but, like the
// readline library's own convention, is not used directly: readline reads
// from the terminal itself.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.printBanner(writer)

	rl, err := readline.New(Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	ev := eval.New()
	env := eval.NewRootEnvironment(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			return
		}
		rl.SaveHistory(line)

		r.evalLine(writer, line, ev, env)
	}
}

func (r *Repl) evalLine(writer io.Writer, line string, ev *eval.Evaluator, env *environment.Environment) {
	defer func() {
		if rec := recover(); rec != nil {
			redColor.Fprintf(writer, "error: internal error: %v\n", rec)
		}
	}()

	tokens, lexDiags := lexer.Lex(line)
	if len(lexDiags) > 0 {
		printDiagnostics(writer, lexDiags)
		return
	}

	prog, parseDiags := parser.Parse(tokens)
	if len(parseDiags) > 0 {
		printDiagnostics(writer, parseDiags)
		return
	}

	result, d := ev.Run(prog, env)
	if d != nil {
		redColor.Fprintln(writer, d.Error())
		return
	}
	if result != nil {
		yellowColor.Fprintln(writer, result.String())
	}
}

func printDiagnostics(writer io.Writer, diags []*diag.Diagnostic) {
	for _, d := range diags {
		redColor.Fprintln(writer, d.Error())
	}
}
