/*
File    : zoe/file/file.go
Author  : the zoe project
License : MIT
*/

// Package file implements the one-shot "interpret this file" CLI mode:
// lex, parse, evaluate, printing any diagnostic and reporting success as a
// boolean the caller turns into a process exit code.
package file

import (
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/zoe/eval"
	"github.com/akashmaji946/zoe/lexer"
	"github.com/akashmaji946/zoe/parser"
	"github.com/fatih/color"
)

var redColor = color.New(color.FgRed)

// Run reads path, interprets it with side effects written to stdout, and
// returns true on success. Any lex, parse, or runtime diagnostic is printed
// to stderr and causes a false return, per the CLI surface's "exit 0 on
// success, non-zero if any diagnostic occurred" rule.
func Run(path string) bool {
	src, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "error: %s\n", err.Error())
		return false
	}
	return RunSource(string(src), os.Stdout, os.Stderr)
}

// RunSource interprets src, writing program output to out and any
// diagnostics to errw. Split out from Run so it can be exercised directly
// in tests without touching the filesystem.
func RunSource(src string, out, errw io.Writer) bool {
	tokens, lexDiags := lexer.Lex(src)
	if len(lexDiags) > 0 {
		for _, d := range lexDiags {
			fmt.Fprintln(errw, d.Error())
		}
		return false
	}

	prog, parseDiags := parser.Parse(tokens)
	if len(parseDiags) > 0 {
		for _, d := range parseDiags {
			fmt.Fprintln(errw, d.Error())
		}
		return false
	}

	env := eval.NewRootEnvironment(out)
	if _, d := eval.New().Run(prog, env); d != nil {
		fmt.Fprintln(errw, d.Error())
		return false
	}
	return true
}
