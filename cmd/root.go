/*
File    : zoe/cmd/root.go
Author  : the zoe project
License : MIT
*/

// Package cmd wires the cobra command tree for the zoe CLI: a bare root
// command that drops into the REPL or runs a single file, a `run`
// subcommand for the same file mode, and a `version` subcommand. Grounded
// on the cobra-based CLI layout found elsewhere in the reference pack
// (root.go/run.go/version.go), since the language reference's CLI surface
// (zero args → REPL, one arg → file, more args → usage error) maps cleanly
// onto cobra's own argument-count validation.
package cmd

import (
	"os"

	"github.com/akashmaji946/zoe/file"
	"github.com/akashmaji946/zoe/repl"
	"github.com/spf13/cobra"
)

const (
	banner  = "zoe — a small dynamically-typed scripting language"
	version = "0.1.0"
	author  = "the zoe project"
	license = "MIT"
)

var rootCmd = &cobra.Command{
	Use:   "zoe [file]",
	Short: "Interpreter for the zoe language",
	Long: `zoe is a tree-walking interpreter for a small dynamically-typed
imperative scripting language.

Run with no arguments to start an interactive REPL, or pass a single
source file to interpret it and exit.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return runFileAndExit(args[0])
		}
		repl.New(banner, version, author, license).Start(os.Stdin, os.Stdout)
		return nil
	},
}

// Execute runs the root command; its error (if any) should be reported and
// turned into a non-zero exit by the caller.
func Execute() error {
	return rootCmd.Execute()
}

func runFileAndExit(path string) error {
	if !file.Run(path) {
		os.Exit(1)
	}
	return nil
}
