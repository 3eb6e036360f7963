/*
File    : zoe/cmd/run.go
Author  : the zoe project
License : MIT
*/

package cmd

import "github.com/spf13/cobra"

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Interpret a zoe source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFileAndExit(args[0])
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
