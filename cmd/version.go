/*
File    : zoe/cmd/version.go
Author  : the zoe project
License : MIT
*/

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("zoe version %s\n", version)
		fmt.Printf("Author:  %s\n", author)
		fmt.Printf("License: %s\n", license)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
