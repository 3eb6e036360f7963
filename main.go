/*
File    : zoe/main.go
Author  : the zoe project
License : MIT
*/

package main

import (
	"fmt"
	"os"

	"github.com/akashmaji946/zoe/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
