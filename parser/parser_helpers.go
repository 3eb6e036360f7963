/*
File    : zoe/parser/parser_helpers.go
Author  : the zoe project
License : MIT
*/

package parser

import "strconv"

func parseFloat(lit string) (float64, error) {
	return strconv.ParseFloat(lit, 64)
}
