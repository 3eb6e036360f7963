/*
File    : zoe/lexer/lexer_test.go
Author  : the zoe project
License : MIT
*/

package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexPunctuationAndOperators(t *testing.T) {
	tokens, diags := Lex(`( ) { } [ ] , . ; : = == != < > + - * / % !`)
	require.Empty(t, diags)

	want := []TokenType{
		LPAREN, RPAREN, LBRACE, RBRACE, LBRACKET, RBRACKET, COMMA, DOT, SEMI,
		COLON, ASSIGN, EQ, NEQ, LT, GT, PLUS, MINUS, STAR, SLASH, PERCENT,
		BANG, EOF,
	}
	require.Len(t, tokens, len(want))
	for i, typ := range want {
		assert.Equal(t, typ, tokens[i].Type, "token %d", i)
	}
}

func TestLexKeywordsAndIdentifiers(t *testing.T) {
	tokens, diags := Lex(`var if elif else return fn true false nil and or foo_1`)
	require.Empty(t, diags)

	want := []TokenType{VAR, IF, ELIF, ELSE, RETURN, FN, TRUE, FALSE, NIL, AND, OR, IDENT, EOF}
	require.Len(t, tokens, len(want))
	for i, typ := range want {
		assert.Equal(t, typ, tokens[i].Type, "token %d", i)
	}
	assert.Equal(t, "foo_1", tokens[11].Literal)
}

func TestLexNumbers(t *testing.T) {
	tokens, diags := Lex(`1 22 3.14 0.5`)
	require.Empty(t, diags)
	require.Len(t, tokens, 5)
	assert.Equal(t, INT, tokens[0].Type)
	assert.Equal(t, "1", tokens[0].Literal)
	assert.Equal(t, INT, tokens[1].Type)
	assert.Equal(t, FLOAT, tokens[2].Type)
	assert.Equal(t, "3.14", tokens[2].Literal)
	assert.Equal(t, FLOAT, tokens[3].Type)
}

func TestLexStringEscapes(t *testing.T) {
	tokens, diags := Lex(`"hi\n\"there\"" "tab\there"`)
	require.Empty(t, diags)
	require.Len(t, tokens, 3)
	assert.Equal(t, "hi\n\"there\"", tokens[0].Literal)
	assert.Equal(t, "tab\there", tokens[1].Literal)
}

func TestLexComment(t *testing.T) {
	tokens, diags := Lex("1 // a comment\n2")
	require.Empty(t, diags)
	require.Len(t, tokens, 3)
	assert.Equal(t, "1", tokens[0].Literal)
	assert.Equal(t, "2", tokens[1].Literal)
}

func TestLexUnrecognisedByteRecordsDiagnosticAndContinues(t *testing.T) {
	tokens, diags := Lex("1 @ 2")
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Error(), "error:")
	require.Len(t, tokens, 3)
	assert.Equal(t, "1", tokens[0].Literal)
	assert.Equal(t, "2", tokens[1].Literal)
}

func TestLexUnterminatedString(t *testing.T) {
	_, diags := Lex(`"unterminated`)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "unterminated")
}
