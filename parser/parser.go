/*
File    : zoe/parser/parser.go
Author  : the zoe project
License : MIT
*/

package parser

import (
	"math/big"

	"github.com/akashmaji946/zoe/diag"
	"github.com/akashmaji946/zoe/lexer"
)

// Parser consumes a pre-lexed token sequence with one-token lookahead and
// produces an AST plus a diagnostic list, recovering from syntax errors by
// synchronising to the next statement boundary rather than aborting.
type Parser struct {
	tokens []lexer.Token
	pos    int
	diags  []*diag.Diagnostic
}

// New builds a Parser over an already-lexed token sequence.
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse consumes the whole token sequence and returns the resulting
// Program (possibly partial) plus any diagnostics recorded along the way.
func Parse(tokens []lexer.Token) (*Program, []*diag.Diagnostic) {
	p := New(tokens)
	return p.Parse(), p.diags
}

func (p *Parser) Parse() *Program {
	prog := &Program{}
	for !p.check(lexer.EOF) {
		before := p.pos
		stmt := p.parseStatement()
		if stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
		if p.pos == before {
			// synchronize stops at an unconsumed '}'; at top level nothing
			// else consumes it, so skip it to keep making progress.
			p.advance()
		}
	}
	return prog
}

// --- token-stream helpers ---

func (p *Parser) cur() lexer.Token {
	return p.tokens[p.pos]
}

func (p *Parser) peek() lexer.Token {
	if p.pos+1 < len(p.tokens) {
		return p.tokens[p.pos+1]
	}
	return p.tokens[len(p.tokens)-1]
}

func (p *Parser) advance() lexer.Token {
	t := p.cur()
	if t.Type != lexer.EOF {
		p.pos++
	}
	return t
}

func (p *Parser) check(t lexer.TokenType) bool {
	return p.cur().Type == t
}

func (p *Parser) match(t lexer.TokenType) bool {
	if p.check(t) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) errorf(tok lexer.Token, format string, args ...any) {
	p.diags = append(p.diags, diag.Newf(diag.Parse, tok.Line, tok.Column, format, args...))
}

// expect consumes the next token if it matches t, otherwise records a
// diagnostic and returns ok=false without consuming it.
func (p *Parser) expect(t lexer.TokenType, context string) (lexer.Token, bool) {
	if p.check(t) {
		return p.advance(), true
	}
	p.errorf(p.cur(), "expected %s %s, got %s", t, context, p.cur().Type)
	return p.cur(), false
}

// synchronize discards tokens until it finds a statement boundary: a
// consumed ';', an unconsumed '}'/EOF, so callers can resume parsing the
// next statement without cascading errors.
func (p *Parser) synchronize() {
	for !p.check(lexer.EOF) && !p.check(lexer.RBRACE) {
		if p.check(lexer.SEMI) {
			p.advance()
			return
		}
		p.advance()
	}
}

func pos(t lexer.Token) Position {
	return Position{Line: t.Line, Column: t.Column}
}

// --- statements ---

func (p *Parser) parseStatement() Statement {
	switch p.cur().Type {
	case lexer.VAR:
		return p.parseVarStatement()
	case lexer.RETURN:
		return p.parseReturnStatement()
	case lexer.IF:
		return p.parseIfStatement()
	case lexer.LBRACE:
		return p.parseBlockStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseVarStatement() Statement {
	start := p.advance() // 'var'
	name, ok := p.expect(lexer.IDENT, "identifier")
	if !ok {
		p.synchronize()
		return nil
	}
	if _, ok := p.expect(lexer.ASSIGN, "'='"); !ok {
		p.synchronize()
		return nil
	}
	value := p.parseExpression(precAssignment)
	if value == nil {
		p.synchronize()
		return nil
	}
	p.consumeStatementEnd()
	return &VarStatement{Position: pos(start), Name: name.Literal, Value: value}
}

func (p *Parser) parseReturnStatement() Statement {
	start := p.advance() // 'return'
	if p.check(lexer.SEMI) {
		p.advance()
		return &ReturnStatement{Position: pos(start)}
	}
	value := p.parseExpression(precAssignment)
	if value == nil {
		p.synchronize()
		return nil
	}
	p.consumeStatementEnd()
	return &ReturnStatement{Position: pos(start), Value: value}
}

func (p *Parser) parseIfStatement() Statement {
	start := p.cur()
	stmt := &IfStatement{Position: pos(start)}

	p.advance() // 'if'
	cond := p.parseExpression(precAssignment)
	if cond == nil {
		p.synchronize()
		return nil
	}
	body := p.parseBlockStatement()
	if body == nil {
		return nil
	}
	stmt.Clauses = append(stmt.Clauses, IfClause{Condition: cond, Body: body.(*BlockStatement)})

	for p.check(lexer.ELIF) {
		p.advance()
		cond := p.parseExpression(precAssignment)
		if cond == nil {
			p.synchronize()
			return stmt
		}
		body := p.parseBlockStatement()
		if body == nil {
			return stmt
		}
		stmt.Clauses = append(stmt.Clauses, IfClause{Condition: cond, Body: body.(*BlockStatement)})
	}

	if p.check(lexer.ELSE) {
		p.advance()
		body := p.parseBlockStatement()
		if body != nil {
			stmt.Else = body.(*BlockStatement)
		}
	}

	return stmt
}

func (p *Parser) parseBlockStatement() Statement {
	start, ok := p.expect(lexer.LBRACE, "'{'")
	if !ok {
		p.synchronize()
		return nil
	}
	block := &BlockStatement{Position: pos(start)}
	for !p.check(lexer.RBRACE) && !p.check(lexer.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
	}
	p.expect(lexer.RBRACE, "'}'")
	return block
}

func (p *Parser) parseExpressionStatement() Statement {
	start := p.cur()
	expr := p.parseExpression(precAssignment)
	if expr == nil {
		p.synchronize()
		return nil
	}
	p.consumeStatementEnd()
	return &ExpressionStatement{Position: pos(start), Expr: expr}
}

// consumeStatementEnd expects the ';' terminator, recording a diagnostic
// and synchronising if it is missing, rather than silently accepting it.
func (p *Parser) consumeStatementEnd() {
	if _, ok := p.expect(lexer.SEMI, "to terminate statement"); !ok {
		p.synchronize()
	}
}

// --- expressions: precedence climbing, lowest to highest ---

type precedence int

const (
	precLowest precedence = iota
	precAssignment
	precOr
	precAnd
	precEquality
	precRelational
	precAdditive
	precMultiplicative
	precUnary
	precPostfix
)

func (p *Parser) parseExpression(minPrec precedence) Expression {
	if minPrec <= precAssignment {
		return p.parseAssignment()
	}
	return p.parseBinary(minPrec)
}

// parseAssignment handles level 1 (right-associative `=`) by parsing a
// level-2-and-up expression first, then checking for a trailing '='.
func (p *Parser) parseAssignment() Expression {
	left := p.parseBinary(precOr)
	if left == nil {
		return nil
	}
	if p.check(lexer.ASSIGN) {
		tok := p.advance()
		switch left.(type) {
		case *Identifier, *MemberExpression, *SubscriptExpression:
		default:
			p.errorf(tok, "invalid assignment target")
			return nil
		}
		value := p.parseAssignment() // right-associative
		if value == nil {
			return nil
		}
		return &AssignmentExpression{Position: pos(tok), Target: left, Value: value}
	}
	return left
}

type binLevel struct {
	prec precedence
	ops  map[lexer.TokenType]BinaryOp
}

var binLevels = []binLevel{
	{precOr, map[lexer.TokenType]BinaryOp{lexer.OR: OpOr}},
	{precAnd, map[lexer.TokenType]BinaryOp{lexer.AND: OpAnd}},
	{precEquality, map[lexer.TokenType]BinaryOp{lexer.EQ: OpEq, lexer.NEQ: OpNeq}},
	{precRelational, map[lexer.TokenType]BinaryOp{lexer.LT: OpLt, lexer.GT: OpGt}},
	{precAdditive, map[lexer.TokenType]BinaryOp{lexer.PLUS: OpAdd, lexer.MINUS: OpSub}},
	{precMultiplicative, map[lexer.TokenType]BinaryOp{lexer.STAR: OpMul, lexer.SLASH: OpDiv, lexer.PERCENT: OpMod}},
}

// parseBinary implements levels 2-7 as one left-associative climbing loop
// indexed by the level found in binLevels, bottoming out at unary parsing.
func (p *Parser) parseBinary(minPrec precedence) Expression {
	levelIdx := 0
	for levelIdx < len(binLevels) && binLevels[levelIdx].prec < minPrec {
		levelIdx++
	}
	return p.parseBinaryLevel(levelIdx)
}

func (p *Parser) parseBinaryLevel(levelIdx int) Expression {
	if levelIdx >= len(binLevels) {
		return p.parseUnary()
	}
	left := p.parseBinaryLevel(levelIdx + 1)
	if left == nil {
		return nil
	}
	level := binLevels[levelIdx]
	for {
		op, ok := level.ops[p.cur().Type]
		if !ok {
			return left
		}
		tok := p.advance()
		right := p.parseBinaryLevel(levelIdx + 1)
		if right == nil {
			return nil
		}
		left = &BinaryExpression{Position: pos(tok), Left: left, Op: op, Right: right}
	}
}

func (p *Parser) parseUnary() Expression {
	switch p.cur().Type {
	case lexer.BANG:
		tok := p.advance()
		operand := p.parseUnary()
		if operand == nil {
			return nil
		}
		return &UnaryExpression{Position: pos(tok), Op: OpNot, Operand: operand}
	case lexer.MINUS:
		tok := p.advance()
		operand := p.parseUnary()
		if operand == nil {
			return nil
		}
		return &UnaryExpression{Position: pos(tok), Op: OpNeg, Operand: operand}
	default:
		return p.parsePostfix()
	}
}

// parsePostfix handles level 9: call, member, and subscript, left-to-right.
func (p *Parser) parsePostfix() Expression {
	expr := p.parsePrimary()
	if expr == nil {
		return nil
	}
	for {
		switch p.cur().Type {
		case lexer.DOT:
			tok := p.advance()
			name, ok := p.expect(lexer.IDENT, "after '.'")
			if !ok {
				return nil
			}
			expr = &MemberExpression{Position: pos(tok), Object: expr, Property: name.Literal}
		case lexer.LBRACKET:
			tok := p.advance()
			index := p.parseExpression(precAssignment)
			if index == nil {
				return nil
			}
			if _, ok := p.expect(lexer.RBRACKET, "to close subscript"); !ok {
				return nil
			}
			expr = &SubscriptExpression{Position: pos(tok), Target: expr, Index: index}
		case lexer.LPAREN:
			tok := p.advance()
			var args []Expression
			if !p.check(lexer.RPAREN) {
				for {
					arg := p.parseExpression(precAssignment)
					if arg == nil {
						return nil
					}
					args = append(args, arg)
					if !p.match(lexer.COMMA) {
						break
					}
				}
			}
			if _, ok := p.expect(lexer.RPAREN, "to close call"); !ok {
				return nil
			}
			expr = &CallExpression{Position: pos(tok), Callee: expr, Args: args}
		default:
			return expr
		}
	}
}

func (p *Parser) parsePrimary() Expression {
	tok := p.cur()
	switch tok.Type {
	case lexer.INT:
		p.advance()
		n := new(big.Int)
		if _, ok := n.SetString(tok.Literal, 10); !ok {
			p.errorf(tok, "malformed integer literal %q", tok.Literal)
			return nil
		}
		return &IntegerLiteral{Position: pos(tok), Value: n}
	case lexer.FLOAT:
		p.advance()
		f, err := parseFloat(tok.Literal)
		if err != nil {
			p.errorf(tok, "malformed float literal %q", tok.Literal)
			return nil
		}
		return &FloatLiteral{Position: pos(tok), Value: f}
	case lexer.STRING:
		p.advance()
		return &StringLiteral{Position: pos(tok), Value: tok.Literal}
	case lexer.TRUE:
		p.advance()
		return &BooleanLiteral{Position: pos(tok), Value: true}
	case lexer.FALSE:
		p.advance()
		return &BooleanLiteral{Position: pos(tok), Value: false}
	case lexer.NIL:
		p.advance()
		return &NullLiteral{Position: pos(tok)}
	case lexer.IDENT:
		p.advance()
		return &Identifier{Position: pos(tok), Name: tok.Literal}
	case lexer.LPAREN:
		p.advance()
		expr := p.parseExpression(precAssignment)
		if expr == nil {
			return nil
		}
		if _, ok := p.expect(lexer.RPAREN, "to close parenthesised expression"); !ok {
			return nil
		}
		return expr
	case lexer.FN:
		return p.parseFunctionLiteral()
	case lexer.LBRACE:
		return p.parseObjectLiteral()
	default:
		p.errorf(tok, "unexpected token %s", tok.Type)
		return nil
	}
}

func (p *Parser) parseFunctionLiteral() Expression {
	start := p.advance() // 'fn'
	if _, ok := p.expect(lexer.LPAREN, "after 'fn'"); !ok {
		return nil
	}
	var params []string
	if !p.check(lexer.RPAREN) {
		for {
			name, ok := p.expect(lexer.IDENT, "parameter name")
			if !ok {
				return nil
			}
			params = append(params, name.Literal)
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	if _, ok := p.expect(lexer.RPAREN, "to close parameter list"); !ok {
		return nil
	}
	body := p.parseBlockStatement()
	if body == nil {
		return nil
	}
	return &FunctionLiteral{Position: pos(start), Params: params, Body: body.(*BlockStatement)}
}

func (p *Parser) parseObjectLiteral() Expression {
	start := p.advance() // '{'
	lit := &ObjectLiteral{Position: pos(start)}
	for !p.check(lexer.RBRACE) && !p.check(lexer.EOF) {
		name, ok := p.expect(lexer.IDENT, "property name")
		if !ok {
			return nil
		}
		prop := ObjectProperty{Name: name.Literal}
		if p.match(lexer.COLON) {
			val := p.parseExpression(precAssignment)
			if val == nil {
				return nil
			}
			prop.Value = val
		}
		lit.Properties = append(lit.Properties, prop)
		if !p.match(lexer.COMMA) {
			break
		}
	}
	if _, ok := p.expect(lexer.RBRACE, "to close object literal"); !ok {
		return nil
	}
	return lit
}
