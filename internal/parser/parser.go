package parser

import (
	"fmt"

	"github.com/funvibe/monkey/internal/ast"
	"github.com/funvibe/monkey/internal/diagnostics"
	"github.com/funvibe/monkey/internal/lexer"
	"github.com/funvibe/monkey/internal/token"
)

const (
	_ int = iota
	LOWEST
	EQUALS      // ==
	LESSGREATER // > or <
	SUM         // +
	PRODUCT     // *
	PREFIX      // -X or !X
	CALL        // myFunction(X)
	INDEX       // array[index]
)

var precedences = map[token.TokenType]int{
	token.EQ:       EQUALS,
	token.NOT_EQ:   EQUALS,
	token.LT:       LESSGREATER,
	token.GT:       LESSGREATER,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.SLASH:    PRODUCT,
	token.ASTERISK: PRODUCT,
	token.LPAREN:   CALL,
	token.LBRACKET: INDEX,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// TokenSource is anything that hands out tokens one at a time, such as a
// *lexer.Lexer.
type TokenSource interface {
	NextToken() token.Token
}

type Parser struct {
	src    TokenSource
	errors []*diagnostics.DiagnosticError

	curToken  token.Token
	peekToken token.Token

	prefixParseFns map[token.TokenType]prefixParseFn
	infixParseFns  map[token.TokenType]infixParseFn

	// unterminated is set when a block ran into EOF before its '}'.
	unterminated bool
}

func New(src TokenSource) *Parser {
	p := &Parser{src: src}

	p.prefixParseFns = make(map[token.TokenType]prefixParseFn)
	p.registerPrefix(token.IDENT, p.parseIdentifier)
	p.registerPrefix(token.INT, p.parseIntegerLiteral)
	p.registerPrefix(token.STRING, p.parseStringLiteral)
	p.registerPrefix(token.TRUE, p.parseBoolean)
	p.registerPrefix(token.FALSE, p.parseBoolean)
	p.registerPrefix(token.BANG, p.parsePrefixExpression)
	p.registerPrefix(token.MINUS, p.parsePrefixExpression)
	p.registerPrefix(token.LPAREN, p.parseGroupedExpression)
	p.registerPrefix(token.IF, p.parseIfExpression)
	p.registerPrefix(token.FUNCTION, p.parseFunctionLiteral)
	p.registerPrefix(token.LBRACKET, p.parseArrayLiteral)
	p.registerPrefix(token.LBRACE, p.parseHashLiteral)

	p.infixParseFns = make(map[token.TokenType]infixParseFn)
	for _, tt := range []token.TokenType{
		token.PLUS, token.MINUS, token.SLASH, token.ASTERISK,
		token.EQ, token.NOT_EQ, token.LT, token.GT,
	} {
		p.registerInfix(tt, p.parseInfixExpression)
	}
	p.registerInfix(token.LPAREN, p.parseCallExpression)
	p.registerInfix(token.LBRACKET, p.parseIndexExpression)

	// Read two tokens, so curToken and peekToken are both set
	p.nextToken()
	p.nextToken()

	return p
}

// Parse is a convenience wrapper: lex and parse input in one go.
// The error, if any, is a *ParseError.
func Parse(input string) (*ast.Program, error) {
	p := New(lexer.New(input))
	program := p.ParseProgram()
	if len(p.errors) > 0 {
		return program, &ParseError{Diagnostics: p.errors}
	}
	return program, nil
}

func (p *Parser) registerPrefix(tokenType token.TokenType, fn prefixParseFn) {
	p.prefixParseFns[tokenType] = fn
}

func (p *Parser) registerInfix(tokenType token.TokenType, fn infixParseFn) {
	p.infixParseFns[tokenType] = fn
}

// Errors returns the diagnostic messages collected so far.
func (p *Parser) Errors() []string {
	msgs := make([]string, 0, len(p.errors))
	for _, e := range p.errors {
		msgs = append(msgs, e.Message)
	}
	return msgs
}

// Diagnostics returns the coded diagnostics collected so far.
func (p *Parser) Diagnostics() []*diagnostics.DiagnosticError {
	return p.errors
}

// Incomplete reports whether parsing failed only because the input
// stopped early, e.g. an open block or a dangling operator. The console
// uses it to ask for another line.
func (p *Parser) Incomplete() bool {
	if p.unterminated {
		return true
	}
	if len(p.errors) == 0 {
		return false
	}
	for _, e := range p.errors {
		if e.Token.Type != token.EOF {
			return false
		}
	}
	return true
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.src.NextToken()
}

func (p *Parser) curTokenIs(t token.TokenType) bool {
	return p.curToken.Type == t
}

func (p *Parser) peekTokenIs(t token.TokenType) bool {
	return p.peekToken.Type == t
}

// expectPeek advances only if the next token has type t; otherwise it
// records a diagnostic and leaves the position unchanged.
func (p *Parser) expectPeek(t token.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) peekPrecedence() int {
	if p, ok := precedences[p.peekToken.Type]; ok {
		return p
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if p, ok := precedences[p.curToken.Type]; ok {
		return p
	}
	return LOWEST
}

func (p *Parser) addError(code diagnostics.ErrorCode, tok token.Token, format string, args ...interface{}) {
	p.errors = append(p.errors, diagnostics.NewError(code, tok, format, args...))
}

func (p *Parser) peekError(t token.TokenType) {
	p.addError(diagnostics.ErrP001, p.peekToken,
		"expected next token to be %s, got %s instead", t, p.peekToken.Type)
}

func (p *Parser) noPrefixParseFnError(tok token.Token) {
	if tok.Type == token.ILLEGAL {
		p.addError(diagnostics.ErrP004, tok, "no prefix parse function for %s found (%q)", tok.Type, tok.Literal)
		return
	}
	p.addError(diagnostics.ErrP002, tok, "no prefix parse function for %s found", tok.Type)
}

// ParseError aggregates the diagnostics of a failed parse.
type ParseError struct {
	Diagnostics []*diagnostics.DiagnosticError
}

func (e *ParseError) Error() string {
	if len(e.Diagnostics) == 1 {
		return e.Diagnostics[0].Error()
	}
	msg := fmt.Sprintf("%d parse errors:", len(e.Diagnostics))
	for _, d := range e.Diagnostics {
		msg += "\n\t" + d.Error()
	}
	return msg
}
