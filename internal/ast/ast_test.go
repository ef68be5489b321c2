package ast

import (
	"testing"

	"github.com/funvibe/monkey/internal/token"
)

func ident(name string) *Identifier {
	return &Identifier{Token: token.Token{Type: token.IDENT, Literal: name}, Value: name}
}

func integer(lit string, v int64) *IntegerLiteral {
	return &IntegerLiteral{Token: token.Token{Type: token.INT, Literal: lit}, Value: v}
}

func TestString(t *testing.T) {
	program := &Program{
		Statements: []Statement{
			&LetStatement{
				Token: token.Token{Type: token.LET, Literal: "let"},
				Name:  ident("myVar"),
				Value: ident("anotherVar"),
			},
		},
	}

	if program.String() != "let myVar = anotherVar;" {
		t.Errorf("program.String() wrong. got=%q", program.String())
	}
}

func TestExpressionString(t *testing.T) {
	plus := token.Token{Type: token.PLUS, Literal: "+"}
	body := &BlockStatement{
		Token: token.Token{Type: token.LBRACE, Literal: "{"},
		Statements: []Statement{
			&ExpressionStatement{Expression: &InfixExpression{Token: plus, Left: ident("x"), Operator: "+", Right: ident("y")}},
		},
	}

	tests := []struct {
		name string
		node Node
		want string
	}{
		{"prefix", &PrefixExpression{Operator: "-", Right: integer("5", 5)}, "(-5)"},
		{"infix", &InfixExpression{Token: plus, Left: integer("1", 1), Operator: "+", Right: integer("2", 2)}, "(1 + 2)"},
		{"if", &IfExpression{Condition: ident("c"), Consequence: body}, "ifc (x + y)"},
		{"if_else", &IfExpression{Condition: ident("c"), Consequence: body, Alternative: body}, "ifc (x + y)else (x + y)"},
		{"function", &FunctionLiteral{
			Token:      token.Token{Type: token.FUNCTION, Literal: "fn"},
			Parameters: []*Identifier{ident("x"), ident("y")},
			Body:       body,
		}, "fn(x, y) (x + y)"},
		{"call", &CallExpression{Function: ident("add"), Arguments: []Expression{integer("1", 1), ident("b")}}, "add(1, b)"},
		{"index", &IndexExpression{Left: ident("arr"), Index: integer("0", 0)}, "(arr[0])"},
		{"array", &ArrayLiteral{Elements: []Expression{integer("1", 1), integer("2", 2)}}, "[1, 2]"},
		{"hash", &HashLiteral{Pairs: []HashPair{
			{Key: &StringLiteral{Token: token.Token{Type: token.STRING, Literal: "one"}, Value: "one"}, Value: integer("1", 1)},
			{Key: &BooleanLiteral{Token: token.Token{Type: token.TRUE, Literal: "true"}, Value: true}, Value: integer("2", 2)},
		}}, "{one:1, true:2}"},
		{"return", &ReturnStatement{Token: token.Token{Type: token.RETURN, Literal: "return"}, ReturnValue: integer("5", 5)}, "return 5;"},
		{"empty_block", &BlockStatement{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProgramToken(t *testing.T) {
	empty := &Program{}
	if empty.TokenLiteral() != "" {
		t.Errorf("empty program TokenLiteral = %q", empty.TokenLiteral())
	}
	if tok := empty.GetToken(); tok != (token.Token{}) {
		t.Errorf("empty program GetToken = %v", tok)
	}

	letTok := token.Token{Type: token.LET, Literal: "let", Line: 3, Column: 2}
	program := &Program{Statements: []Statement{&LetStatement{Token: letTok, Name: ident("x"), Value: integer("1", 1)}}}
	if program.GetToken() != letTok {
		t.Errorf("GetToken = %v, want %v", program.GetToken(), letTok)
	}
}
