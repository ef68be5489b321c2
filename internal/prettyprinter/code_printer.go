package prettyprinter

import (
	"bytes"
	"strings"

	"github.com/funvibe/monkey/internal/ast"
)

// --- Code Printer (Output looks like source code) ---

// Operator precedence (higher = binds tighter). All binary operators are
// left-associative.
var operatorPrecedence = map[string]int{
	"==": 1,
	"!=": 1,
	"<":  2,
	">":  2,
	"+":  3,
	"-":  3,
	"*":  4,
	"/":  4,
}

// prefixPrecedence is what a prefix operator demands of its operand.
// Call and index bind tighter still, so a prefix callee needs parentheses:
// (-f)(x) is not -f(x).
const (
	prefixPrecedence = 100
	callPrecedence   = 101
)

func getPrecedence(op string) int {
	if p, ok := operatorPrecedence[op]; ok {
		return p
	}
	return 10 // Default high precedence for unknown ops
}

type CodePrinter struct {
	buf    bytes.Buffer
	indent int
}

func NewCodePrinter() *CodePrinter {
	return &CodePrinter{}
}

// Format re-renders a parsed program as source text.
func Format(program *ast.Program) string {
	p := NewCodePrinter()
	program.Accept(p)
	return p.String()
}

func (p *CodePrinter) String() string {
	return p.buf.String()
}

func (p *CodePrinter) write(s string) {
	p.buf.WriteString(s)
}

func (p *CodePrinter) writeIndent() {
	p.buf.WriteString(strings.Repeat("    ", p.indent))
}

// printExpr prints an expression, adding parentheses only if needed
func (p *CodePrinter) printExpr(expr ast.Expression, parentPrec int, isRight bool) {
	if expr == nil {
		p.write("<???>")
		return
	}
	switch e := expr.(type) {
	case *ast.InfixExpression:
		prec := getPrecedence(e.Operator)
		// Left-associative: a right operand of equal precedence keeps its
		// parentheses, a - (b - c).
		needParens := prec < parentPrec || (prec == parentPrec && isRight)
		if needParens {
			p.write("(")
		}
		p.printExpr(e.Left, prec, false)
		p.write(" " + e.Operator + " ")
		p.printExpr(e.Right, prec, true)
		if needParens {
			p.write(")")
		}
	case *ast.PrefixExpression:
		needParens := parentPrec > prefixPrecedence
		if needParens {
			p.write("(")
		}
		p.write(e.Operator)
		p.printExpr(e.Right, prefixPrecedence, false)
		if needParens {
			p.write(")")
		}
	default:
		expr.Accept(p)
	}
}

func (p *CodePrinter) printList(exprs []ast.Expression) {
	for i, el := range exprs {
		if i > 0 {
			p.write(", ")
		}
		p.printExpr(el, 0, false)
	}
}

// Every statement ends with ';'. Newlines are plain whitespace, so a
// statement followed by a parenthesized expression would otherwise
// turn into a call.
func (p *CodePrinter) VisitProgram(n *ast.Program) {
	for _, stmt := range n.Statements {
		stmt.Accept(p)
		p.write("\n")
	}
}

func (p *CodePrinter) VisitLetStatement(n *ast.LetStatement) {
	p.write("let ")
	p.write(n.Name.Value)
	p.write(" = ")
	p.printExpr(n.Value, 0, false)
	p.write(";")
}

func (p *CodePrinter) VisitReturnStatement(n *ast.ReturnStatement) {
	p.write("return ")
	p.printExpr(n.ReturnValue, 0, false)
	p.write(";")
}

func (p *CodePrinter) VisitExpressionStatement(n *ast.ExpressionStatement) {
	p.printExpr(n.Expression, 0, false)
	p.write(";")
}

func (p *CodePrinter) VisitBlockStatement(n *ast.BlockStatement) {
	if len(n.Statements) == 0 {
		p.write("{}")
		return
	}
	p.write("{\n")
	p.indent++
	for _, stmt := range n.Statements {
		p.writeIndent()
		stmt.Accept(p)
		p.write("\n")
	}
	p.indent--
	p.writeIndent()
	p.write("}")
}

func (p *CodePrinter) VisitIdentifier(n *ast.Identifier) {
	p.write(n.Value)
}

func (p *CodePrinter) VisitIntegerLiteral(n *ast.IntegerLiteral) {
	p.write(n.Token.Literal)
}

func (p *CodePrinter) VisitBooleanLiteral(n *ast.BooleanLiteral) {
	p.write(n.Token.Literal)
}

func (p *CodePrinter) VisitStringLiteral(n *ast.StringLiteral) {
	p.write("\"" + n.Value + "\"")
}

func (p *CodePrinter) VisitArrayLiteral(n *ast.ArrayLiteral) {
	p.write("[")
	p.printList(n.Elements)
	p.write("]")
}

func (p *CodePrinter) VisitHashLiteral(n *ast.HashLiteral) {
	if len(n.Pairs) == 0 {
		p.write("{}")
		return
	}
	if len(n.Pairs) > 3 {
		// Multiline for large hashes
		p.write("{\n")
		p.indent++
		for i, pair := range n.Pairs {
			p.writeIndent()
			p.printExpr(pair.Key, 0, false)
			p.write(": ")
			p.printExpr(pair.Value, 0, false)
			if i < len(n.Pairs)-1 {
				p.write(",")
			}
			p.write("\n")
		}
		p.indent--
		p.writeIndent()
		p.write("}")
		return
	}
	p.write("{")
	for i, pair := range n.Pairs {
		if i > 0 {
			p.write(", ")
		}
		p.printExpr(pair.Key, 0, false)
		p.write(": ")
		p.printExpr(pair.Value, 0, false)
	}
	p.write("}")
}

func (p *CodePrinter) VisitPrefixExpression(n *ast.PrefixExpression) {
	p.printExpr(n, 0, false)
}

func (p *CodePrinter) VisitInfixExpression(n *ast.InfixExpression) {
	p.printExpr(n, 0, false)
}

func (p *CodePrinter) VisitIfExpression(n *ast.IfExpression) {
	p.write("if (")
	p.printExpr(n.Condition, 0, false)
	p.write(") ")
	n.Consequence.Accept(p)
	if n.Alternative != nil {
		p.write(" else ")
		n.Alternative.Accept(p)
	}
}

func (p *CodePrinter) VisitFunctionLiteral(n *ast.FunctionLiteral) {
	p.write("fn(")
	for i, param := range n.Parameters {
		if i > 0 {
			p.write(", ")
		}
		p.write(param.Value)
	}
	p.write(") ")
	n.Body.Accept(p)
}

func (p *CodePrinter) VisitCallExpression(n *ast.CallExpression) {
	p.printExpr(n.Function, callPrecedence, false)
	p.write("(")
	p.printList(n.Arguments)
	p.write(")")
}

func (p *CodePrinter) VisitIndexExpression(n *ast.IndexExpression) {
	p.printExpr(n.Left, callPrecedence, false)
	p.write("[")
	p.printExpr(n.Index, 0, false)
	p.write("]")
}
