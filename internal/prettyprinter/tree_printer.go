package prettyprinter

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/funvibe/monkey/internal/ast"
)

// --- Tree Printer (Output shows AST structure) ---

// TreePrinter dumps one node per line, children indented by two spaces,
// each line tagged with the node's source position.
type TreePrinter struct {
	buf    bytes.Buffer
	indent int
}

func NewTreePrinter() *TreePrinter {
	return &TreePrinter{}
}

func (p *TreePrinter) String() string {
	return p.buf.String()
}

func (p *TreePrinter) line(n ast.Node, format string, args ...interface{}) {
	p.buf.WriteString(strings.Repeat("  ", p.indent))
	fmt.Fprintf(&p.buf, format, args...)
	if tok := n.GetToken(); tok.Line > 0 {
		fmt.Fprintf(&p.buf, " @%d:%d", tok.Line, tok.Column)
	}
	p.buf.WriteString("\n")
}

// child prints node one level deeper, under an optional label.
func (p *TreePrinter) child(label string, node ast.Node) {
	p.indent++
	defer func() { p.indent-- }()

	if label != "" {
		p.buf.WriteString(strings.Repeat("  ", p.indent))
		p.buf.WriteString(label + ":\n")
		p.indent++
		defer func() { p.indent-- }()
	}
	node.Accept(p)
}

func (p *TreePrinter) VisitProgram(n *ast.Program) {
	p.buf.WriteString("Program\n")
	for _, stmt := range n.Statements {
		p.child("", stmt)
	}
}

func (p *TreePrinter) VisitLetStatement(n *ast.LetStatement) {
	p.line(n, "LetStatement %s", n.Name.Value)
	p.child("", n.Value)
}

func (p *TreePrinter) VisitReturnStatement(n *ast.ReturnStatement) {
	p.line(n, "ReturnStatement")
	p.child("", n.ReturnValue)
}

func (p *TreePrinter) VisitExpressionStatement(n *ast.ExpressionStatement) {
	p.line(n, "ExpressionStatement")
	p.child("", n.Expression)
}

func (p *TreePrinter) VisitBlockStatement(n *ast.BlockStatement) {
	p.line(n, "BlockStatement")
	for _, stmt := range n.Statements {
		p.child("", stmt)
	}
}

func (p *TreePrinter) VisitIdentifier(n *ast.Identifier) {
	p.line(n, "Identifier %s", n.Value)
}

func (p *TreePrinter) VisitIntegerLiteral(n *ast.IntegerLiteral) {
	p.line(n, "IntegerLiteral %d", n.Value)
}

func (p *TreePrinter) VisitBooleanLiteral(n *ast.BooleanLiteral) {
	p.line(n, "BooleanLiteral %t", n.Value)
}

func (p *TreePrinter) VisitStringLiteral(n *ast.StringLiteral) {
	p.line(n, "StringLiteral %q", n.Value)
}

func (p *TreePrinter) VisitArrayLiteral(n *ast.ArrayLiteral) {
	p.line(n, "ArrayLiteral (%d)", len(n.Elements))
	for _, el := range n.Elements {
		p.child("", el)
	}
}

func (p *TreePrinter) VisitHashLiteral(n *ast.HashLiteral) {
	p.line(n, "HashLiteral (%d)", len(n.Pairs))
	for _, pair := range n.Pairs {
		p.child("key", pair.Key)
		p.child("value", pair.Value)
	}
}

func (p *TreePrinter) VisitPrefixExpression(n *ast.PrefixExpression) {
	p.line(n, "PrefixExpression %s", n.Operator)
	p.child("", n.Right)
}

func (p *TreePrinter) VisitInfixExpression(n *ast.InfixExpression) {
	p.line(n, "InfixExpression %s", n.Operator)
	p.child("", n.Left)
	p.child("", n.Right)
}

func (p *TreePrinter) VisitIfExpression(n *ast.IfExpression) {
	p.line(n, "IfExpression")
	p.child("condition", n.Condition)
	p.child("then", n.Consequence)
	if n.Alternative != nil {
		p.child("else", n.Alternative)
	}
}

func (p *TreePrinter) VisitFunctionLiteral(n *ast.FunctionLiteral) {
	params := make([]string, 0, len(n.Parameters))
	for _, param := range n.Parameters {
		params = append(params, param.Value)
	}
	p.line(n, "FunctionLiteral (%s)", strings.Join(params, ", "))
	p.child("", n.Body)
}

func (p *TreePrinter) VisitCallExpression(n *ast.CallExpression) {
	p.line(n, "CallExpression (%d)", len(n.Arguments))
	p.child("function", n.Function)
	for _, arg := range n.Arguments {
		p.child("arg", arg)
	}
}

func (p *TreePrinter) VisitIndexExpression(n *ast.IndexExpression) {
	p.line(n, "IndexExpression")
	p.child("", n.Left)
	p.child("index", n.Index)
}
