package ast

// Visitor walks the tree. Every node kind has exactly one method, so adding
// a node without teaching the printers about it fails to compile.
type Visitor interface {
	VisitProgram(n *Program)
	VisitLetStatement(n *LetStatement)
	VisitReturnStatement(n *ReturnStatement)
	VisitExpressionStatement(n *ExpressionStatement)
	VisitBlockStatement(n *BlockStatement)

	VisitIdentifier(n *Identifier)
	VisitIntegerLiteral(n *IntegerLiteral)
	VisitBooleanLiteral(n *BooleanLiteral)
	VisitStringLiteral(n *StringLiteral)
	VisitArrayLiteral(n *ArrayLiteral)
	VisitHashLiteral(n *HashLiteral)
	VisitPrefixExpression(n *PrefixExpression)
	VisitInfixExpression(n *InfixExpression)
	VisitIfExpression(n *IfExpression)
	VisitFunctionLiteral(n *FunctionLiteral)
	VisitCallExpression(n *CallExpression)
	VisitIndexExpression(n *IndexExpression)
}
