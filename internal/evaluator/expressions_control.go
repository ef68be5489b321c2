package evaluator

import "github.com/funvibe/monkey/internal/ast"

// evalIfExpression yields NULL when the condition is false and there is no
// else branch.
func (e *Evaluator) evalIfExpression(ie *ast.IfExpression, env *Environment) Object {
	condition := e.Eval(ie.Condition, env)
	if isSignal(condition) {
		return condition
	}

	if isTruthy(orNull(condition)) {
		return orNull(e.Eval(ie.Consequence, env))
	} else if ie.Alternative != nil {
		return orNull(e.Eval(ie.Alternative, env))
	}
	return NULL
}
