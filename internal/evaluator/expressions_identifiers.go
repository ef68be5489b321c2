package evaluator

import "github.com/funvibe/monkey/internal/ast"

func (e *Evaluator) evalIdentifier(node *ast.Identifier, env *Environment) Object {
	if val, ok := env.Get(node.Value); ok {
		return val
	}
	if builtin, ok := e.builtins[node.Value]; ok {
		return builtin
	}
	return newError("identifier not found: %s", node.Value)
}
