package evaluator

import "github.com/funvibe/monkey/internal/ast"

// evalExpressions evaluates exps left to right. On the first error or
// in-flight return it returns a one-element slice holding that value.
func (e *Evaluator) evalExpressions(exps []ast.Expression, env *Environment) []Object {
	result := make([]Object, 0, len(exps))

	for _, exp := range exps {
		evaluated := e.Eval(exp, env)
		if isSignal(evaluated) {
			return []Object{evaluated}
		}
		result = append(result, orNull(evaluated))
	}

	return result
}

// evalHashLiteral evaluates pairs in source order; a later pair with an
// equal key replaces an earlier one.
func (e *Evaluator) evalHashLiteral(node *ast.HashLiteral, env *Environment) Object {
	hash := NewHash()

	for _, pair := range node.Pairs {
		key := e.Eval(pair.Key, env)
		if isSignal(key) {
			return key
		}
		key = orNull(key)

		hashKey, ok := key.(Hashable)
		if !ok {
			return newError("unusable as hash key: %s", key.Type())
		}

		value := e.Eval(pair.Value, env)
		if isSignal(value) {
			return value
		}

		hash.Set(hashKey, orNull(value))
	}

	return hash
}
