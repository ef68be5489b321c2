package evaluator

import "github.com/funvibe/monkey/internal/ast"

func (e *Evaluator) evalCallExpression(node *ast.CallExpression, env *Environment) Object {
	function := e.Eval(node.Function, env)
	if isSignal(function) {
		return function
	}

	args := e.evalExpressions(node.Arguments, env)
	if len(args) == 1 && isSignal(args[0]) {
		return args[0]
	}

	return e.applyFunction(node.Function.String(), orNull(function), args)
}

// applyFunction calls fn with already evaluated args. Missing parameters
// are bound to NULL and surplus arguments are ignored.
func (e *Evaluator) applyFunction(name string, fn Object, args []Object) Object {
	switch fn := fn.(type) {
	case *Function:
		e.Logger.Debug("call", "fn", name, "params", len(fn.Parameters), "args", len(args))
		extendedEnv := extendFunctionEnv(fn, args)
		evaluated := e.Eval(fn.Body, extendedEnv)
		return orNull(unwrapReturnValue(evaluated))
	case *Builtin:
		e.Logger.Debug("builtin", "name", fn.Name, "args", len(args))
		return fn.Fn(e, args...)
	default:
		return newError("not a function: %s", fn.Type())
	}
}

// extendFunctionEnv chains the call scope to the closure's scope, not the
// caller's.
func extendFunctionEnv(fn *Function, args []Object) *Environment {
	env := NewEnclosedEnvironment(fn.Env)

	for i, param := range fn.Parameters {
		if i < len(args) {
			env.Set(param.Value, args[i])
		} else {
			env.Set(param.Value, NULL)
		}
	}

	return env
}
