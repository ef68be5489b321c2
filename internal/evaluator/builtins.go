package evaluator

import (
	"fmt"

	"github.com/funvibe/monkey/internal/config"
)

// Builtins is consulted after the environment chain misses, so a user
// binding with the same name shadows the builtin.
var Builtins = map[string]*Builtin{
	config.LenFuncName: {
		Name: config.LenFuncName,
		Fn: func(e *Evaluator, args ...Object) Object {
			if len(args) != 1 {
				return wrongArity(len(args), 1)
			}

			switch arg := args[0].(type) {
			case *String:
				return &Integer{Value: int64(len(arg.Value))}
			case *Array:
				return &Integer{Value: int64(len(arg.Elements))}
			default:
				return newError("argument to `len` not supported, got %s", args[0].Type())
			}
		},
	},
	config.FirstFuncName: {
		Name: config.FirstFuncName,
		Fn: func(e *Evaluator, args ...Object) Object {
			arr, err := arrayArg(config.FirstFuncName, 1, args)
			if err != nil {
				return err
			}
			if len(arr.Elements) > 0 {
				return arr.Elements[0]
			}
			return NULL
		},
	},
	config.LastFuncName: {
		Name: config.LastFuncName,
		Fn: func(e *Evaluator, args ...Object) Object {
			arr, err := arrayArg(config.LastFuncName, 1, args)
			if err != nil {
				return err
			}
			if n := len(arr.Elements); n > 0 {
				return arr.Elements[n-1]
			}
			return NULL
		},
	},
	config.RestFuncName: {
		Name: config.RestFuncName,
		Fn: func(e *Evaluator, args ...Object) Object {
			arr, err := arrayArg(config.RestFuncName, 1, args)
			if err != nil {
				return err
			}
			n := len(arr.Elements)
			if n == 0 {
				return NULL
			}
			elements := make([]Object, n-1)
			copy(elements, arr.Elements[1:])
			return &Array{Elements: elements}
		},
	},
	config.PushFuncName: {
		Name: config.PushFuncName,
		Fn: func(e *Evaluator, args ...Object) Object {
			arr, err := arrayArg(config.PushFuncName, 2, args)
			if err != nil {
				return err
			}
			n := len(arr.Elements)
			elements := make([]Object, n+1)
			copy(elements, arr.Elements)
			elements[n] = args[1]
			return &Array{Elements: elements}
		},
	},
	config.PutsFuncName: {
		Name: config.PutsFuncName,
		Fn: func(e *Evaluator, args ...Object) Object {
			for _, arg := range args {
				fmt.Fprintln(e.Out, arg.Inspect())
			}
			return NULL
		},
	},
}

func wrongArity(got, want int) *Error {
	return newError("wrong number of arguments. got=%d, want=%d", got, want)
}

// arrayArg checks the arity of a builtin whose first argument must be an
// array and returns that array.
func arrayArg(name string, arity int, args []Object) (*Array, *Error) {
	if len(args) != arity {
		return nil, wrongArity(len(args), arity)
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return nil, newError("argument to `%s` must be ARRAY, got %s", name, args[0].Type())
	}
	return arr, nil
}
