package evaluator

import "fmt"

func newError(format string, a ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, a...)}
}

func isError(obj Object) bool {
	if obj != nil {
		return obj.Type() == ERROR_OBJ
	}
	return false
}

// isSignal reports whether obj must travel up unchanged: an error, or a
// return on its way to the enclosing call.
func isSignal(obj Object) bool {
	if obj == nil {
		return false
	}
	t := obj.Type()
	return t == ERROR_OBJ || t == RETURN_VALUE_OBJ
}

// IsError reports whether obj is a runtime error value.
func IsError(obj Object) bool {
	return isError(obj)
}

// isTruthy: only FALSE and NULL are false.
func isTruthy(obj Object) bool {
	switch obj {
	case NULL, FALSE:
		return false
	default:
		return true
	}
}

func unwrapReturnValue(obj Object) Object {
	if returnValue, ok := obj.(*ReturnValue); ok {
		return returnValue.Value
	}
	return obj
}

// orNull maps "no value" to NULL where an expression must produce one.
func orNull(obj Object) Object {
	if obj == nil {
		return NULL
	}
	return obj
}
