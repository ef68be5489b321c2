package evaluator

import "fmt"

// ReturnValue carries a `return` out of nested blocks. It is unwrapped at
// the function-call boundary or at the top of a program.
type ReturnValue struct {
	Value Object
}

func (rv *ReturnValue) Type() ObjectType { return RETURN_VALUE_OBJ }
func (rv *ReturnValue) Inspect() string  { return rv.Value.Inspect() }

// Error is a runtime failure. It travels through the normal return channel
// until something presents it. Line and Column point at the node that
// first produced it; zero means unknown.
type Error struct {
	Message string
	Line    int
	Column  int
}

func (e *Error) Type() ObjectType { return ERROR_OBJ }
func (e *Error) Inspect() string  { return "ERROR: " + e.Message }

// Location renders "line:col: message", or just the message when the
// position is unknown.
func (e *Error) Location() string {
	if e.Line > 0 {
		return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
	}
	return e.Message
}
