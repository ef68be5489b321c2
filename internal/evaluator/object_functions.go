package evaluator

import (
	"bytes"
	"strings"

	"github.com/funvibe/monkey/internal/ast"
)

// Function is a closure: the literal's parameters and body plus the
// environment that was active where the literal was evaluated.
type Function struct {
	Parameters []*ast.Identifier
	Body       *ast.BlockStatement
	Env        *Environment
}

func (f *Function) Type() ObjectType { return FUNCTION_OBJ }
func (f *Function) Inspect() string {
	var out bytes.Buffer

	params := make([]string, 0, len(f.Parameters))
	for _, p := range f.Parameters {
		params = append(params, p.String())
	}

	out.WriteString("fn(")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") {\n")
	if f.Body != nil {
		out.WriteString(f.Body.String())
	}
	out.WriteString("\n}")

	return out.String()
}

type BuiltinFunction func(e *Evaluator, args ...Object) Object

type Builtin struct {
	Fn   BuiltinFunction
	Name string // Name of the builtin
}

func (b *Builtin) Type() ObjectType { return BUILTIN_OBJ }
func (b *Builtin) Inspect() string  { return "builtin function" }
