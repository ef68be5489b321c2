package evaluator

import (
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/funvibe/monkey/internal/ast"
)

type Evaluator struct {
	// Out receives what `puts` prints.
	Out io.Writer
	// Logger receives trace events (call, builtin, error) at Debug level.
	Logger *slog.Logger

	builtins map[string]*Builtin
}

func New() *Evaluator {
	return &Evaluator{
		Out:      os.Stdout,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)})),
		builtins: Builtins,
	}
}

// NewTraceLogger returns a logger that writes every trace event to w as
// text.
func NewTraceLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// WithRun returns a shallow copy whose trace events carry the given run ID.
func (e *Evaluator) WithRun(runID string) *Evaluator {
	c := *e
	c.Logger = e.Logger.With("run", runID)
	return &c
}

// Eval evaluates node in env. A nil result means the node produced no
// value (a let statement, an empty program). Errors come back as *Error.
//
// Recursion depth is bounded only by the Go stack: a program that
// recurses forever crashes the process instead of returning an error.
func (e *Evaluator) Eval(node ast.Node, env *Environment) Object {
	if node == nil {
		return nil
	}

	obj := e.evalCore(node, env)
	if err, ok := obj.(*Error); ok && err.Line == 0 {
		tok := node.GetToken()
		err.Line = tok.Line
		err.Column = tok.Column
		e.Logger.Debug("error", "message", err.Message, "line", err.Line, "column", err.Column)
	}
	return obj
}

func (e *Evaluator) evalCore(node ast.Node, env *Environment) Object {
	switch node := node.(type) {
	// Statements
	case *ast.Program:
		return e.evalProgram(node, env)
	case *ast.ExpressionStatement:
		return e.Eval(node.Expression, env)
	case *ast.BlockStatement:
		return e.evalBlockStatement(node, env)
	case *ast.ReturnStatement:
		val := e.Eval(node.ReturnValue, env)
		if isSignal(val) {
			return val
		}
		return &ReturnValue{Value: orNull(val)}
	case *ast.LetStatement:
		val := e.Eval(node.Value, env)
		if isSignal(val) {
			return val
		}
		env.Set(node.Name.Value, orNull(val))
		return nil

	// Expressions
	case *ast.IntegerLiteral:
		return &Integer{Value: node.Value}
	case *ast.BooleanLiteral:
		return nativeBoolToBooleanObject(node.Value)
	case *ast.StringLiteral:
		return &String{Value: node.Value}
	case *ast.ArrayLiteral:
		elements := e.evalExpressions(node.Elements, env)
		if len(elements) == 1 && isSignal(elements[0]) {
			return elements[0]
		}
		return &Array{Elements: elements}
	case *ast.HashLiteral:
		return e.evalHashLiteral(node, env)
	case *ast.Identifier:
		return e.evalIdentifier(node, env)
	case *ast.PrefixExpression:
		right := e.Eval(node.Right, env)
		if isSignal(right) {
			return right
		}
		return e.evalPrefixExpression(node.Operator, orNull(right))
	case *ast.InfixExpression:
		left := e.Eval(node.Left, env)
		if isSignal(left) {
			return left
		}
		right := e.Eval(node.Right, env)
		if isSignal(right) {
			return right
		}
		return e.evalInfixExpression(node.Operator, orNull(left), orNull(right))
	case *ast.IfExpression:
		return e.evalIfExpression(node, env)
	case *ast.FunctionLiteral:
		return &Function{Parameters: node.Parameters, Body: node.Body, Env: env}
	case *ast.CallExpression:
		return e.evalCallExpression(node, env)
	case *ast.IndexExpression:
		left := e.Eval(node.Left, env)
		if isSignal(left) {
			return left
		}
		index := e.Eval(node.Index, env)
		if isSignal(index) {
			return index
		}
		return e.evalIndexExpression(orNull(left), orNull(index))
	}

	return newError("unknown node type: %T", node)
}

func (e *Evaluator) evalProgram(program *ast.Program, env *Environment) Object {
	var result Object

	for _, statement := range program.Statements {
		result = e.Eval(statement, env)

		switch result := result.(type) {
		case *ReturnValue:
			return result.Value
		case *Error:
			return result
		}
	}

	return result
}

// evalBlockStatement stops at the first ReturnValue or Error and hands it
// up unchanged; only calls and programs unwrap returns.
func (e *Evaluator) evalBlockStatement(block *ast.BlockStatement, env *Environment) Object {
	var result Object

	for _, statement := range block.Statements {
		result = e.Eval(statement, env)

		if result != nil {
			rt := result.Type()
			if rt == RETURN_VALUE_OBJ || rt == ERROR_OBJ {
				return result
			}
		}
	}

	return result
}
