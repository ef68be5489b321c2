// Package fuzz generates random, syntactically valid Monkey programs for
// the fuzz targets of the lexer, parser, printer and evaluator.
//
// Generated programs always terminate: function bodies only see their own
// parameters, and the only things ever called are builtins, function
// literals in call position and top-level bindings.
package fuzz

import (
	"math/rand"
	"strconv"
	"strings"
)

// RandomSource abstracts the source of randomness.
type RandomSource interface {
	Intn(n int) int
}

// ByteSource uses a byte slice as a source of randomness. Once the data is
// used up every choice is 0, which always picks the simplest production.
type ByteSource struct {
	data []byte
	pos  int
}

func (s *ByteSource) Intn(n int) int {
	if n <= 0 || s.pos >= len(s.data) {
		return 0
	}
	v := int(s.data[s.pos])
	s.pos++
	return v % n
}

const (
	MaxDepth      = 4
	MaxStatements = 5
	maxElements   = 4
)

var (
	globalNames = []string{"x", "y", "z", "a", "b"}
	paramNames  = []string{"p", "q", "r"}
	stringPool  = []string{"", "a", "foo", "hello world", "Monkey"}
	builtins    = []string{"len", "first", "last", "rest", "push", "puts"}
	infixOps    = []string{"+", "-", "*", "/", "<", ">", "==", "!="}
)

// Generator generates random Monkey code.
type Generator struct {
	src   RandomSource
	depth int
	// scope holds the names an identifier may refer to at this point.
	scope []string
	// callable holds top-level names bound to function literals.
	callable map[string]int
	inFunc   bool
}

func New(seed int64) *Generator {
	return newGenerator(rand.New(rand.NewSource(seed)))
}

func NewFromData(data []byte) *Generator {
	return newGenerator(&ByteSource{data: data})
}

func newGenerator(src RandomSource) *Generator {
	return &Generator{src: src, callable: make(map[string]int)}
}

func (g *Generator) pick(options []string) string {
	return options[g.src.Intn(len(options))]
}

// GenerateProgram returns a program of one to MaxStatements statements.
func (g *Generator) GenerateProgram() string {
	var sb strings.Builder
	count := g.src.Intn(MaxStatements) + 1
	for i := 0; i < count; i++ {
		sb.WriteString(g.generateTopLevelStatement())
		sb.WriteString(g.generateNoise())
	}
	return sb.String()
}

func (g *Generator) generateNoise() string {
	switch g.src.Intn(4) {
	case 0:
		return " "
	case 1:
		return "\t"
	default:
		return "\n"
	}
}

func (g *Generator) generateTopLevelStatement() string {
	switch g.src.Intn(4) {
	case 0:
		name := g.pick(globalNames)
		if g.src.Intn(2) == 0 {
			arity := g.src.Intn(len(paramNames) + 1)
			value := g.generateFunctionLiteral(arity)
			g.bind(name)
			g.callable[name] = arity
			return "let " + name + " = " + value + ";"
		}
		value := g.GenerateExpression()
		g.bind(name)
		delete(g.callable, name)
		return "let " + name + " = " + value + ";"
	case 1:
		if name, arity, ok := g.someCallable(); ok {
			return name + "(" + g.generateArgs(arity) + ");"
		}
		return g.GenerateExpression() + ";"
	default:
		return g.GenerateExpression() + ";"
	}
}

func (g *Generator) bind(name string) {
	for _, n := range g.scope {
		if n == name {
			return
		}
	}
	g.scope = append(g.scope, name)
}

func (g *Generator) someCallable() (string, int, bool) {
	for _, name := range globalNames {
		if arity, ok := g.callable[name]; ok && g.src.Intn(2) == 0 {
			return name, arity, true
		}
	}
	return "", 0, false
}

// GenerateExpression returns a single expression.
func (g *Generator) GenerateExpression() string {
	if g.depth >= MaxDepth {
		return g.generateAtom()
	}
	g.depth++
	defer func() { g.depth-- }()

	switch g.src.Intn(12) {
	case 0, 1:
		return g.generateAtom()
	case 2:
		return g.pick([]string{"-", "!"}) + g.GenerateExpression()
	case 3, 4:
		return "(" + g.GenerateExpression() + " " + g.pick(infixOps) + " " + g.GenerateExpression() + ")"
	case 5:
		return "[" + g.generateArgs(g.src.Intn(maxElements+1)) + "]"
	case 6:
		return g.generateHash()
	case 7:
		return g.GenerateExpression() + "[" + g.GenerateExpression() + "]"
	case 8:
		return g.pick(builtins) + "(" + g.generateArgs(g.src.Intn(3)) + ")"
	case 9:
		arity := g.src.Intn(len(paramNames) + 1)
		return g.generateFunctionLiteral(arity) + "(" + g.generateArgs(arity) + ")"
	case 10:
		return g.generateFunctionLiteral(g.src.Intn(len(paramNames) + 1))
	default:
		return g.generateIf()
	}
}

func (g *Generator) generateAtom() string {
	switch g.src.Intn(5) {
	case 0:
		return strconv.Itoa(g.src.Intn(100))
	case 1:
		return g.pick([]string{"true", "false"})
	case 2:
		return strconv.Quote(g.pick(stringPool))
	default:
		if len(g.scope) == 0 {
			return strconv.Itoa(g.src.Intn(10))
		}
		return g.pick(g.scope)
	}
}

func (g *Generator) generateArgs(n int) string {
	args := make([]string, n)
	for i := range args {
		args[i] = g.GenerateExpression()
	}
	return strings.Join(args, ", ")
}

func (g *Generator) generateHash() string {
	n := g.src.Intn(maxElements + 2)
	pairs := make([]string, n)
	for i := range pairs {
		var key string
		switch g.src.Intn(3) {
		case 0:
			key = strconv.Itoa(g.src.Intn(10))
		case 1:
			key = g.pick([]string{"true", "false"})
		default:
			key = strconv.Quote(g.pick(stringPool))
		}
		pairs[i] = key + ": " + g.GenerateExpression()
	}
	return "{" + strings.Join(pairs, ", ") + "}"
}

func (g *Generator) generateIf() string {
	out := "if (" + g.GenerateExpression() + ") " + g.generateBlock()
	if g.src.Intn(2) == 0 {
		out += " else " + g.generateBlock()
	}
	return out
}

// generateFunctionLiteral produces fn(params) { body } whose body sees only
// its own parameters.
func (g *Generator) generateFunctionLiteral(arity int) string {
	params := paramNames[:arity]

	savedScope, savedInFunc := g.scope, g.inFunc
	g.scope = append([]string(nil), params...)
	g.inFunc = true
	body := g.generateBlock()
	g.scope, g.inFunc = savedScope, savedInFunc

	return "fn(" + strings.Join(params, ", ") + ") " + body
}

func (g *Generator) generateBlock() string {
	n := g.src.Intn(3)
	if n == 0 {
		return "{}"
	}
	stmts := make([]string, n)
	for i := range stmts {
		stmts[i] = g.generateBlockStatement()
	}
	return "{ " + strings.Join(stmts, " ") + " }"
}

func (g *Generator) generateBlockStatement() string {
	switch g.src.Intn(4) {
	case 0:
		name := g.pick(paramNames)
		value := g.GenerateExpression()
		g.bind(name)
		return "let " + name + " = " + value + ";"
	case 1:
		if g.inFunc {
			return "return " + g.GenerateExpression() + ";"
		}
		return g.GenerateExpression() + ";"
	default:
		return g.GenerateExpression() + ";"
	}
}
