package prettyprinter_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/funvibe/monkey/internal/ast"
	"github.com/funvibe/monkey/internal/lexer"
	"github.com/funvibe/monkey/internal/parser"
	"github.com/funvibe/monkey/internal/prettyprinter"
)

func parse(t *testing.T, input string) *ast.Program {
	t.Helper()
	program, err := parser.Parse(input)
	if err != nil {
		t.Fatalf("parse %q: %v", input, err)
	}
	return program
}

func TestCodePrinter(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"let", "let x = 1 + 2 * 3", "let x = 1 + 2 * 3;\n"},
		{"needed_parens", "(1 + 2) * 3", "(1 + 2) * 3;\n"},
		{"redundant_parens", "((1 * 2)) + 3", "1 * 2 + 3;\n"},
		{"left_assoc", "(a - b) - c", "a - b - c;\n"},
		{"right_operand", "a - (b - c)", "a - (b - c);\n"},
		{"prefix_group", "-(5 + 5)", "-(5 + 5);\n"},
		{"prefix_plain", "-a * b", "-a * b;\n"},
		{"bang", "!(true == false)", "!(true == false);\n"},
		{"comparison", "(1 < 2) == (3 > 4)", "1 < 2 == 3 > 4;\n"},
		{"call_on_group", "(a + b)(1)", "(a + b)(1);\n"},
		{"index", "[1,2][0]", "[1, 2][0];\n"},
		{"prefix_callee", "(-f)(x)", "(-f)(x);\n"},
		{"prefix_of_call", "-f(x)", "-f(x);\n"},
		{"string", `"hi"`, "\"hi\";\n"},
		{"return", "return x", "return x;\n"},
		{"empty_fn", "fn() {}", "fn() {};\n"},
		{"function", "let f = fn(x, y) { x + y };", "let f = fn(x, y) {\n    x + y;\n};\n"},
		{"if_else", "if (a < b) { a } else { b }", "if (a < b) {\n    a;\n} else {\n    b;\n};\n"},
		{"small_hash", `{"a": 1, true: 2}`, "{\"a\": 1, true: 2};\n"},
		{"big_hash", `{"a": 1, "b": 2, "c": 3, "d": 4}`, "{\n    \"a\": 1,\n    \"b\": 2,\n    \"c\": 3,\n    \"d\": 4\n};\n"},
		{"nested", "fn(x) { if (x) { return 1; } 2 }", "fn(x) {\n    if (x) {\n        return 1;\n    };\n    2;\n};\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := prettyprinter.Format(parse(t, tt.input)); got != tt.want {
				t.Errorf("Format(%q) =\n%s\nwant:\n%s", tt.input, got, tt.want)
			}
		})
	}
}

func TestCodePrinterRoundTrip(t *testing.T) {
	inputs := []string{
		"a + b * c + d / e - f",
		"-(5 + 5) * -a",
		"add(a, b, 1, 2 * 3, 4 + 5, add(6, 7 * 8))",
		"a * [1, 2, 3, 4][b * c] * d",
		"let newAdder = fn(x) { fn(y) { x + y } }; let addTwo = newAdder(2); addTwo(3)",
		`let h = {"one": 1, "two": 2, "three": 3, "four": 4}; h["one"]`,
		"if (1 > 2) { 10 } else { if (true) { 20 } }",
		"fn(x) { x }(5)",
		"a - (b - (c - d))",
		"!!true == !false",
		"(-a)(1)",
		"(!h)[0] + -a[1]",
	}

	for _, input := range inputs {
		original := parse(t, input)
		formatted := prettyprinter.Format(original)
		reparsed := parse(t, formatted)
		if original.String() != reparsed.String() {
			t.Errorf("round trip changed meaning of %q:\nformatted: %s\nbefore: %s\nafter:  %s",
				input, formatted, original.String(), reparsed.String())
		}
	}
}

func TestTreePrinter(t *testing.T) {
	program := parse(t, "let x = 1 + 2;\nf(x)[0]")

	tp := prettyprinter.NewTreePrinter()
	program.Accept(tp)

	want := `Program
  LetStatement x @1:1
    InfixExpression + @1:11
      IntegerLiteral 1 @1:9
      IntegerLiteral 2 @1:13
  ExpressionStatement @2:1
    IndexExpression @2:5
      CallExpression (1) @2:2
        function:
          Identifier f @2:1
        arg:
          Identifier x @2:3
      index:
        IntegerLiteral 0 @2:6
`
	if got := tp.String(); got != want {
		t.Errorf("tree mismatch.\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestWriteTokenTable(t *testing.T) {
	var buf bytes.Buffer
	prettyprinter.WriteTokenTable(&buf, lexer.Tokenize(`let s = "hi";`))

	out := buf.String()
	for _, want := range []string{"Pos", "Type", "Literal", "LET", `"let"`, "STRING", `"hi"`, "1:9", "EOF"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}
