package evaluator

import (
	"bytes"
	"strings"
	"testing"

	"github.com/funvibe/monkey/internal/lexer"
	"github.com/funvibe/monkey/internal/parser"
)

func testEval(t *testing.T, input string) Object {
	t.Helper()
	p := parser.New(lexer.New(input))
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		t.Fatalf("parse errors for %q:\n%s", input, strings.Join(errs, "\n"))
	}
	return New().Eval(program, NewEnvironment())
}

func testIntegerObject(t *testing.T, obj Object, expected int64) {
	t.Helper()
	result, ok := obj.(*Integer)
	if !ok {
		t.Fatalf("object is not Integer. got=%T (%+v)", obj, obj)
	}
	if result.Value != expected {
		t.Errorf("object has wrong value. got=%d, want=%d", result.Value, expected)
	}
}

func testBooleanObject(t *testing.T, obj Object, expected bool) {
	t.Helper()
	want := nativeBoolToBooleanObject(expected)
	if obj != want {
		t.Errorf("object is not the %v singleton. got=%T (%+v)", expected, obj, obj)
	}
}

func testNullObject(t *testing.T, obj Object) {
	t.Helper()
	if obj != NULL {
		t.Errorf("object is not NULL. got=%T (%+v)", obj, obj)
	}
}

func testErrorObject(t *testing.T, obj Object, message string) {
	t.Helper()
	errObj, ok := obj.(*Error)
	if !ok {
		t.Fatalf("no error object returned. got=%T (%+v)", obj, obj)
	}
	if errObj.Message != message {
		t.Errorf("wrong error message. got=%q, want=%q", errObj.Message, message)
	}
}

func TestEvalIntegerExpression(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"5", 5},
		{"10", 10},
		{"-5", -5},
		{"-10", -10},
		{"5 + 5 + 5 + 5 - 10", 10},
		{"2 * 2 * 2 * 2 * 2", 32},
		{"-50 + 100 + -50", 0},
		{"5 * 2 + 10", 20},
		{"5 + 2 * 10", 25},
		{"20 + 2 * -10", 0},
		{"50 / 2 * 2 + 10", 60},
		{"2 * (5 + 10)", 30},
		{"3 * 3 * 3 + 10", 37},
		{"3 * (3 * 3) + 10", 37},
		{"(5 + 10 * 2 + 15 / 3) * 2 + -10", 50},
		{"7 / 2", 3},
		{"-7 / 2", -4},
		{"7 / -2", -4},
		{"-7 / -2", 3},
		{"-8 / 2", -4},
		{"0 / 5", 0},
	}

	for _, tt := range tests {
		testIntegerObject(t, testEval(t, tt.input), tt.expected)
	}
}

func TestEvalBooleanExpression(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"true", true},
		{"false", false},
		{"1 < 2", true},
		{"1 > 2", false},
		{"1 < 1", false},
		{"1 > 1", false},
		{"1 == 1", true},
		{"1 != 1", false},
		{"1 == 2", false},
		{"1 != 2", true},
		{"true == true", true},
		{"false == false", true},
		{"true == false", false},
		{"true != false", true},
		{"false != true", true},
		{"(1 < 2) == true", true},
		{"(1 < 2) == false", false},
		{"(1 > 2) == true", false},
		{"(1 > 2) == false", true},
	}

	for _, tt := range tests {
		testBooleanObject(t, testEval(t, tt.input), tt.expected)
	}
}

func TestSingletonsAreIdentityStable(t *testing.T) {
	env := NewEnvironment()
	e := New()
	first := e.Eval(mustParse(t, "true"), env)
	second := e.Eval(mustParse(t, "1 == 1"), env)
	if first != second || first != TRUE {
		t.Errorf("true is not a singleton: %p vs %p", first, second)
	}
	if e.Eval(mustParse(t, "if (false) { 1 }"), env) != NULL {
		t.Error("missing else branch did not yield NULL")
	}
	if e.Eval(mustParse(t, "[][0]"), env) != NULL {
		t.Error("out of range index did not yield NULL")
	}
}

func TestBangOperator(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"!true", false},
		{"!false", true},
		{"!5", false},
		{"!!true", true},
		{"!!false", false},
		{"!!5", true},
		{`!""`, false},
		{"![]", false},
		{"!if (false) { 1 }", true},
	}

	for _, tt := range tests {
		testBooleanObject(t, testEval(t, tt.input), tt.expected)
	}
}

func TestIfElseExpressions(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"if (true) { 10 }", 10},
		{"if (false) { 10 }", nil},
		{"if (1) { 10 }", 10},
		{"if (1 < 2) { 10 }", 10},
		{"if (1 > 2) { 10 }", nil},
		{"if (1 > 2) { 10 } else { 20 }", 20},
		{"if (1 < 2) { 10 } else { 20 }", 10},
		{`if ("") { 10 } else { 20 }`, 10},
	}

	for _, tt := range tests {
		evaluated := testEval(t, tt.input)
		if integer, ok := tt.expected.(int); ok {
			testIntegerObject(t, evaluated, int64(integer))
		} else {
			testNullObject(t, evaluated)
		}
	}
}

func TestReturnStatements(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"return 10;", 10},
		{"return 10; 9;", 10},
		{"return 2 * 5; 9;", 10},
		{"9; return 2 * 5; 9;", 10},
		{`
if (10 > 1) {
  if (10 > 1) {
    return 10;
  }

  return 1;
}
`, 10},
		{"let f = fn(x) { if (x > 0) { return 1; } return 2; }; f(5);", 1},
		{"let f = fn(x) { if (x > 0) { return 1; } return 2; }; f(-5);", 2},
		{"let f = fn() { return 1; 2 }; f() + 10;", 11},
		// A return inside a nested construct leaves the function without
		// being wrapped twice or stored as a value.
		{"let f = fn() { return if (true) { return 1; }; }; f() + 1;", 2},
		{"let g = fn() { let x = if (true) { return 7; }; 99 }; g();", 7},
		{"let h = fn() { len([if (true) { return 3; }]); 42 }; h();", 3},
		{"let k = fn() { -if (true) { return 5; } }; k();", 5},
		{"let f = fn() { 1 + if (true) { return 4; }; 0 }; f();", 4},
		{"let f = fn() { if (true) { return 6; } + 1 }; f();", 6},
		{"let f = fn() { {\"a\": if (true) { return 8; }}; 0 }; f();", 8},
		{"let f = fn() { {if (true) { return 9; }: 1}; 0 }; f();", 9},
		{"let f = fn() { [1, 2][if (true) { return 10; }]; 0 }; f();", 10},
		{"let f = fn() { (if (true) { return 11; })[0]; 0 }; f();", 11},
		{"let f = fn() { len(if (true) { return 12; }, 1); 0 }; f();", 12},
		{"let f = fn() { if (true) { return fn() { 0 }; }(); 0 }; f()();", 0},
		{"let f = fn() { if (if (true) { return 13; }) { 1 } else { 2 } }; f();", 13},
		{"let x = if (true) { return 14; }; 99;", 14},
	}

	for _, tt := range tests {
		testIntegerObject(t, testEval(t, tt.input), tt.expected)
	}
}

func TestErrorHandling(t *testing.T) {
	tests := []struct {
		input           string
		expectedMessage string
	}{
		{"5 + true;", "type mismatch: INTEGER + BOOLEAN"},
		{"5 + true; 5;", "type mismatch: INTEGER + BOOLEAN"},
		{"-true", "unknown operator: -BOOLEAN"},
		{"true + false;", "unknown operator: BOOLEAN + BOOLEAN"},
		{"5; true + false; 5", "unknown operator: BOOLEAN + BOOLEAN"},
		{"if (10 > 1) { true + false; }", "unknown operator: BOOLEAN + BOOLEAN"},
		{`
if (10 > 1) {
  if (10 > 1) {
    return true + false;
  }

  return 1;
}
`, "unknown operator: BOOLEAN + BOOLEAN"},
		{"foobar", "identifier not found: foobar"},
		{`"Hello" - "World"`, "unknown operator: STRING - STRING"},
		{`"a" == "a"`, "unknown operator: STRING == STRING"},
		{`{"name": "Monkey"}[fn(x) { x }];`, "unusable as hash key: FUNCTION"},
		{`{fn(x) { x }: 1}`, "unusable as hash key: FUNCTION"},
		{"1[0]", "index operator not supported: INTEGER"},
		{`[1, 2]["a"]`, "index operator not supported: ARRAY"},
		{"1 / 0", "division by zero"},
		{"5(1)", "not a function: INTEGER"},
		{`let x = "s"; x()`, "not a function: STRING"},
		{"[1, foo, bar]", "identifier not found: foo"},
		{"let f = fn(a, b) { a }; f(1, nope)", "identifier not found: nope"},
		{"1 == true", "type mismatch: INTEGER == BOOLEAN"},
		{"if (false) { 1 } == if (false) { 2 }", "unknown operator: NULL == NULL"},
	}

	for _, tt := range tests {
		testErrorObject(t, testEval(t, tt.input), tt.expectedMessage)
	}
}

func TestErrorIsNotRewrapped(t *testing.T) {
	evaluated := testEval(t, "let f = fn() { 1 + true }; let g = fn() { f() }; g()")
	testErrorObject(t, evaluated, "type mismatch: INTEGER + BOOLEAN")
	errObj := evaluated.(*Error)
	if errObj.Line != 1 || errObj.Column != 18 {
		t.Errorf("error at %d:%d, want 1:18 (the '+')", errObj.Line, errObj.Column)
	}
	if got := errObj.Inspect(); got != "ERROR: type mismatch: INTEGER + BOOLEAN" {
		t.Errorf("Inspect() = %q", got)
	}
}

func TestLetStatements(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"let a = 5; a;", 5},
		{"let a = 5 * 5; a;", 25},
		{"let a = 5; let b = a; b;", 5},
		{"let a = 5; let b = a; let c = a + b + 5; c;", 15},
		{"let a = 1; let a = a + 1; a", 2},
	}

	for _, tt := range tests {
		testIntegerObject(t, testEval(t, tt.input), tt.expected)
	}

	if got := testEval(t, "let a = 1;"); got != nil {
		t.Errorf("let produced a value: %v", got.Inspect())
	}
}

func TestFunctionObject(t *testing.T) {
	evaluated := testEval(t, "fn(x) { x + 2; };")
	fn, ok := evaluated.(*Function)
	if !ok {
		t.Fatalf("object is not Function. got=%T (%+v)", evaluated, evaluated)
	}
	if len(fn.Parameters) != 1 || fn.Parameters[0].String() != "x" {
		t.Fatalf("parameters wrong: %v", fn.Parameters)
	}
	if fn.Body.String() != "(x + 2)" {
		t.Fatalf("body is not %q. got=%q", "(x + 2)", fn.Body.String())
	}
	if got := fn.Inspect(); got != "fn(x) {\n(x + 2)\n}" {
		t.Errorf("Inspect() = %q", got)
	}
}

func TestFunctionApplication(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"let identity = fn(x) { x; }; identity(5);", 5},
		{"let identity = fn(x) { return x; }; identity(5);", 5},
		{"let double = fn(x) { x * 2; }; double(5);", 10},
		{"let add = fn(x, y) { x + y; }; add(5, 5);", 10},
		{"let add = fn(x, y) { x + y; }; add(5 + 5, add(5, 5));", 20},
		{"fn(x) { x; }(5)", 5},
		{"let add = fn(x, y) { x + y; }; add(1, 2, 3);", 3},
		{"let fact = fn(n) { if (n < 2) { 1 } else { n * fact(n - 1) } }; fact(10)", 3628800},
	}

	for _, tt := range tests {
		testIntegerObject(t, testEval(t, tt.input), tt.expected)
	}
}

func TestMissingArgumentsBindNull(t *testing.T) {
	testNullObject(t, testEval(t, "let f = fn(x, y) { y }; f(1)"))
	testNullObject(t, testEval(t, "let f = fn() { }; f()"))
}

func TestClosures(t *testing.T) {
	input := `
let newAdder = fn(x) {
  fn(y) { x + y; };
};

let addTwo = newAdder(2);
addTwo(2);`

	testIntegerObject(t, testEval(t, input), 4)
}

func TestClosureSeesDefinitionScope(t *testing.T) {
	input := `
let x = 1;
let get = fn() { x };
let shadow = fn() { let x = 100; get() };
shadow();`

	testIntegerObject(t, testEval(t, input), 1)
}

func TestLetInFunctionDoesNotRebindOuter(t *testing.T) {
	input := `
let x = 1;
let f = fn() { let x = 2; x };
f() + x;`

	testIntegerObject(t, testEval(t, input), 3)
}

func TestStringLiteral(t *testing.T) {
	evaluated := testEval(t, `"Hello World!"`)
	str, ok := evaluated.(*String)
	if !ok {
		t.Fatalf("object is not String. got=%T (%+v)", evaluated, evaluated)
	}
	if str.Value != "Hello World!" {
		t.Errorf("String has wrong value. got=%q", str.Value)
	}
}

func TestStringConcatenation(t *testing.T) {
	evaluated := testEval(t, `"Hello" + " " + "World!"`)
	str, ok := evaluated.(*String)
	if !ok {
		t.Fatalf("object is not String. got=%T (%+v)", evaluated, evaluated)
	}
	if str.Value != "Hello World!" {
		t.Errorf("String has wrong value. got=%q", str.Value)
	}
}

func TestArrayLiterals(t *testing.T) {
	evaluated := testEval(t, "[1, 2 * 2, 3 + 3]")
	result, ok := evaluated.(*Array)
	if !ok {
		t.Fatalf("object is not Array. got=%T (%+v)", evaluated, evaluated)
	}
	if len(result.Elements) != 3 {
		t.Fatalf("array has wrong num of elements. got=%d", len(result.Elements))
	}
	testIntegerObject(t, result.Elements[0], 1)
	testIntegerObject(t, result.Elements[1], 4)
	testIntegerObject(t, result.Elements[2], 6)
	if got := result.Inspect(); got != "[1, 4, 6]" {
		t.Errorf("Inspect() = %q", got)
	}
}

func TestArrayIndexExpressions(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"[1, 2, 3][0]", 1},
		{"[1, 2, 3][1]", 2},
		{"[1, 2, 3][2]", 3},
		{"let i = 0; [1][i];", 1},
		{"[1, 2, 3][1 + 1];", 3},
		{"let myArray = [1, 2, 3]; myArray[2];", 3},
		{"let myArray = [1, 2, 3]; myArray[0] + myArray[1] + myArray[2];", 6},
		{"let myArray = [1, 2, 3]; let i = myArray[0]; myArray[i]", 2},
		{"[1, 2, 3][3]", nil},
		{"[1, 2, 3][-1]", nil},
	}

	for _, tt := range tests {
		evaluated := testEval(t, tt.input)
		if integer, ok := tt.expected.(int); ok {
			testIntegerObject(t, evaluated, int64(integer))
		} else {
			testNullObject(t, evaluated)
		}
	}
}

func TestHashLiterals(t *testing.T) {
	input := `let two = "two";
{
  "one": 10 - 9,
  two: 1 + 1,
  "thr" + "ee": 6 / 2,
  4: 4,
  true: 5,
  false: 6
}`

	evaluated := testEval(t, input)
	result, ok := evaluated.(*Hash)
	if !ok {
		t.Fatalf("Eval didn't return Hash. got=%T (%+v)", evaluated, evaluated)
	}

	expected := map[HashKey]int64{
		(&String{Value: "one"}).HashKey():   1,
		(&String{Value: "two"}).HashKey():   2,
		(&String{Value: "three"}).HashKey(): 3,
		(&Integer{Value: 4}).HashKey():      4,
		TRUE.HashKey():                      5,
		FALSE.HashKey():                     6,
	}

	if len(result.Pairs) != len(expected) {
		t.Fatalf("Hash has wrong num of pairs. got=%d", len(result.Pairs))
	}

	for expectedKey, expectedValue := range expected {
		pair, ok := result.Pairs[expectedKey]
		if !ok {
			t.Errorf("no pair for given key in Pairs")
			continue
		}
		testIntegerObject(t, pair.Value, expectedValue)
	}

	if got := result.Inspect(); got != "{one: 1, two: 2, three: 3, 4: 4, true: 5, false: 6}" {
		t.Errorf("Inspect() = %q", got)
	}
}

func TestHashLaterKeyOverwrites(t *testing.T) {
	evaluated := testEval(t, `{"a": 1, "b": 2, "a": 3}`)
	hash := evaluated.(*Hash)
	if hash.Len() != 2 {
		t.Fatalf("hash has %d pairs, want 2", hash.Len())
	}
	if got := hash.Inspect(); got != "{a: 3, b: 2}" {
		t.Errorf("Inspect() = %q", got)
	}
}

func TestHashIndexExpressions(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{`{"foo": 5}["foo"]`, 5},
		{`{"foo": 5}["bar"]`, nil},
		{`let key = "foo"; {"foo": 5}[key]`, 5},
		{`{}["foo"]`, nil},
		{`{5: 5}[5]`, 5},
		{`{true: 5}[true]`, 5},
		{`{false: 5}[false]`, 5},
		{`{1: 5}[true]`, nil},
	}

	for _, tt := range tests {
		evaluated := testEval(t, tt.input)
		if integer, ok := tt.expected.(int); ok {
			testIntegerObject(t, evaluated, int64(integer))
		} else {
			testNullObject(t, evaluated)
		}
	}
}

func TestUnknownNodeType(t *testing.T) {
	testErrorObject(t, New().Eval(&bogusNode{}, NewEnvironment()), "unknown node type: *evaluator.bogusNode")
	if New().Eval(nil, NewEnvironment()) != nil {
		t.Error("nil node produced a value")
	}
}

func TestTraceLogging(t *testing.T) {
	var buf bytes.Buffer
	e := New()
	e.Logger = NewTraceLogger(&buf)

	e.WithRun("run-1").Eval(mustParse(t, "let f = fn(x) { x }; f(len([1])); 1 + true"), NewEnvironment())

	out := buf.String()
	for _, want := range []string{"msg=call", "fn=f", "msg=builtin", "name=len", "msg=error", "run=run-1"} {
		if !strings.Contains(out, want) {
			t.Errorf("trace output missing %q:\n%s", want, out)
		}
	}
}
