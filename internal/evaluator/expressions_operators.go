package evaluator

func (e *Evaluator) evalPrefixExpression(operator string, right Object) Object {
	switch operator {
	case "!":
		return e.evalBangOperatorExpression(right)
	case "-":
		return e.evalMinusPrefixOperatorExpression(right)
	default:
		return newError("unknown operator: %s%s", operator, right.Type())
	}
}

func (e *Evaluator) evalBangOperatorExpression(right Object) Object {
	return nativeBoolToBooleanObject(!isTruthy(right))
}

func (e *Evaluator) evalMinusPrefixOperatorExpression(right Object) Object {
	integer, ok := right.(*Integer)
	if !ok {
		return newError("unknown operator: -%s", right.Type())
	}
	return &Integer{Value: -integer.Value}
}

func (e *Evaluator) evalInfixExpression(operator string, left, right Object) Object {
	switch {
	case left.Type() == INTEGER_OBJ && right.Type() == INTEGER_OBJ:
		return e.evalIntegerInfixExpression(operator, left.(*Integer), right.(*Integer))
	case left.Type() != right.Type():
		return newError("type mismatch: %s %s %s", left.Type(), operator, right.Type())
	case left.Type() == BOOLEAN_OBJ:
		// Booleans are singletons, so identity is equality.
		switch operator {
		case "==":
			return nativeBoolToBooleanObject(left == right)
		case "!=":
			return nativeBoolToBooleanObject(left != right)
		}
	case left.Type() == STRING_OBJ:
		if operator == "+" {
			return &String{Value: left.(*String).Value + right.(*String).Value}
		}
	}
	return newError("unknown operator: %s %s %s", left.Type(), operator, right.Type())
}

func (e *Evaluator) evalIntegerInfixExpression(operator string, left, right *Integer) Object {
	l, r := left.Value, right.Value

	switch operator {
	case "+":
		return &Integer{Value: l + r}
	case "-":
		return &Integer{Value: l - r}
	case "*":
		return &Integer{Value: l * r}
	case "/":
		if r == 0 {
			return newError("division by zero")
		}
		return &Integer{Value: floorDiv(l, r)}
	case "<":
		return nativeBoolToBooleanObject(l < r)
	case ">":
		return nativeBoolToBooleanObject(l > r)
	case "==":
		return nativeBoolToBooleanObject(l == r)
	case "!=":
		return nativeBoolToBooleanObject(l != r)
	default:
		return newError("unknown operator: %s %s %s", left.Type(), operator, right.Type())
	}
}

// floorDiv rounds the quotient toward negative infinity: -7 / 2 == -4.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
