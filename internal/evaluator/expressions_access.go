package evaluator

// evalIndexExpression: out-of-range array indexes and missing hash keys
// yield NULL, not an error.
func (e *Evaluator) evalIndexExpression(left, index Object) Object {
	switch {
	case left.Type() == ARRAY_OBJ && index.Type() == INTEGER_OBJ:
		return evalArrayIndexExpression(left.(*Array), index.(*Integer))
	case left.Type() == HASH_OBJ:
		return evalHashIndexExpression(left.(*Hash), index)
	default:
		return newError("index operator not supported: %s", left.Type())
	}
}

func evalArrayIndexExpression(array *Array, index *Integer) Object {
	idx := index.Value
	last := int64(len(array.Elements) - 1)

	if idx < 0 || idx > last {
		return NULL
	}
	return array.Elements[idx]
}

func evalHashIndexExpression(hash *Hash, index Object) Object {
	key, ok := index.(Hashable)
	if !ok {
		return newError("unusable as hash key: %s", index.Type())
	}

	value, ok := hash.Get(key)
	if !ok {
		return NULL
	}
	return value
}
