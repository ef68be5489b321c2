package evaluator

type ObjectType string

const (
	INTEGER_OBJ      = "INTEGER"
	BOOLEAN_OBJ      = "BOOLEAN"
	NULL_OBJ         = "NULL"
	STRING_OBJ       = "STRING"
	ARRAY_OBJ        = "ARRAY"
	HASH_OBJ         = "HASH"
	FUNCTION_OBJ     = "FUNCTION"
	BUILTIN_OBJ      = "BUILTIN"
	RETURN_VALUE_OBJ = "RETURN_VALUE"
	ERROR_OBJ        = "ERROR"
)

type Object interface {
	Type() ObjectType
	Inspect() string
}

// HashKey identifies a hashable value inside a Hash. Two keys are equal
// only if both the type and the derived value match.
type HashKey struct {
	Type  ObjectType
	Value uint64
}

// Hashable is implemented by Integer, Boolean and String.
type Hashable interface {
	Object
	HashKey() HashKey
}
