package evaluator

import (
	"bytes"
	"strings"
)

type Array struct {
	Elements []Object
}

func (a *Array) Type() ObjectType { return ARRAY_OBJ }
func (a *Array) Inspect() string {
	elements := make([]string, 0, len(a.Elements))
	for _, e := range a.Elements {
		elements = append(elements, e.Inspect())
	}
	return "[" + strings.Join(elements, ", ") + "]"
}

// HashPair keeps the original key next to the value so the hash can be
// printed and iterated.
type HashPair struct {
	Key   Object
	Value Object
}

type Hash struct {
	Pairs map[HashKey]HashPair
	// order is the first-insertion order of keys, used by Inspect.
	order []HashKey
}

func NewHash() *Hash {
	return &Hash{Pairs: make(map[HashKey]HashPair)}
}

// Set stores value under key. Re-setting an existing key replaces the pair
// but keeps its original position.
func (h *Hash) Set(key Hashable, value Object) {
	hk := key.HashKey()
	if _, ok := h.Pairs[hk]; !ok {
		h.order = append(h.order, hk)
	}
	h.Pairs[hk] = HashPair{Key: key, Value: value}
}

func (h *Hash) Get(key Hashable) (Object, bool) {
	pair, ok := h.Pairs[key.HashKey()]
	if !ok {
		return nil, false
	}
	return pair.Value, true
}

func (h *Hash) Len() int { return len(h.Pairs) }

func (h *Hash) Type() ObjectType { return HASH_OBJ }
func (h *Hash) Inspect() string {
	var out bytes.Buffer
	pairs := make([]string, 0, len(h.order))
	for _, hk := range h.order {
		pair := h.Pairs[hk]
		pairs = append(pairs, pair.Key.Inspect()+": "+pair.Value.Inspect())
	}
	out.WriteString("{")
	out.WriteString(strings.Join(pairs, ", "))
	out.WriteString("}")
	return out.String()
}
