package evaluator

import "sort"

func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]Object)}
}

func NewEnclosedEnvironment(outer *Environment) *Environment {
	env := NewEnvironment()
	env.outer = outer
	return env
}

// Environment is one lexical scope. Children share their outer scope by
// pointer; a closure keeps its defining scope alive. Evaluation is
// single-threaded, so there is no locking.
type Environment struct {
	store map[string]Object
	outer *Environment
}

// Get looks name up through the scope chain. The boolean distinguishes
// an absent binding from one bound to NULL.
func (e *Environment) Get(name string) (Object, bool) {
	obj, ok := e.store[name]
	if !ok && e.outer != nil {
		obj, ok = e.outer.Get(name)
	}
	return obj, ok
}

// Set binds name in this scope only, shadowing any outer binding.
func (e *Environment) Set(name string, val Object) Object {
	e.store[name] = val
	return val
}

// Names returns the names bound locally, sorted.
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.store))
	for name := range e.store {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
