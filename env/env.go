// Package env implements the Environment of spec §3: an append-only,
// last-write-wins identifier-to-Value mapping with scoped shadowing for
// function calls, following the teacher's Context (value/context.go): a
// stack of scopes where only the top frame is pushed for a call and every
// other lookup falls through to the parent.
package env

import "github.com/DinaGala/computor-v2/value"

// Environment holds variable bindings for one interpreter session.
type Environment struct {
	stack []map[string]value.Value
}

// New returns a fresh Environment with a single global scope.
func New() *Environment {
	return &Environment{stack: []map[string]value.Value{make(map[string]value.Value)}}
}

// IsDefined reports whether name is bound in any scope. It satisfies
// parser.EnvLookup.
func (e *Environment) IsDefined(name string) bool {
	_, ok := e.Lookup(name)
	return ok
}

// Lookup searches from the innermost scope outward.
func (e *Environment) Lookup(name string) (value.Value, bool) {
	for i := len(e.stack) - 1; i >= 0; i-- {
		if v, ok := e.stack[i][name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Assign binds name to v in the current (innermost) scope.
func (e *Environment) Assign(name string, v value.Value) {
	e.stack[len(e.stack)-1][name] = v
}

// PushCall pushes a new scope binding only param to arg; every other
// lookup falls through to the parent scopes (spec §9: "function call
// pushes a child scope that shadows the parameter only").
func (e *Environment) PushCall(param string, arg value.Value) {
	scope := map[string]value.Value{param: arg}
	e.stack = append(e.stack, scope)
}

// PopCall removes the scope pushed by the most recent PushCall.
func (e *Environment) PopCall() {
	e.stack = e.stack[:len(e.stack)-1]
}

// Snapshot returns a shallow copy of every global-scope binding, used to restore the
// Environment after a failed statement (spec §5: "a failed evaluation
// leaves the Environment unchanged").
func (e *Environment) Snapshot() map[string]value.Value {
	global := e.stack[0]
	out := make(map[string]value.Value, len(global))
	for k, v := range global {
		out[k] = v
	}
	return out
}

// Restore replaces the global scope with a previously captured Snapshot.
func (e *Environment) Restore(snapshot map[string]value.Value) {
	e.stack = []map[string]value.Value{snapshot}
}

// Names returns every currently bound identifier in the global scope, for
// the `)vars`/`)funcs` introspection commands.
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.stack[0]))
	for name := range e.stack[0] {
		names = append(names, name)
	}
	return names
}
