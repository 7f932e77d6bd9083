package keymap

import (
	"slices"
	"strconv"
)

// entry is what a single key stands for. index is the snap point of an
// ActionSnap digit key and -1 otherwise.
type entry struct {
	action Action
	index  int
}

// Resolver maps key strings to actions. A key bound twice resolves to its
// last binding.
type Resolver struct {
	keys  map[string]entry
	order []Binding
}

// NewResolver creates a resolver from bindings.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		keys:  make(map[string]entry, len(bindings)),
		order: bindings,
	}
	for _, b := range bindings {
		for _, k := range b.Keys {
			r.keys[k] = entry{action: b.Action, index: snapIndex(b.Action, k)}
		}
	}
	return r
}

// snapIndex parses the digit of a snap key.
func snapIndex(action Action, k string) int {
	if action != ActionSnap || len(k) != 1 {
		return -1
	}
	n, err := strconv.Atoi(k)
	if err != nil {
		return -1
	}
	return n
}

// Resolve returns the action bound to key, or "" when key is unbound.
func (r *Resolver) Resolve(key string) Action {
	return r.keys[key].action
}

// ResolveSnap returns the snap index of a digit key bound to ActionSnap.
func (r *Resolver) ResolveSnap(key string) (index int, ok bool) {
	e, found := r.keys[key]
	if !found || e.index < 0 {
		return 0, false
	}
	return e.index, true
}

// KeysFor lists the keys bound to action in binding order, each once.
// Nil when nothing is bound.
func (r *Resolver) KeysFor(action Action) []string {
	var out []string
	for _, b := range r.order {
		if b.Action != action {
			continue
		}
		for _, k := range b.Keys {
			if !slices.Contains(out, k) && r.keys[k].action == action {
				out = append(out, k)
			}
		}
	}
	return out
}
