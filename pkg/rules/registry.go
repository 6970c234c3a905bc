package rules

import (
	"fmt"
	"sort"
)

// Factory builds a fresh rule instance. Engines take their own
// instances so configured state is never shared between lint runs.
type Factory func() Rule

var builtins = map[string]Factory{}

// Register adds a builtin rule factory. It panics on duplicate IDs;
// registration happens in init and a collision is a programming error.
func Register(id string, factory Factory) {
	if _, exists := builtins[id]; exists {
		panic(fmt.Sprintf("rule %q registered twice", id))
	}
	builtins[id] = factory
}

// BuiltinIDs returns the registered rule IDs in sorted order.
func BuiltinIDs() []string {
	ids := make([]string, 0, len(builtins))
	for id := range builtins {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// NewBuiltin returns a fresh instance of the rule with the given ID.
func NewBuiltin(id string) (Rule, bool) {
	factory, ok := builtins[id]
	if !ok {
		return nil, false
	}
	return factory(), true
}

// NewBuiltinRules returns fresh instances of every registered rule,
// ordered by ID.
func NewBuiltinRules() []Rule {
	ids := BuiltinIDs()
	instances := make([]Rule, 0, len(ids))
	for _, id := range ids {
		instances = append(instances, builtins[id]())
	}
	return instances
}
