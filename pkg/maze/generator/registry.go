package generator

import "fmt"

// DefaultAlgorithm is the algorithm selected when none is given
const DefaultAlgorithm = "dfs"

// Available generators, in display order
var algorithms = []struct {
	name string
	make func() Generator
}{
	{"dfs", func() Generator { return NewDFS() }},
	{"prim", func() Generator { return NewPrim() }},
	{"wilson", func() Generator { return NewWilson() }},
	{"kruskal", func() Generator { return NewKruskal() }},
}

// New returns a fresh, uninitialized generator for the named algorithm
func New(name string) (Generator, error) {
	for _, a := range algorithms {
		if a.name == name {
			return a.make(), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Names returns the registered algorithm names in display order
func Names() []string {
	names := make([]string, len(algorithms))
	for i, a := range algorithms {
		names[i] = a.name
	}
	return names
}

// Title returns a human-readable name for an algorithm
func Title(name string) string {
	switch name {
	case "dfs":
		return "Recursive Backtracker"
	case "prim":
		return "Randomized Prim"
	case "wilson":
		return "Wilson's Walk"
	case "kruskal":
		return "Randomized Kruskal"
	default:
		return name
	}
}
