package generator

import (
	"fmt"

	"github.com/spakin/disjoint"

	"mazewalk/pkg/engine/random"
	"mazewalk/pkg/engine/world"
)

// group is one set of the partition, kept extensionally for display
type group struct {
	members []world.Cell
}

// Kruskal generates a maze with randomized Kruskal's algorithm.
//
// Set membership is answered by a disjoint-set forest; the member lists are
// kept alongside so the partition can be drawn. A single Step may test many
// connectors before it finds one joining two different groups.
type Kruskal struct {
	base
	elements map[world.Cell]*disjoint.Element
	byRoot   map[*disjoint.Element]*group
	groups   []*group
	edges    []world.Cell
	tested   int
}

// NewKruskal creates an uninitialized Kruskal generator
func NewKruskal() *Kruskal {
	return &Kruskal{}
}

// Name returns the name of this generator
func (k *Kruskal) Name() string {
	return "kruskal"
}

// Init puts every node in its own group and lists every connector
func (k *Kruskal) Init(grid *world.Grid, src random.Source) error {
	if err := k.begin(grid, src); err != nil {
		return err
	}

	nodes := grid.Nodes()
	k.elements = make(map[world.Cell]*disjoint.Element, len(nodes))
	k.byRoot = make(map[*disjoint.Element]*group, len(nodes))
	k.groups = make([]*group, 0, len(nodes))
	for _, n := range nodes {
		e := disjoint.NewElement()
		g := &group{members: []world.Cell{n}}
		k.elements[n] = e
		k.byRoot[e] = g
		k.groups = append(k.groups, g)
	}
	k.edges = grid.Connectors()
	k.tested = 0

	// A lone node never takes part in a merge, so carve it now.
	if len(nodes) == 1 {
		grid.MarkPassage(nodes[0])
	}
	return nil
}

// Step pops random connectors until one joins two groups, then merges them
func (k *Kruskal) Step() (bool, error) {
	if k.status != InProgress {
		return k.settled()
	}
	if len(k.groups) == 1 {
		k.complete()
		return true, nil
	}
	k.steps++

	for {
		if len(k.edges) == 0 {
			return false, k.fail(fmt.Errorf("%w: %d groups left", ErrEdgesExhausted, len(k.groups)))
		}

		idx := k.src.Intn(len(k.edges))
		edge := k.edges[idx]
		k.edges = append(k.edges[:idx], k.edges[idx+1:]...)
		k.tested++

		a, b := edge.Endpoints()
		ea, okA := k.elements[a]
		eb, okB := k.elements[b]
		if !okA || !okB {
			continue
		}
		rootA, rootB := ea.Find(), eb.Find()
		if rootA == rootB {
			continue
		}

		k.merge(rootA, rootB)
		k.grid.MarkPassage(edge)
		break
	}

	if len(k.groups) == 1 {
		k.complete()
	}
	return k.status == Completed, nil
}

// merge folds the group rooted at rootB into the group rooted at rootA,
// carving any node that was still an uncarved singleton.
func (k *Kruskal) merge(rootA, rootB *disjoint.Element) {
	groupA, groupB := k.byRoot[rootA], k.byRoot[rootB]
	if len(groupA.members) == 1 {
		k.grid.MarkPassage(groupA.members[0])
	}
	if len(groupB.members) == 1 {
		k.grid.MarkPassage(groupB.members[0])
	}
	groupA.members = append(groupA.members, groupB.members...)

	for i, g := range k.groups {
		if g == groupB {
			k.groups = append(k.groups[:i], k.groups[i+1:]...)
			break
		}
	}

	disjoint.Union(rootA, rootB)
	delete(k.byRoot, rootA)
	delete(k.byRoot, rootB)
	k.byRoot[rootA.Find()] = groupA
}

// Path returns an empty slice; Kruskal has no single path to show
func (k *Kruskal) Path() []world.Link {
	return nil
}

// Groups returns a copy of the current partition
func (k *Kruskal) Groups() [][]world.Cell {
	out := make([][]world.Cell, len(k.groups))
	for i, g := range k.groups {
		out[i] = append([]world.Cell(nil), g.members...)
	}
	return out
}

// GroupCount returns the number of groups left
func (k *Kruskal) GroupCount() int {
	return len(k.groups)
}

// Edges returns the connectors not yet tested
func (k *Kruskal) Edges() []world.Cell {
	return append([]world.Cell(nil), k.edges...)
}

// Tested returns how many connectors have been popped in this run
func (k *Kruskal) Tested() int {
	return k.tested
}
