package generator

import (
	"mazewalk/pkg/engine/random"
	"mazewalk/pkg/engine/world"
)

// Prim generates a maze with randomized Prim's algorithm.
//
// The frontier list may hold duplicate or stale entries. They are filtered
// lazily when popped: an entry whose node is already a passage is dropped
// without carving. Keeping duplicates preserves the weighting of the random
// index draw.
type Prim struct {
	base
	frontiers []world.Link
}

// NewPrim creates an uninitialized Prim generator
func NewPrim() *Prim {
	return &Prim{}
}

// Name returns the name of this generator
func (p *Prim) Name() string {
	return "prim"
}

// Init seeds the frontier with a random node
func (p *Prim) Init(grid *world.Grid, src random.Source) error {
	if err := p.begin(grid, src); err != nil {
		return err
	}

	seed, _ := random.Pick(src, grid.Nodes())
	p.frontiers = []world.Link{world.Origin(seed)}
	return nil
}

// Step resolves one randomly chosen frontier entry
func (p *Prim) Step() (bool, error) {
	if p.status != InProgress {
		return p.settled()
	}
	if len(p.frontiers) == 0 {
		p.complete()
		return true, nil
	}
	p.steps++

	idx := p.src.Intn(len(p.frontiers))
	entry := p.frontiers[idx]

	if p.grid.IsWall(entry.Node) {
		p.carve(entry)

		for _, dir := range world.AllDirections() {
			node, connector := entry.Node.Step(dir)
			if p.grid.InBounds(node) && p.grid.IsWall(node) {
				p.frontiers = append(p.frontiers, world.Link{Node: node, Connector: connector})
			}
		}
	}

	p.frontiers = append(p.frontiers[:idx], p.frontiers[idx+1:]...)
	if len(p.frontiers) == 0 {
		p.complete()
	}

	return p.status == Completed, nil
}

// Path returns the current frontier list
func (p *Prim) Path() []world.Link {
	return copyLinks(p.frontiers)
}

// Frontiers returns the current frontier list, duplicates included
func (p *Prim) Frontiers() []world.Link {
	return copyLinks(p.frontiers)
}
