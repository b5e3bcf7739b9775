package generator

import (
	"mazewalk/pkg/engine/random"
	"mazewalk/pkg/engine/world"
)

// DFS generates a maze with the recursive backtracker. The path stack is both
// the current depth-first branch and the backtracking history.
type DFS struct {
	base
	unvisited *nodeSet
	path      []world.Link
}

// NewDFS creates an uninitialized recursive backtracker
func NewDFS() *DFS {
	return &DFS{}
}

// Name returns the name of this generator
func (d *DFS) Name() string {
	return "dfs"
}

// Init picks a random start node and carves it
func (d *DFS) Init(grid *world.Grid, src random.Source) error {
	if err := d.begin(grid, src); err != nil {
		return err
	}

	d.unvisited = newNodeSet(grid.Nodes())
	start := d.unvisited.random(src)
	d.unvisited.remove(start)
	grid.MarkPassage(start)
	d.path = []world.Link{world.Origin(start)}
	return nil
}

// Step extends the current branch by one unvisited neighbour, or backtracks
// when the branch is a dead end.
func (d *DFS) Step() (bool, error) {
	if d.status != InProgress {
		return d.settled()
	}
	if len(d.path) == 0 {
		d.complete()
		return true, nil
	}
	d.steps++

	current := d.path[len(d.path)-1].Node

	var neighbours []world.Link
	for _, dir := range world.AllDirections() {
		node, connector := current.Step(dir)
		if d.unvisited.has(node) {
			neighbours = append(neighbours, world.Link{Node: node, Connector: connector})
		}
	}

	if len(neighbours) > 0 {
		next, _ := random.Pick(d.src, neighbours)
		d.path = append(d.path, next)
		d.unvisited.remove(next.Node)
		d.carve(next)
	} else {
		d.path = d.path[:len(d.path)-1]
		if len(d.path) == 0 {
			d.complete()
		}
	}

	return d.status == Completed, nil
}

// Path returns a copy of the current branch
func (d *DFS) Path() []world.Link {
	return copyLinks(d.path)
}

// Unvisited returns the nodes not yet carved
func (d *DFS) Unvisited() []world.Cell {
	if d.unvisited == nil {
		return nil
	}
	return d.unvisited.slice()
}
