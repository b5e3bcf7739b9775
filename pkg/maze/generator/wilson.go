package generator

import (
	"fmt"

	"mazewalk/pkg/engine/random"
	"mazewalk/pkg/engine/world"
)

// Wilson generates a maze with Wilson's loop-erased random walk.
//
// One Step moves the current walk by a single cell. When the walk reaches a
// node already in the tree, the whole walk is spliced into the tree in that
// same Step. When the walk crosses itself the loop is erased immediately, so
// the stored path never visits a node twice.
type Wilson struct {
	base
	unvisited     *nodeSet
	path          []world.Link
	onPath        map[world.Cell]int
	lastDirection world.Direction
	lastWalk      []world.Link
}

// NewWilson creates an uninitialized Wilson generator
func NewWilson() *Wilson {
	return &Wilson{}
}

// Name returns the name of this generator
func (w *Wilson) Name() string {
	return "wilson"
}

// Init adds one random node to the tree
func (w *Wilson) Init(grid *world.Grid, src random.Source) error {
	if err := w.begin(grid, src); err != nil {
		return err
	}

	w.unvisited = newNodeSet(grid.Nodes())
	start := w.unvisited.random(src)
	w.unvisited.remove(start)
	grid.MarkPassage(start)

	w.path = nil
	w.onPath = make(map[world.Cell]int)
	w.lastDirection = world.None
	w.lastWalk = nil
	return nil
}

// Step advances the random walk by one move, committing it to the tree when
// it reaches a tree node.
func (w *Wilson) Step() (bool, error) {
	if w.status != InProgress {
		return w.settled()
	}
	if w.unvisited.len() == 0 {
		w.complete()
		return true, nil
	}
	w.steps++

	// A new walk keeps the previous walk's last direction.
	if len(w.path) == 0 {
		origin := w.unvisited.random(w.src)
		w.push(world.Origin(origin))
	}

	tail := w.path[len(w.path)-1].Node
	dir, ok := w.chooseDirection(tail)
	if !ok {
		return false, w.fail(fmt.Errorf("%w: no move from %v", ErrWalkOutOfBounds, tail))
	}
	w.lastDirection = dir

	node, connector := tail.Step(dir)
	if !w.grid.InBounds(node) {
		return false, w.fail(fmt.Errorf("%w: %v", ErrWalkOutOfBounds, node))
	}
	next := world.Link{Node: node, Connector: connector}

	if !w.unvisited.has(node) {
		w.path = append(w.path, next)
		w.commit()
		return w.status == Completed, nil
	}

	if idx, looped := w.onPath[node]; looped {
		w.erase(idx, dir)
		return false, nil
	}

	w.push(next)
	return false, nil
}

// chooseDirection draws a move from tail. Directions that would leave the
// grid are never chosen; the reverse of the previous move is avoided unless
// it is the only move left.
func (w *Wilson) chooseDirection(tail world.Cell) (world.Direction, bool) {
	var inBounds, preferred []world.Direction
	reverse := w.lastDirection.Opposite()
	for _, dir := range world.AllDirections() {
		node, _ := tail.Step(dir)
		if !w.grid.InBounds(node) {
			continue
		}
		inBounds = append(inBounds, dir)
		if w.lastDirection == world.None || dir != reverse {
			preferred = append(preferred, dir)
		}
	}

	candidates := preferred
	if len(candidates) == 0 {
		candidates = inBounds
	}
	if len(candidates) == 0 {
		return world.None, false
	}
	dir, _ := random.Pick(w.src, candidates)
	return dir, true
}

func (w *Wilson) push(l world.Link) {
	w.onPath[l.Node] = len(w.path)
	w.path = append(w.path, l)
}

// erase truncates the walk to end at index idx, dropping the loop closed by
// a move in dir. The direction the walk arrived at idx is restored, unless
// that would forbid carrying on in dir: in a dead-end corridor the walk
// would otherwise bounce between the end and the erased node forever.
func (w *Wilson) erase(idx int, dir world.Direction) {
	for _, l := range w.path[idx+1:] {
		delete(w.onPath, l.Node)
	}
	w.path = w.path[:idx+1]

	if len(w.path) < 2 {
		w.lastDirection = world.None
		return
	}
	restored := world.DirectionBetween(w.path[len(w.path)-2].Node, w.path[len(w.path)-1].Node)
	if restored == dir.Opposite() {
		restored = dir
	}
	w.lastDirection = restored
}

// commit splices the finished walk into the tree
func (w *Wilson) commit() {
	for _, l := range w.path {
		w.unvisited.remove(l.Node)
		w.carve(l)
	}
	w.lastWalk = w.path
	w.path = nil
	w.onPath = make(map[world.Cell]int)

	if w.unvisited.len() == 0 {
		w.complete()
	}
}

// Path returns the current loop-erased walk
func (w *Wilson) Path() []world.Link {
	return copyLinks(w.path)
}

// LastWalk returns the most recently committed walk, including the tree node
// it ended on.
func (w *Wilson) LastWalk() []world.Link {
	return copyLinks(w.lastWalk)
}

// LastDirection returns the direction of the walk's most recent move
func (w *Wilson) LastDirection() world.Direction {
	return w.lastDirection
}

// Unvisited returns the nodes not yet in the tree
func (w *Wilson) Unvisited() []world.Cell {
	if w.unvisited == nil {
		return nil
	}
	return w.unvisited.slice()
}
