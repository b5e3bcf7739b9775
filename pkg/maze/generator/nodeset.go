package generator

import (
	"mazewalk/pkg/engine/random"
	"mazewalk/pkg/engine/world"
)

// nodeSet is an ordered set of cells. Membership is O(1); removal swaps the
// last element into the hole so the order stays deterministic for a given
// sequence of operations.
type nodeSet struct {
	items []world.Cell
	index map[world.Cell]int
}

func newNodeSet(cells []world.Cell) *nodeSet {
	s := &nodeSet{
		items: make([]world.Cell, 0, len(cells)),
		index: make(map[world.Cell]int, len(cells)),
	}
	for _, c := range cells {
		s.add(c)
	}
	return s
}

func (s *nodeSet) add(c world.Cell) {
	if _, ok := s.index[c]; ok {
		return
	}
	s.index[c] = len(s.items)
	s.items = append(s.items, c)
}

func (s *nodeSet) has(c world.Cell) bool {
	_, ok := s.index[c]
	return ok
}

func (s *nodeSet) remove(c world.Cell) {
	i, ok := s.index[c]
	if !ok {
		return
	}
	last := len(s.items) - 1
	if i != last {
		moved := s.items[last]
		s.items[i] = moved
		s.index[moved] = i
	}
	s.items = s.items[:last]
	delete(s.index, c)
}

func (s *nodeSet) len() int {
	return len(s.items)
}

// random picks a member uniformly. The set must not be empty.
func (s *nodeSet) random(src random.Source) world.Cell {
	c, _ := random.Pick(src, s.items)
	return c
}

func (s *nodeSet) slice() []world.Cell {
	out := make([]world.Cell, len(s.items))
	copy(out, s.items)
	return out
}
