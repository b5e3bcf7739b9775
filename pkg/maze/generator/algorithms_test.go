package generator

import (
	"errors"
	"testing"

	"mazewalk/pkg/engine/random"
	"mazewalk/pkg/engine/world"
)

func distinctNodes(links []world.Link) bool {
	seen := make(map[world.Cell]bool, len(links))
	for _, l := range links {
		if seen[l.Node] {
			return false
		}
		seen[l.Node] = true
	}
	return true
}

func TestWilson_WalkNeverRevisitsANode(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		grid, _ := world.NewGrid(15, 15)
		w := NewWilson()
		if err := w.Init(grid, random.NewPCG(seed)); err != nil {
			t.Fatalf("Init error = %v", err)
		}
		commits := 0
		for {
			done, err := w.Step()
			if err != nil {
				t.Fatalf("seed %d: Step error = %v", seed, err)
			}
			if !distinctNodes(w.Path()) {
				t.Fatalf("seed %d: in-progress walk revisits a node: %v", seed, w.Path())
			}
			if len(w.Path()) == 0 && len(w.LastWalk()) > 0 {
				walk := w.LastWalk()
				if !distinctNodes(walk) {
					t.Fatalf("seed %d: committed walk revisits a node: %v", seed, walk)
				}
				for i := 1; i < len(walk); i++ {
					a, b := walk[i].Connector.Endpoints()
					prev := walk[i-1].Node
					if !(a == prev && b == walk[i].Node) && !(b == prev && a == walk[i].Node) {
						t.Fatalf("seed %d: link %d connector %v does not join %v and %v", seed, i, walk[i].Connector, prev, walk[i].Node)
					}
				}
				commits++
			}
			if done {
				break
			}
		}
		if commits == 0 {
			t.Errorf("seed %d: no walk was committed", seed)
		}
		assertSpanningTree(t, grid)
	}
}

func TestWilson_LoopErasureRestoresDirection(t *testing.T) {
	grid, _ := world.NewGrid(7, 7)
	w := NewWilson()
	if err := w.Init(grid, random.NewPCG(1)); err != nil {
		t.Fatalf("Init error = %v", err)
	}
	w.path = nil
	w.onPath = make(map[world.Cell]int)
	for _, l := range []world.Link{
		world.Origin(world.Cell{X: 2, Y: 2}),
		{Node: world.Cell{X: 4, Y: 2}, Connector: world.Cell{X: 3, Y: 2}},
		{Node: world.Cell{X: 4, Y: 4}, Connector: world.Cell{X: 4, Y: 3}},
		{Node: world.Cell{X: 2, Y: 4}, Connector: world.Cell{X: 3, Y: 4}},
	} {
		w.push(l)
	}

	w.erase(1, world.Up)
	if len(w.path) != 2 {
		t.Fatalf("len(path) = %d after erase(1, Up), want 2", len(w.path))
	}
	if w.LastDirection() != world.Right {
		t.Errorf("LastDirection() = %v after erase, want Right", w.LastDirection())
	}
	if _, ok := w.onPath[world.Cell{X: 2, Y: 4}]; ok {
		t.Error("erased node still indexed on the path")
	}

	w.erase(0, world.Left)
	if len(w.path) != 1 || w.LastDirection() != world.None {
		t.Errorf("erase(0): len(path) = %d, LastDirection() = %v, want 1, None", len(w.path), w.LastDirection())
	}
}

func TestWilson_EraseKeepsHeadingThroughCorridor(t *testing.T) {
	grid, _ := world.NewGrid(1, 9)
	w := NewWilson()
	if err := w.Init(grid, random.NewSequence(0)); err != nil {
		t.Fatalf("Init error = %v", err)
	}
	w.path = nil
	w.onPath = make(map[world.Cell]int)
	for _, l := range []world.Link{
		world.Origin(world.Cell{X: 0, Y: 4}),
		{Node: world.Cell{X: 0, Y: 6}, Connector: world.Cell{X: 0, Y: 5}},
		{Node: world.Cell{X: 0, Y: 8}, Connector: world.Cell{X: 0, Y: 7}},
	} {
		w.push(l)
	}

	// Bouncing off the bottom end moves Up onto (0,6), which the walk
	// entered heading Down.
	w.erase(1, world.Up)
	if w.LastDirection() != world.Up {
		t.Errorf("LastDirection() = %v after erase at a dead end, want Up", w.LastDirection())
	}
	dir, ok := w.chooseDirection(world.Cell{X: 0, Y: 6})
	if !ok || dir != world.Up {
		t.Errorf("chooseDirection after bounce = (%v, %v), want (Up, true)", dir, ok)
	}
}

func TestWilson_FinishesOnOneNodeWideGrids(t *testing.T) {
	const maxSteps = 100000
	sizes := [][2]int{{1, 9}, {9, 1}, {2, 9}, {9, 2}, {1, 21}}
	for _, size := range sizes {
		for seed := int64(1); seed <= 20; seed++ {
			grid, _ := world.NewGrid(size[0], size[1])
			w := NewWilson()
			if err := w.Init(grid, random.NewPCG(seed)); err != nil {
				t.Fatalf("Init error = %v", err)
			}
			done := false
			for i := 0; i < maxSteps && !done; i++ {
				var err error
				if done, err = w.Step(); err != nil {
					t.Fatalf("%dx%d seed %d: Step error = %v", size[0], size[1], seed, err)
				}
			}
			if !done {
				t.Fatalf("%dx%d seed %d: not done after %d steps; path = %v, LastDirection() = %v",
					size[0], size[1], seed, maxSteps, w.Path(), w.LastDirection())
			}
			assertSpanningTree(t, grid)
		}
	}
}

func TestWilson_NewWalkKeepsLastDirection(t *testing.T) {
	checked := 0
	for seed := int64(1); seed <= 10; seed++ {
		grid, _ := world.NewGrid(15, 15)
		w := NewWilson()
		if err := w.Init(grid, random.NewPCG(seed)); err != nil {
			t.Fatalf("Init error = %v", err)
		}
		for {
			done, err := w.Step()
			if err != nil {
				t.Fatalf("seed %d: Step error = %v", seed, err)
			}
			if done {
				break
			}
			walk := w.LastWalk()
			if len(w.Path()) != 0 || len(walk) < 2 {
				continue
			}
			last := world.DirectionBetween(walk[len(walk)-2].Node, walk[len(walk)-1].Node)
			if w.LastDirection() != last {
				t.Fatalf("seed %d: LastDirection() = %v after commit, want %v", seed, w.LastDirection(), last)
			}
			if _, err := w.Step(); err != nil {
				t.Fatalf("seed %d: Step error = %v", seed, err)
			}
			// Nowhere on a 15x15 grid is the reverse the only move.
			if p := w.Path(); len(p) == 2 && world.DirectionBetween(p[0].Node, p[1].Node) == last.Opposite() {
				t.Fatalf("seed %d: new walk reversed the previous walk's %v", seed, last)
			}
			checked++
			break
		}
	}
	if checked == 0 {
		t.Error("no commit was followed by a new walk")
	}
}

func TestWilson_AvoidsReverseUnlessForced(t *testing.T) {
	grid, _ := world.NewGrid(1, 5)
	w := NewWilson()
	if err := w.Init(grid, random.NewSequence(0)); err != nil {
		t.Fatalf("Init error = %v", err)
	}

	// At the bottom end of a one-column grid the only move is back up.
	w.lastDirection = world.Down
	dir, ok := w.chooseDirection(world.Cell{X: 0, Y: 4})
	if !ok || dir != world.Up {
		t.Errorf("chooseDirection at dead end = (%v, %v), want (Up, true)", dir, ok)
	}

	w.lastDirection = world.Down
	for i := 0; i < 20; i++ {
		dir, ok := w.chooseDirection(world.Cell{X: 0, Y: 2})
		if !ok || dir != world.Down {
			t.Fatalf("chooseDirection mid-column = (%v, %v), want (Down, true)", dir, ok)
		}
	}
}

func TestWilson_NoMoveFails(t *testing.T) {
	grid, _ := world.NewGrid(1, 1)
	w := NewWilson()
	if err := w.Init(grid, random.NewPCG(1)); err != nil {
		t.Fatalf("Init error = %v", err)
	}
	w.unvisited.add(world.Cell{X: 0, Y: 0})

	_, err := w.Step()
	if !errors.Is(err, ErrWalkOutOfBounds) {
		t.Fatalf("Step() error = %v, want ErrWalkOutOfBounds", err)
	}
	if w.Status() != Failed {
		t.Errorf("Status() = %v, want failed", w.Status())
	}
	if _, again := w.Step(); !errors.Is(again, ErrWalkOutOfBounds) {
		t.Errorf("second Step() error = %v, want the stored failure", again)
	}
}

func TestKruskal_GroupsTrackCarvedConnectors(t *testing.T) {
	grid, _ := world.NewGrid(11, 9)
	k := NewKruskal()
	if err := k.Init(grid, random.NewPCG(8)); err != nil {
		t.Fatalf("Init error = %v", err)
	}
	nodes := grid.NodeCount()
	if k.GroupCount() != nodes {
		t.Fatalf("GroupCount() = %d after Init, want %d", k.GroupCount(), nodes)
	}
	if len(k.Edges()) != len(grid.Connectors()) {
		t.Fatalf("len(Edges()) = %d, want %d", len(k.Edges()), len(grid.Connectors()))
	}

	for {
		done, err := k.Step()
		if err != nil {
			t.Fatalf("Step error = %v", err)
		}
		if got, want := k.GroupCount(), nodes-grid.ConnectorPassages(); got != want {
			t.Fatalf("GroupCount() = %d, want %d", got, want)
		}
		members := 0
		for _, g := range k.Groups() {
			members += len(g)
		}
		if members != nodes {
			t.Fatalf("groups hold %d nodes, want %d", members, nodes)
		}
		if done {
			break
		}
	}
	if k.Tested() < nodes-1 {
		t.Errorf("Tested() = %d, want at least %d", k.Tested(), nodes-1)
	}
	assertSpanningTree(t, grid)
}

func TestKruskal_EdgesExhausted(t *testing.T) {
	grid, _ := world.NewGrid(3, 3)
	k := NewKruskal()
	if err := k.Init(grid, random.NewPCG(1)); err != nil {
		t.Fatalf("Init error = %v", err)
	}
	k.edges = nil

	done, err := k.Step()
	if done || !errors.Is(err, ErrEdgesExhausted) {
		t.Fatalf("Step() = (%v, %v), want (false, ErrEdgesExhausted)", done, err)
	}
	if k.Status() != Failed || grid.IsGenerated() {
		t.Errorf("Status() = %v, IsGenerated() = %v, want failed and false", k.Status(), grid.IsGenerated())
	}
}

func TestPrim_KeepsDuplicateFrontiers(t *testing.T) {
	grid, _ := world.NewGrid(3, 3)
	p := NewPrim()
	if err := p.Init(grid, random.NewSequence(0)); err != nil {
		t.Fatalf("Init error = %v", err)
	}
	if f := p.Frontiers(); len(f) != 1 || !f[0].IsOrigin() || f[0].Node != (world.Cell{X: 0, Y: 0}) {
		t.Fatalf("Frontiers() after Init = %v, want the origin at (0,0)", f)
	}

	for i := 0; i < 3; i++ {
		if _, err := p.Step(); err != nil {
			t.Fatalf("Step error = %v", err)
		}
	}
	far := world.Cell{X: 2, Y: 2}
	dupes := 0
	for _, f := range p.Frontiers() {
		if f.Node == far {
			dupes++
		}
	}
	if dupes != 2 {
		t.Fatalf("frontier entries for %v = %d, want 2: %v", far, dupes, p.Frontiers())
	}

	// The first entry is carved; the stale duplicate is dropped without carving.
	if done, _ := p.Step(); done {
		t.Fatal("Step() reported done with a stale frontier left")
	}
	done, err := p.Step()
	if !done || err != nil {
		t.Fatalf("Step() = (%v, %v), want (true, nil)", done, err)
	}
	if !grid.IsPassage(world.Cell{X: 2, Y: 1}) || grid.IsPassage(world.Cell{X: 1, Y: 2}) {
		t.Errorf("unexpected carving:\n%s", grid.String())
	}
	assertSpanningTree(t, grid)
}

func TestDFS_UnvisitedDrainsAsPathGrows(t *testing.T) {
	grid, _ := world.NewGrid(7, 7)
	d := NewDFS()
	if err := d.Init(grid, random.NewPCG(4)); err != nil {
		t.Fatalf("Init error = %v", err)
	}
	if got, want := len(d.Unvisited()), grid.NodeCount()-1; got != want {
		t.Fatalf("len(Unvisited()) = %d after Init, want %d", got, want)
	}
	if p := d.Path(); len(p) != 1 || !p[0].IsOrigin() {
		t.Fatalf("Path() after Init = %v, want a single origin link", p)
	}
	if err := Run(d); err != nil {
		t.Fatalf("Run error = %v", err)
	}
	if len(d.Unvisited()) != 0 {
		t.Errorf("len(Unvisited()) = %d after Run, want 0", len(d.Unvisited()))
	}
}
