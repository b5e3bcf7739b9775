package solver

import (
	"errors"
	"testing"

	"mazewalk/pkg/engine/random"
	"mazewalk/pkg/engine/world"
	"mazewalk/pkg/maze/generator"
)

// generatedGrid returns a finished maze built by the named algorithm
func generatedGrid(t *testing.T, name string, columns, rows int, seed int64) *world.Grid {
	t.Helper()
	grid, err := world.NewGrid(columns, rows)
	if err != nil {
		t.Fatalf("NewGrid error = %v", err)
	}
	gen, err := generator.New(name)
	if err != nil {
		t.Fatalf("generator.New(%q) error = %v", name, err)
	}
	if err := gen.Init(grid, random.NewPCG(seed)); err != nil {
		t.Fatalf("Init error = %v", err)
	}
	if err := generator.Run(gen); err != nil {
		t.Fatalf("Run error = %v", err)
	}
	return grid
}

// assertValidSolution checks the solution runs from start to end over
// carved connectors.
func assertValidSolution(t *testing.T, grid *world.Grid, s *DFS) {
	t.Helper()
	path := s.Solution()
	if len(path) == 0 {
		t.Fatal("Solution() is empty")
	}
	start, _ := s.Start()
	end, _ := s.End()
	if path[0].Node != start || !path[0].IsOrigin() {
		t.Errorf("solution starts at %v, want origin link at %v", path[0], start)
	}
	if path[len(path)-1].Node != end {
		t.Errorf("solution ends at %v, want %v", path[len(path)-1].Node, end)
	}
	for i := 1; i < len(path); i++ {
		a, b := path[i].Connector.Endpoints()
		prev, cur := path[i-1].Node, path[i].Node
		if !(a == prev && b == cur) && !(a == cur && b == prev) {
			t.Errorf("link %d: connector %v does not join %v and %v", i, path[i].Connector, prev, cur)
		}
		if !grid.IsPassage(path[i].Connector) {
			t.Errorf("link %d: connector %v is a wall", i, path[i].Connector)
		}
	}
}

func TestDFS_SolvesEveryGenerator(t *testing.T) {
	for _, name := range generator.Names() {
		for seed := int64(1); seed <= 5; seed++ {
			grid := generatedGrid(t, name, 15, 11, seed)
			s := New()
			if err := s.Init(grid, random.NewPCG(seed*31)); err != nil {
				t.Fatalf("%s seed %d: Init error = %v", name, seed, err)
			}
			if err := s.Run(); err != nil {
				t.Fatalf("%s seed %d: Run error = %v", name, seed, err)
			}
			if !s.Solved() || !s.Found() {
				t.Fatalf("%s seed %d: Solved() = %v, Found() = %v, want both true", name, seed, s.Solved(), s.Found())
			}
			if len(s.CurrentPath()) != 0 {
				t.Errorf("%s seed %d: CurrentPath() not cleared after solving", name, seed)
			}
			assertValidSolution(t, grid, s)
		}
	}
}

func TestDFS_FiveByFiveDFSMaze(t *testing.T) {
	grid := generatedGrid(t, "dfs", 9, 9, 77)
	s := New()
	if err := s.Init(grid, random.NewPCG(3)); err != nil {
		t.Fatalf("Init error = %v", err)
	}
	start, ok := s.Start()
	end, okEnd := s.End()
	if !ok || !okEnd || start == end {
		t.Fatalf("Start() = %v, %v; End() = %v, %v; want distinct set nodes", start, ok, end, okEnd)
	}
	if !start.IsNode() || !end.IsNode() {
		t.Errorf("start %v or end %v is not a node", start, end)
	}
	if err := s.Run(); err != nil {
		t.Fatalf("Run error = %v", err)
	}
	assertValidSolution(t, grid, s)
}

func TestDFS_RequiresGeneratedMaze(t *testing.T) {
	grid, _ := world.NewGrid(5, 5)
	s := New()
	if err := s.Init(grid, random.NewPCG(1)); !errors.Is(err, ErrNotGenerated) {
		t.Errorf("Init on ungenerated grid error = %v, want ErrNotGenerated", err)
	}
	if _, ok := s.Start(); ok {
		t.Error("Start() set after failed Init")
	}
	if done, err := s.Step(); done || !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Step() before Init = (%v, %v), want (false, ErrNotInitialized)", done, err)
	}

	solved := generatedGrid(t, "prim", 5, 5, 2)
	if err := s.Init(solved, random.NewPCG(1)); err != nil {
		t.Fatalf("Init error = %v", err)
	}
	// Regenerating the maze under the solver invalidates it.
	if err := solved.Reset(5, 5); err != nil {
		t.Fatalf("Reset error = %v", err)
	}
	if _, err := s.Step(); !errors.Is(err, ErrNotGenerated) {
		t.Errorf("Step() on reset grid error = %v, want ErrNotGenerated", err)
	}
}

func TestDFS_TooFewNodes(t *testing.T) {
	grid := generatedGrid(t, "dfs", 1, 1, 1)
	if err := New().Init(grid, random.NewPCG(1)); !errors.Is(err, ErrTooFewNodes) {
		t.Errorf("Init on 1x1 maze error = %v, want ErrTooFewNodes", err)
	}
}

func TestDFS_StepAfterSolvedIsIdempotent(t *testing.T) {
	grid := generatedGrid(t, "wilson", 11, 11, 9)
	s := New()
	if err := s.Init(grid, random.NewPCG(9)); err != nil {
		t.Fatalf("Init error = %v", err)
	}
	if err := s.Run(); err != nil {
		t.Fatalf("Run error = %v", err)
	}
	solution := s.Solution()
	checked := len(s.Checked())
	steps := s.Steps()

	for i := 0; i < 3; i++ {
		done, err := s.Step()
		if !done || err != nil {
			t.Errorf("Step() after solved = (%v, %v), want (true, nil)", done, err)
		}
	}
	if len(s.Solution()) != len(solution) || len(s.Checked()) != checked || s.Steps() != steps {
		t.Error("solver state changed after redundant Step")
	}
}

func TestDFS_CheckedGrowsWithPath(t *testing.T) {
	grid := generatedGrid(t, "kruskal", 9, 9, 4)
	s := New()
	if err := s.Init(grid, random.NewPCG(4)); err != nil {
		t.Fatalf("Init error = %v", err)
	}
	start, _ := s.Start()
	if !s.IsChecked(start) || len(s.Checked()) != 1 {
		t.Fatalf("Checked() after Init = %v, want [%v]", s.Checked(), start)
	}
	for {
		done, err := s.Step()
		if err != nil {
			t.Fatalf("Step error = %v", err)
		}
		for _, l := range s.CurrentPath() {
			if !s.IsChecked(l.Node) {
				t.Fatalf("path node %v is not checked", l.Node)
			}
		}
		if done {
			break
		}
	}
	if len(s.Checked()) > grid.NodeCount() {
		t.Errorf("len(Checked()) = %d, more than %d nodes", len(s.Checked()), grid.NodeCount())
	}
}

// A maze with a missing connector cannot be solved; the search exhausts.
func TestDFS_UnreachableEnd(t *testing.T) {
	grid, _ := world.NewGrid(3, 1)
	grid.MarkPassage(world.Cell{X: 0, Y: 0})
	grid.MarkPassage(world.Cell{X: 2, Y: 0})
	grid.SetGenerated(true)

	s := New()
	if err := s.Init(grid, random.NewSequence(0, 1)); err != nil {
		t.Fatalf("Init error = %v", err)
	}
	if err := s.Run(); err != nil {
		t.Fatalf("Run error = %v", err)
	}
	if !s.Solved() || s.Found() {
		t.Errorf("Solved() = %v, Found() = %v, want true and false", s.Solved(), s.Found())
	}
	if len(s.Solution()) != 0 {
		t.Errorf("Solution() = %v, want empty", s.Solution())
	}
}

func TestDFS_Deterministic(t *testing.T) {
	grid := generatedGrid(t, "dfs", 21, 21, 13)
	a, b := New(), New()
	if err := a.Init(grid, random.NewPCG(5)); err != nil {
		t.Fatalf("Init error = %v", err)
	}
	if err := b.Init(grid, random.NewPCG(5)); err != nil {
		t.Fatalf("Init error = %v", err)
	}
	if err := a.Run(); err != nil {
		t.Fatal(err)
	}
	if err := b.Run(); err != nil {
		t.Fatal(err)
	}
	sa, sb := a.Solution(), b.Solution()
	if len(sa) != len(sb) || a.Steps() != b.Steps() {
		t.Fatalf("identical seeds diverged: %d/%d links, %d/%d steps", len(sa), len(sb), a.Steps(), b.Steps())
	}
	for i := range sa {
		if sa[i] != sb[i] {
			t.Fatalf("solutions differ at link %d: %v != %v", i, sa[i], sb[i])
		}
	}
}
