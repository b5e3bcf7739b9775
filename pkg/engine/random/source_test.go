package random

import "testing"

func TestPCGDeterministic(t *testing.T) {
	a := NewPCG(42)
	b := NewPCG(42)
	for i := 0; i < 100; i++ {
		x, y := a.Intn(97), b.Intn(97)
		if x != y {
			t.Fatalf("draw %d: %d != %d for identical seeds", i, x, y)
		}
		if x < 0 || x >= 97 {
			t.Fatalf("Intn(97) = %d, want value in [0,97)", x)
		}
	}
}

func TestPCGNonPositive(t *testing.T) {
	p := NewPCG(1)
	if got := p.Intn(0); got != 0 {
		t.Errorf("Intn(0) = %d, want 0", got)
	}
	if got := p.Intn(-3); got != 0 {
		t.Errorf("Intn(-3) = %d, want 0", got)
	}
}

func TestSequenceReplaysAndWraps(t *testing.T) {
	s := NewSequence(0, 5, 7)
	want := []int{0, 1, 3, 0, 1, 3}
	for i, w := range want {
		if got := s.Intn(4); got != w {
			t.Errorf("draw %d: Intn(4) = %d, want %d", i, got, w)
		}
	}
}

func TestPick(t *testing.T) {
	items := []string{"a", "b", "c"}
	got, idx := Pick[string](NewSequence(2), items)
	if got != "c" || idx != 2 {
		t.Errorf("Pick = (%q, %d), want (\"c\", 2)", got, idx)
	}

	_, idx = Pick[string](NewSequence(2), nil)
	if idx != -1 {
		t.Errorf("Pick(empty) index = %d, want -1", idx)
	}
}
