package column

import (
	"errors"
	"math"
	"slices"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

// boxOracle contains points strictly inside the axis aligned box [min,max].
func boxOracle(min, max r2.Vec) OracleFunc {
	return func(p r2.Vec) bool {
		return p.X > min.X && p.X < max.X && p.Y > min.Y && p.Y < max.Y
	}
}

var unitSquare = []r2.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}

func TestReconstructBoundarySquare(t *testing.T) {
	loop, err := ReconstructBoundary(unitSquare, boxOracle(r2.Vec{}, r2.Vec{X: 1, Y: 1}))
	if err != nil {
		t.Fatal(err)
	}
	// 1 and 3 tie in distance from 0, lower index wins.
	want := []int{0, 1, 2, 3}
	if !slices.Equal(loop, want) {
		t.Errorf("got loop %v. want %v", loop, want)
	}
}

func TestReconstructBoundaryTriangleCloses(t *testing.T) {
	tri := []r2.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	var probes []r2.Vec
	o := OracleFunc(func(p r2.Vec) bool {
		probes = append(probes, p)
		return p.X > 0 && p.Y > 0 && p.X+p.Y < 1
	})
	loop, err := ReconstructBoundary(tri, o)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(loop, []int{0, 1, 2}) {
		t.Fatalf("got loop %v. want [0 1 2]", loop)
	}
	// Two probes for 0->1 and two for 1->2. The closing edge 2->0 is never probed.
	if len(probes) != 4 {
		t.Errorf("got %d oracle queries. want 4", len(probes))
	}
	for _, p := range probes {
		if math.Abs(p.Y-0.5) < 1e-9 && math.Abs(p.X) < 0.1 {
			t.Errorf("closing edge was probed at %v", p)
		}
	}
}

func TestReconstructBoundaryStuck(t *testing.T) {
	vertices := append(slices.Clone(unitSquare), r2.Vec{X: 5, Y: 5})
	loop, err := ReconstructBoundary(vertices, boxOracle(r2.Vec{}, r2.Vec{X: 1, Y: 1}))
	if err == nil {
		t.Fatalf("expected stuck walk, got loop %v", loop)
	}
	if !errors.Is(err, ErrStuckWalk) {
		t.Fatalf("expected ErrStuckWalk, got %v", err)
	}
	var stuck *StuckError
	if !errors.As(err, &stuck) {
		t.Fatalf("expected *StuckError, got %T", err)
	}
	if stuck.Vertex != 3 || stuck.Unused != 2 {
		t.Errorf("got stuck at #%d with %d unused. want #3 with 2 unused", stuck.Vertex, stuck.Unused)
	}
	if stuck.Pos != vertices[3] {
		t.Errorf("got stuck position %v. want %v", stuck.Pos, vertices[3])
	}
	if loop != nil {
		t.Error("partial loop returned on error")
	}
}

func TestReconstructBoundaryCoincidentSkipped(t *testing.T) {
	// Vertex 4 duplicates vertex 0 and has no bisector from it.
	vertices := append(slices.Clone(unitSquare), r2.Vec{})
	loop, err := ReconstructBoundary(vertices, boxOracle(r2.Vec{}, r2.Vec{X: 1, Y: 1}))
	if err != nil {
		t.Fatal(err)
	}
	want := []int{0, 1, 2, 3, 4}
	if !slices.Equal(loop, want) {
		t.Errorf("got loop %v. want %v", loop, want)
	}
}

func TestReconstructBoundaryInvalid(t *testing.T) {
	o := boxOracle(r2.Vec{}, r2.Vec{X: 1, Y: 1})
	if _, err := ReconstructBoundary(unitSquare, nil); !errors.Is(err, ErrNilOracle) {
		t.Errorf("nil oracle: got %v", err)
	}
	if _, err := ReconstructBoundary(unitSquare[:2], o); !errors.Is(err, ErrTooFewVertices) {
		t.Errorf("two vertices: got %v", err)
	}
}

func TestIsBoundaryEdge(t *testing.T) {
	o := boxOracle(r2.Vec{}, r2.Vec{X: 1, Y: 1})
	for _, test := range []struct {
		a, b r2.Vec
		want bool
	}{
		{a: unitSquare[0], b: unitSquare[1], want: true},
		{a: unitSquare[1], b: unitSquare[2], want: true},
		{a: unitSquare[0], b: unitSquare[2], want: false}, // diagonal
		{a: unitSquare[0], b: unitSquare[0], want: false}, // coincident
		{a: r2.Vec{X: 2, Y: 2}, b: r2.Vec{X: 3, Y: 2}, want: false},
	} {
		got := IsBoundaryEdge(test.a, test.b, DefaultProbeOffset, o)
		if got != test.want {
			t.Errorf("edge %v-%v: got %t. want %t", test.a, test.b, got, test.want)
		}
	}
}

func TestGeneratorProbeOffset(t *testing.T) {
	// A thin sliver narrower than the default probe offset: probes on the
	// short sides jump over the shape unless the offset is reduced.
	sliver := []r2.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 0.04}, {X: 0, Y: 0.04}}
	o := boxOracle(r2.Vec{}, r2.Vec{X: 1, Y: 0.04})
	if _, err := ReconstructBoundary(sliver, o); err == nil {
		t.Error("expected default probe offset to fail on sliver")
	}
	g := Generator{ProbeOffset: 0.01}
	loop, err := g.ReconstructBoundary(sliver, o)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(loop, []int{0, 3, 2, 1}) {
		t.Errorf("got loop %v. want [0 3 2 1]", loop)
	}
}

func TestRankCandidatesNearTieChain(t *testing.T) {
	// Vertex 0 is a near tie of both 2 and 1, but 1 and 2 are not near ties.
	// The result must not depend on input order.
	base := []candidate{
		{idx: 1, dist2: 1 + 1.2e-6},
		{idx: 2, dist2: 1},
		{idx: 0, dist2: 1 + 0.6e-6},
		{idx: 3, dist2: 4},
	}
	want := []int{0, 2, 1, 3}
	for _, perm := range [][]int{{0, 1, 2, 3}, {3, 2, 1, 0}, {2, 0, 3, 1}, {1, 3, 0, 2}} {
		cands := make([]candidate, len(base))
		for i, p := range perm {
			cands[i] = base[p]
		}
		rankCandidates(cands)
		got := make([]int, len(cands))
		for i, c := range cands {
			got[i] = c.idx
		}
		if !slices.Equal(got, want) {
			t.Errorf("input order %v: got %v, want %v", perm, got, want)
		}
	}
}
