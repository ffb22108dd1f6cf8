package column

import (
	"cmp"
	"log/slog"
	"slices"

	"github.com/soypat/column/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// ReconstructBoundary calls Generator{}.ReconstructBoundary.
func ReconstructBoundary(vertices []r2.Vec, o Oracle) ([]int, error) {
	return Generator{}.ReconstructBoundary(vertices, o)
}

// ReconstructBoundary returns the outer boundary of the shape as an ordered
// cycle of vertex indices starting at vertex 0. The last index connects back
// to the first.
//
// From the current vertex every vertex not yet left by the walk is ranked by
// distance and the nearest one forming a boundary edge (see IsBoundaryEdge)
// is taken. When no candidate qualifies and the current vertex is the last
// unused one the loop closes on vertex 0 without probing. Otherwise a
// *StuckError is returned.
func (g Generator) ReconstructBoundary(vertices []r2.Vec, o Oracle) ([]int, error) {
	if o == nil {
		return nil, ErrNilOracle
	}
	n := len(vertices)
	if n < 3 {
		return nil, ErrTooFewVertices
	}
	w := walker{
		vertices: vertices,
		oracle:   o,
		h:        g.probeOffset(),
		used:     make([]bool, n),
		cands:    make([]candidate, 0, n),
		log:      g.logger(),
	}
	loop := make([]int, 0, n)
	cur := 0
	for w.nused < n {
		loop = append(loop, cur)
		next := w.next(cur)
		if next < 0 {
			if w.nused != n-1 {
				return nil, &StuckError{Vertex: cur, Pos: vertices[cur], Unused: n - w.nused}
			}
			next = 0
		}
		w.used[cur] = true
		w.nused++
		cur = next
	}
	return loop, nil
}

// IsBoundaryEdge reports whether segment ab separates inside from outside
// near its midpoint: exactly one of the two probe points at distance h on
// the perpendicular bisector is contained by o. Coincident points never
// form an edge.
func IsBoundaryEdge(a, b r2.Vec, h float64, o Oracle) bool {
	c, d, ok := d2.BisectorProbes(a, b, h)
	if !ok {
		return false
	}
	return o.Contains(c) != o.Contains(d)
}

type candidate struct {
	idx   int
	dist2 float64
}

// walker holds the state of a single boundary walk.
type walker struct {
	vertices []r2.Vec
	oracle   Oracle
	h        float64
	used     []bool
	nused    int
	cands    []candidate
	log      *slog.Logger
}

// next returns the nearest unused vertex forming a boundary edge with cur,
// or -1 if there is none.
func (w *walker) next(cur int) int {
	origin := w.vertices[cur]
	w.cands = w.cands[:0]
	for i, v := range w.vertices {
		if w.used[i] || i == cur {
			continue
		}
		w.cands = append(w.cands, candidate{idx: i, dist2: d2.Dist2(origin, v)})
	}
	rankCandidates(w.cands)
	for _, c := range w.cands {
		if IsBoundaryEdge(origin, w.vertices[c.idx], w.h, w.oracle) {
			w.log.Debug("boundary edge", slog.Int("from", cur), slog.Int("to", c.idx))
			return c.idx
		}
	}
	w.log.Debug("no boundary edge", slog.Int("from", cur), slog.Int("candidates", len(w.cands)))
	return -1
}

// rankCandidates orders candidates by distance. Runs of approximately
// equal distances, measured from the first distance of the run, are put
// in index order. Approx is not transitive so it is never used as the
// sort comparator itself.
func rankCandidates(cands []candidate) {
	slices.SortFunc(cands, func(a, b candidate) int {
		if c := cmp.Compare(a.dist2, b.dist2); c != 0 {
			return c
		}
		return cmp.Compare(a.idx, b.idx)
	})
	for start := 0; start < len(cands); {
		end := start + 1
		for end < len(cands) && d2.Approx(cands[start].dist2, cands[end].dist2) {
			end++
		}
		slices.SortFunc(cands[start:end], func(a, b candidate) int {
			return cmp.Compare(a.idx, b.idx)
		})
		start = end
	}
}
