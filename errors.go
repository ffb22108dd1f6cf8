package column

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

var (
	// ErrTriangleCount is returned when the triangle index list length is
	// not a multiple of 3.
	ErrTriangleCount = errors.New("triangle index count not divisible by 3")
	// ErrTriangleIndex is returned when a triangle references a vertex
	// outside the silhouette.
	ErrTriangleIndex = errors.New("triangle index out of range")
	// ErrTooFewVertices is returned for silhouettes with less than 3 vertices.
	ErrTooFewVertices = errors.New("silhouette needs at least 3 vertices")
	// ErrHeight is returned for non-positive or non-finite column heights.
	ErrHeight = errors.New("column height must be positive and finite")
	// ErrNilOracle is returned when no boundary oracle is supplied.
	ErrNilOracle = errors.New("nil boundary oracle")
	// ErrStuckWalk is matched by errors.Is for any *StuckError.
	ErrStuckWalk = errors.New("boundary walk stuck")
)

// StuckError reports a boundary walk that found no acceptable next vertex
// while more than one vertex remained unused.
type StuckError struct {
	// Vertex is the silhouette index the walk was stuck at.
	Vertex int
	// Pos is the position of Vertex.
	Pos r2.Vec
	// Unused is the number of vertices never left by the walk, Vertex included.
	Unused int
}

func (e *StuckError) Error() string {
	return fmt.Sprintf("boundary walk stuck at vertex #%d (%g, %g) with %d vertices unused",
		e.Vertex, e.Pos.X, e.Pos.Y, e.Unused)
}

func (e *StuckError) Is(target error) bool { return target == ErrStuckWalk }
