package column

import (
	"fmt"

	"github.com/soypat/column/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Assemble builds the column of silhouette s extruded to height along +z,
// with side walls following loop, a boundary as returned by
// ReconstructBoundary.
//
// The top cap reuses the silhouette triangles at z=0. The bottom cap at
// z=height reverses every triangle. Each loop edge gets two wall quads: one
// on the primary cap vertices and one with reversed winding on the mirror
// vertices, so walls are visible from both sides and keep hard edges.
// Normals and bounds are computed before returning.
func Assemble(s Silhouette, loop []int, height float64) (*Mesh, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if err := validHeight(height); err != nil {
		return nil, err
	}
	n := len(s.Vertices)
	for _, idx := range loop {
		if idx < 0 || idx >= n {
			return nil, fmt.Errorf("boundary loop vertex %d: %w", idx, ErrTriangleIndex)
		}
	}
	m := &Mesh{
		Vertices:  make([]r3.Vec, 0, int(numBlocks)*n),
		Triangles: make([]uint32, 0, 2*len(s.Triangles)+12*len(loop)),
	}
	for b := BlockTop; b < numBlocks; b++ {
		z := 0.0
		if b == BlockBottom || b == BlockBottomMirror {
			z = height
		}
		for _, v := range s.Vertices {
			m.Vertices = append(m.Vertices, d3.FromR2(v, z))
		}
	}

	// Top cap.
	m.Triangles = append(m.Triangles, s.Triangles...)

	// Bottom cap, winding flipped by swapping the last two indices.
	bot := uint32(BlockOffset(BlockBottom, n))
	for i := 0; i < len(s.Triangles); i += 3 {
		m.Triangles = append(m.Triangles,
			s.Triangles[i]+bot,
			s.Triangles[i+2]+bot,
			s.Triangles[i+1]+bot,
		)
	}

	// Walls.
	var (
		topA = uint32(BlockOffset(BlockTop, n))
		topB = uint32(BlockOffset(BlockTopMirror, n))
		botA = uint32(BlockOffset(BlockBottom, n))
		botB = uint32(BlockOffset(BlockBottomMirror, n))
	)
	for i, cur := range loop {
		c := uint32(cur)
		nx := uint32(loop[(i+1)%len(loop)])
		m.Triangles = append(m.Triangles,
			// Primary quad.
			topA+c, topA+nx, botA+c,
			topA+nx, botA+nx, botA+c,
			// Mirror quad, reversed.
			botB+c, topB+nx, topB+c,
			botB+c, botB+nx, topB+nx,
		)
	}
	m.RecalculateNormals()
	m.RecalculateBounds()
	return m, nil
}
