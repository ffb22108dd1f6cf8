package column

import (
	"github.com/soypat/column/internal/d3"
	"github.com/soypat/column/render"
	"gonum.org/v1/gonum/spatial/r3"
)

// Block identifies one of the four vertex copies of a column.
type Block int

const (
	BlockTop          Block = iota // top cap, z = 0
	BlockTopMirror                 // walls, z = 0
	BlockBottom                    // bottom cap, z = height
	BlockBottomMirror              // walls, z = height
	numBlocks
)

// BlockOffset returns the global index of the first vertex of block b in a
// column built from a silhouette of n vertices.
func BlockOffset(b Block, n int) int {
	return int(b) * n
}

// Mesh is an indexed triangle mesh. Vertices of a column are laid out in
// four contiguous blocks of equal size, see Block.
type Mesh struct {
	Vertices []r3.Vec
	// Triangles holds three vertex indices per face, counter-clockwise front.
	Triangles []uint32
	// Normals holds one unit normal per vertex. See RecalculateNormals.
	Normals []r3.Vec
	// Bounds is the bounding box of Vertices. See RecalculateBounds.
	Bounds r3.Box
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return len(m.Vertices) }

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int { return len(m.Triangles) / 3 }

// Face returns the i'th triangle.
func (m *Mesh) Face(i int) render.Triangle3 {
	return render.Triangle3{
		m.Vertices[m.Triangles[3*i]],
		m.Vertices[m.Triangles[3*i+1]],
		m.Vertices[m.Triangles[3*i+2]],
	}
}

// Renderer returns a render.Renderer that streams the faces of the mesh.
func (m *Mesh) Renderer() render.Renderer {
	return render.NewIndexedRenderer(m.Vertices, m.Triangles)
}

// Translate moves every vertex by v.
func (m *Mesh) Translate(v r3.Vec) {
	for i := range m.Vertices {
		m.Vertices[i] = r3.Add(m.Vertices[i], v)
	}
	m.Bounds = r3.Box(d3.Box(m.Bounds).Translate(v))
}

// RecalculateBounds sets Bounds from the current vertices.
func (m *Mesh) RecalculateBounds() {
	m.Bounds = r3.Box(d3.Bounds(m.Vertices))
}

// RecalculateNormals sets a normal per vertex by averaging the normals of
// the faces using it, weighted by face area. Vertices not used by any face
// get a zero normal.
func (m *Mesh) RecalculateNormals() {
	if cap(m.Normals) >= len(m.Vertices) {
		m.Normals = m.Normals[:len(m.Vertices)]
		clear(m.Normals)
	} else {
		m.Normals = make([]r3.Vec, len(m.Vertices))
	}
	for i := 0; i+2 < len(m.Triangles); i += 3 {
		a, b, c := m.Triangles[i], m.Triangles[i+1], m.Triangles[i+2]
		n := d3.TriangleNormal(m.Vertices[a], m.Vertices[b], m.Vertices[c])
		m.Normals[a] = r3.Add(m.Normals[a], n)
		m.Normals[b] = r3.Add(m.Normals[b], n)
		m.Normals[c] = r3.Add(m.Normals[c], n)
	}
	for i, n := range m.Normals {
		if l := r3.Norm(n); l > 0 {
			m.Normals[i] = r3.Scale(1/l, n)
		}
	}
}
