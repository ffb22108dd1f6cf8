package render

import (
	"io"
	"math"

	"github.com/soypat/column/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Renderer streams triangles. ReadTriangles behaves like io.Reader:
// it returns io.EOF once every triangle has been read.
type Renderer interface {
	ReadTriangles(t []Triangle3) (int, error)
}

// Triangle3 is a 3D triangle with counter-clockwise front face.
type Triangle3 [3]r3.Vec

// Normal returns the unit normal of the triangle following its winding.
// Degenerate triangles return the zero vector.
func (t Triangle3) Normal() r3.Vec {
	n := d3.TriangleNormal(t[0], t[1], t[2])
	l := r3.Norm(n)
	if l == 0 {
		return r3.Vec{}
	}
	return r3.Scale(1/l, n)
}

// Degenerate returns true if any two vertices are within tol of each other.
func (t Triangle3) Degenerate(tol float64) bool {
	return d3.EqualWithin(t[0], t[1], tol) ||
		d3.EqualWithin(t[1], t[2], tol) ||
		d3.EqualWithin(t[2], t[0], tol)
}

// Area returns the area of the triangle.
func (t Triangle3) Area() float64 {
	return 0.5 * r3.Norm(d3.TriangleNormal(t[0], t[1], t[2]))
}

// indexedRenderer reads faces out of an indexed triangle buffer.
type indexedRenderer struct {
	vertices []r3.Vec
	indices  []uint32
	next     int // next face to read
}

// NewIndexedRenderer returns a Renderer over an indexed triangle list.
// indices holds three vertex indices per face.
func NewIndexedRenderer(vertices []r3.Vec, indices []uint32) Renderer {
	if len(indices)%3 != 0 {
		panic("indices length must be a multiple of 3")
	}
	return &indexedRenderer{vertices: vertices, indices: indices}
}

func (r *indexedRenderer) ReadTriangles(dst []Triangle3) (n int, err error) {
	nfaces := len(r.indices) / 3
	for n < len(dst) && r.next < nfaces {
		i := 3 * r.next
		dst[n] = Triangle3{
			r.vertices[r.indices[i]],
			r.vertices[r.indices[i+1]],
			r.vertices[r.indices[i+2]],
		}
		n++
		r.next++
	}
	if r.next == nfaces {
		return n, io.EOF
	}
	return n, nil
}

// Bounds returns the bounding box of a triangle model.
func Bounds(model []Triangle3) d3.Box {
	bb := d3.Box{Min: d3.Elem(math.MaxFloat64), Max: d3.Elem(-math.MaxFloat64)}
	for _, t := range model {
		for _, v := range t {
			bb = bb.Include(v)
		}
	}
	return bb
}
