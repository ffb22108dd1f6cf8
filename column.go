// Package column extrudes flat triangulated silhouettes into closed solids.
//
// A silhouette carries only a vertex list and a triangle index list, with no
// edge or adjacency information. The outer boundary is recovered by walking
// from vertex to vertex, nearest candidates first, and accepting an edge when
// the two probe points on its perpendicular bisector fall on opposite sides of
// the shape as reported by an Oracle. The boundary then drives the side walls
// of the extruded column.
package column

import (
	"log/slog"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// DefaultProbeOffset is the distance from an edge midpoint to each of its
// probe points, in silhouette units.
const DefaultProbeOffset = 0.05

// Oracle answers point-in-shape queries for a single silhouette.
// Contains reports whether p lies within the filled area of the shape.
type Oracle interface {
	Contains(p r2.Vec) bool
}

// OracleFunc adapts a function to the Oracle interface.
type OracleFunc func(p r2.Vec) bool

// Contains calls f(p).
func (f OracleFunc) Contains(p r2.Vec) bool { return f(p) }

// Silhouette is a flat triangulated shape. Triangles holds three indices into
// Vertices per face. Indices carry no boundary ordering.
type Silhouette struct {
	Vertices  []r2.Vec
	Triangles []uint32
}

// Validate checks the silhouette is usable for extrusion. The triangle count
// is checked first.
func (s Silhouette) Validate() error {
	if len(s.Triangles)%3 != 0 {
		return ErrTriangleCount
	}
	if len(s.Vertices) < 3 {
		return ErrTooFewVertices
	}
	for _, idx := range s.Triangles {
		if int(idx) >= len(s.Vertices) {
			return ErrTriangleIndex
		}
	}
	return nil
}

// Generator builds columns. The zero value is ready to use.
type Generator struct {
	// ProbeOffset is the probe distance from an edge midpoint.
	// Zero means DefaultProbeOffset.
	ProbeOffset float64
	// Logger receives walk diagnostics. Nil means the package Logger.
	Logger *slog.Logger
}

func (g Generator) probeOffset() float64 {
	if g.ProbeOffset == 0 {
		return DefaultProbeOffset
	}
	return g.ProbeOffset
}

func (g Generator) logger() *slog.Logger {
	if g.Logger == nil {
		return Logger()
	}
	return g.Logger
}

// Generate validates s, reconstructs its boundary loop with o and assembles
// a column of the given height. Input errors are reported before any
// geometry work. No partial mesh is returned on error.
func (g Generator) Generate(s Silhouette, height float64, o Oracle) (*Mesh, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if err := validHeight(height); err != nil {
		return nil, err
	}
	loop, err := g.ReconstructBoundary(s.Vertices, o)
	if err != nil {
		return nil, err
	}
	return Assemble(s, loop, height)
}

// Generate calls Generator{}.Generate.
func Generate(s Silhouette, height float64, o Oracle) (*Mesh, error) {
	return Generator{}.Generate(s, height, o)
}

func validHeight(h float64) error {
	if !(h > 0) || math.IsInf(h, 1) {
		return ErrHeight
	}
	return nil
}
