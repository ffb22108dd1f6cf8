// Package silio reads and writes silhouette documents: JSON files listing
// the triangulated shapes a batch should extrude.
package silio

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"github.com/soypat/column"
	"gonum.org/v1/gonum/spatial/r2"
)

// File is a silhouette document.
type File struct {
	Columns []Entry `json:"columns"`
}

// Entry describes one silhouette.
type Entry struct {
	Name string `json:"name"`
	// Height of the column. Zero means the caller's default.
	Height float64 `json:"height,omitempty"`
	// Done marks silhouettes whose column was already generated.
	Done      bool         `json:"done,omitempty"`
	Vertices  [][2]float64 `json:"vertices"`
	Triangles []uint32     `json:"triangles"`
	// Mask optionally points at a raster image of the shape.
	Mask *Mask `json:"mask,omitempty"`
}

// Mask places a raster image in silhouette space.
type Mask struct {
	Path      string     `json:"path"`
	PixelSize float64    `json:"pixelSize,omitempty"`
	Origin    [2]float64 `json:"origin"`
	Threshold uint32     `json:"threshold,omitempty"`
}

// Load decodes a document. Unnamed entries are named after their position.
// Duplicate names and names containing path separators are rejected.
func Load(r io.Reader) (File, error) {
	var f File
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return File{}, fmt.Errorf("decoding silhouette document: %w", err)
	}
	if len(f.Columns) == 0 {
		return File{}, errors.New("silhouette document has no columns")
	}
	seen := make(map[string]bool, len(f.Columns))
	for i := range f.Columns {
		e := &f.Columns[i]
		if e.Name == "" {
			e.Name = fmt.Sprintf("column%d", i)
		}
		if err := checkName(e.Name); err != nil {
			return File{}, err
		}
		if seen[e.Name] {
			return File{}, fmt.Errorf("duplicate column name %q", e.Name)
		}
		seen[e.Name] = true
	}
	return f, nil
}

// Save encodes f as indented JSON.
func Save(w io.Writer, f File) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(f)
}

// Silhouette converts the entry geometry.
func (e Entry) Silhouette() column.Silhouette {
	vs := make([]r2.Vec, len(e.Vertices))
	for i, v := range e.Vertices {
		vs[i] = r2.Vec{X: v[0], Y: v[1]}
	}
	return column.Silhouette{Vertices: vs, Triangles: e.Triangles}
}

// FromSilhouette builds an entry from a silhouette.
func FromSilhouette(name string, s column.Silhouette, height float64) Entry {
	vs := make([][2]float64, len(s.Vertices))
	for i, v := range s.Vertices {
		vs[i] = [2]float64{v.X, v.Y}
	}
	return Entry{
		Name:      name,
		Height:    height,
		Vertices:  vs,
		Triangles: append([]uint32(nil), s.Triangles...),
	}
}

// checkName rejects names that cannot be used as a plain file name.
func checkName(name string) error {
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("column name %q is not a plain file name", name)
	}
	return nil
}
