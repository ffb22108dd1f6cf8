package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"gonum.org/v1/gonum/spatial/r3"
)

// WriteOBJ writes an indexed triangle mesh in Wavefront OBJ format.
// Vertices are shared between faces by index. normals may be nil, otherwise
// it must hold one normal per vertex.
func WriteOBJ(w io.Writer, vertices, normals []r3.Vec, indices []uint32) error {
	if len(indices) == 0 || len(indices)%3 != 0 {
		return errors.New("obj: indices length must be a non-zero multiple of 3")
	}
	if normals != nil && len(normals) != len(vertices) {
		return fmt.Errorf("obj: got %d normals for %d vertices", len(normals), len(vertices))
	}
	bw := bufio.NewWriter(w)
	for _, v := range vertices {
		fmt.Fprintf(bw, "v %g %g %g\n", v.X, v.Y, v.Z)
	}
	for _, n := range normals {
		fmt.Fprintf(bw, "vn %g %g %g\n", n.X, n.Y, n.Z)
	}
	for i := 0; i < len(indices); i += 3 {
		// OBJ indices are 1-based.
		a, b, c := indices[i]+1, indices[i+1]+1, indices[i+2]+1
		if int(a) > len(vertices) || int(b) > len(vertices) || int(c) > len(vertices) {
			return fmt.Errorf("obj: face %d references vertex out of range", i/3)
		}
		if normals != nil {
			fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", a, a, b, b, c, c)
		} else {
			fmt.Fprintf(bw, "f %d %d %d\n", a, b, c)
		}
	}
	return bw.Flush()
}
