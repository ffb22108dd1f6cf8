package oracle_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/deadsy/sdfx/sdf"
	"github.com/soypat/column"
	"github.com/soypat/column/oracle"
	"gonum.org/v1/gonum/spatial/r2"
)

// ell is an L shaped outline, counter-clockwise.
var ell = []r2.Vec{
	{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1},
	{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 0, Y: 2},
}

var ellTriangles = []uint32{0, 1, 2, 0, 2, 3, 0, 3, 4, 0, 4, 5}

type probe struct {
	p    r2.Vec
	want bool
}

var ellProbes = []probe{
	{r2.Vec{X: 0.5, Y: 0.5}, true},
	{r2.Vec{X: 1.5, Y: 0.5}, true},
	{r2.Vec{X: 0.5, Y: 1.5}, true},
	{r2.Vec{X: 1.5, Y: 1.5}, false}, // notch
	{r2.Vec{X: -0.5, Y: 1}, false},
	{r2.Vec{X: 1, Y: 3}, false},
	{r2.Vec{X: 2.5, Y: 0.5}, false},
}

func testOracle(t *testing.T, name string, o column.Oracle, probes []probe) {
	t.Helper()
	for _, test := range probes {
		if got := o.Contains(test.p); got != test.want {
			t.Errorf("%s: Contains(%v) got %v, want %v", name, test.p, got, test.want)
		}
	}
}

func TestPolygon(t *testing.T) {
	o, err := oracle.Polygon(ell)
	if err != nil {
		t.Fatal(err)
	}
	testOracle(t, "ccw", o, ellProbes)
	// Orientation and explicit closing do not matter.
	cw := make([]r2.Vec, 0, len(ell)+1)
	for i := len(ell) - 1; i >= 0; i-- {
		cw = append(cw, ell[i])
	}
	cw = append(cw, cw[0])
	o, err = oracle.Polygon(cw)
	if err != nil {
		t.Fatal(err)
	}
	testOracle(t, "cw closed", o, ellProbes)
	bb := o.Bounds()
	if bb.Min != (r2.Vec{}) || bb.Max != (r2.Vec{X: 2, Y: 2}) {
		t.Errorf("got bounds %v", bb)
	}
	if _, err := oracle.Polygon(ell[:2]); err == nil {
		t.Error("expected error for 2 vertex polygon")
	}
}

func TestOutline(t *testing.T) {
	o, err := oracle.Outline(ell)
	if err != nil {
		t.Fatal(err)
	}
	testOracle(t, "outline", o, ellProbes)
}

func TestSDF(t *testing.T) {
	circle, err := sdf.Circle2D(1)
	if err != nil {
		t.Fatal(err)
	}
	testOracle(t, "circle", oracle.SDF(circle), []probe{
		{r2.Vec{}, true},
		{r2.Vec{X: 0.7, Y: 0.7}, true},
		{r2.Vec{X: 0.8, Y: 0.8}, false},
	})
}

func TestTriangles(t *testing.T) {
	o, err := oracle.Triangles(ell, ellTriangles)
	if err != nil {
		t.Fatal(err)
	}
	if o.Len() != 4 {
		t.Errorf("got %d indexed triangles, want 4", o.Len())
	}
	testOracle(t, "triangles", o, append(ellProbes,
		probe{r2.Vec{X: 2, Y: 0.5}, true}, // on outer edge
		probe{r2.Vec{X: 1, Y: 1}, true},   // on vertex
	))
	if _, err := oracle.Triangles(ell, ellTriangles[:4]); err == nil {
		t.Error("expected error for partial face")
	}
	if _, err := oracle.Triangles(ell, []uint32{0, 1, 6}); err == nil {
		t.Error("expected error for index out of range")
	}
}

func TestMask(t *testing.T) {
	// 4x4 pixel image with an opaque bottom-left 2x2 quadrant.
	img := image.NewAlpha(image.Rect(0, 0, 4, 4))
	for y := 2; y < 4; y++ {
		for x := 0; x < 2; x++ {
			img.SetAlpha(x, y, color.Alpha{A: 255})
		}
	}
	img.SetAlpha(3, 0, color.Alpha{A: 100}) // below default threshold
	o := oracle.Mask(img, oracle.MaskConfig{PixelSize: 0.5, Origin: r2.Vec{X: 10, Y: 10}})
	testOracle(t, "mask", o, []probe{
		{r2.Vec{X: 10.2, Y: 10.2}, true},
		{r2.Vec{X: 10.9, Y: 10.9}, true},
		{r2.Vec{X: 11.2, Y: 10.2}, false},
		{r2.Vec{X: 10.2, Y: 11.2}, false},
		{r2.Vec{X: 11.8, Y: 11.8}, false},
		{r2.Vec{X: 9.9, Y: 10.2}, false},
		{r2.Vec{X: 10.2, Y: 12.1}, false},
	})
	bb := o.Bounds()
	if bb.Min != (r2.Vec{X: 10, Y: 10}) || bb.Max != (r2.Vec{X: 12, Y: 12}) {
		t.Errorf("got bounds %v", bb)
	}
	low := oracle.Mask(img, oracle.MaskConfig{PixelSize: 0.5, Origin: r2.Vec{X: 10, Y: 10}, Threshold: 0x1000})
	if !low.Contains(r2.Vec{X: 11.8, Y: 11.8}) {
		t.Error("translucent pixel not inside with lowered threshold")
	}
	anyAlpha := oracle.Mask(img, oracle.MaskConfig{PixelSize: 0.5, Origin: r2.Vec{X: 10, Y: 10}, Threshold: 1})
	testOracle(t, "any alpha", anyAlpha, []probe{
		{r2.Vec{X: 11.8, Y: 11.8}, true},
		{r2.Vec{X: 10.2, Y: 10.2}, true},
		{r2.Vec{X: 11.2, Y: 10.2}, false}, // fully transparent
	})
}

// The oracles agree on the probe points of a boundary walk.
func TestOraclesWalkEll(t *testing.T) {
	poly, _ := oracle.Polygon(ell)
	outline, _ := oracle.Outline(ell)
	tris, _ := oracle.Triangles(ell, ellTriangles)
	for name, o := range map[string]column.Oracle{
		"polygon":   poly,
		"outline":   outline,
		"triangles": tris,
	} {
		loop, err := column.ReconstructBoundary(ell, o)
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		for i, idx := range loop {
			if idx != i {
				t.Errorf("%s: got loop %v, want [0 1 2 3 4 5]", name, loop)
				break
			}
		}
	}
}
