package render

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	stlHeaderSize   = 84
	stlTriangleSize = 50
)

// ErrNormalMismatch is returned by ReadSTL when a stored facet normal does not
// match the normal computed from its vertices. The triangles are still returned.
var ErrNormalMismatch = errors.New("stl: stored normal differs from vertex normal")

// CreateSTL writes all triangles of a Renderer to a binary STL file at path.
func CreateSTL(path string, r Renderer) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	// Header is written last, once the triangle count is known.
	_, err = file.Seek(stlHeaderSize, io.SeekStart)
	if err != nil {
		return err
	}
	rd := &stlReader{r: r}
	n, err := io.CopyBuffer(file, rd, make([]byte, stlTriangleSize*trianglesInBuffer))
	if err != nil {
		return err
	}
	if n == 0 {
		return errors.New("stl: renderer produced no triangles")
	}
	_, err = file.Seek(0, io.SeekStart)
	if err != nil {
		return err
	}
	var hdr [stlHeaderSize]byte
	stlHeader{Count: uint32(n / stlTriangleSize)}.put(hdr[:])
	_, err = file.Write(hdr[:])
	if err != nil {
		return err
	}
	return file.Close()
}

// WriteSTL writes model triangles to a writer in binary STL file format.
func WriteSTL(w io.Writer, model []Triangle3) error {
	if len(model) == 0 {
		return errors.New("empty triangle slice")
	}
	if int64(len(model)) > math.MaxUint32 {
		return errors.New("amount of triangles in model exceeds STL design limits")
	}
	var buf [stlHeaderSize]byte
	stlHeader{Count: uint32(len(model))}.put(buf[:])
	if _, err := w.Write(buf[:]); err != nil {
		return err
	}
	for _, triangle := range model {
		fromTriangle3(triangle).put(buf[:])
		if _, err := w.Write(buf[:stlTriangleSize]); err != nil {
			return err
		}
	}
	return nil
}

// ReadSTL reads a binary STL stream. It validates every facet and returns
// ErrNormalMismatch (wrapped) alongside the triangles if any stored normal
// disagrees with its vertices.
func ReadSTL(r io.Reader) (output []Triangle3, readErr error) {
	var hbuf [stlHeaderSize]byte
	if _, err := io.ReadFull(r, hbuf[:]); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return nil, errors.New("encountered EOF while reading STL header")
		}
		return nil, fmt.Errorf("STL header read failed: %w", err)
	}
	count := binary.LittleEndian.Uint32(hbuf[80:])
	if count == 0 {
		return nil, errors.New("STL header indicates 0 triangles present")
	}
	var (
		buf            [stlTriangleSize]byte
		d              stlTriangle
		i              int
		normMismatches int
	)
	defer func() {
		if readErr != nil && !errors.Is(readErr, ErrNormalMismatch) {
			readErr = fmt.Errorf("%d/%d STL triangles read: %w", i+1, count, readErr)
		}
	}()
	output = make([]Triangle3, 0, count)
	for i = 0; i < int(count); i++ {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return nil, err
		}
		d.get(buf[:])
		if err := d.validate(); err != nil {
			if !errors.Is(err, ErrNormalMismatch) {
				return nil, err
			}
			normMismatches++
		}
		output = append(output, d.toTriangle3())
	}
	if normMismatches > 0 {
		return output, fmt.Errorf("%d facets: %w", normMismatches, ErrNormalMismatch)
	}
	return output, nil
}

// stlHeader defines the STL file header.
type stlHeader struct {
	_     [80]uint8 // Header
	Count uint32    // Number of triangles
}

func (h stlHeader) put(b []byte) {
	_ = b[83] // early bounds check
	binary.LittleEndian.PutUint32(b[80:], h.Count)
}

const trianglesInBuffer = 1 << 10

// stlReader adapts a Renderer to an io.Reader of STL facets.
type stlReader struct {
	r   Renderer
	buf [trianglesInBuffer]Triangle3
}

func (w *stlReader) Read(b []byte) (int, error) {
	ntMax := min(len(b)/stlTriangleSize, len(w.buf))
	if ntMax == 0 {
		return 0, errors.New("stlReader requires at least 50 bytes to write a single triangle")
	}
	nt, err := w.r.ReadTriangles(w.buf[:ntMax])
	for i, triangle := range w.buf[:nt] {
		fromTriangle3(triangle).put(b[i*stlTriangleSize:])
	}
	return nt * stlTriangleSize, err
}

// stlTriangle defines the triangle data within an STL file.
type stlTriangle struct {
	Normal  [3]float32
	Vertex1 [3]float32
	Vertex2 [3]float32
	Vertex3 [3]float32
	_       uint16 // Attribute byte count
}

func fromTriangle3(t Triangle3) (d stlTriangle) {
	d.Normal = to3F32(t.Normal())
	d.Vertex1 = to3F32(t[0])
	d.Vertex2 = to3F32(t[1])
	d.Vertex3 = to3F32(t[2])
	return d
}

func (t stlTriangle) put(b []byte) {
	if len(b) < stlTriangleSize {
		panic("need length 50 to marshal stlTriangle")
	}
	put3F32(b, t.Normal)
	put3F32(b[12:], t.Vertex1)
	put3F32(b[24:], t.Vertex2)
	put3F32(b[36:], t.Vertex3)
	binary.LittleEndian.PutUint16(b[48:], 0)
}

func (t *stlTriangle) get(b []byte) {
	if len(b) < stlTriangleSize {
		panic("need length 50 to unmarshal stlTriangle")
	}
	get3F32(b, &t.Normal)
	get3F32(b[12:], &t.Vertex1)
	get3F32(b[24:], &t.Vertex2)
	get3F32(b[36:], &t.Vertex3)
	// no attributes supported yet.
}

func put3F32(b []byte, f [3]float32) {
	_ = b[11] // early bounds check
	binary.LittleEndian.PutUint32(b, math.Float32bits(f[0]))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(f[1]))
	binary.LittleEndian.PutUint32(b[8:], math.Float32bits(f[2]))
}

func get3F32(b []byte, f *[3]float32) {
	_ = b[11] // early bounds check
	f[0] = math.Float32frombits(binary.LittleEndian.Uint32(b))
	f[1] = math.Float32frombits(binary.LittleEndian.Uint32(b[4:]))
	f[2] = math.Float32frombits(binary.LittleEndian.Uint32(b[8:]))
}

func bad3F32(f [3]float32) bool {
	return math32.IsNaN(f[0]) || math32.IsInf(f[0], 0) ||
		math32.IsNaN(f[1]) || math32.IsInf(f[1], 0) ||
		math32.IsNaN(f[2]) || math32.IsInf(f[2], 0)
}

func (t stlTriangle) validate() error {
	const epsilon = 1e-12
	const normTol = 5e-2
	if bad3F32(t.Normal) {
		return errors.New("inf/NaN STL triangle normal")
	}
	if bad3F32(t.Vertex1) || bad3F32(t.Vertex2) || bad3F32(t.Vertex3) {
		return errors.New("inf/NaN STL triangle vertex")
	}
	if t.degenerate(epsilon) {
		return errors.New("triangle is degenerate")
	}
	if !equalWithin3F32(t.toTriangle3().normal32(), t.Normal, normTol) {
		return ErrNormalMismatch
	}
	return nil
}

func (t Triangle3) normal32() [3]float32 {
	return to3F32(t.Normal())
}

func (t stlTriangle) degenerate(tol float32) bool {
	return equalWithin3F32(t.Vertex1, t.Vertex2, tol) ||
		equalWithin3F32(t.Vertex2, t.Vertex3, tol) ||
		equalWithin3F32(t.Vertex3, t.Vertex1, tol)
}

func equalWithin3F32(a, b [3]float32, tol float32) bool {
	return math32.Abs(a[0]-b[0]) <= tol &&
		math32.Abs(a[1]-b[1]) <= tol &&
		math32.Abs(a[2]-b[2]) <= tol
}

func to3F32(v r3.Vec) [3]float32 {
	return [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
}

func r3From3F32(f [3]float32) r3.Vec {
	return r3.Vec{X: float64(f[0]), Y: float64(f[1]), Z: float64(f[2])}
}

func (d stlTriangle) toTriangle3() Triangle3 {
	return Triangle3{
		r3From3F32(d.Vertex1),
		r3From3F32(d.Vertex2),
		r3From3F32(d.Vertex3),
	}
}
