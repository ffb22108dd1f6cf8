package oracle

import (
	"image"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// MaskConfig places an image in silhouette space.
type MaskConfig struct {
	// PixelSize is the side of a pixel in silhouette units. Zero means 1.
	PixelSize float64
	// Origin is the silhouette position of the bottom-left image corner.
	Origin r2.Vec
	// Threshold is the minimum 16-bit alpha of an inside pixel. Zero means
	// half opacity, 1 makes any non-transparent pixel inside.
	Threshold uint32
}

// MaskOracle tests containment by sampling the alpha of a raster image.
// Image rows grow downward while silhouette y grows upward.
type MaskOracle struct {
	img image.Image
	cfg MaskConfig
}

// Mask returns an oracle over img.
func Mask(img image.Image, cfg MaskConfig) *MaskOracle {
	if cfg.PixelSize == 0 {
		cfg.PixelSize = 1
	}
	if cfg.Threshold == 0 {
		cfg.Threshold = 0x8000
	}
	return &MaskOracle{img: img, cfg: cfg}
}

// Contains reports whether the pixel under p is opaque enough.
// Points outside the image are outside.
func (m *MaskOracle) Contains(p r2.Vec) bool {
	rect := m.img.Bounds()
	col := math.Floor((p.X - m.cfg.Origin.X) / m.cfg.PixelSize)
	row := math.Floor((p.Y - m.cfg.Origin.Y) / m.cfg.PixelSize)
	if col < 0 || row < 0 || col >= float64(rect.Dx()) || row >= float64(rect.Dy()) {
		return false
	}
	x := rect.Min.X + int(col)
	y := rect.Max.Y - 1 - int(row)
	_, _, _, a := m.img.At(x, y).RGBA()
	return a >= m.cfg.Threshold
}

// Bounds returns the area covered by the image in silhouette space.
func (m *MaskOracle) Bounds() r2.Box {
	rect := m.img.Bounds()
	size := r2.Vec{X: float64(rect.Dx()), Y: float64(rect.Dy())}
	return r2.Box{
		Min: m.cfg.Origin,
		Max: r2.Add(m.cfg.Origin, r2.Scale(m.cfg.PixelSize, size)),
	}
}
