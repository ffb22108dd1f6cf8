package matter

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

var (
	// PLA (polylactic acid) is the most widely used plastic filament material in 3D printing.
	PLA = ViscousMaterial{shrink: 0.2e-2} // 0.2% shrinkage
	// PETG shrinks a little more than PLA.
	PETG = ViscousMaterial{shrink: 0.4e-2}
	// Exact applies no compensation.
	Exact = ViscousMaterial{}
)

// ViscousMaterial models shrinkage of a printed plastic.
type ViscousMaterial struct {
	// shrink is the thermal contraction shrinkage of a material once the material
	// cools to room temperature after the heated bed is turned off.
	shrink float64
}

// Lookup returns a material by case-insensitive name.
func Lookup(name string) (ViscousMaterial, error) {
	switch strings.ToLower(name) {
	case "", "none", "exact":
		return Exact, nil
	case "pla":
		return PLA, nil
	case "petg":
		return PETG, nil
	}
	return ViscousMaterial{}, fmt.Errorf("unknown material %q", name)
}

// Scale grows vertices uniformly about the origin so that the part has its
// modelled size after cooling.
func (m ViscousMaterial) Scale(vertices []r3.Vec) {
	if m.shrink == 0 {
		return
	}
	scale := 1 / (1 - m.shrink)
	for i := range vertices {
		vertices[i] = r3.Scale(scale, vertices[i])
	}
}

