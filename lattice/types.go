// Package lattice core types, directions, and sentinel errors.
package lattice

import "errors"

// Sentinel errors for lattice operations.
var (
	// ErrBadDimensions indicates a requested grid smaller than 1×1.
	ErrBadDimensions = errors.New("lattice: dimensions must be at least 1x1")
)

// Component indices into Vec3 and Field planes.
const (
	X = 0
	Y = 1
	Z = 2
)

// Vec3 is a single 3-component vector, e.g. one spin or one field sample.
type Vec3 [3]float64

// Axis selects a lattice axis for stencil operations.
type Axis int

const (
	// AxisX walks along rows (index stride 1).
	AxisX Axis = iota
	// AxisY walks along columns (index stride Nx).
	AxisY
)

// Dir selects the stencil direction along an axis.
// The numeric values (-1, +1) are used directly as index offsets.
type Dir int

const (
	// Minus is the −1 neighbor direction.
	Minus Dir = -1
	// Plus is the +1 neighbor direction.
	Plus Dir = 1
)
