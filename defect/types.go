// SPDX-License-Identifier: MIT
// Package defect: descriptor types and sentinel errors.
// All constructors MUST return these sentinels and tests MUST check them
// via errors.Is. No routine panics on user-triggered conditions.
package defect

import "errors"

// Sentinel errors for defect setup. All are fatal at setup time; there are
// no recoverable or retryable conditions mid-run.
var (
	// ErrUnknownKind indicates a Kind outside {None, Point, Gaussian}.
	ErrUnknownKind = errors.New("defect: unknown defect kind")

	// ErrBadWidth indicates a non-positive or non-finite Gaussian width.
	// A zero width would inject NaN into every bond weight, so it is
	// rejected here instead of propagating into the field.
	ErrBadWidth = errors.New("defect: gaussian width must be positive and finite")

	// ErrBadStrength indicates a NaN or ±Inf strength.
	ErrBadStrength = errors.New("defect: strength must be finite")

	// ErrGeometryUnsupported indicates a center/size combination the
	// builder's centered-lattice sizing cannot represent: the center must
	// be (nx/2, ny/2) on an even-sized grid (Gaussian), or simply lie on
	// the grid (Point).
	ErrGeometryUnsupported = errors.New("defect: center incompatible with lattice geometry")
)

// Kind tags the defect variant.
type Kind int

const (
	// None leaves the exchange coupling uniform everywhere.
	None Kind = iota
	// Point rescales only the four bonds incident on the defect site.
	Point
	// Gaussian rescales every bond by a Gaussian of the bond-midpoint
	// distance from the defect center.
	Gaussian
)

// Defect describes one localized exchange modification. It is a passive,
// immutable value; Strength may be negative (weakened coupling).
type Defect struct {
	// Kind selects the variant; the zero value is None.
	Kind Kind
	// Strength is the relative modification magnitude aJ.
	Strength float64
	// Width is the Gaussian decay length dJ (bond-midpoint units).
	// Ignored for Point defects.
	Width float64
	// CX, CY locate the defect center (0-based site coordinates).
	CX, CY int
}

// Weights holds the four precomputed per-bond weight planes, one per
// nearest-neighbor bond direction, each of length Nx·Ny and index-aligned
// with the lattice (row-major, y·Nx+x). Entry i of Right is the weight of
// the bond from site i to its +x neighbor, and so on. Built once per run;
// read-only thereafter.
type Weights struct {
	Left, Right, Top, Bottom []float64
}
