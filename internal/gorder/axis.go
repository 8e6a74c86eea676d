// Package gorder models the configuration document of the gorder
// analysis engine: a typed YAML schema with validating constructors and
// deferred whole-document validation, plus the engine invocation boundary.
package gorder

import "fmt"

// Axis is one of the three cartesian axes.
type Axis string

// Cartesian axes as they appear in the configuration document.
const (
	AxisX Axis = "x"
	AxisY Axis = "y"
	AxisZ Axis = "z"
)

// ParseAxis converts a document scalar into an Axis.
func ParseAxis(s string) (Axis, error) {
	switch Axis(s) {
	case AxisX, AxisY, AxisZ:
		return Axis(s), nil
	default:
		return "", fmt.Errorf("invalid axis %q (expected x, y, or z)", s)
	}
}

// Valid reports whether the axis is one of x, y, z.
func (a Axis) Valid() bool {
	return a == AxisX || a == AxisY || a == AxisZ
}

// Plane identifies the pair of axes an ordermap is binned in.
type Plane string

// Supported ordermap planes.
const (
	PlaneXY Plane = "xy"
	PlaneXZ Plane = "xz"
	PlaneYZ Plane = "yz"
)

// Valid reports whether the plane is one of xy, xz, yz.
func (p Plane) Valid() bool {
	return p == PlaneXY || p == PlaneXZ || p == PlaneYZ
}
