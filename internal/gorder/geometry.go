package gorder

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// Span is a closed interval along one axis. Unbounded ends are encoded
// as YAML infinities (-.inf, .inf).
type Span [2]float64

// FullSpan returns the unbounded span.
func FullSpan() Span {
	return Span{math.Inf(-1), math.Inf(1)}
}

// Valid reports whether the span is ordered.
func (s Span) Valid() bool {
	return s[0] <= s[1]
}

// GeomRefKind discriminates the geometry reference representations.
type GeomRefKind int

// Geometry reference kinds.
const (
	RefCenter GeomRefKind = iota
	RefPoint
	RefSelection
)

// GeomReference is the point the geometry dimensions relate to: the
// dynamically computed simulation box center, a static point, or the
// center of geometry of an atom selection. In the document a scalar
// "center" means the box center; any other scalar is treated as an
// atom selection (a selection literally named center must be written
// differently, e.g. "name center"); a 3-element sequence is a point.
type GeomReference struct {
	Center    bool
	Point     *[3]float64
	Selection string
}

// CenterReference returns the box-center reference.
func CenterReference() GeomReference {
	return GeomReference{Center: true}
}

// PointReference returns a static point reference.
func PointReference(x, y, z float64) GeomReference {
	return GeomReference{Point: &[3]float64{x, y, z}}
}

// SelectionReference returns a reference following an atom selection.
func SelectionReference(selection string) GeomReference {
	return GeomReference{Selection: selection}
}

// Kind returns the active representation. The zero value is reported
// as the box center (the document default).
func (r GeomReference) Kind() GeomRefKind {
	switch {
	case r.Point != nil:
		return RefPoint
	case r.Selection != "":
		return RefSelection
	default:
		return RefCenter
	}
}

// IsZero makes the default reference omittable in the document.
func (r GeomReference) IsZero() bool {
	return !r.Center && r.Point == nil && r.Selection == ""
}

// Validate checks the reference representation.
func (r GeomReference) Validate() error {
	if r.Point != nil && (r.Center || r.Selection != "") {
		return fmt.Errorf("geometry reference must have exactly one representation")
	}
	return nil
}

// MarshalYAML encodes the reference as "center", a point sequence, or
// a selection scalar.
func (r GeomReference) MarshalYAML() (interface{}, error) {
	switch r.Kind() {
	case RefPoint:
		return []float64{r.Point[0], r.Point[1], r.Point[2]}, nil
	case RefSelection:
		return r.Selection, nil
	default:
		return "center", nil
	}
}

// UnmarshalYAML decodes a reference scalar or point sequence.
func (r *GeomReference) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Value == "center" {
			*r = CenterReference()
			return nil
		}
		var selection string
		if err := value.Decode(&selection); err != nil {
			return fmt.Errorf("invalid geometry reference: %w", err)
		}
		*r = SelectionReference(selection)
		return nil
	case yaml.SequenceNode:
		var point [3]float64
		if err := value.Decode(&point); err != nil {
			return fmt.Errorf("invalid geometry reference point: %w", err)
		}
		*r = GeomReference{Point: &point}
		return nil
	default:
		return fmt.Errorf("invalid geometry reference: expected a scalar or a sequence, got %s", nodeKind(value))
	}
}

// Geometry restricts the analysis to a spatial region. Exactly one
// shape is set; the document encodes it as a single-key mapping.
type Geometry struct {
	Cuboid   *Cuboid   `yaml:"cuboid,omitempty"`
	Cylinder *Cylinder `yaml:"cylinder,omitempty"`
	Sphere   *Sphere   `yaml:"sphere,omitempty"`
}

// Cuboid is an axis-aligned box relative to a reference point.
type Cuboid struct {
	Reference GeomReference `yaml:"reference,omitempty"`
	XDim      Span          `yaml:"xdim"`
	YDim      Span          `yaml:"ydim"`
	ZDim      Span          `yaml:"zdim"`
}

// Cylinder is oriented along one axis relative to a reference point.
type Cylinder struct {
	Reference   GeomReference `yaml:"reference,omitempty"`
	Radius      float64       `yaml:"radius"`
	Span        Span          `yaml:"span"`
	Orientation Axis          `yaml:"orientation"`
}

// Sphere is centered on a reference point.
type Sphere struct {
	Reference GeomReference `yaml:"reference,omitempty"`
	Radius    float64       `yaml:"radius"`
}

// NewCuboid builds a cuboid geometry, rejecting inverted spans.
func NewCuboid(reference GeomReference, xdim, ydim, zdim Span) (*Geometry, error) {
	c := &Cuboid{Reference: reference, XDim: xdim, YDim: ydim, ZDim: zdim}
	g := &Geometry{Cuboid: c}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// NewCylinder builds a cylinder geometry, rejecting a non-positive
// radius, an inverted span, and an invalid orientation.
func NewCylinder(reference GeomReference, radius float64, span Span, orientation Axis) (*Geometry, error) {
	c := &Cylinder{Reference: reference, Radius: radius, Span: span, Orientation: orientation}
	g := &Geometry{Cylinder: c}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// NewSphere builds a sphere geometry, rejecting a non-positive radius.
func NewSphere(reference GeomReference, radius float64) (*Geometry, error) {
	g := &Geometry{Sphere: &Sphere{Reference: reference, Radius: radius}}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Validate checks that exactly one shape is set and that the shape
// parameters are consistent.
func (g *Geometry) Validate() error {
	set := 0
	for _, present := range []bool{g.Cuboid != nil, g.Cylinder != nil, g.Sphere != nil} {
		if present {
			set++
		}
	}
	if set != 1 {
		return fmt.Errorf("geometry must specify exactly one shape, got %d", set)
	}

	switch {
	case g.Cuboid != nil:
		for name, span := range map[string]Span{
			"xdim": g.Cuboid.XDim, "ydim": g.Cuboid.YDim, "zdim": g.Cuboid.ZDim,
		} {
			if !span.Valid() {
				return fmt.Errorf("cuboid %s is inverted: [%v, %v]", name, span[0], span[1])
			}
		}
		return g.Cuboid.Reference.Validate()
	case g.Cylinder != nil:
		if g.Cylinder.Radius <= 0 {
			return fmt.Errorf("cylinder radius must be positive, got %v", g.Cylinder.Radius)
		}
		if !g.Cylinder.Span.Valid() {
			return fmt.Errorf("cylinder span is inverted: [%v, %v]", g.Cylinder.Span[0], g.Cylinder.Span[1])
		}
		if !g.Cylinder.Orientation.Valid() {
			return fmt.Errorf("invalid cylinder orientation %q", g.Cylinder.Orientation)
		}
		return g.Cylinder.Reference.Validate()
	default:
		if g.Sphere.Radius <= 0 {
			return fmt.Errorf("sphere radius must be positive, got %v", g.Sphere.Radius)
		}
		return g.Sphere.Reference.Validate()
	}
}
