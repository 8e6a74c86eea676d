package editor

import "math"

// GeomShape selects the region restriction shape.
type GeomShape int

// Region shapes.
const (
	ShapeNone GeomShape = iota
	ShapeCuboid
	ShapeCylinder
	ShapeSphere
)

// String returns the label shown in the editor.
func (s GeomShape) String() string {
	switch s {
	case ShapeCuboid:
		return "cuboid"
	case ShapeCylinder:
		return "cylinder"
	case ShapeSphere:
		return "sphere"
	default:
		return "none"
	}
}

// GeomRefKind selects how the reference point of a shape is given.
type GeomRefKind int

// Reference point kinds. The zero value is an explicit point, matching
// the engine default.
const (
	RefPoint GeomRefKind = iota
	RefCenter
	RefSelection
)

// String returns the label shown in the editor.
func (k GeomRefKind) String() string {
	switch k {
	case RefCenter:
		return "box center"
	case RefSelection:
		return "selection center"
	default:
		return "point"
	}
}

// GeomReferenceParams is the editable reference point of a shape:
// selector plus co-resident point and selection.
type GeomReferenceParams struct {
	Kind      GeomRefKind
	Point     [3]float64
	Selection string
}

func (r *GeomReferenceParams) valid() bool {
	if r.Kind == RefSelection {
		return r.Selection != ""
	}
	return true
}

// CuboidParams configures a cuboid region. Spans default to the full
// simulation box.
type CuboidParams struct {
	Reference GeomReferenceParams
	XDim      [2]float64
	YDim      [2]float64
	ZDim      [2]float64
}

func (p *CuboidParams) valid() bool {
	return p.Reference.valid() &&
		p.XDim[0] <= p.XDim[1] &&
		p.YDim[0] <= p.YDim[1] &&
		p.ZDim[0] <= p.ZDim[1]
}

// CylinderParams configures a cylindrical region.
type CylinderParams struct {
	Reference   GeomReferenceParams
	Radius      float64
	Span        [2]float64
	Orientation Axis
}

func (p *CylinderParams) valid() bool {
	return p.Reference.valid() && p.Radius > 0 && p.Span[0] <= p.Span[1]
}

// SphereParams configures a spherical region.
type SphereParams struct {
	Reference GeomReferenceParams
	Radius    float64
}

func (p *SphereParams) valid() bool {
	return p.Reference.valid() && p.Radius > 0
}

// GeomParams holds the parameter blocks of all region shapes at once;
// only the block of the active shape is consulted.
type GeomParams struct {
	Cuboid   CuboidParams
	Cylinder CylinderParams
	Sphere   SphereParams
}

func defaultGeomParams() GeomParams {
	full := [2]float64{math.Inf(-1), math.Inf(1)}
	return GeomParams{
		Cuboid: CuboidParams{XDim: full, YDim: full, ZDim: full},
		Cylinder: CylinderParams{
			Radius:      5.0,
			Span:        full,
			Orientation: AxisZ,
		},
		Sphere: SphereParams{Radius: 5.0},
	}
}

func (p *GeomParams) valid(shape GeomShape) bool {
	switch shape {
	case ShapeCuboid:
		return p.Cuboid.valid()
	case ShapeCylinder:
		return p.Cylinder.valid()
	case ShapeSphere:
		return p.Sphere.valid()
	default:
		return true
	}
}
