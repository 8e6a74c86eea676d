package editor

// Plane is a map projection plane in the editor.
type Plane int

// Map planes.
const (
	PlaneXY Plane = iota
	PlaneXZ
	PlaneYZ
)

// String returns the document spelling of the plane.
func (p Plane) String() string {
	switch p {
	case PlaneXZ:
		return "xz"
	case PlaneYZ:
		return "yz"
	default:
		return "xy"
	}
}

// DimMode selects how one map dimension is sized.
type DimMode int

// Dimension sizing modes.
const (
	DimAuto DimMode = iota
	DimManual
)

// MapDimensionParams is one editable map dimension: selector plus the
// manual span used by the manual case.
type MapDimensionParams struct {
	Mode   DimMode
	Manual [2]float64
}

func (d *MapDimensionParams) valid() bool {
	if d.Mode == DimManual {
		return d.Manual[0] <= d.Manual[1]
	}
	return true
}

// OrderMapParams configures ordermap construction. The plane is chosen
// explicitly only when ExplicitPlane is set; otherwise it is derived
// from the static membrane normal on export.
type OrderMapParams struct {
	Enabled         bool
	OutputDirectory string
	ExplicitPlane   bool
	Plane           Plane
	BinSize         [2]float64
	Dim             [2]MapDimensionParams
	MinSamples      int
}

func defaultOrderMapParams() OrderMapParams {
	return OrderMapParams{
		BinSize:    [2]float64{0.1, 0.1},
		MinSamples: 1,
	}
}

// valid checks the ordermap parameters against the global membrane
// normal. When the normal is dynamic or read from a file no plane can
// be derived from it, so an explicit plane is required.
func (p *OrderMapParams) valid(normal NormalMode) bool {
	if !p.Enabled {
		return true
	}
	if p.OutputDirectory == "" {
		return false
	}
	if !normal.Static() && !p.ExplicitPlane {
		return false
	}
	if p.BinSize[0] <= 0 || p.BinSize[1] <= 0 {
		return false
	}
	if p.MinSamples < 1 {
		return false
	}
	return p.Dim[0].valid() && p.Dim[1].valid()
}
