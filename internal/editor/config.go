// Package editor holds the editable analysis configuration: a selector
// plus co-resident parameter block per option group, pure validity
// predicates over the active selections, and the fallible conversions
// from and to the engine configuration document.
package editor

import "math"

// Axis is a cartesian axis choice in the editor.
type Axis int

// Editor axes.
const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// String returns the document spelling of the axis.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return "z"
	}
}

// OutputFiles holds the analysis output paths. Only the YAML path is
// required; empty optional paths are omitted on export.
type OutputFiles struct {
	YAML string
	CSV  string
	Tab  string
	XVG  string
}

// Config is the aggregate of all editable analysis options. Every
// multi-way selector retains the parameter blocks of its inactive
// variants, so switching a selector back and forth never loses input;
// only the active variant participates in validity checks and export.
type Config struct {
	Structure  string
	Trajectory []string
	Index      string
	Bonds      string

	Kind       AnalysisKind
	KindParams AnalysisKindParams

	Output OutputFiles

	NormalMode    NormalMode
	DynamicNormal DynamicNormalParams
	NormalsFile   string

	LeafletMethod LeafletMethod
	Leaflets      LeafletParams

	GeometryShape GeomShape
	Geometry      GeomParams

	OrderMaps     OrderMapParams
	EstimateError EstimateErrorParams
	Frames        FrameSelectionParams
	Other         OtherParams
}

// NewConfig returns a configuration with every group at its defaults.
func NewConfig() *Config {
	return &Config{
		Trajectory:    []string{""},
		NormalMode:    NormalZ,
		DynamicNormal: DynamicNormalParams{Radius: 2.0},
		Leaflets:      defaultLeafletParams(),
		Geometry:      defaultGeomParams(),
		OrderMaps:     defaultOrderMapParams(),
		EstimateError: EstimateErrorParams{Blocks: 5},
		Frames:        FrameSelectionParams{Begin: 0, End: math.Inf(1), Step: 1},
		Other:         OtherParams{Threads: 1, MinSamples: 1, HandlePBC: true},
	}
}

// KindValid reports whether the active analysis kind has all required
// selections.
func (c *Config) KindValid() bool {
	return c.KindParams.valid(c.Kind)
}

// MembraneNormalValid reports whether the active membrane normal mode
// has all required parameters.
func (c *Config) MembraneNormalValid() bool {
	switch c.NormalMode {
	case NormalDynamic:
		return c.DynamicNormal.valid()
	case NormalFromFile:
		return c.NormalsFile != ""
	default:
		return true
	}
}

// LeafletsValid reports whether the active leaflet classification
// method has all required parameters. Methods that depend on the
// membrane normal additionally require an explicit per-group override
// when the global normal is the dynamic kind, since a per-frame normal
// cannot be reused implicitly.
func (c *Config) LeafletsValid() bool {
	return c.Leaflets.valid(c.LeafletMethod, c.NormalMode)
}

// GeometryValid reports whether the active geometry shape and its
// reference have all required parameters.
func (c *Config) GeometryValid() bool {
	return c.Geometry.valid(c.GeometryShape)
}

// OrderMapsValid reports whether ordermap construction, if enabled,
// has all required parameters. When the global membrane normal is the
// dynamic or from-file kind the map plane cannot be derived and must
// be chosen explicitly.
func (c *Config) OrderMapsValid() bool {
	return c.OrderMaps.valid(c.NormalMode)
}

// EstimateErrorValid reports whether error estimation, if enabled, has
// a usable block count.
func (c *Config) EstimateErrorValid() bool {
	return c.EstimateError.valid()
}

// Valid reports whether the configuration is complete enough to be
// exported and run: every active group predicate holds and the
// required file paths are present.
func (c *Config) Valid() bool {
	return c.Structure != "" &&
		len(c.Trajectory) > 0 &&
		!anyEmpty(c.Trajectory) &&
		c.Output.YAML != "" &&
		c.KindValid() &&
		c.MembraneNormalValid() &&
		c.LeafletsValid() &&
		c.GeometryValid() &&
		c.OrderMapsValid() &&
		c.EstimateErrorValid()
}

// GroupStatus is one line of a validity report.
type GroupStatus struct {
	Name string
	OK   bool
}

// Report returns the per-group validity of the configuration, in the
// order the groups appear in the editor.
func (c *Config) Report() []GroupStatus {
	return []GroupStatus{
		{Name: "input files", OK: c.Structure != "" && len(c.Trajectory) > 0 && !anyEmpty(c.Trajectory)},
		{Name: "output files", OK: c.Output.YAML != ""},
		{Name: "analysis type", OK: c.KindValid()},
		{Name: "membrane normal", OK: c.MembraneNormalValid()},
		{Name: "leaflet assignment", OK: c.LeafletsValid()},
		{Name: "region selection", OK: c.GeometryValid()},
		{Name: "ordermaps", OK: c.OrderMapsValid()},
		{Name: "error estimation", OK: c.EstimateErrorValid()},
	}
}

func anyEmpty(items []string) bool {
	for _, item := range items {
		if item == "" {
			return true
		}
	}
	return false
}
