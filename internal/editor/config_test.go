package editor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// completeConfig returns the smallest configuration that is valid for
// export: an atomistic analysis of one trajectory with default options.
func completeConfig() *Config {
	c := NewConfig()
	c.Structure = "system.gro"
	c.Trajectory = []string{"traj.xtc"}
	c.Output.YAML = "order.yaml"
	c.KindParams.AA = AAParams{
		HeavyAtoms: "@membrane and element name carbon",
		Hydrogens:  "@membrane and element name hydrogen",
	}
	return c
}

func TestNewConfigDefaults(t *testing.T) {
	c := NewConfig()

	assert.Equal(t, KindAtomistic, c.Kind)
	assert.Equal(t, NormalZ, c.NormalMode)
	assert.Equal(t, 2.0, c.DynamicNormal.Radius)
	assert.Equal(t, 2.5, c.Leaflets.Local.Radius)
	assert.Equal(t, 5.0, c.Geometry.Cylinder.Radius)
	assert.Equal(t, 5.0, c.Geometry.Sphere.Radius)
	assert.Equal(t, AxisZ, c.Geometry.Cylinder.Orientation)
	assert.True(t, math.IsInf(c.Geometry.Cuboid.XDim[1], 1))
	assert.Equal(t, [2]float64{0.1, 0.1}, c.OrderMaps.BinSize)
	assert.Equal(t, 1, c.OrderMaps.MinSamples)
	assert.Equal(t, 5, c.EstimateError.Blocks)
	assert.True(t, math.IsInf(c.Frames.End, 1))
	assert.Equal(t, 1, c.Frames.Step)
	assert.True(t, c.Other.HandlePBC)

	assert.False(t, c.Valid())
}

func TestKindValidity(t *testing.T) {
	c := NewConfig()
	assert.False(t, c.KindValid())

	c.KindParams.AA = AAParams{HeavyAtoms: "name C", Hydrogens: "name H"}
	assert.True(t, c.KindValid())

	c.Kind = KindCoarseGrained
	assert.False(t, c.KindValid())
	c.KindParams.CG.Beads = "@membrane"
	assert.True(t, c.KindValid())

	// No compulsory selections for united-atom analysis.
	c.Kind = KindUnitedAtom
	assert.True(t, c.KindValid())
}

func TestVariantParamsRetained(t *testing.T) {
	c := NewConfig()
	c.KindParams.AA = AAParams{HeavyAtoms: "name C", Hydrogens: "name H"}

	c.Kind = KindCoarseGrained
	c.KindParams.CG.Beads = "@membrane"
	c.Kind = KindAtomistic

	assert.Equal(t, "name C", c.KindParams.AA.HeavyAtoms)
	assert.Equal(t, "@membrane", c.KindParams.CG.Beads)
	assert.True(t, c.KindValid())
}

func TestMembraneNormalValidity(t *testing.T) {
	c := NewConfig()
	assert.True(t, c.MembraneNormalValid())

	c.NormalMode = NormalDynamic
	assert.False(t, c.MembraneNormalValid())
	c.DynamicNormal.Heads = "name P"
	assert.True(t, c.MembraneNormalValid())
	c.DynamicNormal.Radius = 0
	assert.False(t, c.MembraneNormalValid())

	c.NormalMode = NormalFromFile
	assert.False(t, c.MembraneNormalValid())
	c.NormalsFile = "normals.yaml"
	assert.True(t, c.MembraneNormalValid())
}

func TestLeafletValidity(t *testing.T) {
	c := NewConfig()
	assert.True(t, c.LeafletsValid())

	c.LeafletMethod = LeafletGlobal
	assert.False(t, c.LeafletsValid())
	c.Leaflets.Global = GlobalLeafletParams{Membrane: "@membrane", Heads: "name P"}
	assert.True(t, c.LeafletsValid())

	c.LeafletMethod = LeafletFromNdx
	assert.False(t, c.LeafletsValid())
	c.Leaflets.FromNdx = FromNdxLeafletParams{
		Ndx:          []string{"leaflets.ndx"},
		Heads:        "name P",
		UpperLeaflet: "Upper",
		LowerLeaflet: "Lower",
	}
	assert.True(t, c.LeafletsValid())
	c.Leaflets.FromNdx.Ndx = []string{"leaflets.ndx", ""}
	assert.False(t, c.LeafletsValid())
}

func TestLeafletDynamicNormalCoupling(t *testing.T) {
	c := NewConfig()
	c.LeafletMethod = LeafletGlobal
	c.Leaflets.Global = GlobalLeafletParams{Membrane: "@membrane", Heads: "name P"}
	require.True(t, c.LeafletsValid())

	// A per-molecule dynamic normal cannot be reused implicitly.
	c.NormalMode = NormalDynamic
	assert.False(t, c.LeafletsValid())

	axis := AxisZ
	c.Leaflets.NormalOverride = &axis
	assert.True(t, c.LeafletsValid())

	// Clustering does not depend on the normal at all.
	c.LeafletMethod = LeafletClustering
	c.Leaflets.NormalOverride = nil
	c.Leaflets.Clustering.Heads = "name P"
	assert.True(t, c.LeafletsValid())
}

func TestGeometryValidity(t *testing.T) {
	c := NewConfig()
	assert.True(t, c.GeometryValid())

	c.GeometryShape = ShapeCylinder
	assert.True(t, c.GeometryValid())
	c.Geometry.Cylinder.Radius = 0
	assert.False(t, c.GeometryValid())
	c.Geometry.Cylinder.Radius = 5
	c.Geometry.Cylinder.Span = [2]float64{2, 1}
	assert.False(t, c.GeometryValid())

	c.GeometryShape = ShapeSphere
	c.Geometry.Sphere.Reference.Kind = RefSelection
	assert.False(t, c.GeometryValid())
	c.Geometry.Sphere.Reference.Selection = "name P"
	assert.True(t, c.GeometryValid())
}

func TestOrderMapValidity(t *testing.T) {
	c := NewConfig()
	assert.True(t, c.OrderMapsValid())

	c.OrderMaps.Enabled = true
	assert.False(t, c.OrderMapsValid())
	c.OrderMaps.OutputDirectory = "maps"
	assert.True(t, c.OrderMapsValid())

	// No plane can be derived from a per-frame normal.
	c.NormalMode = NormalDynamic
	assert.False(t, c.OrderMapsValid())
	c.OrderMaps.ExplicitPlane = true
	assert.True(t, c.OrderMapsValid())

	c.OrderMaps.BinSize[0] = 0
	assert.False(t, c.OrderMapsValid())
	c.OrderMaps.BinSize[0] = 0.1
	c.OrderMaps.Dim[0] = MapDimensionParams{Mode: DimManual, Manual: [2]float64{3, 1}}
	assert.False(t, c.OrderMapsValid())
}

func TestEstimateErrorValidity(t *testing.T) {
	c := NewConfig()
	assert.True(t, c.EstimateErrorValid())

	c.EstimateError.Enabled = true
	assert.True(t, c.EstimateErrorValid())
	c.EstimateError.Blocks = 1
	assert.False(t, c.EstimateErrorValid())
}

func TestReportMatchesPredicates(t *testing.T) {
	c := completeConfig()
	require.True(t, c.Valid())

	for _, group := range c.Report() {
		assert.True(t, group.OK, "group %s", group.Name)
	}

	c.Structure = ""
	byName := map[string]bool{}
	for _, group := range c.Report() {
		byName[group.Name] = group.OK
	}
	assert.False(t, byName["input files"])
	assert.True(t, byName["analysis type"])
	assert.False(t, c.Valid())
}

func TestFrequencyNormalized(t *testing.T) {
	f := FrequencyParams{Kind: FreqEveryNth, N: 0}
	assert.Equal(t, 2, f.Normalized().N)

	f = FrequencyParams{Kind: FreqEveryNth, N: 7}
	assert.Equal(t, 7, f.Normalized().N)

	f = FrequencyParams{Kind: FreqEveryFrame, N: 0}
	assert.Equal(t, 0, f.Normalized().N)
}
