package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkotrlik/ordertui/internal/gorder"
)

func TestExportScenario(t *testing.T) {
	c := completeConfig()
	c.LeafletMethod = LeafletGlobal
	c.Leaflets.Global = GlobalLeafletParams{Membrane: "@membrane", Heads: "name P"}
	require.True(t, c.Valid())

	a, err := ToAnalysis(c)
	require.NoError(t, err)

	assert.Equal(t, "system.gro", a.Structure)
	assert.Equal(t, gorder.StringList{"traj.xtc"}, a.Trajectory)
	require.NotNil(t, a.AnalysisType.AAOrder)
	assert.Equal(t, "@membrane and element name carbon", a.AnalysisType.AAOrder.HeavyAtoms)
	assert.Equal(t, "order.yaml", a.OutputYAML)

	assert.Equal(t, gorder.NormalStatic, a.MembraneNormal.Kind())
	assert.Equal(t, gorder.AxisZ, a.MembraneNormal.StaticAxis())

	require.NotNil(t, a.Leaflets)
	require.NotNil(t, a.Leaflets.Global)
	assert.Equal(t, "@membrane", a.Leaflets.Global.Membrane)
	assert.True(t, a.Leaflets.Global.Frequency.IsZero())
	assert.Nil(t, a.Leaflets.Global.MembraneNormal)

	// Defaults stay out of the document.
	assert.Nil(t, a.Map)
	assert.Nil(t, a.Geometry)
	assert.Nil(t, a.EstimateError)
	assert.Nil(t, a.End)
	assert.Nil(t, a.HandlePBC)
	assert.Zero(t, a.Step)
	assert.Zero(t, a.NThreads)

	require.NoError(t, a.Validate())
}

func TestExportDerivesOrderMapPlane(t *testing.T) {
	for _, tc := range []struct {
		mode  NormalMode
		plane gorder.Plane
	}{
		{mode: NormalZ, plane: gorder.PlaneXY},
		{mode: NormalY, plane: gorder.PlaneXZ},
		{mode: NormalX, plane: gorder.PlaneYZ},
	} {
		c := completeConfig()
		c.NormalMode = tc.mode
		c.OrderMaps.Enabled = true
		c.OrderMaps.OutputDirectory = "maps"

		a, err := ToAnalysis(c)
		require.NoError(t, err)
		require.NotNil(t, a.Map)
		assert.Equal(t, tc.plane, a.Map.Plane)
	}
}

func TestExportOrderMapNeedsPlaneForDynamicNormal(t *testing.T) {
	c := completeConfig()
	c.NormalMode = NormalDynamic
	c.DynamicNormal.Heads = "name P"
	c.OrderMaps.Enabled = true
	c.OrderMaps.OutputDirectory = "maps"

	a, err := ToAnalysis(c)
	assert.Nil(t, a)
	assert.ErrorIs(t, err, ErrOrderMap)

	c.OrderMaps.ExplicitPlane = true
	c.OrderMaps.Plane = PlaneXZ
	c.LeafletMethod = LeafletNone

	a, err = ToAnalysis(c)
	require.NoError(t, err)
	assert.Equal(t, gorder.PlaneXZ, a.Map.Plane)
}

func TestExportSentinels(t *testing.T) {
	c := completeConfig()
	c.NormalMode = NormalDynamic
	c.DynamicNormal = DynamicNormalParams{Heads: "name P", Radius: 0}
	_, err := ToAnalysis(c)
	assert.ErrorIs(t, err, ErrMembraneNormal)

	c = completeConfig()
	c.GeometryShape = ShapeSphere
	c.Geometry.Sphere.Radius = 0
	_, err = ToAnalysis(c)
	assert.ErrorIs(t, err, ErrGeometry)

	c = completeConfig()
	c.OrderMaps.Enabled = true
	c.OrderMaps.OutputDirectory = "maps"
	c.OrderMaps.BinSize[1] = 0
	_, err = ToAnalysis(c)
	assert.ErrorIs(t, err, ErrOrderMap)

	c = completeConfig()
	c.EstimateError.Enabled = true
	c.EstimateError.Blocks = 1
	_, err = ToAnalysis(c)
	assert.ErrorIs(t, err, ErrEstimateError)

	c = completeConfig()
	c.KindParams.AA.Hydrogens = ""
	_, err = ToAnalysis(c)
	assert.ErrorIs(t, err, ErrAnalysisParams)

	c = completeConfig()
	c.LeafletMethod = LeafletFromNdx
	_, err = ToAnalysis(c)
	assert.ErrorIs(t, err, ErrAnalysisParams)
}

func TestImportRejectsInlineMaps(t *testing.T) {
	a := &gorder.Analysis{
		Structure:    "system.gro",
		Trajectory:   gorder.StringList{"traj.xtc"},
		AnalysisType: gorder.CGOrder("@membrane"),
		OutputYAML:   "order.yaml",
		MembraneNormal: gorder.MembraneNormal{
			Inline: gorder.InlineNormals{0: {{0, 0, 1}}},
		},
	}
	_, err := FromAnalysis(a)
	assert.ErrorIs(t, err, ErrInlineNormals)

	a.MembraneNormal = gorder.MembraneNormal{}
	a.Leaflets = &gorder.LeafletClassification{
		Inline: &gorder.LeafletInline{"POPC": {"upper"}},
	}
	_, err = FromAnalysis(a)
	assert.ErrorIs(t, err, ErrInlineLeaflets)
}

func TestImportFrequencyCollapse(t *testing.T) {
	once := gorder.Once()
	everyOne, err := gorder.Every(1)
	require.NoError(t, err)
	everyFive, err := gorder.Every(5)
	require.NoError(t, err)

	base := func(freq gorder.Frequency) *gorder.Analysis {
		return &gorder.Analysis{
			Structure:    "system.gro",
			Trajectory:   gorder.StringList{"traj.xtc"},
			AnalysisType: gorder.CGOrder("@membrane"),
			OutputYAML:   "order.yaml",
			Leaflets: &gorder.LeafletClassification{
				Clustering: &gorder.LeafletClustering{Heads: "name P", Frequency: freq},
			},
		}
	}

	// Single evaluation and an interval of one share the every-frame
	// editor state.
	for _, freq := range []gorder.Frequency{once, everyOne} {
		c, err := FromAnalysis(base(freq))
		require.NoError(t, err)
		assert.Equal(t, FreqEveryFrame, c.Leaflets.Frequency.Kind)

		exported, err := ToAnalysis(c)
		require.NoError(t, err)
		assert.True(t, exported.Leaflets.Clustering.Frequency.IsZero())
	}

	c, err := FromAnalysis(base(everyFive))
	require.NoError(t, err)
	assert.Equal(t, FrequencyParams{Kind: FreqEveryNth, N: 5}, c.Leaflets.Frequency)
}

func TestRoundTrip(t *testing.T) {
	c := completeConfig()
	c.Index = "index.ndx"
	c.Trajectory = []string{"part1.xtc", "part2.xtc"}
	c.Output.CSV = "order.csv"
	c.NormalMode = NormalDynamic
	c.DynamicNormal = DynamicNormalParams{Heads: "name P", Radius: 1.5}
	c.LeafletMethod = LeafletLocal
	c.Leaflets.Local = LocalLeafletParams{Membrane: "@membrane", Heads: "name P", Radius: 3.0}
	c.Leaflets.Frequency = FrequencyParams{Kind: FreqEveryNth, N: 10}
	axis := AxisX
	c.Leaflets.NormalOverride = &axis
	c.GeometryShape = ShapeCylinder
	c.Geometry.Cylinder.Reference = GeomReferenceParams{Kind: RefPoint, Point: [3]float64{1, 2, 3}}
	c.OrderMaps.Enabled = true
	c.OrderMaps.OutputDirectory = "maps"
	c.OrderMaps.ExplicitPlane = true
	c.OrderMaps.Plane = PlaneXZ
	c.OrderMaps.Dim[1] = MapDimensionParams{Mode: DimManual, Manual: [2]float64{0, 12}}
	c.EstimateError = EstimateErrorParams{Enabled: true, Blocks: 8, OutputConvergence: "convergence.xvg"}
	c.Frames = FrameSelectionParams{Begin: 100, End: 900, Step: 4}
	c.Other = OtherParams{Threads: 8, MinSamples: 50, HandlePBC: false, Overwrite: true, Silent: true}
	require.True(t, c.Valid())

	a, err := ToAnalysis(c)
	require.NoError(t, err)

	back, err := FromAnalysis(a)
	require.NoError(t, err)
	assert.Equal(t, c, back)
}

func TestRoundTripThroughDocumentBytes(t *testing.T) {
	c := completeConfig()
	c.LeafletMethod = LeafletGlobal
	c.Leaflets.Global = GlobalLeafletParams{Membrane: "@membrane", Heads: "name P"}
	// Import always reports the every-frame state with an interval of
	// one, so start from that state for a field-exact comparison.
	c.Leaflets.Frequency = FrequencyParams{Kind: FreqEveryFrame, N: 1}

	a, err := ToAnalysis(c)
	require.NoError(t, err)
	data, err := a.Bytes()
	require.NoError(t, err)

	parsed, err := gorder.Parse(data)
	require.NoError(t, err)
	back, err := FromAnalysis(parsed)
	require.NoError(t, err)
	assert.Equal(t, c, back)
}
