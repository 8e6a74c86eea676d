package gorder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAnalysis() *Analysis {
	return &Analysis{
		Structure:    "system.gro",
		Trajectory:   StringList{"traj.xtc"},
		AnalysisType: CGOrder("@membrane"),
		OutputYAML:   "order.yaml",
	}
}

func TestAnalysisValidate(t *testing.T) {
	require.NoError(t, validAnalysis().Validate())

	a := validAnalysis()
	a.Structure = ""
	assert.Error(t, a.Validate())

	a = validAnalysis()
	a.Trajectory = StringList{"traj.xtc", ""}
	assert.Error(t, a.Validate())

	a = validAnalysis()
	a.OutputYAML = ""
	assert.Error(t, a.Validate())

	a = validAnalysis()
	a.AnalysisType = AnalysisType{}
	assert.Error(t, a.Validate())

	a = validAnalysis()
	a.AnalysisType = AAOrder("name C", "")
	assert.Error(t, a.Validate())

	a = validAnalysis()
	a.Begin = 200
	end := 100.0
	a.End = &end
	assert.Error(t, a.Validate())
}

func TestAnalysisValidateLeafletNormalCoupling(t *testing.T) {
	a := validAnalysis()
	dynamic, err := NewDynamicNormal("name P", 2.0)
	require.NoError(t, err)
	a.MembraneNormal = DynamicMembraneNormal(dynamic)
	a.Leaflets = &LeafletClassification{
		Global: &LeafletGlobal{Membrane: "@membrane", Heads: "name P"},
	}
	assert.Error(t, a.Validate())

	axis := AxisZ
	a.Leaflets.Global.MembraneNormal = &axis
	assert.NoError(t, a.Validate())
}

func TestAnalysisValidateOrderMapPlaneCoupling(t *testing.T) {
	a := validAnalysis()
	a.MembraneNormal = NormalFromFilePath("normals.yaml")
	a.Map = &OrderMap{
		OutputDirectory: "maps",
		BinSize:         [2]float64{0.1, 0.1},
		Dim:             [2]MapDimension{AutoDimension(), AutoDimension()},
		MinSamples:      1,
	}
	assert.Error(t, a.Validate())

	a.Map.Plane = PlaneXY
	assert.NoError(t, a.Validate())
}

func TestDynamicNormalConstructor(t *testing.T) {
	_, err := NewDynamicNormal("", 2.0)
	assert.Error(t, err)
	_, err = NewDynamicNormal("name P", 0)
	assert.Error(t, err)
	_, err = NewDynamicNormal("name P", 2.0)
	assert.NoError(t, err)
}

func TestFrequencyConstructor(t *testing.T) {
	_, err := Every(0)
	assert.Error(t, err)

	freq, err := Every(1)
	require.NoError(t, err)
	assert.True(t, freq.Equal(EveryFrame()))
	assert.True(t, Frequency{}.Equal(EveryFrame()))
	assert.False(t, Once().Equal(EveryFrame()))
}

func TestGeometryConstructors(t *testing.T) {
	_, err := NewCuboid(CenterReference(), Span{1, 0}, FullSpan(), FullSpan())
	assert.Error(t, err)

	_, err = NewCylinder(CenterReference(), -1, FullSpan(), AxisZ)
	assert.Error(t, err)

	_, err = NewCylinder(CenterReference(), 5, Span{2, 1}, AxisZ)
	assert.Error(t, err)

	_, err = NewSphere(PointReference(1, 2, 3), 0)
	assert.Error(t, err)

	g, err := NewSphere(SelectionReference("name P"), 5)
	require.NoError(t, err)
	assert.Equal(t, RefSelection, g.Sphere.Reference.Kind())
}

func TestOrderMapConstructor(t *testing.T) {
	dims := [2]MapDimension{AutoDimension(), AutoDimension()}

	_, err := NewOrderMap("", "", [2]float64{0.1, 0.1}, dims, 1)
	assert.Error(t, err)

	_, err = NewOrderMap("maps", "", [2]float64{0, 0.1}, dims, 1)
	assert.Error(t, err)

	_, err = NewOrderMap("maps", "", [2]float64{0.1, 0.1}, dims, -1)
	assert.Error(t, err)

	_, err = NewOrderMap("maps", Plane("zz"), [2]float64{0.1, 0.1}, dims, 1)
	assert.Error(t, err)

	m, err := NewOrderMap("maps", "", [2]float64{0.1, 0.1}, dims, 1)
	require.NoError(t, err)
	assert.Equal(t, "maps", m.OutputDirectory)
}

func TestEstimateErrorConstructor(t *testing.T) {
	_, err := NewEstimateError(1, "")
	assert.Error(t, err)

	e, err := NewEstimateError(0, "")
	require.NoError(t, err)
	assert.Equal(t, DefaultNBlocks, e.Blocks())
}

func TestLeafletClassificationValidate(t *testing.T) {
	l := &LeafletClassification{}
	assert.Error(t, l.Validate())

	l = &LeafletClassification{
		Global: &LeafletGlobal{Membrane: "@membrane", Heads: "name P"},
		Local:  &LeafletLocal{Membrane: "@membrane", Heads: "name P", Radius: 2.5},
	}
	assert.Error(t, l.Validate())

	l = &LeafletClassification{Local: &LeafletLocal{Membrane: "@membrane", Heads: "name P"}}
	assert.Error(t, l.Validate())

	l = &LeafletClassification{FromNdx: &LeafletFromNdx{
		Ndx:          StringList{"leaflets.ndx", ""},
		Heads:        "name P",
		UpperLeaflet: "Upper",
		LowerLeaflet: "Lower",
	}}
	assert.Error(t, l.Validate())

	l = &LeafletClassification{FromNdx: &LeafletFromNdx{
		Ndx:          StringList{"leaflets.ndx"},
		Heads:        "name P",
		UpperLeaflet: "Upper",
		LowerLeaflet: "Lower",
	}}
	assert.NoError(t, l.Validate())
}
