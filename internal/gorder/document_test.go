package gorder

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func yamlUnmarshal(data string, out any) error {
	return yaml.Unmarshal([]byte(data), out)
}

const sampleDocument = `structure: system.gro
trajectory: traj.xtc
analysis_type:
  aa_order:
    heavy_atoms: "@membrane and element name carbon"
    hydrogens: "@membrane and element name hydrogen"
output_yaml: order.yaml
membrane_normal:
  dynamic:
    heads: "name P"
    radius: 2.0
leaflets:
  global:
    membrane: "@membrane"
    heads: "name P"
    frequency: once
    membrane_normal: z
map:
  output_directory: maps
  plane: xy
  bin_size: [0.1, 0.1]
  dim: [auto, [0, 10]]
estimate_error:
  n_blocks: 10
geometry:
  cylinder:
    reference: center
    radius: 5
    span: [-.inf, .inf]
    orientation: z
begin: 100
end: 200
step: 2
n_threads: 4
`

func TestParseSampleDocument(t *testing.T) {
	a, err := Parse([]byte(sampleDocument))
	require.NoError(t, err)

	assert.Equal(t, "system.gro", a.Structure)
	assert.Equal(t, StringList{"traj.xtc"}, a.Trajectory)
	require.NotNil(t, a.AnalysisType.AAOrder)
	assert.Equal(t, "@membrane and element name carbon", a.AnalysisType.AAOrder.HeavyAtoms)

	assert.Equal(t, NormalDynamic, a.MembraneNormal.Kind())
	require.NotNil(t, a.MembraneNormal.Dynamic)
	assert.Equal(t, "name P", a.MembraneNormal.Dynamic.Heads)
	assert.Equal(t, 2.0, a.MembraneNormal.Dynamic.Radius)

	require.NotNil(t, a.Leaflets)
	require.NotNil(t, a.Leaflets.Global)
	assert.True(t, a.Leaflets.Global.Frequency.IsOnce())
	require.NotNil(t, a.Leaflets.Global.MembraneNormal)
	assert.Equal(t, AxisZ, *a.Leaflets.Global.MembraneNormal)

	require.NotNil(t, a.Map)
	assert.Equal(t, PlaneXY, a.Map.Plane)
	assert.True(t, a.Map.Dim[0].Auto)
	assert.Equal(t, Span{0, 10}, a.Map.Dim[1].Span)

	require.NotNil(t, a.Geometry)
	require.NotNil(t, a.Geometry.Cylinder)
	assert.Equal(t, RefCenter, a.Geometry.Cylinder.Reference.Kind())
	assert.True(t, math.IsInf(a.Geometry.Cylinder.Span[0], -1))
	assert.True(t, math.IsInf(a.Geometry.Cylinder.Span[1], 1))

	assert.Equal(t, 100.0, a.Begin)
	assert.Equal(t, 200.0, a.EndTime())
	assert.Equal(t, 2, a.StepSize())
	assert.Equal(t, 4, a.Threads())
	assert.True(t, a.PBC())

	require.NoError(t, a.Validate())
}

func TestDocumentRoundTrip(t *testing.T) {
	a, err := Parse([]byte(sampleDocument))
	require.NoError(t, err)

	data, err := a.Bytes()
	require.NoError(t, err)

	b, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestMembraneNormalForms(t *testing.T) {
	for _, tc := range []struct {
		name string
		yaml string
		kind NormalKind
	}{
		{name: "static axis", yaml: `membrane_normal: x`, kind: NormalStatic},
		{name: "from file", yaml: "membrane_normal:\n  from_file: normals.yaml", kind: NormalFromFile},
		{name: "inline", yaml: "membrane_normal:\n  inline:\n    0: [[0.0, 0.0, 1.0]]", kind: NormalInline},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var a Analysis
			require.NoError(t, yamlUnmarshal(tc.yaml, &a))
			assert.Equal(t, tc.kind, a.MembraneNormal.Kind())
		})
	}
}

func TestMembraneNormalRejectsBadNodes(t *testing.T) {
	var a Analysis
	assert.Error(t, yamlUnmarshal(`membrane_normal: [1, 2]`, &a))
	assert.Error(t, yamlUnmarshal(`membrane_normal: w`, &a))
	assert.Error(t, yamlUnmarshal("membrane_normal:\n  unknown: 1", &a))
}

func TestGeomReferenceForms(t *testing.T) {
	var g struct {
		Reference GeomReference `yaml:"reference"`
	}
	require.NoError(t, yamlUnmarshal(`reference: center`, &g))
	assert.Equal(t, RefCenter, g.Reference.Kind())

	require.NoError(t, yamlUnmarshal(`reference: [1, 2, 3]`, &g))
	assert.Equal(t, RefPoint, g.Reference.Kind())
	assert.Equal(t, [3]float64{1, 2, 3}, *g.Reference.Point)

	require.NoError(t, yamlUnmarshal(`reference: "name P"`, &g))
	assert.Equal(t, RefSelection, g.Reference.Kind())
	assert.Equal(t, "name P", g.Reference.Selection)
}

func TestFrequencyScalar(t *testing.T) {
	var f struct {
		Frequency Frequency `yaml:"frequency"`
	}
	require.NoError(t, yamlUnmarshal(`frequency: once`, &f))
	assert.True(t, f.Frequency.IsOnce())

	require.NoError(t, yamlUnmarshal(`frequency: 5`, &f))
	assert.False(t, f.Frequency.IsOnce())
	assert.Equal(t, 5, f.Frequency.Interval())

	assert.Error(t, yamlUnmarshal(`frequency: 0`, &f))
	assert.Error(t, yamlUnmarshal(`frequency: sometimes`, &f))
}

func TestStringListScalar(t *testing.T) {
	var l struct {
		Trajectory StringList `yaml:"trajectory"`
	}
	require.NoError(t, yamlUnmarshal(`trajectory: a.xtc`, &l))
	assert.Equal(t, StringList{"a.xtc"}, l.Trajectory)

	require.NoError(t, yamlUnmarshal(`trajectory: [a.xtc, b.xtc]`, &l))
	assert.Equal(t, StringList{"a.xtc", "b.xtc"}, l.Trajectory)
}

func TestMapDimensionForms(t *testing.T) {
	var m struct {
		Dim [2]MapDimension `yaml:"dim"`
	}
	require.NoError(t, yamlUnmarshal(`dim: [auto, [1, 2]]`, &m))
	assert.True(t, m.Dim[0].Auto)
	assert.Equal(t, Span{1, 2}, m.Dim[1].Span)

	assert.Error(t, yamlUnmarshal(`dim: [manual, [1, 2]]`, &m))
}
