package gorder

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MapDimension is the extent of an ordermap along one of its two axes:
// either derived automatically from the simulation box, or a manual
// span. The document encodes it as the scalar "auto" or a 2-sequence.
type MapDimension struct {
	Auto bool
	Span Span
}

// AutoDimension returns the automatically derived extent.
func AutoDimension() MapDimension {
	return MapDimension{Auto: true}
}

// ManualDimension returns a fixed extent.
func ManualDimension(start, end float64) MapDimension {
	return MapDimension{Span: Span{start, end}}
}

// MarshalYAML encodes the dimension as "auto" or a span sequence.
func (d MapDimension) MarshalYAML() (interface{}, error) {
	if d.Auto {
		return "auto", nil
	}
	return []float64{d.Span[0], d.Span[1]}, nil
}

// UnmarshalYAML decodes "auto" or a span sequence.
func (d *MapDimension) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Value != "auto" {
			return fmt.Errorf("invalid ordermap dimension %q: expected \"auto\" or a span", value.Value)
		}
		*d = AutoDimension()
		return nil
	case yaml.SequenceNode:
		var span Span
		if err := value.Decode(&span); err != nil {
			return fmt.Errorf("invalid ordermap dimension span: %w", err)
		}
		*d = MapDimension{Span: span}
		return nil
	default:
		return fmt.Errorf("invalid ordermap dimension: expected a scalar or a sequence, got %s", nodeKind(value))
	}
}

// OrderMap configures construction of 2D spatially binned maps of the
// computed order parameters.
type OrderMap struct {
	OutputDirectory string          `yaml:"output_directory"`
	Plane           Plane           `yaml:"plane,omitempty"`
	BinSize         [2]float64      `yaml:"bin_size"`
	Dim             [2]MapDimension `yaml:"dim"`
	MinSamples      int             `yaml:"min_samples,omitempty"`
}

// NewOrderMap builds an ordermap specification. The plane may be empty
// when it can be derived from a static membrane normal.
func NewOrderMap(outputDirectory string, plane Plane, binSize [2]float64, dim [2]MapDimension, minSamples int) (*OrderMap, error) {
	m := &OrderMap{
		OutputDirectory: outputDirectory,
		Plane:           plane,
		BinSize:         binSize,
		Dim:             dim,
		MinSamples:      minSamples,
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate checks the ordermap parameters.
func (m *OrderMap) Validate() error {
	if m.OutputDirectory == "" {
		return fmt.Errorf("ordermap requires an output directory")
	}
	if m.Plane != "" && !m.Plane.Valid() {
		return fmt.Errorf("invalid ordermap plane %q", m.Plane)
	}
	for i, size := range m.BinSize {
		if size <= 0 {
			return fmt.Errorf("ordermap bin size %d must be positive, got %v", i+1, size)
		}
	}
	for i, dim := range m.Dim {
		if !dim.Auto && !dim.Span.Valid() {
			return fmt.Errorf("ordermap dimension %d span is inverted: [%v, %v]", i+1, dim.Span[0], dim.Span[1])
		}
	}
	if m.Samples() < 1 {
		return fmt.Errorf("ordermap requires at least one sample per bin, got %d", m.MinSamples)
	}
	return nil
}

// Samples returns the per-bin sample requirement, applying the engine
// default when the document omits it.
func (m *OrderMap) Samples() int {
	if m.MinSamples == 0 {
		return 1
	}
	return m.MinSamples
}
