package gorder

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// NormalKind discriminates the membrane normal representations.
type NormalKind int

// Membrane normal kinds.
const (
	NormalStatic NormalKind = iota
	NormalDynamic
	NormalFromFile
	NormalInline
)

// DynamicNormal describes a membrane normal computed for each lipid
// molecule in each frame from the positions of surrounding lipid heads.
type DynamicNormal struct {
	Heads  string  `yaml:"heads"`
	Radius float64 `yaml:"radius"`
}

// NewDynamicNormal builds a dynamic membrane normal specification.
func NewDynamicNormal(heads string, radius float64) (*DynamicNormal, error) {
	d := &DynamicNormal{Heads: heads, Radius: radius}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Validate checks the dynamic normal parameters.
func (d *DynamicNormal) Validate() error {
	if d.Heads == "" {
		return fmt.Errorf("dynamic membrane normal requires a non-empty heads selection")
	}
	if d.Radius <= 0 {
		return fmt.Errorf("dynamic membrane normal requires a positive radius, got %v", d.Radius)
	}
	return nil
}

// InlineNormals is a dense per-frame map of membrane normals, keyed by
// frame number. It can appear in a document but has no editable
// representation in this front-end.
type InlineNormals map[int][][3]float64

// MembraneNormal is one of: a static axis, a dynamically computed
// normal, per-frame normals loaded from a file, or an inline per-frame
// map. Exactly one representation is active.
type MembraneNormal struct {
	Static   Axis
	Dynamic  *DynamicNormal
	FromFile string
	Inline   InlineNormals
}

// StaticNormal returns a membrane normal fixed to the given axis.
func StaticNormal(a Axis) MembraneNormal {
	return MembraneNormal{Static: a}
}

// DynamicMembraneNormal wraps a dynamic normal specification.
func DynamicMembraneNormal(d *DynamicNormal) MembraneNormal {
	return MembraneNormal{Dynamic: d}
}

// NormalFromFilePath returns a membrane normal read from a file.
func NormalFromFilePath(path string) MembraneNormal {
	return MembraneNormal{FromFile: path}
}

// Kind returns the active representation. The zero value is reported
// as static (the document default, axis z).
func (m MembraneNormal) Kind() NormalKind {
	switch {
	case m.Dynamic != nil:
		return NormalDynamic
	case m.FromFile != "":
		return NormalFromFile
	case m.Inline != nil:
		return NormalInline
	default:
		return NormalStatic
	}
}

// StaticAxis returns the static axis, defaulting to z for the zero
// value. Only meaningful when Kind is NormalStatic.
func (m MembraneNormal) StaticAxis() Axis {
	if m.Static == "" {
		return AxisZ
	}
	return m.Static
}

// IsZero makes an unset membrane normal omittable in the document.
func (m MembraneNormal) IsZero() bool {
	return m.Static == "" && m.Dynamic == nil && m.FromFile == "" && m.Inline == nil
}

// Validate checks the active representation.
func (m MembraneNormal) Validate() error {
	switch m.Kind() {
	case NormalDynamic:
		return m.Dynamic.Validate()
	case NormalStatic:
		if !m.StaticAxis().Valid() {
			return fmt.Errorf("invalid membrane normal axis %q", m.Static)
		}
	}
	return nil
}

// MarshalYAML encodes the membrane normal as an axis scalar or a
// single-key mapping (dynamic, from_file, inline).
func (m MembraneNormal) MarshalYAML() (interface{}, error) {
	switch m.Kind() {
	case NormalDynamic:
		return map[string]*DynamicNormal{"dynamic": m.Dynamic}, nil
	case NormalFromFile:
		return map[string]string{"from_file": m.FromFile}, nil
	case NormalInline:
		return map[string]InlineNormals{"inline": m.Inline}, nil
	default:
		return string(m.StaticAxis()), nil
	}
}

// UnmarshalYAML decodes an axis scalar or a single-key mapping.
func (m *MembraneNormal) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		axis, err := ParseAxis(value.Value)
		if err != nil {
			return fmt.Errorf("invalid membrane normal: %w", err)
		}
		*m = StaticNormal(axis)
		return nil
	case yaml.MappingNode:
		key, body, err := singleKey(value)
		if err != nil {
			return fmt.Errorf("invalid membrane normal: %w", err)
		}
		switch key {
		case "dynamic":
			var d DynamicNormal
			if err := body.Decode(&d); err != nil {
				return fmt.Errorf("invalid dynamic membrane normal: %w", err)
			}
			*m = MembraneNormal{Dynamic: &d}
		case "from_file":
			var path string
			if err := body.Decode(&path); err != nil {
				return fmt.Errorf("invalid membrane normal file: %w", err)
			}
			*m = MembraneNormal{FromFile: path}
		case "inline":
			var inline InlineNormals
			if err := body.Decode(&inline); err != nil {
				return fmt.Errorf("invalid inline membrane normals: %w", err)
			}
			*m = MembraneNormal{Inline: inline}
		default:
			return fmt.Errorf("invalid membrane normal key %q", key)
		}
		return nil
	default:
		return fmt.Errorf("invalid membrane normal: expected a scalar or a mapping, got %s", nodeKind(value))
	}
}

// singleKey extracts the only key/value pair of a mapping node.
func singleKey(value *yaml.Node) (string, *yaml.Node, error) {
	if len(value.Content) != 2 {
		return "", nil, fmt.Errorf("expected a mapping with exactly one key, got %d", len(value.Content)/2)
	}
	return value.Content[0].Value, value.Content[1], nil
}
