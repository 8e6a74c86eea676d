package gorder

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Frequency controls how often a per-frame quantity is reevaluated:
// once (evaluated on the first analyzed frame and reused), or every Nth
// frame. The zero value means every frame.
type Frequency struct {
	once bool
	n    int
}

// Once returns a frequency that evaluates a single time.
func Once() Frequency {
	return Frequency{once: true}
}

// EveryFrame returns a frequency that evaluates on every frame.
func EveryFrame() Frequency {
	return Frequency{n: 1}
}

// Every returns a frequency that evaluates every nth frame.
func Every(n int) (Frequency, error) {
	if n < 1 {
		return Frequency{}, fmt.Errorf("frequency interval must be at least 1, got %d", n)
	}
	return Frequency{n: n}, nil
}

// IsOnce reports whether the frequency is the single-evaluation kind.
func (f Frequency) IsOnce() bool {
	return f.once
}

// Interval returns the evaluation interval in frames. It returns 1 for
// the zero value and for the once kind (which still needs one frame).
func (f Frequency) Interval() int {
	if f.once || f.n < 1 {
		return 1
	}
	return f.n
}

// Equal compares two frequencies semantically: the zero value equals
// an explicit every-frame frequency.
func (f Frequency) Equal(o Frequency) bool {
	if f.once != o.once {
		return false
	}
	return f.once || f.Interval() == o.Interval()
}

// IsZero makes the default frequency omittable in the document.
func (f Frequency) IsZero() bool {
	return !f.once && f.n == 0
}

// MarshalYAML encodes the frequency as the scalar "once" or an integer
// interval.
func (f Frequency) MarshalYAML() (interface{}, error) {
	if f.once {
		return "once", nil
	}
	return f.Interval(), nil
}

// UnmarshalYAML decodes the scalar "once" or a positive integer.
func (f *Frequency) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("invalid frequency: expected a scalar, got %s", nodeKind(value))
	}
	if value.Value == "once" {
		*f = Once()
		return nil
	}
	var n int
	if err := value.Decode(&n); err != nil {
		return fmt.Errorf("invalid frequency %q: expected \"once\" or a positive integer", value.Value)
	}
	freq, err := Every(n)
	if err != nil {
		return fmt.Errorf("invalid frequency: %w", err)
	}
	*f = freq
	return nil
}

func nodeKind(value *yaml.Node) string {
	switch value.Kind {
	case yaml.ScalarNode:
		return "a scalar"
	case yaml.SequenceNode:
		return "a sequence"
	case yaml.MappingNode:
		return "a mapping"
	default:
		return "an unsupported node"
	}
}
