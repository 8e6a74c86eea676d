package editor

// NormalMode selects how the global membrane normal is obtained.
type NormalMode int

// Membrane normal modes.
const (
	NormalX NormalMode = iota
	NormalY
	NormalZ
	NormalDynamic
	NormalFromFile
)

// String returns the label shown in the editor.
func (m NormalMode) String() string {
	switch m {
	case NormalX:
		return "x"
	case NormalY:
		return "y"
	case NormalZ:
		return "z"
	case NormalDynamic:
		return "dynamic"
	default:
		return "from file"
	}
}

// Static reports whether the mode is a fixed axis.
func (m NormalMode) Static() bool {
	return m == NormalX || m == NormalY || m == NormalZ
}

// StaticAxis returns the axis of a static mode.
func (m NormalMode) StaticAxis() Axis {
	switch m {
	case NormalX:
		return AxisX
	case NormalY:
		return AxisY
	default:
		return AxisZ
	}
}

// DynamicNormalParams configures the per-frame membrane normal
// computation.
type DynamicNormalParams struct {
	Heads  string
	Radius float64
}

func (p *DynamicNormalParams) valid() bool {
	return p.Heads != "" && p.Radius > 0
}
