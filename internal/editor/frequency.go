package editor

// FrequencyKind is the raw three-way frequency selector.
type FrequencyKind int

// Frequency selector states. The zero value is every frame, the
// engine default.
const (
	FreqEveryFrame FrequencyKind = iota
	FreqOnce
	FreqEveryNth
)

// String returns the label shown in the editor.
func (k FrequencyKind) String() string {
	switch k {
	case FreqOnce:
		return "once"
	case FreqEveryNth:
		return "every Nth frame"
	default:
		return "every frame"
	}
}

// FrequencyParams is the editable frequency state: the raw selector
// plus the interval used by the every-Nth case.
type FrequencyParams struct {
	Kind FrequencyKind
	N    int
}

// Normalized coerces the interval to at least 2 when the every-Nth
// case is selected, so the three selector states map onto exactly the
// three engine cases (once, every frame, every Nth with N>=2).
func (f FrequencyParams) Normalized() FrequencyParams {
	if f.Kind == FreqEveryNth && f.N < 2 {
		f.N = 2
	}
	return f
}
