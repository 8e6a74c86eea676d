package editor

// AnalysisKind selects the type of order parameters to calculate.
type AnalysisKind int

// Analysis kinds.
const (
	KindAtomistic AnalysisKind = iota
	KindCoarseGrained
	KindUnitedAtom
)

// String returns the label shown in the editor.
func (k AnalysisKind) String() string {
	switch k {
	case KindAtomistic:
		return "atomistic"
	case KindCoarseGrained:
		return "coarse-grained"
	default:
		return "united-atom"
	}
}

// AAParams holds selections for atomistic analysis.
type AAParams struct {
	HeavyAtoms string
	Hydrogens  string
}

// UAParams holds selections for united-atom analysis. All three are
// optional; empty selections are exported as unspecified.
type UAParams struct {
	Saturated   string
	Unsaturated string
	Ignore      string
}

// CGParams holds selections for coarse-grained analysis.
type CGParams struct {
	Beads string
}

// AnalysisKindParams holds the parameter blocks of all analysis kinds
// at once; only the block of the active kind is consulted.
type AnalysisKindParams struct {
	AA AAParams
	UA UAParams
	CG CGParams
}

func (p *AnalysisKindParams) valid(kind AnalysisKind) bool {
	switch kind {
	case KindAtomistic:
		return p.AA.HeavyAtoms != "" && p.AA.Hydrogens != ""
	case KindCoarseGrained:
		return p.CG.Beads != ""
	default:
		// United-atom analysis has no compulsory selections.
		return true
	}
}
