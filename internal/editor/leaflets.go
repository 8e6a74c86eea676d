package editor

// LeafletMethod selects the leaflet classification method.
type LeafletMethod int

// Leaflet classification methods.
const (
	LeafletNone LeafletMethod = iota
	LeafletGlobal
	LeafletLocal
	LeafletIndividual
	LeafletClustering
	LeafletFromFile
	LeafletFromNdx
)

// String returns the label shown in the editor.
func (m LeafletMethod) String() string {
	switch m {
	case LeafletGlobal:
		return "global"
	case LeafletLocal:
		return "local"
	case LeafletIndividual:
		return "individual"
	case LeafletClustering:
		return "clustering"
	case LeafletFromFile:
		return "assignment file"
	case LeafletFromNdx:
		return "NDX files"
	default:
		return "none"
	}
}

// normalDependent reports whether the method needs a membrane normal.
func (m LeafletMethod) normalDependent() bool {
	return m == LeafletGlobal || m == LeafletLocal || m == LeafletIndividual
}

// GlobalLeafletParams configures the global classification method.
type GlobalLeafletParams struct {
	Membrane string
	Heads    string
}

func (p *GlobalLeafletParams) valid() bool {
	return p.Membrane != "" && p.Heads != ""
}

// LocalLeafletParams configures the local classification method.
type LocalLeafletParams struct {
	Membrane string
	Heads    string
	Radius   float64
}

func (p *LocalLeafletParams) valid() bool {
	return p.Membrane != "" && p.Heads != "" && p.Radius > 0
}

// IndividualLeafletParams configures the individual classification
// method.
type IndividualLeafletParams struct {
	Heads   string
	Methyls string
}

func (p *IndividualLeafletParams) valid() bool {
	return p.Heads != "" && p.Methyls != ""
}

// ClusteringLeafletParams configures the clustering classification
// method.
type ClusteringLeafletParams struct {
	Heads string
}

func (p *ClusteringLeafletParams) valid() bool {
	return p.Heads != ""
}

// FromFileLeafletParams configures classification from an assignment
// file.
type FromFileLeafletParams struct {
	File string
}

func (p *FromFileLeafletParams) valid() bool {
	return p.File != ""
}

// FromNdxLeafletParams configures classification from NDX group files.
type FromNdxLeafletParams struct {
	Ndx          []string
	Heads        string
	UpperLeaflet string
	LowerLeaflet string
}

func (p *FromNdxLeafletParams) valid() bool {
	if len(p.Ndx) == 0 || anyEmpty(p.Ndx) {
		return false
	}
	return p.Heads != "" && p.UpperLeaflet != "" && p.LowerLeaflet != ""
}

// LeafletParams holds the parameter blocks of all classification
// methods at once, plus the shared assignment frequency and the
// optional membrane normal override. A nil override means the global
// membrane normal is used.
type LeafletParams struct {
	Global         GlobalLeafletParams
	Local          LocalLeafletParams
	Individual     IndividualLeafletParams
	Clustering     ClusteringLeafletParams
	FromFile       FromFileLeafletParams
	FromNdx        FromNdxLeafletParams
	Frequency      FrequencyParams
	NormalOverride *Axis
}

func defaultLeafletParams() LeafletParams {
	return LeafletParams{
		Local:   LocalLeafletParams{Radius: 2.5},
		FromNdx: FromNdxLeafletParams{Ndx: []string{""}},
	}
}

// valid checks the active method's parameters and the coupling with
// the global membrane normal: normal-dependent methods cannot
// implicitly reuse a dynamic (per-frame) global normal, so they
// require an explicit override in that case.
func (p *LeafletParams) valid(method LeafletMethod, globalNormal NormalMode) bool {
	ok := true
	switch method {
	case LeafletNone:
		return true
	case LeafletGlobal:
		ok = p.Global.valid()
	case LeafletLocal:
		ok = p.Local.valid()
	case LeafletIndividual:
		ok = p.Individual.valid()
	case LeafletClustering:
		ok = p.Clustering.valid()
	case LeafletFromFile:
		ok = p.FromFile.valid()
	case LeafletFromNdx:
		ok = p.FromNdx.valid()
	}
	if method.normalDependent() && globalNormal == NormalDynamic && p.NormalOverride == nil {
		return false
	}
	return ok
}
