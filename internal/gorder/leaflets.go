package gorder

import "fmt"

// LeafletClassification selects the method for assigning lipids to
// membrane leaflets. Exactly one variant is set; the document encodes
// it as a mapping with a single key.
type LeafletClassification struct {
	Global     *LeafletGlobal     `yaml:"global,omitempty"`
	Local      *LeafletLocal      `yaml:"local,omitempty"`
	Individual *LeafletIndividual `yaml:"individual,omitempty"`
	Clustering *LeafletClustering `yaml:"clustering,omitempty"`
	FromFile   *LeafletFromFile   `yaml:"from_file,omitempty"`
	FromNdx    *LeafletFromNdx    `yaml:"from_ndx,omitempty"`
	Inline     *LeafletInline     `yaml:"inline,omitempty"`
}

// LeafletGlobal assigns lipids based on the global membrane center.
type LeafletGlobal struct {
	Membrane       string    `yaml:"membrane"`
	Heads          string    `yaml:"heads"`
	Frequency      Frequency `yaml:"frequency,omitempty"`
	MembraneNormal *Axis     `yaml:"membrane_normal,omitempty"`
}

// LeafletLocal assigns lipids based on the local membrane center
// computed inside a cylinder of the given radius.
type LeafletLocal struct {
	Membrane       string    `yaml:"membrane"`
	Heads          string    `yaml:"heads"`
	Radius         float64   `yaml:"radius"`
	Frequency      Frequency `yaml:"frequency,omitempty"`
	MembraneNormal *Axis     `yaml:"membrane_normal,omitempty"`
}

// LeafletIndividual assigns each lipid from the orientation of its own
// head-to-methyl vector.
type LeafletIndividual struct {
	Heads          string    `yaml:"heads"`
	Methyls        string    `yaml:"methyls"`
	Frequency      Frequency `yaml:"frequency,omitempty"`
	MembraneNormal *Axis     `yaml:"membrane_normal,omitempty"`
}

// LeafletClustering assigns lipids by spectral clustering of lipid
// heads; it does not depend on the membrane normal.
type LeafletClustering struct {
	Heads     string    `yaml:"heads"`
	Frequency Frequency `yaml:"frequency,omitempty"`
}

// LeafletFromFile reads a prepared leaflet assignment from a file.
type LeafletFromFile struct {
	File      string    `yaml:"file"`
	Frequency Frequency `yaml:"frequency,omitempty"`
}

// LeafletFromNdx reads leaflet assignment from NDX group files.
type LeafletFromNdx struct {
	Ndx          StringList `yaml:"ndx"`
	Heads        string     `yaml:"heads"`
	UpperLeaflet string     `yaml:"upper_leaflet"`
	LowerLeaflet string     `yaml:"lower_leaflet"`
	Frequency    Frequency  `yaml:"frequency,omitempty"`
}

// LeafletInline is a dense per-molecule assignment map (molecule name
// to per-frame leaflet labels). It can appear in a document but has no
// editable representation in this front-end.
type LeafletInline map[string][]string

// Validate checks that exactly one variant is set and that the active
// variant carries its required parameters.
func (l *LeafletClassification) Validate() error {
	set := 0
	for _, present := range []bool{
		l.Global != nil, l.Local != nil, l.Individual != nil,
		l.Clustering != nil, l.FromFile != nil, l.FromNdx != nil, l.Inline != nil,
	} {
		if present {
			set++
		}
	}
	if set != 1 {
		return fmt.Errorf("leaflet classification must specify exactly one method, got %d", set)
	}

	switch {
	case l.Global != nil:
		return requireSelections("global leaflet classification", map[string]string{
			"membrane": l.Global.Membrane,
			"heads":    l.Global.Heads,
		})
	case l.Local != nil:
		if l.Local.Radius <= 0 {
			return fmt.Errorf("local leaflet classification requires a positive radius, got %v", l.Local.Radius)
		}
		return requireSelections("local leaflet classification", map[string]string{
			"membrane": l.Local.Membrane,
			"heads":    l.Local.Heads,
		})
	case l.Individual != nil:
		return requireSelections("individual leaflet classification", map[string]string{
			"heads":   l.Individual.Heads,
			"methyls": l.Individual.Methyls,
		})
	case l.Clustering != nil:
		return requireSelections("clustering leaflet classification", map[string]string{
			"heads": l.Clustering.Heads,
		})
	case l.FromFile != nil:
		if l.FromFile.File == "" {
			return fmt.Errorf("from-file leaflet classification requires a file path")
		}
	case l.FromNdx != nil:
		if len(l.FromNdx.Ndx) == 0 {
			return fmt.Errorf("from-ndx leaflet classification requires at least one ndx file")
		}
		for i, path := range l.FromNdx.Ndx {
			if path == "" {
				return fmt.Errorf("from-ndx leaflet classification: ndx file %d is empty", i+1)
			}
		}
		return requireSelections("from-ndx leaflet classification", map[string]string{
			"heads":         l.FromNdx.Heads,
			"upper_leaflet": l.FromNdx.UpperLeaflet,
			"lower_leaflet": l.FromNdx.LowerLeaflet,
		})
	}
	return nil
}

// NormalDependent reports whether the active method needs a membrane
// normal to assign lipids.
func (l *LeafletClassification) NormalDependent() bool {
	return l.Global != nil || l.Local != nil || l.Individual != nil
}

// NormalOverride returns the per-classification membrane normal axis of
// the active method, or nil when the method has none set (or supports
// none).
func (l *LeafletClassification) NormalOverride() *Axis {
	switch {
	case l.Global != nil:
		return l.Global.MembraneNormal
	case l.Local != nil:
		return l.Local.MembraneNormal
	case l.Individual != nil:
		return l.Individual.MembraneNormal
	default:
		return nil
	}
}

func requireSelections(context string, fields map[string]string) error {
	for name, value := range fields {
		if value == "" {
			return fmt.Errorf("%s requires a non-empty %s", context, name)
		}
	}
	return nil
}
