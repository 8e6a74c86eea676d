package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/vkotrlik/ordertui/internal/editor"
)

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldChoice
	fieldToggle
)

// field is one editable line of the form. Text fields carry a commit
// callback, choice and toggle fields a cycle callback.
type field struct {
	label  string
	kind   fieldKind
	value  func() string
	commit func(string) error
	cycle  func(delta int)
}

type section struct {
	name   string
	ok     func() bool
	fields []field
}

// buildSections lays out the form for the current selector states. It
// is rebuilt after every edit, so only the fields of active variants
// are visible.
func buildSections(cfg *editor.Config, docPath *string) []section {
	always := func() bool { return true }

	sections := []section{
		{
			name: "document",
			ok:   always,
			fields: []field{
				stringField("file", docPath),
			},
		},
		{
			name: "input files",
			ok: func() bool {
				return cfg.Structure != "" && len(cfg.Trajectory) > 0 && !hasEmpty(cfg.Trajectory)
			},
			fields: []field{
				stringField("structure", &cfg.Structure),
				listField("trajectory", &cfg.Trajectory),
				stringField("index (optional)", &cfg.Index),
				stringField("bonds (optional)", &cfg.Bonds),
			},
		},
		{
			name:   "analysis type",
			ok:     cfg.KindValid,
			fields: analysisTypeFields(cfg),
		},
		{
			name: "output files",
			ok:   func() bool { return cfg.Output.YAML != "" },
			fields: []field{
				stringField("yaml", &cfg.Output.YAML),
				stringField("csv (optional)", &cfg.Output.CSV),
				stringField("table (optional)", &cfg.Output.Tab),
				stringField("xvg pattern (optional)", &cfg.Output.XVG),
			},
		},
		{
			name:   "membrane normal",
			ok:     cfg.MembraneNormalValid,
			fields: membraneNormalFields(cfg),
		},
		{
			name:   "leaflet assignment",
			ok:     cfg.LeafletsValid,
			fields: leafletFields(cfg),
		},
		{
			name:   "region selection",
			ok:     cfg.GeometryValid,
			fields: geometryFields(cfg),
		},
		{
			name:   "ordermaps",
			ok:     cfg.OrderMapsValid,
			fields: orderMapFields(cfg),
		},
		{
			name:   "error estimation",
			ok:     cfg.EstimateErrorValid,
			fields: estimateErrorFields(cfg),
		},
		{
			name: "frames",
			ok:   always,
			fields: []field{
				floatField("begin [ps]", &cfg.Frames.Begin),
				floatField("end [ps]", &cfg.Frames.End),
				intField("step", &cfg.Frames.Step),
			},
		},
		{
			name: "other options",
			ok:   always,
			fields: []field{
				intField("threads", &cfg.Other.Threads),
				intField("min samples", &cfg.Other.MinSamples),
				toggleField("handle pbc", &cfg.Other.HandlePBC),
				toggleField("overwrite", &cfg.Other.Overwrite),
				toggleField("silent engine", &cfg.Other.Silent),
			},
		},
	}
	return sections
}

func analysisTypeFields(cfg *editor.Config) []field {
	fields := []field{enumField("type", &cfg.Kind, 3)}
	switch cfg.Kind {
	case editor.KindAtomistic:
		fields = append(fields,
			stringField("heavy atoms", &cfg.KindParams.AA.HeavyAtoms),
			stringField("hydrogens", &cfg.KindParams.AA.Hydrogens),
		)
	case editor.KindCoarseGrained:
		fields = append(fields, stringField("beads", &cfg.KindParams.CG.Beads))
	default:
		fields = append(fields,
			stringField("saturated (optional)", &cfg.KindParams.UA.Saturated),
			stringField("unsaturated (optional)", &cfg.KindParams.UA.Unsaturated),
			stringField("ignore (optional)", &cfg.KindParams.UA.Ignore),
		)
	}
	return fields
}

func membraneNormalFields(cfg *editor.Config) []field {
	fields := []field{enumField("mode", &cfg.NormalMode, 5)}
	switch cfg.NormalMode {
	case editor.NormalDynamic:
		fields = append(fields,
			stringField("heads", &cfg.DynamicNormal.Heads),
			floatField("radius [nm]", &cfg.DynamicNormal.Radius),
		)
	case editor.NormalFromFile:
		fields = append(fields, stringField("normals file", &cfg.NormalsFile))
	}
	return fields
}

func leafletFields(cfg *editor.Config) []field {
	fields := []field{enumField("method", &cfg.LeafletMethod, 7)}
	p := &cfg.Leaflets
	switch cfg.LeafletMethod {
	case editor.LeafletNone:
		return fields
	case editor.LeafletGlobal:
		fields = append(fields,
			stringField("membrane", &p.Global.Membrane),
			stringField("heads", &p.Global.Heads),
		)
	case editor.LeafletLocal:
		fields = append(fields,
			stringField("membrane", &p.Local.Membrane),
			stringField("heads", &p.Local.Heads),
			floatField("radius [nm]", &p.Local.Radius),
		)
	case editor.LeafletIndividual:
		fields = append(fields,
			stringField("heads", &p.Individual.Heads),
			stringField("methyls", &p.Individual.Methyls),
		)
	case editor.LeafletClustering:
		fields = append(fields, stringField("heads", &p.Clustering.Heads))
	case editor.LeafletFromFile:
		fields = append(fields, stringField("assignment file", &p.FromFile.File))
	default:
		fields = append(fields,
			listField("ndx files", &p.FromNdx.Ndx),
			stringField("heads", &p.FromNdx.Heads),
			stringField("upper leaflet group", &p.FromNdx.UpperLeaflet),
			stringField("lower leaflet group", &p.FromNdx.LowerLeaflet),
		)
	}
	fields = append(fields, frequencyFields(&p.Frequency)...)
	switch cfg.LeafletMethod {
	case editor.LeafletGlobal, editor.LeafletLocal, editor.LeafletIndividual:
		fields = append(fields, overrideField("normal override", &p.NormalOverride))
	}
	return fields
}

func geometryFields(cfg *editor.Config) []field {
	fields := []field{enumField("shape", &cfg.GeometryShape, 4)}
	g := &cfg.Geometry
	switch cfg.GeometryShape {
	case editor.ShapeCuboid:
		fields = append(fields, referenceFields(&g.Cuboid.Reference)...)
		fields = append(fields,
			spanField("x span [nm]", &g.Cuboid.XDim),
			spanField("y span [nm]", &g.Cuboid.YDim),
			spanField("z span [nm]", &g.Cuboid.ZDim),
		)
	case editor.ShapeCylinder:
		fields = append(fields, referenceFields(&g.Cylinder.Reference)...)
		fields = append(fields,
			floatField("radius [nm]", &g.Cylinder.Radius),
			spanField("span [nm]", &g.Cylinder.Span),
			enumField("orientation", &g.Cylinder.Orientation, 3),
		)
	case editor.ShapeSphere:
		fields = append(fields, referenceFields(&g.Sphere.Reference)...)
		fields = append(fields, floatField("radius [nm]", &g.Sphere.Radius))
	}
	return fields
}

func referenceFields(r *editor.GeomReferenceParams) []field {
	fields := []field{enumField("reference", &r.Kind, 3)}
	switch r.Kind {
	case editor.RefPoint:
		fields = append(fields, pointField("point [nm]", &r.Point))
	case editor.RefSelection:
		fields = append(fields, stringField("selection", &r.Selection))
	}
	return fields
}

func orderMapFields(cfg *editor.Config) []field {
	p := &cfg.OrderMaps
	fields := []field{toggleField("enabled", &p.Enabled)}
	if !p.Enabled {
		return fields
	}
	fields = append(fields,
		stringField("output directory", &p.OutputDirectory),
		toggleField("explicit plane", &p.ExplicitPlane),
	)
	if p.ExplicitPlane {
		fields = append(fields, enumField("plane", &p.Plane, 3))
	}
	fields = append(fields,
		floatField("bin size x", &p.BinSize[0]),
		floatField("bin size y", &p.BinSize[1]),
	)
	for i := range p.Dim {
		dim := &p.Dim[i]
		fields = append(fields, dimModeField(fmt.Sprintf("dimension %d", i+1), &dim.Mode))
		if dim.Mode == editor.DimManual {
			fields = append(fields, spanField(fmt.Sprintf("dimension %d span", i+1), &dim.Manual))
		}
	}
	fields = append(fields, intField("min samples per bin", &p.MinSamples))
	return fields
}

func estimateErrorFields(cfg *editor.Config) []field {
	p := &cfg.EstimateError
	fields := []field{toggleField("enabled", &p.Enabled)}
	if p.Enabled {
		fields = append(fields,
			intField("blocks", &p.Blocks),
			stringField("convergence file (optional)", &p.OutputConvergence),
		)
	}
	return fields
}

func frequencyFields(f *editor.FrequencyParams) []field {
	fields := []field{enumField("frequency", &f.Kind, 3)}
	if f.Kind == editor.FreqEveryNth {
		fields = append(fields, intField("interval", &f.N))
	}
	return fields
}

type enumValue interface {
	~int
	fmt.Stringer
}

func enumField[T enumValue](label string, p *T, count int) field {
	return field{
		label: label,
		kind:  fieldChoice,
		value: func() string { return (*p).String() },
		cycle: func(delta int) {
			n := (int(*p) + delta) % count
			if n < 0 {
				n += count
			}
			*p = T(n)
		},
	}
}

func dimModeField(label string, p *editor.DimMode) field {
	return field{
		label: label,
		kind:  fieldChoice,
		value: func() string {
			if *p == editor.DimAuto {
				return "auto"
			}
			return "manual"
		},
		cycle: func(int) {
			if *p == editor.DimAuto {
				*p = editor.DimManual
			} else {
				*p = editor.DimAuto
			}
		},
	}
}

// overrideField cycles through "use the global normal" plus the three
// axes.
func overrideField(label string, p **editor.Axis) field {
	return field{
		label: label,
		kind:  fieldChoice,
		value: func() string {
			if *p == nil {
				return "global normal"
			}
			return (*p).String()
		},
		cycle: func(delta int) {
			state := 0
			if *p != nil {
				state = int(**p) + 1
			}
			state = (state + delta) % 4
			if state < 0 {
				state += 4
			}
			if state == 0 {
				*p = nil
				return
			}
			axis := editor.Axis(state - 1)
			*p = &axis
		},
	}
}

func toggleField(label string, p *bool) field {
	return field{
		label: label,
		kind:  fieldToggle,
		value: func() string {
			if *p {
				return "yes"
			}
			return "no"
		},
		cycle: func(int) { *p = !*p },
	}
}

func stringField(label string, p *string) field {
	return field{
		label: label,
		kind:  fieldText,
		value: func() string { return *p },
		commit: func(s string) error {
			*p = strings.TrimSpace(s)
			return nil
		},
	}
}

// listField edits a path list as one comma-separated value. An empty
// input keeps a single empty slot so the section stays visibly
// incomplete rather than losing the row.
func listField(label string, p *[]string) field {
	return field{
		label: label,
		kind:  fieldText,
		value: func() string { return strings.Join(*p, ", ") },
		commit: func(s string) error {
			var items []string
			for _, part := range strings.Split(s, ",") {
				part = strings.TrimSpace(part)
				if part != "" {
					items = append(items, part)
				}
			}
			if len(items) == 0 {
				items = []string{""}
			}
			*p = items
			return nil
		},
	}
}

func intField(label string, p *int) field {
	return field{
		label: label,
		kind:  fieldText,
		value: func() string { return strconv.Itoa(*p) },
		commit: func(s string) error {
			n, err := strconv.Atoi(strings.TrimSpace(s))
			if err != nil {
				return fmt.Errorf("%s must be an integer", label)
			}
			*p = n
			return nil
		},
	}
}

func floatField(label string, p *float64) field {
	return field{
		label: label,
		kind:  fieldText,
		value: func() string { return formatFloat(*p) },
		commit: func(s string) error {
			v, err := parseFloat(s)
			if err != nil {
				return fmt.Errorf("%s must be a number", label)
			}
			*p = v
			return nil
		},
	}
}

func spanField(label string, p *[2]float64) field {
	return field{
		label: label,
		kind:  fieldText,
		value: func() string {
			return formatFloat(p[0]) + ", " + formatFloat(p[1])
		},
		commit: func(s string) error {
			parts := strings.Split(s, ",")
			if len(parts) != 2 {
				return fmt.Errorf("%s must be two numbers separated by a comma", label)
			}
			var span [2]float64
			for i, part := range parts {
				v, err := parseFloat(part)
				if err != nil {
					return fmt.Errorf("%s must be two numbers separated by a comma", label)
				}
				span[i] = v
			}
			*p = span
			return nil
		},
	}
}

func pointField(label string, p *[3]float64) field {
	return field{
		label: label,
		kind:  fieldText,
		value: func() string {
			return formatFloat(p[0]) + ", " + formatFloat(p[1]) + ", " + formatFloat(p[2])
		},
		commit: func(s string) error {
			parts := strings.Split(s, ",")
			if len(parts) != 3 {
				return fmt.Errorf("%s must be three numbers separated by commas", label)
			}
			var point [3]float64
			for i, part := range parts {
				v, err := parseFloat(part)
				if err != nil {
					return fmt.Errorf("%s must be three numbers separated by commas", label)
				}
				point[i] = v
			}
			*p = point
			return nil
		},
	}
}

func formatFloat(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	default:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
}

func parseFloat(s string) (float64, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch s {
	case "inf", "+inf":
		return math.Inf(1), nil
	case "-inf":
		return math.Inf(-1), nil
	}
	return strconv.ParseFloat(s, 64)
}

func hasEmpty(items []string) bool {
	for _, item := range items {
		if item == "" {
			return true
		}
	}
	return false
}
