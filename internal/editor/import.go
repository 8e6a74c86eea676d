package editor

import "github.com/vkotrlik/ordertui/internal/gorder"

// FromAnalysis maps an engine configuration document onto the editable
// configuration. The mapping is total for every document concept that
// has an editable surface; documents carrying inline membrane normals
// or inline leaflet assignments are rejected with ErrInlineNormals or
// ErrInlineLeaflets. Inactive parameter blocks keep their defaults.
func FromAnalysis(a *gorder.Analysis) (*Config, error) {
	if a.MembraneNormal.Kind() == gorder.NormalInline {
		return nil, ErrInlineNormals
	}
	if a.Leaflets != nil && a.Leaflets.Inline != nil {
		return nil, ErrInlineLeaflets
	}

	c := NewConfig()
	c.Structure = a.Structure
	if len(a.Trajectory) > 0 {
		c.Trajectory = append([]string(nil), a.Trajectory...)
	}
	c.Index = a.Index
	c.Bonds = a.Bonds

	importAnalysisType(c, &a.AnalysisType)
	c.Output = OutputFiles{YAML: a.OutputYAML, CSV: a.OutputCSV, Tab: a.OutputTab, XVG: a.OutputXVG}
	importMembraneNormal(c, a.MembraneNormal)
	importLeaflets(c, a.Leaflets)
	importOrderMap(c, a.Map)
	importGeometry(c, a.Geometry)

	if a.EstimateError != nil {
		c.EstimateError = EstimateErrorParams{
			Enabled:           true,
			Blocks:            a.EstimateError.Blocks(),
			OutputConvergence: a.EstimateError.OutputConvergence,
		}
	}

	c.Frames = FrameSelectionParams{Begin: a.Begin, End: a.EndTime(), Step: a.StepSize()}
	c.Other = OtherParams{
		Threads:    a.Threads(),
		MinSamples: a.MinimumSamples(),
		HandlePBC:  a.PBC(),
		Overwrite:  a.Overwrite,
		Silent:     a.Silent,
	}
	return c, nil
}

func importAnalysisType(c *Config, t *gorder.AnalysisType) {
	switch {
	case t.AAOrder != nil:
		c.Kind = KindAtomistic
		c.KindParams.AA = AAParams{HeavyAtoms: t.AAOrder.HeavyAtoms, Hydrogens: t.AAOrder.Hydrogens}
	case t.UAOrder != nil:
		c.Kind = KindUnitedAtom
		c.KindParams.UA = UAParams{
			Saturated:   t.UAOrder.Saturated,
			Unsaturated: t.UAOrder.Unsaturated,
			Ignore:      t.UAOrder.Ignore,
		}
	case t.CGOrder != nil:
		c.Kind = KindCoarseGrained
		c.KindParams.CG = CGParams{Beads: t.CGOrder.Beads}
	}
}

func importMembraneNormal(c *Config, m gorder.MembraneNormal) {
	switch m.Kind() {
	case gorder.NormalDynamic:
		c.NormalMode = NormalDynamic
		c.DynamicNormal = DynamicNormalParams{Heads: m.Dynamic.Heads, Radius: m.Dynamic.Radius}
	case gorder.NormalFromFile:
		c.NormalMode = NormalFromFile
		c.NormalsFile = m.FromFile
	default:
		c.NormalMode = normalModeForAxis(axisFromDoc(m.StaticAxis()))
	}
}

func importLeaflets(c *Config, l *gorder.LeafletClassification) {
	if l == nil {
		c.LeafletMethod = LeafletNone
		return
	}
	switch {
	case l.Global != nil:
		c.LeafletMethod = LeafletGlobal
		c.Leaflets.Global = GlobalLeafletParams{Membrane: l.Global.Membrane, Heads: l.Global.Heads}
		c.Leaflets.Frequency = importFrequency(l.Global.Frequency)
		c.Leaflets.NormalOverride = importOverride(l.Global.MembraneNormal)
	case l.Local != nil:
		c.LeafletMethod = LeafletLocal
		c.Leaflets.Local = LocalLeafletParams{Membrane: l.Local.Membrane, Heads: l.Local.Heads, Radius: l.Local.Radius}
		c.Leaflets.Frequency = importFrequency(l.Local.Frequency)
		c.Leaflets.NormalOverride = importOverride(l.Local.MembraneNormal)
	case l.Individual != nil:
		c.LeafletMethod = LeafletIndividual
		c.Leaflets.Individual = IndividualLeafletParams{Heads: l.Individual.Heads, Methyls: l.Individual.Methyls}
		c.Leaflets.Frequency = importFrequency(l.Individual.Frequency)
		c.Leaflets.NormalOverride = importOverride(l.Individual.MembraneNormal)
	case l.Clustering != nil:
		c.LeafletMethod = LeafletClustering
		c.Leaflets.Clustering = ClusteringLeafletParams{Heads: l.Clustering.Heads}
		c.Leaflets.Frequency = importFrequency(l.Clustering.Frequency)
	case l.FromFile != nil:
		c.LeafletMethod = LeafletFromFile
		c.Leaflets.FromFile = FromFileLeafletParams{File: l.FromFile.File}
		c.Leaflets.Frequency = importFrequency(l.FromFile.Frequency)
	case l.FromNdx != nil:
		c.LeafletMethod = LeafletFromNdx
		c.Leaflets.FromNdx = FromNdxLeafletParams{
			Ndx:          append([]string(nil), l.FromNdx.Ndx...),
			Heads:        l.FromNdx.Heads,
			UpperLeaflet: l.FromNdx.UpperLeaflet,
			LowerLeaflet: l.FromNdx.LowerLeaflet,
		}
		c.Leaflets.Frequency = importFrequency(l.FromNdx.Frequency)
	}
}

func importOrderMap(c *Config, m *gorder.OrderMap) {
	if m == nil {
		return
	}
	p := &c.OrderMaps
	p.Enabled = true
	p.OutputDirectory = m.OutputDirectory
	if m.Plane != "" {
		p.ExplicitPlane = true
		p.Plane = planeFromDoc(m.Plane)
	}
	p.BinSize = m.BinSize
	for i, dim := range m.Dim {
		if dim.Auto {
			p.Dim[i].Mode = DimAuto
		} else {
			p.Dim[i] = MapDimensionParams{Mode: DimManual, Manual: [2]float64(dim.Span)}
		}
	}
	if m.MinSamples > 0 {
		p.MinSamples = m.MinSamples
	}
}

func importGeometry(c *Config, g *gorder.Geometry) {
	if g == nil {
		return
	}
	switch {
	case g.Cuboid != nil:
		c.GeometryShape = ShapeCuboid
		c.Geometry.Cuboid = CuboidParams{
			Reference: importReference(g.Cuboid.Reference),
			XDim:      [2]float64(g.Cuboid.XDim),
			YDim:      [2]float64(g.Cuboid.YDim),
			ZDim:      [2]float64(g.Cuboid.ZDim),
		}
	case g.Cylinder != nil:
		c.GeometryShape = ShapeCylinder
		c.Geometry.Cylinder = CylinderParams{
			Reference:   importReference(g.Cylinder.Reference),
			Radius:      g.Cylinder.Radius,
			Span:        [2]float64(g.Cylinder.Span),
			Orientation: axisFromDoc(g.Cylinder.Orientation),
		}
	case g.Sphere != nil:
		c.GeometryShape = ShapeSphere
		c.Geometry.Sphere = SphereParams{
			Reference: importReference(g.Sphere.Reference),
			Radius:    g.Sphere.Radius,
		}
	}
}

func importReference(r gorder.GeomReference) GeomReferenceParams {
	switch r.Kind() {
	case gorder.RefPoint:
		return GeomReferenceParams{Kind: RefPoint, Point: *r.Point}
	case gorder.RefSelection:
		return GeomReferenceParams{Kind: RefSelection, Selection: r.Selection}
	default:
		return GeomReferenceParams{Kind: RefCenter}
	}
}

// importFrequency collapses both "once" and an explicit interval of
// one into the every-frame selector state. The distinction is lost
// across an import/export cycle.
func importFrequency(f gorder.Frequency) FrequencyParams {
	if !f.IsOnce() && f.Interval() > 1 {
		return FrequencyParams{Kind: FreqEveryNth, N: f.Interval()}
	}
	return FrequencyParams{Kind: FreqEveryFrame, N: 1}
}

func importOverride(a *gorder.Axis) *Axis {
	if a == nil {
		return nil
	}
	axis := axisFromDoc(*a)
	return &axis
}

func axisFromDoc(a gorder.Axis) Axis {
	switch a {
	case gorder.AxisX:
		return AxisX
	case gorder.AxisY:
		return AxisY
	default:
		return AxisZ
	}
}

func planeFromDoc(p gorder.Plane) Plane {
	switch p {
	case gorder.PlaneXZ:
		return PlaneXZ
	case gorder.PlaneYZ:
		return PlaneYZ
	default:
		return PlaneXY
	}
}

func normalModeForAxis(a Axis) NormalMode {
	switch a {
	case AxisX:
		return NormalX
	case AxisY:
		return NormalY
	default:
		return NormalZ
	}
}
