package editor

import (
	"fmt"
	"math"

	"github.com/vkotrlik/ordertui/internal/gorder"
)

// ToAnalysis assembles an engine configuration document from the
// editable configuration. Only the active variant of each selector is
// consulted. The conversion short-circuits on the first failing
// component and never returns a partially built document; every error
// wraps one of the exported sentinels.
func ToAnalysis(c *Config) (*gorder.Analysis, error) {
	a := &gorder.Analysis{
		Structure:  c.Structure,
		Trajectory: append(gorder.StringList(nil), c.Trajectory...),
		Index:      c.Index,
		Bonds:      c.Bonds,
		OutputYAML: c.Output.YAML,
		OutputCSV:  c.Output.CSV,
		OutputTab:  c.Output.Tab,
		OutputXVG:  c.Output.XVG,
	}
	a.AnalysisType = exportAnalysisType(c)

	normal, err := exportMembraneNormal(c)
	if err != nil {
		return nil, err
	}
	a.MembraneNormal = normal

	leaflets, err := exportLeaflets(c)
	if err != nil {
		return nil, err
	}
	a.Leaflets = leaflets

	ordermap, err := exportOrderMap(c)
	if err != nil {
		return nil, err
	}
	a.Map = ordermap

	if c.EstimateError.Enabled {
		estimate, err := gorder.NewEstimateError(c.EstimateError.Blocks, c.EstimateError.OutputConvergence)
		if err != nil {
			return nil, wrapErr(ErrEstimateError, err)
		}
		a.EstimateError = estimate
	}

	geometry, err := exportGeometry(c)
	if err != nil {
		return nil, err
	}
	a.Geometry = geometry

	a.Begin = c.Frames.Begin
	if !math.IsInf(c.Frames.End, 1) {
		end := c.Frames.End
		a.End = &end
	}
	if c.Frames.Step != 1 {
		a.Step = c.Frames.Step
	}
	if c.Other.Threads != 1 {
		a.NThreads = c.Other.Threads
	}
	if c.Other.MinSamples != 1 {
		a.MinSamples = c.Other.MinSamples
	}
	if !c.Other.HandlePBC {
		pbc := false
		a.HandlePBC = &pbc
	}
	a.Overwrite = c.Other.Overwrite
	a.Silent = c.Other.Silent

	if err := a.Validate(); err != nil {
		return nil, wrapErr(ErrAnalysisParams, err)
	}
	return a, nil
}

func exportAnalysisType(c *Config) gorder.AnalysisType {
	switch c.Kind {
	case KindCoarseGrained:
		return gorder.CGOrder(c.KindParams.CG.Beads)
	case KindUnitedAtom:
		ua := c.KindParams.UA
		return gorder.UAOrder(ua.Saturated, ua.Unsaturated, ua.Ignore)
	default:
		aa := c.KindParams.AA
		return gorder.AAOrder(aa.HeavyAtoms, aa.Hydrogens)
	}
}

func exportMembraneNormal(c *Config) (gorder.MembraneNormal, error) {
	switch c.NormalMode {
	case NormalDynamic:
		dynamic, err := gorder.NewDynamicNormal(c.DynamicNormal.Heads, c.DynamicNormal.Radius)
		if err != nil {
			return gorder.MembraneNormal{}, wrapErr(ErrMembraneNormal, err)
		}
		return gorder.DynamicMembraneNormal(dynamic), nil
	case NormalFromFile:
		if c.NormalsFile == "" {
			return gorder.MembraneNormal{}, wrapErr(ErrMembraneNormal, fmt.Errorf("membrane normal file path is empty"))
		}
		return gorder.NormalFromFilePath(c.NormalsFile), nil
	default:
		return gorder.StaticNormal(c.NormalMode.StaticAxis().doc()), nil
	}
}

func exportLeaflets(c *Config) (*gorder.LeafletClassification, error) {
	if c.LeafletMethod == LeafletNone {
		return nil, nil
	}
	freq, err := exportFrequency(c.Leaflets.Frequency)
	if err != nil {
		return nil, wrapErr(ErrAnalysisParams, err)
	}
	override := exportOverride(c.Leaflets.NormalOverride)

	l := &gorder.LeafletClassification{}
	switch c.LeafletMethod {
	case LeafletGlobal:
		p := c.Leaflets.Global
		l.Global = &gorder.LeafletGlobal{Membrane: p.Membrane, Heads: p.Heads, Frequency: freq, MembraneNormal: override}
	case LeafletLocal:
		p := c.Leaflets.Local
		l.Local = &gorder.LeafletLocal{Membrane: p.Membrane, Heads: p.Heads, Radius: p.Radius, Frequency: freq, MembraneNormal: override}
	case LeafletIndividual:
		p := c.Leaflets.Individual
		l.Individual = &gorder.LeafletIndividual{Heads: p.Heads, Methyls: p.Methyls, Frequency: freq, MembraneNormal: override}
	case LeafletClustering:
		l.Clustering = &gorder.LeafletClustering{Heads: c.Leaflets.Clustering.Heads, Frequency: freq}
	case LeafletFromFile:
		l.FromFile = &gorder.LeafletFromFile{File: c.Leaflets.FromFile.File, Frequency: freq}
	default:
		p := c.Leaflets.FromNdx
		l.FromNdx = &gorder.LeafletFromNdx{
			Ndx:          append(gorder.StringList(nil), p.Ndx...),
			Heads:        p.Heads,
			UpperLeaflet: p.UpperLeaflet,
			LowerLeaflet: p.LowerLeaflet,
			Frequency:    freq,
		}
	}
	return l, nil
}

func exportOrderMap(c *Config) (*gorder.OrderMap, error) {
	p := &c.OrderMaps
	if !p.Enabled {
		return nil, nil
	}
	var plane gorder.Plane
	switch {
	case p.ExplicitPlane:
		plane = p.Plane.doc()
	case c.NormalMode.Static():
		plane = planeForAxis(c.NormalMode.StaticAxis())
	default:
		return nil, wrapErr(ErrOrderMap, fmt.Errorf("ordermap plane cannot be derived from a non-static membrane normal"))
	}
	var dim [2]gorder.MapDimension
	for i, d := range p.Dim {
		if d.Mode == DimAuto {
			dim[i] = gorder.AutoDimension()
		} else {
			dim[i] = gorder.ManualDimension(d.Manual[0], d.Manual[1])
		}
	}
	ordermap, err := gorder.NewOrderMap(p.OutputDirectory, plane, p.BinSize, dim, p.MinSamples)
	if err != nil {
		return nil, wrapErr(ErrOrderMap, err)
	}
	return ordermap, nil
}

func exportGeometry(c *Config) (*gorder.Geometry, error) {
	var (
		g   *gorder.Geometry
		err error
	)
	switch c.GeometryShape {
	case ShapeNone:
		return nil, nil
	case ShapeCuboid:
		p := c.Geometry.Cuboid
		g, err = gorder.NewCuboid(exportReference(p.Reference),
			gorder.Span(p.XDim), gorder.Span(p.YDim), gorder.Span(p.ZDim))
	case ShapeCylinder:
		p := c.Geometry.Cylinder
		g, err = gorder.NewCylinder(exportReference(p.Reference), p.Radius,
			gorder.Span(p.Span), p.Orientation.doc())
	default:
		p := c.Geometry.Sphere
		g, err = gorder.NewSphere(exportReference(p.Reference), p.Radius)
	}
	if err != nil {
		return nil, wrapErr(ErrGeometry, err)
	}
	return g, nil
}

func exportReference(r GeomReferenceParams) gorder.GeomReference {
	switch r.Kind {
	case RefCenter:
		return gorder.CenterReference()
	case RefSelection:
		return gorder.SelectionReference(r.Selection)
	default:
		return gorder.PointReference(r.Point[0], r.Point[1], r.Point[2])
	}
}

// exportFrequency maps the three selector states onto the document
// frequency. The every-frame state exports as the zero frequency, so
// the key is omitted and the engine default applies.
func exportFrequency(f FrequencyParams) (gorder.Frequency, error) {
	f = f.Normalized()
	switch f.Kind {
	case FreqOnce:
		return gorder.Once(), nil
	case FreqEveryNth:
		return gorder.Every(f.N)
	default:
		return gorder.Frequency{}, nil
	}
}

func exportOverride(a *Axis) *gorder.Axis {
	if a == nil {
		return nil
	}
	axis := a.doc()
	return &axis
}

func (a Axis) doc() gorder.Axis {
	switch a {
	case AxisX:
		return gorder.AxisX
	case AxisY:
		return gorder.AxisY
	default:
		return gorder.AxisZ
	}
}

func (p Plane) doc() gorder.Plane {
	switch p {
	case PlaneXZ:
		return gorder.PlaneXZ
	case PlaneYZ:
		return gorder.PlaneYZ
	default:
		return gorder.PlaneXY
	}
}

// planeForAxis returns the plane perpendicular to a static membrane
// normal axis.
func planeForAxis(a Axis) gorder.Plane {
	switch a {
	case AxisX:
		return gorder.PlaneYZ
	case AxisY:
		return gorder.PlaneXZ
	default:
		return gorder.PlaneXY
	}
}
