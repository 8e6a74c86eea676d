package gorder

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// StringList decodes either a single scalar or a sequence of strings.
// Order is significant (trajectory concatenation, ndx lookup order).
type StringList []string

// UnmarshalYAML accepts a scalar as a one-element list.
func (l *StringList) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		*l = StringList{s}
		return nil
	}
	var items []string
	if err := value.Decode(&items); err != nil {
		return err
	}
	*l = items
	return nil
}

// AnalysisType selects the kind of order parameters to calculate.
// Exactly one variant is set.
type AnalysisType struct {
	AAOrder *AAOrderParams `yaml:"aa_order,omitempty"`
	UAOrder *UAOrderParams `yaml:"ua_order,omitempty"`
	CGOrder *CGOrderParams `yaml:"cg_order,omitempty"`
}

// AAOrderParams configures atomistic order parameter calculation.
type AAOrderParams struct {
	HeavyAtoms string `yaml:"heavy_atoms"`
	Hydrogens  string `yaml:"hydrogens"`
}

// UAOrderParams configures united-atom order parameter calculation.
// All selections are optional; an omitted key means unspecified.
type UAOrderParams struct {
	Saturated   string `yaml:"saturated,omitempty"`
	Unsaturated string `yaml:"unsaturated,omitempty"`
	Ignore      string `yaml:"ignore,omitempty"`
}

// CGOrderParams configures coarse-grained order parameter calculation.
type CGOrderParams struct {
	Beads string `yaml:"beads"`
}

// AAOrder returns an atomistic analysis type.
func AAOrder(heavyAtoms, hydrogens string) AnalysisType {
	return AnalysisType{AAOrder: &AAOrderParams{HeavyAtoms: heavyAtoms, Hydrogens: hydrogens}}
}

// UAOrder returns a united-atom analysis type. Empty selections are
// left unspecified in the document.
func UAOrder(saturated, unsaturated, ignore string) AnalysisType {
	return AnalysisType{UAOrder: &UAOrderParams{Saturated: saturated, Unsaturated: unsaturated, Ignore: ignore}}
}

// CGOrder returns a coarse-grained analysis type.
func CGOrder(beads string) AnalysisType {
	return AnalysisType{CGOrder: &CGOrderParams{Beads: beads}}
}

// Validate checks that exactly one variant is set and its required
// selections are present.
func (t *AnalysisType) Validate() error {
	set := 0
	for _, present := range []bool{t.AAOrder != nil, t.UAOrder != nil, t.CGOrder != nil} {
		if present {
			set++
		}
	}
	if set != 1 {
		return fmt.Errorf("analysis type must specify exactly one kind, got %d", set)
	}
	switch {
	case t.AAOrder != nil:
		if t.AAOrder.HeavyAtoms == "" || t.AAOrder.Hydrogens == "" {
			return fmt.Errorf("aa_order requires both heavy_atoms and hydrogens selections")
		}
	case t.CGOrder != nil:
		if t.CGOrder.Beads == "" {
			return fmt.Errorf("cg_order requires a beads selection")
		}
	}
	return nil
}

// Analysis is the root of the engine configuration document.
type Analysis struct {
	Structure  string     `yaml:"structure"`
	Trajectory StringList `yaml:"trajectory"`
	Index      string     `yaml:"index,omitempty"`
	Bonds      string     `yaml:"bonds,omitempty"`

	AnalysisType AnalysisType `yaml:"analysis_type"`

	OutputYAML string `yaml:"output_yaml"`
	OutputCSV  string `yaml:"output_csv,omitempty"`
	OutputTab  string `yaml:"output_tab,omitempty"`
	OutputXVG  string `yaml:"output_xvg,omitempty"`

	MembraneNormal MembraneNormal `yaml:"membrane_normal,omitempty"`

	Begin float64  `yaml:"begin,omitempty"`
	End   *float64 `yaml:"end,omitempty"`
	Step  int      `yaml:"step,omitempty"`

	Leaflets      *LeafletClassification `yaml:"leaflets,omitempty"`
	Map           *OrderMap              `yaml:"map,omitempty"`
	EstimateError *EstimateError         `yaml:"estimate_error,omitempty"`
	Geometry      *Geometry              `yaml:"geometry,omitempty"`

	HandlePBC  *bool `yaml:"handle_pbc,omitempty"`
	NThreads   int   `yaml:"n_threads,omitempty"`
	MinSamples int   `yaml:"min_samples,omitempty"`
	Overwrite  bool  `yaml:"overwrite,omitempty"`
	Silent     bool  `yaml:"silent,omitempty"`
}

// EndTime returns the end of the analyzed time range; an omitted end
// means the whole trajectory.
func (a *Analysis) EndTime() float64 {
	if a.End == nil {
		return math.Inf(1)
	}
	return *a.End
}

// StepSize returns the frame step, applying the default of 1.
func (a *Analysis) StepSize() int {
	if a.Step == 0 {
		return 1
	}
	return a.Step
}

// Threads returns the worker count, applying the default of 1.
func (a *Analysis) Threads() int {
	if a.NThreads == 0 {
		return 1
	}
	return a.NThreads
}

// MinimumSamples returns the per-bond sample requirement, applying the
// default of 1.
func (a *Analysis) MinimumSamples() int {
	if a.MinSamples == 0 {
		return 1
	}
	return a.MinSamples
}

// PBC reports whether periodic boundary conditions are handled; the
// document default is true.
func (a *Analysis) PBC() bool {
	if a.HandlePBC == nil {
		return true
	}
	return *a.HandlePBC
}

// Parse decodes a configuration document.
func Parse(data []byte) (*Analysis, error) {
	var a Analysis
	if err := yaml.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("failed to decode analysis config: %w", err)
	}
	return &a, nil
}

// Load reads and decodes a configuration document from a file.
func Load(path string) (*Analysis, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read analysis config: %w", err)
	}
	return Parse(data)
}

// Bytes encodes the document.
func (a *Analysis) Bytes() ([]byte, error) {
	data, err := yaml.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("failed to encode analysis config: %w", err)
	}
	return data, nil
}

// Save encodes the document and writes it to a file.
func (a *Analysis) Save(path string) error {
	data, err := a.Bytes()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write analysis config: %w", err)
	}
	return nil
}

// Validate re-runs every constructor-level check against the assembled
// document. This is the single authority on what the engine accepts;
// callers building a document field by field defer all checks to it.
func (a *Analysis) Validate() error {
	if a.Structure == "" {
		return fmt.Errorf("structure file is required")
	}
	if len(a.Trajectory) == 0 {
		return fmt.Errorf("at least one trajectory file is required")
	}
	for i, path := range a.Trajectory {
		if path == "" {
			return fmt.Errorf("trajectory file %d is empty", i+1)
		}
	}
	if a.OutputYAML == "" {
		return fmt.Errorf("output yaml file is required")
	}
	if err := a.AnalysisType.Validate(); err != nil {
		return err
	}
	if err := a.MembraneNormal.Validate(); err != nil {
		return err
	}
	if a.Begin < 0 {
		return fmt.Errorf("begin time must not be negative, got %v", a.Begin)
	}
	if a.EndTime() < a.Begin {
		return fmt.Errorf("end time %v precedes begin time %v", a.EndTime(), a.Begin)
	}
	if a.Step < 0 {
		return fmt.Errorf("step must be positive, got %d", a.Step)
	}
	if a.NThreads < 0 {
		return fmt.Errorf("thread count must be positive, got %d", a.NThreads)
	}
	if a.MinSamples < 0 {
		return fmt.Errorf("minimum samples must be positive, got %d", a.MinSamples)
	}
	if a.Leaflets != nil {
		if err := a.Leaflets.Validate(); err != nil {
			return err
		}
		// A per-molecule dynamic normal cannot be reused for leaflet
		// assignment; normal-dependent methods need their own axis then.
		if a.MembraneNormal.Kind() == NormalDynamic && a.Leaflets.NormalDependent() && a.Leaflets.NormalOverride() == nil {
			return fmt.Errorf("leaflet classification requires an explicit membrane normal when the global membrane normal is dynamic")
		}
	}
	if a.Map != nil {
		if err := a.Map.Validate(); err != nil {
			return err
		}
		if a.Map.Plane == "" && a.MembraneNormal.Kind() != NormalStatic {
			return fmt.Errorf("ordermap requires an explicit plane when the membrane normal is not a static axis")
		}
	}
	if a.EstimateError != nil {
		if err := a.EstimateError.Validate(); err != nil {
			return err
		}
	}
	if a.Geometry != nil {
		if err := a.Geometry.Validate(); err != nil {
			return err
		}
	}
	return nil
}
