package editor

// EstimateErrorParams configures error estimation via block averaging.
type EstimateErrorParams struct {
	Enabled           bool
	Blocks            int
	OutputConvergence string
}

func (p *EstimateErrorParams) valid() bool {
	return !p.Enabled || p.Blocks >= 2
}
