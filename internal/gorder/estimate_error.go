package gorder

import "fmt"

// EstimateError configures block-averaging error estimation.
type EstimateError struct {
	NBlocks           int    `yaml:"n_blocks,omitempty"`
	OutputConvergence string `yaml:"output_convergence,omitempty"`
}

// NewEstimateError builds an error estimation specification. A zero
// block count selects the engine default; the convergence path is
// optional.
func NewEstimateError(nBlocks int, outputConvergence string) (*EstimateError, error) {
	if nBlocks == 0 {
		nBlocks = DefaultNBlocks
	}
	e := &EstimateError{NBlocks: nBlocks, OutputConvergence: outputConvergence}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// DefaultNBlocks is the engine default for block averaging.
const DefaultNBlocks = 5

// Validate checks the error estimation parameters.
func (e *EstimateError) Validate() error {
	if e.Blocks() < 2 {
		return fmt.Errorf("error estimation requires at least 2 blocks, got %d", e.NBlocks)
	}
	return nil
}

// Blocks returns the block count, applying the engine default when the
// document omits it.
func (e *EstimateError) Blocks() int {
	if e.NBlocks == 0 {
		return DefaultNBlocks
	}
	return e.NBlocks
}
