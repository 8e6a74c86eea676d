package editor

import (
	"errors"
	"fmt"
)

// Sentinel errors of the conversions between the editable
// configuration and the engine document. Callers match them with
// errors.Is; the wrapped cause carries the detail.
var (
	// Import errors. Dense per-frame maps have no editable surface,
	// so importing a document that carries one fails instead of
	// silently dropping data.
	ErrInlineNormals  = errors.New("membrane normals supplied as an inline map cannot be edited")
	ErrInlineLeaflets = errors.New("leaflet assignment supplied as an inline map cannot be edited")

	// Export errors, one per fallible document component.
	ErrMembraneNormal = errors.New("invalid membrane normal")
	ErrGeometry       = errors.New("invalid geometry")
	ErrOrderMap       = errors.New("invalid ordermap")
	ErrEstimateError  = errors.New("invalid error estimation")
	ErrAnalysisParams = errors.New("invalid analysis parameters")
)

func wrapErr(sentinel, err error) error {
	return fmt.Errorf("%w: %w", sentinel, err)
}
