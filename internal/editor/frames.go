package editor

// FrameSelectionParams restricts which trajectory frames are analyzed.
// End may be +Inf to mean the end of the trajectory.
type FrameSelectionParams struct {
	Begin float64
	End   float64
	Step  int
}
