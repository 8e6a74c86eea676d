package editor

// OtherParams collects the remaining analysis switches.
type OtherParams struct {
	Threads    int
	MinSamples int
	HandlePBC  bool
	Overwrite  bool
	Silent     bool
}
