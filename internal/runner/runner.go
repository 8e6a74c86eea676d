// Package runner serializes analysis executions: at most one job runs
// at a time and its outcome is kept until a caller collects it.
package runner

import (
	"errors"
	"sync"
	"time"
)

// ErrBusy is returned by Start while a job is still running.
var ErrBusy = errors.New("an analysis is already running")

// Result is the outcome of a finished job.
type Result struct {
	Err        error
	Duration   time.Duration
	FinishedAt time.Time
}

// Runner executes one job at a time in a background goroutine. The
// zero value is ready to use.
type Runner struct {
	mu      sync.Mutex
	running bool
	result  *Result
}

// Start launches the job in a goroutine. It fails with ErrBusy when a
// previous job has not finished yet. Starting a new job discards an
// uncollected result of the previous one.
func (r *Runner) Start(job func() error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running {
		return ErrBusy
	}
	r.running = true
	r.result = nil

	go func() {
		started := time.Now()
		err := job()
		finished := time.Now()

		r.mu.Lock()
		r.running = false
		r.result = &Result{Err: err, Duration: finished.Sub(started), FinishedAt: finished}
		r.mu.Unlock()
	}()
	return nil
}

// Running reports whether a job is currently executing.
func (r *Runner) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}

// Take returns the result of the last finished job and clears it.
// The second return is false while a job is running or when no result
// is pending.
func (r *Runner) Take() (*Result, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.result == nil {
		return nil, false
	}
	result := r.result
	r.result = nil
	return result, true
}
