package gorder

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// DefaultBinary is the engine executable looked up on PATH when no
// explicit path is configured.
const DefaultBinary = "gorder"

// Engine invokes the external gorder binary on a configuration
// document. The front-end interprets only success or failure; results
// are written by the engine to the paths named in the document.
type Engine struct {
	Binary string
}

// NewEngine returns an engine handle for the given binary path; an
// empty path falls back to DefaultBinary.
func NewEngine(binary string) *Engine {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Engine{Binary: binary}
}

// Run validates the document, writes it to a temporary file, and runs
// the engine on it. The document is not mutated.
func (e *Engine) Run(ctx context.Context, a *Analysis) error {
	if err := a.Validate(); err != nil {
		return fmt.Errorf("refusing to run an invalid analysis config: %w", err)
	}

	dir, err := os.MkdirTemp("", "ordertui-run-*")
	if err != nil {
		return fmt.Errorf("failed to create run directory: %w", err)
	}
	defer func() {
		if rerr := os.RemoveAll(dir); rerr != nil {
			// Best-effort cleanup of the run directory.
			_ = rerr
		}
	}()

	configPath := filepath.Join(dir, "analysis.yaml")
	if err := a.Save(configPath); err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, e.Binary, configPath)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := lastLines(stderr.String(), 20); msg != "" {
			return fmt.Errorf("engine run failed: %w\n%s", err, msg)
		}
		return fmt.Errorf("engine run failed: %w", err)
	}
	return nil
}

// lastLines returns up to n trailing non-empty lines of engine output.
func lastLines(output string, n int) string {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return ""
	}
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
