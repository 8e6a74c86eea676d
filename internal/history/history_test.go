package history

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})
	return store
}

func sampleRun(finished time.Time) Run {
	return Run{
		StartedAt:  finished.Add(-3 * time.Second),
		FinishedAt: finished,
		Structure:  "system.gro",
		Trajectory: []string{"part1.xtc", "part2.xtc"},
		Kind:       "atomistic",
		OutputYAML: "order.yaml",
		Document:   "structure: system.gro\n",
		Success:    true,
		DurationMs: 3000,
	}
}

func TestInsertAndGetRun(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	want := sampleRun(time.Now().UTC().Truncate(time.Millisecond))
	id, err := store.InsertRun(ctx, want)
	if err != nil {
		t.Fatalf("failed to insert run: %v", err)
	}

	got, err := store.GetRun(ctx, id)
	if err != nil {
		t.Fatalf("failed to get run: %v", err)
	}
	if !got.StartedAt.Equal(want.StartedAt) || !got.FinishedAt.Equal(want.FinishedAt) {
		t.Fatalf("timestamps do not match: got %v/%v", got.StartedAt, got.FinishedAt)
	}
	if got.Structure != want.Structure || got.Kind != want.Kind || got.OutputYAML != want.OutputYAML {
		t.Fatalf("run fields do not match: %+v", got)
	}
	if len(got.Trajectory) != 2 || got.Trajectory[0] != "part1.xtc" || got.Trajectory[1] != "part2.xtc" {
		t.Fatalf("trajectory does not match: %v", got.Trajectory)
	}
	if !got.Success || got.Error != "" {
		t.Fatalf("expected successful run, got %+v", got)
	}
	if got.Document != want.Document {
		t.Fatalf("document does not match: %q", got.Document)
	}
}

func TestListRunsOrderAndLimit(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	base := time.Now().UTC()
	for i := 0; i < 3; i++ {
		run := sampleRun(base.Add(time.Duration(i) * time.Minute))
		if i == 1 {
			run.Success = false
			run.Error = "engine run failed"
		}
		if _, err := store.InsertRun(ctx, run); err != nil {
			t.Fatalf("failed to insert run %d: %v", i, err)
		}
	}

	runs, err := store.ListRuns(ctx, 0)
	if err != nil {
		t.Fatalf("failed to list runs: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(runs))
	}
	for i := 1; i < len(runs); i++ {
		if runs[i].FinishedAt.After(runs[i-1].FinishedAt) {
			t.Fatalf("runs are not sorted newest first")
		}
	}

	limited, err := store.ListRuns(ctx, 2)
	if err != nil {
		t.Fatalf("failed to list limited runs: %v", err)
	}
	if len(limited) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(limited))
	}
	if !limited[0].FinishedAt.Equal(runs[0].FinishedAt) {
		t.Fatalf("limit changed ordering")
	}
}

func TestGetRunMissing(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.GetRun(context.Background(), 42); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows, got %v", err)
	}
}
