package tile

import (
	"context"
	"sync/atomic"
	"testing"
)

// TestRunVisitsEveryTaskExactlyOnce checks that every task index in
// [0,total) is visited exactly once, regardless of tile size.
func TestRunVisitsEveryTaskExactlyOnce(t *testing.T) {
	const total = 10_000
	seen := make([]int32, total)

	err := Run(context.Background(), total, 64, func(idx int64) {
		atomic.AddInt32(&seen[idx], 1)
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	for i, c := range seen {
		if c != 1 {
			t.Fatalf("task %d visited %d times; want 1", i, c)
		}
	}
}

// TestRunZeroTotal checks that an empty task set is a no-op.
func TestRunZeroTotal(t *testing.T) {
	called := false
	err := Run(context.Background(), 0, 64, func(int64) { called = true })
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if called {
		t.Fatal("fn called for an empty task set")
	}
}
