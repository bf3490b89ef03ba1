package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MeKo-Tech/paletteedit/internal/palette"
)

type fakeRenderer struct {
	mu      sync.Mutex
	calls   int
	failFor string
}

func (r *fakeRenderer) Render(_ context.Context, task Task) (string, error) {
	r.mu.Lock()
	r.calls++
	r.mu.Unlock()
	if task.Name == r.failFor {
		return "", errors.New("render failed")
	}
	return task.Name + ".png", nil
}

func makeTasks(n int) []Task {
	tasks := make([]Task, n)
	for i := range tasks {
		tasks[i] = Task{Name: fmt.Sprintf("p%d", i), Palette: palette.New(4)}
	}
	return tasks
}

func TestRunProcessesAllTasks(t *testing.T) {
	r := &fakeRenderer{}
	pool := New(Config{Workers: 4, Renderer: r})

	results := pool.Run(context.Background(), makeTasks(10))
	require.Len(t, results, 10)
	require.Equal(t, 10, r.calls)

	for _, res := range results {
		require.NoError(t, res.Err)
		require.Equal(t, res.Task.Name+".png", res.Path)
	}
}

func TestRunReportsFailures(t *testing.T) {
	r := &fakeRenderer{failFor: "p3"}
	pool := New(Config{Workers: 2, Renderer: r})

	results := pool.Run(context.Background(), makeTasks(6))
	require.Len(t, results, 6)

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			require.Equal(t, "p3", res.Task.Name)
		}
	}
	require.Equal(t, 1, failed)
}

func TestRunProgress(t *testing.T) {
	var mu sync.Mutex
	var lastCompleted, lastFailed, lastTotal int
	pool := New(Config{
		Workers:  3,
		Renderer: &fakeRenderer{failFor: "p0"},
		OnProgress: func(completed, total, failed int) {
			mu.Lock()
			defer mu.Unlock()
			lastCompleted = completed
			lastFailed = failed
			lastTotal = total
		},
	})

	pool.Run(context.Background(), makeTasks(5))

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, 5, lastTotal)
	require.Equal(t, 5, lastCompleted)
	require.Equal(t, 1, lastFailed)
}

func TestRunEmptyTaskList(t *testing.T) {
	pool := New(Config{Workers: 2, Renderer: &fakeRenderer{}})
	require.Nil(t, pool.Run(context.Background(), nil))
}

func TestRunCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pool := New(Config{Workers: 2, Renderer: &fakeRenderer{}})
	results := pool.Run(ctx, makeTasks(4))

	// Feeding stops on cancellation, so at most the already-queued tasks
	// come back, each marked with the context error.
	require.LessOrEqual(t, len(results), 4)
	for _, res := range results {
		require.ErrorIs(t, res.Err, context.Canceled)
	}
}
