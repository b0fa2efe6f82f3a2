package asyncx_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/clarityimpactfinance/portal/pkg/asyncx"
	"github.com/stretchr/testify/require"
)

func TestSleep(t *testing.T) {
	t.Parallel()

	require.NoError(t, asyncx.Sleep(context.Background(), 0))
	require.NoError(t, asyncx.Sleep(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, asyncx.Sleep(ctx, time.Hour), context.Canceled)
}

func TestTaskRunsAfterDelay(t *testing.T) {
	t.Parallel()

	task := asyncx.After(context.Background(), 5*time.Millisecond, func(context.Context) (string, error) {
		return "reply", nil
	})

	got, err := task.Wait(context.Background())
	require.NoError(t, err)
	require.Equal(t, "reply", got)
}

func TestCancelledTaskNeverRuns(t *testing.T) {
	t.Parallel()

	var ran atomic.Bool
	task := asyncx.After(context.Background(), time.Hour, func(context.Context) (struct{}, error) {
		ran.Store(true)
		return struct{}{}, nil
	})

	task.Cancel()
	task.Cancel()

	_, err := task.Wait(context.Background())
	require.ErrorIs(t, err, asyncx.ErrCancelled)
	require.False(t, ran.Load())

	select {
	case <-task.Done():
	default:
		t.Fatal("task should be done after cancel")
	}
}

func TestParentContextCancelsTask(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	task := asyncx.After(ctx, time.Hour, func(context.Context) (int, error) { return 1, nil })
	cancel()

	_, err := task.Wait(context.Background())
	require.ErrorIs(t, err, asyncx.ErrCancelled)
}

func TestWaitGivesUpWithoutCancelling(t *testing.T) {
	t.Parallel()

	task := asyncx.After(context.Background(), 20*time.Millisecond, func(context.Context) (int, error) { return 7, nil })

	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()
	_, err := task.Wait(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	got, err := task.Wait(context.Background())
	require.NoError(t, err)
	require.Equal(t, 7, got)
}
