package scheduler_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"frontdesk/infras/scheduler"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_RunsRegisteredJob(t *testing.T) {
	sched, err := scheduler.New()
	require.NoError(t, err)

	var runs atomic.Int32

	err = sched.Every("count", 20*time.Millisecond, func(_ context.Context) {
		runs.Add(1)
	})
	require.NoError(t, err)

	sched.Start()

	assert.Eventually(t, func() bool { return runs.Load() >= 2 }, 2*time.Second, 10*time.Millisecond)
	assert.NoError(t, sched.Shutdown())
}

func TestScheduler_ShutdownCancelsContext(t *testing.T) {
	sched, err := scheduler.New()
	require.NoError(t, err)

	done := make(chan struct{})

	var once sync.Once

	err = sched.Every("wait", 10*time.Millisecond, func(ctx context.Context) {
		<-ctx.Done()
		once.Do(func() { close(done) })
	})
	require.NoError(t, err)

	sched.Start()
	time.Sleep(50 * time.Millisecond)

	require.NoError(t, sched.Shutdown())

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("task context was not cancelled")
	}
}

func TestScheduler_RejectsInvalidInterval(t *testing.T) {
	sched, err := scheduler.New()
	require.NoError(t, err)

	err = sched.Every("broken", 0, func(context.Context) {})

	assert.Error(t, err)
	assert.NoError(t, sched.Shutdown())
}
