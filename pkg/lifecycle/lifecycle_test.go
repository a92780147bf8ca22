package lifecycle_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/floorplan/pkg/lifecycle"
)

func TestReadiness(t *testing.T) {
	lc := lifecycle.New()
	assert.False(t, lc.Ready())

	lc.WaitForStartup()
	assert.True(t, lc.Ready())

	require.NoError(t, lc.Shutdown(time.Second))
	assert.False(t, lc.Ready())
}

func TestStartupHooksExecute(t *testing.T) {
	lc := lifecycle.New()

	var count atomic.Int32
	for range 3 {
		lc.OnStartup(func() { count.Add(1) })
	}
	lc.WaitForStartup()

	assert.Equal(t, int32(3), count.Load())
}

func TestShutdownHooksWaitForCancel(t *testing.T) {
	lc := lifecycle.New()

	var ran atomic.Bool
	lc.OnShutdown(func() {
		assert.Error(t, lc.Context().Err())
		ran.Store(true)
	})

	lc.WaitForStartup()
	time.Sleep(10 * time.Millisecond)
	assert.False(t, ran.Load(), "hook ran before shutdown")

	require.NoError(t, lc.Shutdown(5*time.Second))
	assert.True(t, ran.Load())
}

func TestShutdownTimeout(t *testing.T) {
	lc := lifecycle.New()
	lc.OnShutdown(func() { time.Sleep(500 * time.Millisecond) })
	lc.WaitForStartup()

	assert.Error(t, lc.Shutdown(50*time.Millisecond))
}

func TestContextCancelledOnShutdown(t *testing.T) {
	lc := lifecycle.New()
	lc.WaitForStartup()
	require.NoError(t, lc.Shutdown(5*time.Second))

	select {
	case <-lc.Context().Done():
	default:
		t.Error("context should be cancelled after shutdown")
	}
}
