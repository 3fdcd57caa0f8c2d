package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertCounterFrames(t *testing.T, target int, frames []int) {
	t.Helper()
	require.NotEmpty(t, frames)
	assert.Equal(t, target, frames[len(frames)-1])
	prev := 0
	for i, v := range frames {
		assert.GreaterOrEqual(t, v, prev, "frame %d decreased", i)
		assert.LessOrEqual(t, v, target, "frame %d overshoots", i)
		prev = v
	}
}

func TestCounterFrames_Target42(t *testing.T) {
	for _, d := range []time.Duration{time.Millisecond, 100 * time.Millisecond, time.Second, 2500 * time.Millisecond, 7 * time.Second} {
		frames := CounterFrames(42, d, 60)
		assertCounterFrames(t, 42, frames)
	}
}

func TestCounterFrames_FrameCount(t *testing.T) {
	assert.Len(t, CounterFrames(10, 2500*time.Millisecond, 60), 150)
	assert.Len(t, CounterFrames(10, time.Millisecond, 60), 1)
}

func TestCounterFrames_MoreFramesThanTarget(t *testing.T) {
	frames := CounterFrames(3, time.Second, 60)
	assertCounterFrames(t, 3, frames)
	assert.Equal(t, 0, frames[0])
}

func TestCounterFrames_Degenerate(t *testing.T) {
	assert.Equal(t, []int{0}, CounterFrames(0, time.Second, 60))
	assert.Equal(t, []int{5}, CounterFrames(5, 0, 60))
	assert.Equal(t, []int{5}, CounterFrames(5, time.Second, 0))
}

func TestCounter_RunEmitsAllFrames(t *testing.T) {
	c := Counter{Duration: 50 * time.Millisecond, FPS: 200}

	var got []int
	err := c.Run(context.Background(), 42, func(v int) error {
		got = append(got, v)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, CounterFrames(42, c.Duration, c.FPS), got)
	assertCounterFrames(t, 42, got)
}

func TestCounter_RunCanceled(t *testing.T) {
	c := Counter{Duration: time.Hour, FPS: 100}
	ctx, cancel := context.WithCancel(context.Background())

	emitted := 0
	err := c.Run(ctx, 1000, func(int) error {
		emitted++
		if emitted == 3 {
			cancel()
		}
		return nil
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 3, emitted)
}

func TestCounter_RunStopsOnEmitError(t *testing.T) {
	c := Counter{Duration: time.Second, FPS: 200}
	boom := errors.New("client gone")

	emitted := 0
	err := c.Run(context.Background(), 42, func(int) error {
		emitted++
		return boom
	})

	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, emitted)
}
