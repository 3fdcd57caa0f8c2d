package application

import (
	"context"
	"math"
	"time"
)

// CounterFrames interpolates a count-up animation toward target over duration
// at fps frames per second. The result is non-decreasing, never exceeds
// target, and always ends at exactly target. Non-positive targets, durations
// or frame rates produce the single frame [target].
func CounterFrames(target int, duration time.Duration, fps int) []int {
	if target <= 0 || duration <= 0 || fps <= 0 {
		return []int{target}
	}

	n := int(math.Ceil(duration.Seconds() * float64(fps)))
	if n < 1 {
		n = 1
	}

	frames := make([]int, n)
	for i := 1; i <= n; i++ {
		// Integer math keeps every frame <= target and the last frame == target.
		frames[i-1] = int(int64(target) * int64(i) / int64(n))
	}
	return frames
}

// Counter drives a count-up animation from a periodic ticker.
type Counter struct {
	Duration time.Duration
	FPS      int
}

// Run emits the frames for target, one per tick, and returns nil once the
// final frame has been emitted. When ctx is canceled first it stops the
// ticker and returns ctx.Err(). emit must not block for long.
func (c Counter) Run(ctx context.Context, target int, emit func(value int) error) error {
	frames := CounterFrames(target, c.Duration, c.FPS)

	interval := time.Second / time.Duration(max(c.FPS, 1))
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for _, v := range frames {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := emit(v); err != nil {
			return err
		}
	}

	return nil
}
