package perf

import (
	"testing"
	"time"

	"go.uber.org/zap"

	"portfolio-engine/internal/sched"
)

// driveWindow ticks the loop so that exactly frames frames land inside one
// 1s measurement window, closing it on the final tick.
func driveWindow(l *sched.Loop, start time.Time, frames int) time.Time {
	step := time.Second / time.Duration(frames)
	now := start
	for i := 0; i < frames-1; i++ {
		now = now.Add(step)
		l.Tick(now, step.Seconds())
	}
	// Land the final frame exactly on the window boundary so truncated
	// steps cannot leave the window open.
	now = start.Add(time.Second)
	l.Tick(now, step.Seconds())
	return now
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		avg  float64
		want Tier
	}{
		{60, TierHigh},
		{55, TierHigh},
		{54.9, TierMedium},
		{40, TierMedium},
		{35, TierMedium},
		{34.9, TierLow},
		{20, TierLow},
		{0, TierLow},
	}
	for _, tt := range tests {
		if got := TierFor(tt.avg); got != tt.want {
			t.Errorf("TierFor(%v) = %s, want %s", tt.avg, got, tt.want)
		}
	}
}

func TestSamplerStartsOptimistic(t *testing.T) {
	s := NewSampler(sched.NewLoop(), zap.NewNop())
	if s.Tier() != TierHigh {
		t.Errorf("initial tier = %s, want high", s.Tier())
	}
	if s.Average() != 60 {
		t.Errorf("initial average = %v, want 60", s.Average())
	}
}

func TestSamplerMeasuresWindowFPS(t *testing.T) {
	tests := []struct {
		frames int
		want   Tier
	}{
		{60, TierHigh},
		{40, TierMedium},
		{20, TierLow},
	}
	for _, tt := range tests {
		l := sched.NewLoop()
		s := NewSampler(l, zap.NewNop())
		start := time.Unix(0, 0)
		s.Start(start)

		driveWindow(l, start, tt.frames)

		if s.Average() != float64(tt.frames) {
			t.Errorf("%d frames: average = %v, want %d", tt.frames, s.Average(), tt.frames)
		}
		if s.Tier() != tt.want {
			t.Errorf("%d frames: tier = %s, want %s", tt.frames, s.Tier(), tt.want)
		}
		if s.HistoryLen() != 1 {
			t.Errorf("%d frames: history = %d samples, want 1", tt.frames, s.HistoryLen())
		}
	}
}

func TestSamplerHistoryCapped(t *testing.T) {
	l := sched.NewLoop()
	s := NewSampler(l, zap.NewNop())
	now := time.Unix(0, 0)
	s.Start(now)

	for i := 0; i < 15; i++ {
		now = driveWindow(l, now, 60)
	}
	if s.HistoryLen() != 10 {
		t.Errorf("history = %d samples after 15 windows, want 10", s.HistoryLen())
	}
}

func TestSamplerAverageSmoothsTierChange(t *testing.T) {
	l := sched.NewLoop()
	s := NewSampler(l, zap.NewNop())
	now := time.Unix(0, 0)
	s.Start(now)

	for i := 0; i < 9; i++ {
		now = driveWindow(l, now, 60)
	}
	// One bad second among nine good ones keeps the rolling average high.
	driveWindow(l, now, 20)
	if s.Tier() != TierHigh {
		t.Errorf("tier = %s after one slow window, want high", s.Tier())
	}
}

func TestSamplerStartStopIdempotent(t *testing.T) {
	l := sched.NewLoop()
	s := NewSampler(l, zap.NewNop())
	start := time.Unix(0, 0)

	s.Start(start)
	s.Start(start) // second Start must not double-register
	driveWindow(l, start, 40)
	if s.Average() != 40 {
		t.Errorf("average = %v with doubled Start, want 40", s.Average())
	}

	s.Stop()
	s.Stop()
	if s.Running() {
		t.Error("sampler still running after Stop")
	}

	before := s.Average()
	driveWindow(l, start.Add(time.Second), 5)
	if s.Average() != before {
		t.Error("stopped sampler kept measuring")
	}
}
