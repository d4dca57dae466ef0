package perf

import (
	"math"
	"time"

	"go.uber.org/zap"

	"portfolio-engine/internal/sched"
)

// Tier is the discrete performance classification derived from rolling FPS.
type Tier int

const (
	TierLow Tier = iota
	TierMedium
	TierHigh
)

func (t Tier) String() string {
	switch t {
	case TierHigh:
		return "high"
	case TierMedium:
		return "medium"
	}
	return "low"
}

const (
	windowLength = time.Second
	historyCap   = 10

	highThresholdFPS   = 55.0
	mediumThresholdFPS = 35.0
)

// TierFor maps a rolling average FPS to a tier. Step function: >=55 high,
// >=35 medium, else low.
func TierFor(avgFPS float64) Tier {
	switch {
	case avgFPS >= highThresholdFPS:
		return TierHigh
	case avgFPS >= mediumThresholdFPS:
		return TierMedium
	}
	return TierLow
}

// Sampler measures rendering throughput. While running it counts frames and
// closes a measurement window every second, pushing the window's FPS into a
// fixed-capacity history whose mean drives the tier.
type Sampler struct {
	loop *sched.Loop
	log  *zap.Logger

	frames      int
	windowStart time.Time
	history     []float64
	average     float64
	tier        Tier
	running     bool
}

func NewSampler(loop *sched.Loop, log *zap.Logger) *Sampler {
	return &Sampler{
		loop: loop,
		log:  log,
		// Optimistic until the first window closes.
		tier:    TierHigh,
		average: 60,
	}
}

// Start begins monitoring. Calling Start on a running sampler is a no-op, so
// at most one frame hook is ever registered.
func (s *Sampler) Start(now time.Time) {
	if s.running {
		return
	}
	s.running = true
	s.frames = 0
	s.windowStart = now
	s.loop.AddHook("perf.sampler", s.frame)
}

// Stop ends monitoring and unregisters the frame hook. Idempotent; after
// Stop no further callback fires.
func (s *Sampler) Stop() {
	if !s.running {
		return
	}
	s.running = false
	s.loop.RemoveHook("perf.sampler")
}

func (s *Sampler) frame(now time.Time, _ float64) {
	s.frames++

	elapsed := now.Sub(s.windowStart)
	if elapsed < windowLength {
		return
	}

	fps := math.Round(float64(s.frames) * 1000 / float64(elapsed.Milliseconds()))
	s.push(fps)

	sum := 0.0
	for _, v := range s.history {
		sum += v
	}
	s.average = sum / float64(len(s.history))

	prev := s.tier
	s.tier = TierFor(s.average)
	if s.tier != prev && s.log != nil {
		s.log.Info("performance tier changed",
			zap.String("from", prev.String()),
			zap.String("to", s.tier.String()),
			zap.Float64("avg_fps", s.average))
	}

	s.frames = 0
	s.windowStart = now
}

func (s *Sampler) push(fps float64) {
	s.history = append(s.history, fps)
	if len(s.history) > historyCap {
		s.history = s.history[1:]
	}
}

// Tier reports the current performance tier.
func (s *Sampler) Tier() Tier { return s.tier }

// Average reports the rolling average FPS over the retained windows.
func (s *Sampler) Average() float64 { return s.average }

// Running reports whether the sampler's frame hook is active.
func (s *Sampler) Running() bool { return s.running }

// HistoryLen reports how many window samples are retained, never above ten.
func (s *Sampler) HistoryLen() int { return len(s.history) }
