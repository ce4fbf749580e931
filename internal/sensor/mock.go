package sensor

import (
	"context"
	"math"
	"math/rand"
	"time"

	"radar-panel.klederson.com/internal/config"
)

// DemoPositions seed the simulated targets. The first two are the stock
// demo panel: 2.5 m at 45 degrees and 4.5 m at 120 degrees.
var DemoPositions = []struct{ Distance, Angle float64 }{
	{2.5, 45},
	{4.5, 120},
	{6.0, 160},
}

type mockTarget struct {
	baseDist  float64
	baseAngle float64
	phase     float64
	distAmp   float64 // meters of range wobble
	angleAmp  float64 // degrees of bearing wobble
	active    bool
}

// MockSource simulates a sensor tracking a few slow-moving people.
type MockSource struct {
	sender   Sender
	targets  []mockTarget
	interval time.Duration
	maxRange float64
	rng      *rand.Rand
	cancel   context.CancelFunc
}

// NewMockSource creates a source with n simulated targets, capped at
// config.MaxTargets, staying within maxRange meters.
func NewMockSource(n int, interval time.Duration, maxRange float64) *MockSource {
	if n > config.MaxTargets {
		n = config.MaxTargets
	}
	if n < 0 {
		n = 0
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	targets := make([]mockTarget, n)
	for i := range targets {
		pos := DemoPositions[i%len(DemoPositions)]
		targets[i] = mockTarget{
			baseDist:  math.Min(pos.Distance, maxRange),
			baseAngle: pos.Angle,
			phase:     rng.Float64() * 2 * math.Pi,
			distAmp:   0.3 + rng.Float64()*0.7,
			angleAmp:  5 + rng.Float64()*15,
			active:    true,
		}
	}

	return &MockSource{
		targets:  targets,
		interval: interval,
		maxRange: maxRange,
		rng:      rng,
	}
}

// Start begins emitting readings in a goroutine.
func (s *MockSource) Start(sender Sender) error {
	s.sender = sender

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	go s.loop(ctx)
	return nil
}

func (s *MockSource) loop(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	start := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.emit(now.Sub(start).Seconds(), now)
		}
	}
}

// emit sends one reading per simulated target for time t seconds.
func (s *MockSource) emit(t float64, now time.Time) {
	for i := range s.targets {
		tg := &s.targets[i]

		// Occasionally walk out of view and back
		if s.rng.Float64() < 0.01 {
			tg.active = !tg.active
		}

		r := Reading{TargetID: i, At: now, Detected: tg.active}
		if tg.active {
			dist := tg.baseDist + tg.distAmp*math.Sin(t*0.4+tg.phase)
			r.Distance = math.Max(0.1, math.Min(dist, s.maxRange))
			r.Angle = tg.baseAngle + tg.angleAmp*math.Sin(t*0.25+tg.phase)
			r.Angle = math.Max(0, math.Min(180, r.Angle))
		}
		if s.sender != nil {
			s.sender.Send(ReadingMsg{Reading: r})
		}
	}
}

// Stop halts the source. Safe to call more than once.
func (s *MockSource) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
}
