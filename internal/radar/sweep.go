package radar

import (
	"errors"
	"fmt"
	"time"

	"radar-panel.klederson.com/internal/config"
)

// Sweep manages the rotating beam and its fading trail. Primitives are
// created on the first tick and then updated in place until Stop.
type Sweep struct {
	surface Surface
	cfg     Config
	anim    Animation

	angle   float64 // degrees, always within [0, 180]
	beam    Primitive
	trail   [config.TrailDepth]Primitive
	running bool
}

// StartSweep prepares a running sweep at 0 degrees. Nothing is drawn until
// the first Tick or Advance.
func StartSweep(s Surface, cfg Config, duration time.Duration, loop bool) (*Sweep, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if duration <= 0 {
		return nil, fmt.Errorf("%w: sweep duration %s", ErrConfiguration, duration)
	}
	return &Sweep{
		surface: s,
		cfg:     cfg,
		anim:    NewAnimation(duration, loop),
		running: true,
	}, nil
}

// Angle returns the last rendered beam angle in degrees.
func (s *Sweep) Angle() float64 {
	return s.angle
}

// Running reports whether the sweep has not been stopped.
func (s *Sweep) Running() bool {
	return s != nil && s.running
}

// Animation returns the schedule driving Advance.
func (s *Sweep) Animation() Animation {
	return s.anim
}

// Advance moves the beam to where the schedule puts it after elapsed time.
// When a non-looping schedule completes, the sweep stops itself and done
// is true.
func (s *Sweep) Advance(elapsed time.Duration) (done bool, err error) {
	if !s.Running() {
		return true, ErrSweepStopped
	}
	angle, done := s.anim.AngleAt(elapsed)
	if done {
		return true, s.Stop()
	}
	return false, s.Tick(angle)
}

// Tick renders the beam at angle and each trail segment behind it.
// Allocation failures are collected; the remaining segments are still
// updated.
func (s *Sweep) Tick(angle float64) error {
	if !s.Running() {
		return ErrSweepStopped
	}
	s.angle = ClampAngle(angle)
	apex := s.cfg.Apex()

	var errs []error
	if err := s.place(&s.beam, RoleBeam, apex, BeamEnd(s.cfg, s.angle), 255); err != nil {
		errs = append(errs, fmt.Errorf("beam: %w", err))
	}

	angles := TrailAngles(s.angle)
	for i := range s.trail {
		end := BeamEnd(s.cfg, angles[i])
		if err := s.place(&s.trail[i], RoleTrail, apex, end, TrailOpacity(i)); err != nil {
			errs = append(errs, fmt.Errorf("trail %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

func (s *Sweep) place(slot *Primitive, role Role, from, to Point, opacity uint8) error {
	if *slot == nil {
		p, err := s.surface.CreateLine(role, from, to)
		if err != nil {
			return err
		}
		*slot = p
	} else if err := (*slot).SetPoints(from, to); err != nil {
		return err
	}
	return (*slot).SetOpacity(opacity)
}

// Stop destroys the beam and trail. Calling it again is a no-op.
func (s *Sweep) Stop() error {
	if s == nil || !s.running {
		return nil
	}
	s.running = false

	var errs []error
	if s.beam != nil {
		if err := s.beam.Destroy(); err != nil {
			errs = append(errs, fmt.Errorf("beam: %w", err))
		}
		s.beam = nil
	}
	for i, p := range s.trail {
		if p == nil {
			continue
		}
		if err := p.Destroy(); err != nil {
			errs = append(errs, fmt.Errorf("trail %d: %w", i, err))
		}
		s.trail[i] = nil
	}
	return errors.Join(errs...)
}

// TrailAngles returns where each trail segment sits behind angle, floored
// at 0 degrees.
func TrailAngles(angle float64) [config.TrailDepth]float64 {
	var out [config.TrailDepth]float64
	angle = ClampAngle(angle)
	for i := range out {
		out[i] = max(0, angle-float64((i+1)*config.TrailStep))
	}
	return out
}

// TrailOpacity is the alpha of trail segment i. It falls by
// config.TrailFade per segment.
func TrailOpacity(i int) uint8 {
	return uint8(255 - i*config.TrailFade)
}
