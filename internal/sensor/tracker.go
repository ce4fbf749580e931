package sensor

import (
	"sort"
	"sync"
	"time"

	"radar-panel.klederson.com/internal/config"
)

// Target is a tracked, smoothed sensor target.
type Target struct {
	ID        int
	Distance  float64 // meters, EMA smoothed
	Angle     float64 // degrees, EMA smoothed
	FirstSeen time.Time
	LastSeen  time.Time
	History   []float64 // recent raw distances, oldest first

	missingSince time.Time
	history      *Ring
}

// Tracker is a thread-safe store of targets fed by sensor readings.
type Tracker struct {
	mu        sync.RWMutex
	targets   map[int]*Target
	retention time.Duration
	absence   time.Duration
	alpha     float64
}

// NewTracker creates a tracker that keeps a target for retention after its
// last detection and drops it once it has been reported absent for absence.
func NewTracker(retention, absence time.Duration) *Tracker {
	return &Tracker{
		targets:   make(map[int]*Target),
		retention: retention,
		absence:   absence,
		alpha:     config.SmoothingAlpha,
	}
}

// Observe applies one reading. A detected reading adds or smooths the
// target; an undetected one starts its absence timer.
func (t *Tracker) Observe(r Reading) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := r.At
	if now.IsZero() {
		now = time.Now()
	}

	existing, ok := t.targets[r.TargetID]
	if !r.Detected {
		if ok && existing.missingSince.IsZero() {
			existing.missingSince = now
		}
		return
	}

	if ok {
		existing.Distance = existing.Distance*(1-t.alpha) + r.Distance*t.alpha
		existing.Angle = existing.Angle*(1-t.alpha) + r.Angle*t.alpha
		existing.LastSeen = now
		existing.missingSince = time.Time{}
		existing.history.Push(r.Distance)
		return
	}

	h := NewRing(config.HistoryLen)
	h.Push(r.Distance)
	t.targets[r.TargetID] = &Target{
		ID:        r.TargetID,
		Distance:  r.Distance,
		Angle:     r.Angle,
		FirstSeen: now,
		LastSeen:  now,
		history:   h,
	}
}

// Evict drops targets not detected within the retention window and those
// reported absent for at least the absence window. Returns the number of
// evicted targets.
func (t *Tracker) Evict(now time.Time) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	count := 0
	for id, tg := range t.targets {
		stale := now.Sub(tg.LastSeen) >= t.retention
		gone := !tg.missingSince.IsZero() && now.Sub(tg.missingSince) >= t.absence
		if stale || gone {
			delete(t.targets, id)
			count++
		}
	}
	return count
}

// Snapshot returns copies of all targets ordered by id.
func (t *Tracker) Snapshot() []Target {
	t.mu.RLock()
	defer t.mu.RUnlock()

	result := make([]Target, 0, len(t.targets))
	for _, tg := range t.targets {
		cp := *tg
		cp.History = tg.history.Values()
		cp.history = nil
		result = append(result, cp)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Count returns the number of tracked targets.
func (t *Tracker) Count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.targets)
}
