package app

import "time"

// TickMsg triggers a frame update for animation.
type TickMsg time.Time

// EvictMsg triggers target eviction.
type EvictMsg time.Time
