package radar

import (
	"errors"
	"fmt"
)

// Grid lists the static primitives drawn for a display. They belong to the
// surface for the lifetime of the display and are never mutated.
type Grid struct {
	Bands      []Primitive
	Lines      []Primitive
	References []Primitive
}

// Len counts all grid primitives.
func (g Grid) Len() int {
	return len(g.Bands) + len(g.Lines) + len(g.References)
}

// BuildGrid draws the range bands and bearing lines for cfg. An invalid
// configuration draws nothing. A primitive the surface refuses is skipped
// and reported; its siblings are still drawn.
func BuildGrid(s Surface, cfg Config) (Grid, error) {
	if err := cfg.Validate(); err != nil {
		return Grid{}, err
	}

	var (
		g    Grid
		errs []error
	)
	apex := cfg.Apex()
	bandRadius := float64(cfg.Radius) / float64(cfg.BandCount)

	for k := 1; k <= cfg.BandCount; k++ {
		r := bandRadius * float64(k)
		arc, err := s.CreateArc(RoleGridArc, apex, r, 0, 180)
		if err != nil {
			errs = append(errs, fmt.Errorf("band %d: %w", k, err))
			continue
		}
		g.Bands = append(g.Bands, arc)
	}

	for i := 0; i < cfg.LineCount; i++ {
		angle := 180 * float64(i) / float64(cfg.LineCount-1)
		line, err := s.CreateLine(RoleGridLine, apex, BeamEnd(cfg, angle))
		if err != nil {
			errs = append(errs, fmt.Errorf("bearing line %d: %w", i, err))
			continue
		}
		g.Lines = append(g.Lines, line)
	}

	if cfg.ReferenceLines {
		for k := 1; k < cfg.BandCount; k++ {
			r := bandRadius * float64(k)
			y := apex.Y - r
			line, err := s.CreateLine(RoleGridReference,
				Point{X: apex.X - r, Y: y},
				Point{X: apex.X + r, Y: y})
			if err != nil {
				errs = append(errs, fmt.Errorf("reference line %d: %w", k, err))
				continue
			}
			g.References = append(g.References, line)
		}
	}

	if len(errs) > 0 {
		return g, fmt.Errorf("%w: %w", ErrAllocation, errors.Join(errs...))
	}
	return g, nil
}
