package radar

import (
	"errors"
	"fmt"
)

var errRefused = errors.New("surface refused")

// fakePrim records the last state pushed to it.
type fakePrim struct {
	kind      string
	role      Role
	points    []Point
	topLeft   Point
	opacity   uint8
	destroyed bool
	sets      int
}

func (p *fakePrim) SetPoints(points ...Point) error {
	if p.destroyed {
		return errors.New("destroyed")
	}
	p.points = append(p.points[:0], points...)
	p.sets++
	return nil
}

func (p *fakePrim) SetOpacity(o uint8) error {
	if p.destroyed {
		return errors.New("destroyed")
	}
	p.opacity = o
	return nil
}

func (p *fakePrim) MoveTo(tl Point) error {
	if p.destroyed {
		return errors.New("destroyed")
	}
	p.topLeft = tl
	return nil
}

func (p *fakePrim) Destroy() error {
	if p.destroyed {
		return errors.New("already destroyed")
	}
	p.destroyed = true
	return nil
}

// fakeSurface hands out fakePrims. Calls listed in refuse (1-based creation
// order) fail with ErrAllocation.
type fakeSurface struct {
	created []*fakePrim
	calls   int
	refuse  map[int]bool
}

func newFakeSurface(refuse ...int) *fakeSurface {
	s := &fakeSurface{refuse: make(map[int]bool)}
	for _, n := range refuse {
		s.refuse[n] = true
	}
	return s
}

func (s *fakeSurface) make(kind string, role Role) (*fakePrim, error) {
	s.calls++
	if s.refuse[s.calls] {
		return nil, fmt.Errorf("%w: %w", ErrAllocation, errRefused)
	}
	p := &fakePrim{kind: kind, role: role, opacity: 255}
	s.created = append(s.created, p)
	return p, nil
}

func (s *fakeSurface) CreateLine(role Role, points ...Point) (Primitive, error) {
	p, err := s.make("line", role)
	if err != nil {
		return nil, err
	}
	p.points = append([]Point(nil), points...)
	return p, nil
}

func (s *fakeSurface) CreateArc(role Role, center Point, radius, startDeg, endDeg float64) (Primitive, error) {
	p, err := s.make("arc", role)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *fakeSurface) CreateIcon(role Role, glyph string, topLeft Point, size Size) (Primitive, error) {
	p, err := s.make("icon", role)
	if err != nil {
		return nil, err
	}
	p.topLeft = topLeft
	return p, nil
}

func (s *fakeSurface) live(role Role) int {
	n := 0
	for _, p := range s.created {
		if p.role == role && !p.destroyed {
			n++
		}
	}
	return n
}
