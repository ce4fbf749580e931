package scene

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"

	"radar-panel.klederson.com/internal/radar"
)

// Style is how a role is drawn by the rasterizers.
type Style struct {
	Hex      string
	Width    float64 // stroke width in pixels
	Priority int     // higher wins when terminal cells collide
}

var styles = map[radar.Role]Style{
	radar.RoleGridArc:       {Hex: "#4080FF", Width: 1, Priority: 1},
	radar.RoleGridLine:      {Hex: "#4080FF", Width: 2, Priority: 2},
	radar.RoleGridReference: {Hex: "#2060CC", Width: 1, Priority: 0},
	radar.RoleTrail:         {Hex: "#00AA00", Width: 2, Priority: 3},
	radar.RoleBeam:          {Hex: "#00FF00", Width: 3, Priority: 4},
	radar.RoleMarker:        {Hex: "#FFFF00", Width: 1, Priority: 5},
}

// StyleFor returns the style for role r.
func StyleFor(r radar.Role) Style {
	if s, ok := styles[r]; ok {
		return s
	}
	return Style{Hex: "#FFFFFF", Width: 1}
}

// RGBA returns the style color with opacity applied as alpha.
func (s Style) RGBA(opacity uint8) gg.RGBA {
	c := gg.Hex(s.Hex)
	c.A = float64(opacity) / 255
	return c
}

// Shade returns the style color darkened toward black by opacity, for
// targets without an alpha channel.
func (s Style) Shade(opacity uint8) string {
	c := gg.Hex(s.Hex)
	k := float64(opacity) / 255
	to8 := func(v float64) int { return int(math.Round(v * k * 255)) }
	return fmt.Sprintf("#%02X%02X%02X", to8(c.R), to8(c.G), to8(c.B))
}
