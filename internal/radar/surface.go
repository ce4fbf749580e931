package radar

// Role tells the surface which visual style a primitive carries.
// The core never deals with colors or widths directly.
type Role int

const (
	RoleGridArc Role = iota
	RoleGridLine
	RoleGridReference
	RoleBeam
	RoleTrail
	RoleMarker
)

func (r Role) String() string {
	switch r {
	case RoleGridArc:
		return "grid-arc"
	case RoleGridLine:
		return "grid-line"
	case RoleGridReference:
		return "grid-reference"
	case RoleBeam:
		return "beam"
	case RoleTrail:
		return "trail"
	case RoleMarker:
		return "marker"
	default:
		return "unknown"
	}
}

// Size is a pixel footprint.
type Size struct {
	Width, Height int
}

// Primitive is a drawable object owned by a Surface. A nil Primitive is the
// null handle. Whoever created a primitive is responsible for destroying it.
type Primitive interface {
	SetPoints(points ...Point) error
	SetOpacity(opacity uint8) error
	// MoveTo places the primitive's top-left corner. Used for icons.
	MoveTo(topLeft Point) error
	Destroy() error
}

// Surface is the drawing target owned by the hosting display.
// Angles passed to CreateArc use the radar convention: 0 is right,
// 90 is up, 180 is left.
type Surface interface {
	CreateLine(role Role, points ...Point) (Primitive, error)
	CreateArc(role Role, center Point, radius, startDeg, endDeg float64) (Primitive, error)
	CreateIcon(role Role, glyph string, topLeft Point, size Size) (Primitive, error)
}
