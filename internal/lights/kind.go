package lights

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lucasb-eyer/go-colorful"
)

// Kind is the kind of a managed light.
type Kind int

const (
	Ambient Kind = iota
	Directional
	Point
	Spot
	Area
)

// String returns the lower-case kind name ("point", "spot", ...).
func (k Kind) String() string {
	switch k {
	case Ambient:
		return "ambient"
	case Directional:
		return "directional"
	case Point:
		return "point"
	case Spot:
		return "spot"
	case Area:
		return "area"
	default:
		return "unknown"
	}
}

// ParseKind maps a kind name to its Kind. Used by the terminal
// ("light add point") and the YAML defaults file.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "ambient":
		return Ambient, nil
	case "directional":
		return Directional, nil
	case "point":
		return Point, nil
	case "spot":
		return Spot, nil
	case "area":
		return Area, nil
	}
	return 0, fmt.Errorf("unknown light kind: %q", s)
}

// Properties is the property snapshot of a managed light. Kind-specific
// fields are meaningful only for the kinds listed; UpdateProperty rejects
// writes to inapplicable fields.
type Properties struct {
	Intensity float32    // all kinds
	Color     string     // all kinds, "#rrggbb"
	Position  rl.Vector3 // all except ambient
	Rotation  rl.Vector3 // directional/spot/area, Euler degrees
	Distance  float32    // point/spot range
	Angle     float32    // spot cone half-angle, degrees
	Penumbra  float32    // spot edge softness, 0-1
	Decay     float32    // point/spot falloff exponent
	Width     float32    // area
	Height    float32    // area
}

// parseHexColor parses "#rrggbb" (or "#rgb") into an opaque raylib color.
func parseHexColor(hex string) (rl.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return rl.Color{}, err
	}
	r, g, b := c.RGB255()
	return rl.NewColor(r, g, b, 255), nil
}
