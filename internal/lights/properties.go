package lights

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// propKinds lists, per property path, the kinds the path applies to.
// UpdateProperty fails without mutating anything when the path is missing
// here or the light's kind is not listed.
var propKinds = map[string][]Kind{
	"intensity": {Ambient, Directional, Point, Spot, Area},
	"color":     {Ambient, Directional, Point, Spot, Area},
	"position":  {Directional, Point, Spot, Area},
	"rotation":  {Directional, Spot, Area},
	"distance":  {Point, Spot},
	"decay":     {Point, Spot},
	"angle":     {Spot},
	"penumbra":  {Spot},
	"width":     {Area},
	"height":    {Area},
}

// pathApplies reports whether the property path is valid for the kind.
func pathApplies(path string, kind Kind) bool {
	for _, k := range propKinds[path] {
		if k == kind {
			return true
		}
	}
	return false
}

// toFloat32 coerces the numeric value types callers pass through the any
// interface (terminal parsing yields float64, UI sliders float32).
func toFloat32(v any) (float32, bool) {
	switch x := v.(type) {
	case float32:
		return x, true
	case float64:
		return float32(x), true
	case int:
		return float32(x), true
	}
	return 0, false
}

// toVector3 coerces vector values: rl.Vector3 or [3]float32.
func toVector3(v any) (rl.Vector3, bool) {
	switch x := v.(type) {
	case rl.Vector3:
		return x, true
	case [3]float32:
		return rl.NewVector3(x[0], x[1], x[2]), true
	}
	return rl.Vector3{}, false
}
