package lights

import (
	"fmt"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-studio/internal/scenegraph"
)

// Helper visual tuning. Opacity and scale are clamped so a very bright light
// never makes its helper invisible-by-blowout or viewport-filling, and a dim
// light never makes it fully transparent.
const (
	helperAlphaMin = uint8(40)
	helperAlphaMax = uint8(220)
	helperScaleMin = float32(1)
	helperScaleMax = float32(2.5)

	// intensity value at which helper opacity/scale reach their maximum
	helperFullIntensity = float32(4)

	iconSphereRadius = float32(0.12)
	wireIconRadius   = float32(0.25)
	tripodArmLength  = float32(0.8)
	dirLineLength    = float32(2.5)

	// proxyEmissiveMax caps the emissive brightness written to an area
	// light's proxy so exported frames do not blow out.
	proxyEmissiveMax   = float32(8)
	proxyEmissiveScale = float32(1.5)
)

// clamp32 returns v limited to [lo, hi].
func clamp32(v, lo, hi float32) float32 {
	return math32.Min(hi, math32.Max(lo, v))
}

// validDimension reports whether a helper dimension can be built from v.
func validDimension(v float32) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0) && v >= 0
}

// buildHelper constructs the kind-specific helper node for a light, tagged so
// the classifier recognizes it as engine tooling and the picker can resolve
// hits on it back to the light. Ambient lights have no helper (nil, nil).
// Returns an error when the properties cannot produce finite geometry; the
// registry treats that as a partial bundle, not a failure of the light.
func buildHelper(id, name string, kind Kind, p Properties) (*scenegraph.Node, error) {
	if kind == Ambient {
		return nil, nil
	}
	tint, err := parseHexColor(p.Color)
	if err != nil {
		tint = rl.White
	}
	tint.A = helperAlpha(p.Intensity)

	shapes, err := helperShapes(kind, p, tint)
	if err != nil {
		return nil, err
	}

	h := scenegraph.NewNode(scenegraph.KindOther, name+" Helper")
	h.SetAttr(scenegraph.AttrSystem, "true")
	h.SetAttr(scenegraph.AttrHelper, "true")
	h.SetAttr(scenegraph.AttrLightHelper, "true")
	h.SetAttr(scenegraph.AttrLightSelector, "true")
	h.SetAttr(scenegraph.AttrLightID, id)
	h.SetAttr(scenegraph.AttrHelperType, "light-"+kind.String())
	h.Shapes = shapes
	return h, nil
}

// helperShapes returns the shape list for a kind. Rebuilt (not rescaled) when
// range-defining properties change, so wireframe resolution stays uniform.
func helperShapes(kind Kind, p Properties, tint rl.Color) ([]scenegraph.Shape, error) {
	icon := helperIconScale(p.Intensity)
	switch kind {
	case Point:
		if !validDimension(p.Distance) {
			return nil, fmt.Errorf("point light range %v is not drawable", p.Distance)
		}
		shapes := []scenegraph.Shape{
			{Kind: scenegraph.ShapeSphere, Radius: iconSphereRadius * icon, Color: tint, Icon: true},
			{Kind: scenegraph.ShapeWireSphere, Radius: wireIconRadius * icon, Color: tint, Icon: true},
		}
		if p.Distance > 0 {
			shapes = append(shapes, scenegraph.Shape{
				Kind: scenegraph.ShapeWireSphere, Radius: p.Distance,
				Color: scenegraph.WithAlpha(tint, tint.A/2),
			})
		}
		return shapes, nil
	case Spot:
		if !validDimension(p.Distance) || !validDimension(p.Angle) || p.Angle >= 90 {
			return nil, fmt.Errorf("spot cone (range %v, angle %v) is not drawable", p.Distance, p.Angle)
		}
		length := p.Distance
		if length == 0 {
			length = dirLineLength
		}
		base := length * math32.Tan(p.Angle*math32.Pi/180)
		return []scenegraph.Shape{
			{Kind: scenegraph.ShapeSphere, Radius: iconSphereRadius * icon, Color: tint, Icon: true},
			{Kind: scenegraph.ShapeWireCone, Radius: base, Height: length, Color: tint},
			// direction line down the cone axis (-Z before rotation)
			{Kind: scenegraph.ShapeLine, To: rl.NewVector3(0, 0, -length), Color: tint},
		}, nil
	case Directional:
		return []scenegraph.Shape{
			{Kind: scenegraph.ShapeAxisTripod, Length: tripodArmLength, Color: tint},
			{Kind: scenegraph.ShapeLine, To: rl.NewVector3(0, 0, -dirLineLength), Color: tint},
		}, nil
	case Area:
		if !validDimension(p.Width) || !validDimension(p.Height) {
			return nil, fmt.Errorf("area bounds %vx%v are not drawable", p.Width, p.Height)
		}
		return []scenegraph.Shape{
			{Kind: scenegraph.ShapeWirePlane, Width: p.Width, Length: p.Height, Color: tint},
			{Kind: scenegraph.ShapeCornerMarkers, Width: p.Width, Length: p.Height, Color: tint},
		}, nil
	}
	return nil, fmt.Errorf("no helper for %s lights", kind)
}

// buildProxy constructs the emissive proxy surface for an area light: a plane
// matching the light bounds that glows in renders, so the light source itself
// is visible. The proxy is part of the light's look, not tooling, so it is
// not tagged as a system object and survives clean-render export.
func buildProxy(id, name string, p Properties) (*scenegraph.Node, error) {
	if !validDimension(p.Width) || !validDimension(p.Height) || p.Width == 0 || p.Height == 0 {
		return nil, fmt.Errorf("area bounds %vx%v cannot emit", p.Width, p.Height)
	}
	c, err := parseHexColor(p.Color)
	if err != nil {
		c = rl.White
	}
	proxy := scenegraph.NewNode(scenegraph.KindMesh, name+" Emitter")
	proxy.SetAttr(scenegraph.AttrLightID, id)
	proxy.SetAttr(scenegraph.AttrLightProxy, "true")
	proxy.SetAttr(scenegraph.AttrLightSelector, "true")
	proxy.Shapes = []scenegraph.Shape{{
		Kind: scenegraph.ShapePlane, Width: p.Width, Length: p.Height,
		Color: c, Emissive: proxyEmissive(p.Intensity),
	}}
	return proxy, nil
}

// helperAlpha maps light intensity to helper opacity, clamped to
// [helperAlphaMin, helperAlphaMax].
func helperAlpha(intensity float32) uint8 {
	t := clamp32(intensity/helperFullIntensity, 0, 1)
	a := float32(helperAlphaMin) + t*float32(helperAlphaMax-helperAlphaMin)
	return uint8(clamp32(a, float32(helperAlphaMin), float32(helperAlphaMax)))
}

// helperIconScale maps light intensity to the helper icon scale factor,
// clamped to [helperScaleMin, helperScaleMax].
func helperIconScale(intensity float32) float32 {
	t := clamp32(intensity/helperFullIntensity, 0, 1)
	return clamp32(helperScaleMin+t*(helperScaleMax-helperScaleMin), helperScaleMin, helperScaleMax)
}

// proxyEmissive maps light intensity to proxy emissive brightness, clamped so
// the surface never blows out.
func proxyEmissive(intensity float32) float32 {
	return clamp32(intensity*proxyEmissiveScale, 0, proxyEmissiveMax)
}

// tintShapes replaces the RGB of every shape color, preserving each shape's
// alpha (range indicators run at half opacity).
func tintShapes(shapes []scenegraph.Shape, tint rl.Color) {
	for i := range shapes {
		a := shapes[i].Color.A
		shapes[i].Color = scenegraph.WithAlpha(tint, a)
	}
}

// setShapesAlpha sets every shape alpha to the new base value, keeping the
// relative halving of range indicators intact.
func setShapesAlpha(shapes []scenegraph.Shape, base uint8) {
	for i := range shapes {
		if shapes[i].Kind == scenegraph.ShapeWireSphere && !shapes[i].Icon {
			shapes[i].Color.A = base / 2
		} else {
			shapes[i].Color.A = base
		}
	}
}

// updateIconScale resizes the intensity-tracking icon shapes in place.
func updateIconScale(shapes []scenegraph.Shape, intensity float32) {
	f := helperIconScale(intensity)
	for i := range shapes {
		if !shapes[i].Icon {
			continue
		}
		switch shapes[i].Kind {
		case scenegraph.ShapeSphere:
			shapes[i].Radius = iconSphereRadius * f
		case scenegraph.ShapeWireSphere:
			shapes[i].Radius = wireIconRadius * f
		}
	}
}
