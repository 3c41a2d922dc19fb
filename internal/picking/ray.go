package picking

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-studio/internal/scenegraph"
)

// Ray math is implemented CPU-side so hit testing needs no window or GL
// context. Directions are assumed normalized by the caller (raylib's
// GetScreenToWorldRay returns them normalized).

// rayBox is the slab test against an AABB. Returns the nearest non-negative
// ray parameter and whether the ray hits.
func rayBox(ray rl.Ray, box rl.BoundingBox) (float32, bool) {
	tmin := float32(0)
	tmax := float32(math32.MaxFloat32)

	mins := [3]float32{box.Min.X, box.Min.Y, box.Min.Z}
	maxs := [3]float32{box.Max.X, box.Max.Y, box.Max.Z}
	orig := [3]float32{ray.Position.X, ray.Position.Y, ray.Position.Z}
	dir := [3]float32{ray.Direction.X, ray.Direction.Y, ray.Direction.Z}

	for i := 0; i < 3; i++ {
		if math32.Abs(dir[i]) < 1e-8 {
			if orig[i] < mins[i] || orig[i] > maxs[i] {
				return 0, false
			}
			continue
		}
		inv := 1 / dir[i]
		t0 := (mins[i] - orig[i]) * inv
		t1 := (maxs[i] - orig[i]) * inv
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t0 > tmin {
			tmin = t0
		}
		if t1 < tmax {
			tmax = t1
		}
		if tmin > tmax {
			return 0, false
		}
	}
	return tmin, true
}

// raySphere intersects the ray with a sphere. Returns the nearest
// non-negative ray parameter and whether the ray hits.
func raySphere(ray rl.Ray, center rl.Vector3, radius float32) (float32, bool) {
	ox := ray.Position.X - center.X
	oy := ray.Position.Y - center.Y
	oz := ray.Position.Z - center.Z
	d := ray.Direction

	b := ox*d.X + oy*d.Y + oz*d.Z
	c := ox*ox + oy*oy + oz*oz - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := math32.Sqrt(disc)
	t := -b - sq
	if t < 0 {
		t = -b + sq
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}

// hitNode tests the ray against a node's pick volume: a bounding sphere when
// the node's first shape is spherical (light helper icons read better with a
// round target), otherwise the node's AABB.
func hitNode(ray rl.Ray, n *scenegraph.Node) (float32, bool) {
	for _, s := range n.Shapes {
		if s.Kind == scenegraph.ShapeSphere || s.Kind == scenegraph.ShapeWireSphere {
			r := s.Radius
			if r < minPickRadius {
				r = minPickRadius
			}
			if !s.Icon && s.Radius > 1 {
				// Range indicators are huge; pick against the icon instead.
				continue
			}
			return raySphere(ray, n.Position, r*maxScale(n))
		}
	}
	return rayBox(ray, n.BoundingBox())
}

// minPickRadius keeps tiny helper icons clickable.
const minPickRadius = float32(0.2)

func maxScale(n *scenegraph.Node) float32 {
	m := n.Scale.X
	if n.Scale.Y > m {
		m = n.Scale.Y
	}
	if n.Scale.Z > m {
		m = n.Scale.Z
	}
	if m <= 0 {
		m = 1
	}
	return m
}
