package picking

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scene-studio/internal/scenegraph"
)

func zRay(x, y float32) rl.Ray {
	return rl.Ray{
		Position:  rl.NewVector3(x, y, -10),
		Direction: rl.NewVector3(0, 0, 1),
	}
}

func TestRaySphere(t *testing.T) {
	center := rl.NewVector3(0, 0, 0)

	tt, ok := raySphere(zRay(0, 0), center, 1)
	require.True(t, ok)
	assert.InDelta(t, 9, tt, 1e-4, "hits the near surface")

	_, ok = raySphere(zRay(2, 0), center, 1)
	assert.False(t, ok, "misses to the side")

	// origin inside: still a hit, at the far surface
	inside := rl.Ray{Position: center, Direction: rl.NewVector3(0, 0, 1)}
	tt, ok = raySphere(inside, center, 1)
	require.True(t, ok)
	assert.InDelta(t, 1, tt, 1e-4)

	// sphere entirely behind the ray
	behind := rl.Ray{Position: rl.NewVector3(0, 0, 5), Direction: rl.NewVector3(0, 0, 1)}
	_, ok = raySphere(behind, center, 1)
	assert.False(t, ok)
}

func TestRayBox(t *testing.T) {
	box := rl.NewBoundingBox(rl.NewVector3(-1, -1, -1), rl.NewVector3(1, 1, 1))

	tt, ok := rayBox(zRay(0, 0), box)
	require.True(t, ok)
	assert.InDelta(t, 9, tt, 1e-4)

	_, ok = rayBox(zRay(3, 0), box)
	assert.False(t, ok)

	// axis-parallel ray offset outside one slab
	miss := rl.Ray{Position: rl.NewVector3(0, 5, -10), Direction: rl.NewVector3(0, 0, 1)}
	_, ok = rayBox(miss, box)
	assert.False(t, ok)

	// behind the origin
	behind := rl.Ray{Position: rl.NewVector3(0, 0, 5), Direction: rl.NewVector3(0, 0, 1)}
	_, ok = rayBox(behind, box)
	assert.False(t, ok)
}

func TestHitNodePrefersIconSphereOverRangeIndicator(t *testing.T) {
	n := scenegraph.NewNode(scenegraph.KindOther, "helper")
	n.Shapes = []scenegraph.Shape{
		{Kind: scenegraph.ShapeWireSphere, Radius: 10}, // range indicator
		{Kind: scenegraph.ShapeSphere, Radius: 0.12, Icon: true},
	}

	// a ray passing well inside the range sphere but far from the icon
	_, ok := hitNode(zRay(3, 0), n)
	assert.False(t, ok, "range indicator is not a pick target")

	_, ok = hitNode(zRay(0, 0), n)
	assert.True(t, ok, "icon itself is clickable (with the minimum pick radius)")
}
