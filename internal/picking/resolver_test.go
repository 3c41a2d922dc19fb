package picking

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scene-studio/internal/classify"
	"scene-studio/internal/scenegraph"
)

func pickableMesh(name string, z float32) classify.Entry {
	n := scenegraph.NewNode(scenegraph.KindMesh, name)
	n.Position = rl.NewVector3(0, 0, z)
	n.Shapes = []scenegraph.Shape{{Kind: scenegraph.ShapeCube, Width: 1, Height: 1, Length: 1}}
	return classify.Entry{Node: n, Category: classify.UserMesh}
}

func selectorFor(lightID string, z float32) classify.Entry {
	n := scenegraph.NewNode(scenegraph.KindOther, "Lamp Helper")
	n.Position = rl.NewVector3(0, 0, z)
	n.SetAttr(scenegraph.AttrLightSelector, "true")
	n.SetAttr(scenegraph.AttrLightID, lightID)
	n.Shapes = []scenegraph.Shape{{Kind: scenegraph.ShapeSphere, Radius: 0.2, Icon: true}}
	return classify.Entry{Node: n, Category: classify.SystemLightHelper}
}

func TestResolveNearestWins(t *testing.T) {
	near := pickableMesh("near", 0)
	far := pickableMesh("far", 5)

	hit, ok := Resolve(zRay(0, 0), []classify.Entry{far, near})
	require.True(t, ok)
	assert.Same(t, near.Node, hit.Node)
	assert.Empty(t, hit.LightID)
}

func TestResolveSelectorYieldsLight(t *testing.T) {
	sel := selectorFor("L1", 0)
	behind := pickableMesh("wall", 5)

	hit, ok := Resolve(zRay(0, 0), []classify.Entry{behind, sel})
	require.True(t, ok)
	assert.Equal(t, "L1", hit.LightID, "selector hits resolve to the owning light")
	assert.Same(t, sel.Node, hit.Node)
}

func TestResolveMiss(t *testing.T) {
	_, ok := Resolve(zRay(50, 50), []classify.Entry{pickableMesh("a", 0)})
	assert.False(t, ok)

	_, ok = Resolve(zRay(0, 0), nil)
	assert.False(t, ok)
}

func TestClickSelects(t *testing.T) {
	r := NewResolver()
	target := pickableMesh("a", 0)

	r.PointerDown(rl.NewVector2(100, 100))
	r.PointerMove(rl.NewVector2(101, 100)) // under threshold
	hit, ok, changed := r.PointerUp(zRay(0, 0), []classify.Entry{target})
	require.True(t, changed, "a click resolves selection")
	require.True(t, ok)
	assert.Same(t, target.Node, hit.Node)
}

func TestDragDoesNotSelect(t *testing.T) {
	r := NewResolver()
	other := pickableMesh("b", 0)

	r.PointerDown(rl.NewVector2(100, 100))
	r.PointerMove(rl.NewVector2(120, 100)) // 20px: a drag
	assert.True(t, r.Dragging())
	_, ok, changed := r.PointerUp(zRay(0, 0), []classify.Entry{other})
	assert.False(t, changed, "releasing a drag changes no selection")
	assert.False(t, ok)

	// the resolver is reusable for the next gesture
	r.PointerDown(rl.NewVector2(10, 10))
	_, ok, changed = r.PointerUp(zRay(0, 0), []classify.Entry{other})
	assert.True(t, changed)
	assert.True(t, ok)
}

func TestReleaseWithoutPressChangesNothing(t *testing.T) {
	r := NewResolver()
	target := pickableMesh("a", 0)

	// The press went to another surface (terminal open), so only the
	// release reaches the resolver.
	_, ok, changed := r.PointerUp(zRay(0, 0), []classify.Entry{target})
	assert.False(t, changed, "a release with no recorded press is not a click")
	assert.False(t, ok)

	// Movement without a press must not arm anything either.
	r.PointerMove(rl.NewVector2(300, 300))
	_, ok, changed = r.PointerUp(zRay(0, 0), []classify.Entry{target})
	assert.False(t, changed)
	assert.False(t, ok)
}

func TestClickMissClearsSelection(t *testing.T) {
	r := NewResolver()
	r.PointerDown(rl.NewVector2(0, 0))
	_, ok, changed := r.PointerUp(zRay(50, 50), []classify.Entry{pickableMesh("a", 0)})
	assert.True(t, changed, "a miss still resolves, to nothing selected")
	assert.False(t, ok)
}
