package scenegraph

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraphAddRemove(t *testing.T) {
	g := NewGraph()
	a := NewNode(KindMesh, "a")
	b := NewNode(KindMesh, "b")
	child := NewNode(KindMesh, "child")

	g.Add(nil, a)
	g.Add(nil, b)
	g.Add(a, child)

	require.Len(t, g.Nodes(), 3)
	assert.Same(t, a, child.Parent())
	assert.Same(t, g.Root(), a.Parent())

	require.True(t, g.Remove(a))
	// subtree goes with it
	assert.Len(t, g.Nodes(), 1)
	assert.Nil(t, g.FindByID(child.ID))

	assert.False(t, g.Remove(a), "already detached")
	assert.False(t, g.Remove(nil))
	assert.False(t, g.Remove(g.Root()))
}

func TestGraphWalkOrder(t *testing.T) {
	g := NewGraph()
	a := NewNode(KindGroup, "a")
	b := NewNode(KindMesh, "b")
	a1 := NewNode(KindMesh, "a1")
	a2 := NewNode(KindMesh, "a2")
	g.Add(nil, a)
	g.Add(nil, b)
	g.Add(a, a1)
	g.Add(a, a2)

	var names []string
	g.Walk(func(n *Node) { names = append(names, n.Name) })
	assert.Equal(t, []string{"a", "a1", "a2", "b"}, names, "depth-first pre-order, insertion order")
}

func TestGraphReparentKeepsSingleParent(t *testing.T) {
	g := NewGraph()
	a := NewNode(KindGroup, "a")
	b := NewNode(KindGroup, "b")
	n := NewNode(KindMesh, "n")
	g.Add(nil, a)
	g.Add(nil, b)
	g.Add(a, n)
	g.Add(b, n)

	assert.Same(t, b, n.Parent())
	assert.Empty(t, a.Children())
	assert.Len(t, g.Nodes(), 3)
}

func TestNodesWithAttr(t *testing.T) {
	g := NewGraph()
	a := NewNode(KindOther, "a")
	a.SetAttr(AttrLightID, "L1")
	b := NewNode(KindOther, "b")
	b.SetAttr(AttrLightID, "L2")
	g.Add(nil, a)
	g.Add(nil, b)

	got := g.NodesWithAttr(AttrLightID, "L1")
	require.Len(t, got, 1)
	assert.Same(t, a, got[0])
}

func TestBoundingBoxFromShapes(t *testing.T) {
	n := NewNode(KindMesh, "s")
	n.Position = rl.NewVector3(2, 0, 0)
	n.Shapes = []Shape{{Kind: ShapeSphere, Radius: 1}}

	box := n.BoundingBox()
	assert.InDelta(t, 1, box.Min.X, 1e-5)
	assert.InDelta(t, 3, box.Max.X, 1e-5)
	assert.InDelta(t, -1, box.Min.Y, 1e-5)
	assert.InDelta(t, 1, box.Max.Y, 1e-5)
}

func TestBoundingBoxDefaultsToUnit(t *testing.T) {
	n := NewNode(KindOther, "empty")
	box := n.BoundingBox()
	assert.InDelta(t, -0.5, box.Min.X, 1e-5)
	assert.InDelta(t, 0.5, box.Max.X, 1e-5)
}

func TestTransformHelpers(t *testing.T) {
	a := NewNode(KindLight, "a")
	a.Position = rl.NewVector3(1, 2, 3)
	a.Rotation = rl.NewVector3(0, 45, 0)
	b := NewNode(KindOther, "b")
	assert.False(t, a.SameTransform(b))

	b.CopyTransformFrom(a)
	assert.True(t, a.SameTransform(b))
}
