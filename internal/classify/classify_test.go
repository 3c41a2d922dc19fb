package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"scene-studio/internal/scenegraph"
)

func mesh(name string) *scenegraph.Node {
	n := scenegraph.NewNode(scenegraph.KindMesh, name)
	n.Shapes = []scenegraph.Shape{{Kind: scenegraph.ShapeCube, Width: 1, Height: 1, Length: 1}}
	return n
}

func TestClassifyByName(t *testing.T) {
	tests := []struct {
		name string
		node *scenegraph.Node
		want Category
	}{
		{"plain mesh", mesh("Chair"), UserMesh},
		{"light kind", scenegraph.NewNode(scenegraph.KindLight, "Sun"), UserLight},
		{"camera kind", scenegraph.NewNode(scenegraph.KindCamera, "Main Camera"), UserCamera},
		{"empty name other kind", scenegraph.NewNode(scenegraph.KindOther, ""), Unknown},

		// exact axis codes are transform handles, even on meshes
		{"bare x", mesh("x"), TransformHandle},
		{"bare X upper", mesh("X"), TransformHandle},
		{"xyz", mesh("xyz"), TransformHandle},
		{"zyx", mesh("zyx"), TransformHandle},
		{"yxz", mesh("YXZ"), TransformHandle},
		{"padded axis code", mesh("  yz "), TransformHandle},
		{"start handle", mesh("start"), TransformHandle},

		// substring heuristics
		{"helper name", mesh("MyHelper"), SystemHelper},
		{"light helper name", mesh("PointLightHelper"), SystemLightHelper},
		{"camera helper name", mesh("CameraHelper"), SystemCameraHelper},
		{"gizmo name", mesh("rotation gizmo"), SystemGizmo},
		{"target name", mesh("SpotTarget"), SystemGizmo},
		{"selector name", mesh("light selector 2"), SystemLightHelper},
		{"grid name", mesh("floor grid"), SystemGrid},
		{"axis word", mesh("axis arm"), SystemGizmo},

		// word boundary: "taxis" and "xylophone" are user content
		{"taxis", mesh("taxis"), UserMesh},
		{"xylophone", mesh("xylophone"), UserMesh},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.node))
		})
	}
}

func TestClassifyAttrsBeatNames(t *testing.T) {
	// an engine-tagged handle keeps its category under any name
	n := mesh("Chair")
	n.SetAttr(scenegraph.AttrTransformHandle, "true")
	assert.Equal(t, TransformHandle, Classify(n))

	h := mesh("Chair")
	h.SetAttr(scenegraph.AttrLightHelper, "true")
	assert.Equal(t, SystemLightHelper, Classify(h))

	s := mesh("Chair")
	s.SetAttr(scenegraph.AttrSystem, "true")
	assert.Equal(t, SystemHelper, Classify(s))
}

func TestClassifyAncestorControlRig(t *testing.T) {
	g := scenegraph.NewGraph()
	rig := scenegraph.NewNode(scenegraph.KindGroup, "rig")
	rig.SetAttr(scenegraph.AttrTransformControl, "true")
	mid := scenegraph.NewNode(scenegraph.KindGroup, "mid")
	leaf := mesh("Chair") // innocent name, still part of the rig
	g.Add(nil, rig)
	g.Add(rig, mid)
	g.Add(mid, leaf)

	assert.Equal(t, TransformControl, Classify(leaf))
	assert.Equal(t, TransformControl, Classify(mid))
	assert.Equal(t, TransformControl, Classify(rig))
}

func TestClassifyHelperTypeTags(t *testing.T) {
	grid := scenegraph.NewNode(scenegraph.KindOther, "anything")
	grid.SetAttr(scenegraph.AttrHelperType, scenegraph.HelperTypeGrid)
	assert.Equal(t, SystemGrid, Classify(grid))

	axes := scenegraph.NewNode(scenegraph.KindOther, "anything")
	axes.SetAttr(scenegraph.AttrHelperType, scenegraph.HelperTypeAxes)
	assert.Equal(t, SystemGizmo, Classify(axes))

	lh := scenegraph.NewNode(scenegraph.KindOther, "anything")
	lh.SetAttr(scenegraph.AttrHelperType, "light-spot")
	assert.Equal(t, SystemLightHelper, Classify(lh))

	cam := scenegraph.NewNode(scenegraph.KindOther, "anything")
	cam.SetAttr(scenegraph.AttrHelperType, scenegraph.HelperTypeCamera)
	assert.Equal(t, SystemCameraHelper, Classify(cam))
}

func TestClassifyGroups(t *testing.T) {
	g := scenegraph.NewGraph()
	grp := scenegraph.NewNode(scenegraph.KindGroup, "props")
	g.Add(nil, grp)
	g.Add(grp, mesh("Chair"))
	assert.Equal(t, UserGroup, Classify(grp))

	empty := scenegraph.NewNode(scenegraph.KindGroup, "empty")
	assert.Equal(t, Unknown, Classify(empty))
}

func TestClassifyTotalAndDeterministic(t *testing.T) {
	nodes := []*scenegraph.Node{
		nil,
		mesh("xyz"),
		mesh(""),
		mesh("helper"),
		scenegraph.NewNode(scenegraph.KindOther, "\xff\xfe not utf8"),
		scenegraph.NewNode(scenegraph.KindOther, "x y z helper gizmo grid"),
	}
	for _, n := range nodes {
		first := Classify(n)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, Classify(n))
		}
	}
}
