package classify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scene-studio/internal/scenegraph"
)

func buildScene(t *testing.T) (*scenegraph.Graph, map[string]*scenegraph.Node) {
	t.Helper()
	g := scenegraph.NewGraph()
	ns := map[string]*scenegraph.Node{}

	add := func(key string, n *scenegraph.Node) {
		g.Add(nil, n)
		ns[key] = n
	}

	add("chair", mesh("Chair"))
	add("lamp", scenegraph.NewNode(scenegraph.KindLight, "Lamp"))

	helper := scenegraph.NewNode(scenegraph.KindOther, "Lamp Helper")
	helper.SetAttr(scenegraph.AttrSystem, "true")
	helper.SetAttr(scenegraph.AttrHelper, "true")
	helper.SetAttr(scenegraph.AttrLightHelper, "true")
	helper.SetAttr(scenegraph.AttrLightSelector, "true")
	helper.SetAttr(scenegraph.AttrLightID, "L1")
	add("helper", helper)

	gizmo := scenegraph.NewNode(scenegraph.KindOther, "move gizmo")
	gizmo.SetAttr(scenegraph.AttrGizmo, "true")
	add("gizmo", gizmo)

	handle := mesh("x")
	add("handle", handle)

	rig := scenegraph.NewNode(scenegraph.KindGroup, "rig")
	rig.SetAttr(scenegraph.AttrTransformControl, "true")
	add("rig", rig)

	return g, ns
}

func TestOutlinerNeverShowsTooling(t *testing.T) {
	g, _ := buildScene(t)
	for _, showHelpers := range []bool{false, true} {
		for _, e := range Filter(g.Nodes(), OutlinerQuery(showHelpers)) {
			assert.NotEqual(t, TransformControl, e.Category)
			assert.NotEqual(t, TransformHandle, e.Category)
			assert.NotEqual(t, SystemGizmo, e.Category)
		}
	}
}

func TestOutlinerHelperToggle(t *testing.T) {
	g, ns := buildScene(t)

	names := func(entries []Entry) []string {
		var out []string
		for _, e := range entries {
			out = append(out, e.Node.Name)
		}
		return out
	}

	without := Filter(g.Nodes(), OutlinerQuery(false))
	assert.NotContains(t, names(without), ns["helper"].Name)

	with := Filter(g.Nodes(), OutlinerQuery(true))
	assert.Contains(t, names(with), ns["helper"].Name)
}

func TestPickableSet(t *testing.T) {
	g, ns := buildScene(t)

	entries := Filter(g.Nodes(), PickableQuery())
	var picked []*scenegraph.Node
	for _, e := range entries {
		picked = append(picked, e.Node)
	}
	// user mesh plus the light-selector helper; no gizmo, rig, light, or
	// the axis-named handle
	assert.Contains(t, picked, ns["chair"])
	assert.Contains(t, picked, ns["helper"])
	assert.NotContains(t, picked, ns["gizmo"])
	assert.NotContains(t, picked, ns["rig"])
	assert.NotContains(t, picked, ns["lamp"])
	assert.NotContains(t, picked, ns["handle"])

	// invisible nodes drop out, selectors included
	ns["chair"].Visible = false
	ns["helper"].Visible = false
	entries = Filter(g.Nodes(), PickableQuery())
	assert.Empty(t, entries)
}

func TestFilterPreservesOrder(t *testing.T) {
	g := scenegraph.NewGraph()
	for _, name := range []string{"c", "a", "b"} {
		g.Add(nil, mesh(name))
	}
	entries := Filter(g.Nodes(), OutlinerQuery(false))
	require.Len(t, entries, 3)
	assert.Equal(t, "c", entries[0].Node.Name)
	assert.Equal(t, "a", entries[1].Node.Name)
	assert.Equal(t, "b", entries[2].Node.Name)
}

func TestHideToolingDuring(t *testing.T) {
	g, ns := buildScene(t)
	ns["gizmo"].Visible = true
	ns["helper"].Visible = true
	ns["chair"].Visible = true

	err := HideToolingDuring(g, func() error {
		assert.False(t, ns["gizmo"].Visible, "tooling hidden during render")
		assert.False(t, ns["helper"].Visible)
		assert.True(t, ns["chair"].Visible, "user content untouched")
		return nil
	})
	require.NoError(t, err)
	assert.True(t, ns["gizmo"].Visible, "visibility restored")
	assert.True(t, ns["helper"].Visible)
}

func TestHideToolingRestoresOnError(t *testing.T) {
	g, ns := buildScene(t)
	// a helper the user had already hidden stays hidden afterward
	ns["helper"].Visible = false

	boom := errors.New("render failed")
	err := HideToolingDuring(g, func() error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.True(t, ns["gizmo"].Visible)
	assert.False(t, ns["helper"].Visible, "prior state restored, not forced on")
}
