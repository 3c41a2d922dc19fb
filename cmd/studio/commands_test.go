package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scene-studio/internal/lights"
	"scene-studio/internal/logger"
	"scene-studio/internal/scenegraph"
)

func newTestApp(t *testing.T) *app {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	a := &app{}
	a.log = logger.New()
	a.graph = scenegraph.NewGraph()
	a.registry = lights.NewRegistry(a.graph, a.log)
	return a
}

func TestSelectByName(t *testing.T) {
	a := newTestApp(t)
	require.NoError(t, a.addMesh("cube", "Crate"))
	a.selectedNode = ""

	require.NoError(t, a.cmdSelect([]string{"crate"}))
	n := a.graph.FindByID(a.selectedNode)
	require.NotNil(t, n)
	assert.Equal(t, "Crate", n.Name, "name matching is case-insensitive")
	assert.Empty(t, a.selectedLight)
}

func TestSelectByID(t *testing.T) {
	a := newTestApp(t)
	require.NoError(t, a.addMesh("sphere", "Ball"))
	id := a.selectedNode
	a.selectedNode = ""

	require.NoError(t, a.cmdSelect([]string{id}))
	assert.Equal(t, id, a.selectedNode)
}

func TestSelectLightByName(t *testing.T) {
	a := newTestApp(t)
	id, err := a.registry.Create(lights.Point, lights.Properties{})
	require.NoError(t, err)
	a.selectedLight = ""

	require.NoError(t, a.cmdSelect([]string{"Point", "Light", "1"}))
	assert.Equal(t, id, a.selectedLight, "a light-owned node selects the light")
	assert.Empty(t, a.selectedNode)
}

func TestSelectNoneClears(t *testing.T) {
	a := newTestApp(t)
	require.NoError(t, a.addMesh("cube", ""))
	require.NotEmpty(t, a.selectedNode)

	require.NoError(t, a.cmdSelect([]string{"none"}))
	assert.Empty(t, a.selectedNode)
	assert.Empty(t, a.selectedLight)
}

func TestSelectUnknownOrTooling(t *testing.T) {
	a := newTestApp(t)
	require.NoError(t, a.addMesh("cube", "Crate"))
	keep := a.selectedNode

	assert.Error(t, a.cmdSelect([]string{"no", "such", "thing"}))
	assert.Equal(t, keep, a.selectedNode, "a failed select leaves the selection alone")

	// Tooling never resolves by name, only user content and helpers do.
	gizmo := scenegraph.NewNode(scenegraph.KindOther, "MoveGizmo")
	gizmo.SetAttr(scenegraph.AttrGizmo, "true")
	a.graph.Add(nil, gizmo)
	assert.Error(t, a.cmdSelect([]string{"MoveGizmo"}))
}
