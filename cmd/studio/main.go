package main

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-studio/internal/classify"
	"scene-studio/internal/debug"
	"scene-studio/internal/engineconfig"
	"scene-studio/internal/graphics"
	"scene-studio/internal/lights"
	"scene-studio/internal/logger"
	"scene-studio/internal/picking"
	"scene-studio/internal/render"
	"scene-studio/internal/scenegraph"
	"scene-studio/internal/terminal"
	"scene-studio/internal/ui"
	"scene-studio/internal/viewport"
)

// app holds the per-session editor state shared by the update/draw loop and
// the terminal commands. Everything is constructed once in main and passed by
// reference; no package keeps global state.
type app struct {
	log      *logger.Logger
	graph    *scenegraph.Graph
	registry *lights.Registry
	view     *viewport.Viewport
	renderer *render.Renderer
	resolver *picking.Resolver
	outliner *ui.Outliner
	panel    *ui.LightPanel
	term     *terminal.Terminal
	dbg      *debug.Debug
	prefs    engineconfig.Prefs

	// selection: at most one of these is set
	selectedLight string
	selectedNode  string
}

func main() {
	a := &app{}
	a.log = logger.New()
	a.graph = scenegraph.NewGraph()
	a.registry = lights.NewRegistry(a.graph, a.log)
	a.view = viewport.New(a.graph)
	a.renderer = render.New()
	a.resolver = picking.NewResolver()
	a.outliner = ui.NewOutliner()
	a.panel = ui.NewLightPanel()
	a.dbg = debug.New()

	a.prefs, _ = engineconfig.Load()
	a.view.SetGridVisible(a.prefs.GridVisible)
	a.outliner.ShowHelpers = a.prefs.ShowHelpers
	a.dbg.ShowFPS = a.prefs.ShowFPS
	a.dbg.ShowMemAlloc = a.prefs.ShowMemAlloc

	a.term = terminal.New(a.log, a.commands())
	a.log.Info("scene studio ready; press ESC for the command bar")

	graphics.Run(a.update, a.draw)
}

// update runs input and editor logic once per frame, before drawing.
func (a *app) update() {
	a.term.Update()
	if a.term.IsOpen() {
		return
	}
	a.view.Update()
	a.updateSelection()
}

// updateSelection feeds pointer events into the selection resolver and
// applies the resolved hit. A drag (camera orbit) changes no selection.
func (a *app) updateSelection() {
	pos := rl.GetMousePosition()
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		a.resolver.PointerDown(pos)
	}
	a.resolver.PointerMove(pos)
	if !rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		return
	}
	pickable := classify.Filter(a.graph.Nodes(), classify.PickableQuery())
	hit, ok, changed := a.resolver.PointerUp(a.view.PickRay(pos), pickable)
	if !changed {
		return
	}
	a.selectedLight = ""
	a.selectedNode = ""
	if !ok {
		return
	}
	if hit.LightID != "" {
		a.selectedLight = hit.LightID
		if l, found := a.registry.Get(hit.LightID); found {
			a.log.Debug("selected light " + l.Name)
		}
		return
	}
	a.selectedNode = hit.Node.ID
	a.log.Debug("selected " + hit.Node.Name)
}

// draw renders the 3D viewport, then the 2D panels and overlays.
func (a *app) draw() {
	cam := a.view.Camera
	a.renderer.SetView(
		[3]float32{cam.Position.X, cam.Position.Y, cam.Position.Z},
		[3]float32{0.5, 1, 0.5},
	)

	rl.BeginMode3D(cam)
	a.view.DrawGrid()
	a.renderer.DrawGraph(a.graph)
	rl.EndMode3D()

	entries := classify.Filter(a.graph.Nodes(), classify.OutlinerQuery(a.outliner.ShowHelpers))
	a.outliner.Draw(entries, a.selectionRowID())
	if a.selectedLight != "" {
		l, ok := a.registry.Get(a.selectedLight)
		a.panel.Draw(l, ok)
	}
	a.term.Draw()
	a.dbg.Draw(debug.Stats{Nodes: len(a.graph.Nodes()), Lights: a.registry.Count()})
}

// selectionRowID is the node id to highlight in the outliner: the selected
// node, or the selected light's light node.
func (a *app) selectionRowID() string {
	if a.selectedNode != "" {
		return a.selectedNode
	}
	if a.selectedLight != "" {
		if l, ok := a.registry.Get(a.selectedLight); ok {
			return l.LightNodeID
		}
	}
	return ""
}

// exportFrame renders one clean frame (tooling hidden) and saves it.
func (a *app) exportFrame() (string, error) {
	return render.ExportFrame(a.graph, func() error {
		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(24, 26, 30, 255))
		rl.BeginMode3D(a.view.Camera)
		a.renderer.DrawGraph(a.graph)
		rl.EndMode3D()
		rl.EndDrawing()
		return nil
	})
}

// savePrefs persists the current toggles.
func (a *app) savePrefs() {
	a.prefs.GridVisible = a.view.GridVisible()
	a.prefs.ShowHelpers = a.outliner.ShowHelpers
	a.prefs.ShowFPS = a.dbg.ShowFPS
	a.prefs.ShowMemAlloc = a.dbg.ShowMemAlloc
	if err := engineconfig.Save(a.prefs); err != nil {
		a.log.Warn("save prefs: " + err.Error())
	}
}
