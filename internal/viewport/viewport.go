package viewport

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-studio/internal/scenegraph"
)

const (
	gridExtent     = 50
	gridMinorStep  = 1
	gridMajorStep  = 10
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	axisLineAlpha  = 220
)

// Viewport holds the 3D camera and the editor grid. The grid is represented
// by a node in the scene graph (tagged as a built-in grid helper) so the
// classifier, outliner, and export path all see it like any other tooling
// object; its Visible flag is the single source of truth for drawing.
type Viewport struct {
	Camera   rl.Camera3D
	gridNode *scenegraph.Node
}

// New returns a viewport with a perspective camera looking at the origin and
// a grid node registered under the graph root. Camera: position (10,10,10),
// target (0,0,0), up (0,1,0), fovy 45°.
func New(g *scenegraph.Graph) *Viewport {
	v := &Viewport{}
	v.Camera.Position = rl.NewVector3(10, 10, 10)
	v.Camera.Target = rl.NewVector3(0, 0, 0)
	v.Camera.Up = rl.NewVector3(0, 1, 0)
	v.Camera.Fovy = 45
	v.Camera.Projection = rl.CameraPerspective

	grid := scenegraph.NewNode(scenegraph.KindOther, "Grid")
	grid.SetAttr(scenegraph.AttrSystem, "true")
	grid.SetAttr(scenegraph.AttrHelperType, scenegraph.HelperTypeGrid)
	g.Add(nil, grid)
	v.gridNode = grid
	return v
}

// GridVisible reports whether the editor grid is drawn.
func (v *Viewport) GridVisible() bool {
	return v.gridNode.Visible
}

// SetGridVisible sets whether the editor grid is drawn.
func (v *Viewport) SetGridVisible(visible bool) {
	v.gridNode.Visible = visible
}

// Update runs once per frame while the viewport has input focus: orbit/zoom
// via raylib's orbital camera when the right mouse button is held, wheel zoom
// otherwise.
func (v *Viewport) Update() {
	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		rl.UpdateCamera(&v.Camera, rl.CameraThirdPerson)
		return
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		rl.CameraMoveToTarget(&v.Camera, -wheel)
	}
}

// PickRay returns the world-space ray under the given screen position.
func (v *Viewport) PickRay(pos rl.Vector2) rl.Ray {
	return rl.GetScreenToWorldRay(pos, v.Camera)
}

// DrawGrid draws the XZ editor grid with minor/major lines and axis lines.
// Call between BeginMode3D and EndMode3D; no-op when the grid node is hidden
// (including during clean-render export, which hides all tooling nodes).
func (v *Viewport) DrawGrid() {
	if !v.gridNode.Visible {
		return
	}
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)

	var start, end rl.Vector3
	for x := -gridExtent; x <= gridExtent; x += gridMinorStep {
		c := major
		if x%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(x), 0, float32(-gridExtent)
		end.X, end.Y, end.Z = float32(x), 0, float32(gridExtent)
		rl.DrawLine3D(start, end, c)
	}
	for z := -gridExtent; z <= gridExtent; z += gridMinorStep {
		c := major
		if z%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(-gridExtent), 0, float32(z)
		end.X, end.Y, end.Z = float32(gridExtent), 0, float32(z)
		rl.DrawLine3D(start, end, c)
	}

	axisX := rl.NewColor(220, 80, 80, axisLineAlpha)
	axisY := rl.NewColor(80, 220, 80, axisLineAlpha)
	axisZ := rl.NewColor(80, 80, 220, axisLineAlpha)
	rl.DrawLine3D(rl.NewVector3(-gridExtent, 0, 0), rl.NewVector3(gridExtent, 0, 0), axisX)
	rl.DrawLine3D(rl.NewVector3(0, -gridExtent, 0), rl.NewVector3(0, gridExtent, 0), axisY)
	rl.DrawLine3D(rl.NewVector3(0, 0, -gridExtent), rl.NewVector3(0, 0, gridExtent), axisZ)
}
