package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-studio/internal/scenegraph"
)

// Renderer draws the scene graph each frame. Solid shapes go through the lazy
// mesh cache with the lit shader; wire shapes use raylib's immediate line
// drawing. Construct one per session; it holds GPU-side caches only.
type Renderer struct {
	meshes *meshCache
}

// New returns a renderer with empty caches. GPU resources are created lazily
// during the first DrawGraph call, after the window exists.
func New() *Renderer {
	return &Renderer{meshes: newMeshCache()}
}

// SetView sets the camera position and direction-to-light used by the lit
// shader this frame. Call once per frame before DrawGraph.
func (r *Renderer) SetView(viewPos, lightDir [3]float32) {
	r.meshes.setView(viewPos, lightDir)
}

// DrawGraph draws every visible node. Must be called between BeginMode3D and
// EndMode3D. Node transforms (position, Euler rotation, scale) apply to all
// of the node's shapes.
func (r *Renderer) DrawGraph(g *scenegraph.Graph) {
	g.Walk(func(n *scenegraph.Node) {
		if !n.Visible || len(n.Shapes) == 0 {
			return
		}
		r.drawNode(n)
	})
}

func (r *Renderer) drawNode(n *scenegraph.Node) {
	rl.PushMatrix()
	rl.Translatef(n.Position.X, n.Position.Y, n.Position.Z)
	rl.Rotatef(n.Rotation.Z, 0, 0, 1)
	rl.Rotatef(n.Rotation.Y, 0, 1, 0)
	rl.Rotatef(n.Rotation.X, 1, 0, 0)
	rl.Scalef(nonZero(n.Scale.X), nonZero(n.Scale.Y), nonZero(n.Scale.Z))

	for _, s := range n.Shapes {
		r.drawShape(s)
	}
	rl.PopMatrix()
}

// drawShape draws one shape in node-local space (the node transform is
// already on the matrix stack).
func (r *Renderer) drawShape(s scenegraph.Shape) {
	var origin rl.Vector3
	switch s.Kind {
	case scenegraph.ShapeSphere:
		rl.DrawSphereEx(origin, s.Radius, sphereRings, sphereSlices, s.Color)
	case scenegraph.ShapeWireSphere:
		rl.DrawSphereWires(origin, s.Radius, wireRings(s.Radius), wireSlices(s.Radius), s.Color)
	case scenegraph.ShapeCube:
		r.meshes.draw("cube", s.Color, s.Emissive,
			rl.MatrixScale(nonZero(s.Width), nonZero(s.Height), nonZero(s.Length)))
	case scenegraph.ShapeWireCone:
		// apex at the origin, base down the -Z axis
		apex := origin
		base := rl.NewVector3(0, 0, -s.Height)
		rl.DrawCylinderWiresEx(apex, base, 0, s.Radius, coneSlices, s.Color)
	case scenegraph.ShapeLine:
		rl.DrawLine3D(s.From, s.To, s.Color)
	case scenegraph.ShapePlane:
		r.meshes.draw("plane", s.Color, s.Emissive,
			rl.MatrixScale(nonZero(s.Width), 1, nonZero(s.Length)))
	case scenegraph.ShapeWirePlane:
		drawWireRect(s.Width, s.Length, s.Color)
	case scenegraph.ShapeCornerMarkers:
		drawCornerMarkers(s.Width, s.Length, s.Color)
	case scenegraph.ShapeAxisTripod:
		drawAxisTripod(s.Length, s.Color)
	}
}

// Wireframe resolution grows with radius so big range indicators stay smooth.
// This is why range changes rebuild helper geometry instead of rescaling it.
func wireRings(radius float32) int32 {
	if radius > 4 {
		return 24
	}
	return 12
}

func wireSlices(radius float32) int32 {
	if radius > 4 {
		return 24
	}
	return 12
}

const coneSlices = 16

// markerSize is the edge length of area-light corner cubes.
const markerSize = float32(0.06)

// drawWireRect draws a w x l rectangle outline on the XZ plane.
func drawWireRect(w, l float32, c rl.Color) {
	hw, hl := w/2, l/2
	corners := [4]rl.Vector3{
		rl.NewVector3(-hw, 0, -hl),
		rl.NewVector3(hw, 0, -hl),
		rl.NewVector3(hw, 0, hl),
		rl.NewVector3(-hw, 0, hl),
	}
	for i := range corners {
		rl.DrawLine3D(corners[i], corners[(i+1)%4], c)
	}
}

// drawCornerMarkers draws a small cube at each corner of a w x l rectangle.
func drawCornerMarkers(w, l float32, c rl.Color) {
	hw, hl := w/2, l/2
	for _, p := range [4]rl.Vector3{
		rl.NewVector3(-hw, 0, -hl),
		rl.NewVector3(hw, 0, -hl),
		rl.NewVector3(hw, 0, hl),
		rl.NewVector3(-hw, 0, hl),
	} {
		rl.DrawCubeV(p, rl.NewVector3(markerSize, markerSize, markerSize), c)
	}
}

// drawAxisTripod draws three arm pairs along +-X/Y/Z, tinted toward the
// standard axis colors but carrying the helper tint's alpha.
func drawAxisTripod(arm float32, c rl.Color) {
	axisX := rl.NewColor(220, 80, 80, c.A)
	axisY := rl.NewColor(80, 220, 80, c.A)
	axisZ := rl.NewColor(80, 80, 220, c.A)
	rl.DrawLine3D(rl.NewVector3(-arm, 0, 0), rl.NewVector3(arm, 0, 0), axisX)
	rl.DrawLine3D(rl.NewVector3(0, -arm, 0), rl.NewVector3(0, arm, 0), axisY)
	rl.DrawLine3D(rl.NewVector3(0, 0, -arm), rl.NewVector3(0, 0, arm), axisZ)
}

func nonZero(v float32) float32 {
	if v == 0 {
		return 1
	}
	return v
}
