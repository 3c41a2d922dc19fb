package picking

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-studio/internal/classify"
	"scene-studio/internal/scenegraph"
)

// DragThresholdPx is how far (in pixels) the pointer may move between press
// and release and still count as a click. Anything farther is a camera-orbit
// drag and changes no selection.
const DragThresholdPx = float32(5)

// state tracks the pointer interaction: Idle until a press, Pressed until
// movement past the threshold (Dragging) or release (click).
type state int

const (
	stateIdle state = iota
	statePressed
	stateDragging
)

// Hit is a resolved selection. For light-selector nodes LightID names the
// owning light and Node is that selector; callers select the light, not the
// helper geometry that was actually under the pointer.
type Hit struct {
	Node     *scenegraph.Node
	LightID  string
	Distance float32
}

// Resolver turns pointer press/move/release plus a pick ray into selection
// changes. One instance per viewport; calls come from the UI loop only.
type Resolver struct {
	state    state
	pressPos rl.Vector2
}

// NewResolver returns a resolver in the idle state.
func NewResolver() *Resolver {
	return &Resolver{}
}

// PointerDown records the press position and arms click detection.
func (r *Resolver) PointerDown(pos rl.Vector2) {
	r.state = statePressed
	r.pressPos = pos
}

// PointerMove transitions Pressed to Dragging once the pointer travels past
// DragThresholdPx. Movement while idle or already dragging is ignored.
func (r *Resolver) PointerMove(pos rl.Vector2) {
	if r.state != statePressed {
		return
	}
	dx := pos.X - r.pressPos.X
	dy := pos.Y - r.pressPos.Y
	if math32.Sqrt(dx*dx+dy*dy) > DragThresholdPx {
		r.state = stateDragging
	}
}

// Dragging reports whether the current press has become a drag.
func (r *Resolver) Dragging() bool {
	return r.state == stateDragging
}

// PointerUp completes the interaction. A release after dragging changes no
// selection (changed=false), and so does a release with no recorded press
// (the press happened while another surface, e.g. the terminal, had input
// focus). A release from the pressed state is a click: the ray is cast
// against the pickable set and the nearest hit, if any, is returned with
// changed=true; a miss is returned as changed=true with hit=false, meaning
// "nothing selected".
func (r *Resolver) PointerUp(ray rl.Ray, pickable []classify.Entry) (h Hit, hit, changed bool) {
	was := r.state
	r.state = stateIdle
	if was != statePressed {
		return Hit{}, false, false
	}
	h, hit = Resolve(ray, pickable)
	return h, hit, true
}

// Resolve casts the ray against the pickable set and returns the nearest
// intersection (smallest ray parameter). Hits on light-selector nodes carry
// the owning light id. ok=false means nothing was hit.
func Resolve(ray rl.Ray, pickable []classify.Entry) (Hit, bool) {
	best := Hit{Distance: math32.MaxFloat32}
	found := false
	for _, e := range pickable {
		t, ok := hitNode(ray, e.Node)
		if !ok || t >= best.Distance {
			continue
		}
		best = Hit{Node: e.Node, Distance: t}
		if e.Node.HasAttr(scenegraph.AttrLightSelector) {
			best.LightID = e.Node.Attr(scenegraph.AttrLightID)
		}
		found = true
	}
	if !found {
		return Hit{}, false
	}
	return best, true
}
