package scenegraph

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"
)

// Kind is the renderable kind of a node, set once at creation. External
// loaders tag their nodes too; KindOther is for nodes whose payload is not
// known to this engine.
type Kind int

const (
	KindOther Kind = iota
	KindMesh
	KindLight
	KindCamera
	KindGroup
)

// String returns the lower-case kind name ("mesh", "light", ...).
func (k Kind) String() string {
	switch k {
	case KindMesh:
		return "mesh"
	case KindLight:
		return "light"
	case KindCamera:
		return "camera"
	case KindGroup:
		return "group"
	default:
		return "other"
	}
}

// Attribute keys used as out-of-band hints on nodes. The classifier treats
// these as authoritative; only engine-generated nodes (helpers, gizmos,
// proxies) set them.
const (
	AttrSystem           = "system"           // any engine-internal object
	AttrHelper           = "helper"           // generic visualization helper
	AttrLightHelper      = "lightHelper"      // helper visualizing a light
	AttrLightID          = "lightID"          // owning managed-light id
	AttrLightProxy       = "lightProxy"       // emissive proxy surface of an area light
	AttrLightSelector    = "lightSelector"    // node is pick-tested on behalf of a light
	AttrTransformControl = "transformControl" // root of a move/rotate/scale rig
	AttrGizmo            = "gizmo"            // on-screen interaction widget
	AttrTransformHandle  = "transformHandle"  // single handle of a transform rig
	AttrHelperType       = "helperType"       // built-in helper type tag, see HelperType* values
)

// Values for AttrHelperType. Light helpers use "light-" + kind name.
const (
	HelperTypeGrid   = "grid"
	HelperTypeAxes   = "axes"
	HelperTypeArrow  = "arrow"
	HelperTypeCamera = "camera"
)

// Node is one object in the scene graph: an id, a user-editable (untrusted)
// name, a kind tag, a flat transform, a visibility flag, an attribute bag for
// out-of-band hints, and a shape list describing its renderable payload.
// Parent/child links are owned by the Graph; use Graph.Add and Graph.Remove.
type Node struct {
	ID       string
	Name     string
	Kind     Kind
	Position rl.Vector3
	Rotation rl.Vector3 // Euler angles in degrees (X, Y, Z)
	Scale    rl.Vector3
	Visible  bool
	Attrs    map[string]string
	Shapes   []Shape

	parent   *Node
	children []*Node
}

// NewNode returns a visible node with a fresh id, unit scale, and no attrs.
func NewNode(kind Kind, name string) *Node {
	return &Node{
		ID:      uuid.NewString(),
		Name:    name,
		Kind:    kind,
		Scale:   rl.NewVector3(1, 1, 1),
		Visible: true,
		Attrs:   make(map[string]string),
	}
}

// SetAttr sets an attribute hint. Boolean hints store "true".
func (n *Node) SetAttr(key, value string) {
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}
	n.Attrs[key] = value
}

// Attr returns the attribute value, or "" when unset.
func (n *Node) Attr(key string) string {
	return n.Attrs[key]
}

// HasAttr reports whether the attribute is set to "true".
func (n *Node) HasAttr(key string) bool {
	return n.Attrs[key] == "true"
}

// Parent returns the node's parent, or nil for the root and detached nodes.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the node's children in insertion order. The returned slice
// is a copy; mutating it does not affect the graph.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// CopyTransformFrom sets this node's position, rotation, and scale from src.
// Used to keep a light's helper and proxy rigidly attached to the light.
func (n *Node) CopyTransformFrom(src *Node) {
	n.Position = src.Position
	n.Rotation = src.Rotation
	n.Scale = src.Scale
}

// SameTransform reports whether both nodes have identical position, rotation,
// and scale.
func (n *Node) SameTransform(o *Node) bool {
	return n.Position == o.Position && n.Rotation == o.Rotation && n.Scale == o.Scale
}

// BoundingBox returns the node's world-space AABB from its shape extents and
// scale (center position, half extents). Nodes with no shapes get a unit box
// so they remain pick-testable when explicitly flagged.
func (n *Node) BoundingBox() rl.BoundingBox {
	ex, ey, ez := shapeExtents(n.Shapes)
	sx, sy, sz := n.Scale.X, n.Scale.Y, n.Scale.Z
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	if sz == 0 {
		sz = 1
	}
	half := rl.NewVector3(ex*sx*0.5, ey*sy*0.5, ez*sz*0.5)
	return rl.NewBoundingBox(
		rl.NewVector3(n.Position.X-half.X, n.Position.Y-half.Y, n.Position.Z-half.Z),
		rl.NewVector3(n.Position.X+half.X, n.Position.Y+half.Y, n.Position.Z+half.Z),
	)
}
