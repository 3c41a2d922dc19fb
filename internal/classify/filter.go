package classify

import (
	"scene-studio/internal/scenegraph"
)

// Query is a per-category inclusion set plus a couple of node-level gates.
// Queries are stateless values constructed per call site; use the preset
// constructors for the standing views.
type Query struct {
	include [numCategories]bool
	// VisibleOnly excludes nodes whose Visible flag is false.
	VisibleOnly bool
	// LightSelectors additionally includes nodes flagged as light selectors
	// regardless of their category (used by the pickable set so light
	// helpers can be hit-tested on behalf of their light).
	LightSelectors bool
}

// NewQuery returns a query including only the given categories.
func NewQuery(cats ...Category) Query {
	var q Query
	for _, c := range cats {
		if c >= 0 && c < numCategories {
			q.include[c] = true
		}
	}
	return q
}

// Includes reports whether the query includes the category.
func (q Query) Includes(c Category) bool {
	return c >= 0 && c < numCategories && q.include[c]
}

// OutlinerQuery is the object-outliner view: all user categories, system
// helpers only when showHelpers is set, and never gizmos or transform rig
// parts regardless of any toggle.
func OutlinerQuery(showHelpers bool) Query {
	cats := []Category{UserMesh, UserLight, UserCamera, UserGroup}
	if showHelpers {
		cats = append(cats, SystemHelper, SystemGrid, SystemLightHelper, SystemCameraHelper)
	}
	return NewQuery(cats...)
}

// PickableQuery is the hit-test view: visible user meshes plus any node
// flagged as a light selector. Everything else, including invisible nodes,
// is excluded.
func PickableQuery() Query {
	q := NewQuery(UserMesh)
	q.VisibleOnly = true
	q.LightSelectors = true
	return q
}

// ExportQuery is the clean-render view: the complement of every tooling
// category, i.e. what an exported image is allowed to contain.
func ExportQuery() Query {
	var q Query
	for c := Category(0); c < numCategories; c++ {
		if !c.IsTooling() {
			q.include[c] = true
		}
	}
	return q
}

// Entry pairs a node with the category it classified as when filtered.
type Entry struct {
	Node     *scenegraph.Node
	Category Category
}

// Filter classifies each node and returns the ones the query includes,
// preserving input order.
func Filter(nodes []*scenegraph.Node, q Query) []Entry {
	var out []Entry
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if q.VisibleOnly && !n.Visible {
			continue
		}
		c := Classify(n)
		if q.Includes(c) || q.LightSelectors && n.HasAttr(scenegraph.AttrLightSelector) {
			out = append(out, Entry{Node: n, Category: c})
		}
	}
	return out
}

// HideToolingDuring hides every node the export view excludes, runs fn, and
// restores each node's prior visibility unconditionally, even when fn fails
// or panics. Used to render output frames without gizmos and helpers.
func HideToolingDuring(g *scenegraph.Graph, fn func() error) error {
	q := ExportQuery()
	type saved struct {
		node    *scenegraph.Node
		visible bool
	}
	var hidden []saved
	g.Walk(func(n *scenegraph.Node) {
		if !q.Includes(Classify(n)) {
			hidden = append(hidden, saved{node: n, visible: n.Visible})
			n.Visible = false
		}
	})
	defer func() {
		for _, s := range hidden {
			s.node.Visible = s.visible
		}
	}()
	return fn()
}
