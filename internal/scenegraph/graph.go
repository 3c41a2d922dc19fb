package scenegraph

// Graph is the scene graph: a single root group plus linking. One Graph
// instance exists per session and is passed by reference to every consumer
// (registry, classifier callers, renderer); there is no package-level state.
type Graph struct {
	root *Node
}

// NewGraph returns a graph with an empty root group.
func NewGraph() *Graph {
	root := NewNode(KindGroup, "root")
	return &Graph{root: root}
}

// Root returns the root group node.
func (g *Graph) Root() *Node {
	return g.root
}

// Add links child under parent. A nil parent means the root. If the child is
// already linked elsewhere it is detached first so a node has one parent.
func (g *Graph) Add(parent, child *Node) {
	if child == nil {
		return
	}
	if parent == nil {
		parent = g.root
	}
	if child.parent != nil {
		g.detach(child)
	}
	child.parent = parent
	parent.children = append(parent.children, child)
}

// Remove detaches the node (and its whole subtree) from the graph.
// Returns false when the node is nil, the root, or not linked.
func (g *Graph) Remove(n *Node) bool {
	if n == nil || n == g.root || n.parent == nil {
		return false
	}
	g.detach(n)
	return true
}

func (g *Graph) detach(n *Node) {
	p := n.parent
	for i, c := range p.children {
		if c == n {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	n.parent = nil
}

// Walk visits every node under the root in depth-first pre-order (stable
// child insertion order). The root itself is not visited.
func (g *Graph) Walk(visit func(n *Node)) {
	var rec func(n *Node)
	rec = func(n *Node) {
		visit(n)
		for _, c := range n.children {
			rec(c)
		}
	}
	for _, c := range g.root.children {
		rec(c)
	}
}

// Nodes returns all nodes under the root in traversal order.
func (g *Graph) Nodes() []*Node {
	var out []*Node
	g.Walk(func(n *Node) { out = append(out, n) })
	return out
}

// FindByID returns the node with the given id, or nil.
func (g *Graph) FindByID(id string) *Node {
	var found *Node
	g.Walk(func(n *Node) {
		if found == nil && n.ID == id {
			found = n
		}
	})
	return found
}

// NodesWithAttr returns all nodes whose attribute key equals value, in
// traversal order. Used e.g. to find every node tagged with a light id.
func (g *Graph) NodesWithAttr(key, value string) []*Node {
	var out []*Node
	g.Walk(func(n *Node) {
		if n.Attrs[key] == value {
			out = append(out, n)
		}
	})
	return out
}
