package classify

import (
	"strings"

	"scene-studio/internal/scenegraph"
)

// maxAncestorDepth bounds the ancestor walk so a cyclic parent chain (which
// the graph does not produce, but untrusted callers might) cannot hang
// classification.
const maxAncestorDepth = 64

// axisCodes are names that mark single handles of a transform rig when
// matched exactly (case-insensitive): bare axis letters, their two/three
// letter combinations, and the endpoints of a drag line. This is a coarse
// heuristic: a user object named exactly "x" is misclassified. Attribute tags
// take priority, so nothing this engine generates depends on it.
var axisCodes = map[string]bool{
	"x": true, "y": true, "z": true,
	"xy": true, "xz": true, "yz": true,
	"yx": true, "zx": true, "zy": true,
	"xyz": true, "xzy": true, "yxz": true,
	"yzx": true, "zxy": true, "zyx": true,
	"start": true, "end": true,
}

// Classify maps a scene node to its category. Total, deterministic, and
// side-effect free: any node, including ones with adversarial names, gets
// exactly one category and nothing is ever thrown or mutated.
//
// Match order (first wins): attribute hints set by engine-generated nodes,
// transform-rig membership via ancestors, built-in helper type tags,
// exact axis-code names, tooling name substrings, then the node's kind tag.
func Classify(n *scenegraph.Node) Category {
	if n == nil {
		return Unknown
	}

	// 1. Attribute hints are authoritative; only engine-generated nodes
	// carry them.
	switch {
	case n.HasAttr(scenegraph.AttrTransformHandle):
		return TransformHandle
	case n.HasAttr(scenegraph.AttrTransformControl), n.HasAttr(scenegraph.AttrGizmo):
		return TransformControl
	case n.HasAttr(scenegraph.AttrLightHelper), n.Attr(scenegraph.AttrLightID) != "" && n.HasAttr(scenegraph.AttrHelper):
		return SystemLightHelper
	case n.HasAttr(scenegraph.AttrHelper):
		return SystemHelper
	case n.HasAttr(scenegraph.AttrSystem):
		return SystemHelper
	}

	// 2. Membership in a transform-control rig is transitive: any node under
	// a control aggregate is part of the rig regardless of its own name.
	for p, depth := n.Parent(), 0; p != nil && depth < maxAncestorDepth; p, depth = p.Parent(), depth+1 {
		if p.HasAttr(scenegraph.AttrTransformControl) {
			return TransformControl
		}
	}

	// 3. Built-in helper type tags.
	switch ht := n.Attr(scenegraph.AttrHelperType); {
	case ht == scenegraph.HelperTypeGrid:
		return SystemGrid
	case ht == scenegraph.HelperTypeAxes, ht == scenegraph.HelperTypeArrow:
		return SystemGizmo
	case ht == scenegraph.HelperTypeCamera:
		return SystemCameraHelper
	case strings.HasPrefix(ht, "light-"):
		return SystemLightHelper
	}

	// 4. Exact axis-code names.
	name := strings.ToLower(strings.TrimSpace(n.Name))
	if axisCodes[name] {
		return TransformHandle
	}

	// 5. Tooling name substrings.
	if c, ok := nameCategory(name); ok {
		return c
	}

	// 6. Fall back to the node's kind tag.
	switch n.Kind {
	case scenegraph.KindMesh:
		return UserMesh
	case scenegraph.KindLight:
		return UserLight
	case scenegraph.KindCamera:
		return UserCamera
	case scenegraph.KindGroup:
		if len(n.Children()) > 0 && len(n.Shapes) == 0 {
			return UserGroup
		}
	}

	return Unknown
}

// nameCategory maps tooling substrings in a lower-cased name to a system
// category. "helper" is qualified by light/camera context; short risky
// patterns ("axis") require word boundaries, longer ones match anywhere.
func nameCategory(name string) (Category, bool) {
	if strings.Contains(name, "helper") {
		switch {
		case strings.Contains(name, "light"):
			return SystemLightHelper, true
		case strings.Contains(name, "camera"), strings.Contains(name, "cam"):
			return SystemCameraHelper, true
		}
		return SystemHelper, true
	}
	if strings.Contains(name, "grid") {
		return SystemGrid, true
	}
	if strings.Contains(name, "selector") {
		return SystemLightHelper, true
	}
	for _, pat := range []string{"gizmo", "target", "control", "handle", "arrow"} {
		if strings.Contains(name, pat) {
			return SystemGizmo, true
		}
	}
	if containsWord(name, "axis") || containsWord(name, "axes") {
		return SystemGizmo, true
	}
	return Unknown, false
}

// containsWord reports whether pat occurs in name delimited by non-letters or
// the string edges, so "axis helper arm" matches but "taxis" does not.
func containsWord(name, pat string) bool {
	for i := 0; ; {
		j := strings.Index(name[i:], pat)
		if j < 0 {
			return false
		}
		j += i
		before := j == 0 || !isLetter(name[j-1])
		afterIdx := j + len(pat)
		after := afterIdx >= len(name) || !isLetter(name[afterIdx])
		if before && after {
			return true
		}
		i = j + 1
	}
}

func isLetter(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}
