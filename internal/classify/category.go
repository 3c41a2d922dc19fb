package classify

// Category is the classification of a scene node: user content, engine
// tooling, or unknown. Exactly one category applies to a node at any instant;
// it is recomputed on demand and never cached, since names and attributes can
// change under the user's hands.
type Category int

const (
	Unknown Category = iota
	UserMesh
	UserLight
	UserCamera
	UserGroup
	SystemHelper
	SystemGizmo
	SystemGrid
	SystemLightHelper
	SystemCameraHelper
	TransformControl
	TransformHandle

	numCategories
)

// String returns the category name used in logs and the outliner.
func (c Category) String() string {
	switch c {
	case UserMesh:
		return "mesh"
	case UserLight:
		return "light"
	case UserCamera:
		return "camera"
	case UserGroup:
		return "group"
	case SystemHelper:
		return "helper"
	case SystemGizmo:
		return "gizmo"
	case SystemGrid:
		return "grid"
	case SystemLightHelper:
		return "light-helper"
	case SystemCameraHelper:
		return "camera-helper"
	case TransformControl:
		return "transform-control"
	case TransformHandle:
		return "transform-handle"
	default:
		return "unknown"
	}
}

// IsUser reports whether the category is user content (mesh, light, camera,
// group).
func (c Category) IsUser() bool {
	switch c {
	case UserMesh, UserLight, UserCamera, UserGroup:
		return true
	}
	return false
}

// IsTooling reports whether the category is engine-generated tooling: any
// system helper, gizmo, or transform category. Tooling is hidden for clean
// renders and never exported.
func (c Category) IsTooling() bool {
	switch c {
	case SystemHelper, SystemGizmo, SystemGrid, SystemLightHelper,
		SystemCameraHelper, TransformControl, TransformHandle:
		return true
	}
	return false
}
