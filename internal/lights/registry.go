package lights

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"scene-studio/internal/logger"
	"scene-studio/internal/scenegraph"
)

// managedLight is one owned bundle: the light node plus the helper and proxy
// nodes that visualize it. The three members always share one transform and
// one visibility value; every mutating registry call re-establishes that
// before returning. Helper and proxy may be nil (ambient lights, or a
// construction failure that degraded the bundle to partial).
type managedLight struct {
	id      string
	name    string
	kind    Kind
	light   *scenegraph.Node
	helper  *scenegraph.Node
	proxy   *scenegraph.Node
	visible bool
	partial bool
	props   Properties
}

// Light is a read-only snapshot of a managed light. It carries node ids, not
// node pointers, so callers cannot mutate bundle members behind the
// registry's back.
type Light struct {
	ID         string
	Name       string
	Kind       Kind
	Visible    bool
	Partial    bool
	Properties Properties

	LightNodeID  string
	HelperNodeID string
	ProxyNodeID  string
}

// Registry owns the lifecycle of every managed light in one scene. Construct
// one per session with NewRegistry and pass it by reference; there is no
// package-level instance. Calls are synchronous and assume a single writer
// (the UI/frame loop).
type Registry struct {
	graph    *scenegraph.Graph
	log      *logger.Logger
	defaults map[Kind]Properties
	lights   map[string]*managedLight
	order    []string
	counts   map[Kind]int
}

// NewRegistry returns an empty registry operating on the given graph.
// Per-kind defaults come from DefaultsPath when present.
func NewRegistry(g *scenegraph.Graph, log *logger.Logger) *Registry {
	defaults, err := LoadDefaults(DefaultsPath)
	if err != nil && log != nil {
		log.Warn("light defaults: " + err.Error())
	}
	return &Registry{
		graph:    g,
		log:      log,
		defaults: defaults,
		lights:   make(map[string]*managedLight),
		counts:   make(map[Kind]int),
	}
}

// Create builds a light of the given kind plus its kind-specific helper and,
// for area lights, an emissive proxy, and returns the fresh light id. Fields
// left zero in initial take the per-kind default. Helper or proxy
// construction failure does not fail the light: the bundle is created
// partial, a warning is logged, and later property fan-out skips the missing
// member.
func (r *Registry) Create(kind Kind, initial Properties) (string, error) {
	props := r.defaults[kind]
	overlayProperties(&props, initial)
	if props.Color == "" {
		props.Color = "#ffffff"
	}
	if _, err := parseHexColor(props.Color); err != nil {
		return "", fmt.Errorf("light color: %w", err)
	}

	r.counts[kind]++
	id := uuid.NewString()
	name := fmt.Sprintf("%s Light %d", titleKind(kind), r.counts[kind])

	light := scenegraph.NewNode(scenegraph.KindLight, name)
	light.SetAttr(scenegraph.AttrLightID, id)
	light.Position = props.Position
	light.Rotation = props.Rotation

	m := &managedLight{
		id:      id,
		name:    name,
		kind:    kind,
		light:   light,
		visible: true,
		props:   props,
	}

	helper, err := buildHelper(id, name, kind, props)
	if err != nil {
		m.partial = true
		r.logWarn("helper for " + name + ": " + err.Error())
	}
	m.helper = helper

	if kind == Area {
		proxy, err := buildProxy(id, name, props)
		if err != nil {
			m.partial = true
			r.logWarn("emissive proxy for " + name + ": " + err.Error())
		}
		m.proxy = proxy
	}

	r.graph.Add(nil, light)
	if m.helper != nil {
		r.graph.Add(nil, m.helper)
	}
	if m.proxy != nil {
		r.graph.Add(nil, m.proxy)
	}

	r.lights[id] = m
	r.order = append(r.order, id)
	r.syncBundle(m)
	return id, nil
}

// UpdateProperty validates that path applies to the light's kind, applies the
// value to the light, and fans the change out to the helper and proxy.
// Returns false, with no state mutated, for unknown ids, inapplicable paths,
// and unparseable values.
func (r *Registry) UpdateProperty(id, path string, value any) bool {
	m, ok := r.lights[id]
	if !ok {
		return false
	}
	if !pathApplies(path, m.kind) {
		return false
	}

	switch path {
	case "color":
		hex, ok := value.(string)
		if !ok {
			return false
		}
		tint, err := parseHexColor(hex)
		if err != nil {
			return false
		}
		m.props.Color = hex
		r.fanOutColor(m, tint)
	case "intensity":
		f, ok := toFloat32(value)
		if !ok || f < 0 {
			return false
		}
		m.props.Intensity = f
		r.fanOutIntensity(m)
	case "position":
		v, ok := toVector3(value)
		if !ok {
			return false
		}
		m.props.Position = v
		m.light.Position = v
	case "rotation":
		v, ok := toVector3(value)
		if !ok {
			return false
		}
		m.props.Rotation = v
		m.light.Rotation = v
	case "distance", "decay", "angle", "penumbra", "width", "height":
		f, ok := toFloat32(value)
		if !ok || !validDimension(f) {
			return false
		}
		if !r.applyDimension(m, path, f) {
			return false
		}
	default:
		return false
	}

	r.syncBundle(m)
	return true
}

// applyDimension sets a geometry-defining property and rebuilds the helper
// (and proxy bounds) from scratch. Rebuilding rather than rescaling keeps
// wireframe resolution uniform at any range. The property is only committed
// when the rebuild produces drawable geometry.
func (r *Registry) applyDimension(m *managedLight, path string, f float32) bool {
	next := m.props
	switch path {
	case "distance":
		next.Distance = f
	case "decay":
		next.Decay = f
	case "angle":
		next.Angle = f
	case "penumbra":
		next.Penumbra = f
	case "width":
		next.Width = f
	case "height":
		next.Height = f
	}

	if m.helper != nil {
		tint, err := parseHexColor(next.Color)
		if err != nil {
			tint = rl.White
		}
		tint.A = helperAlpha(next.Intensity)
		shapes, err := helperShapes(m.kind, next, tint)
		if err != nil {
			return false
		}
		m.helper.Shapes = shapes
	}
	if m.proxy != nil && (path == "width" || path == "height") {
		for i := range m.proxy.Shapes {
			m.proxy.Shapes[i].Width = next.Width
			m.proxy.Shapes[i].Length = next.Height
		}
	}
	m.props = next
	return true
}

// fanOutColor pushes a new tint to the helper shapes and the proxy surface.
// Missing members are skipped (partial bundles degrade gracefully).
func (r *Registry) fanOutColor(m *managedLight, tint rl.Color) {
	if m.helper != nil {
		tintShapes(m.helper.Shapes, tint)
	}
	if m.proxy != nil {
		for i := range m.proxy.Shapes {
			m.proxy.Shapes[i].Color = scenegraph.WithAlpha(tint, m.proxy.Shapes[i].Color.A)
		}
	}
}

// fanOutIntensity pushes clamped opacity and icon size to the helper and
// clamped emissive brightness to the proxy.
func (r *Registry) fanOutIntensity(m *managedLight) {
	if m.helper != nil {
		setShapesAlpha(m.helper.Shapes, helperAlpha(m.props.Intensity))
		updateIconScale(m.helper.Shapes, m.props.Intensity)
	}
	if m.proxy != nil {
		for i := range m.proxy.Shapes {
			m.proxy.Shapes[i].Emissive = proxyEmissive(m.props.Intensity)
		}
	}
}

// ToggleVisibility flips the bundle's visibility: one boolean drives light,
// helper, and proxy in lockstep. Returns the new state; toggling twice
// restores the original. Unknown ids return false harmlessly.
func (r *Registry) ToggleVisibility(id string) bool {
	m, ok := r.lights[id]
	if !ok {
		return false
	}
	m.visible = !m.visible
	r.syncBundle(m)
	return m.visible
}

// Remove destroys the whole bundle: light, helper, and proxy leave the graph
// together, and no node tagged with the id remains anywhere. Returns false
// harmlessly for unknown ids.
func (r *Registry) Remove(id string) bool {
	m, ok := r.lights[id]
	if !ok {
		return false
	}
	for _, n := range []*scenegraph.Node{m.light, m.helper, m.proxy} {
		if n != nil {
			r.graph.Remove(n)
		}
	}
	// Sweep for stragglers tagged with this id (e.g. nodes reparented by
	// outside code); the id must not survive anywhere in the graph.
	for _, n := range r.graph.NodesWithAttr(scenegraph.AttrLightID, id) {
		r.graph.Remove(n)
	}
	delete(r.lights, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Get returns a read-only snapshot of the light, or ok=false.
func (r *Registry) Get(id string) (Light, bool) {
	m, ok := r.lights[id]
	if !ok {
		return Light{}, false
	}
	return r.snapshot(m), true
}

// GetAll returns snapshots of every light in creation order.
func (r *Registry) GetAll() []Light {
	out := make([]Light, 0, len(r.order))
	for _, id := range r.order {
		if m, ok := r.lights[id]; ok {
			out = append(out, r.snapshot(m))
		}
	}
	return out
}

// Count returns the number of managed lights.
func (r *Registry) Count() int {
	return len(r.lights)
}

func (r *Registry) snapshot(m *managedLight) Light {
	l := Light{
		ID:          m.id,
		Name:        m.name,
		Kind:        m.kind,
		Visible:     m.visible,
		Partial:     m.partial,
		LightNodeID: m.light.ID,
	}
	// Deep-copy the property snapshot so callers cannot reach back into
	// registry state.
	if err := copier.Copy(&l.Properties, &m.props); err != nil {
		r.logWarn("snapshot " + m.name + ": " + err.Error())
		l.Properties = m.props
	}
	if m.helper != nil {
		l.HelperNodeID = m.helper.ID
	}
	if m.proxy != nil {
		l.ProxyNodeID = m.proxy.ID
	}
	return l
}

// syncBundle re-establishes the bundle invariant: helper and proxy copy the
// light's transform, and all members share the bundle visibility.
func (r *Registry) syncBundle(m *managedLight) {
	m.light.Visible = m.visible
	for _, n := range []*scenegraph.Node{m.helper, m.proxy} {
		if n == nil {
			continue
		}
		n.CopyTransformFrom(m.light)
		n.Visible = m.visible
	}
}

func (r *Registry) logWarn(line string) {
	if r.log != nil {
		r.log.Warn(line)
	}
}

// overlayProperties copies non-zero fields of src over dst.
func overlayProperties(dst *Properties, src Properties) {
	if src.Intensity != 0 {
		dst.Intensity = src.Intensity
	}
	if src.Color != "" {
		dst.Color = src.Color
	}
	if src.Position != (rl.Vector3{}) {
		dst.Position = src.Position
	}
	if src.Rotation != (rl.Vector3{}) {
		dst.Rotation = src.Rotation
	}
	if src.Distance != 0 {
		dst.Distance = src.Distance
	}
	if src.Angle != 0 {
		dst.Angle = src.Angle
	}
	if src.Penumbra != 0 {
		dst.Penumbra = src.Penumbra
	}
	if src.Decay != 0 {
		dst.Decay = src.Decay
	}
	if src.Width != 0 {
		dst.Width = src.Width
	}
	if src.Height != 0 {
		dst.Height = src.Height
	}
}

func titleKind(k Kind) string {
	switch k {
	case Ambient:
		return "Ambient"
	case Directional:
		return "Directional"
	case Point:
		return "Point"
	case Spot:
		return "Spot"
	case Area:
		return "Area"
	}
	return "Light"
}
