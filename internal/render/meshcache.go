package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// cached holds mesh and material for one solid primitive. Created lazily on
// first draw so GPU resources are allocated after the window/GL context
// exists.
type cached struct {
	mesh rl.Mesh
	mtl  rl.Material
}

// meshCache maps primitive keys to mesh+material. Solid shapes (user meshes,
// emissive proxy surfaces, helper icon spheres) render through here; wire
// shapes use raylib's immediate line drawing and need no cache.
type meshCache struct {
	cache     map[string]cached
	shader    rl.Shader
	hasShader bool
	viewPos   [3]float32
	lightDir  [3]float32
}

func newMeshCache() *meshCache {
	return &meshCache{
		cache:    make(map[string]cached),
		lightDir: [3]float32{0.5, 1, 0.5},
	}
}

// setView sets camera position and direction-to-light for this frame, used by
// the lit shader.
func (c *meshCache) setView(viewPos, lightDir [3]float32) {
	c.viewPos = viewPos
	c.lightDir = lightDir
}

// sphere mesh resolution
const sphereRings = 16
const sphereSlices = 16

// ensure creates the mesh and material for key if not yet cached.
func (c *meshCache) ensure(key string) {
	if _, ok := c.cache[key]; ok {
		return
	}
	var mesh rl.Mesh
	switch key {
	case "cube":
		mesh = rl.GenMeshCube(1, 1, 1)
	case "sphere":
		// radius 0.5 so diameter matches the unit cube
		mesh = rl.GenMeshSphere(0.5, sphereRings, sphereSlices)
	case "plane":
		mesh = rl.GenMeshPlane(1, 1, 1, 1)
	default:
		return
	}
	mtl := rl.LoadMaterialDefault()
	if !c.hasShader {
		c.shader = rl.LoadShaderFromMemory(litVS, litFS)
		c.hasShader = true
	}
	if rl.IsShaderValid(c.shader) {
		mtl.Shader = c.shader
	}
	c.cache[key] = cached{mesh: mesh, mtl: mtl}
}

// draw renders one cached primitive with the given tint, emissive boost, and
// model transform.
func (c *meshCache) draw(key string, tint rl.Color, emissive float32, transform rl.Matrix) {
	c.ensure(key)
	e, ok := c.cache[key]
	if !ok {
		return
	}
	if albedo := e.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = tint
	}
	c.setUniforms(e.mtl.Shader, emissive)
	rl.DrawMesh(e.mesh, e.mtl, transform)
}

// setUniforms pushes view position, light direction, ambient, and emissive to
// the lit shader (cgo-safe: local slices).
func (c *meshCache) setUniforms(shader rl.Shader, emissive float32) {
	if !rl.IsShaderValid(shader) {
		return
	}
	viewPos := []float32{c.viewPos[0], c.viewPos[1], c.viewPos[2]}
	lightDir := []float32{c.lightDir[0], c.lightDir[1], c.lightDir[2]}
	amb := []float32{ambientR, ambientG, ambientB}
	if loc := rl.GetShaderLocation(shader, "viewPos"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, viewPos, rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightDir"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, lightDir, rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "ambient"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, amb, rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "emissive"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{emissive}, rl.ShaderUniformFloat)
	}
}

// ambient term so shadowed faces are not pure black
const (
	ambientR = float32(0.22)
	ambientG = float32(0.23)
	ambientB = float32(0.26)
)

// Lit shader: single directional light, ambient term, and an emissive factor
// that lifts the surface toward full brightness (area-light proxies).
const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragNormal;
void main() {
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * matModel * vec4(vertexPosition, 1.0);
}
`
	litFS = `#version 330
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 lightDir;
uniform vec3 ambient;
uniform float emissive;
out vec4 finalColor;
void main() {
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(lightDir);
  float NdotL = max(dot(N, L), 0.0);
  vec3 lit = colDiffuse.rgb * (ambient + vec3(NdotL));
  vec3 glow = colDiffuse.rgb * min(emissive, 1.0) + vec3(max(emissive - 1.0, 0.0) * 0.1);
  finalColor = vec4(min(lit + glow, vec3(1.0)), colDiffuse.a);
}
`
)
