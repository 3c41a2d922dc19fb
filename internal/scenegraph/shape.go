package scenegraph

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ShapeKind selects which primitive a Shape describes.
type ShapeKind int

const (
	ShapeSphere ShapeKind = iota
	ShapeWireSphere
	ShapeCube
	ShapeWireCone
	ShapeLine
	ShapePlane
	ShapeWirePlane
	ShapeAxisTripod
	ShapeCornerMarkers
)

// Shape describes one renderable primitive of a node. Shapes are data only;
// GPU meshes are created lazily by the render layer on first draw so graph
// code (and tests) never need a window or GL context.
type Shape struct {
	Kind   ShapeKind
	Color  rl.Color
	Radius float32    // sphere, wire sphere, cone base
	Height float32    // cone
	Width  float32    // plane X extent
	Length float32    // plane Z extent, axis tripod arm length
	From   rl.Vector3 // line start (node-local)
	To     rl.Vector3 // line end (node-local)
	// Emissive is the self-illumination strength for ShapePlane proxies,
	// 0 = none. Kept on the shape so the render layer needs no light lookup.
	Emissive float32
	// Icon marks shapes whose size tracks light intensity (helper icons).
	// Node transforms stay rigidly shared across a light bundle, so
	// intensity sizing is expressed here instead of in node scale.
	Icon bool
}

// shapeExtents returns the unscaled bounding extents (full widths) covering
// every shape in the list. An empty list yields a unit cube.
func shapeExtents(shapes []Shape) (x, y, z float32) {
	if len(shapes) == 0 {
		return 1, 1, 1
	}
	grow := func(nx, ny, nz float32) {
		if nx > x {
			x = nx
		}
		if ny > y {
			y = ny
		}
		if nz > z {
			z = nz
		}
	}
	for _, s := range shapes {
		switch s.Kind {
		case ShapeSphere, ShapeWireSphere:
			d := s.Radius * 2
			grow(d, d, d)
		case ShapeCube:
			grow(s.Width, s.Height, s.Length)
		case ShapeWireCone:
			grow(s.Radius*2, s.Height, s.Radius*2)
		case ShapeLine:
			grow(abs32(s.To.X-s.From.X), abs32(s.To.Y-s.From.Y), abs32(s.To.Z-s.From.Z))
		case ShapePlane, ShapeWirePlane, ShapeCornerMarkers:
			grow(s.Width, 0.1, s.Length)
		case ShapeAxisTripod:
			d := s.Length * 2
			grow(d, d, d)
		}
	}
	if x == 0 {
		x = 0.1
	}
	if y == 0 {
		y = 0.1
	}
	if z == 0 {
		z = 0.1
	}
	return x, y, z
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// WithAlpha returns c with its alpha channel replaced.
func WithAlpha(c rl.Color, a uint8) rl.Color {
	c.A = a
	return c
}
