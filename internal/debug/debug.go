package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh overlay text every N frames to reduce
	// allocations.
	updateInterval = 30
)

// Stats is the scene information shown by the overlay, provided per frame by
// the app layer so this package does not depend on the graph or registry.
type Stats struct {
	Nodes  int
	Lights int
}

// Debug holds runtime overlays (FPS, heap, scene stats). All overlays are off
// by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowStats    bool
	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastStatText string
	lastMemStats runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// Draw renders any enabled overlays at the top-right. Call after the 3D scene
// and panels in the draw loop. Text is recomputed every updateInterval frames.
func (d *Debug) Draw(stats Stats) {
	d.frameCount++
	update := (d.frameCount % updateInterval) == 0
	if d.ShowFPS && d.lastFpsText == "" || d.ShowMemAlloc && d.lastMemText == "" ||
		d.ShowStats && d.lastStatText == "" {
		update = true
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)

	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		drawRight(d.lastFpsText, screenW, y, rl.Green)
		y += lineHeight
	}
	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.lastMemStats)
			mb := float64(d.lastMemStats.Alloc) / (1024 * 1024)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
		}
		drawRight(d.lastMemText, screenW, y, rl.Green)
		y += lineHeight
	}
	if d.ShowStats {
		if update {
			d.lastStatText = fmt.Sprintf("Nodes: %d  Lights: %d", stats.Nodes, stats.Lights)
		}
		drawRight(d.lastStatText, screenW, y, rl.SkyBlue)
	}
}

func drawRight(text string, screenW, y int32, c rl.Color) {
	if text == "" {
		return
	}
	w := rl.MeasureText(text, fontSize)
	rl.DrawText(text, screenW-w-padding, y, fontSize, c)
}
