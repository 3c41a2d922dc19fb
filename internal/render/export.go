package render

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-studio/internal/classify"
	"scene-studio/internal/scenegraph"
)

// ExportDir is where exported frames are written, relative to the working
// directory.
const ExportDir = "exports"

// ExportFrame renders one clean frame and saves it as a PNG. Tooling nodes
// (helpers, gizmos, transform rigs) are hidden before drawFrame runs and
// their prior visibility is restored unconditionally afterward, even when
// drawing or the screenshot fails. drawFrame must render a complete frame
// (its own BeginDrawing/EndDrawing).
func ExportFrame(g *scenegraph.Graph, drawFrame func() error) (string, error) {
	if err := os.MkdirAll(ExportDir, 0755); err != nil {
		return "", err
	}
	name := fmt.Sprintf("frame-%s.png", time.Now().Format("20060102-150405"))
	path := filepath.Join(ExportDir, name)

	err := classify.HideToolingDuring(g, func() error {
		if err := drawFrame(); err != nil {
			return err
		}
		rl.TakeScreenshot(path)
		return nil
	})
	if err != nil {
		return "", err
	}
	return path, nil
}
