package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-studio/internal/classify"
)

const (
	panelPadding  = 10
	panelFontSize = 18
	panelLineStep = panelFontSize + 6
	outlinerWidth = 280
	maxRows       = 30
)

var (
	panelBgColor    = rl.NewColor(28, 30, 34, 235)
	panelTitleColor = rl.NewColor(235, 235, 235, 255)
	rowColor        = rl.NewColor(200, 200, 200, 255)
	rowDimColor     = rl.NewColor(140, 140, 145, 255)
	rowSelColor     = rl.NewColor(255, 200, 80, 255)
)

// Outliner is the left-side panel listing the scene's curated node view. The
// rows come from the filter engine's outliner preset, so gizmos and transform
// rigs can never appear here no matter what they are named.
type Outliner struct {
	Visible     bool
	ShowHelpers bool
}

// NewOutliner returns a visible outliner that hides helper rows.
func NewOutliner() *Outliner {
	return &Outliner{Visible: true}
}

// Draw renders the panel. entries is the current filtered view (outliner
// preset); selectedID highlights the row whose node id (or owning light node
// id) matches.
func (o *Outliner) Draw(entries []classify.Entry, selectedID string) {
	if !o.Visible {
		return
	}
	rows := len(entries)
	if rows > maxRows {
		rows = maxRows
	}
	height := int32(panelPadding*2 + panelLineStep*(rows+1))
	rl.DrawRectangle(0, 0, outlinerWidth, height, panelBgColor)

	y := int32(panelPadding)
	rl.DrawText(fmt.Sprintf("Outliner (%d)", len(entries)), panelPadding, y, panelFontSize, panelTitleColor)
	y += panelLineStep

	for i, e := range entries {
		if i >= maxRows {
			break
		}
		c := rowColor
		if !e.Node.Visible {
			c = rowDimColor
		}
		if selectedID != "" && e.Node.ID == selectedID {
			c = rowSelColor
		}
		name := e.Node.Name
		if name == "" {
			name = "(unnamed)"
		}
		rl.DrawText(fmt.Sprintf("%s  [%s]", name, e.Category), panelPadding, y, panelFontSize, c)
		y += panelLineStep
	}
}
