package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-studio/internal/lights"
)

const lightPanelWidth = 300

// LightPanel is the right-side inspector for the selected managed light. It
// renders a registry snapshot only; edits go through terminal commands, so
// the panel can never mutate bundle members directly.
type LightPanel struct{}

// NewLightPanel returns an empty light inspector.
func NewLightPanel() *LightPanel {
	return &LightPanel{}
}

// Draw renders the panel for the given snapshot when ok is true.
func (p *LightPanel) Draw(l lights.Light, ok bool) {
	if !ok {
		return
	}
	rows := p.rows(l)
	height := int32(panelPadding*2 + panelLineStep*len(rows))
	x := int32(rl.GetScreenWidth()) - lightPanelWidth
	rl.DrawRectangle(x, 0, lightPanelWidth, height, panelBgColor)

	y := int32(panelPadding)
	for i, row := range rows {
		c := rowColor
		if i == 0 {
			c = panelTitleColor
		}
		rl.DrawText(row, x+panelPadding, y, panelFontSize, c)
		y += panelLineStep
	}
}

func (p *LightPanel) rows(l lights.Light) []string {
	pr := l.Properties
	rows := []string{
		l.Name,
		fmt.Sprintf("Kind: %s", l.Kind),
		fmt.Sprintf("Visible: %v", l.Visible),
		fmt.Sprintf("Intensity: %.2f", pr.Intensity),
		fmt.Sprintf("Color: %s", pr.Color),
	}
	if l.Kind != lights.Ambient {
		rows = append(rows, fmt.Sprintf("Position: %.2f, %.2f, %.2f", pr.Position.X, pr.Position.Y, pr.Position.Z))
	}
	switch l.Kind {
	case lights.Point:
		rows = append(rows,
			fmt.Sprintf("Distance: %.2f", pr.Distance),
			fmt.Sprintf("Decay: %.2f", pr.Decay))
	case lights.Spot:
		rows = append(rows,
			fmt.Sprintf("Distance: %.2f", pr.Distance),
			fmt.Sprintf("Angle: %.1f", pr.Angle),
			fmt.Sprintf("Penumbra: %.2f", pr.Penumbra),
			fmt.Sprintf("Decay: %.2f", pr.Decay))
	case lights.Area:
		rows = append(rows, fmt.Sprintf("Size: %.2f x %.2f", pr.Width, pr.Height))
	}
	if l.Partial {
		rows = append(rows, "(partial bundle: helper missing)")
	}
	return rows
}
