package terminal

import (
	"unicode/utf8"

	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-studio/internal/commands"
	"scene-studio/internal/logger"
)

const (
	BarHeight = 40
	prompt    = "> "
	fontSize  = 20
	padding   = 8
	// Number of log lines drawn above the input bar when the terminal is
	// open.
	maxLinesOnScreen = 12
	lineHeight       = fontSize + 4
)

var (
	// Reused every frame to avoid per-frame color allocations.
	barColor    = rl.NewColor(40, 40, 40, 255)
	lineColor   = rl.NewColor(80, 80, 80, 255)
	histBgColor = rl.NewColor(24, 24, 24, 240)
)

// Terminal is the command input bar at the bottom of the screen, shown and
// hidden with ESC. Every submitted line runs through the command registry;
// command output and errors appear in the log lines above the bar.
type Terminal struct {
	log      *logger.Logger
	reg      *commands.Registry
	inputBuf string
	open     bool
}

// New returns a Terminal that logs lines and runs them through reg. It starts
// closed; press ESC to open.
func New(log *logger.Logger, reg *commands.Registry) *Terminal {
	return &Terminal{log: log, reg: reg}
}

// IsOpen returns true when the terminal is visible and capturing keyboard
// input (viewport camera keys are suspended).
func (t *Terminal) IsOpen() bool {
	return t.open
}

// Update handles ESC (toggle) and, when open, typing, backspace, and enter.
// Call once per frame.
func (t *Terminal) Update() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		t.open = !t.open
	}
	if !t.open {
		return
	}
	for {
		c := rl.GetCharPressed()
		if c == 0 {
			break
		}
		t.inputBuf += string(rune(c))
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(t.inputBuf) > 0 {
		_, size := utf8.DecodeLastRuneInString(t.inputBuf)
		t.inputBuf = t.inputBuf[:len(t.inputBuf)-size]
	}
	if (rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter)) && t.inputBuf != "" {
		line := t.inputBuf
		t.inputBuf = ""
		t.log.Log(prompt + line)
		if args, ok := commands.Parse(line); ok {
			if err := t.reg.Execute(args); err != nil {
				t.log.Warn(err.Error())
			}
		}
	}
}

// Draw draws the input bar at the bottom when open, with recent log lines
// above it. Uses GetScreenWidth/GetScreenHeight so the bar tracks resizes.
func (t *Terminal) Draw() {
	if !t.open {
		return
	}
	screenW := int(rl.GetScreenWidth())
	screenH := int(rl.GetScreenHeight())
	barY := screenH - BarHeight

	histHeight := maxLinesOnScreen * lineHeight
	histY := barY - histHeight
	if histY < 0 {
		histHeight = barY
		histY = 0
	}
	if histHeight > 0 {
		rl.DrawRectangle(0, int32(histY), int32(screenW), int32(histHeight), histBgColor)
	}
	lines := t.log.Lines()
	start := 0
	if len(lines) > maxLinesOnScreen {
		start = len(lines) - maxLinesOnScreen
	}
	for i := start; i < len(lines); i++ {
		y := histY + (i-start)*lineHeight + padding
		line := lines[i]
		if len(line) > 200 {
			line = line[:197] + "..."
		}
		rl.DrawText(line, int32(padding), int32(y), fontSize, rl.LightGray)
	}

	rl.DrawRectangle(0, int32(barY), int32(screenW), BarHeight, barColor)
	rl.DrawRectangle(0, int32(barY), int32(screenW), 1, lineColor)
	rl.DrawText(prompt+t.inputBuf+"|", padding, int32(barY+padding), fontSize, rl.White)
}
