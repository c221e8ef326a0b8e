package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/dino-dash/internal/config"
	"github.com/vovakirdan/dino-dash/internal/core"
	"github.com/vovakirdan/dino-dash/internal/runner"
)

// hudRows is the number of screen rows above the play area.
const hudRows = 1

// Scene draws session snapshots onto a cell buffer, scaling world pixels
// to terminal cells.
type Scene struct {
	cellW float64
	cellH float64
}

// NewScene creates a scene for the given cell size.
func NewScene(rc config.RenderConfig) Scene {
	sc := Scene{cellW: rc.CellWidth, cellH: rc.CellHeight}
	if sc.cellW <= 0 {
		sc.cellW = 10
	}
	if sc.cellH <= 0 {
		sc.cellH = 20
	}
	return sc
}

// Viewport returns the play area in world pixels for a screen of w x h
// cells. The HUD row and the help line are not part of the play area.
func (sc Scene) Viewport(w, h int) core.Viewport {
	rows := max(h-hudRows-1, 1)
	return core.Viewport{
		Width:  float64(max(w, 1)) * sc.cellW,
		Height: float64(rows) * sc.cellH,
	}
}

// CellRect maps a world box to the screen cells it covers.
func (sc Scene) CellRect(b core.Box) core.Rect {
	x0 := int(math.Floor(b.Left / sc.cellW))
	x1 := int(math.Ceil(b.Right / sc.cellW))
	y0 := int(math.Floor(b.Top / sc.cellH))
	y1 := int(math.Ceil(b.Bottom / sc.cellH))
	return core.NewRect(x0, y0+hudRows, max(x1-x0, 1), max(y1-y0, 1))
}

// row maps a world y coordinate to a screen row.
func (sc Scene) row(y float64) int {
	return int(math.Floor(y/sc.cellH)) + hudRows
}

// Draw renders snap into s.
func (sc Scene) Draw(s *core.Screen, snap runner.Snapshot) {
	s.Clear()

	if snap.State == runner.StateWelcome {
		sc.drawWelcome(s, snap)
		return
	}

	sc.drawHUD(s, snap)
	sc.drawWorld(s, snap)

	switch {
	case snap.State == runner.StateGameOver:
		sc.drawGameOver(s, snap)
	case snap.Paused:
		s.DrawTextCentered(s.Height()/3, " PAUSED - press p to resume ", core.ColorBrightCyan)
	case !snap.Live:
		s.DrawTextCentered(s.Height()/3, fmt.Sprintf(" GET READY %.1f ", snap.Countdown.Seconds()), core.ColorBrightCyan)
	}
}

// drawHUD renders the score line.
func (sc Scene) drawHUD(s *core.Screen, snap runner.Snapshot) {
	scoreColor := core.ColorWhite
	if snap.Pulse {
		scoreColor = core.ColorBrightYellow
	}
	score := fmt.Sprintf("SCORE %d", snap.Score)
	s.DrawTextColored(1, 0, score, scoreColor)

	rest := fmt.Sprintf("  BEST %d  LVL %d", snap.Best, snap.Level)
	s.DrawTextColored(1+len(score), 0, rest, core.ColorWhite)

	if snap.Gap > 0 && snap.State == runner.StatePlaying {
		gap := fmt.Sprintf("%d to beat the high score", snap.Gap)
		s.DrawTextColored(s.Width()-len(gap)-1, 0, gap, core.ColorGray)
	}
}

// drawWorld renders the ground, hazards and player.
func (sc Scene) drawWorld(s *core.Screen, snap runner.Snapshot) {
	s.DrawHLine(0, sc.row(snap.GroundY), s.Width(), '▔', core.ColorGray)

	for _, h := range snap.Hazards {
		r := sc.CellRect(h.Box)
		switch {
		case h.Passed:
			s.DrawRect(r, '░', core.ColorGray)
		case h.Kind == runner.KindFlyer:
			s.DrawRect(r, '▼', core.ColorMagenta)
		default:
			s.DrawRect(r, '▲', core.ColorOrange)
		}
	}

	p := snap.Player
	color := core.ColorBrightGreen
	if p.Airborne {
		color = core.ColorGreen
	}
	if snap.State == runner.StateGameOver {
		color = core.ColorRed
	}
	r := sc.CellRect(p.Box)
	s.DrawRect(r, '█', color)

	// Eye on the leading side
	eyeX := r.Right() - 1
	if p.Facing < 0 {
		eyeX = r.X
	}
	s.SetColored(eyeX, r.Y, 'o', color)
}

// drawWelcome renders the title screen.
func (sc Scene) drawWelcome(s *core.Screen, snap runner.Snapshot) {
	y := s.Height()/2 - 3
	s.DrawTextCentered(y, "D I N O   D A S H", core.ColorBrightCyan)
	s.DrawTextCentered(y+2, "Jump the rocks. Stay under the dragon.", core.ColorWhite)
	if snap.Best > 0 {
		s.DrawTextCentered(y+4, fmt.Sprintf("High score: %d", snap.Best), core.ColorBrightYellow)
	}
	s.DrawTextCentered(y+6, "Press ENTER or SPACE to start", core.ColorGray)
}

// drawGameOver renders the result panel over the frozen world.
func (sc Scene) drawGameOver(s *core.Screen, snap runner.Snapshot) {
	lines := []struct {
		text  string
		color core.Color
	}{
		{"GAME OVER", core.ColorRed},
		{fmt.Sprintf("Score %d   Best %d", snap.Score, snap.Best), core.ColorWhite},
		{snap.Verdict.Message(), core.ColorBrightYellow},
		{"ENTER to play again, q to quit", core.ColorGray},
	}

	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l.text)))
	}
	width += 4
	height := len(lines) + 2

	box := core.NewRect((s.Width()-width)/2, (s.Height()-height)/2, width, height)
	s.DrawRect(box, ' ', core.ColorDefault)
	s.DrawBox(box)
	for i, l := range lines {
		s.DrawTextCentered(box.Y+1+i, l.text, l.color)
	}
}
