package echo

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/echo-arena/internal/core"
)

// Layout constants
const (
	hudRows    = 2  // Score line and powerup line above the arena
	minScreenW = 40 // Minimum usable width
	minScreenH = 12 // Minimum usable height
	barWidth   = 20 // Powerup timer bar cells
)

// echoPalette cycles by echo spawn order.
var echoPalette = []core.Color{
	core.ColorRed,
	core.ColorOrange,
	core.ColorYellow,
	core.ColorGreen,
	core.ColorCyan,
	core.ColorBlue,
	core.ColorPurple,
	core.ColorPink,
}

// KindColor returns the color used for a powerup kind.
func KindColor(k Kind) core.Color {
	switch k {
	case KindGhostEater:
		return core.ColorBrightMagenta
	case KindTimeFreeze:
		return core.ColorBrightCyan
	case KindShrink:
		return core.ColorBrightGreen
	default:
		return core.ColorDefault
	}
}

// RenderSnapshot draws a snapshot: HUD on top, the arena scaled into the
// rest of the screen, and a game-over panel when the run has ended.
func RenderSnapshot(snap Snapshot, s *core.Screen) {
	s.Clear()

	if s.Width() < minScreenW || s.Height() < minScreenH {
		s.DrawTextCentered(s.Height()/2-1, "Window too small", core.ColorBrightRed)
		s.DrawTextCentered(s.Height()/2, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH), core.ColorGray)
		return
	}

	renderHUD(snap, s)

	box := core.NewRect(0, hudRows, s.Width(), s.Height()-hudRows)
	s.DrawBox(box, core.ColorGray)
	inner := core.NewRect(box.X+1, box.Y+1, box.W-2, box.H-2)

	for _, it := range snap.Items {
		x, y := project(it.Pos, snap, inner)
		s.SetColored(x, y, '*', core.ColorBrightYellow)
	}
	for _, p := range snap.Pickups {
		x, y := project(p.Pos, snap, inner)
		s.SetColored(x, y, p.Kind.Glyph(), KindColor(p.Kind))
	}
	for _, e := range snap.Echoes {
		x, y := project(e.Pos, snap, inner)
		glyph, color := 'O', echoPalette[e.Palette%len(echoPalette)]
		switch {
		case e.Frozen:
			color = core.ColorBrightBlue
		case e.Harmless:
			glyph, color = 'o', core.ColorGray
		}
		s.SetColored(x, y, glyph, color)
	}

	px, py := project(snap.Player.Pos, snap, inner)
	s.SetColored(px, py, playerGlyph(snap), playerColor(snap))

	if snap.Phase == PhaseGameOver {
		renderGameOver(snap, s)
	}
}

// project maps world coordinates into the inner arena rectangle.
func project(p core.Vec, snap Snapshot, inner core.Rect) (int, int) {
	if snap.ArenaW <= 0 || snap.ArenaH <= 0 {
		return inner.X, inner.Y
	}
	cx := int(p.X / snap.ArenaW * float64(inner.W))
	cy := int(p.Y / snap.ArenaH * float64(inner.H))
	return inner.X + core.Clamp(cx, 0, inner.W-1), inner.Y + core.Clamp(cy, 0, inner.H-1)
}

func playerGlyph(snap Snapshot) rune {
	if snap.Player.Shrunk {
		return '•'
	}
	return '@'
}

func playerColor(snap Snapshot) core.Color {
	if snap.Phase == PhaseGameOver {
		return core.ColorBrightRed
	}
	if snap.Powerup != nil {
		return KindColor(snap.Powerup.Kind)
	}
	if snap.Player.Invincible && blink(snap.Tick, snap.TickRate) {
		return core.ColorGray
	}
	return core.ColorBrightWhite
}

// blink alternates four times per second.
func blink(tick uint64, rate int) bool {
	period := uint64(max(rate/4, 1))
	return (tick/period)%2 == 1
}

func renderHUD(snap Snapshot, s *core.Screen) {
	left := fmt.Sprintf(" ECHO  Score: %d  Best: %d  Time: %.1fs", snap.Score, snap.Best, snap.Elapsed())
	s.DrawTextColored(0, 0, left, core.ColorBrightWhite)

	// The right side shortens, then disappears, rather than overwrite the score.
	next := seconds(snap.NextEchoIn, snap.TickRate)
	for _, right := range []string{
		fmt.Sprintf("Echoes: %d  Next echo: %.1fs ", len(snap.Echoes), next),
		fmt.Sprintf("Next: %.1fs ", next),
	} {
		if len(left)+1+len(right) <= s.Width() {
			s.DrawTextColored(s.Width()-len(right), 0, right, core.ColorGray)
			break
		}
	}

	if snap.Powerup == nil {
		s.DrawTextColored(1, 1, fmt.Sprintf("Run %d  Kills: %d", snap.Run, snap.Kills), core.ColorGray)
		return
	}

	p := snap.Powerup
	color := KindColor(p.Kind)
	remaining := seconds(p.Remaining, snap.TickRate)
	// Flash while the effect is about to run out.
	if remaining < 1.5 && blink(snap.Tick, snap.TickRate) {
		color = core.ColorGray
	}
	filled := int(math.Round(float64(barWidth) * float64(p.Remaining) / float64(max(p.Duration, 1))))
	filled = core.Clamp(filled, 0, barWidth)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	s.DrawTextColored(1, 1, fmt.Sprintf("%s %s %.1fs", p.Kind, bar, remaining), color)
}

func renderGameOver(snap Snapshot, s *core.Screen) {
	lines := []string{
		"GAME OVER",
		snap.Cause,
		fmt.Sprintf("Score: %d  Best: %d", snap.Score, snap.Best),
		fmt.Sprintf("Survived %.1fs, ate %d echoes", snap.Elapsed(), snap.Kills),
		"R to restart, Q to quit",
	}

	w := 0
	for _, l := range lines {
		w = max(w, len(l))
	}
	w += 4
	h := len(lines) + 2
	box := core.NewRect((s.Width()-w)/2, (s.Height()-h)/2, w, h)
	s.DrawRect(box, ' ')
	s.DrawBox(box, core.ColorBrightRed)

	for i, l := range lines {
		color := core.ColorWhite
		if i == 0 {
			color = core.ColorBrightRed
		}
		s.DrawTextCentered(box.Y+1+i, l, color)
	}
}

func seconds(ticks, rate int) float64 {
	if rate <= 0 {
		return 0
	}
	return float64(ticks) / float64(rate)
}
