package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dkaryakin/snaketerm/internal/core"
	"github.com/dkaryakin/snaketerm/internal/snake"
)

// hudHeight is the number of rows reserved above the board.
const hudHeight = 2

// RenderSnapshot draws a game snapshot onto the screen buffer: HUD, board
// border, background grid, snake (head distinguished from body), food, and
// an overlay for the paused/over states. The status line at the bottom
// shows the most recent notification.
func RenderSnapshot(snap snake.Snapshot, status string, dst *core.Screen) {
	dst.Clear()

	renderHUD(snap, dst)

	boardW := snap.GridSize + 2
	boardH := snap.GridSize + 2
	if dst.Width() < boardW || dst.Height() < boardH+hudHeight+1 {
		renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	offsetX := (dst.Width() - boardW) / 2
	offsetY := hudHeight

	// Border around the playfield
	dst.DrawBox(core.NewRect(offsetX, offsetY, boardW, boardH))

	// Background grid
	for y := 0; y < snap.GridSize; y++ {
		for x := 0; x < snap.GridSize; x++ {
			dst.SetCell(offsetX+1+x, offsetY+1+y, '·', core.ColorGray)
		}
	}

	// Food
	dst.SetCell(offsetX+1+snap.Food.X, offsetY+1+snap.Food.Y, '*', core.ColorBrightRed)

	// Snake, head first
	for i, c := range snap.Body {
		r := 'o'
		color := core.ColorGreen
		if i == 0 {
			r = 'O'
			color = core.ColorBrightGreen
		}
		dst.SetCell(offsetX+1+c.X, offsetY+1+c.Y, r, color)
	}

	// Status line
	if status != "" {
		dst.DrawTextColored(1, dst.Height()-1, status, core.ColorGray)
	}

	switch snap.Phase {
	case snake.PhasePaused:
		renderOverlay(dst, "Paused", "Press P to continue")
	case snake.PhaseOver:
		renderOverlay(dst, "Game Over", fmt.Sprintf("Score %d — press R to restart", snap.Score))
	}
}

// renderHUD draws the top status bar.
func renderHUD(snap snake.Snapshot, dst *core.Screen) {
	hud := fmt.Sprintf(" Snake — Score: %d  Best: %d", snap.Score, snap.High)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderOverlay draws a centered two-line message box.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := core.Max(len(line1), len(line2))
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
