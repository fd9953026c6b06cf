package tui

import (
	"strings"
	"testing"

	"github.com/dkaryakin/snaketerm/internal/core"
	"github.com/dkaryakin/snaketerm/internal/snake"
)

func testSnapshot() snake.Snapshot {
	return snake.Snapshot{
		GridSize: 20,
		Body:     []snake.Cell{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}},
		Food:     snake.Cell{X: 10, Y: 2},
		Heading:  snake.HeadingRight,
		Score:    20,
		High:     120,
		Phase:    snake.PhaseRunning,
	}
}

func TestRenderSnapshotDrawsBoard(t *testing.T) {
	snap := testSnapshot()
	screen := core.NewScreen(80, 30)

	RenderSnapshot(snap, "score 20", screen)

	content := screen.String()
	if !strings.Contains(content, "Score: 20") {
		t.Error("HUD should contain the score")
	}
	if !strings.Contains(content, "Best: 120") {
		t.Error("HUD should contain the best score")
	}
	if !strings.Contains(content, "score 20") {
		t.Error("Status line should be rendered")
	}

	// Board geometry: border is one cell around the 20x20 grid,
	// centered horizontally below the two HUD rows.
	offsetX := (80 - 22) / 2
	offsetY := 2

	head := screen.GetCell(offsetX+1+5, offsetY+1+5)
	if head.Rune != 'O' || head.Color != core.ColorBrightGreen {
		t.Errorf("Head cell = %+v, expected bright green 'O'", head)
	}

	body := screen.GetCell(offsetX+1+4, offsetY+1+5)
	if body.Rune != 'o' || body.Color != core.ColorGreen {
		t.Errorf("Body cell = %+v, expected green 'o'", body)
	}

	food := screen.GetCell(offsetX+1+10, offsetY+1+2)
	if food.Rune != '*' || food.Color != core.ColorBrightRed {
		t.Errorf("Food cell = %+v, expected bright red '*'", food)
	}

	if screen.Get(offsetX, offsetY) != '┌' {
		t.Error("Board border missing")
	}
}

func TestRenderSnapshotOverlays(t *testing.T) {
	screen := core.NewScreen(80, 30)

	snap := testSnapshot()
	snap.Phase = snake.PhasePaused
	RenderSnapshot(snap, "", screen)
	if !strings.Contains(screen.String(), "Paused") {
		t.Error("Paused overlay missing")
	}

	snap.Phase = snake.PhaseOver
	RenderSnapshot(snap, "", screen)
	content := screen.String()
	if !strings.Contains(content, "Game Over") {
		t.Error("Game over overlay missing")
	}
	if !strings.Contains(content, "Score 20") {
		t.Error("Game over overlay should show the final score")
	}
}

func TestRenderSnapshotIdleHasNoOverlay(t *testing.T) {
	// The idle phase is a plain board: the model starts the engine before
	// the first frame, so no start prompt exists to show.
	snap := testSnapshot()
	snap.Phase = snake.PhaseIdle
	screen := core.NewScreen(80, 30)

	RenderSnapshot(snap, "", screen)

	content := screen.String()
	if strings.Contains(content, "Paused") || strings.Contains(content, "Game Over") {
		t.Error("Idle frame should not carry a pause or game-over overlay")
	}
	if screen.Get((80-22)/2, 2) != '┌' {
		t.Error("Board border should render while idle")
	}
}

func TestRenderSnapshotTooSmall(t *testing.T) {
	screen := core.NewScreen(15, 10)

	RenderSnapshot(testSnapshot(), "", screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("Too-small overlay missing")
	}
}

func TestRenderScreenPlainOutput(t *testing.T) {
	screen := core.NewScreen(10, 3)
	screen.DrawText(0, 0, "abc")
	screen.SetCell(0, 1, 'x', core.ColorGreen)

	out := RenderScreen(screen)
	if !strings.Contains(out, "abc") {
		t.Error("RenderScreen lost plain text")
	}
	if !strings.Contains(out, "x") {
		t.Error("RenderScreen lost colored text")
	}
	if strings.Count(out, "\n") != 2 {
		t.Errorf("RenderScreen produced %d newlines, expected 2", strings.Count(out, "\n"))
	}
}
