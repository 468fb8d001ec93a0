package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Layout in screen cells. Every board cell is two characters wide; the well
// has side walls and a floor but no ceiling.
const (
	cellW    = 2
	wellW    = Width*cellW + 2
	wellH    = Height + 1
	sideGap  = 2
	sideW    = 18
	layoutW  = wellW + sideGap + sideW
	layoutH  = wellH
	wallRune = '│'
)

// MinScreenSize returns the smallest screen the game can be drawn on.
func MinScreenSize() (w, h int) {
	return layoutW, layoutH
}

// Render draws the well, the falling piece and the sidebar.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	layout := core.CenteredRect(dst.Width(), dst.Height(), layoutW, layoutH)
	if !layout.Fits(dst.Width(), dst.Height()) {
		renderTooSmall(dst)
		return
	}

	well := core.NewRect(layout.X, layout.Y, wellW, wellH)
	g.renderWell(dst, well)
	g.renderPiece(dst, well)
	g.renderSidebar(dst, core.NewRect(well.Right()+sideGap, layout.Y, sideW, layoutH))

	switch g.board.State() {
	case StatePaused:
		renderOverlay(dst, well, "Paused", "P to continue")
	case StateGameOver:
		renderOverlay(dst, well, "Game Over", "R to restart")
	}
}

// cellOrigin returns the screen position of board cell (x, y).
func cellOrigin(well core.Rect, x, y int) (int, int) {
	return well.X + 1 + x*cellW, well.Y + (Height - 1 - y)
}

func (g *Game) renderWell(dst *core.Screen, well core.Rect) {
	floor := well.Bottom() - 1
	for sy := well.Y; sy < floor; sy++ {
		dst.SetCell(well.X, sy, wallRune, core.ColorGray)
		dst.SetCell(well.Right()-1, sy, wallRune, core.ColorGray)
	}
	dst.SetCell(well.X, floor, '└', core.ColorGray)
	dst.DrawHLine(well.X+1, floor, wellW-2, '─', core.ColorGray)
	dst.SetCell(well.Right()-1, floor, '┘', core.ColorGray)

	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			sx, sy := cellOrigin(well, x, y)
			if s := g.board.ShapeAt(x, y); s != ShapeNone {
				dst.DrawColoredText(sx, sy, g.cfg.Display.Block, s.Color())
			} else {
				dst.DrawColoredText(sx, sy, g.cfg.Display.Empty, core.ColorGray)
			}
		}
	}
}

func (g *Game) renderPiece(dst *core.Screen, well core.Rect) {
	cur := g.board.Current()
	if cur.Shape() == ShapeNone {
		return
	}
	for _, c := range g.board.CurrentCells() {
		sx, sy := cellOrigin(well, c.X, c.Y)
		dst.DrawColoredText(sx, sy, g.cfg.Display.Block, cur.Shape().Color())
	}
}

func (g *Game) renderSidebar(dst *core.Screen, side core.Rect) {
	dst.DrawColoredText(side.X, side.Y, "TETRIS", core.ColorWhite)
	dst.DrawHLine(side.X, side.Y+1, side.W, '─', core.ColorGray)
	dst.DrawText(side.X, side.Y+3, fmt.Sprintf("Lines  %d", g.board.LinesRemoved()))
	dst.DrawText(side.X, side.Y+4, "Status "+truncate(g.hud.status, side.W-7))
	dst.DrawColoredText(side.X, side.Y+6, fmt.Sprintf("Speed  %dms", g.board.Interval().Milliseconds()), core.ColorGray)
}

// renderOverlay draws a two-line message box centered on the well.
func renderOverlay(dst *core.Screen, well core.Rect, line1, line2 string) {
	boxW := max(len(line1), len(line2)) + 4
	boxH := 5
	box := core.NewRect(well.X+(well.W-boxW)/2, well.Y+(well.H-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawColoredText(box.X+(boxW-len(line1))/2, box.Y+1, line1, core.ColorWhite)
	dst.DrawText(box.X+(boxW-len(line2))/2, box.Y+3, line2)
}

func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y-1, "Window too small")
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d", layoutW, layoutH))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 {
		return ""
	}
	if len(r) > n {
		return string(r[:n])
	}
	return s
}
