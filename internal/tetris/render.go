package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Layout of the playfield and its panels, in terminal cells.
const (
	leftPanelWidth   = 17
	scorePanelHeight = 8
	helpPanelHeight  = 12
	boardBoxWidth    = BoardWidth*cellWidth + 2
	boardBoxHeight   = BoardHeight + 2
	rightPanelGap    = 2
	rightPanelWidth  = 12
	previewHeight    = 10
	cellWidth        = 2
	layoutWidth      = leftPanelWidth + boardBoxWidth + rightPanelGap + rightPanelWidth
	layoutHeight     = boardBoxHeight
	blockRune        = '█'
	previewInset     = 2
)

// MinScreenSize returns the smallest screen the game can be drawn on.
func MinScreenSize() (w, h int) {
	return layoutWidth, layoutHeight
}

var controlsHelp = []string{
	"←/j  left",
	"→/l  right",
	"↓/k  drop",
	"spc  hard drop",
	"x    rotate cw",
	"z    rotate ccw",
	"c    hold",
	"p    pause",
	"q    quit",
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	ox := (dst.Width() - layoutWidth) / 2
	oy := (dst.Height() - layoutHeight) / 2

	g.renderScore(dst, ox, oy)
	g.renderControls(dst, ox, oy+scorePanelHeight)
	g.renderBoard(dst, ox+leftPanelWidth, oy)

	rx := ox + leftPanelWidth + boardBoxWidth + rightPanelGap
	g.renderPreview(dst, core.NewRect(rx, oy, rightPanelWidth, previewHeight), "Next", g.next, true)
	g.renderPreview(dst, core.NewRect(rx, oy+previewHeight, rightPanelWidth, previewHeight), "Held", g.held, g.hasHeld)

	switch {
	case g.state == StateLost:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d  R to restart", g.score))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y-1, "Window too small")
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d, have %dx%d", layoutWidth, layoutHeight, g.screenW, g.screenH))
	dst.DrawTextCentered(y+1, "Resize to continue")
}

func (g *Game) renderScore(dst *core.Screen, x, y int) {
	dst.DrawBox(core.NewRect(x, y, leftPanelWidth, scorePanelHeight))
	dst.DrawText(x+2, y, " Score ")
	dst.DrawText(x+2, y+2, fmt.Sprintf("Score: %d", g.score))
	dst.DrawText(x+2, y+3, fmt.Sprintf("Lines: %d", g.lines))
	dst.DrawText(x+2, y+4, fmt.Sprintf("Level: %d", g.Level()))
	if g.canHold {
		dst.DrawText(x+2, y+5, "Hold:  ready")
	} else {
		dst.DrawText(x+2, y+5, "Hold:  used")
	}
}

func (g *Game) renderControls(dst *core.Screen, x, y int) {
	dst.DrawBox(core.NewRect(x, y, leftPanelWidth, helpPanelHeight))
	dst.DrawText(x+2, y, " Controls ")
	for i, line := range controlsHelp {
		if i >= helpPanelHeight-2 {
			break
		}
		dst.DrawText(x+2, y+1+i, line)
	}
}

// renderBoard draws the grid and the active piece. Each board cell is two
// terminal columns wide.
func (g *Game) renderBoard(dst *core.Screen, x, y int) {
	dst.DrawBox(core.NewRect(x, y, boardBoxWidth, boardBoxHeight))

	for by := range BoardHeight {
		for bx := range BoardWidth {
			c := g.board[by][bx]
			if c.Occupied {
				drawBlock(dst, x+1+bx*cellWidth, y+1+by, c.Color)
			}
		}
	}

	origin := core.Point{X: g.active.X, Y: g.active.Y}
	color := g.active.Color()
	for _, c := range g.active.Shape().Cells() {
		p := origin.Add(c)
		if !InBounds(p.X, p.Y) {
			continue
		}
		drawBlock(dst, x+1+p.X*cellWidth, y+1+p.Y, color)
	}
}

// renderPreview draws kind at rotation 0 inside a titled box.
func (g *Game) renderPreview(dst *core.Screen, r core.Rect, title string, kind Kind, show bool) {
	dst.DrawBox(r)
	dst.DrawText(r.X+2, r.Y, " "+title+" ")
	if !show {
		return
	}

	color := ColorOf(kind)
	px := r.X + previewInset
	py := r.Y + previewInset + 1
	for _, p := range ShapeOf(kind, 0).Cells() {
		drawBlock(dst, px+p.X*cellWidth, py+p.Y, color)
	}
}

func drawBlock(dst *core.Screen, x, y int, color core.Color) {
	for i := range cellWidth {
		dst.SetColored(x+i, y, blockRune, color)
	}
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	r := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(r, ' ')
	dst.DrawBox(r)

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
