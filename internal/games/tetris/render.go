package tetris

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Glyphs. Every board cell is two characters wide so the board looks square.
const (
	blockGlyph    = '█'
	hardenedGlyph = '▓'
	ghostGlyph    = '░'
	emptyGlyph    = '·'
	panelWidth    = 16
)

// boardLayout holds the screen position of the framed board.
type boardLayout struct {
	x, y   int // top-left corner of the frame
	w, h   int // frame size including borders
	panelX int
}

func layoutFor(dst *core.Screen, sn Snapshot) (boardLayout, bool) {
	w := sn.Width*2 + 2
	h := sn.Height + 2
	total := w + 1 + panelWidth
	if dst.Width() < total || dst.Height() < h {
		return boardLayout{w: total, h: h}, false
	}
	x := (dst.Width() - total) / 2
	y := (dst.Height() - h) / 2
	return boardLayout{x: x, y: y, w: w, h: h, panelX: x + w + 1}, true
}

// Render draws the board, the active and ghost pieces, and the side panel.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}
	sn := g.session.Snapshot()

	l, ok := layoutFor(dst, sn)
	if !ok {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", l.w, l.h))
		return
	}

	dst.DrawBox(core.NewRect(l.x, l.y, l.w, l.h), core.ColorGray)
	renderBoard(dst, l, sn)
	renderPanel(dst, l, sn, g.Title())

	switch {
	case sn.GameOver:
		drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  R to restart", sn.Score))
	case sn.Paused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

func setBlock(dst *core.Screen, l boardLayout, x, y int, r rune, c core.Color) {
	sx := l.x + 1 + x*2
	sy := l.y + 1 + y
	dst.SetColored(sx, sy, r, c)
	dst.SetColored(sx+1, sy, r, c)
}

func renderBoard(dst *core.Screen, l boardLayout, sn Snapshot) {
	for y := 0; y < sn.Height; y++ {
		for x := 0; x < sn.Width; x++ {
			cell := sn.CellAt(x, y)
			switch {
			case !cell.Filled:
				setBlock(dst, l, x, y, emptyGlyph, core.ColorDarkGray)
			case cell.Hardened:
				setBlock(dst, l, x, y, hardenedGlyph, core.ColorWhite)
			default:
				setBlock(dst, l, x, y, blockGlyph, cell.Color)
			}
		}
	}

	if sn.GameOver {
		return
	}

	// Ghost first so the active piece covers it where they overlap.
	ghost := sn.Piece
	ghost.Y = sn.GhostY
	for _, p := range ghost.Blocks() {
		if p.Y >= 0 {
			setBlock(dst, l, p.X, p.Y, ghostGlyph, sn.Piece.Color)
		}
	}

	glyph := rune(blockGlyph)
	if sn.Piece.Hardened {
		glyph = hardenedGlyph
	}
	for _, p := range sn.Piece.Blocks() {
		if p.Y >= 0 {
			setBlock(dst, l, p.X, p.Y, glyph, sn.Piece.Color)
		}
	}
}

func renderPanel(dst *core.Screen, l boardLayout, sn Snapshot, title string) {
	x := l.panelX
	y := l.y
	dst.DrawTextColored(x, y, title, core.ColorBrightWhite)
	dst.DrawText(x, y+2, fmt.Sprintf("Score %d", sn.Score))
	dst.DrawText(x, y+3, fmt.Sprintf("Lines %d", sn.Lines))
	dst.DrawText(x, y+4, fmt.Sprintf("Level %d", sn.Level))
	if sn.Gravity > 1 {
		dst.DrawTextColored(x, y+5, fmt.Sprintf("Gravity x%d", sn.Gravity), core.ColorBrightRed)
	}

	dst.DrawText(x, y+7, "Next")
	drawPreview(dst, x, y+8, sn.Next, true)

	holdLabel := "Hold"
	if !sn.CanHold {
		holdLabel = "Hold (used)"
	}
	dst.DrawText(x, y+13, holdLabel)
	if sn.HasHeld {
		drawPreview(dst, x, y+14, sn.Held, sn.CanHold)
	}

	if sn.Landed() {
		dst.DrawText(x, y+19, lockBar(sn.LockFraction, panelWidth-2))
		dst.DrawText(x, y+20, fmt.Sprintf("Resets %d/%d", sn.LockResets, sn.MaxResets))
	}
}

// lockBar draws a text meter of the lock timer for hosts without a
// dedicated progress widget.
func lockBar(percent float64, width int) string {
	filled := int(percent / 100 * float64(width))
	filled = core.Clamp(filled, 0, width)
	return "[" + strings.Repeat("=", filled) + strings.Repeat(" ", width-filled) + "]"
}

func drawPreview(dst *core.Screen, x, y int, p Piece, enabled bool) {
	color := p.Color
	if !enabled {
		color = core.ColorGray
	}
	for _, c := range p.Shape.Cells() {
		dst.SetColored(x+c.X*2, y+c.Y, blockGlyph, color)
		dst.SetColored(x+c.X*2+1, y+c.Y, blockGlyph, color)
	}
}

func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorWhite)
	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
