package tetris

import "github.com/vovakirdan/blockfall/internal/core"

// Default board dimensions.
const (
	DefaultWidth  = 10
	DefaultHeight = 20
)

// Cell is one board position. The zero value is an empty cell.
type Cell struct {
	Filled   bool
	Color    core.Color
	Hardened bool // survives one completed-row event before it can be cleared
}

// Grid is the board of locked cells. Row 0 is the top visible row; rows
// with negative indices exist only above the board and are never stored.
type Grid struct {
	width  int
	height int
	cells  [][]Cell
}

// NewGrid creates an empty width×height board.
func NewGrid(width, height int) *Grid {
	g := &Grid{width: width, height: height}
	g.Reset()
	return g
}

// Reset empties every cell.
func (g *Grid) Reset() {
	g.cells = make([][]Cell, g.height)
	for y := range g.cells {
		g.cells[y] = make([]Cell, g.width)
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of visible rows.
func (g *Grid) Height() int { return g.height }

// Cell returns the cell at (x, y); out-of-range positions read as empty.
func (g *Grid) Cell(x, y int) Cell {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return Cell{}
	}
	return g.cells[y][x]
}

// SetCell overwrites a single cell. Out-of-range positions are ignored.
func (g *Grid) SetCell(x, y int, c Cell) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	g.cells[y][x] = c
}

// IsBlocked reports whether shape placed with its origin at (x, y) overlaps a
// wall, the floor or a locked cell. Cells above the top row are only checked
// against the walls.
func (g *Grid) IsBlocked(s Shape, x, y int) bool {
	for _, p := range s.Cells() {
		bx, by := x+p.X, y+p.Y
		if bx < 0 || bx >= g.width || by >= g.height {
			return true
		}
		if by >= 0 && g.cells[by][bx].Filled {
			return true
		}
	}
	return false
}

// Lock writes the shape's cells into the board. Cells above the top row are
// discarded.
func (g *Grid) Lock(s Shape, x, y int, color core.Color, hardened bool) {
	for _, p := range s.Cells() {
		bx, by := x+p.X, y+p.Y
		if by < 0 || by >= g.height || bx < 0 || bx >= g.width {
			continue
		}
		g.cells[by][bx] = Cell{Filled: true, Color: color, Hardened: hardened}
	}
}

// ClearCompletedRows removes every full row and returns how many were removed.
//
// Rows are scanned bottom to top. A full row containing a hardened cell is not
// removed: its hardened cells are demoted to normal so that the next completion
// clears it. After a removal the same index is checked again because the rows
// above have shifted down.
func (g *Grid) ClearCompletedRows() int {
	cleared := 0
	for y := g.height - 1; y >= 0; {
		if !g.rowFull(y) {
			y--
			continue
		}
		if g.demoteRow(y) {
			y--
			continue
		}
		g.removeRow(y)
		cleared++
	}
	return cleared
}

func (g *Grid) rowFull(y int) bool {
	for _, c := range g.cells[y] {
		if !c.Filled {
			return false
		}
	}
	return true
}

// demoteRow softens every hardened cell in row y and reports whether any was found.
func (g *Grid) demoteRow(y int) bool {
	found := false
	for x := range g.cells[y] {
		if g.cells[y][x].Hardened {
			g.cells[y][x].Hardened = false
			found = true
		}
	}
	return found
}

func (g *Grid) removeRow(y int) {
	copy(g.cells[1:y+1], g.cells[:y])
	g.cells[0] = make([]Cell, g.width)
}

// Rows returns a deep copy of the board for read-only consumers.
func (g *Grid) Rows() [][]Cell {
	out := make([][]Cell, g.height)
	for y := range g.cells {
		out[y] = make([]Cell, g.width)
		copy(out[y], g.cells[y])
	}
	return out
}

// FilledCount returns the number of occupied cells.
func (g *Grid) FilledCount() int {
	n := 0
	for _, row := range g.cells {
		for _, c := range row {
			if c.Filled {
				n++
			}
		}
	}
	return n
}
