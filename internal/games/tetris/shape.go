// Package tetris implements the falling-block puzzle engine: the board, the
// active piece, rotation with wall kicks, lock delay, line clearing, scoring
// and the session state machine that ties them together.
//
// The engine is step driven. Nothing inside it reads a clock or blocks; the
// host advances time through Session.Tick and applies one player command at
// a time.
package tetris

import (
	"strings"

	"github.com/vovakirdan/blockfall/internal/core"
)

// maxShapeSize bounds every piece matrix. The largest piece (I) is 4×4.
const maxShapeSize = 4

// Kind identifies one of the seven pieces.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindL
	KindJ
)

// Kinds lists every piece kind in canonical order.
var Kinds = [...]Kind{KindI, KindO, KindT, KindS, KindZ, KindL, KindJ}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "?"
	}
	return kindNames[k]
}

var kindNames = [...]string{"I", "O", "T", "S", "Z", "L", "J"}

// Color returns the display color of a kind.
func (k Kind) Color() core.Color {
	switch k {
	case KindI:
		return core.ColorCyan
	case KindO:
		return core.ColorYellow
	case KindT:
		return core.ColorPurple
	case KindS:
		return core.ColorGreen
	case KindZ:
		return core.ColorRed
	case KindL:
		return core.ColorOrange
	case KindJ:
		return core.ColorBlue
	default:
		return core.ColorDefault
	}
}

// Shape is a piece's local occupancy matrix. It is a comparable value:
// transforms return a new Shape and never modify the receiver, so the active,
// held and next pieces can never alias each other.
type Shape struct {
	rows, cols int
	cells      [maxShapeSize][maxShapeSize]bool
}

// ParseShape builds a shape from rows of text where '#' marks an occupied cell.
// Rows must have equal length and fit in 4×4.
func ParseShape(rows ...string) Shape {
	var s Shape
	s.rows = min(len(rows), maxShapeSize)
	for r := 0; r < s.rows; r++ {
		line := []rune(rows[r])
		s.cols = max(s.cols, min(len(line), maxShapeSize))
		for c := 0; c < len(line) && c < maxShapeSize; c++ {
			s.cells[r][c] = line[c] == '#'
		}
	}
	return s
}

// Rows returns the matrix height.
func (s Shape) Rows() int { return s.rows }

// Cols returns the matrix width.
func (s Shape) Cols() int { return s.cols }

// At reports whether the local cell (r, c) is occupied.
func (s Shape) At(r, c int) bool {
	if r < 0 || r >= s.rows || c < 0 || c >= s.cols {
		return false
	}
	return s.cells[r][c]
}

// Cells returns the occupied local cells as (col, row) offsets.
func (s Shape) Cells() []core.Point {
	pts := make([]core.Point, 0, 4)
	for r := 0; r < s.rows; r++ {
		for c := 0; c < s.cols; c++ {
			if s.cells[r][c] {
				pts = append(pts, core.Point{X: c, Y: r})
			}
		}
	}
	return pts
}

// String renders the shape as '#' and '.' rows, mainly for test failures.
func (s Shape) String() string {
	var b strings.Builder
	for r := 0; r < s.rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < s.cols; c++ {
			if s.cells[r][c] {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

var baseShapes = map[Kind]Shape{
	KindI: ParseShape(
		"....",
		"####",
		"....",
		"....",
	),
	KindO: ParseShape(
		"##",
		"##",
	),
	KindT: ParseShape(
		".#.",
		"###",
		"...",
	),
	KindS: ParseShape(
		".##",
		"##.",
		"...",
	),
	KindZ: ParseShape(
		"##.",
		".##",
		"...",
	),
	KindL: ParseShape(
		"..#",
		"###",
		"...",
	),
	KindJ: ParseShape(
		"#..",
		"###",
		"...",
	),
}

// BaseShape returns the spawn orientation of a kind.
func BaseShape(k Kind) Shape {
	return baseShapes[k]
}
