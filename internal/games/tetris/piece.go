package tetris

import "github.com/vovakirdan/blockfall/internal/core"

// Unlimited marks a piece that may rotate any number of times.
const Unlimited = -1

// Attributes are the per-piece variant flags.
type Attributes struct {
	// RotationBudget is the number of rotations the piece may perform;
	// Unlimited (-1) removes the limit. O pieces never rotate regardless.
	RotationBudget int
	// Hardened pieces lock as hardened cells.
	Hardened bool
}

// DefaultAttributes returns the classic attributes: unlimited rotation,
// normal cells.
func DefaultAttributes() Attributes {
	return Attributes{RotationBudget: Unlimited}
}

// Piece is the active falling shape. It is a value: every move produces a
// new Piece, and only the Session decides which one is current.
type Piece struct {
	Kind               Kind
	Shape              Shape
	Color              core.Color
	X, Y               int // board position of the shape's top-left corner
	RotationsRemaining int // Unlimited, or the rotations still allowed
	Hardened           bool

	attrs Attributes
}

// NewPiece returns a piece of the given kind in its base orientation at (0, 0).
func NewPiece(kind Kind, attrs Attributes) Piece {
	remaining := attrs.RotationBudget
	if kind == KindO {
		remaining = 0
	}
	return Piece{
		Kind:               kind,
		Shape:              BaseShape(kind),
		Color:              kind.Color(),
		RotationsRemaining: remaining,
		Hardened:           attrs.Hardened,
		attrs:              attrs,
	}
}

// Fresh returns a new piece of the same kind and attributes in its base
// orientation, as if it had just been drawn.
func (p Piece) Fresh() Piece {
	return NewPiece(p.Kind, p.attrs)
}

// SpawnedOn places the piece at the spawn position of a board of the given width.
func (p Piece) SpawnedOn(boardWidth int) Piece {
	p.X = boardWidth/2 - p.Shape.Cols()/2
	p.Y = 0
	return p
}

// Moved returns the piece translated by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Blocks returns the board coordinates covered by the piece.
func (p Piece) Blocks() []core.Point {
	cells := p.Shape.Cells()
	origin := core.Point{X: p.X, Y: p.Y}
	for i := range cells {
		cells[i] = cells[i].Add(origin)
	}
	return cells
}

// CanRotate reports whether the rotation budget allows another rotation.
func (p Piece) CanRotate() bool {
	return p.RotationsRemaining != 0
}
