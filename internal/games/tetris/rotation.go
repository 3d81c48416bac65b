package tetris

// Rotator turns a shape 90° clockwise.
type Rotator interface {
	Rotate(Shape) Shape
}

// RotatorFunc adapts a plain function to Rotator.
type RotatorFunc func(Shape) Shape

// Rotate calls f(s).
func (f RotatorFunc) Rotate(s Shape) Shape { return f(s) }

var (
	// FixedRotator leaves the shape untouched (O piece).
	FixedRotator Rotator = RotatorFunc(func(s Shape) Shape { return s })
	// RectRotator maps an R×C matrix to C×R; it also handles non-square input.
	RectRotator Rotator = RotatorFunc(rotateRect)
	// SquareRotator transposes the matrix and reverses each row.
	SquareRotator Rotator = RotatorFunc(rotateSquare)
)

var rotators = map[Kind]Rotator{
	KindO: FixedRotator,
	KindI: RectRotator,
}

// RotatorFor returns the rotation strategy of a kind.
func RotatorFor(k Kind) Rotator {
	if r, ok := rotators[k]; ok {
		return r
	}
	return SquareRotator
}

// rotateRect: rotated[c][R-1-r] = shape[r][c].
func rotateRect(s Shape) Shape {
	out := Shape{rows: s.cols, cols: s.rows}
	for r := 0; r < s.rows; r++ {
		for c := 0; c < s.cols; c++ {
			out.cells[c][s.rows-1-r] = s.cells[r][c]
		}
	}
	return out
}

func rotateSquare(s Shape) Shape {
	n := s.rows
	if s.cols != n {
		return rotateRect(s)
	}
	var t Shape
	t.rows, t.cols = n, n
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			t.cells[r][c] = s.cells[c][r]
		}
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n/2; c++ {
			t.cells[r][c], t.cells[r][n-1-c] = t.cells[r][n-1-c], t.cells[r][c]
		}
	}
	return t
}

// kickOffsets is the horizontal search order tried when a rotation collides.
var kickOffsets = [...]int{0, 1, 2, -1, -2}

// Rotation describes the outcome of a rotation attempt.
type Rotation struct {
	Piece    Piece // the resulting piece; equal to the input when rejected
	Kick     int   // horizontal offset that made the rotation fit
	Accepted bool
}

// Rotate turns p clockwise on g, searching kickOffsets for a free position.
// A rejected rotation returns p unchanged. Accepted rotations consume one unit
// of a finite rotation budget.
func Rotate(p Piece, g *Grid) Rotation {
	if !p.CanRotate() {
		return Rotation{Piece: p}
	}

	candidate := RotatorFor(p.Kind).Rotate(p.Shape)
	for _, dx := range kickOffsets {
		if g.IsBlocked(candidate, p.X+dx, p.Y) {
			continue
		}
		next := p
		next.Shape = candidate
		next.X += dx
		if next.RotationsRemaining > 0 {
			next.RotationsRemaining--
		}
		return Rotation{Piece: next, Kick: dx, Accepted: true}
	}
	return Rotation{Piece: p}
}
