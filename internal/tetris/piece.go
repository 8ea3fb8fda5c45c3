package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Piece is a kind in one rotation state. It is a value: rotating returns a
// new Piece, so a candidate rotation can be tested against the board and
// dropped without touching the current one.
type Piece struct {
	Kind     Kind
	Rotation int // always in [0, RotationCount)
}

// NewPiece returns kind in its spawn rotation.
func NewPiece(kind Kind) Piece {
	return Piece{Kind: kind}
}

// RotateClockwise returns the piece turned clockwise (rotation - 1 mod 4).
func (p Piece) RotateClockwise() Piece {
	p.Rotation = normalizeRotation(p.Rotation - 1)
	return p
}

// RotateCounterClockwise returns the piece turned counter-clockwise
// (rotation + 1 mod 4).
func (p Piece) RotateCounterClockwise() Piece {
	p.Rotation = normalizeRotation(p.Rotation + 1)
	return p
}

// Shape returns the bounding box for the current rotation.
func (p Piece) Shape() Shape {
	return ShapeOf(p.Kind, p.Rotation)
}

// Color returns the kind's color.
func (p Piece) Color() core.Color {
	return ColorOf(p.Kind)
}

// ActivePiece is the falling piece and its board origin. Coordinates are
// signed: a bounding box may hang off the board as long as its filled
// cells do not.
type ActivePiece struct {
	Piece
	X, Y int
}

// spawnPosition returns the spawn origin for kind. The I box keeps its
// filled row at local y=1, so it starts one row higher to line up with the
// other kinds.
func spawnPosition(kind Kind) (x, y int) {
	if kind == KindI {
		return 3, -1
	}
	return 3, 0
}

// newActivePiece places kind at its spawn position in rotation 0.
func newActivePiece(kind Kind) ActivePiece {
	x, y := spawnPosition(kind)
	return ActivePiece{Piece: NewPiece(kind), X: x, Y: y}
}
