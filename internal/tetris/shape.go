// Package tetris implements the falling-block game: shape tables, pieces,
// the seven-bag generator, the board and the game state machine.
package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Kind identifies one of the seven tetrominoes.
type Kind uint8

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// KindCount is the number of distinct piece kinds.
const KindCount = 7

// Kinds lists every kind in table order.
var Kinds = [KindCount]Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}

// String returns the single-letter name of the kind.
func (k Kind) String() string {
	if int(k) >= KindCount {
		return "?"
	}
	return string("IOTSZJL"[k])
}

// ShapeSize is the side of a piece bounding box.
const ShapeSize = 4

// RotationCount is the number of rotation states per kind.
const RotationCount = 4

// Shape is a piece bounding box. Row 0 is the top; a 1 marks a filled cell
// relative to the piece origin.
type Shape [ShapeSize][ShapeSize]uint8

// Filled reports whether the local cell (x, y) is part of the piece.
func (s Shape) Filled(x, y int) bool {
	return s[y][x] == 1
}

// Cells returns the local coordinates of the filled cells, row by row.
func (s Shape) Cells() []core.Point {
	cells := make([]core.Point, 0, 4)
	for y := range ShapeSize {
		for x := range ShapeSize {
			if s[y][x] == 1 {
				cells = append(cells, core.Point{X: x, Y: y})
			}
		}
	}
	return cells
}

// shapes is indexed by [kind][rotation].
var shapes = [KindCount][RotationCount]Shape{
	KindI: {
		{
			{0, 0, 0, 0},
			{1, 1, 1, 1},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		},
		{
			{0, 0, 1, 0},
			{0, 0, 1, 0},
			{0, 0, 1, 0},
			{0, 0, 1, 0},
		},
		{
			{0, 0, 0, 0},
			{0, 0, 0, 0},
			{1, 1, 1, 1},
			{0, 0, 0, 0},
		},
		{
			{0, 1, 0, 0},
			{0, 1, 0, 0},
			{0, 1, 0, 0},
			{0, 1, 0, 0},
		},
	},
	KindO: {
		oShape, oShape, oShape, oShape,
	},
	KindT: {
		{
			{0, 1, 0, 0},
			{1, 1, 1, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		},
		{
			{0, 1, 0, 0},
			{0, 1, 1, 0},
			{0, 1, 0, 0},
			{0, 0, 0, 0},
		},
		{
			{0, 0, 0, 0},
			{1, 1, 1, 0},
			{0, 1, 0, 0},
			{0, 0, 0, 0},
		},
		{
			{0, 1, 0, 0},
			{1, 1, 0, 0},
			{0, 1, 0, 0},
			{0, 0, 0, 0},
		},
	},
	KindS: {
		{
			{0, 1, 1, 0},
			{1, 1, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		},
		{
			{0, 1, 0, 0},
			{0, 1, 1, 0},
			{0, 0, 1, 0},
			{0, 0, 0, 0},
		},
		{
			{0, 0, 0, 0},
			{0, 1, 1, 0},
			{1, 1, 0, 0},
			{0, 0, 0, 0},
		},
		{
			{1, 0, 0, 0},
			{1, 1, 0, 0},
			{0, 1, 0, 0},
			{0, 0, 0, 0},
		},
	},
	KindZ: {
		{
			{1, 1, 0, 0},
			{0, 1, 1, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		},
		{
			{0, 0, 1, 0},
			{0, 1, 1, 0},
			{0, 1, 0, 0},
			{0, 0, 0, 0},
		},
		{
			{0, 0, 0, 0},
			{1, 1, 0, 0},
			{0, 1, 1, 0},
			{0, 0, 0, 0},
		},
		{
			{0, 1, 0, 0},
			{1, 1, 0, 0},
			{1, 0, 0, 0},
			{0, 0, 0, 0},
		},
	},
	KindJ: {
		{
			{1, 0, 0, 0},
			{1, 1, 1, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		},
		{
			{0, 1, 1, 0},
			{0, 1, 0, 0},
			{0, 1, 0, 0},
			{0, 0, 0, 0},
		},
		{
			{0, 0, 0, 0},
			{1, 1, 1, 0},
			{0, 0, 1, 0},
			{0, 0, 0, 0},
		},
		{
			{0, 1, 0, 0},
			{0, 1, 0, 0},
			{1, 1, 0, 0},
			{0, 0, 0, 0},
		},
	},
	KindL: {
		{
			{0, 0, 1, 0},
			{1, 1, 1, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		},
		{
			{0, 1, 0, 0},
			{0, 1, 0, 0},
			{0, 1, 1, 0},
			{0, 0, 0, 0},
		},
		{
			{1, 1, 1, 0},
			{1, 0, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		},
		{
			{1, 1, 0, 0},
			{0, 1, 0, 0},
			{0, 1, 0, 0},
			{0, 0, 0, 0},
		},
	},
}

// oShape is shared by all four O rotation states.
var oShape = Shape{
	{0, 1, 1, 0},
	{0, 1, 1, 0},
	{0, 0, 0, 0},
	{0, 0, 0, 0},
}

var colors = [KindCount]core.Color{
	KindI: core.ColorBrightCyan,
	KindO: core.ColorBrightYellow,
	KindT: core.ColorMagenta,
	KindS: core.ColorGreen,
	KindZ: core.ColorBrightRed,
	KindJ: core.ColorBlue,
	KindL: core.ColorOrange,
}

// ShapeOf returns the bounding box of kind in the given rotation state.
// Rotation is taken modulo RotationCount, so any integer is accepted.
func ShapeOf(kind Kind, rotation int) Shape {
	return shapes[kind%KindCount][normalizeRotation(rotation)]
}

// ColorOf returns the fixed color of a kind.
func ColorOf(kind Kind) core.Color {
	return colors[kind%KindCount]
}

func normalizeRotation(r int) int {
	r %= RotationCount
	if r < 0 {
		r += RotationCount
	}
	return r
}
