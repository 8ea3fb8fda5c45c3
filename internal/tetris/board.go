package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Board dimensions.
const (
	BoardWidth  = 10
	BoardHeight = 20
)

// Cell is one board position: Free, or Occupied with the color of the piece
// that fused there. A Free cell always carries core.ColorDefault.
type Cell struct {
	Occupied bool
	Color    core.Color
}

// Board is the fixed playfield, indexed [row][column] with row 0 on top.
// It is a value type; copying a Board copies the grid.
type Board [BoardHeight][BoardWidth]Cell

var boardRect = core.NewRect(0, 0, BoardWidth, BoardHeight)

// InBounds reports whether (x, y) is a board position.
func InBounds(x, y int) bool {
	return boardRect.Contains(x, y)
}

// IsOccupied reports whether the cell at (x, y) is taken.
// The caller must pass in-range coordinates.
func (b *Board) IsOccupied(x, y int) bool {
	return b[y][x].Occupied
}

// Cell returns the cell at (x, y), or a Free cell outside the board.
func (b *Board) Cell(x, y int) Cell {
	if !InBounds(x, y) {
		return Cell{}
	}
	return b[y][x]
}

// CanFit reports whether shape placed at origin has every filled cell
// inside the board on a Free cell. Empty shape cells are never checked.
func (b *Board) CanFit(originX, originY int, shape Shape) bool {
	for ly := range ShapeSize {
		for lx := range ShapeSize {
			if !shape.Filled(lx, ly) {
				continue
			}
			x, y := originX+lx, originY+ly
			if !InBounds(x, y) || b[y][x].Occupied {
				return false
			}
		}
	}
	return true
}

// Commit writes color into every filled cell of shape at origin.
// The caller validates the placement with CanFit first; cells that fall
// outside the board are skipped so a bad call can never corrupt the grid.
func (b *Board) Commit(originX, originY int, shape Shape, color core.Color) {
	for ly := range ShapeSize {
		for lx := range ShapeSize {
			if !shape.Filled(lx, ly) {
				continue
			}
			x, y := originX+lx, originY+ly
			if !InBounds(x, y) {
				continue
			}
			b[y][x] = Cell{Occupied: true, Color: color}
		}
	}
}

// RowFull reports whether every cell of row y is occupied.
func (b *Board) RowFull(y int) bool {
	for x := range BoardWidth {
		if !b[y][x].Occupied {
			return false
		}
	}
	return true
}

// RowOccupied reports whether any cell of row y is occupied.
func (b *Board) RowOccupied(y int) bool {
	for x := range BoardWidth {
		if b[y][x].Occupied {
			return true
		}
	}
	return false
}

// ClearFullRows removes every full row and returns how many were removed.
// Each removed row drops the rows above it by one, so a surviving row moves
// down by the number of removed rows beneath it; the vacated rows at the
// top come back Free. Full rows need not be adjacent.
func (b *Board) ClearFullRows() int {
	write := BoardHeight - 1
	for read := BoardHeight - 1; read >= 0; read-- {
		if b.RowFull(read) {
			continue
		}
		if write != read {
			b[write] = b[read]
		}
		write--
	}

	cleared := write + 1
	for y := 0; y <= write; y++ {
		b[y] = [BoardWidth]Cell{}
	}
	return cleared
}

// Filled returns the number of occupied cells.
func (b Board) Filled() int {
	n := 0
	for y := range BoardHeight {
		for x := range BoardWidth {
			if b[y][x].Occupied {
				n++
			}
		}
	}
	return n
}
