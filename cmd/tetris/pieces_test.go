package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

func TestRenderPieces(t *testing.T) {
	out := renderPieces(tui.NewStyles(nil))

	// 7 kinds x 4 rotations x 4 cells, two columns each.
	assert.Equal(t, tetris.KindCount*tetris.RotationCount*4*2, strings.Count(out, "█"))
	assert.Equal(t, tetris.KindCount*tetris.ShapeSize-1, strings.Count(out, "\n"))
	for _, k := range tetris.Kinds {
		assert.Contains(t, out, k.String())
	}
}

func TestRenderShape(t *testing.T) {
	out := renderShape(tetris.ShapeOf(tetris.KindO, 0), tui.NewStyles(nil)[0])

	assert.Equal(t, " .████ .\n .████ .\n . . . .\n . . . .", out)
}
