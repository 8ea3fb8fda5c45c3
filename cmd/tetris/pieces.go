package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var piecesCmd = &cobra.Command{
	Use:   "pieces",
	Short: "Show every piece in every rotation",
	Long: `Prints the rotation table: one row per piece, rotation states 0-3
left to right. Clockwise rotation moves one state to the left.`,
	Args: cobra.NoArgs,
	Run:  runPieces,
}

func runPieces(_ *cobra.Command, _ []string) {
	fmt.Println(renderPieces(tui.NewStyles(nil)))
}

// renderPieces lays out all shapes, one kind per row.
func renderPieces(styles tui.Styles) string {
	gap := lipgloss.NewStyle().PaddingRight(2)

	rows := make([]string, 0, tetris.KindCount)
	for _, k := range tetris.Kinds {
		label := fmt.Sprintf("%s\n%s", k, tetris.ColorOf(k))
		blocks := []string{gap.Render(label)}
		for r := range tetris.RotationCount {
			blocks = append(blocks, gap.Render(renderShape(tetris.ShapeOf(k, r), styles[tetris.ColorOf(k)])))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, blocks...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderShape(s tetris.Shape, block lipgloss.Style) string {
	lines := make([]string, tetris.ShapeSize)
	for y := range tetris.ShapeSize {
		var sb strings.Builder
		for x := range tetris.ShapeSize {
			if s.Filled(x, y) {
				sb.WriteString(block.Render("██"))
			} else {
				sb.WriteString(" .")
			}
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}
