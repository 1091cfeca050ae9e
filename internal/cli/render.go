package cli

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/mcoot/snakeladder/internal/model"
)

const (
	snakeGlyph  = "🐍"
	ladderGlyph = "🪜"
	finishGlyph = "🏁"
	trophyGlyph = "🏆"

	// boardColumns is the width of the serpentine grid
	boardColumns = 10
	// cellWidth is the display width of one grid cell
	cellWidth = 4
)

// RenderBoard draws the board as a fixed-width serpentine grid with square 1
// in the bottom-left corner. Snake heads, ladder bottoms and the final square
// are shown as glyphs.
func RenderBoard(b *model.Board) string {
	rows := (b.Size + boardColumns - 1) / boardColumns
	inner := boardColumns * cellWidth

	var sb strings.Builder
	sb.WriteString("┌" + strings.Repeat("─", inner) + "┐\n")

	for row := rows - 1; row >= 0; row-- {
		sb.WriteString("│")
		for col := 0; col < boardColumns; col++ {
			sb.WriteString(runewidth.FillLeft(cellSymbol(b, squareAt(row, col)), cellWidth))
		}
		sb.WriteString("│\n")
	}

	sb.WriteString("└" + strings.Repeat("─", inner) + "┘\n")
	return sb.String()
}

// squareAt maps a grid cell to its square. Rows count up from the bottom and
// alternate direction, so odd rows run right to left.
func squareAt(row, col int) int {
	if row%2 == 1 {
		col = boardColumns - 1 - col
	}
	return row*boardColumns + col + 1
}

func cellSymbol(b *model.Board, square int) string {
	switch {
	case square > b.Size:
		return ""
	case b.HasSnake(square):
		return snakeGlyph
	case b.HasLadder(square):
		return ladderGlyph
	case b.IsWinning(square):
		return finishGlyph
	default:
		return strconv.Itoa(square)
	}
}
