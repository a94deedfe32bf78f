package console

import (
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/rocketscienceinc/minimax-games/internal/entity"
)

// RenderBoard draws the grid as text. Empty Tic-Tac-Toe cells show their
// index; Connect Four gets a column footer instead.
func RenderBoard(board entity.Board) string {
	var sb strings.Builder

	for row := range board.Rows() {
		cells := lo.Map(lo.Range(board.Cols()), func(col, _ int) string {
			cell := board.Cell(row, col)
			if cell == entity.Empty && board.Kind() == entity.TicTacToe {
				return strconv.Itoa(row*board.Cols() + col)
			}
			return cell.String()
		})

		sb.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}

	if board.Kind() == entity.ConnectFour {
		footer := lo.Map(lo.Range(board.Cols()), func(col, _ int) string {
			return strconv.Itoa(col)
		})
		sb.WriteString("  " + strings.Join(footer, "   ") + "\n")
	}

	return sb.String()
}
