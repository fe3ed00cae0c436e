package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const rowSeparator = "---+---+---\n"

// RenderBoard draws the grid. Free cells show their index so the player knows what to type.
func RenderBoard(board entity.Board) string {
	var sb strings.Builder

	for row := 0; row < 3; row++ {
		if row > 0 {
			sb.WriteString(rowSeparator)
		}

		for col := 0; col < 3; col++ {
			cell := row*3 + col

			if col > 0 {
				sb.WriteString("|")
			}

			sb.WriteString(" " + cellLabel(board[cell], cell) + " ")
		}

		sb.WriteString("\n")
	}

	return sb.String()
}

func RenderScore(score entity.Score) string {
	return fmt.Sprintf("Score: you %d | cpu %d | ties %d\n", score.Player, score.Opponent, score.Tie)
}

func cellLabel(cell entity.Cell, index int) string {
	if cell == entity.EmptyCell {
		return strconv.Itoa(index)
	}

	return string(cell)
}
