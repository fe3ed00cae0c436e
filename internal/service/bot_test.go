package service

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBotService_ChooseCell(t *testing.T) {
	t.Run("Never picks an occupied cell", func(t *testing.T) {
		// Given: a board with a single free cell
		board := entity.Board{
			entity.PlayerX, entity.PlayerO, entity.PlayerX,
			entity.PlayerO, entity.EmptyCell, entity.PlayerO,
			entity.PlayerO, entity.PlayerX, entity.PlayerO,
		}
		bot := NewBotService(0)

		for range 50 {
			// When: the bot chooses a cell
			cell, err := bot.ChooseCell(board)

			// Then: it is always the free one
			require.NoError(t, err)
			require.Equal(t, 4, cell)
		}
	})

	t.Run("Eventually picks every free cell", func(t *testing.T) {
		// Given: a board with three free cells and a seeded bot
		board := entity.Board{
			entity.EmptyCell, entity.PlayerO, entity.PlayerX,
			entity.PlayerO, entity.EmptyCell, entity.PlayerO,
			entity.PlayerO, entity.PlayerX, entity.EmptyCell,
		}
		bot := NewBotService(42)

		// When: the bot chooses many times
		seen := map[int]int{}
		for range 300 {
			cell, err := bot.ChooseCell(board)
			require.NoError(t, err)
			seen[cell]++
		}

		// Then: only free cells are picked and each of them at least once
		assert.Len(t, seen, 3)
		assert.Positive(t, seen[0])
		assert.Positive(t, seen[4])
		assert.Positive(t, seen[8])
	})

	t.Run("Same seed gives the same choices", func(t *testing.T) {
		// Given: two bots with the same seed
		first := NewBotService(7)
		second := NewBotService(7)
		board := entity.Board{}

		// When: both choose a sequence of cells
		// Then: the sequences match
		for range 20 {
			a, err := first.ChooseCell(board)
			require.NoError(t, err)
			b, err := second.ChooseCell(board)
			require.NoError(t, err)
			assert.Equal(t, a, b)
		}
	})

	t.Run("Returns ErrNoAvailableMoves on a full board", func(t *testing.T) {
		// Given: a full board
		board := entity.Board{
			entity.PlayerX, entity.PlayerO, entity.PlayerX,
			entity.PlayerO, entity.PlayerX, entity.PlayerO,
			entity.PlayerO, entity.PlayerX, entity.PlayerO,
		}

		// When: the bot chooses a cell
		_, err := NewBotService(0).ChooseCell(board)

		// Then: no move is available
		assert.ErrorIs(t, err, ErrNoAvailableMoves)
	})
}
