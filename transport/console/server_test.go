package console

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/repository"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-cli/internal/usecase"
)

type scriptedBot struct {
	cells []int
}

func (that *scriptedBot) ChooseCell(_ entity.Board) (int, error) {
	cell := that.cells[0]
	that.cells = that.cells[1:]

	return cell, nil
}

func newTestServer(input string, botCells ...int) (*Server, *bytes.Buffer) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	engine := tictactoe.NewEngine(&scriptedBot{cells: botCells})
	manager := usecase.NewGameManager(logger, engine, repository.NewNopRoundRepository())

	out := &bytes.Buffer{}

	return New(logger, manager, strings.NewReader(input), out), out
}

func TestServer_Start(t *testing.T) {
	t.Run("Plays a round until the player wins", func(t *testing.T) {
		// Given: input that completes the top row and a bot that never blocks
		server, out := newTestServer("0\n1\n2\n", 3, 4)

		// When: the session runs until the input ends
		err := server.Start(context.Background())

		// Then: the win is announced and the score is updated
		require.NoError(t, err)
		output := out.String()
		assert.Contains(t, output, "** Cpu took cell 3 **")
		assert.Contains(t, output, "** Cpu took cell 4 **")
		assert.Contains(t, output, msgPlayerWins)
		assert.Contains(t, output, msgNewRound)
		assert.Contains(t, output, "Score: you 1 | cpu 0 | ties 0")
		assert.True(t, strings.HasSuffix(output, msgBye))
	})

	t.Run("Re-prompts on malformed input", func(t *testing.T) {
		// Given: input that is not a number, surrounded by spaces
		server, out := newTestServer("abc\n  \n 4 \n", 0)

		// When: the session runs
		err := server.Start(context.Background())

		// Then: the player is asked again and the trimmed number is accepted
		require.NoError(t, err)
		output := out.String()
		assert.Equal(t, 2, strings.Count(output, msgNotANumber))
		assert.Contains(t, output, " O | 1 | 2 \n---+---+---\n 3 | X | 5 \n")
	})

	t.Run("Reports rejected moves", func(t *testing.T) {
		// Given: input with an out of range index and an occupied cell
		server, out := newTestServer("9\n0\n0\n-1\n", 4)

		// When: the session runs
		err := server.Start(context.Background())

		// Then: both errors are reported without ending the session
		require.NoError(t, err)
		output := out.String()
		assert.Equal(t, 2, strings.Count(output, msgOutOfBounds))
		assert.Contains(t, output, msgAreaOccupied)
		assert.True(t, strings.HasSuffix(output, msgBye))
	})

	t.Run("Announces the opponent win", func(t *testing.T) {
		// Given: a bot that fills the middle row
		server, out := newTestServer("0\n1\n8\n", 3, 4, 5)

		// When: the session runs
		err := server.Start(context.Background())

		// Then: the opponent win is announced
		require.NoError(t, err)
		assert.Contains(t, out.String(), msgOpponentWins)
		assert.Contains(t, out.String(), "Score: you 0 | cpu 1 | ties 0")
	})

	t.Run("Stops when the context is canceled", func(t *testing.T) {
		// Given: a canceled context
		server, out := newTestServer("0\n")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// When: the session starts
		err := server.Start(ctx)

		// Then: it returns without prompting
		require.NoError(t, err)
		assert.Empty(t, out.String())
	})
}

func TestRenderBoard(t *testing.T) {
	// Given: a board with a few moves
	board := entity.Board{0: entity.PlayerX, 4: entity.PlayerO, 8: entity.PlayerX}

	// When: rendering it
	rendered := RenderBoard(board)

	// Then: marks and free indexes are laid out in three rows
	expected := " X | 1 | 2 \n" +
		"---+---+---\n" +
		" 3 | O | 5 \n" +
		"---+---+---\n" +
		" 6 | 7 | X \n"
	assert.Equal(t, expected, rendered)
}

func TestRenderScore(t *testing.T) {
	assert.Equal(t, "Score: you 2 | cpu 1 | ties 3\n", RenderScore(entity.Score{Player: 2, Opponent: 1, Tie: 3}))
}
