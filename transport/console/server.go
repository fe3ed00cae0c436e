package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/usecase"
)

const (
	msgPrompt         = "Choose index (0 to 8):\n"
	msgNotANumber     = "Please enter a number between 0 and 8\n"
	msgOutOfBounds    = "Invalid index! Must be between 0 and 8\n"
	msgAreaOccupied   = "That area is already occupied!\n"
	msgNotInitialized = "The game has not started!\n"
	msgPlayerWins     = "** You win! **\n"
	msgOpponentWins   = "** Cpu wins! **\n"
	msgTie            = "** Tie! **\n"
	msgYourTurn       = "** Your turn **\n"
	msgNewRound       = "** New round **\n"
	msgBye            = "Bye!\n"
)

type gameUseCase interface {
	StartSession() entity.Snapshot
	MakeTurn(ctx context.Context, cell int) (*usecase.TurnResult, error)
}

// Server plays one session over a line-oriented text stream.
type Server struct {
	logger      *slog.Logger
	gameUseCase gameUseCase

	in  io.Reader
	out io.Writer
}

func New(logger *slog.Logger, gameUseCase gameUseCase, in io.Reader, out io.Writer) *Server {
	return &Server{
		logger:      logger.With("component", "console"),
		gameUseCase: gameUseCase,
		in:          in,
		out:         out,
	}
}

// Start runs the session until the input ends or ctx is canceled.
func (that *Server) Start(ctx context.Context) error {
	log := that.logger.With("method", "Start")

	scanner := bufio.NewScanner(that.in)
	snapshot := that.gameUseCase.StartSession()

	for ctx.Err() == nil {
		if err := that.write(msgPrompt + RenderBoard(snapshot.Board) + RenderScore(snapshot.Score)); err != nil {
			return err
		}

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}

			log.Info("input closed, ending session")
			return that.write(msgBye)
		}

		cell, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil {
			log.Debug("malformed input", "input", scanner.Text())
			if err = that.write(msgNotANumber); err != nil {
				return err
			}
			continue
		}

		result, err := that.gameUseCase.MakeTurn(ctx, cell)
		if err != nil {
			if err = that.handleTurnError(err); err != nil {
				return err
			}
			continue
		}

		if err = that.write(announce(result)); err != nil {
			return err
		}

		snapshot = result.Snapshot
	}

	return nil
}

// handleTurnError tells the player why a move was rejected.
func (that *Server) handleTurnError(err error) error {
	switch {
	case errors.Is(err, apperror.ErrOutOfBounds):
		return that.write(msgOutOfBounds)
	case errors.Is(err, apperror.ErrAreaOccupied):
		return that.write(msgAreaOccupied)
	case errors.Is(err, apperror.ErrNotInitialized):
		return that.write(msgNotInitialized)
	default:
		return fmt.Errorf("failed to make turn: %w", err)
	}
}

func (that *Server) write(text string) error {
	if _, err := io.WriteString(that.out, text); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

func announce(result *usecase.TurnResult) string {
	var sb strings.Builder

	if result.OpponentCell >= 0 {
		fmt.Fprintf(&sb, "** Cpu took cell %d **\n", result.OpponentCell)
	}

	if !result.Finished {
		sb.WriteString(msgYourTurn)
		return sb.String()
	}

	sb.WriteString(RenderBoard(result.FinalBoard))

	switch result.Winner {
	case entity.SidePlayer:
		sb.WriteString(msgPlayerWins)
	case entity.SideOpponent:
		sb.WriteString(msgOpponentWins)
	case entity.SideTie:
		sb.WriteString(msgTie)
	}

	sb.WriteString(msgNewRound)

	return sb.String()
}
