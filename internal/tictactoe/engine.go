package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

type botService interface {
	ChooseCell(board entity.Board) (int, error)
}

// Engine owns the board of the current round and the session score.
// It validates moves and computes outcomes; alternating turns is up to the caller.
type Engine struct {
	status string
	board  entity.Board
	score  entity.Score

	bot botService
}

// NewEngine starts a session: zero score and no round in progress.
func NewEngine(bot botService) *Engine {
	return &Engine{
		status: entity.StatusWaiting,
		bot:    bot,
	}
}

// Reset starts a new round with an empty board. The score is kept.
func (that *Engine) Reset() {
	that.board = entity.Board{}
	that.status = entity.StatusOngoing
}

func (that *Engine) IsOngoing() bool {
	return that.status == entity.StatusOngoing
}

// PlacePlayerMove puts the human mark on cell.
func (that *Engine) PlacePlayerMove(cell int) error {
	if err := that.validateMove(cell); err != nil {
		return fmt.Errorf("invalid move: %w", err)
	}

	that.board[cell] = entity.PlayerX

	return nil
}

// validateMove - checks bounds, round state and occupancy in that order.
func (that *Engine) validateMove(cell int) error {
	if !entity.IsValidCell(cell) {
		return fmt.Errorf("%w: cell %d", apperror.ErrOutOfBounds, cell)
	}

	if !that.IsOngoing() {
		return apperror.ErrNotInitialized
	}

	if that.board[cell] != entity.EmptyCell {
		return fmt.Errorf("%w: cell %d", apperror.ErrAreaOccupied, cell)
	}

	return nil
}

// PlaceOpponentMove lets the bot take a random empty cell. It reports the chosen
// cell, or false when there is no round or the board is full.
func (that *Engine) PlaceOpponentMove() (int, bool) {
	if !that.IsOngoing() || that.board.IsFull() {
		return 0, false
	}

	cell, err := that.bot.ChooseCell(that.board)
	if err != nil || !entity.IsValidCell(cell) || that.board[cell] != entity.EmptyCell {
		return 0, false
	}

	that.board[cell] = entity.PlayerO

	return cell, true
}

// Evaluate checks the board for mark right after that mark has moved.
func (that *Engine) Evaluate(mark entity.Cell) entity.Result {
	if !that.IsOngoing() {
		return entity.ResultContinue
	}

	return that.board.Evaluate(mark)
}

// IsFull is false while no round is in progress.
func (that *Engine) IsFull() bool {
	return that.IsOngoing() && that.board.IsFull()
}

func (that *Engine) RecordOutcome(side entity.Side) {
	that.score.Add(side)
}

func (that *Engine) Snapshot() entity.Snapshot {
	return entity.Snapshot{
		Board:      that.board,
		Score:      that.score,
		InProgress: that.IsOngoing(),
	}
}
