package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/pkg"
)

type engine interface {
	Reset()
	PlacePlayerMove(cell int) error
	PlaceOpponentMove() (int, bool)
	Evaluate(mark entity.Cell) entity.Result
	RecordOutcome(side entity.Side)
	Snapshot() entity.Snapshot
}

type roundRepo interface {
	Publish(ctx context.Context, round *entity.Round) error
}

// TurnResult describes what happened during one player turn.
type TurnResult struct {
	PlayerCell   int
	OpponentCell int // -1 when the opponent did not move

	// Finished is set when the turn ended the round; Winner and FinalBoard
	// describe that round, Snapshot already shows the next one.
	Finished   bool
	Winner     entity.Side
	FinalBoard entity.Board

	Snapshot entity.Snapshot
}

// GameManager runs the turn order of a session: player move, check, opponent move, check.
type GameManager struct {
	logger    *slog.Logger
	sessionID string

	engine    engine
	roundRepo roundRepo
}

func NewGameManager(logger *slog.Logger, engine engine, roundRepo roundRepo) *GameManager {
	sessionID := pkg.GenerateNewSessionID()

	return &GameManager{
		logger:    logger.With("component", "game_manager", "sessionID", sessionID),
		sessionID: sessionID,
		engine:    engine,
		roundRepo: roundRepo,
	}
}

func (that *GameManager) SessionID() string {
	return that.sessionID
}

// StartSession - starts the first round.
func (that *GameManager) StartSession() entity.Snapshot {
	that.engine.Reset()
	that.logger.Info("session started")

	return that.engine.Snapshot()
}

func (that *GameManager) Snapshot() entity.Snapshot {
	return that.engine.Snapshot()
}

// MakeTurn applies the player move and, if the round goes on, the opponent reply.
// A rejected move leaves the session untouched.
func (that *GameManager) MakeTurn(ctx context.Context, cell int) (*TurnResult, error) {
	log := that.logger.With("method", "MakeTurn", "cell", cell)

	if err := that.engine.PlacePlayerMove(cell); err != nil {
		log.Debug("move rejected", "error", err)
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	result := &TurnResult{
		PlayerCell:   cell,
		OpponentCell: -1,
	}

	if that.checkRound(ctx, entity.PlayerX, result) {
		return result, nil
	}

	if opponentCell, ok := that.engine.PlaceOpponentMove(); ok {
		result.OpponentCell = opponentCell
		log.Debug("opponent moved", "opponentCell", opponentCell)
	}

	if that.checkRound(ctx, entity.PlayerO, result) {
		return result, nil
	}

	result.Snapshot = that.engine.Snapshot()

	return result, nil
}

// checkRound evaluates the board for mark and closes the round on a win or tie.
func (that *GameManager) checkRound(ctx context.Context, mark entity.Cell, result *TurnResult) bool {
	var winner entity.Side

	switch that.engine.Evaluate(mark) {
	case entity.ResultWin:
		winner = entity.SideOf(mark)
	case entity.ResultTie:
		winner = entity.SideTie
	default:
		return false
	}

	finalBoard := that.engine.Snapshot().Board

	that.engine.RecordOutcome(winner)
	that.publishRound(ctx, winner, finalBoard)
	that.engine.Reset()

	result.Finished = true
	result.Winner = winner
	result.FinalBoard = finalBoard
	result.Snapshot = that.engine.Snapshot()

	return true
}

func (that *GameManager) publishRound(ctx context.Context, winner entity.Side, board entity.Board) {
	score := that.engine.Snapshot().Score

	round := &entity.Round{
		SessionID: that.sessionID,
		Number:    score.Rounds(),
		Winner:    winner,
		Board:     board,
		Score:     score,
	}

	log := that.logger.With("method", "publishRound", "round", round.Number, "winner", winner)

	if err := that.roundRepo.Publish(ctx, round); err != nil {
		log.Error("failed to publish round", "error", err)
		return
	}

	log.Info("round finished")
}
