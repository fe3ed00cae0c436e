package service

import (
	"errors"
	"math/rand/v2"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

var ErrNoAvailableMoves = errors.New("no available moves")

type BotService interface {
	ChooseCell(board entity.Board) (int, error)
}

type botService struct {
	rnd *rand.Rand
}

// NewBotService returns a bot that picks uniformly among empty cells.
// A zero seed uses the process-wide generator.
func NewBotService(seed uint64) BotService {
	if seed == 0 {
		return &botService{}
	}

	return &botService{
		rnd: rand.New(rand.NewPCG(seed, seed)), //nolint: gosec // it's ok
	}
}

func (that *botService) ChooseCell(board entity.Board) (int, error) {
	availableCells := board.EmptyCells()
	if len(availableCells) == 0 {
		return 0, ErrNoAvailableMoves
	}

	return availableCells[that.intN(len(availableCells))], nil
}

func (that *botService) intN(n int) int {
	if that.rnd == nil {
		return rand.IntN(n) //nolint: gosec // it's ok
	}

	return that.rnd.IntN(n)
}
