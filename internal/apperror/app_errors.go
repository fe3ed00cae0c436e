package apperror

import "errors"

var (
	ErrOutOfBounds    = errors.New("cell index is out of bounds")
	ErrAreaOccupied   = errors.New("cell is already occupied")
	ErrNotInitialized = errors.New("round is not started")
)
