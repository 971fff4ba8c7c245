package apperror

import "errors"

var (
	ErrPositionOccupied     = errors.New("position is already occupied")
	ErrPositionEmpty        = errors.New("position is empty")
	ErrNotAdjacent          = errors.New("destination is not adjacent")
	ErrWrongPhase           = errors.New("operation is not allowed in this phase")
	ErrNotYourTurn          = errors.New("it's not your turn")
	ErrTokenProtectedByMill = errors.New("token is protected by a mill")
	ErrGameFinished         = errors.New("game is already finished")

	ErrInvalidPosition = errors.New("invalid position")
	ErrOwnToken        = errors.New("cannot remove own token")
)
