package apperror

import "errors"

var (
	ErrBadGridShape      = errors.New("grid is not 9x9")
	ErrInvalidBoard      = errors.New("solution is not compatible with the board")
	ErrIncompleteUnit    = errors.New("unit is not a permutation of 1..9")
	ErrInvalidSolution   = errors.New("solution violates sudoku constraints")
	ErrNotRegistered     = errors.New("player is not registered")
	ErrAlreadyRegistered = errors.New("player is already registered")
	ErrGameNotFound      = errors.New("game not found")
	ErrNoPlayableGames   = errors.New("no playable games in the pool")
)
