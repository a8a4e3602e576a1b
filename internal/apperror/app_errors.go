package apperror

import "errors"

var (
	ErrHasWinner  = errors.New("game already has a winner")
	ErrBoardFull  = errors.New("board is full")
	ErrColumnFull = errors.New("column is full")

	ErrUnknownTeam      = errors.New("unknown team")
	ErrColumnOutOfRange = errors.New("column out of range")
)
