package engine

import "errors"

var (
	ErrDeckMismatch      = errors.New("deck card kinds do not match the game")
	ErrInvalidPlayer     = errors.New("invalid player")
	ErrInvalidAction     = errors.New("invalid action")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrPlacementFailed   = errors.New("placement failed")
	ErrUnknownOwner      = errors.New("station owner is not at the table")
	ErrGameOver          = errors.New("game is over - reset before playing again")
	ErrAborted           = errors.New("game was aborted - reset before playing again")
)
