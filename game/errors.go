package game

import "errors"

var (
	ErrInvalidExtraction     = errors.New("invalid extraction")
	ErrEmptyDeck             = errors.New("deck has no cards to reshuffle")
	ErrReshuffleNotExhausted = errors.New("draw pile is not exhausted")
	ErrUnknownCard           = errors.New("unknown card kind")
	ErrUnknownStructure      = errors.New("unknown structure kind")
	ErrInvalidBoard          = errors.New("invalid board")
)
