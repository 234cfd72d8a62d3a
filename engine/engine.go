package engine

import (
	"commons/game"
	"commons/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Strategy decides a player's action for the turn from what it can see of the board
// and the player's current money.
type Strategy interface {
	DecideAction(view game.BoardView, money float64) game.Action
}

// Resetter is implemented by strategies that keep bookkeeping between turns, so the
// bookkeeping can be cleared when the game is reset.
type Resetter interface {
	Reset()
}

// Player seats a strategy at the table under a unique positive ID.
type Player struct {
	ID       int
	Name     string
	Strategy Strategy
}

type Option func(g *Game)

func WithMaxTurns(turns int) Option {
	return func(g *Game) {
		if turns > 0 {
			g.maxTurns = turns
		}
	}
}

func WithVPsToWin(vps int) Option {
	return func(g *Game) {
		if vps >= 0 {
			g.vpsToWin = vps
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(g *Game) {
		g.log = logger
	}
}

// WithTurnObserver calls observe after every resolved turn with the turn number
// (starting at 1) and a copy of the accounts.
func WithTurnObserver(observe func(turn int, accounts []Account)) Option {
	return func(g *Game) {
		g.observe = observe
	}
}

func defaults(g *Game) {
	g.maxTurns = meta.MAX_TURNS
	g.vpsToWin = meta.VPS_TO_WIN
	g.log = log.Logger
}
