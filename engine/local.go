package engine

import (
	"fmt"

	"commons/game"

	"github.com/rs/zerolog"
)

// Game runs one table of players over a board and deck until the trees run out or
// the turn cap is hit. It is single-threaded: one Game must not be played from more
// than one goroutine.
type Game struct {
	board    *game.Board
	deck     *game.Deck
	players  []Player
	ledger   *ledger
	maxTurns int
	vpsToWin int
	turn     int
	outcome  Outcome
	winner   int
	aborted  error
	observe  func(turn int, accounts []Account)
	log      zerolog.Logger
}

// New seats the players at a game over board and deck. The deck must hold exactly
// the garden and curse kinds, and player IDs must be unique and positive.
func New(board *game.Board, deck *game.Deck, players []Player, options ...Option) (*Game, error) {
	if board == nil || deck == nil {
		return nil, fmt.Errorf("cannot create game without a board and deck")
	}
	if !sameKinds(deck.Kinds(), game.CardKinds) {
		return nil, fmt.Errorf("cannot create game with cards %v: %w", deck.Kinds(), ErrDeckMismatch)
	}
	l, err := newLedger(players)
	if err != nil {
		return nil, err
	}

	g := &Game{
		board:   board,
		deck:    deck,
		players: append([]Player(nil), players...),
		ledger:  l,
	}
	defaults(g)
	for _, option := range options {
		option(g)
	}
	return g, nil
}

func sameKinds(a, b []game.CardKind) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[game.CardKind]bool, len(a))
	for _, k := range a {
		seen[k] = true
	}
	for _, k := range b {
		if !seen[k] {
			return false
		}
	}
	return true
}

// Play runs turns until the game ends and returns the result. Any contract violation
// by a strategy aborts the game with an error; until Reset, later calls return
// ErrAborted wrapping that error.
func (g *Game) Play() (Result, error) {
	if g.aborted != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrAborted, g.aborted)
	}
	if g.outcome.IsTerminal() {
		return Result{}, ErrGameOver
	}

	g.log.Debug().Msgf("player %d is starting", g.players[0].ID)

	for ; g.turn < g.maxTurns; g.turn++ {
		if g.board.TotalResources() == 0 {
			return g.finish(), nil
		}
		p := g.players[g.turn%len(g.players)]
		if err := g.takeTurn(p); err != nil {
			g.aborted = fmt.Errorf("turn %d, player %d: %w", g.turn+1, p.ID, err)
			return Result{}, g.aborted
		}
		if g.observe != nil {
			g.observe(g.turn+1, g.ledger.snapshot())
		}
	}
	return g.finish(), nil
}

// takeTurn asks the player's strategy for an action and resolves it.
func (g *Game) takeTurn(p Player) error {
	acct, _ := g.ledger.account(p.ID)
	action := p.Strategy.DecideAction(boardView{board: g.board}, acct.Money)

	switch action.Type {
	case game.DrawAction:
		return g.draw(acct, action.Curse)
	case game.BuyAction:
		return g.buy(acct, action.Purchases)
	default:
		return fmt.Errorf("cannot resolve %s: %w", action.Type, ErrInvalidAction)
	}
}

func (g *Game) draw(acct *Account, target game.CurseTarget) error {
	card, err := g.deck.Draw()
	if err != nil {
		return err
	}

	switch card {
	case game.Garden:
		tile, grown := g.board.GrowRandomTile()
		g.log.Debug().Msgf("player %d drew garden: tile %v grows by %d", acct.ID, tile, grown)

	case game.Curse:
		credits, exhausted, err := g.board.DepleteTile(target.Tile, target.Amount)
		if err != nil {
			return fmt.Errorf("cannot resolve curse: %w", err)
		}
		for owner, vps := range credits {
			a, ok := g.ledger.account(owner)
			if !ok {
				return fmt.Errorf("cannot credit %d VP(s) to player %d: %w", vps, owner, ErrUnknownOwner)
			}
			a.VPs += vps
		}
		if exhausted {
			g.deck.Discard(game.Curse)
		}
		profit := target.Amount
		if target.Amount > 1 {
			profit++
		}
		acct.Money += float64(profit)
		g.log.Debug().Msgf("player %d drew curse: extracting %d from tile %v, made $%d, exhausted=%t, credits=%v",
			acct.ID, target.Amount, target.Tile, profit, exhausted, credits)

	default:
		return fmt.Errorf("cannot resolve card %s: %w", card, game.ErrUnknownCard)
	}
	return nil
}

func (g *Game) buy(acct *Account, purchases []game.Purchase) error {
	total := 0.0
	for _, p := range purchases {
		cost, ok := g.board.Cost(p.Kind)
		if !ok {
			return fmt.Errorf("cannot buy %s: %w", p.Kind, game.ErrUnknownStructure)
		}
		total += cost
	}
	if acct.Money < total {
		return fmt.Errorf("cannot pay %v with %v: %w", total, acct.Money, ErrInsufficientFunds)
	}
	if !g.board.PlaceStructures(purchases, acct.ID) {
		return fmt.Errorf("cannot place %v: %w", purchases, ErrPlacementFailed)
	}

	acct.Money -= total
	for _, p := range purchases {
		switch p.Kind {
		case game.Hut:
			acct.Huts++
		case game.Station:
			acct.Stations++
		}
	}
	g.log.Debug().Msgf("player %d bought %d structure(s) for $%v", acct.ID, len(purchases), total)
	return nil
}

// finish settles the outcome once the loop stops, either because the trees are gone
// or because the turn cap was reached.
func (g *Game) finish() Result {
	accounts := g.ledger.snapshot()
	if g.board.TotalResources() == 0 {
		g.outcome, g.winner = score(accounts, g.vpsToWin)
	} else {
		g.outcome, g.winner = MaxTurnsReached, 0
	}

	g.log.Debug().
		Str("outcome", g.outcome.String()).
		Int("winner", g.winner).
		Int("turns", g.turn).
		Msg("game over")

	return Result{
		Outcome:  g.outcome,
		Winner:   g.winner,
		Turns:    g.turn,
		Accounts: accounts,
	}
}

// Reset prepares the same table for another game: board and deck are reinitialized
// in place, ledgers are zeroed and strategies with bookkeeping are reset.
func (g *Game) Reset() {
	g.board.Reset()
	g.deck.Reset()
	g.ledger.reset()
	for _, p := range g.players {
		if r, ok := p.Strategy.(Resetter); ok {
			r.Reset()
		}
	}
	g.turn = 0
	g.outcome = InProgress
	g.winner = 0
	g.aborted = nil
}

func (g *Game) Outcome() Outcome      { return g.outcome }
func (g *Game) Turn() int             { return g.turn }
func (g *Game) Accounts() []Account   { return g.ledger.snapshot() }
func (g *Game) Board() game.BoardView { return boardView{board: g.board} }
