package engine

import "fmt"

// Account is a player's ledger entry. Copies are handed out; only the engine writes.
type Account struct {
	ID       int
	Name     string
	Money    float64
	VPs      int
	Huts     int
	Stations int
}

type ledger struct {
	accounts []Account
	index    map[int]int // player ID -> position in accounts
}

func newLedger(players []Player) (*ledger, error) {
	if len(players) == 0 {
		return nil, fmt.Errorf("cannot seat an empty table: %w", ErrInvalidPlayer)
	}
	l := &ledger{
		accounts: make([]Account, len(players)),
		index:    make(map[int]int, len(players)),
	}
	for i, p := range players {
		if p.ID <= 0 {
			return nil, fmt.Errorf("cannot seat player %d: id must be positive: %w", p.ID, ErrInvalidPlayer)
		}
		if _, dup := l.index[p.ID]; dup {
			return nil, fmt.Errorf("cannot seat player %d twice: %w", p.ID, ErrInvalidPlayer)
		}
		if p.Strategy == nil {
			return nil, fmt.Errorf("cannot seat player %d without a strategy: %w", p.ID, ErrInvalidPlayer)
		}
		l.index[p.ID] = i
		l.accounts[i] = Account{ID: p.ID, Name: p.Name}
	}
	return l, nil
}

func (l *ledger) reset() {
	for i := range l.accounts {
		l.accounts[i] = Account{ID: l.accounts[i].ID, Name: l.accounts[i].Name}
	}
}

func (l *ledger) account(id int) (*Account, bool) {
	i, ok := l.index[id]
	if !ok {
		return nil, false
	}
	return &l.accounts[i], true
}

func (l *ledger) snapshot() []Account {
	return append([]Account(nil), l.accounts...)
}
