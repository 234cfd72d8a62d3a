// Package player holds the built-in strategies that can be seated at an engine.Game.
package player

import (
	"errors"
	"fmt"
	"sort"

	"commons/engine"
	"commons/game"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

type factory func(id int, rng game.Random) engine.Strategy

var strategies = map[string]factory{
	"default": func(id int, rng game.Random) engine.Strategy { return NewDefault(id, rng) },
	"drawer":  func(id int, rng game.Random) engine.Strategy { return Drawer{} },
}

// New builds the named strategy for the player with the given ID.
func New(name string, id int, rng game.Random) (engine.Strategy, error) {
	f, ok := strategies[name]
	if !ok {
		return nil, fmt.Errorf("cannot create strategy %q (have %v): %w", name, Names(), ErrUnknownStrategy)
	}
	return f(id, rng), nil
}

// Names lists the registered strategy names in order.
func Names() []string {
	names := make([]string, 0, len(strategies))
	for name := range strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Seat builds one engine.Player per name, with IDs starting at 1.
func Seat(names []string, rng game.Random) ([]engine.Player, error) {
	players := make([]engine.Player, len(names))
	for i, name := range names {
		s, err := New(name, i+1, rng)
		if err != nil {
			return nil, err
		}
		players[i] = engine.Player{ID: i + 1, Name: name, Strategy: s}
	}
	return players, nil
}
