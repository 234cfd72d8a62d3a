package config

import (
	"os"
	"path/filepath"
	"testing"

	"commons/game"
	"commons/meta"
	"commons/player"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("empty input keeps the standard game", func(t *testing.T) {
		cfg, err := Parse(nil)
		require.NoError(t, err)
		require.Equal(t, Default(), cfg)

		setup, err := cfg.Setup()
		require.NoError(t, err)
		require.Equal(t, game.NewStandardRules(), setup.Rules)
		require.Equal(t, game.StandardDeck(), setup.Deck)
		require.Equal(t, meta.MAX_TURNS, setup.MaxTurns)
	})

	t.Run("overrides only what is given", func(t *testing.T) {
		cfg, err := Parse([]byte(`
name: cheap-huts
seed: 9
players: [default, drawer, default]
board:
  rows: 4
  cols: 5
  trees: 12
  hut_bonus: 2
costs:
  hut: 1
deck:
  curse: 5
max_turns: 50
logging:
  level: debug
`))
		require.NoError(t, err)

		setup, err := cfg.Setup()
		require.NoError(t, err)
		require.Equal(t, "cheap-huts", setup.Name)
		require.Equal(t, uint64(9), setup.Seed)
		require.Equal(t, []string{"default", "drawer", "default"}, setup.Players)
		require.Equal(t, 4, setup.Rules.Rows)
		require.Equal(t, 5, setup.Rules.Cols)
		require.Equal(t, 12, setup.Rules.Trees)
		require.Equal(t, 2, setup.Rules.HutBonus)
		require.Equal(t, map[game.StructureKind]float64{game.Hut: 1, game.Station: meta.STATION_COST}, setup.Rules.Costs)
		require.Equal(t, map[game.CardKind]int{game.Garden: meta.GARDENS, game.Curse: 5}, setup.Deck)
		require.Equal(t, 50, setup.MaxTurns)
		require.Equal(t, meta.VPS_TO_WIN, setup.VPsToWin)

		level, err := cfg.Level()
		require.NoError(t, err)
		require.Equal(t, zerolog.DebugLevel, level)
	})

	t.Run("rejects invalid configurations", func(t *testing.T) {
		tests := map[string]struct {
			yaml string
			err  error
		}{
			"unknown key":       {yaml: "board:\n  depth: 3\n"},
			"unknown structure": {yaml: "costs:\n  castle: 2\n", err: game.ErrUnknownStructure},
			"unknown card":      {yaml: "deck:\n  joker: 1\n", err: game.ErrUnknownCard},
			"empty deck":        {yaml: "deck:\n  garden: 0\n  curse: 0\n", err: game.ErrEmptyDeck},
			"bad board":         {yaml: "board:\n  rows: 0\n", err: game.ErrInvalidBoard},
			"unknown strategy":  {yaml: "players: [default, psychic]\n", err: player.ErrUnknownStrategy},
			"no games":          {yaml: "games: 0\n"},
			"bad level":         {yaml: "logging:\n  level: loud\n"},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := Parse([]byte(tt.yaml))
				require.Error(t, err)
				if tt.err != nil {
					require.ErrorIs(t, err, tt.err)
				}
			})
		}
	})
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "experiment.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: from-file\ngames: 3\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "from-file", cfg.Name)
	require.Equal(t, 3, cfg.Games)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
