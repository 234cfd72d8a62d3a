package engine_test

import (
	"testing"

	"commons/engine"
	"commons/game"
	"commons/meta"
	"commons/player"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestVictoryPointsNeverDecrease(t *testing.T) {
	for seed := uint64(1); seed <= 30; seed++ {
		rng := game.NewRandom(seed)
		b, err := game.NewBoard(game.NewStandardRules(), rng)
		require.NoError(t, err)
		d, err := game.NewDeck(game.StandardDeck(), rng)
		require.NoError(t, err)
		players, err := player.Seat([]string{"default", "default", "drawer"}, rng)
		require.NoError(t, err)

		last := map[int]int{}
		turns := 0
		observe := func(turn int, accounts []engine.Account) {
			turns++
			require.Equal(t, turns, turn)
			for _, a := range accounts {
				require.GreaterOrEqual(t, a.VPs, last[a.ID], "seed %d turn %d player %d", seed, turn, a.ID)
				last[a.ID] = a.VPs
			}
		}
		g, err := engine.New(b, d, players, engine.WithTurnObserver(observe), engine.WithLogger(zerolog.Nop()))
		require.NoError(t, err)

		res, err := g.Play()

		require.NoError(t, err, "seed %d", seed)
		require.Equal(t, res.Turns, turns)
		require.LessOrEqual(t, turns, meta.MAX_TURNS)
		for _, a := range res.Accounts {
			require.Equal(t, last[a.ID], a.VPs)
		}
	}
}
