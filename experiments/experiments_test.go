package experiments

import (
	"os"
	"path/filepath"
	"testing"

	"commons/engine"
	"commons/experiments/metrics"
	"commons/player"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	os.Exit(m.Run())
}

func withoutDurations(records []metrics.GameRecord) []metrics.GameRecord {
	out := make([]metrics.GameRecord, len(records))
	for i, r := range records {
		r.Duration = 0
		out[i] = r
	}
	return out
}

func TestRun(t *testing.T) {
	setup := DefaultSetup()
	setup.Seed = 42

	t.Run("is reproducible across worker counts", func(t *testing.T) {
		sequential, err := Run(setup, 16, 1)
		require.NoError(t, err)
		parallel, err := Run(setup, 16, 8, WithCollector(metrics.NewCollector()), WithProgress(4))
		require.NoError(t, err)

		require.Equal(t, withoutDurations(sequential), withoutDurations(parallel))
	})

	t.Run("records games in order", func(t *testing.T) {
		records, err := Run(setup, 10, 3)
		require.NoError(t, err)

		require.Len(t, records, 10)
		for i, r := range records {
			require.Equal(t, i, r.Game)
			require.Equal(t, setup.Seed+uint64(i), r.Seed)
			require.Len(t, r.VPs, 2)
			require.Len(t, r.Money, 2)
			require.NotEqual(t, engine.InProgress.String(), r.Outcome)
			require.LessOrEqual(t, r.Turns, setup.MaxTurns)
			if r.Outcome != engine.Win.String() {
				require.Zero(t, r.Winner)
			}
		}
	})

	t.Run("reports throughput", func(t *testing.T) {
		c := metrics.NewCollector()
		records, err := Run(setup, 5, 2, WithCollector(c))
		require.NoError(t, err)

		m := c.Complete()
		require.Equal(t, 5, m.Games)
		require.Equal(t, 2, m.Workers)
		turns := 0
		for _, r := range records {
			turns += r.Turns
		}
		require.Equal(t, turns, m.Turns)
	})

	t.Run("turn cap applies to every game", func(t *testing.T) {
		capped := setup
		capped.MaxTurns = 1
		capped.Players = []string{"drawer"}
		capped.Rules.Trees = 50

		records, err := Run(capped, 4, 2)
		require.NoError(t, err)
		for _, r := range records {
			require.Equal(t, engine.MaxTurnsReached.String(), r.Outcome)
			require.Equal(t, 1, r.Turns)
		}
	})

	t.Run("rejects bad setups", func(t *testing.T) {
		_, err := Run(setup, 0, 1)
		require.Error(t, err)

		unknown := setup
		unknown.Players = []string{"default", "oracle"}
		_, err = Run(unknown, 2, 1)
		require.ErrorIs(t, err, player.ErrUnknownStrategy)

		empty := setup
		empty.Players = nil
		_, err = Run(empty, 2, 1)
		require.ErrorIs(t, err, engine.ErrInvalidPlayer)

		uncapped := setup
		uncapped.MaxTurns = 0
		_, err = Run(uncapped, 2, 1)
		require.Error(t, err)
	})
}

func TestSummarize(t *testing.T) {
	records := []metrics.GameRecord{
		{Outcome: "win", Winner: 1, Turns: 10, VPs: []int{8, 4}},
		{Outcome: "win", Winner: 2, Turns: 20, VPs: []int{5, 7}},
		{Outcome: "win", Winner: 1, Turns: 30, VPs: []int{9, 3}},
		{Outcome: "loss", Turns: 40, VPs: []int{0, 0}},
	}

	s := Summarize(records)

	require.Equal(t, 4, s.Games)
	require.Equal(t, map[string]int{"win": 3, "loss": 1}, s.Outcomes)
	require.Equal(t, map[int]int{1: 2, 2: 1}, s.Winners)
	require.Equal(t, []int{1, 2}, s.WinnerIDs())
	require.Equal(t, 25.0, s.MeanTurns)
	require.Equal(t, 9.0, s.MeanVPs)
	require.Equal(t, 0.75, s.Rate(engine.Win))
	require.Zero(t, s.Rate(engine.Tie))

	require.Zero(t, Summarize(nil).Rate(engine.Win))
	require.Empty(t, Summarize(nil).WinnerIDs())
}

func TestWinnerIDsAreSorted(t *testing.T) {
	var records []metrics.GameRecord
	for _, winner := range []int{9, 3, 7, 1, 3, 12, 5} {
		records = append(records, metrics.GameRecord{Outcome: "win", Winner: winner})
	}

	for i := 0; i < 20; i++ {
		require.Equal(t, []int{1, 3, 5, 7, 9, 12}, Summarize(records).WinnerIDs())
	}
}

func TestSave(t *testing.T) {
	setup := DefaultSetup()
	records, err := Run(setup, 3, 2)
	require.NoError(t, err)

	dir := t.TempDir()
	store, err := metrics.NewStore(filepath.Join(dir, "records.db"))
	require.NoError(t, err)
	defer store.Close()

	runID, err := Save(dir, store, setup.Describe(3, 2), records)
	require.NoError(t, err)

	require.FileExists(t, filepath.Join(dir, setup.Name, runID, "setup.json"))
	require.FileExists(t, filepath.Join(dir, setup.Name, runID, "game_records.csv"))

	stored, err := store.GameRecords(runID)
	require.NoError(t, err)
	require.Equal(t, records, stored)

	got, err := store.GetRun(runID)
	require.NoError(t, err)
	require.Equal(t, 3, got.Games)
	require.Equal(t, setup.Players, got.Players)

	_, err = Save(dir, nil, setup.Describe(0, 1), nil)
	require.ErrorIs(t, err, errNoRecords)
}
