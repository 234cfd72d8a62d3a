// Package experiments runs many independent games in parallel and reports their
// outcomes.
package experiments

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"commons/engine"
	"commons/experiments/metrics"
	"commons/game"
	"commons/meta"
	"commons/player"

	"github.com/rs/zerolog/log"
)

// Setup is everything needed to build one table. Game i of a run is seeded with
// Seed+i, so a run is reproducible regardless of how games are scheduled.
type Setup struct {
	Name     string
	Rules    game.Rules
	Deck     map[game.CardKind]int
	Players  []string
	MaxTurns int
	VPsToWin int
	Seed     uint64
}

func DefaultSetup() Setup {
	return Setup{
		Name:     "default",
		Rules:    game.NewStandardRules(),
		Deck:     game.StandardDeck(),
		Players:  []string{"default", "default"},
		MaxTurns: meta.MAX_TURNS,
		VPsToWin: meta.VPS_TO_WIN,
		Seed:     1,
	}
}

// Validate builds a throwaway table so configuration errors surface before any
// worker starts.
func (s Setup) Validate() error {
	rng := game.NewRandom(s.Seed)
	if _, err := game.NewBoard(s.Rules, rng); err != nil {
		return err
	}
	if _, err := game.NewDeck(s.Deck, rng); err != nil {
		return err
	}
	if len(s.Players) == 0 {
		return fmt.Errorf("cannot run %s without players: %w", s.Name, engine.ErrInvalidPlayer)
	}
	if _, err := player.Seat(s.Players, rng); err != nil {
		return err
	}
	if s.MaxTurns < 1 {
		return fmt.Errorf("cannot run %s with max turns %d", s.Name, s.MaxTurns)
	}
	if s.VPsToWin < 0 {
		return fmt.Errorf("cannot run %s with VP threshold %d", s.Name, s.VPsToWin)
	}
	return nil
}

// Describe flattens the setup for storage.
func (s Setup) Describe(games, workers int) metrics.Setup {
	return metrics.Setup{
		Name:        s.Name,
		Games:       games,
		Workers:     workers,
		Seed:        s.Seed,
		Players:     append([]string(nil), s.Players...),
		Rows:        s.Rules.Rows,
		Cols:        s.Rules.Cols,
		Trees:       s.Rules.Trees,
		HutCost:     s.Rules.Costs[game.Hut],
		StationCost: s.Rules.Costs[game.Station],
		HutBonus:    s.Rules.HutBonus,
		Gardens:     s.Deck[game.Garden],
		Curses:      s.Deck[game.Curse],
		MaxTurns:    s.MaxTurns,
		VPsToWin:    s.VPsToWin,
	}
}

type Option func(r *runner)

// WithCollector reports run throughput to c.
func WithCollector(c metrics.Collector) Option {
	return func(r *runner) {
		r.collector = c
	}
}

// WithProgress logs every n completed games.
func WithProgress(n int) Option {
	return func(r *runner) {
		if n > 0 {
			r.progress = n
		}
	}
}

type runner struct {
	collector metrics.Collector
	progress  int
}

// Run plays games independent games on up to workers goroutines. Records come back in
// game order. If any game fails, the error of the lowest failing game is returned.
func Run(setup Setup, games, workers int, options ...Option) ([]metrics.GameRecord, error) {
	if games < 1 {
		return nil, fmt.Errorf("cannot run %d games", games)
	}
	if err := setup.Validate(); err != nil {
		return nil, fmt.Errorf("cannot run %s: %w", setup.Name, err)
	}
	workers = max(1, min(workers, games))

	r := &runner{collector: metrics.NewDummyCollector(), progress: max(1, games/10)}
	for _, option := range options {
		option(r)
	}

	log.Info().Msgf("starting %s experiment: %d games on %d workers...", setup.Name, games, workers)

	task := make(chan int, games)
	for i := 0; i < games; i++ {
		task <- i
	}
	close(task)

	records := make([]metrics.GameRecord, games)
	errs := make([]error, games)
	total := 0

	r.collector.Start(workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for index := range task {
				records[index], errs[index] = runGame(setup, index)
				done := r.collector.AddGame(records[index].Turns)
				if done > 0 && done%r.progress == 0 {
					log.Info().Msgf("completed %d of %d games", done, games)
				}
			}
		}()
	}
	wg.Wait()
	metric := r.collector.Complete()

	for index, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("game %d (seed %d): %w", index, setup.Seed+uint64(index), err)
		}
		total += records[index].Turns
	}

	log.Info().Msgf("completed %s experiment: %d games, %d turns", setup.Name, games, total)
	if metric.Games > 0 {
		log.Info().Msgf("throughput: %.1f games/s over %s", metric.GamesPerSecond(), metric.Duration)
	}
	return records, nil
}

// runGame builds a fresh table for game index and plays it to the end.
func runGame(setup Setup, index int) (metrics.GameRecord, error) {
	seed := setup.Seed + uint64(index)
	rng := game.NewRandom(seed)

	board, err := game.NewBoard(setup.Rules, rng)
	if err != nil {
		return metrics.GameRecord{}, err
	}
	deck, err := game.NewDeck(setup.Deck, rng)
	if err != nil {
		return metrics.GameRecord{}, err
	}
	players, err := player.Seat(setup.Players, rng)
	if err != nil {
		return metrics.GameRecord{}, err
	}
	g, err := engine.New(board, deck, players,
		engine.WithMaxTurns(setup.MaxTurns),
		engine.WithVPsToWin(setup.VPsToWin),
		engine.WithLogger(log.Logger.With().Int("game", index).Logger()),
	)
	if err != nil {
		return metrics.GameRecord{}, err
	}

	start := time.Now()
	result, err := g.Play()
	if err != nil {
		return metrics.GameRecord{}, err
	}

	record := metrics.GameRecord{
		Game:     index,
		Seed:     seed,
		Outcome:  result.Outcome.String(),
		Winner:   result.Winner,
		Turns:    result.Turns,
		VPs:      make([]int, len(result.Accounts)),
		Money:    make([]float64, len(result.Accounts)),
		Duration: time.Since(start),
	}
	for i, a := range result.Accounts {
		record.VPs[i] = a.VPs
		record.Money[i] = a.Money
	}
	return record, nil
}

// Summary tallies a run the way a results table would show it.
type Summary struct {
	Games     int
	Outcomes  map[string]int
	Winners   map[int]int // Player ID -> wins
	MeanTurns float64
	MeanVPs   float64 // combined VPs per game
}

func Summarize(records []metrics.GameRecord) Summary {
	s := Summary{
		Games:    len(records),
		Outcomes: map[string]int{},
		Winners:  map[int]int{},
	}
	if len(records) == 0 {
		return s
	}

	turns, vps := 0, 0
	for _, r := range records {
		s.Outcomes[r.Outcome]++
		if r.Winner != 0 {
			s.Winners[r.Winner]++
		}
		turns += r.Turns
		vps += r.TotalVPs()
	}
	s.MeanTurns = float64(turns) / float64(len(records))
	s.MeanVPs = float64(vps) / float64(len(records))
	return s
}

// Rate returns the share of games that ended with the given outcome.
func (s Summary) Rate(outcome engine.Outcome) float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Outcomes[outcome.String()]) / float64(s.Games)
}

// WinnerIDs lists the IDs of players that won at least once, in ascending order.
func (s Summary) WinnerIDs() []int {
	ids := make([]int, 0, len(s.Winners))
	for id := range s.Winners {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

var errNoRecords = errors.New("no records to save")

// Save writes a run to the output directory and, when store is not nil, to the
// records database. It returns the run ID.
func Save(dir string, store *metrics.Store, setup metrics.Setup, records []metrics.GameRecord) (string, error) {
	if len(records) == 0 {
		return "", errNoRecords
	}

	writer, err := metrics.NewWriter(dir, setup.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	setup.RunID = writer.RunID

	if err := writer.WriteSetup(setup); err != nil {
		return "", err
	}
	log.Info().Msg("stored setup")

	if err := writer.WriteGameRecords(records); err != nil {
		return "", err
	}
	log.Info().Msgf("stored game records in %s", writer.Dir())

	if store != nil {
		if err := store.SaveRun(setup, records); err != nil {
			return "", fmt.Errorf("failed to save run: %w", err)
		}
		log.Info().Msgf("stored run %s in database", setup.RunID)
	}
	return setup.RunID, nil
}
