package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"commons/config"
	"commons/engine"
	"commons/experiments"
	"commons/experiments/metrics"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	path := flag.String("config", "", "YAML experiment file (defaults to the standard game)")
	games := flag.Int("games", 0, "Number of games to simulate")
	seed := flag.Uint64("seed", 0, "Seed of the first game; game i uses seed+i")
	workers := flag.Int("workers", 0, "Number of goroutines running games")
	players := flag.String("players", "", "Comma-separated strategies, one per seat (default, drawer)")
	out := flag.String("out", "", "Directory for experiment records")
	db := flag.String("db", "", "SQLite file for experiment records")
	verbose := flag.Bool("verbose", false, "Log every turn")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	cfg := config.Default()
	if *path != "" {
		var err error
		cfg, err = config.Load(*path)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
	}

	// Flags given on the command line win over the file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "games":
			cfg.Games = *games
		case "seed":
			cfg.Seed = *seed
		case "workers":
			cfg.Workers = *workers
		case "players":
			cfg.Players = strings.Split(*players, ",")
		case "out":
			cfg.Output.Dir = *out
		case "db":
			cfg.Output.DB = *db
		}
	})

	level, err := cfg.Level()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	if *verbose || cfg.Games == 1 {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
}

func run(cfg *config.Config) error {
	setup, err := cfg.Setup()
	if err != nil {
		return err
	}

	collector := metrics.NewCollector()
	records, err := experiments.Run(setup, cfg.Games, cfg.Workers, experiments.WithCollector(collector))
	if err != nil {
		return err
	}
	report(experiments.Summarize(records))

	var store *metrics.Store
	if cfg.Output.DB != "" {
		store, err = metrics.NewStore(cfg.Output.DB)
		if err != nil {
			return fmt.Errorf("failed to open records database: %w", err)
		}
		defer store.Close()
	}

	runID, err := experiments.Save(cfg.Output.Dir, store, setup.Describe(cfg.Games, collector.Complete().Workers), records)
	if err != nil {
		return err
	}
	log.Info().Msgf("saved run %s", runID)
	return nil
}

func report(s experiments.Summary) {
	for _, outcome := range []engine.Outcome{engine.Win, engine.Tie, engine.Loss, engine.MaxTurnsReached} {
		log.Info().Msgf("%-10s %5d (%.1f%%)", outcome, s.Outcomes[outcome.String()], 100*s.Rate(outcome))
	}
	for _, id := range s.WinnerIDs() {
		log.Info().Msgf("player %d won %d game(s)", id, s.Winners[id])
	}
	log.Info().Msgf("mean turns %.1f, mean combined VPs %.2f", s.MeanTurns, s.MeanVPs)
}
