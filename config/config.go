// Package config reads experiment settings from YAML. Fields left out of the file keep
// the defaults of the standard game.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"commons/experiments"
	"commons/game"
	"commons/meta"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Name     string             `yaml:"name"`
	Seed     uint64             `yaml:"seed"`
	Games    int                `yaml:"games"`
	Workers  int                `yaml:"workers"`
	Players  []string           `yaml:"players"`
	Board    BoardConfig        `yaml:"board"`
	Costs    map[string]float64 `yaml:"costs"`
	Deck     map[string]int     `yaml:"deck"`
	MaxTurns int                `yaml:"max_turns"`
	VPsToWin int                `yaml:"vps_to_win"`
	Output   OutputConfig       `yaml:"output"`
	Logging  LoggingConfig      `yaml:"logging"`
}

type BoardConfig struct {
	Rows     int `yaml:"rows"`
	Cols     int `yaml:"cols"`
	Trees    int `yaml:"trees"`
	HutBonus int `yaml:"hut_bonus"`
}

type OutputConfig struct {
	Dir string `yaml:"dir"`
	DB  string `yaml:"db"` // empty disables the records database
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the standard game with two default players.
func Default() *Config {
	return &Config{
		Name:    "default",
		Seed:    1,
		Games:   100,
		Workers: 4,
		Players: []string{"default", "default"},
		Board: BoardConfig{
			Rows:     meta.ROWS,
			Cols:     meta.COLS,
			Trees:    meta.TREES,
			HutBonus: meta.HUT_BONUS,
		},
		Costs: map[string]float64{
			game.Hut.String():     meta.HUT_COST,
			game.Station.String(): meta.STATION_COST,
		},
		Deck: map[string]int{
			game.Garden.String(): meta.GARDENS,
			game.Curse.String():  meta.CURSES,
		},
		MaxTurns: meta.MAX_TURNS,
		VPsToWin: meta.VPS_TO_WIN,
		Output:   OutputConfig{Dir: "experiments"},
		Logging:  LoggingConfig{Level: "info"},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("cannot load %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	defaults := Default()
	if cfg.Costs == nil {
		cfg.Costs = map[string]float64{}
	}
	if cfg.Deck == nil {
		cfg.Deck = map[string]int{}
	}
	for name, cost := range defaults.Costs {
		if _, ok := cfg.Costs[name]; !ok {
			cfg.Costs[name] = cost
		}
	}
	for name, count := range defaults.Deck {
		if _, ok := cfg.Deck[name]; !ok {
			cfg.Deck[name] = count
		}
	}
	if _, err := cfg.Setup(); err != nil {
		return nil, err
	}
	if _, err := cfg.Level(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Setup converts the configuration into a validated experiment setup.
func (c *Config) Setup() (experiments.Setup, error) {
	options := []game.RuleOption{
		game.WithSize(c.Board.Rows, c.Board.Cols),
		game.WithTrees(c.Board.Trees),
		game.WithHutBonus(c.Board.HutBonus),
	}
	for name, cost := range c.Costs {
		kind, err := game.ParseStructureKind(name)
		if err != nil {
			return experiments.Setup{}, err
		}
		options = append(options, game.WithCost(kind, cost))
	}

	deck := make(map[game.CardKind]int, len(c.Deck))
	for name, count := range c.Deck {
		kind, err := game.ParseCardKind(name)
		if err != nil {
			return experiments.Setup{}, err
		}
		deck[kind] = count
	}

	setup := experiments.Setup{
		Name:     c.Name,
		Rules:    game.NewStandardRules(options...),
		Deck:     deck,
		Players:  append([]string(nil), c.Players...),
		MaxTurns: c.MaxTurns,
		VPsToWin: c.VPsToWin,
		Seed:     c.Seed,
	}
	if err := setup.Validate(); err != nil {
		return experiments.Setup{}, err
	}
	if c.Games < 1 {
		return experiments.Setup{}, fmt.Errorf("cannot run %d games", c.Games)
	}
	return setup, nil
}

// Level parses the configured log level.
func (c *Config) Level() (zerolog.Level, error) {
	return zerolog.ParseLevel(c.Logging.Level)
}
