package metrics

import (
	"sync/atomic"
	"time"
)

type RunMetric struct {
	Workers  int
	Games    int
	Turns    int
	Duration time.Duration
}

// GamesPerSecond reports throughput, 0 for an instant run.
func (m RunMetric) GamesPerSecond() float64 {
	if m.Duration <= 0 {
		return 0
	}
	return float64(m.Games) / m.Duration.Seconds()
}

// Collector counts finished games across workers. AddGame is safe for concurrent use
// and returns the number of games completed so far.
type Collector interface {
	Start(workers int)
	AddGame(turns int) int
	Complete() RunMetric
}

type collector struct {
	workers   int
	startTime time.Time
	games     atomic.Int32
	turns     atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(workers int) {
	m.startTime = time.Now()
	m.workers = workers
	m.games.Store(0)
	m.turns.Store(0)
}

func (m *collector) AddGame(turns int) int {
	m.turns.Add(int64(turns))
	return int(m.games.Add(1))
}

func (m *collector) Complete() RunMetric {
	return RunMetric{
		Workers:  m.workers,
		Games:    int(m.games.Load()),
		Turns:    int(m.turns.Load()),
		Duration: time.Since(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(workers int)     {}
func (m *dummyCollector) AddGame(turns int) int { return 0 }
func (m *dummyCollector) Complete() RunMetric   { return RunMetric{} }
