package metrics

import "time"

// Setup describes an experiment run well enough to reproduce it.
type Setup struct {
	Name        string   `json:"name"`
	RunID       string   `json:"run_id"`
	Games       int      `json:"games"`
	Workers     int      `json:"workers"`
	Seed        uint64   `json:"seed"`
	Players     []string `json:"players"`
	Rows        int      `json:"rows"`
	Cols        int      `json:"cols"`
	Trees       int      `json:"trees"`
	HutCost     float64  `json:"hut_cost"`
	StationCost float64  `json:"station_cost"`
	HutBonus    int      `json:"hut_bonus"`
	Gardens     int      `json:"gardens"`
	Curses      int      `json:"curses"`
	MaxTurns    int      `json:"max_turns"`
	VPsToWin    int      `json:"vps_to_win"`
}

// GameRecord is the outcome of one simulated game. VPs and Money are indexed by seat.
type GameRecord struct {
	Game     int
	Seed     uint64
	Outcome  string
	Winner   int // Player ID, 0 unless the outcome is a win
	Turns    int
	VPs      []int
	Money    []float64
	Duration time.Duration
}

// TotalVPs sums the victory points of every seat.
func (r GameRecord) TotalVPs() int {
	total := 0
	for _, v := range r.VPs {
		total += v
	}
	return total
}
