package engine

import "fmt"

type Outcome int

const (
	InProgress Outcome = iota
	Win
	Tie
	Loss
	MaxTurnsReached
)

func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in-progress"
	case Win:
		return "win"
	case Tie:
		return "tie"
	case Loss:
		return "loss"
	case MaxTurnsReached:
		return "max-turns"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

func (o Outcome) IsTerminal() bool {
	return o != InProgress
}

// Result is what a finished game reports. Winner is the winning player ID for Win and
// 0 otherwise.
type Result struct {
	Outcome  Outcome
	Winner   int
	Turns    int
	Accounts []Account
}

// score decides the outcome of a game whose trees are all gone: a collective loss
// below the threshold, otherwise a win for a strict leader or a tie at the top.
func score(accounts []Account, vpsToWin int) (Outcome, int) {
	total := 0
	for _, a := range accounts {
		total += a.VPs
	}
	if total < vpsToWin {
		return Loss, 0
	}

	best, winner, leaders := -1, 0, 0
	for _, a := range accounts {
		switch {
		case a.VPs > best:
			best, winner, leaders = a.VPs, a.ID, 1
		case a.VPs == best:
			leaders++
		}
	}
	if leaders > 1 {
		return Tie, 0
	}
	return Win, winner
}
