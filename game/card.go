package game

import "fmt"

type CardKind int

const (
	Garden CardKind = iota // 0
	Curse                  // 1
)

// CardKinds is the set of kinds a commons deck must be built from.
var CardKinds = []CardKind{Garden, Curse}

func (k CardKind) String() string {
	switch k {
	case Garden:
		return "garden"
	case Curse:
		return "curse"
	default:
		return fmt.Sprintf("CardKind(%d)", int(k))
	}
}

// ParseCardKind maps a configuration name to its card kind.
func ParseCardKind(name string) (CardKind, error) {
	switch name {
	case "garden":
		return Garden, nil
	case "curse":
		return Curse, nil
	}
	return 0, fmt.Errorf("cannot parse card %q: %w", name, ErrUnknownCard)
}
