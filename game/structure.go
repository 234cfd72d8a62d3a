package game

import "fmt"

type StructureKind int

const (
	NoStructure StructureKind = iota // empty site
	Hut                              // ownerless, speeds up regrowth
	Station                          // owned, earns VPs on nearby depletion
)

func (k StructureKind) String() string {
	switch k {
	case NoStructure:
		return "none"
	case Hut:
		return "hut"
	case Station:
		return "station"
	default:
		return fmt.Sprintf("StructureKind(%d)", int(k))
	}
}

// ParseStructureKind maps a configuration name to a buildable structure kind.
func ParseStructureKind(name string) (StructureKind, error) {
	switch name {
	case "hut":
		return Hut, nil
	case "station":
		return Station, nil
	}
	return NoStructure, fmt.Errorf("cannot parse structure %q: %w", name, ErrUnknownStructure)
}

// Structure is the content of a site. Owner is only set for stations.
type Structure struct {
	Kind  StructureKind
	Owner int
}

func (s Structure) IsEmpty() bool {
	return s.Kind == NoStructure
}

// OwnedBy reports whether s is a station belonging to playerID.
func (s Structure) OwnedBy(playerID int) bool {
	return s.Kind == Station && s.Owner == playerID
}
