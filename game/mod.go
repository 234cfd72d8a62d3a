// Package game models the commons board: a resource grid of tree tiles, an offset
// structure grid of build sites, the adjacency between the two, and the garden/curse
// card deck. It knows nothing about turns or players beyond station ownership.
package game

import "golang.org/x/exp/rand"

// Random is the single source of nondeterminism for a game. Board, Deck and
// strategies all draw from the same instance so that a seed reproduces a game.
type Random interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// NewRandom returns a seeded PCG-backed source. Not safe for concurrent use.
func NewRandom(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// TileCount is a tile paired with its current tree count.
type TileCount struct {
	Tile  Tile
	Count int
}

// BoardView is the read-only slice of the board that strategies may inspect.
type BoardView interface {
	VacantSites() []Site
	DepletableTiles() []TileCount
	TilesTouching(site Site) []Tile
	SitesTouching(tile Tile) []Site
	StructureAt(site Site) Structure
	ResourceAt(tile Tile) int
	Cost(kind StructureKind) (float64, bool)
}
