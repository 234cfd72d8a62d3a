package engine

import "commons/game"

// boardView is what strategies see of the board. It only forwards queries, so a
// strategy cannot recover the *game.Board behind it.
type boardView struct {
	board *game.Board
}

func (v boardView) VacantSites() []game.Site                  { return v.board.VacantSites() }
func (v boardView) DepletableTiles() []game.TileCount         { return v.board.DepletableTiles() }
func (v boardView) TilesTouching(site game.Site) []game.Tile  { return v.board.TilesTouching(site) }
func (v boardView) SitesTouching(tile game.Tile) []game.Site  { return v.board.SitesTouching(tile) }
func (v boardView) StructureAt(site game.Site) game.Structure { return v.board.StructureAt(site) }
func (v boardView) ResourceAt(tile game.Tile) int             { return v.board.ResourceAt(tile) }

func (v boardView) Cost(kind game.StructureKind) (float64, bool) {
	return v.board.Cost(kind)
}
