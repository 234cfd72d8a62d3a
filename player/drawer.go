package player

import "commons/game"

// Drawer never builds. It draws every turn and curses the first tile with trees by a
// single unit.
type Drawer struct{}

func (Drawer) DecideAction(view game.BoardView, money float64) game.Action {
	tiles := view.DepletableTiles()
	if len(tiles) == 0 {
		return game.Draw(game.Tile{}, 1)
	}
	return game.Draw(tiles[0].Tile, 1)
}
