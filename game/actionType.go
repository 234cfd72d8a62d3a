package game

import "fmt"

// ActionType represents the type of action a player can perform on their turn.
type ActionType int

const (
	DrawAction ActionType = iota + 1 // zero value is not a valid action
	BuyAction
)

func (t ActionType) String() string {
	switch t {
	case DrawAction:
		return "draw"
	case BuyAction:
		return "buy"
	default:
		return fmt.Sprintf("ActionType(%d)", int(t))
	}
}

// CurseTarget is the tile a player extracts from should their draw be a curse.
type CurseTarget struct {
	Tile   Tile
	Amount int
}

// Purchase is a single structure bought and placed on a site.
type Purchase struct {
	Kind StructureKind
	Site Site
}

// Action represents the choice a player makes for one turn. Curse is only read for
// draws and Purchases only for buys.
type Action struct {
	Type      ActionType
	Curse     CurseTarget
	Purchases []Purchase
}

// Draw builds a draw action carrying the curse target.
func Draw(tile Tile, amount int) Action {
	return Action{Type: DrawAction, Curse: CurseTarget{Tile: tile, Amount: amount}}
}

// Buy builds a buy action for the given purchases.
func Buy(purchases ...Purchase) Action {
	return Action{Type: BuyAction, Purchases: purchases}
}
