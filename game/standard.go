package game

import "commons/meta"

// NewStandardRules returns the rules of the reference game, adjusted by options.
func NewStandardRules(options ...RuleOption) Rules {
	r := Rules{
		Rows:  meta.ROWS,
		Cols:  meta.COLS,
		Trees: meta.TREES,
		Costs: map[StructureKind]float64{
			Hut:     meta.HUT_COST,
			Station: meta.STATION_COST,
		},
		HutBonus: meta.HUT_BONUS,
	}
	for _, option := range options {
		option(&r)
	}
	return r
}

// StandardDeck returns the reference deck composition.
func StandardDeck() map[CardKind]int {
	return map[CardKind]int{
		Garden: meta.GARDENS,
		Curse:  meta.CURSES,
	}
}
