package player

import (
	"commons/game"
	"commons/meta"
)

// Default is the greedy reference strategy. It spends whenever it can afford the
// cheapest structure, alternating huts and stations, and otherwise draws, aiming curses
// at tiles its own stations touch.
type Default struct {
	id        int
	rng       game.Random
	purchases []game.Purchase
}

func NewDefault(id int, rng game.Random) *Default {
	return &Default{id: id, rng: rng}
}

func (d *Default) DecideAction(view game.BoardView, money float64) game.Action {
	hut, _ := view.Cost(game.Hut)
	station, _ := view.Cost(game.Station)

	if money >= min(hut, station) {
		if batch := d.buyBatch(view, money, hut, station); len(batch) > 0 {
			d.purchases = append(d.purchases, batch...)
			return game.Buy(batch...)
		}
	}
	return d.curse(view)
}

// Reset forgets the purchase history between games.
func (d *Default) Reset() {
	d.purchases = d.purchases[:0]
}

// Purchases returns every structure bought since the last reset.
func (d *Default) Purchases() []game.Purchase {
	return append([]game.Purchase(nil), d.purchases...)
}

// buyBatch plans the purchases for one turn. Spending is summed in purchase order so
// the total matches what the engine charges.
func (d *Default) buyBatch(view game.BoardView, money, hut, station float64) []game.Purchase {
	var batch []game.Purchase
	taken := map[game.Site]bool{}
	spent := 0.0

	for len(batch) < meta.MAX_PURCHASES {
		canHut := money >= spent+hut
		canStation := money >= spent+station

		var kind game.StructureKind
		switch {
		case canHut && canStation:
			kind = d.alternate(batch)
		case canStation:
			kind = game.Station
		case canHut:
			kind = game.Hut
		default:
			return batch
		}

		site, ok := mostValuableSite(view, taken)
		if !ok {
			return batch
		}
		taken[site] = true
		batch = append(batch, game.Purchase{Kind: kind, Site: site})
		if kind == game.Hut {
			spent += hut
		} else {
			spent += station
		}
	}
	return batch
}

// alternate picks a hut first, a station after a hut and a hut after a station.
func (d *Default) alternate(batch []game.Purchase) game.StructureKind {
	var last game.Purchase
	switch {
	case len(batch) > 0:
		last = batch[len(batch)-1]
	case len(d.purchases) > 0:
		last = d.purchases[len(d.purchases)-1]
	default:
		return game.Hut
	}
	if last.Kind == game.Hut {
		return game.Station
	}
	return game.Hut
}

// mostValuableSite returns the vacant site touching the most trees. When no vacant
// site touches any tree the last vacant site is used.
func mostValuableSite(view game.BoardView, taken map[game.Site]bool) (game.Site, bool) {
	var best, fallback game.Site
	bestValue, found := 0, false

	for _, s := range view.VacantSites() {
		if taken[s] {
			continue
		}
		found = true
		value := 0
		for _, t := range view.TilesTouching(s) {
			value += view.ResourceAt(t)
		}
		if value > bestValue {
			best, bestValue = s, value
		} else {
			fallback = s
		}
	}
	if !found {
		return game.Site{}, false
	}
	if bestValue == 0 {
		return fallback, true
	}
	return best, true
}

// curse picks the tile with the best (own stations x trees) score, else a random tile
// holding more than one tree, else any tree. It extracts all but one tree.
func (d *Default) curse(view game.BoardView) game.Action {
	options := view.DepletableTiles()
	if len(options) == 0 {
		return game.Draw(game.Tile{}, 1)
	}

	var target game.TileCount
	best := 0
	for _, tc := range options {
		own := 0
		for _, s := range view.SitesTouching(tc.Tile) {
			if st := view.StructureAt(s); st.Kind == game.Station && st.OwnedBy(d.id) {
				own++
			}
		}
		if own > 0 && own*tc.Count > best {
			target, best = tc, own*tc.Count
		}
	}

	if best == 0 {
		var rich []game.TileCount
		for _, tc := range options {
			if tc.Count > 1 {
				rich = append(rich, tc)
			}
		}
		if len(rich) > 0 {
			target = rich[d.rng.Intn(len(rich))]
		} else {
			target = options[d.rng.Intn(len(options))]
		}
	}
	return game.Draw(target.Tile, max(1, target.Count-1))
}
