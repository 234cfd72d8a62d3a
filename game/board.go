package game

import "fmt"

// Credits maps a player ID to the victory points earned by one depletion.
type Credits map[int]int

// Board represents the dynamic state of the commons: tree counts per tile and the
// structure built on each site. The geometry lives in the static Map.
type Board struct {
	*Map
	rules  Rules
	trees  [][]int
	sites  [][]Structure
	layout [][]int // fixed starting counts, nil when trees are seeded at random
	rng    Random
}

// NewBoard creates a board and seeds rules.Trees single units onto random tiles,
// with replacement.
func NewBoard(rules Rules, rng Random) (*Board, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	b := newBoard(rules, rng)
	b.Reset()
	return b, nil
}

// NewBoardWithLayout creates a board whose tiles start with the given counts instead
// of random seeding. Rows and Cols are taken from the layout.
func NewBoardWithLayout(layout [][]int, rules Rules, rng Random) (*Board, error) {
	if len(layout) == 0 || len(layout[0]) == 0 {
		return nil, fmt.Errorf("cannot use empty layout: %w", ErrInvalidBoard)
	}
	rules.Rows = len(layout)
	rules.Cols = len(layout[0])
	rules.Trees = 0
	for _, row := range layout {
		if len(row) != rules.Cols {
			return nil, fmt.Errorf("cannot use ragged layout: %w", ErrInvalidBoard)
		}
		for _, n := range row {
			if n < 0 {
				return nil, fmt.Errorf("cannot use negative tile count %d: %w", n, ErrInvalidBoard)
			}
			rules.Trees += n
		}
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	b := newBoard(rules, rng)
	b.layout = copyGrid(layout)
	b.Reset()
	return b, nil
}

func newBoard(rules Rules, rng Random) *Board {
	m := CreateMap(rules.Rows, rules.Cols)
	b := &Board{
		Map:   m,
		rules: rules,
		rng:   rng,
		trees: make([][]int, m.Rows),
		sites: make([][]Structure, m.SiteRows),
	}
	for r := range b.trees {
		b.trees[r] = make([]int, m.Cols)
	}
	for r := range b.sites {
		b.sites[r] = make([]Structure, m.SiteCols)
	}
	return b
}

// Reset clears every site and reseeds the trees (or restores the fixed layout).
func (b *Board) Reset() {
	for r := range b.sites {
		for c := range b.sites[r] {
			b.sites[r][c] = Structure{}
		}
	}
	if b.layout != nil {
		for r := range b.trees {
			copy(b.trees[r], b.layout[r])
		}
		return
	}
	for r := range b.trees {
		for c := range b.trees[r] {
			b.trees[r][c] = 0
		}
	}
	for i := 0; i < b.rules.Trees; i++ {
		b.trees[b.rng.Intn(b.Rows)][b.rng.Intn(b.Cols)]++
	}
}

func (b *Board) Rules() Rules {
	return b.rules
}

// Cost returns the purchase price of a structure kind.
func (b *Board) Cost(kind StructureKind) (float64, bool) {
	cost, ok := b.rules.Costs[kind]
	return cost, ok
}

// ResourceAt returns the tree count of a tile, 0 for tiles off the grid.
func (b *Board) ResourceAt(t Tile) int {
	if !b.HasTile(t) {
		return 0
	}
	return b.trees[t.Row][t.Col]
}

// StructureAt returns the content of a site, empty for sites off the grid.
func (b *Board) StructureAt(s Site) Structure {
	if !b.HasSite(s) {
		return Structure{}
	}
	return b.sites[s.Row][s.Col]
}

// TotalResources sums the tree counts of all tiles.
func (b *Board) TotalResources() int {
	total := 0
	for _, row := range b.trees {
		for _, n := range row {
			total += n
		}
	}
	return total
}

// PlaceStructures builds each purchase in order for playerID. It stops at the first
// purchase with an unknown kind or an unavailable site and reports false; structures
// placed before that point stay on the board.
func (b *Board) PlaceStructures(purchases []Purchase, playerID int) bool {
	for _, p := range purchases {
		if _, ok := b.rules.Costs[p.Kind]; !ok {
			return false
		}
		if !b.HasSite(p.Site) || !b.sites[p.Site.Row][p.Site.Col].IsEmpty() {
			return false
		}
		switch p.Kind {
		case Hut:
			b.sites[p.Site.Row][p.Site.Col] = Structure{Kind: Hut}
		case Station:
			b.sites[p.Site.Row][p.Site.Col] = Structure{Kind: Station, Owner: playerID}
		default:
			return false
		}
	}
	return true
}

// VacantSites lists the sites with nothing built on them, in row-major order.
func (b *Board) VacantSites() []Site {
	var vacant []Site
	for r, row := range b.sites {
		for c, s := range row {
			if s.IsEmpty() {
				vacant = append(vacant, Site{Row: r, Col: c})
			}
		}
	}
	return vacant
}

// DepletableTiles lists the tiles that still hold trees, in row-major order.
func (b *Board) DepletableTiles() []TileCount {
	var tiles []TileCount
	for r, row := range b.trees {
		for c, n := range row {
			if n > 0 {
				tiles = append(tiles, TileCount{Tile: Tile{Row: r, Col: c}, Count: n})
			}
		}
	}
	return tiles
}

// GrowRandomTile picks a tile uniformly by position and grows it by one unit plus the
// hut bonus for every hut around it. It returns the tile and the amount grown.
func (b *Board) GrowRandomTile() (Tile, int) {
	t := Tile{Row: b.rng.Intn(b.Rows), Col: b.rng.Intn(b.Cols)}
	huts := 0
	for _, s := range b.tileSites[t.Row][t.Col] {
		if b.sites[s.Row][s.Col].Kind == Hut {
			huts++
		}
	}
	grown := 1 + b.rules.HutBonus*huts
	b.trees[t.Row][t.Col] += grown
	return t, grown
}

// DepleteTile extracts n trees from a tile. Every station touching the tile earns its
// owner one victory point, however many trees were taken. The returned flag reports
// whether the tile is now empty.
func (b *Board) DepleteTile(t Tile, n int) (Credits, bool, error) {
	if !b.HasTile(t) {
		return nil, false, fmt.Errorf("cannot deplete tile %v: off the board: %w", t, ErrInvalidExtraction)
	}
	count := b.trees[t.Row][t.Col]
	if n < 1 || n > count {
		return nil, false, fmt.Errorf("cannot extract %d from tile %v holding %d: %w", n, t, count, ErrInvalidExtraction)
	}
	b.trees[t.Row][t.Col] -= n

	credits := Credits{}
	for _, s := range b.tileSites[t.Row][t.Col] {
		if st := b.sites[s.Row][s.Col]; st.Kind == Station {
			credits[st.Owner]++
		}
	}
	return credits, b.trees[t.Row][t.Col] == 0, nil
}

func copyGrid(grid [][]int) [][]int {
	out := make([][]int, len(grid))
	for i, row := range grid {
		out[i] = append([]int(nil), row...)
	}
	return out
}
