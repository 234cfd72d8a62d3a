package game

// Tile is a cell of the resource grid holding tree units.
type Tile struct {
	Row int
	Col int
}

// Site is a cell of the structure grid, an intersection between tiles where a hut or
// station can be built. Rows alternate between the two triangle orientations.
type Site struct {
	Row int
	Col int
}

// Map is the static geometry of a board: grid sizes and the adjacency between tiles
// and sites in both directions, computed once per board size.
//
// The structure grid is (2*(rows-1)) x (cols-1). Sites along the outer edge, whose
// triangle would reach outside the resource grid, are left out of the model, so every
// site touches exactly three tiles while edge tiles touch fewer than six sites.
type Map struct {
	Rows      int // tile rows
	Cols      int // tile columns
	SiteRows  int
	SiteCols  int
	tileSites [][][]Site
	siteTiles [][][]Tile
}

// CreateMap builds the geometry for a rows x cols resource grid.
func CreateMap(rows, cols int) *Map {
	m := &Map{
		Rows:     rows,
		Cols:     cols,
		SiteRows: max(0, 2*(rows-1)),
		SiteCols: max(0, cols-1),
	}

	m.siteTiles = make([][][]Tile, m.SiteRows)
	for r := range m.siteTiles {
		m.siteTiles[r] = make([][]Tile, m.SiteCols)
		for c := range m.siteTiles[r] {
			m.siteTiles[r][c] = tilesTouching(Site{Row: r, Col: c})
		}
	}

	m.tileSites = make([][][]Site, rows)
	for r := range m.tileSites {
		m.tileSites[r] = make([][]Site, cols)
		for c := range m.tileSites[r] {
			m.tileSites[r][c] = m.sitesTouching(Tile{Row: r, Col: c})
		}
	}
	return m
}

// tilesTouching picks one of the two triangles by row parity. No bounds checks are
// needed because edge sites are not part of the structure grid.
func tilesTouching(s Site) []Tile {
	tr, tc := s.Row/2, s.Col
	if s.Row%2 == 0 {
		return []Tile{{tr, tc}, {tr, tc + 1}, {tr + 1, tc}}
	}
	return []Tile{{tr + 1, tc + 1}, {tr, tc + 1}, {tr + 1, tc}}
}

func (m *Map) sitesTouching(t Tile) []Site {
	ro, co := 2*t.Row, t.Col
	candidates := []Site{
		{ro - 2, co},
		{ro - 1, co - 1},
		{ro - 1, co},
		{ro, co - 1},
		{ro, co},
		{ro + 1, co - 1},
	}
	sites := make([]Site, 0, len(candidates))
	for _, s := range candidates {
		if m.HasSite(s) {
			sites = append(sites, s)
		}
	}
	return sites
}

func (m *Map) HasTile(t Tile) bool {
	return t.Row >= 0 && t.Row < m.Rows && t.Col >= 0 && t.Col < m.Cols
}

func (m *Map) HasSite(s Site) bool {
	return s.Row >= 0 && s.Row < m.SiteRows && s.Col >= 0 && s.Col < m.SiteCols
}

// TilesTouching returns the three tiles around a site, or nil for a site off the grid.
func (m *Map) TilesTouching(s Site) []Tile {
	if !m.HasSite(s) {
		return nil
	}
	return append([]Tile(nil), m.siteTiles[s.Row][s.Col]...)
}

// SitesTouching returns the in-bounds sites around a tile (at most six).
func (m *Map) SitesTouching(t Tile) []Site {
	if !m.HasTile(t) {
		return nil
	}
	return append([]Site(nil), m.tileSites[t.Row][t.Col]...)
}

// AreAdjacent checks if a tile and a site touch.
func (m *Map) AreAdjacent(t Tile, s Site) bool {
	if !m.HasSite(s) {
		return false
	}
	for _, adj := range m.siteTiles[s.Row][s.Col] {
		if adj == t {
			return true
		}
	}
	return false
}
