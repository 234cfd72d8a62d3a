package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testRules(options ...RuleOption) Rules {
	return NewStandardRules(options...)
}

func TestNewBoard(t *testing.T) {
	t.Run("seeds the configured number of trees", func(t *testing.T) {
		b, err := NewBoard(testRules(WithSize(4, 5), WithTrees(12)), NewRandom(9))

		require.NoError(t, err)
		require.Equal(t, 12, b.TotalResources())
		require.Len(t, b.VacantSites(), 6*4)
	})

	t.Run("seeds with replacement", func(t *testing.T) {
		// every seed lands on tile (1,1)
		b, err := NewBoard(testRules(WithSize(2, 2), WithTrees(3)), &mockRandom{ints: []int{1, 1, 1, 1, 1, 1}})

		require.NoError(t, err)
		require.Equal(t, 3, b.ResourceAt(Tile{1, 1}))
		require.Equal(t, []TileCount{{Tile: Tile{1, 1}, Count: 3}}, b.DepletableTiles())
	})

	t.Run("rejects invalid rules", func(t *testing.T) {
		_, err := NewBoard(testRules(WithSize(0, 3)), NewRandom(1))
		require.ErrorIs(t, err, ErrInvalidBoard)

		_, err = NewBoard(testRules(WithCost(Hut, -1)), NewRandom(1))
		require.ErrorIs(t, err, ErrInvalidBoard)

		rules := testRules()
		delete(rules.Costs, Station)
		_, err = NewBoard(rules, NewRandom(1))
		require.ErrorIs(t, err, ErrUnknownStructure)
	})

	t.Run("layout fixes the starting counts", func(t *testing.T) {
		b, err := NewBoardWithLayout([][]int{{1, 0}, {0, 2}}, testRules(), NewRandom(1))

		require.NoError(t, err)
		require.Equal(t, 3, b.TotalResources())
		require.Equal(t, 2, b.ResourceAt(Tile{1, 1}))
	})

	t.Run("rejects ragged layouts", func(t *testing.T) {
		_, err := NewBoardWithLayout([][]int{{1, 0}, {0}}, testRules(), NewRandom(1))

		require.ErrorIs(t, err, ErrInvalidBoard)
	})
}

func TestPlaceStructures(t *testing.T) {
	t.Run("marks huts ownerless and stations by owner", func(t *testing.T) {
		b, _ := NewBoardWithLayout([][]int{{1, 1, 1}, {1, 1, 1}}, testRules(), NewRandom(1))

		ok := b.PlaceStructures([]Purchase{{Kind: Hut, Site: Site{0, 0}}, {Kind: Station, Site: Site{1, 1}}}, 2)

		require.True(t, ok)
		require.Equal(t, Structure{Kind: Hut}, b.StructureAt(Site{0, 0}))
		require.Equal(t, Structure{Kind: Station, Owner: 2}, b.StructureAt(Site{1, 1}))
		require.True(t, b.StructureAt(Site{1, 1}).OwnedBy(2))
		require.NotContains(t, b.VacantSites(), Site{0, 0})
		require.Len(t, b.VacantSites(), 2)
	})

	t.Run("fails on an occupied site without rolling back", func(t *testing.T) {
		b, _ := NewBoardWithLayout([][]int{{1, 1, 1}, {1, 1, 1}}, testRules(), NewRandom(1))
		b.PlaceStructures([]Purchase{{Kind: Hut, Site: Site{0, 1}}}, 1)

		ok := b.PlaceStructures([]Purchase{{Kind: Station, Site: Site{0, 0}}, {Kind: Station, Site: Site{0, 1}}}, 1)

		require.False(t, ok)
		require.Equal(t, Structure{Kind: Station, Owner: 1}, b.StructureAt(Site{0, 0}))
		require.Equal(t, Structure{Kind: Hut}, b.StructureAt(Site{0, 1}))
	})

	t.Run("fails on unknown kinds and off-grid sites", func(t *testing.T) {
		b, _ := NewBoardWithLayout([][]int{{1, 1}, {1, 1}}, testRules(), NewRandom(1))

		require.False(t, b.PlaceStructures([]Purchase{{Kind: NoStructure, Site: Site{0, 0}}}, 1))
		require.False(t, b.PlaceStructures([]Purchase{{Kind: Hut, Site: Site{2, 0}}}, 1))
		require.Len(t, b.VacantSites(), 2)
	})
}

func TestGrowRandomTile(t *testing.T) {
	t.Run("grows by one without huts", func(t *testing.T) {
		b, _ := NewBoardWithLayout([][]int{{0, 0}, {0, 0}}, testRules(), &mockRandom{ints: []int{1, 0}})

		tile, grown := b.GrowRandomTile()

		require.Equal(t, Tile{1, 0}, tile)
		require.Equal(t, 1, grown)
		require.Equal(t, 1, b.ResourceAt(Tile{1, 0}))
	})

	t.Run("adds the hut bonus per adjacent hut", func(t *testing.T) {
		rng := &mockRandom{ints: []int{1, 1}}
		b, _ := NewBoardWithLayout([][]int{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}, testRules(WithHutBonus(2)), rng)
		// (0,1) and (1,0) touch tile (1,1); (3,0) does too but hosts a station
		b.PlaceStructures([]Purchase{
			{Kind: Hut, Site: Site{0, 1}},
			{Kind: Hut, Site: Site{1, 0}},
			{Kind: Station, Site: Site{3, 0}},
		}, 1)

		tile, grown := b.GrowRandomTile()

		require.Equal(t, Tile{1, 1}, tile)
		require.Equal(t, 1+2*2, grown)
		require.Equal(t, 5, b.ResourceAt(Tile{1, 1}))
	})
}

func TestDepleteTile(t *testing.T) {
	t.Run("credits one point per adjacent station regardless of amount", func(t *testing.T) {
		b, _ := NewBoardWithLayout([][]int{{0, 0, 0}, {0, 5, 0}, {0, 0, 0}}, testRules(), NewRandom(1))
		b.PlaceStructures([]Purchase{{Kind: Station, Site: Site{1, 1}}, {Kind: Station, Site: Site{2, 1}}}, 1)
		b.PlaceStructures([]Purchase{{Kind: Station, Site: Site{2, 0}}, {Kind: Hut, Site: Site{0, 1}}}, 2)

		credits, exhausted, err := b.DepleteTile(Tile{1, 1}, 3)

		require.NoError(t, err)
		require.False(t, exhausted)
		require.Equal(t, Credits{1: 2, 2: 1}, credits)
		require.Equal(t, 2, b.ResourceAt(Tile{1, 1}))
	})

	t.Run("reports exhaustion on taking the full count", func(t *testing.T) {
		b, _ := NewBoardWithLayout([][]int{{2, 0}, {0, 0}}, testRules(), NewRandom(1))

		credits, exhausted, err := b.DepleteTile(Tile{0, 0}, 2)

		require.NoError(t, err)
		require.True(t, exhausted)
		require.Empty(t, credits)
		require.Equal(t, 0, b.TotalResources())
	})

	t.Run("rejects extraction outside [1, count]", func(t *testing.T) {
		b, _ := NewBoardWithLayout([][]int{{2, 0}, {0, 0}}, testRules(), NewRandom(1))

		_, _, err := b.DepleteTile(Tile{0, 0}, 3)
		require.ErrorIs(t, err, ErrInvalidExtraction)
		_, _, err = b.DepleteTile(Tile{0, 0}, 0)
		require.ErrorIs(t, err, ErrInvalidExtraction)
		_, _, err = b.DepleteTile(Tile{5, 5}, 1)
		require.ErrorIs(t, err, ErrInvalidExtraction)
		require.Equal(t, 2, b.ResourceAt(Tile{0, 0}))
	})
}

func TestBoardReset(t *testing.T) {
	t.Run("same seed reproduces a fresh board", func(t *testing.T) {
		rules := testRules(WithTrees(15))
		fresh, _ := NewBoard(rules, NewRandom(11))

		rng := NewRandom(11)
		b, _ := NewBoard(rules, rng)
		b.PlaceStructures([]Purchase{{Kind: Hut, Site: Site{0, 0}}}, 1)
		rng.Seed(11)
		b.Reset()
		rng.Seed(11)
		b.Reset()

		require.Equal(t, fresh.trees, b.trees)
		require.Equal(t, fresh.sites, b.sites)
	})

	t.Run("layout board is restored", func(t *testing.T) {
		b, _ := NewBoardWithLayout([][]int{{1, 2}, {3, 4}}, testRules(), NewRandom(1))
		_, _, _ = b.DepleteTile(Tile{1, 1}, 4)
		b.PlaceStructures([]Purchase{{Kind: Station, Site: Site{1, 0}}}, 1)

		b.Reset()

		require.Equal(t, 10, b.TotalResources())
		require.Len(t, b.VacantSites(), 2)
	})
}
