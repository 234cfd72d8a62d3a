package game

import "fmt"

// Rules holds the board parameters that do not change during a game.
type Rules struct {
	Rows     int
	Cols     int
	Trees    int                       // tree units seeded at setup
	Costs    map[StructureKind]float64 // purchase price per structure
	HutBonus int                       // extra regrowth per adjacent hut
}

type RuleOption func(r *Rules)

func WithSize(rows, cols int) RuleOption {
	return func(r *Rules) {
		r.Rows = rows
		r.Cols = cols
	}
}

func WithTrees(trees int) RuleOption {
	return func(r *Rules) {
		r.Trees = trees
	}
}

func WithCost(kind StructureKind, cost float64) RuleOption {
	return func(r *Rules) {
		r.Costs[kind] = cost
	}
}

func WithHutBonus(bonus int) RuleOption {
	return func(r *Rules) {
		r.HutBonus = bonus
	}
}

// Validate checks the rules can build a board.
func (r Rules) Validate() error {
	if r.Rows < 1 || r.Cols < 1 {
		return fmt.Errorf("cannot use %dx%d board: %w", r.Rows, r.Cols, ErrInvalidBoard)
	}
	if r.Trees < 0 {
		return fmt.Errorf("cannot seed %d trees: %w", r.Trees, ErrInvalidBoard)
	}
	if r.HutBonus < 0 {
		return fmt.Errorf("cannot use negative hut bonus %d: %w", r.HutBonus, ErrInvalidBoard)
	}
	for _, kind := range []StructureKind{Hut, Station} {
		cost, ok := r.Costs[kind]
		if !ok {
			return fmt.Errorf("missing cost for %s: %w", kind, ErrUnknownStructure)
		}
		if cost < 0 {
			return fmt.Errorf("cannot use negative cost %v for %s: %w", cost, kind, ErrInvalidBoard)
		}
	}
	for kind := range r.Costs {
		if kind != Hut && kind != Station {
			return fmt.Errorf("cost given for %s: %w", kind, ErrUnknownStructure)
		}
	}
	return nil
}
