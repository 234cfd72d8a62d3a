// meta/meta.go
package meta

// Board dimensions in tiles.
const ROWS = 6
const COLS = 6

// TREES is the number of tree units seeded onto the board at setup.
const TREES = 9

const HUT_COST = 0.05
const STATION_COST = 3

// HUT_BONUS is the extra regrowth per adjacent hut when a garden is drawn.
const HUT_BONUS = 1

const GARDENS = 3
const CURSES = 3

const MAX_TURNS = 200

// VPS_TO_WIN is the combined victory-point threshold for a collective win.
const VPS_TO_WIN = 11

// MAX_PURCHASES caps how many structures the default strategy buys in one turn.
const MAX_PURCHASES = 5
