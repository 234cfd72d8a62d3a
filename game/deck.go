package game

import (
	"fmt"
	"sort"
)

// Deck is the garden/curse draw pile plus its discard pile. Cards are drawn from the
// end of the shuffled draw pile and go straight to discard.
type Deck struct {
	composition map[CardKind]int
	cards       []CardKind
	discarded   []CardKind
	rng         Random
}

// NewDeck creates a shuffled deck with count cards of each kind.
func NewDeck(composition map[CardKind]int, rng Random) (*Deck, error) {
	total := 0
	for kind, count := range composition {
		if kind != Garden && kind != Curse {
			return nil, fmt.Errorf("cannot build deck: %w: %s", ErrUnknownCard, kind)
		}
		if count < 0 {
			return nil, fmt.Errorf("cannot build deck: negative count %d for %s", count, kind)
		}
		total += count
	}
	if total == 0 {
		return nil, fmt.Errorf("cannot build deck: %w", ErrEmptyDeck)
	}

	d := &Deck{
		composition: make(map[CardKind]int, len(composition)),
		rng:         rng,
	}
	for kind, count := range composition {
		d.composition[kind] = count
	}
	d.Reset()
	return d, nil
}

// Reset rebuilds the initial composition, dropping any reinforcement cards, and
// shuffles it into the draw pile.
func (d *Deck) Reset() {
	d.cards = d.cards[:0]
	d.discarded = d.discarded[:0]
	// Map order is random; build in kind order so a seed reproduces the shuffle.
	for _, kind := range d.Kinds() {
		for i := 0; i < d.composition[kind]; i++ {
			d.cards = append(d.cards, kind)
		}
	}
	d.shuffle()
}

func (d *Deck) shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw takes the top card, reshuffling the discard pile in first if the draw pile is
// exhausted. The drawn card is placed on the discard pile.
func (d *Deck) Draw() (CardKind, error) {
	if len(d.cards) == 0 {
		if err := d.Reshuffle(); err != nil {
			return 0, err
		}
	}
	last := len(d.cards) - 1
	card := d.cards[last]
	d.cards = d.cards[:last]
	d.discarded = append(d.discarded, card)
	return card, nil
}

// Reshuffle moves the discard pile into the exhausted draw pile and shuffles it.
func (d *Deck) Reshuffle() error {
	if len(d.cards) != 0 {
		return fmt.Errorf("cannot reshuffle with %d cards left: %w", len(d.cards), ErrReshuffleNotExhausted)
	}
	if len(d.discarded) == 0 {
		return fmt.Errorf("cannot reshuffle: %w", ErrEmptyDeck)
	}
	d.cards = append(d.cards, d.discarded...)
	d.discarded = d.discarded[:0]
	d.shuffle()
	return nil
}

// Discard adds a card to the discard pile. It is how depletion reinforces the deck
// with extra curses.
func (d *Deck) Discard(kind CardKind) {
	d.discarded = append(d.discarded, kind)
}

// Kinds returns the card kinds the deck was built with, in kind order.
func (d *Deck) Kinds() []CardKind {
	kinds := make([]CardKind, 0, len(d.composition))
	for kind := range d.composition {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Composition returns the initial count per card kind.
func (d *Deck) Composition() map[CardKind]int {
	out := make(map[CardKind]int, len(d.composition))
	for kind, count := range d.composition {
		out[kind] = count
	}
	return out
}

func (d *Deck) DrawLen() int    { return len(d.cards) }
func (d *Deck) DiscardLen() int { return len(d.discarded) }

// Len returns the number of cards in both piles.
func (d *Deck) Len() int {
	return len(d.cards) + len(d.discarded)
}

// Count returns how many cards of kind are in both piles.
func (d *Deck) Count(kind CardKind) int {
	n := 0
	for _, c := range d.cards {
		if c == kind {
			n++
		}
	}
	for _, c := range d.discarded {
		if c == kind {
			n++
		}
	}
	return n
}
