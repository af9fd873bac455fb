package klondike

import (
	"math/rand/v2"
)

// Game is the facade over one game of Klondike. It owns the board and the
// variant rules; every exported method validates before it mutates, so a
// rejected call leaves the game exactly as it was.
//
// A Game is not safe for concurrent use.
type Game struct {
	variant Variant
	rng     *rand.Rand
	board   *board
}

// New creates an unstarted game using the given variant rules. A nil variant
// selects Basic.
func New(v Variant) *Game {
	if v == nil {
		v = Basic{}
	}
	return &Game{variant: v}
}

// NewSeeded creates an unstarted game whose shuffle is reproducible for a
// given seed.
func NewSeeded(v Variant, seed uint64) *Game {
	g := New(v)
	g.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return g
}

// Variant returns the rules this game was created with.
func (g *Game) Variant() Variant {
	return g.variant
}

// Started reports whether Start has succeeded.
func (g *Game) Started() bool {
	return g.board != nil
}

// Start deals a new game from deck. The deck is copied and, when shuffle is
// set, permuted uniformly at random before dealing. Start succeeds at most
// once per Game.
func (g *Game) Start(deck []Card, shuffle bool, numPiles, numDraw int) error {
	if g.board != nil {
		return ErrAlreadyStarted
	}
	if !ValidDeck(deck) {
		return ErrInvalidDeck
	}
	if numPiles < 1 {
		return ErrInvalidPileCount
	}
	if numDraw < 1 {
		return ErrInvalidDrawCount
	}
	if len(deck) < numDraw {
		return ErrDeckBelowDraw
	}
	if len(deck) < numPiles*(numPiles+1)/2 {
		return ErrDeckBelowCascade
	}

	cards := append([]Card(nil), deck...)
	if shuffle {
		g.shuffle(cards)
	}
	g.board = deal(cards, numPiles, numDraw)
	return nil
}

func (g *Game) shuffle(cards []Card) {
	swap := func(i, j int) { cards[i], cards[j] = cards[j], cards[i] }
	if g.rng != nil {
		g.rng.Shuffle(len(cards), swap)
		return
	}
	rand.Shuffle(len(cards), swap)
}

// started returns the board or ErrNotStarted.
func (g *Game) started() (*board, error) {
	if g.board == nil {
		return nil, ErrNotStarted
	}
	return g.board, nil
}

// NumRows returns the height of the tallest tableau pile.
func (g *Game) NumRows() (int, error) {
	b, err := g.started()
	if err != nil {
		return 0, err
	}
	rows := 0
	for _, p := range b.piles {
		rows = max(rows, len(p))
	}
	return rows, nil
}

// NumPiles returns the number of tableau piles.
func (g *Game) NumPiles() (int, error) {
	b, err := g.started()
	if err != nil {
		return 0, err
	}
	return len(b.piles), nil
}

// NumDraw returns the configured hand capacity.
func (g *Game) NumDraw() (int, error) {
	b, err := g.started()
	if err != nil {
		return 0, err
	}
	return b.numDraw, nil
}

// NumFoundations returns the number of foundation piles.
func (g *Game) NumFoundations() (int, error) {
	b, err := g.started()
	if err != nil {
		return 0, err
	}
	return len(b.foundations), nil
}

// Score returns the number of cards on the foundations.
func (g *Game) Score() (int, error) {
	b, err := g.started()
	if err != nil {
		return 0, err
	}
	score := 0
	for _, f := range b.foundations {
		score += len(f)
	}
	return score, nil
}

// PileHeight returns the number of cards in a tableau pile.
func (g *Game) PileHeight(pile int) (int, error) {
	b, err := g.started()
	if err != nil {
		return 0, err
	}
	if !b.validPile(pile) {
		return 0, ErrPileIndex
	}
	return len(b.piles[pile]), nil
}

// IsCardVisible reports whether the card at (pile, row) is face up.
func (g *Game) IsCardVisible(pile, row int) (bool, error) {
	b, err := g.started()
	if err != nil {
		return false, err
	}
	if !b.validPile(pile) {
		return false, ErrPileIndex
	}
	if row < 0 || row >= len(b.piles[pile]) {
		return false, ErrRowIndex
	}
	return g.visible(b.piles[pile], row), nil
}

func (g *Game) visible(pile []Card, row int) bool {
	return g.variant.AllVisible() || row == len(pile)-1
}

// CardAt returns the tableau card at (pile, row). Hidden cards cannot be
// read.
func (g *Game) CardAt(pile, row int) (Card, error) {
	visible, err := g.IsCardVisible(pile, row)
	if err != nil {
		return Card{}, err
	}
	if !visible {
		return Card{}, ErrCardHidden
	}
	return g.board.piles[pile][row], nil
}

// FoundationTop returns the top card of a foundation. The boolean is false
// when the foundation is empty.
func (g *Game) FoundationTop(foundation int) (Card, bool, error) {
	b, err := g.started()
	if err != nil {
		return Card{}, false, err
	}
	if !b.validFoundation(foundation) {
		return Card{}, false, ErrFoundationIndex
	}
	c, ok := top(b.foundations[foundation])
	return c, ok, nil
}

// DrawHand returns a copy of the current hand, front card first.
func (g *Game) DrawHand() ([]Card, error) {
	b, err := g.started()
	if err != nil {
		return nil, err
	}
	return append([]Card{}, b.hand...), nil
}
