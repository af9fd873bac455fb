package klondike

// Snapshot captures the complete board, including hidden cards, for
// determinism checks, logging and tests. It shares no memory with the game.
type Snapshot struct {
	Variant     string
	Piles       [][]Card
	Foundations [][]Card
	Hand        []Card
	Stock       []Card
	NumDraw     int
}

// Snapshot returns a deep copy of the current board.
func (g *Game) Snapshot() (Snapshot, error) {
	b, err := g.started()
	if err != nil {
		return Snapshot{}, err
	}
	c := b.clone()
	return Snapshot{
		Variant:     g.variant.Name(),
		Piles:       c.piles,
		Foundations: c.foundations,
		Hand:        c.hand,
		Stock:       c.stock,
		NumDraw:     c.numDraw,
	}, nil
}

// Cards returns every card on the board in a fixed container order: piles,
// foundations, hand, then stock.
func (s Snapshot) Cards() []Card {
	var all []Card
	for _, p := range s.Piles {
		all = append(all, p...)
	}
	for _, f := range s.Foundations {
		all = append(all, f...)
	}
	all = append(all, s.Hand...)
	all = append(all, s.Stock...)
	return all
}
