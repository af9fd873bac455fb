package klondike

// Status is the terminal-state verdict for a game.
type Status int

const (
	InProgress Status = iota
	Won
	Lost
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// fullSuit is the size of a complete foundation.
const fullSuit = int(King)

// Status reports whether the game is won, lost, or still in progress.
//
// A game is won when every foundation holds a full suit. Otherwise it ends
// when no legal move remains anywhere, counting stock cards as reachable
// because discarding cycles them into the hand. It also ends once hand and
// stock are both empty, since no further card can ever be drawn.
func (g *Game) Status() (Status, error) {
	b, err := g.started()
	if err != nil {
		return InProgress, err
	}
	if g.complete(b) {
		return Won, nil
	}
	if len(b.hand) == 0 && len(b.stock) == 0 {
		return Lost, nil
	}
	if g.anyMove(b) {
		return InProgress, nil
	}
	return Lost, nil
}

// IsGameOver reports whether the game is won or lost.
func (g *Game) IsGameOver() (bool, error) {
	s, err := g.Status()
	if err != nil {
		return false, err
	}
	return s != InProgress, nil
}

func (g *Game) complete(b *board) bool {
	for _, f := range b.foundations {
		if len(f) != fullSuit {
			return false
		}
	}
	return true
}

// anyMove searches every source and destination for one legal move.
func (g *Game) anyMove(b *board) bool {
	// Every run start is tried against the foundations too, not only the
	// top. With a single deck only the top can ever fit, but decks with
	// duplicate cards can expose a buried match.
	for src, pile := range b.piles {
		for _, start := range g.runStarts(pile) {
			c := pile[start]
			if g.fitsFoundation(b, c) || g.fitsTableau(b, c, src) {
				return true
			}
		}
	}

	for _, c := range b.hand {
		if g.fitsFoundation(b, c) || g.fitsTableau(b, c, -1) {
			return true
		}
	}
	for _, c := range b.stock {
		if g.fitsFoundation(b, c) || g.fitsTableau(b, c, -1) {
			return true
		}
	}
	return false
}

// runStarts returns the rows of pile from which a run could be lifted:
// only the top in variants with hidden cards, otherwise every row whose run
// to the top is movable.
func (g *Game) runStarts(pile []Card) []int {
	if len(pile) == 0 {
		return nil
	}
	if !g.variant.AllVisible() {
		return []int{len(pile) - 1}
	}
	var starts []int
	for row := range pile {
		if g.variant.RunMovable(pile[row:]) {
			starts = append(starts, row)
		}
	}
	return starts
}

func (g *Game) fitsFoundation(b *board, c Card) bool {
	for _, f := range b.foundations {
		if canFound(c, f) {
			return true
		}
	}
	return false
}

// fitsTableau reports whether c can go on any pile other than skip.
func (g *Game) fitsTableau(b *board, c Card, skip int) bool {
	for i, dest := range b.piles {
		if i == skip {
			continue
		}
		if g.checkPlace(c, dest) == nil {
			return true
		}
	}
	return false
}
