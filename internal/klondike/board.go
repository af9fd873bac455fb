package klondike

// board holds every card container of a started game. Only the move engine
// mutates it, and only after all legality checks have passed.
type board struct {
	piles       [][]Card
	foundations [][]Card
	hand        []Card
	stock       []Card
	numDraw     int
}

// deal builds a board from a working copy of the deck. Pile i receives i+1
// cards, dealt row by row from left to right; leftovers become the stock.
func deal(cards []Card, numPiles, numDraw int) *board {
	b := &board{
		piles:   make([][]Card, numPiles),
		numDraw: numDraw,
	}
	for i := range b.piles {
		b.piles[i] = make([]Card, 0, i+1)
	}

	next := 0
	for row := range numPiles {
		for pile := row; pile < numPiles; pile++ {
			b.piles[pile] = append(b.piles[pile], cards[next])
			next++
		}
	}

	b.stock = append([]Card(nil), cards[next:]...)
	b.foundations = make([][]Card, len(aceSuits(cards)))
	b.refillHand()
	return b
}

// refillHand draws from the front of the stock until the hand is full or
// the stock runs out.
func (b *board) refillHand() {
	for len(b.hand) < b.numDraw && len(b.stock) > 0 {
		b.hand = append(b.hand, b.stock[0])
		b.stock = b.stock[1:]
	}
}

// popHand removes the front hand card.
func (b *board) popHand() Card {
	c := b.hand[0]
	b.hand = b.hand[1:]
	return c
}

func (b *board) validPile(i int) bool {
	return i >= 0 && i < len(b.piles)
}

func (b *board) validFoundation(i int) bool {
	return i >= 0 && i < len(b.foundations)
}

// top returns the last card of a pile and whether the pile was non-empty.
func top(pile []Card) (Card, bool) {
	if len(pile) == 0 {
		return Card{}, false
	}
	return pile[len(pile)-1], true
}

// canFound reports whether c may be placed on foundation f.
func canFound(c Card, f []Card) bool {
	t, ok := top(f)
	if !ok {
		return c.Rank == Ace
	}
	return c.Suit == t.Suit && c.Rank == t.Rank+1
}

// clone returns a deep copy that shares no backing arrays with b.
func (b *board) clone() *board {
	return &board{
		piles:       cloneRows(b.piles),
		foundations: cloneRows(b.foundations),
		hand:        append([]Card{}, b.hand...),
		stock:       append([]Card{}, b.stock...),
		numDraw:     b.numDraw,
	}
}

func cloneRows(rows [][]Card) [][]Card {
	out := make([][]Card, len(rows))
	for i, r := range rows {
		out[i] = append([]Card{}, r...)
	}
	return out
}
