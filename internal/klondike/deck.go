package klondike

// NewDeck returns a standard 52-card deck ordered rank-major: every suit's
// ace, then every suit's two, and so on up to the kings.
func NewDeck() []Card {
	deck := make([]Card, 0, 52)
	for r := Ace; r <= King; r++ {
		for _, s := range Suits {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	return deck
}

// ValidDeck reports whether cards can be used to start a game.
//
// A deck is valid when it is non-empty, contains only real cards, holds at
// least one ace, and for every suit present the ranks form a gap-free run
// starting at Ace. Duplicates are allowed, so multi-deck play validates.
func ValidDeck(cards []Card) bool {
	if len(cards) == 0 {
		return false
	}

	hasAce := false
	var ranks [len(Suits) + 1][King + 1]bool
	var maxRank [len(Suits) + 1]Rank
	for _, c := range cards {
		if !c.Valid() {
			return false
		}
		if c.Rank == Ace {
			hasAce = true
		}
		ranks[c.Suit][c.Rank] = true
		if c.Rank > maxRank[c.Suit] {
			maxRank[c.Suit] = c.Rank
		}
	}
	if !hasAce {
		return false
	}

	for _, s := range Suits {
		top := maxRank[s]
		if top == 0 {
			continue // suit absent
		}
		for r := Ace; r <= top; r++ {
			if !ranks[s][r] {
				return false
			}
		}
	}
	return true
}

// aceSuits returns the distinct suits that have an ace in cards, in the
// order their first ace appears.
func aceSuits(cards []Card) []Suit {
	var seen [len(Suits) + 1]bool
	var suits []Suit
	for _, c := range cards {
		if c.Rank == Ace && !seen[c.Suit] {
			seen[c.Suit] = true
			suits = append(suits, c.Suit)
		}
	}
	return suits
}
