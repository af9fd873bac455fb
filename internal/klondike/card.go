// Package klondike implements the rule engine for Klondike-family patience
// games. It contains pure game logic with no rendering, input or storage
// dependencies; front-ends drive it through the Game facade.
package klondike

import (
	"fmt"
	"strconv"
	"strings"
)

// Suit is one of the four card suits. The zero value is not a valid suit.
type Suit uint8

const (
	Clubs Suit = iota + 1
	Diamonds
	Hearts
	Spades
)

// Suits lists the valid suits in deck order.
var Suits = [...]Suit{Clubs, Diamonds, Hearts, Spades}

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool {
	return s >= Clubs && s <= Spades
}

// Red reports whether the suit is red (Diamonds, Hearts).
func (s Suit) Red() bool {
	return s == Diamonds || s == Hearts
}

// Symbol returns the single-rune suit symbol.
func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♢"
	case Hearts:
		return "♡"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// String returns the suit name.
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "Clubs"
	case Diamonds:
		return "Diamonds"
	case Hearts:
		return "Hearts"
	case Spades:
		return "Spades"
	default:
		return "Unknown"
	}
}

// Rank is a card rank from Ace (1) to King (13).
type Rank uint8

const (
	Ace   Rank = 1
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

// Valid reports whether r is in 1..13.
func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

// String returns the rank label used on card faces.
func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		if r.Valid() {
			return strconv.Itoa(int(r))
		}
		return "?"
	}
}

// Card is an immutable playing card. The zero value is the absent card.
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard returns the card with the given suit and rank.
func NewCard(s Suit, r Rank) Card {
	return Card{Suit: s, Rank: r}
}

// Valid reports whether the card has a real suit and rank.
func (c Card) Valid() bool {
	return c.Suit.Valid() && c.Rank.Valid()
}

// Red reports whether the card is red.
func (c Card) Red() bool {
	return c.Suit.Red()
}

// SameColor reports whether both cards are the same color.
func (c Card) SameColor(o Card) bool {
	return c.Red() == o.Red()
}

// Less orders cards by suit, then rank.
func (c Card) Less(o Card) bool {
	if c.Suit != o.Suit {
		return c.Suit < o.Suit
	}
	return c.Rank < o.Rank
}

// String renders the card as rank label followed by suit symbol, e.g. "10♡".
func (c Card) String() string {
	return c.Rank.String() + c.Suit.Symbol()
}

// ParseCard parses a card written as rank then suit. The suit may be a
// symbol (♣ ♢ ♡ ♠, also ♦ ♥) or a letter (C D H S, case-insensitive).
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Card{}, fmt.Errorf("klondike: empty card %q", s)
	}

	runes := []rune(s)
	suitPart := string(runes[len(runes)-1])
	rankPart := strings.ToUpper(string(runes[:len(runes)-1]))

	var suit Suit
	switch strings.ToUpper(suitPart) {
	case "♣", "C":
		suit = Clubs
	case "♢", "♦", "D":
		suit = Diamonds
	case "♡", "♥", "H":
		suit = Hearts
	case "♠", "S":
		suit = Spades
	default:
		return Card{}, fmt.Errorf("klondike: unknown suit in card %q", s)
	}

	var rank Rank
	switch rankPart {
	case "A":
		rank = Ace
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	default:
		n, err := strconv.Atoi(rankPart)
		if err != nil || n < 2 || n > 10 {
			return Card{}, fmt.Errorf("klondike: unknown rank in card %q", s)
		}
		rank = Rank(n)
	}

	return Card{Suit: suit, Rank: rank}, nil
}

// MustParseCards parses a space-separated list of cards and panics on error.
// Intended for fixtures and tests.
func MustParseCards(s string) []Card {
	fields := strings.Fields(s)
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			panic(err)
		}
		cards = append(cards, c)
	}
	return cards
}
