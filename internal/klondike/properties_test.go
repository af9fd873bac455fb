package klondike

import (
	"math/rand/v2"
	"reflect"
	"slices"
	"testing"
)

func sortedCards(cards []Card) []Card {
	out := slices.Clone(cards)
	slices.SortFunc(out, func(a, b Card) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		default:
			return 0
		}
	})
	return out
}

// randomMove attempts one random operation, including out-of-range ones.
func randomMove(g *Game, rng *rand.Rand, piles, foundations int) error {
	pile := func() int { return rng.IntN(piles+2) - 1 }
	switch rng.IntN(5) {
	case 0:
		return g.MovePile(pile(), rng.IntN(5), pile())
	case 1:
		return g.MoveFromHand(pile())
	case 2:
		return g.MoveToFoundation(pile(), rng.IntN(foundations+1))
	case 3:
		return g.MoveFromHandToFoundation(rng.IntN(foundations + 1))
	default:
		return g.Discard()
	}
}

// checkFoundations verifies every foundation is an ascending same-suit run
// starting at the ace.
func checkFoundations(t *testing.T, s Snapshot) {
	t.Helper()
	for i, f := range s.Foundations {
		for j, c := range f {
			if c.Rank != Rank(j+1) || c.Suit != f[0].Suit {
				t.Fatalf("foundation %d = %v is not an ascending suit run", i, f)
			}
		}
	}
}

func TestRandomPlayKeepsInvariants(t *testing.T) {
	configs := []struct {
		variant Variant
		piles   int
		draw    int
		deck    string // empty for the standard deck
	}{
		{Basic{}, 7, 1, ""},
		{Basic{}, 7, 3, ""},
		{Whitehead{}, 7, 1, ""},
		{Whitehead{}, 5, 3, ""},
		{Basic{}, 3, 2, ""},
		// The hand takes the whole remaining deck, so the stock is empty
		// from the first move on.
		{Basic{}, 7, 24, ""},
		{Whitehead{}, 7, 24, ""},
		{Basic{}, 2, 1, clubsInOrder},
		{Whitehead{}, 3, 2, clubsInOrder + " A♡ 2♡ 3♡"},
	}

	for _, cfg := range configs {
		deck := NewDeck()
		if cfg.deck != "" {
			deck = MustParseCards(cfg.deck)
		}
		for seed := uint64(1); seed <= 10; seed++ {
			g := NewSeeded(cfg.variant, seed)
			if err := g.Start(deck, true, cfg.piles, cfg.draw); err != nil {
				t.Fatalf("Start() failed: %v", err)
			}
			rng := rand.New(rand.NewPCG(seed, 99))
			want := sortedCards(deck)
			foundations, _ := g.NumFoundations()
			prev := snapshot(t, g)
			prevScore := 0

			for step := range 400 {
				err := randomMove(g, rng, cfg.piles, foundations)
				cur := snapshot(t, g)

				if err != nil && !reflect.DeepEqual(prev, cur) {
					t.Fatalf("%s seed %d step %d: rejected move (%v) changed the board",
						cfg.variant.Name(), seed, step, err)
				}
				if err != nil && !IsArgumentError(err) && !IsStateError(err) {
					t.Fatalf("error %v has no kind", err)
				}
				if got := sortedCards(cur.Cards()); !reflect.DeepEqual(got, want) {
					t.Fatalf("%s seed %d step %d: cards not conserved", cfg.variant.Name(), seed, step)
				}
				checkFoundations(t, cur)

				score, _ := g.Score()
				if score < prevScore {
					t.Fatalf("score dropped from %d to %d", prevScore, score)
				}
				if len(cur.Hand) > cfg.draw {
					t.Fatalf("hand holds %d cards, limit %d", len(cur.Hand), cfg.draw)
				}
				if len(cur.Hand) < cfg.draw && len(cur.Stock) > 0 {
					t.Fatalf("hand short (%d) while stock has %d cards", len(cur.Hand), len(cur.Stock))
				}

				s1, _ := g.Status()
				s2, _ := g.Status()
				if s1 != s2 {
					t.Fatalf("Status() not stable: %v then %v", s1, s2)
				}
				if !reflect.DeepEqual(cur, snapshot(t, g)) {
					t.Fatal("queries changed the board")
				}

				prev, prevScore = cur, score
			}
		}
	}
}

func TestDiscardCyclesEveryCard(t *testing.T) {
	for _, draw := range []int{1, 3} {
		g := startGame(t, Basic{}, NewDeck(), 7, draw)
		s := snapshot(t, g)
		supply := len(s.Hand) + len(s.Stock)

		seen := make(map[Card]bool)
		for range supply {
			hand, _ := g.DrawHand()
			seen[hand[0]] = true
			if err := g.Discard(); err != nil {
				t.Fatalf("Discard() failed: %v", err)
			}
			cur := snapshot(t, g)
			if n := len(cur.Hand) + len(cur.Stock); n != supply {
				t.Fatalf("hand+stock = %d, want %d", n, supply)
			}
		}

		for _, c := range slices.Concat(s.Hand, s.Stock) {
			if !seen[c] {
				t.Errorf("draw %d: %v never reached the front of the hand", draw, c)
			}
		}
		// A full cycle restores the original order.
		if got := snapshot(t, g); !reflect.DeepEqual(got.Hand, s.Hand) || !reflect.DeepEqual(got.Stock, s.Stock) {
			t.Errorf("draw %d: full cycle gave hand %v stock %v", draw, got.Hand, got.Stock)
		}
	}
}

func TestRejectedMovesNeverPartiallyApply(t *testing.T) {
	for _, v := range []Variant{Basic{}, Whitehead{}} {
		g := standardGame(t, v)
		for src := -1; src <= 7; src++ {
			for dest := -1; dest <= 7; dest++ {
				for count := -1; count <= 8; count++ {
					before := snapshot(t, g)
					if err := g.MovePile(src, count, dest); err != nil {
						if !reflect.DeepEqual(before, snapshot(t, g)) {
							t.Fatalf("%s MovePile(%d, %d, %d) failed with %v but changed the board",
								v.Name(), src, count, dest, err)
						}
					}
				}
			}
		}
	}
}
