package view

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/vovakirdan/tui-klondike/internal/klondike"
)

func started(t *testing.T, v klondike.Variant, deck []klondike.Card, piles, draw int) *klondike.Game {
	t.Helper()
	g := klondike.New(v)
	if err := g.Start(deck, false, piles, draw); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	return g
}

func assertGolden(t *testing.T, name string, g *klondike.Game) {
	t.Helper()
	var buf bytes.Buffer
	if err := New(g, &buf).Render(); err != nil {
		t.Fatalf("Render() failed: %v", err)
	}
	gd := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	gd.Assert(t, name, buf.Bytes())
}

func TestRenderGolden(t *testing.T) {
	t.Run("basic_standard", func(t *testing.T) {
		assertGolden(t, "basic_standard", started(t, klondike.Basic{}, klondike.NewDeck(), 7, 1))
	})

	t.Run("whitehead_draw3", func(t *testing.T) {
		assertGolden(t, "whitehead_draw3", started(t, klondike.Whitehead{}, klondike.NewDeck(), 7, 3))
	})

	t.Run("basic_after_moves", func(t *testing.T) {
		g := started(t, klondike.Basic{}, klondike.NewDeck(), 7, 1)
		if err := g.MoveToFoundation(0, 0); err != nil {
			t.Fatalf("MoveToFoundation() failed: %v", err)
		}
		if err := g.MovePile(4, 1, 6); err != nil {
			t.Fatalf("MovePile() failed: %v", err)
		}
		assertGolden(t, "basic_after_moves", g)
	})

	t.Run("empty_hand", func(t *testing.T) {
		deck := klondike.MustParseCards("A♣ 2♣ 3♣ 4♣ 5♣ 6♣ 7♣ 8♣ 9♣ 10♣")
		assertGolden(t, "empty_hand", started(t, klondike.Basic{}, deck, 4, 1))
	})
}

func TestStringMatchesRender(t *testing.T) {
	g := started(t, klondike.Basic{}, klondike.NewDeck(), 7, 1)
	var buf bytes.Buffer
	v := New(g, &buf)
	if err := v.Render(); err != nil {
		t.Fatalf("Render() failed: %v", err)
	}
	if v.String() != buf.String() {
		t.Errorf("String() = %q, Render() wrote %q", v.String(), buf.String())
	}
}

func TestUnstartedGame(t *testing.T) {
	v := New(klondike.New(nil), &bytes.Buffer{})
	if s := v.String(); s != "" {
		t.Errorf("String() = %q, want empty", s)
	}
	if err := v.Render(); !errors.Is(err, klondike.ErrNotStarted) {
		t.Errorf("Render() = %v, want ErrNotStarted", err)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRenderWriteError(t *testing.T) {
	g := started(t, klondike.Basic{}, klondike.NewDeck(), 7, 1)
	if err := New(g, failingWriter{}).Render(); err == nil {
		t.Error("Render() should report write errors")
	}
}

func TestGridCells(t *testing.T) {
	g := started(t, klondike.Basic{}, klondike.NewDeck(), 7, 1)
	grid, err := Grid(g)
	if err != nil {
		t.Fatalf("Grid() failed: %v", err)
	}
	if len(grid) != 7 || len(grid[0]) != 7 {
		t.Fatalf("Grid() size = %dx%d, want 7x7", len(grid), len(grid[0]))
	}

	tests := []struct {
		row, pile int
		want      Cell
	}{
		{0, 0, Cell{Kind: CellCard, Card: klondike.Card{Suit: klondike.Clubs, Rank: klondike.Ace}}},
		{0, 1, Cell{Kind: CellHidden}},
		{1, 0, Cell{Kind: CellBlank}},
		{6, 6, Cell{Kind: CellCard, Card: klondike.Card{Suit: klondike.Spades, Rank: 7}}},
	}
	for _, tt := range tests {
		if got := grid[tt.row][tt.pile]; got != tt.want {
			t.Errorf("grid[%d][%d] = %+v, want %+v", tt.row, tt.pile, got, tt.want)
		}
	}
}

func TestCellString(t *testing.T) {
	tests := []struct {
		cell Cell
		want string
	}{
		{Cell{Kind: CellCard, Card: klondike.Card{Suit: klondike.Hearts, Rank: 10}}, "10♡"},
		{Cell{Kind: CellCard, Card: klondike.Card{Suit: klondike.Hearts, Rank: 9}}, " 9♡"},
		{Cell{Kind: CellHidden}, "  ?"},
		{Cell{Kind: CellEmptyPile}, "  X"},
		{Cell{}, "   "},
	}
	for _, tt := range tests {
		if got := tt.cell.String(); got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.cell, got, tt.want)
		}
	}
}
