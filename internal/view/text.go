// Package view renders a Klondike game as plain text.
//
// The view only uses the game's read-only queries, so it never sees a hidden
// card.
package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/vovakirdan/tui-klondike/internal/klondike"
)

// Board is the read-only part of a game the view needs.
type Board interface {
	NumRows() (int, error)
	NumPiles() (int, error)
	NumFoundations() (int, error)
	PileHeight(pile int) (int, error)
	IsCardVisible(pile, row int) (bool, error)
	CardAt(pile, row int) (klondike.Card, error)
	FoundationTop(foundation int) (klondike.Card, bool, error)
	DrawHand() ([]klondike.Card, error)
}

var _ Board = (*klondike.Game)(nil)

// CellKind describes what occupies one tableau grid position.
type CellKind int

const (
	CellBlank     CellKind = iota // below the end of a pile
	CellCard                      // a face-up card
	CellHidden                    // a face-down card
	CellEmptyPile                 // marker for a pile with no cards
)

// Cell is one position of the tableau grid.
type Cell struct {
	Kind CellKind
	Card klondike.Card
}

// String returns the cell right-aligned in three columns.
func (c Cell) String() string {
	switch c.Kind {
	case CellCard:
		return fmt.Sprintf("%3s", c.Card.String())
	case CellHidden:
		return "  ?"
	case CellEmptyPile:
		return "  X"
	default:
		return "   "
	}
}

// Grid returns the tableau as rows of cells. Empty piles show a marker on the
// first row.
func Grid(b Board) ([][]Cell, error) {
	rows, err := b.NumRows()
	if err != nil {
		return nil, err
	}
	piles, err := b.NumPiles()
	if err != nil {
		return nil, err
	}
	heights := make([]int, piles)
	for p := range heights {
		if heights[p], err = b.PileHeight(p); err != nil {
			return nil, err
		}
	}

	grid := make([][]Cell, rows)
	for r := range grid {
		grid[r] = make([]Cell, piles)
		for p := range piles {
			switch {
			case r < heights[p]:
				visible, err := b.IsCardVisible(p, r)
				if err != nil {
					return nil, err
				}
				if !visible {
					grid[r][p] = Cell{Kind: CellHidden}
					continue
				}
				c, err := b.CardAt(p, r)
				if err != nil {
					return nil, err
				}
				grid[r][p] = Cell{Kind: CellCard, Card: c}
			case heights[p] == 0 && r == 0:
				grid[r][p] = Cell{Kind: CellEmptyPile}
			}
		}
	}
	return grid, nil
}

// Foundations returns the top of each foundation, "<none>" when empty.
func Foundations(b Board) ([]string, error) {
	n, err := b.NumFoundations()
	if err != nil {
		return nil, err
	}
	out := make([]string, n)
	for i := range out {
		c, ok, err := b.FoundationTop(i)
		if err != nil {
			return nil, err
		}
		out[i] = "<none>"
		if ok {
			out[i] = c.String()
		}
	}
	return out, nil
}

// TextView renders the draw line, the foundation line and the tableau.
type TextView struct {
	board Board
	w     io.Writer
}

// New creates a text view over b that renders to w.
func New(b Board, w io.Writer) *TextView {
	return &TextView{board: b, w: w}
}

// Text builds the full board text.
func (v *TextView) Text() (string, error) {
	var sb strings.Builder

	hand, err := v.board.DrawHand()
	if err != nil {
		return "", err
	}
	sb.WriteString("Draw:")
	if len(hand) > 0 {
		names := make([]string, len(hand))
		for i, c := range hand {
			names[i] = c.String()
		}
		sb.WriteString(" " + strings.Join(names, ", "))
	}

	found, err := Foundations(v.board)
	if err != nil {
		return "", err
	}
	sb.WriteString("\nFoundation: " + strings.Join(found, ", ") + "\n")

	grid, err := Grid(v.board)
	if err != nil {
		return "", err
	}
	for _, row := range grid {
		for _, c := range row {
			sb.WriteString(c.String())
		}
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// String returns the board text, or an empty string before the game starts.
func (v *TextView) String() string {
	s, err := v.Text()
	if err != nil {
		return ""
	}
	return s
}

// Render writes the board text to the view's writer.
func (v *TextView) Render() error {
	s, err := v.Text()
	if err != nil {
		return err
	}
	if _, err := io.WriteString(v.w, s); err != nil {
		return fmt.Errorf("view: cannot render: %w", err)
	}
	return nil
}
