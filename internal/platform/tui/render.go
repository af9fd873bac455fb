package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-klondike/internal/klondike"
	"github.com/vovakirdan/tui-klondike/internal/view"
)

var (
	redCardStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	blackCardStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	hiddenStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	markerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	labelStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	okStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// cardStyle picks the colour for a face-up card.
func cardStyle(c klondike.Card) lipgloss.Style {
	if c.Red() {
		return redCardStyle
	}
	return blackCardStyle
}

// renderCell styles one tableau cell, keeping its three-column width.
func renderCell(c view.Cell) string {
	switch c.Kind {
	case view.CellCard:
		return cardStyle(c.Card).Render(c.String())
	case view.CellHidden:
		return hiddenStyle.Render(c.String())
	case view.CellEmptyPile:
		return markerStyle.Render(c.String())
	default:
		return c.String()
	}
}

// RenderBoard draws the hand, the foundations and the tableau with pile
// numbers matching the 1-based command arguments.
func RenderBoard(b view.Board) (string, error) {
	var sb strings.Builder

	hand, err := b.DrawHand()
	if err != nil {
		return "", err
	}
	sb.WriteString(labelStyle.Render("Draw:"))
	for i, c := range hand {
		sep := " "
		if i > 0 {
			sep = ", "
		}
		sb.WriteString(sep + cardStyle(c).Render(c.String()))
	}
	sb.WriteString("\n")

	n, err := b.NumFoundations()
	if err != nil {
		return "", err
	}
	sb.WriteString(labelStyle.Render("Foundation:"))
	for i := range n {
		c, ok, err := b.FoundationTop(i)
		if err != nil {
			return "", err
		}
		sep := " "
		if i > 0 {
			sep = ", "
		}
		sb.WriteString(fmt.Sprintf("%s%d:", sep, i+1))
		if ok {
			sb.WriteString(cardStyle(c).Render(c.String()))
		} else {
			sb.WriteString(markerStyle.Render("--"))
		}
	}
	sb.WriteString("\n\n")

	grid, err := view.Grid(b)
	if err != nil {
		return "", err
	}
	piles, err := b.NumPiles()
	if err != nil {
		return "", err
	}
	for p := range piles {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("%3d", p+1)))
	}
	sb.WriteString("\n")
	for _, row := range grid {
		for _, c := range row {
			sb.WriteString(renderCell(c))
		}
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
