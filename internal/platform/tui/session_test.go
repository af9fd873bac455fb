package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-klondike/internal/storage"
)

var (
	keyDown     = tea.KeyMsg{Type: tea.KeyDown}
	keyEnter    = tea.KeyMsg{Type: tea.KeyEnter}
	keyTab      = tea.KeyMsg{Type: tea.KeyTab}
	keyShiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	keyEsc      = tea.KeyMsg{Type: tea.KeyEsc}
	keyQ        = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}
)

func seedResults(t *testing.T, store *storage.Store) {
	t.Helper()
	for _, r := range []storage.Result{
		{Variant: "basic", Player: "ann", Score: 13, Status: "won", Piles: 7, Draw: 1, Moves: 90},
		{Variant: "basic", Player: "bob", Score: 4, Status: "lost", Piles: 7, Draw: 1, Moves: 30},
		{Variant: "whitehead", Player: "ann", Score: 7, Status: "quit", Piles: 7, Draw: 3, Moves: 12},
	} {
		_, err := store.SaveResult(r)
		require.NoError(t, err)
	}
}

func TestMenuModel(t *testing.T) {
	store := openStore(t)
	seedResults(t, store)

	m := NewMenuModel(store, 80, 24)
	require.Len(t, m.items, 2)
	assert.Equal(t, "basic", m.items[0].VariantID)
	assert.Equal(t, 13, m.items[0].HighScore)
	assert.Equal(t, 7, m.items[1].HighScore)
	assert.Contains(t, m.View(), "Whitehead")

	next, _ := m.Update(keyDown)
	m = next.(MenuModel)
	next, cmd := m.Update(keyEnter)
	m = next.(MenuModel)
	require.NotNil(t, m.Selected())
	assert.Equal(t, "whitehead", m.Selected().VariantID)
	assert.True(t, isQuit(cmd))

	next, _ = NewMenuModel(nil, 80, 24).Update(keyTab)
	assert.True(t, next.(MenuModel).WantsScoreboard())

	next, _ = NewMenuModel(nil, 80, 24).Update(keyQ)
	assert.True(t, next.(MenuModel).IsQuitting())
	assert.Empty(t, next.View())
}

func TestScoreboardModel(t *testing.T) {
	store := openStore(t)
	seedResults(t, store)

	m := NewScoreboardModel(store, 100, 30)
	assert.Equal(t, "basic", m.Variant())
	require.Len(t, m.Results(), 2)
	assert.Equal(t, 13, m.Results()[0].Score)
	assert.Contains(t, m.View(), "RESULTS - Klondike")
	assert.Contains(t, m.View(), "2 games · 1 won · best 13 · avg 8.5")

	next, _ := m.Update(keyTab)
	m = next.(ScoreboardModel)
	assert.Equal(t, "whitehead", m.Variant())
	require.Len(t, m.Results(), 1)
	assert.Equal(t, "quit", m.Results()[0].Status)

	next, _ = m.Update(keyShiftTab)
	m = next.(ScoreboardModel)
	assert.Equal(t, "basic", m.Variant())

	next, cmd := m.Update(keyEsc)
	m = next.(ScoreboardModel)
	assert.True(t, m.IsGoingBack())
	assert.True(t, isQuit(cmd))
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	assert.Empty(t, m.Results())
	assert.Contains(t, m.View(), "No results recorded yet.")
	assert.Contains(t, m.View(), "no games played")
}

func sessionStep(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	require.True(t, ok)
	return sm, cmd
}

func TestSessionFlow(t *testing.T) {
	store := openStore(t)
	m := NewSessionModel(store, orderedOptions(), 80, 24)
	assert.NotEmpty(t, m.ID())
	assert.Equal(t, screenMenu, m.screen)

	// Menu -> game with the picked variant.
	m, _ = sessionStep(t, m, keyDown)
	m, cmd := sessionStep(t, m, keyEnter)
	require.Equal(t, screenGame, m.screen)
	assert.NotNil(t, cmd)
	assert.Equal(t, "whitehead", m.game.Game().Variant().Name())
	assert.Contains(t, m.View(), "Whitehead")

	// Leaving the game returns to the menu and stores the deal.
	m, _ = sessionStep(t, m, keyEsc)
	require.Equal(t, screenMenu, m.screen)
	all, err := store.AllResults("whitehead")
	require.NoError(t, err)
	assert.Len(t, all, 1)

	// Menu -> scores -> menu.
	m, _ = sessionStep(t, m, keyTab)
	require.Equal(t, screenScores, m.screen)
	assert.Contains(t, m.View(), "RESULTS")
	m, _ = sessionStep(t, m, keyEsc)
	require.Equal(t, screenMenu, m.screen)

	m, cmd = sessionStep(t, m, keyQ)
	assert.True(t, m.quitting)
	assert.True(t, isQuit(cmd))
	assert.Empty(t, m.View())
}

func TestSessionGameQuit(t *testing.T) {
	m := NewSessionModel(nil, orderedOptions(), 80, 24)
	m, _ = sessionStep(t, m, keyEnter)
	require.Equal(t, screenGame, m.screen)

	m, cmd := sessionStep(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, m.quitting)
	assert.True(t, isQuit(cmd))
}

func TestSessionBadDealStaysInMenu(t *testing.T) {
	opts := orderedOptions()
	opts.Piles = 0
	m := NewSessionModel(nil, opts, 80, 24)

	m, _ = sessionStep(t, m, keyEnter)
	assert.Equal(t, screenMenu, m.screen)
	assert.Contains(t, m.View(), "number of piles must be at least 1")
}
