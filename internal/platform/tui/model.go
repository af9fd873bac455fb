package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-klondike/internal/config"
	"github.com/vovakirdan/tui-klondike/internal/controller"
	"github.com/vovakirdan/tui-klondike/internal/klondike"
	"github.com/vovakirdan/tui-klondike/internal/registry"
	"github.com/vovakirdan/tui-klondike/internal/storage"
)

const commandHelp = `mpp S N D   move N cards from pile S onto pile D
md D        move the top draw card onto pile D
mpf S F     move the top of pile S onto foundation F
mdf F       move the top draw card onto foundation F
dd          discard the draw hand
q           quit`

// GameOptions describes one deal.
type GameOptions struct {
	Variant string
	Piles   int
	Draw    int
	Shuffle bool
	Seed    *uint64 // nil seeds from the clock
	Player  string
	Deck    []klondike.Card // nil deals a standard 52-card deck
}

// OptionsFromConfig builds deal options from the game section of the config.
func OptionsFromConfig(gc config.GameConfig, player string) GameOptions {
	return GameOptions{
		Variant: gc.Variant,
		Piles:   gc.Piles,
		Draw:    gc.Draw,
		Shuffle: gc.Shuffle,
		Seed:    gc.SeedPtr(),
		Player:  player,
	}
}

// GameModel is the Bubble Tea model for one Klondike table.
type GameModel struct {
	opts  GameOptions
	game  *klondike.Game
	store *storage.Store

	input textinput.Model
	help  help.Model
	keys  GameKeyMap

	status    string
	statusErr bool
	moves     int
	started   time.Time
	elapsed   time.Duration

	width  int
	height int

	over       bool
	final      klondike.Status
	saved      bool // Whether the result of the current deal has been stored
	resultID   string
	quitting   bool
	backToMenu bool
}

// NewGameModel deals a new game. The store may be nil.
func NewGameModel(store *storage.Store, opts GameOptions) (GameModel, error) {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "mpp 1 1 2"
	ti.CharLimit = 40
	ti.Focus()

	m := GameModel{
		opts:  opts,
		store: store,
		input: ti,
		help:  help.New(),
		keys:  DefaultGameKeyMap(),
	}
	if err := m.deal(); err != nil {
		return GameModel{}, err
	}
	return m, nil
}

// deal replaces the current game with a fresh one.
func (m *GameModel) deal() error {
	game, err := registry.Create(m.opts.Variant, m.opts.Seed)
	if err != nil {
		return err
	}
	deck := m.opts.Deck
	if deck == nil {
		deck = klondike.NewDeck()
	}
	if err := game.Start(deck, m.opts.Shuffle, m.opts.Piles, m.opts.Draw); err != nil {
		return fmt.Errorf("tui: cannot deal: %w", err)
	}

	m.game = game
	m.moves = 0
	m.started = time.Now()
	m.elapsed = 0
	m.over = false
	m.final = klondike.InProgress
	m.saved = false
	m.resultID = ""
	m.setStatus("New deal. Type a command and press enter.", false)
	m.checkOver()
	return nil
}

// Init starts the cursor blink and the game clock.
func (m GameModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tickCmd())
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if !m.over {
			m.elapsed = time.Time(msg).Sub(m.started)
		}
		return m, tickCmd()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Back):
		m.abandon()
		m.backToMenu = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.NewGame):
		m.abandon()
		if err := m.deal(); err != nil {
			m.setStatus(err.Error(), true)
		}
		return m, nil
	case key.Matches(msg, m.keys.Discard):
		return m.run(controller.Command{Op: controller.OpDiscardDraw})
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit parses and runs the command line.
func (m GameModel) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	if line == "" {
		return m, nil
	}

	cmd, err := controller.ParseCommand(line)
	if err != nil {
		m.setStatus(fmt.Sprintf("Invalid move: %v", err), true)
		return m, nil
	}
	if cmd.Op == controller.OpQuit {
		return m.quit()
	}
	return m.run(cmd)
}

// run applies a move command to the game.
func (m GameModel) run(cmd controller.Command) (tea.Model, tea.Cmd) {
	if m.over {
		m.setStatus("The game is over. Press ctrl+n for a new deal.", true)
		return m, nil
	}
	if err := cmd.Apply(m.game); err != nil {
		m.setStatus(fmt.Sprintf("Invalid move: %v", err), true)
		return m, nil
	}
	m.moves++
	m.setStatus(cmd.String(), false)
	m.checkOver()
	return m, nil
}

// checkOver asks the oracle whether the deal has ended and stores the result
// the first time it has.
func (m *GameModel) checkOver() {
	status, err := m.game.Status()
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	if status == klondike.InProgress {
		return
	}
	m.over = true
	m.final = status
	m.save(status.String())
}

// quit stores an unfinished deal and exits.
func (m GameModel) quit() (tea.Model, tea.Cmd) {
	m.abandon()
	m.quitting = true
	return m, tea.Quit
}

// abandon records the current deal as quit unless it already ended.
func (m *GameModel) abandon() {
	if !m.over {
		m.save("quit")
	}
}

// save stores the result of the current deal once.
func (m *GameModel) save(status string) {
	if m.saved {
		return
	}
	m.saved = true
	if m.store == nil {
		return
	}

	score, _ := m.game.Score()
	id, err := m.store.SaveResult(storage.Result{
		Variant: m.opts.Variant,
		Player:  m.opts.Player,
		Score:   score,
		Status:  status,
		Piles:   m.opts.Piles,
		Draw:    m.opts.Draw,
		Moves:   m.moves,
	})
	if err != nil {
		m.setStatus(fmt.Sprintf("Could not save result: %v", err), true)
		return
	}
	m.resultID = id
}

func (m *GameModel) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}

// View renders the table.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(labelStyle.Render(fmt.Sprintf("KLONDIKE · %s · draw %d", variantTitle(m.opts.Variant), m.opts.Draw)))
	sb.WriteString("\n\n")

	board, err := RenderBoard(m.game)
	if err != nil {
		sb.WriteString(errorStyle.Render(err.Error()))
		sb.WriteString("\n")
	} else {
		sb.WriteString(board)
	}

	score, _ := m.game.Score()
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Score: %d   Moves: %d   Time: %s\n", score, m.moves, formatElapsed(m.elapsed)))

	if m.status != "" {
		style := okStyle
		if m.statusErr {
			style = errorStyle
		}
		sb.WriteString(style.Render(m.status))
		sb.WriteString("\n")
	}

	if m.over {
		if m.final == klondike.Won {
			sb.WriteString(okStyle.Render("You win!"))
		} else {
			sb.WriteString(errorStyle.Render(fmt.Sprintf("Game over. Score: %d", score)))
		}
		sb.WriteString("\n")
		sb.WriteString(dimStyle.Render("ctrl+n new deal · esc menu · ctrl+c quit"))
		sb.WriteString("\n")
	} else {
		sb.WriteString("\n")
		sb.WriteString(m.input.View())
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	if m.help.ShowAll {
		sb.WriteString(dimStyle.Render(commandHelp))
		sb.WriteString("\n\n")
	}
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

func formatElapsed(d time.Duration) string {
	s := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}

// Game returns the current deal.
func (m GameModel) Game() *klondike.Game {
	return m.game
}

// Moves returns the number of accepted moves in the current deal.
func (m GameModel) Moves() int {
	return m.moves
}

// Over reports whether the current deal has ended.
func (m GameModel) Over() bool {
	return m.over
}

// ResultID returns the stored result ID of the current deal, if saved.
func (m GameModel) ResultID() string {
	return m.resultID
}

// IsQuitting reports whether the player asked to quit.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// WantsMenu reports whether the player asked to go back to the menu.
func (m GameModel) WantsMenu() bool {
	return m.backToMenu
}

// Run starts a standalone TUI session for one table.
func Run(store *storage.Store, opts GameOptions) error {
	model, err := NewGameModel(store, opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
