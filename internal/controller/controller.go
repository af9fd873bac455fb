// Package controller runs a Klondike game as a line-oriented text session:
// it renders the board, reads commands, applies them and reports the end of
// the game.
package controller

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-klondike/internal/klondike"
	"github.com/vovakirdan/tui-klondike/internal/view"
)

const invalidMove = "Invalid move. Play again."

var (
	// ErrNoInput is returned when input runs out before the game ends.
	ErrNoInput = errors.New("controller: no more input")

	// ErrCannotStart wraps the engine error when the game fails to start.
	ErrCannotStart = errors.New("controller: cannot start game")
)

// errQuit unwinds command reading when the player types q.
var errQuit = errors.New("quit")

// Result summarizes a finished session.
type Result struct {
	Score  int
	Status klondike.Status
	Quit   bool
	Moves  int
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger for rejected commands and session events.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithVerbose appends the rule that rejected a move to the invalid-move
// message.
func WithVerbose(v bool) Option {
	return func(c *Controller) { c.verbose = v }
}

// Controller reads commands from an input stream and writes the game to an
// output stream.
type Controller struct {
	in      *bufio.Scanner
	out     io.Writer
	logger  *log.Logger
	verbose bool
	err     error
}

// New creates a controller reading whitespace-separated tokens from r and
// writing to w.
func New(r io.Reader, w io.Writer, opts ...Option) *Controller {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	c := &Controller{
		in:     sc,
		out:    w,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PlayGame starts g with the given deal and plays it until the game ends,
// the player quits or input runs out.
func (c *Controller) PlayGame(g *klondike.Game, deck []klondike.Card, shuffle bool, numPiles, numDraw int) (Result, error) {
	if g == nil {
		return Result{}, fmt.Errorf("%w: no game", ErrCannotStart)
	}
	if err := g.Start(deck, shuffle, numPiles, numDraw); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrCannotStart, err)
	}
	c.logger.Debug("game started", "variant", g.Variant().Name(), "piles", numPiles, "draw", numDraw)

	v := view.New(g, c.out)
	res := Result{}
	c.renderState(v, g)

	for c.err == nil {
		if over, _ := g.IsGameOver(); over {
			break
		}
		cmd, err := c.nextCommand()
		if errors.Is(err, errQuit) || (err == nil && cmd.Op == OpQuit) {
			c.quitGame(v, g)
			res.Quit = true
			return c.finish(g, res)
		}
		if err != nil {
			res, _ = c.finish(g, res)
			return res, err
		}

		if err := cmd.Apply(g); err != nil {
			c.logger.Debug("move rejected", "cmd", cmd.String(), "err", err)
			c.invalid(err)
			continue
		}
		res.Moves++
		c.renderState(v, g)
	}
	if c.err != nil {
		return c.finish(g, res)
	}

	score, _ := g.Score()
	if score == len(deck) {
		c.printf("You win!\n")
	} else {
		c.printf("Game over. Score: %d\n", score)
	}
	return c.finish(g, res)
}

func (c *Controller) finish(g *klondike.Game, res Result) (Result, error) {
	res.Score, _ = g.Score()
	res.Status, _ = g.Status()
	c.logger.Debug("game finished", "score", res.Score, "status", res.Status, "quit", res.Quit, "moves", res.Moves)
	if c.err != nil {
		return res, fmt.Errorf("controller: cannot write output: %w", c.err)
	}
	return res, nil
}

// nextToken returns the next input token or ErrNoInput.
func (c *Controller) nextToken() (string, error) {
	if !c.in.Scan() {
		return "", ErrNoInput
	}
	return c.in.Text(), nil
}

// nextCommand reads tokens until it has a complete command. Unknown words
// are reported and skipped.
func (c *Controller) nextCommand() (Command, error) {
	for {
		tok, err := c.nextToken()
		if err != nil {
			return Command{}, err
		}
		op, ok := lookupOp(tok)
		if !ok {
			c.logger.Debug("unknown command", "token", tok)
			c.printf("%s\n", invalidMove)
			continue
		}

		cmd := Command{Op: op}
		for range arity[op] {
			n, err := c.nextInt()
			if err != nil {
				return Command{}, err
			}
			cmd.Args = append(cmd.Args, n)
		}
		return cmd, nil
	}
}

// nextInt reads the next integer, skipping other tokens.
func (c *Controller) nextInt() (int, error) {
	for {
		tok, err := c.nextToken()
		if err != nil {
			return 0, err
		}
		if strings.EqualFold(tok, string(OpQuit)) {
			return 0, errQuit
		}
		if n, err := strconv.Atoi(tok); err == nil {
			return n, nil
		}
	}
}

func (c *Controller) invalid(err error) {
	if c.verbose {
		c.printf("%s (%v)\n", invalidMove, err)
		return
	}
	c.printf("%s\n", invalidMove)
}

func (c *Controller) renderState(v *view.TextView, g *klondike.Game) {
	if c.err != nil {
		return
	}
	if err := v.Render(); err != nil {
		c.err = err
		return
	}
	score, _ := g.Score()
	c.printf("Score: %d\n", score)
}

func (c *Controller) quitGame(v *view.TextView, g *klondike.Game) {
	c.printf("Game quit!\nState of game when quit:\n")
	c.renderState(v, g)
}

// printf writes to the output, remembering the first failure.
func (c *Controller) printf(format string, args ...any) {
	if c.err != nil {
		return
	}
	_, c.err = fmt.Fprintf(c.out, format, args...)
}
