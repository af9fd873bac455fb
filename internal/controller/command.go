package controller

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-klondike/internal/klondike"
)

// Op names a player command.
type Op string

const (
	OpMovePile             Op = "mpp" // mpp <src> <count> <dest>
	OpMoveDraw             Op = "md"  // md <dest>
	OpMovePileToFoundation Op = "mpf" // mpf <src> <foundation>
	OpMoveDrawToFoundation Op = "mdf" // mdf <foundation>
	OpDiscardDraw          Op = "dd"
	OpQuit                 Op = "q"
)

var arity = map[Op]int{
	OpMovePile:             3,
	OpMoveDraw:             1,
	OpMovePileToFoundation: 2,
	OpMoveDrawToFoundation: 1,
	OpDiscardDraw:          0,
	OpQuit:                 0,
}

var (
	ErrUnknownCommand = errors.New("controller: unknown command")
	ErrMissingNumbers = errors.New("controller: command needs more numbers")
)

// Command is one parsed player command. Pile and foundation numbers are kept
// 1-based, as typed; card counts are plain counts.
type Command struct {
	Op   Op
	Args []int
}

func (c Command) String() string {
	parts := []string{string(c.Op)}
	for _, a := range c.Args {
		parts = append(parts, strconv.Itoa(a))
	}
	return strings.Join(parts, " ")
}

// lookupOp returns the op for a command word, ignoring case.
func lookupOp(word string) (Op, bool) {
	op := Op(strings.ToLower(word))
	_, ok := arity[op]
	return op, ok
}

// ParseCommand parses one full command line such as "mpp 2 1 5". Tokens that
// are not numbers are skipped while numbers are expected, and a "q" anywhere
// quits.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, ErrUnknownCommand
	}
	if strings.EqualFold(fields[0], string(OpQuit)) {
		return Command{Op: OpQuit}, nil
	}
	op, ok := lookupOp(fields[0])
	if !ok {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, fields[0])
	}

	cmd := Command{Op: op}
	for _, f := range fields[1:] {
		if len(cmd.Args) == arity[op] {
			break
		}
		if strings.EqualFold(f, string(OpQuit)) {
			return Command{Op: OpQuit}, nil
		}
		if n, err := strconv.Atoi(f); err == nil {
			cmd.Args = append(cmd.Args, n)
		}
	}
	if len(cmd.Args) < arity[op] {
		return Command{}, fmt.Errorf("%w: %s takes %d", ErrMissingNumbers, op, arity[op])
	}
	return cmd, nil
}

// Apply performs the command on g, converting 1-based numbers to indices.
func (c Command) Apply(g *klondike.Game) error {
	if len(c.Args) < arity[c.Op] {
		return ErrMissingNumbers
	}
	switch c.Op {
	case OpMovePile:
		return g.MovePile(c.Args[0]-1, c.Args[1], c.Args[2]-1)
	case OpMoveDraw:
		return g.MoveFromHand(c.Args[0] - 1)
	case OpMovePileToFoundation:
		return g.MoveToFoundation(c.Args[0]-1, c.Args[1]-1)
	case OpMoveDrawToFoundation:
		return g.MoveFromHandToFoundation(c.Args[0] - 1)
	case OpDiscardDraw:
		return g.Discard()
	default:
		return ErrUnknownCommand
	}
}
