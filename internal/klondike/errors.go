package klondike

import "errors"

// Error kinds. Every error returned by a Game wraps exactly one of these, so
// callers can branch with errors.Is without knowing the specific rule.
var (
	// ErrArgument reports a malformed call: out-of-range or negative
	// indices, equal source and destination, non-positive counts, or
	// start parameters that can never produce a game.
	ErrArgument = errors.New("klondike: invalid argument")

	// ErrState reports a well-formed call that is illegal for the current
	// board contents or lifecycle.
	ErrState = errors.New("klondike: illegal state")
)

// ruleError is a specific failure tagged with its kind.
type ruleError struct {
	kind error
	msg  string
}

func (e *ruleError) Error() string { return "klondike: " + e.msg }

func (e *ruleError) Unwrap() error { return e.kind }

func argumentError(msg string) error { return &ruleError{kind: ErrArgument, msg: msg} }

func stateError(msg string) error { return &ruleError{kind: ErrState, msg: msg} }

// Lifecycle and start-up failures.
var (
	ErrNotStarted       = stateError("game has not started")
	ErrAlreadyStarted   = stateError("game already started")
	ErrInvalidDeck      = argumentError("deck is not made of complete suit runs")
	ErrInvalidPileCount = argumentError("number of piles must be at least 1")
	ErrInvalidDrawCount = argumentError("number of draw cards must be at least 1")
	ErrDeckBelowDraw    = argumentError("deck has fewer cards than the hand holds")
	ErrDeckBelowCascade = argumentError("deck has too few cards to deal the tableau")
)

// Argument failures shared by moves and queries.
var (
	ErrPileIndex       = argumentError("pile index out of range")
	ErrFoundationIndex = argumentError("foundation index out of range")
	ErrRowIndex        = argumentError("row index out of range")
	ErrSamePile        = argumentError("source and destination pile are the same")
	ErrCardCount       = argumentError("number of cards must be at least 1")
)

// Rule violations.
var (
	ErrNotEnoughCards = stateError("source pile has too few cards")
	ErrEmptyPile      = stateError("source pile is empty")
	ErrEmptyHand      = stateError("no cards in hand")
	ErrNoCards        = stateError("hand and draw stock are both empty")
	ErrRunNotMovable  = stateError("cards do not form a movable run")
	ErrIllegalEmpty   = stateError("card cannot be placed on an empty pile")
	ErrIllegalBuild   = stateError("card cannot be built on destination")
	ErrIllegalFound   = stateError("card cannot be placed on foundation")
	ErrCardHidden     = stateError("card is not visible")
)

// IsArgumentError reports whether err is a malformed-call error.
func IsArgumentError(err error) bool {
	return errors.Is(err, ErrArgument)
}

// IsStateError reports whether err is an illegal-state error.
func IsStateError(err error) bool {
	return errors.Is(err, ErrState)
}
