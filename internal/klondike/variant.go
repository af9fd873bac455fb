package klondike

// Variant is the set of legality rules that distinguishes one Klondike
// variant from another. Variants only answer questions; they never touch the
// board. A Game's variant is fixed at construction.
type Variant interface {
	// Name returns the variant identifier, e.g. "basic".
	Name() string

	// CanBuild reports whether moving may be placed on top of destTop in a
	// tableau pile.
	CanBuild(moving, destTop Card) bool

	// CanPlaceOnEmpty reports whether c may start an empty tableau pile.
	CanPlaceOnEmpty(c Card) bool

	// RunMovable reports whether run, ordered bottom to top as it sits in
	// the pile, may be lifted as a unit. The run is never empty.
	RunMovable(run []Card) bool

	// AllVisible reports whether every tableau card is face up. When false
	// only the top card of each pile is visible.
	AllVisible() bool
}

// Basic is classic Klondike: alternate colors, kings fill empty piles, and
// only pile tops are face up.
//
// Multi-card moves check just the bottom card of the run against the
// destination; the cards above it travel along unchecked. Hidden cards keep
// malformed runs from being offered in normal play.
type Basic struct{}

func (Basic) Name() string { return "basic" }

func (Basic) CanBuild(moving, destTop Card) bool {
	return !moving.SameColor(destTop) && moving.Rank+1 == destTop.Rank
}

func (Basic) CanPlaceOnEmpty(c Card) bool { return c.Rank == King }

func (Basic) RunMovable(run []Card) bool { return len(run) > 0 }

func (Basic) AllVisible() bool { return false }

// Whitehead builds same-color, lets any card start an empty pile, shows the
// whole tableau, and only moves same-suit descending runs.
type Whitehead struct{}

func (Whitehead) Name() string { return "whitehead" }

func (Whitehead) CanBuild(moving, destTop Card) bool {
	return moving.SameColor(destTop) && moving.Rank+1 == destTop.Rank
}

func (Whitehead) CanPlaceOnEmpty(Card) bool { return true }

func (Whitehead) RunMovable(run []Card) bool {
	if len(run) == 0 {
		return false
	}
	for i := 0; i+1 < len(run); i++ {
		lower, upper := run[i], run[i+1]
		if lower.Suit != upper.Suit || lower.Rank != upper.Rank+1 {
			return false
		}
	}
	return true
}

func (Whitehead) AllVisible() bool { return true }

var (
	_ Variant = Basic{}
	_ Variant = Whitehead{}
)
