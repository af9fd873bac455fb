package klondike

// MovePile moves the top count cards of pile src onto pile dest, keeping
// their order. The run must be movable under the variant and its bottom
// card must fit on dest.
func (g *Game) MovePile(src, count, dest int) error {
	b, err := g.started()
	if err != nil {
		return err
	}
	if !b.validPile(src) || !b.validPile(dest) {
		return ErrPileIndex
	}
	if src == dest {
		return ErrSamePile
	}
	if count < 1 {
		return ErrCardCount
	}

	from := b.piles[src]
	if len(from) < count {
		return ErrNotEnoughCards
	}
	run := from[len(from)-count:]
	if !g.variant.RunMovable(run) {
		return ErrRunNotMovable
	}
	if err := g.checkPlace(run[0], b.piles[dest]); err != nil {
		return err
	}

	b.piles[dest] = append(b.piles[dest], run...)
	b.piles[src] = from[:len(from)-count]
	return nil
}

// MoveFromHand plays the front hand card onto pile dest.
func (g *Game) MoveFromHand(dest int) error {
	b, err := g.started()
	if err != nil {
		return err
	}
	if len(b.hand) == 0 {
		return ErrEmptyHand
	}
	if !b.validPile(dest) {
		return ErrPileIndex
	}
	if err := g.checkPlace(b.hand[0], b.piles[dest]); err != nil {
		return err
	}

	b.piles[dest] = append(b.piles[dest], b.popHand())
	b.refillHand()
	return nil
}

// MoveToFoundation moves the top card of pile src onto a foundation.
func (g *Game) MoveToFoundation(src, foundation int) error {
	b, err := g.started()
	if err != nil {
		return err
	}
	if !b.validPile(src) {
		return ErrPileIndex
	}
	if !b.validFoundation(foundation) {
		return ErrFoundationIndex
	}
	c, ok := top(b.piles[src])
	if !ok {
		return ErrEmptyPile
	}
	if !canFound(c, b.foundations[foundation]) {
		return ErrIllegalFound
	}

	b.foundations[foundation] = append(b.foundations[foundation], c)
	b.piles[src] = b.piles[src][:len(b.piles[src])-1]
	return nil
}

// MoveFromHandToFoundation moves the front hand card onto a foundation.
func (g *Game) MoveFromHandToFoundation(foundation int) error {
	b, err := g.started()
	if err != nil {
		return err
	}
	if len(b.hand) == 0 && len(b.stock) == 0 {
		return ErrNoCards
	}
	if !b.validFoundation(foundation) {
		return ErrFoundationIndex
	}
	// The hand is refilled eagerly, so it is only empty here if the board
	// was left short by an earlier operation. Peek at the stock instead of
	// refilling so a rejected move changes nothing.
	var front Card
	if len(b.hand) > 0 {
		front = b.hand[0]
	} else {
		front = b.stock[0]
	}
	if !canFound(front, b.foundations[foundation]) {
		return ErrIllegalFound
	}

	b.refillHand()
	b.foundations[foundation] = append(b.foundations[foundation], b.popHand())
	b.refillHand()
	return nil
}

// Discard sends the front hand card to the back of the draw stock and
// refills the hand.
func (g *Game) Discard() error {
	b, err := g.started()
	if err != nil {
		return err
	}
	if len(b.hand) == 0 {
		return ErrEmptyHand
	}

	b.stock = append(b.stock, b.popHand())
	b.refillHand()
	return nil
}

// checkPlace reports whether c may be put on dest under the variant rules.
func (g *Game) checkPlace(c Card, dest []Card) error {
	t, ok := top(dest)
	if !ok {
		if !g.variant.CanPlaceOnEmpty(c) {
			return ErrIllegalEmpty
		}
		return nil
	}
	if !g.variant.CanBuild(c, t) {
		return ErrIllegalBuild
	}
	return nil
}
