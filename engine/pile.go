package engine

// AnySlot asks RefillBotHand to use the first empty bot hand slot.
const AnySlot = -1

// Len returns the number of cards in the pile.
func (b *Board) Len(id PileID) int { return int(b.Piles[id].Len) }

// Top returns the top card of the pile, or EmptyCard if it is empty.
func (b *Board) Top(id PileID) Card {
	p := &b.Piles[id]
	if p.Len == 0 {
		return EmptyCard
	}
	return p.Cards[p.Len-1]
}

// Pop removes and returns the top card of the pile. Popping an empty pile
// changes nothing and returns ErrPileEmpty.
func (b *Board) Pop(id PileID) (Card, error) {
	c := b.draw(id)
	if c == EmptyCard {
		return EmptyCard, ErrPileEmpty
	}
	return c, nil
}

// Push places a card on top of the pile.
func (b *Board) Push(id PileID, c Card) { b.push(id, c) }

// MarkerVisible reports whether the pile's face-down back marker is shown.
func (b *Board) MarkerVisible(id PileID) bool { return b.Markers[id] }

// draw pops the top card, returning EmptyCard when the pile is empty.
func (b *Board) draw(id PileID) Card {
	p := &b.Piles[id]
	if p.Len == 0 {
		return EmptyCard
	}
	p.Len--
	c := p.Cards[p.Len]
	p.Cards[p.Len] = 0
	return c
}

func (b *Board) push(id PileID, c Card) {
	p := &b.Piles[id]
	p.Cards[p.Len] = c
	p.Len++
}

// clearMarker removes the back marker of a face-down pile and retires any
// cards still in it: once the marker is gone the pile is out of play.
func (b *Board) clearMarker(id PileID) {
	b.Markers[id] = false
	for b.Piles[id].Len > 0 {
		b.push(PileRetired, b.draw(id))
	}
}

// ---------------------------------------------------------------------------
// Hand helpers
// ---------------------------------------------------------------------------

// HandLen returns the number of occupied slots in a hand.
func HandLen(hand *[HandSize]Card) int {
	n := 0
	for _, c := range hand {
		if c != EmptyCard {
			n++
		}
	}
	return n
}

// firstEmpty returns the index of the first empty slot, or -1.
func firstEmpty(hand *[HandSize]Card) int {
	for i, c := range hand {
		if c == EmptyCard {
			return i
		}
	}
	return -1
}

// slotOf returns the slot holding card c, or -1.
func slotOf(hand *[HandSize]Card, c Card) int {
	for i, h := range hand {
		if h == c && h != EmptyCard {
			return i
		}
	}
	return -1
}

// PlayerHandLen returns the number of cards in the player's hand.
func (b *Board) PlayerHandLen() int { return HandLen(&b.PlayerHand) }

// BotHandLen returns the number of cards in the bot's hand.
func (b *Board) BotHandLen() int { return HandLen(&b.BotHand) }
