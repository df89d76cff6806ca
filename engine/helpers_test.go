package engine

import "testing"

// newDealtGame creates a new game with default rules, deals, and returns it.
// Uses seed 42 for reproducibility.
func newDealtGame(t *testing.T) Board {
	t.Helper()
	b := NewGame(42, DefaultRules())
	b.Deal()
	if err := b.Audit(); err != nil {
		t.Fatalf("audit after deal: %v", err)
	}
	return b
}

// quietRules returns default rules with the bot and stall timer pushed far
// enough out that a test controls every mutation.
func quietRules() Rules {
	r := DefaultRules()
	r.BotCadenceTicks = 60000
	r.InactivityTicks = 60000
	return r
}

// takeCard removes c from wherever it sits on the board, keeping pile order.
func takeCard(t *testing.T, b *Board, c Card) {
	t.Helper()
	loc, ok := b.Locate(c)
	if !ok {
		t.Fatalf("card %s not on board", c)
	}
	if loc.Hand {
		if loc.Bot {
			b.BotHand[loc.HandIdx] = EmptyCard
		} else {
			b.PlayerHand[loc.HandIdx] = EmptyCard
		}
		return
	}
	p := &b.Piles[loc.Pile]
	for i := uint8(0); i < p.Len; i++ {
		if p.Cards[i] == c {
			copy(p.Cards[i:p.Len-1], p.Cards[i+1:p.Len])
			p.Len--
			p.Cards[p.Len] = 0
			return
		}
	}
}

// putPlayerHand moves c into a player hand slot; a displaced card is retired.
func putPlayerHand(t *testing.T, b *Board, slot int, c Card) {
	t.Helper()
	takeCard(t, b, c)
	if old := b.PlayerHand[slot]; old != EmptyCard {
		b.push(PileRetired, old)
	}
	b.PlayerHand[slot] = c
}

// putBotHand moves c into a bot hand slot; a displaced card is retired.
func putBotHand(t *testing.T, b *Board, slot int, c Card) {
	t.Helper()
	takeCard(t, b, c)
	if old := b.BotHand[slot]; old != EmptyCard {
		b.push(PileRetired, old)
	}
	b.BotHand[slot] = c
}

// putCenter moves c onto a center pile and updates its rank.
func putCenter(t *testing.T, b *Board, slot CenterSlot, c Card) {
	t.Helper()
	takeCard(t, b, c)
	b.push(slot.Pile(), c)
	b.CenterRank[slot] = c.Rank()
}

// putPile moves c onto the top of any pile.
func putPile(t *testing.T, b *Board, id PileID, c Card) {
	t.Helper()
	takeCard(t, b, c)
	b.push(id, c)
}

// drainPile retires every card of a pile without touching its marker.
func drainPile(b *Board, id PileID) {
	for b.Piles[id].Len > 0 {
		b.push(PileRetired, b.draw(id))
	}
}

// clearHand retires every card of a hand.
func clearHand(b *Board, hand *[HandSize]Card) {
	for i, c := range hand {
		if c != EmptyCard {
			b.push(PileRetired, c)
			hand[i] = EmptyCard
		}
	}
}

// fillBotHandWithRank moves a card of the given rank into the first slots of
// the bot hand, one suit per slot, so at most four slots can be filled.
func fillBotHandWithRank(t *testing.T, b *Board, slots int, rank uint8) {
	t.Helper()
	for i := 0; i < slots; i++ {
		putBotHand(t, b, i, NewCard(uint8(i%4), rank))
	}
}

// mustAudit fails the test when the board has lost or duplicated a card.
func mustAudit(t *testing.T, b *Board) {
	t.Helper()
	if err := b.Audit(); err != nil {
		t.Fatalf("%v", err)
	}
}
