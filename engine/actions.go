package engine

import "fmt"

// AttemptPlayerPlay plays card c from the player's hand onto a center slot.
// A nil error means the play was accepted. On any error the board is unchanged
// and the caller is responsible for restoring its presentation.
func (b *Board) AttemptPlayerPlay(c Card, slot CenterSlot) error {
	if b.IsTerminal() {
		return ErrGameOver
	}
	if slot != SlotLeft && slot != SlotRight {
		return fmt.Errorf("play %s: %w %d", c, ErrInvalidSlot, slot)
	}
	idx := slotOf(&b.PlayerHand, c)
	if idx < 0 {
		return fmt.Errorf("play %s: %w", c, ErrCardNotInHand)
	}
	if !CanPlay(c.Rank(), b.CenterRank[slot]) {
		return fmt.Errorf("play %s on %s (%s): %w", c, slot, rankLabels[b.CenterRank[slot]], ErrInvalidMove)
	}

	b.PlayerHand[idx] = EmptyCard
	b.placeOnCenter(c, slot)
	return nil
}

// placeOnCenter makes c the visible card of the slot and resets the stall counter.
func (b *Board) placeOnCenter(c Card, slot CenterSlot) {
	b.push(slot.Pile(), c)
	b.CenterRank[slot] = c.Rank()
	b.StallTicks = 0
}

// FlipNewCenters turns one card from each feeder onto its center. Feeders are
// depleted as a pair: if either is empty both markers are cleared and
// ErrCentersExhausted is returned with the ranks untouched.
func (b *Board) FlipNewCenters() error {
	if b.IsTerminal() {
		return ErrGameOver
	}
	if b.Piles[PileFeedLeft].Len == 0 || b.Piles[PileFeedRight].Len == 0 {
		b.clearFeederMarkers()
		return ErrCentersExhausted
	}

	for _, s := range [...]CenterSlot{SlotLeft, SlotRight} {
		c := b.draw(s.Feeder())
		b.push(s.Pile(), c)
		b.CenterRank[s] = c.Rank()
	}
	b.StallTicks = 0

	if b.Piles[PileFeedLeft].Len == 0 || b.Piles[PileFeedRight].Len == 0 {
		b.clearFeederMarkers()
	}
	return nil
}

func (b *Board) clearFeederMarkers() {
	b.clearMarker(PileFeedLeft)
	b.clearMarker(PileFeedRight)
}

// RefillPlayerHand fills every empty player hand slot from the player's draw
// pile and returns the number of cards drawn. The draw pile's marker is
// cleared as soon as it runs out; ErrPileEmpty is returned only when an empty
// slot could not be filled.
func (b *Board) RefillPlayerHand() (int, error) {
	if b.IsTerminal() {
		return 0, ErrGameOver
	}
	drawn := 0
	for i := range b.PlayerHand {
		if b.PlayerHand[i] != EmptyCard {
			continue
		}
		c := b.draw(PilePlayerDraw)
		if c == EmptyCard {
			b.clearMarker(PilePlayerDraw)
			return drawn, ErrPileEmpty
		}
		b.PlayerHand[i] = c
		drawn++
	}
	if b.Piles[PilePlayerDraw].Len == 0 {
		b.clearMarker(PilePlayerDraw)
	}
	return drawn, nil
}

// RefillBotHand draws one card from the bot's draw pile into slot, or into the
// first empty slot when slot is AnySlot.
func (b *Board) RefillBotHand(slot int) error {
	if b.IsTerminal() {
		return ErrGameOver
	}
	if b.Piles[PileBotDraw].Len == 0 {
		b.clearMarker(PileBotDraw)
		return ErrPileEmpty
	}
	if slot == AnySlot {
		slot = firstEmpty(&b.BotHand)
		if slot < 0 {
			return ErrHandFull
		}
	}
	if slot < 0 || slot >= HandSize {
		return fmt.Errorf("refill bot hand: %w %d", ErrInvalidSlot, slot)
	}
	if b.BotHand[slot] != EmptyCard {
		return fmt.Errorf("refill bot hand slot %d: %w", slot, ErrHandFull)
	}

	b.BotHand[slot] = b.draw(PileBotDraw)
	if b.Piles[PileBotDraw].Len == 0 {
		b.clearMarker(PileBotDraw)
	}
	return nil
}

// OnPileTapped routes a tap on a face-down pile: feeders refresh the centers,
// the player's draw pile refills the player's hand. Any other pile is a no-op.
func (b *Board) OnPileTapped(id PileID) error {
	switch id {
	case PileFeedLeft, PileFeedRight:
		return b.FlipNewCenters()
	case PilePlayerDraw:
		_, err := b.RefillPlayerHand()
		return err
	}
	return nil
}
