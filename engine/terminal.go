package engine

import "fmt"

// PlayerOut reports whether the player has emptied both hand and draw pile.
func (b *Board) PlayerOut() bool {
	return b.PlayerHandLen() == 0 && b.Piles[PilePlayerDraw].Len == 0
}

// BotOut reports whether the bot has emptied both hand and draw pile.
func (b *Board) BotOut() bool {
	return b.BotHandLen() == 0 && b.Piles[PileBotDraw].Len == 0
}

// evaluateWinner checks the player first, so a simultaneous finish is always
// awarded to the player; the second result flags that case.
func (b *Board) evaluateWinner() (Outcome, bool) {
	playerOut, botOut := b.PlayerOut(), b.BotOut()
	switch {
	case playerOut:
		return PlayerWins, botOut
	case botOut:
		return BotWins, false
	}
	return InProgress, false
}

// ---------------------------------------------------------------------------
// Card conservation
// ---------------------------------------------------------------------------

// Location names where a card currently sits.
type Location struct {
	Pile    PileID // valid when Hand is false
	Hand    bool
	Bot     bool // with Hand: bot hand rather than player hand
	HandIdx int
}

func (l Location) String() string {
	switch {
	case l.Hand && l.Bot:
		return fmt.Sprintf("bot_hand[%d]", l.HandIdx)
	case l.Hand:
		return fmt.Sprintf("player_hand[%d]", l.HandIdx)
	}
	return l.Pile.String()
}

// Locate returns where card c sits on the board.
func (b *Board) Locate(c Card) (Location, bool) {
	for i, h := range b.PlayerHand {
		if h == c {
			return Location{Hand: true, HandIdx: i}, true
		}
	}
	for i, h := range b.BotHand {
		if h == c {
			return Location{Hand: true, Bot: true, HandIdx: i}, true
		}
	}
	for id := range b.Piles {
		p := &b.Piles[id]
		for i := uint8(0); i < p.Len; i++ {
			if p.Cards[i] == c {
				return Location{Pile: PileID(id)}, true
			}
		}
	}
	return Location{}, false
}

// Audit verifies that every one of the 52 card identities is on the board
// exactly once, across all piles, both hands and the retired pile.
func (b *Board) Audit() error {
	var seen [256]uint8
	count := func(c Card, where string) error {
		if !c.Valid() {
			return fmt.Errorf("audit: invalid card %#x in %s", uint8(c), where)
		}
		seen[c]++
		if seen[c] > 1 {
			return fmt.Errorf("audit: card %s duplicated (again in %s)", c, where)
		}
		return nil
	}

	for i, c := range b.PlayerHand {
		if c == EmptyCard {
			continue
		}
		if err := count(c, fmt.Sprintf("player_hand[%d]", i)); err != nil {
			return err
		}
	}
	for i, c := range b.BotHand {
		if c == EmptyCard {
			continue
		}
		if err := count(c, fmt.Sprintf("bot_hand[%d]", i)); err != nil {
			return err
		}
	}
	for id := range b.Piles {
		p := &b.Piles[id]
		for i := uint8(0); i < p.Len; i++ {
			if err := count(p.Cards[i], PileID(id).String()); err != nil {
				return err
			}
		}
	}

	deck := NewDeck()
	for _, c := range deck {
		if seen[c] == 0 {
			return fmt.Errorf("audit: card %s missing", c)
		}
	}
	return nil
}
