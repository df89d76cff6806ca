package engine

// BotDecisionKind describes what the automated opponent did on a cadence tick.
type BotDecisionKind uint8

const (
	BotIdle    BotDecisionKind = iota // nothing playable and nothing could be drawn
	BotSkipped                        // not smart and the coin came up skip
	BotPlayed                         // played a card onto a center
	BotDrew                           // drew a card into an empty hand slot
)

func (k BotDecisionKind) String() string {
	switch k {
	case BotIdle:
		return "idle"
	case BotSkipped:
		return "skipped"
	case BotPlayed:
		return "played"
	case BotDrew:
		return "drew"
	}
	return "unknown"
}

// BotDecision summarizes one automated-opponent decision.
type BotDecision struct {
	Kind    BotDecisionKind
	Card    Card       // card played or drawn
	HandIdx int        // bot hand slot played from or drawn into
	Target  CenterSlot // center played onto (BotPlayed only)
	Refill  Card       // card drawn into HandIdx after a play, or EmptyCard
}

// BotTurn runs one automated-opponent decision. The hand is visited in a
// random order and the first card legal on either center is played, left
// checked before right. With nothing playable the bot draws one card instead,
// which does not reset the stall counter.
func (b *Board) BotTurn() BotDecision {
	if b.IsTerminal() {
		return BotDecision{Kind: BotIdle, HandIdx: -1, Card: EmptyCard, Refill: EmptyCard}
	}
	if !b.Rules.BotSmart && b.randFloat() < b.Rules.BotSkipChance {
		return BotDecision{Kind: BotSkipped, HandIdx: -1, Card: EmptyCard, Refill: EmptyCard}
	}

	order := b.botScanOrder()
	if idx, target, ok := FindPlay(&b.BotHand, order[:], b.CenterRank); ok {
		c := b.BotHand[idx]
		b.BotHand[idx] = EmptyCard
		b.placeOnCenter(c, target)
		d := BotDecision{Kind: BotPlayed, Card: c, HandIdx: idx, Target: target, Refill: EmptyCard}
		if b.RefillBotHand(idx) == nil {
			d.Refill = b.BotHand[idx]
		}
		return d
	}

	idx := firstEmpty(&b.BotHand)
	if err := b.RefillBotHand(AnySlot); err != nil {
		return BotDecision{Kind: BotIdle, HandIdx: -1, Card: EmptyCard, Refill: EmptyCard}
	}
	return BotDecision{Kind: BotDrew, Card: b.BotHand[idx], HandIdx: idx, Refill: EmptyCard}
}

// botScanOrder returns a random permutation of the bot hand slots.
func (b *Board) botScanOrder() [HandSize]int {
	order := inOrder
	for i := HandSize - 1; i > 0; i-- {
		j := int(b.randN(uint64(i + 1)))
		order[i], order[j] = order[j], order[i]
	}
	return order
}

// SuggestPlayerPlay returns the first playable card in the player's hand,
// scanning slots left to right. It does not change the board.
func (b *Board) SuggestPlayerPlay() (Card, CenterSlot, bool) {
	idx, target, ok := FindPlay(&b.PlayerHand, inOrder[:], b.CenterRank)
	if !ok {
		return EmptyCard, SlotLeft, false
	}
	return b.PlayerHand[idx], target, true
}
