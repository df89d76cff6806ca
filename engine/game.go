// Package engine implements the Speed card game rules.
//
// The whole game lives in a single flat Board value (no pointers, no slices),
// owned by one caller and mutated synchronously by the turn handlers and the
// per-tick update. Given the same seed and rules, a game is fully deterministic.
package engine

const (
	HandSize = 5
	DeckSize = 52
)

// Pile is a LIFO stack of cards. Cards[Len-1] is the top.
type Pile struct {
	Cards [DeckSize]Card
	Len   uint8
}

// Board holds the complete, self-contained state of a Speed game.
type Board struct {
	Piles   [NumPiles]Pile
	Markers [NumPiles]bool // face-down back marker visible

	PlayerHand [HandSize]Card // EmptyCard marks an empty slot
	BotHand    [HandSize]Card

	CenterRank [2]uint8 // mirrors the top of each center pile

	StallTicks    uint16 // ticks since the last successful play or refresh
	BotTicks      uint16 // ticks since the last bot decision
	TickCount     uint32
	GestureActive bool
	Dealt         bool
	Outcome       Outcome

	RNG   uint64
	Rules Rules
}

// ---------------------------------------------------------------------------
// xorshift64 RNG, inline
// ---------------------------------------------------------------------------

func (b *Board) nextRand() uint64 {
	x := b.RNG
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	b.RNG = x
	return x
}

// randN returns a random number in [0, n).
func (b *Board) randN(n uint64) uint64 {
	return b.nextRand() % n
}

// randFloat returns a random float in [0, 1).
func (b *Board) randFloat() float64 {
	return float64(b.nextRand()>>11) / (1 << 53)
}

// ---------------------------------------------------------------------------
// NewGame and Deal
// ---------------------------------------------------------------------------

// NewDeck returns the 52 card identities, ordered by suit then rank.
func NewDeck() [DeckSize]Card {
	var deck [DeckSize]Card
	idx := 0
	for suit := SuitHearts; suit <= SuitSpades; suit++ {
		for rank := RankAce; rank <= RankKing; rank++ {
			deck[idx] = NewCard(suit, rank)
			idx++
		}
	}
	return deck
}

// NewGame initializes a Board with the given seed and rules.
// The deck sits in PileRetired, ordered; it is shuffled and dealt by Deal.
func NewGame(seed uint64, rules Rules) Board {
	var b Board
	b.RNG = seed
	if b.RNG == 0 {
		b.RNG = 1 // xorshift can't start at 0
	}
	b.Rules = rules
	for i := range b.PlayerHand {
		b.PlayerHand[i] = EmptyCard
		b.BotHand[i] = EmptyCard
	}
	deck := NewDeck()
	stock := &b.Piles[PileRetired]
	copy(stock.Cards[:], deck[:])
	stock.Len = DeckSize
	return b
}

// Deal shuffles the deck and distributes it: both feeders, both draw piles,
// one card into every hand slot, then one card onto each center. Whatever is
// left stays in PileRetired, out of play. Dealing stops quietly when the deck
// runs out. Calling Deal twice is a no-op.
func (b *Board) Deal() {
	if b.Dealt {
		return
	}
	b.shuffle(PileRetired)

	for _, p := range [...]PileID{PileFeedLeft, PileFeedRight} {
		b.dealInto(p, b.Rules.FeederSize)
	}
	for _, p := range [...]PileID{PilePlayerDraw, PileBotDraw} {
		b.dealInto(p, b.Rules.DrawPileSize)
	}
	for i := 0; i < HandSize; i++ {
		b.PlayerHand[i] = b.draw(PileRetired)
		b.BotHand[i] = b.draw(PileRetired)
	}
	for _, s := range [...]CenterSlot{SlotLeft, SlotRight} {
		if c := b.draw(PileRetired); c != EmptyCard {
			b.push(s.Pile(), c)
			b.CenterRank[s] = c.Rank()
		}
	}

	for _, p := range [...]PileID{PileFeedLeft, PileFeedRight, PilePlayerDraw, PileBotDraw} {
		b.Markers[p] = b.Piles[p].Len > 0
	}
	b.Dealt = true
}

// shuffle applies a Fisher-Yates permutation to the pile.
func (b *Board) shuffle(id PileID) {
	p := &b.Piles[id]
	for i := int(p.Len) - 1; i > 0; i-- {
		j := int(b.randN(uint64(i + 1)))
		p.Cards[i], p.Cards[j] = p.Cards[j], p.Cards[i]
	}
}

// dealInto moves up to n cards from the stock onto the given pile.
func (b *Board) dealInto(id PileID, n uint8) {
	for i := uint8(0); i < n; i++ {
		c := b.draw(PileRetired)
		if c == EmptyCard {
			return
		}
		b.push(id, c)
	}
}

// ---------------------------------------------------------------------------
// Query methods
// ---------------------------------------------------------------------------

// IsTerminal returns true when the game is over.
func (b *Board) IsTerminal() bool { return b.Outcome != InProgress }

// CurrentOutcome returns InProgress, PlayerWins or BotWins.
func (b *Board) CurrentOutcome() Outcome { return b.Outcome }

// Centers returns both center ranks, left first.
func (b *Board) Centers() [2]uint8 { return b.CenterRank }

// CenterTop returns the visible card of a center slot, or EmptyCard.
func (b *Board) CenterTop(s CenterSlot) Card { return b.Top(s.Pile()) }

// ---------------------------------------------------------------------------
// Snapshot Undo (Save / Restore)
// ---------------------------------------------------------------------------

// Snapshot is a complete value-copy of Board.
type Snapshot Board

// Save returns a snapshot of the current board.
func (b *Board) Save() Snapshot { return Snapshot(*b) }

// Restore replaces the board with the given snapshot.
func (b *Board) Restore(s Snapshot) { *b = Board(s) }
