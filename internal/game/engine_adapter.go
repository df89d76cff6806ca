// engine_adapter.go: bridge between engine.Board and SpeedGame.
package game

import (
	"github.com/google/uuid"
	engine "github.com/jason-s-yu/speed/engine"
)

// CardUUIDTracker gives every card identity a stable UUID handle for client
// communication. Card identities never change during a game, so the handle of
// a card is fixed from deal to game end; positions are always read from the
// engine.
type CardUUIDTracker struct {
	ByCard   map[engine.Card]uuid.UUID
	Registry map[uuid.UUID]engine.Card
}

// newCardUUIDTracker assigns a fresh UUID to each of the 52 card identities.
func newCardUUIDTracker() CardUUIDTracker {
	t := CardUUIDTracker{
		ByCard:   make(map[engine.Card]uuid.UUID, engine.DeckSize),
		Registry: make(map[uuid.UUID]engine.Card, engine.DeckSize),
	}
	for _, c := range engine.NewDeck() {
		id, _ := uuid.NewRandom()
		t.ByCard[c] = id
		t.Registry[id] = c
	}
	return t
}

// ID returns the handle of card c, or uuid.Nil for EmptyCard.
func (t *CardUUIDTracker) ID(c engine.Card) uuid.UUID {
	if c == engine.EmptyCard {
		return uuid.Nil
	}
	return t.ByCard[c]
}

// Card resolves a handle back to its card.
func (t *CardUUIDTracker) Card(id uuid.UUID) (engine.Card, bool) {
	c, ok := t.Registry[id]
	return c, ok
}

// engineRankToString converts an engine rank to its one-character label.
func engineRankToString(rank uint8) string {
	switch rank {
	case engine.RankAce:
		return "A"
	case engine.RankTwo:
		return "2"
	case engine.RankThree:
		return "3"
	case engine.RankFour:
		return "4"
	case engine.RankFive:
		return "5"
	case engine.RankSix:
		return "6"
	case engine.RankSeven:
		return "7"
	case engine.RankEight:
		return "8"
	case engine.RankNine:
		return "9"
	case engine.RankTen:
		return "T"
	case engine.RankJack:
		return "J"
	case engine.RankQueen:
		return "Q"
	case engine.RankKing:
		return "K"
	default:
		return "?"
	}
}

// engineSuitToString converts an engine suit to its one-character label.
func engineSuitToString(suit uint8) string {
	switch suit {
	case engine.SuitHearts:
		return "H"
	case engine.SuitDiamonds:
		return "D"
	case engine.SuitClubs:
		return "C"
	case engine.SuitSpades:
		return "S"
	default:
		return "?"
	}
}

// eventCard builds the wire form of a face-up card. idx is the hand slot, or
// negative when the card is not in a hand.
func (g *SpeedGame) eventCard(c engine.Card, idx int) *EventCard {
	if c == engine.EmptyCard {
		return nil
	}
	ec := &EventCard{
		ID:   g.CardTracker.ID(c),
		Rank: engineRankToString(c.Rank()),
		Suit: engineSuitToString(c.Suit()),
	}
	if idx >= 0 {
		ec.Idx = &idx
	}
	return ec
}

// mapSettingsToEngine maps service Settings to engine.Rules.
func (g *SpeedGame) mapSettingsToEngine() engine.Rules {
	s := g.Settings
	r := engine.RulesFor(s.Difficulty, clampUint16(s.TickRate))
	if s.InactivitySeconds > 0 {
		r.SetInactivitySeconds(s.InactivitySeconds)
	}
	if s.FeederSize > 0 {
		r.FeederSize = clampDeal(s.FeederSize)
	}
	if s.DrawPileSize > 0 {
		r.DrawPileSize = clampDeal(s.DrawPileSize)
	}
	switch {
	case s.BotSkipChance < 0:
		r.BotSkipChance = 0
	case s.BotSkipChance > 1:
		r.BotSkipChance = 1
	default:
		r.BotSkipChance = s.BotSkipChance
	}
	return r
}

func clampUint16(n int) uint16 {
	switch {
	case n < 0:
		return 0
	case n > 1000:
		return 1000
	}
	return uint16(n)
}

func clampDeal(n int) uint8 {
	if n > engine.DeckSize {
		return engine.DeckSize
	}
	return uint8(n)
}
