package engine

import (
	"fmt"
	"strings"
)

// Suit constants: packed into upper 4 bits of Card.
const (
	SuitHearts   uint8 = 0
	SuitDiamonds uint8 = 1
	SuitClubs    uint8 = 2
	SuitSpades   uint8 = 3
)

// Rank constants: packed into lower 4 bits of Card. Ace is low (1), King high (13).
const (
	RankAce   uint8 = 1
	RankTwo   uint8 = 2
	RankThree uint8 = 3
	RankFour  uint8 = 4
	RankFive  uint8 = 5
	RankSix   uint8 = 6
	RankSeven uint8 = 7
	RankEight uint8 = 8
	RankNine  uint8 = 9
	RankTen   uint8 = 10
	RankJack  uint8 = 11
	RankQueen uint8 = 12
	RankKing  uint8 = 13
)

// Card is a packed uint8: upper 4 bits = suit, lower 4 bits = rank.
type Card uint8

// EmptyCard represents the absence of a card.
const EmptyCard Card = 0xFF

// NewCard constructs a Card from suit and rank.
func NewCard(suit, rank uint8) Card {
	return Card((suit << 4) | (rank & 0x0F))
}

// Suit returns the suit bits (upper 4).
func (c Card) Suit() uint8 { return uint8(c) >> 4 }

// Rank returns the rank bits (lower 4).
func (c Card) Rank() uint8 { return uint8(c) & 0x0F }

// Valid reports whether c is one of the 52 deck identities.
func (c Card) Valid() bool {
	return c != EmptyCard && c.Suit() <= SuitSpades && c.Rank() >= RankAce && c.Rank() <= RankKing
}

var rankLabels = [...]string{"", "A", "2", "3", "4", "5", "6", "7", "8", "9", "T", "J", "Q", "K"}

const suitLabels = "HDCS"

// String formats the card as rank then suit, e.g. "7H" or "KS".
func (c Card) String() string {
	if !c.Valid() {
		return "--"
	}
	return rankLabels[c.Rank()] + string(suitLabels[c.Suit()])
}

// ParseCard is the inverse of Card.String.
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return EmptyCard, fmt.Errorf("parse card %q: want 2 characters", s)
	}
	rank := uint8(0)
	for r := RankAce; r <= RankKing; r++ {
		if rankLabels[r] == strings.ToUpper(s[:1]) {
			rank = r
			break
		}
	}
	if rank == 0 {
		return EmptyCard, fmt.Errorf("parse card %q: unknown rank", s)
	}
	suit := strings.IndexByte(suitLabels, strings.ToUpper(s[1:])[0])
	if suit < 0 {
		return EmptyCard, fmt.Errorf("parse card %q: unknown suit", s)
	}
	return NewCard(uint8(suit), rank), nil
}

// PileID identifies one of the stacks on the board. Hands are not piles; they
// are fixed slot arrays on Board.
type PileID uint8

const (
	PileCenterLeft  PileID = iota // 0: played cards, top is the visible left center
	PileCenterRight               // 1: played cards, top is the visible right center
	PileFeedLeft                  // 2: face-down feeder behind the left center
	PileFeedRight                 // 3: face-down feeder behind the right center
	PilePlayerDraw                // 4: player's face-down draw pile
	PileBotDraw                   // 5: bot's face-down draw pile
	PileRetired                   // 6: cards out of play (undealt stock, retired piles)

	NumPiles = 7
)

var pileNames = [NumPiles]string{
	"center_left", "center_right", "feed_left", "feed_right", "player_draw", "bot_draw", "retired",
}

func (p PileID) String() string {
	if int(p) < NumPiles {
		return pileNames[p]
	}
	return fmt.Sprintf("pile(%d)", p)
}

// ParsePileID maps a pile name as produced by PileID.String back to its id.
func ParsePileID(s string) (PileID, bool) {
	for i, name := range pileNames {
		if name == s {
			return PileID(i), true
		}
	}
	return 0, false
}

// FaceDown reports whether the pile is presented face-down with a back marker.
func (p PileID) FaceDown() bool {
	switch p {
	case PileFeedLeft, PileFeedRight, PilePlayerDraw, PileBotDraw:
		return true
	}
	return false
}

// CenterSlot selects one of the two active play positions.
type CenterSlot uint8

const (
	SlotLeft  CenterSlot = 0
	SlotRight CenterSlot = 1
)

func (s CenterSlot) String() string {
	switch s {
	case SlotLeft:
		return "left"
	case SlotRight:
		return "right"
	}
	return fmt.Sprintf("slot(%d)", s)
}

// Pile returns the center pile backing this slot.
func (s CenterSlot) Pile() PileID {
	if s == SlotRight {
		return PileCenterRight
	}
	return PileCenterLeft
}

// Feeder returns the face-down pile that feeds this slot.
func (s CenterSlot) Feeder() PileID {
	if s == SlotRight {
		return PileFeedRight
	}
	return PileFeedLeft
}

// Outcome is the terminal state of a game.
type Outcome uint8

const (
	InProgress Outcome = iota
	PlayerWins
	BotWins
)

func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in_progress"
	case PlayerWins:
		return "player"
	case BotWins:
		return "bot"
	}
	return fmt.Sprintf("outcome(%d)", o)
}
