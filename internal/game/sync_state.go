// internal/game/sync_state.go
package game

import (
	"github.com/google/uuid"
	engine "github.com/jason-s-yu/speed/engine"
)

// ObfCard represents a card's state for client synchronization. Face-down
// cards are never sent, so every ObfCard is known.
type ObfCard struct {
	ID   uuid.UUID `json:"id"`
	Rank string    `json:"rank"`
	Suit string    `json:"suit"`
	Idx  *int      `json:"idx,omitempty"` // Hand slot, if relevant.
}

// ObfPile is the presentable state of one pile. Top is only set for face-up piles.
type ObfPile struct {
	Pile     string   `json:"pile"`
	Size     int      `json:"size"`
	FaceDown bool     `json:"faceDown"`
	Marker   bool     `json:"marker"`
	Top      *ObfCard `json:"top,omitempty"`
}

// ObfBoardState represents the board as the UI client is allowed to see it.
type ObfBoardState struct {
	GameID     uuid.UUID  `json:"gameId"`
	Difficulty string     `json:"difficulty"`
	Started    bool       `json:"started"`
	GameOver   bool       `json:"gameOver"`
	Outcome    string     `json:"outcome"`
	Tick       uint32     `json:"tick"`
	Centers    [2]ObfPile `json:"centers"`
	Feeders    [2]ObfPile `json:"feeders"`
	PlayerDraw ObfPile    `json:"playerDraw"`
	BotDraw    ObfPile    `json:"botDraw"`
	Retired    int        `json:"retired"`

	// Empty slots are null so the UI keeps slot positions stable.
	PlayerHand []*ObfCard `json:"playerHand"`
	BotHand    []*ObfCard `json:"botHand"`

	StallTicks      int  `json:"stallTicks"`
	InactivityTicks int  `json:"inactivityTicks"`
	GestureActive   bool `json:"gestureActive"`
}

// GetCurrentBoardState generates a snapshot of the board for the client.
// Reads from engine state as the authoritative source.
// This function assumes the game lock is HELD by the caller.
func (g *SpeedGame) GetCurrentBoardState() ObfBoardState {
	v := g.Engine.Snapshot()
	obf := ObfBoardState{
		GameID:          g.ID,
		Difficulty:      g.Settings.Difficulty.String(),
		Started:         g.Started,
		GameOver:        g.GameOver || g.Engine.IsTerminal(),
		Outcome:         v.Outcome.String(),
		Tick:            g.Engine.TickCount,
		PlayerDraw:      g.obfPile(engine.PilePlayerDraw, v.PlayerDraw),
		BotDraw:         g.obfPile(engine.PileBotDraw, v.BotDraw),
		Retired:         v.Retired,
		PlayerHand:      g.obfHand(&v.PlayerHand),
		BotHand:         g.obfHand(&v.BotHand),
		StallTicks:      int(v.StallTicks),
		InactivityTicks: int(g.Engine.Rules.InactivityTicks),
		GestureActive:   v.GestureActive,
	}
	for _, s := range [...]engine.CenterSlot{engine.SlotLeft, engine.SlotRight} {
		obf.Centers[s] = g.obfPile(s.Pile(), v.Centers[s])
		obf.Feeders[s] = g.obfPile(s.Feeder(), v.Feeders[s])
	}
	return obf
}

func (g *SpeedGame) obfPile(id engine.PileID, pv engine.PileView) ObfPile {
	p := ObfPile{
		Pile:     id.String(),
		Size:     pv.Len,
		FaceDown: pv.FaceDown,
		Marker:   pv.MarkerVisible,
	}
	if pv.Top != engine.EmptyCard {
		p.Top = g.obfCard(pv.Top, -1)
	}
	return p
}

func (g *SpeedGame) obfHand(hand *[engine.HandSize]engine.Card) []*ObfCard {
	out := make([]*ObfCard, engine.HandSize)
	for i, c := range hand {
		if c != engine.EmptyCard {
			out[i] = g.obfCard(c, i)
		}
	}
	return out
}

func (g *SpeedGame) obfCard(c engine.Card, idx int) *ObfCard {
	oc := &ObfCard{
		ID:   g.CardTracker.ID(c),
		Rank: engineRankToString(c.Rank()),
		Suit: engineSuitToString(c.Suit()),
	}
	if idx >= 0 {
		oc.Idx = &idx
	}
	return oc
}
