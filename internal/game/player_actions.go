// internal/game/player_actions.go
package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	engine "github.com/jason-s-yu/speed/engine"
	"github.com/sirupsen/logrus"
)

// IntentType names a UI gesture forwarded to the game.
type IntentType string

const (
	IntentGestureBegin IntentType = "gesture_begin" // Player picked up a card.
	IntentGestureEnd   IntentType = "gesture_end"   // Drag abandoned without a drop.
	IntentPlayCard     IntentType = "play_card"     // Card dropped on a center slot.
	IntentTapPile      IntentType = "tap_pile"
	IntentSync         IntentType = "sync"
)

// Intent is one message from the UI client.
type Intent struct {
	Type   IntentType `json:"type"`
	CardID uuid.UUID  `json:"cardId,omitempty"`
	Slot   string     `json:"slot,omitempty"` // "left" or "right"
	Pile   string     `json:"pile,omitempty"`
}

var (
	ErrUnknownCard   = errors.New("unknown card id")
	ErrUnknownIntent = errors.New("unknown intent")
	ErrNotStarted    = errors.New("game has not started")
)

// HandleIntent applies one UI intent under the game lock. Rejected plays are
// reported to the client as player_play_rejected and returned as errors; the
// connection stays usable either way.
func (g *SpeedGame) HandleIntent(in Intent) error {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	if !g.Started {
		return ErrNotStarted
	}
	if in.Type == IntentSync {
		g.fireSyncState()
		return nil
	}
	if g.GameOver || g.Engine.IsTerminal() {
		return engine.ErrGameOver
	}

	switch in.Type {
	case IntentGestureBegin:
		g.Engine.SetGesture(true)
		return nil
	case IntentGestureEnd:
		g.Engine.SetGesture(false)
		return nil
	case IntentPlayCard:
		g.Engine.SetGesture(false)
		return g.playCard(in)
	case IntentTapPile:
		return g.tapPile(in)
	}
	g.log.WithField("type", in.Type).Warn("unknown intent")
	return fmt.Errorf("%w %q", ErrUnknownIntent, in.Type)
}

// playCard resolves the card handle and target slot, then asks the engine.
// Assumes lock is held by caller.
func (g *SpeedGame) playCard(in Intent) error {
	card, ok := g.CardTracker.Card(in.CardID)
	if !ok {
		return g.rejectPlay(nil, in.Slot, fmt.Errorf("%w %s", ErrUnknownCard, in.CardID))
	}
	idx := handIndex(&g.Engine.PlayerHand, card)

	slot, ok := parseSlot(in.Slot)
	if !ok {
		return g.rejectPlay(g.eventCard(card, idx), in.Slot, fmt.Errorf("%w %q", engine.ErrInvalidSlot, in.Slot))
	}

	markers := g.Engine.Markers
	if err := g.Engine.AttemptPlayerPlay(card, slot); err != nil {
		return g.rejectPlay(g.eventCard(card, idx), in.Slot, err)
	}

	g.log.WithFields(logrus.Fields{"card": card.String(), "slot": slot.String()}).Debug("player play accepted")
	g.fireEvent(GameEvent{
		Type: EventPlayerPlayAccepted,
		Card: g.eventCard(card, idx),
		Slot: slot.String(),
	})
	g.emitMarkerChanges(markers)
	return nil
}

// rejectPlay tells the client to return the card to its slot.
// Assumes lock is held by caller.
func (g *SpeedGame) rejectPlay(card *EventCard, slot string, err error) error {
	g.log.WithError(err).Debug("player play rejected")
	g.fireEvent(GameEvent{
		Type:   EventPlayerPlayRejected,
		Card:   card,
		Slot:   slot,
		Reason: err.Error(),
	})
	return err
}

// tapPile routes a click on a face-down pile through the engine and reports
// what changed.
// Assumes lock is held by caller.
func (g *SpeedGame) tapPile(in Intent) error {
	id, ok := engine.ParsePileID(in.Pile)
	if !ok {
		return fmt.Errorf("%w: pile %q", ErrUnknownIntent, in.Pile)
	}
	markers := g.Engine.Markers
	hand := g.Engine.PlayerHand

	err := g.Engine.OnPileTapped(id)
	switch id {
	case engine.PileFeedLeft, engine.PileFeedRight:
		g.emitFlip(err)
	case engine.PilePlayerDraw:
		for i, c := range g.Engine.PlayerHand {
			if hand[i] == engine.EmptyCard && c != engine.EmptyCard {
				g.fireEvent(GameEvent{Type: EventPlayerDrew, Card: g.eventCard(c, i)})
			}
		}
	}
	g.emitMarkerChanges(markers)

	if errors.Is(err, engine.ErrCentersExhausted) || errors.Is(err, engine.ErrPileEmpty) {
		g.log.WithField("pile", id.String()).WithError(err).Debug("tap on a spent pile")
	}
	return err
}

// SuggestIntent returns a play_card intent for the first legal card in the
// player's hand, as a hint or for a scripted stand-in player.
func (g *SpeedGame) SuggestIntent() (Intent, bool) {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	c, slot, ok := g.Engine.SuggestPlayerPlay()
	if !ok || !g.Started || g.GameOver {
		return Intent{}, false
	}
	return Intent{Type: IntentPlayCard, CardID: g.CardTracker.ID(c), Slot: slot.String()}, true
}

func parseSlot(s string) (engine.CenterSlot, bool) {
	switch s {
	case "left":
		return engine.SlotLeft, true
	case "right":
		return engine.SlotRight, true
	}
	return engine.SlotLeft, false
}

func handIndex(hand *[engine.HandSize]engine.Card, c engine.Card) int {
	for i, h := range hand {
		if h == c {
			return i
		}
	}
	return -1
}
