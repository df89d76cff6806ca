// internal/game/game.go
package game

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	engine "github.com/jason-s-yu/speed/engine"
	"github.com/sirupsen/logrus"
)

// OnGameEndFunc defines the signature for a callback function executed when a game ends.
type OnGameEndFunc func(gameID uuid.UUID, outcome engine.Outcome)

// GameEventType represents the type of a game-related event broadcast to the UI.
type GameEventType string

// Constants defining the GameEvent types sent to the UI client.
const (
	EventPlayerPlayAccepted GameEventType = "player_play_accepted" // Player's card landed on a center.
	EventPlayerPlayRejected GameEventType = "player_play_rejected" // Play refused; UI returns the card to its slot.
	EventCentersFlipped     GameEventType = "centers_flipped"      // Both feeders turned a card onto the centers.
	EventCentersExhausted   GameEventType = "centers_exhausted"    // Feeders are gone; no more refreshes.
	EventPlayerDrew         GameEventType = "player_drew"          // A card moved from the player's draw pile into the hand.
	EventBotPlayed          GameEventType = "bot_played"
	EventBotDrew            GameEventType = "bot_drew"
	EventPileEmpty          GameEventType = "pile_empty" // A face-down pile lost its back marker.
	EventSyncState          GameEventType = "sync_state"
	EventGameEnd            GameEventType = "game_end"
)

// EventCard identifies a card within a GameEvent payload.
type EventCard struct {
	ID   uuid.UUID `json:"id"`
	Rank string    `json:"rank,omitempty"`
	Suit string    `json:"suit,omitempty"`
	Idx  *int      `json:"idx,omitempty"` // Hand slot, if relevant.
}

// GameEvent is the standard structure for broadcasting game state changes and actions.
type GameEvent struct {
	Type   GameEventType `json:"type"`
	Card   *EventCard    `json:"card,omitempty"`  // Primary card involved.
	Card1  *EventCard    `json:"card1,omitempty"` // Left center after a flip.
	Card2  *EventCard    `json:"card2,omitempty"` // Right center after a flip.
	Slot   string        `json:"slot,omitempty"`  // "left" or "right".
	Pile   string        `json:"pile,omitempty"`
	Reason string        `json:"reason,omitempty"`

	Payload map[string]interface{} `json:"payload,omitempty"` // Additional arbitrary data.

	State *ObfBoardState `json:"state,omitempty"` // Full board state for sync events.
}

// Settings are the per-session knobs the UI or the environment can choose.
type Settings struct {
	Difficulty        engine.Difficulty
	InactivitySeconds float64
	FeederSize        int
	DrawPileSize      int
	TickRate          int
	BotSkipChance     float64
	Seed              uint64 // 0 picks a time-based seed
}

// DefaultSettings returns medium difficulty with the standard pile sizes.
func DefaultSettings() Settings {
	return Settings{
		Difficulty:        engine.DifficultyMedium,
		InactivitySeconds: engine.DefaultInactivitySeconds,
		FeederSize:        5,
		DrawPileSize:      15,
		TickRate:          engine.DefaultTicksPerSecond,
		BotSkipChance:     0.5,
	}
}

// SpeedGame represents the state and logic for a single session of Speed
// between the local player and the automated opponent.
type SpeedGame struct {
	ID       uuid.UUID
	Settings Settings

	// Authoritative game state.
	Engine      engine.Board
	CardTracker CardUUIDTracker
	Seed        uint64

	Started  bool
	GameOver bool

	exhaustedSent bool // centers_exhausted is reported once
	Mu            sync.Mutex

	// Communication Callbacks
	BroadcastFn func(ev GameEvent) // Sends an event to the UI client.
	OnGameEnd   OnGameEndFunc

	log *logrus.Entry
}

// NewSpeedGame creates a new session. The board is dealt by Start.
func NewSpeedGame(settings Settings) *SpeedGame {
	id, _ := uuid.NewRandom()
	return &SpeedGame{
		ID:       id,
		Settings: settings,
		log:      logrus.WithField("game_id", id),
	}
}

// Start deals the board and sends the initial state to the client.
func (g *SpeedGame) Start() {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	if g.Started {
		g.log.Warn("Start called on a game that already started")
		return
	}
	g.Seed = g.Settings.Seed
	if g.Seed == 0 {
		g.Seed = uint64(time.Now().UnixNano())
	}
	rules := g.mapSettingsToEngine()
	g.Engine = engine.NewGame(g.Seed, rules)
	g.Engine.Deal()
	g.CardTracker = newCardUUIDTracker()
	g.Started = true

	g.log.WithFields(logrus.Fields{
		"seed":        g.Seed,
		"difficulty":  g.Settings.Difficulty.String(),
		"cadence":     rules.BotCadenceTicks,
		"inactivity":  rules.InactivityTicks,
		"tick_rate":   rules.TicksPerSecond,
		"skip_chance": rules.BotSkipChance,
	}).Info("game started")

	g.fireSyncState()
}

// TickInterval is the wall-clock length of one engine tick.
func (g *SpeedGame) TickInterval() time.Duration {
	tps := g.Engine.Rules.TicksPerSecond
	if tps == 0 {
		tps = engine.DefaultTicksPerSecond
	}
	return time.Second / time.Duration(tps)
}

// Run drives the engine clock until the context is cancelled or the game ends.
// Start must have been called.
func (g *SpeedGame) Run(ctx context.Context) error {
	ticker := time.NewTicker(g.TickInterval())
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if over := g.Step(); over {
				return nil
			}
		}
	}
}

// Step advances the game by one tick and reports whether it is over.
func (g *SpeedGame) Step() bool {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	if !g.Started || g.GameOver {
		return g.GameOver
	}
	markers := g.Engine.Markers
	report := g.Engine.Tick()

	if report.BotActed {
		g.emitBotDecision(report.Bot)
	}
	if report.StallFired {
		g.log.WithField("tick", g.Engine.TickCount).Debug("inactivity timeout")
		g.emitFlip(report.StallErr)
	}
	g.emitMarkerChanges(markers)

	if report.Outcome != engine.InProgress {
		if report.AmbiguousWin {
			g.log.Warn("both sides finished on the same tick; awarding the player")
		}
		g.endGame(report.Outcome, report.AmbiguousWin)
	}
	return g.GameOver
}

// endGame marks the game as finished and notifies the client.
// Assumes lock is held by caller.
func (g *SpeedGame) endGame(outcome engine.Outcome, ambiguous bool) {
	if g.GameOver {
		return
	}
	g.GameOver = true
	g.log.WithFields(logrus.Fields{
		"outcome": outcome.String(),
		"ticks":   g.Engine.TickCount,
	}).Info("game over")

	g.fireEvent(GameEvent{
		Type: EventGameEnd,
		Payload: map[string]interface{}{
			"winner":    outcome.String(),
			"ambiguous": ambiguous,
			"ticks":     g.Engine.TickCount,
		},
	})
	if g.OnGameEnd != nil {
		g.OnGameEnd(g.ID, outcome)
	}
}

// emitBotDecision reports what the automated opponent did.
// Assumes lock is held by caller.
func (g *SpeedGame) emitBotDecision(d engine.BotDecision) {
	switch d.Kind {
	case engine.BotPlayed:
		g.fireEvent(GameEvent{
			Type: EventBotPlayed,
			Card: g.eventCard(d.Card, d.HandIdx),
			Slot: d.Target.String(),
		})
		if d.Refill != engine.EmptyCard {
			g.fireEvent(GameEvent{Type: EventBotDrew, Card: g.eventCard(d.Refill, d.HandIdx)})
		}
	case engine.BotDrew:
		g.fireEvent(GameEvent{Type: EventBotDrew, Card: g.eventCard(d.Card, d.HandIdx)})
	default:
		g.log.WithField("decision", d.Kind.String()).Trace("bot did not act")
	}
}

// emitFlip reports the result of a center refresh.
// Assumes lock is held by caller.
func (g *SpeedGame) emitFlip(err error) {
	if err != nil {
		if g.exhaustedSent {
			return
		}
		g.exhaustedSent = true
		g.fireEvent(GameEvent{Type: EventCentersExhausted, Reason: err.Error()})
		return
	}
	g.fireEvent(GameEvent{
		Type:  EventCentersFlipped,
		Card1: g.eventCard(g.Engine.CenterTop(engine.SlotLeft), -1),
		Card2: g.eventCard(g.Engine.CenterTop(engine.SlotRight), -1),
	})
}

// emitMarkerChanges sends pile_empty for every back marker cleared since
// before was captured.
// Assumes lock is held by caller.
func (g *SpeedGame) emitMarkerChanges(before [engine.NumPiles]bool) {
	for id := range before {
		if before[id] && !g.Engine.Markers[id] {
			g.fireEvent(GameEvent{Type: EventPileEmpty, Pile: engine.PileID(id).String()})
		}
	}
}

// fireSyncState sends the full board state.
// Assumes lock is held by caller.
func (g *SpeedGame) fireSyncState() {
	state := g.GetCurrentBoardState()
	g.fireEvent(GameEvent{Type: EventSyncState, State: &state})
}

// fireEvent broadcasts an event via the BroadcastFn callback.
// Assumes lock is held by caller.
func (g *SpeedGame) fireEvent(ev GameEvent) {
	if g.BroadcastFn != nil {
		g.BroadcastFn(ev)
	} else {
		g.log.WithField("type", ev.Type).Debug("BroadcastFn is nil, dropping event")
	}
}
