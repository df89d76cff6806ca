package engine

import (
	"errors"
	"testing"
)

// TestTickStallRefresh: the tick that reaches the inactivity threshold flips
// both feeders onto the centers.
func TestTickStallRefresh(t *testing.T) {
	b := NewGame(42, quietRules())
	b.Rules.InactivityTicks = 150
	b.Deal()
	b.StallTicks = 149
	wantLeft, wantRight := b.Top(PileFeedLeft), b.Top(PileFeedRight)

	r := b.Tick()
	if !r.StallFired || r.StallErr != nil {
		t.Fatalf("report = %+v, want a successful refresh", r)
	}
	if b.CenterTop(SlotLeft) != wantLeft || b.CenterTop(SlotRight) != wantRight {
		t.Errorf("centers = %s/%s, want %s/%s", b.CenterTop(SlotLeft), b.CenterTop(SlotRight), wantLeft, wantRight)
	}
	if b.StallTicks != 0 {
		t.Errorf("StallTicks = %d, want 0", b.StallTicks)
	}
	if b.Len(PileFeedLeft) != 4 || b.Len(PileFeedRight) != 4 {
		t.Error("feeders not drawn down by one")
	}
	mustAudit(t, &b)
}

func TestTickStallCountsUp(t *testing.T) {
	b := NewGame(42, quietRules())
	b.Rules.InactivityTicks = 150
	b.Deal()
	for i := 0; i < 149; i++ {
		if r := b.Tick(); r.StallFired {
			t.Fatalf("refresh fired early on tick %d", i+1)
		}
	}
	if b.StallTicks != 149 {
		t.Errorf("StallTicks = %d, want 149", b.StallTicks)
	}
	if r := b.Tick(); !r.StallFired {
		t.Error("refresh did not fire on tick 150")
	}
}

func TestTickStallWithExhaustedFeeders(t *testing.T) {
	b := NewGame(42, quietRules())
	b.Rules.InactivityTicks = 1
	b.Deal()
	drainPile(&b, PileFeedLeft)
	ranks := b.CenterRank

	r := b.Tick()
	if !r.StallFired || !errors.Is(r.StallErr, ErrCentersExhausted) {
		t.Fatalf("report = %+v, want exhausted refresh", r)
	}
	if b.CenterRank != ranks {
		t.Error("ranks changed on an exhausted refresh")
	}
	if b.StallTicks != 0 {
		t.Errorf("StallTicks = %d, want 0", b.StallTicks)
	}
	mustAudit(t, &b)
}

// TestTickPlayerWins: an empty hand and draw pile ends the game on the next
// tick outside a gesture.
func TestTickPlayerWins(t *testing.T) {
	b := NewGame(42, quietRules())
	b.Deal()
	clearHand(&b, &b.PlayerHand)
	drainPile(&b, PilePlayerDraw)

	r := b.Tick()
	if r.Outcome != PlayerWins || b.CurrentOutcome() != PlayerWins {
		t.Fatalf("outcome = %s, want player", r.Outcome)
	}
	if r.AmbiguousWin {
		t.Error("AmbiguousWin set with the bot still holding cards")
	}
	if !b.IsTerminal() {
		t.Error("board not terminal")
	}
}

func TestTickBotWins(t *testing.T) {
	b := NewGame(42, quietRules())
	b.Deal()
	clearHand(&b, &b.BotHand)
	drainPile(&b, PileBotDraw)

	if r := b.Tick(); r.Outcome != BotWins {
		t.Fatalf("outcome = %s, want bot", r.Outcome)
	}
}

// TestTickSimultaneousFinish: both sides out resolves to the player.
func TestTickSimultaneousFinish(t *testing.T) {
	b := NewGame(42, quietRules())
	b.Deal()
	clearHand(&b, &b.PlayerHand)
	clearHand(&b, &b.BotHand)
	drainPile(&b, PilePlayerDraw)
	drainPile(&b, PileBotDraw)

	r := b.Tick()
	if r.Outcome != PlayerWins || !r.AmbiguousWin {
		t.Errorf("report = %+v, want player win flagged ambiguous", r)
	}
}

// TestTickGestureGating: a drag in progress freezes the stall counter and the
// win check; the bot keeps its cadence.
func TestTickGestureGating(t *testing.T) {
	b := NewGame(42, quietRules())
	b.Rules.BotCadenceTicks = 10
	b.Deal()
	clearHand(&b, &b.PlayerHand)
	drainPile(&b, PilePlayerDraw)
	b.StallTicks = 7
	b.SetGesture(true)

	acted := false
	for i := 0; i < 10; i++ {
		r := b.Tick()
		if r.Outcome != InProgress {
			t.Fatalf("tick %d: outcome %s during a gesture", i, r.Outcome)
		}
		acted = acted || r.BotActed
	}
	if !acted {
		t.Error("bot cadence paused during a gesture")
	}
	if b.StallTicks != 7 && b.StallTicks != 0 {
		t.Errorf("StallTicks = %d, want frozen at 7 or reset by a bot play", b.StallTicks)
	}

	b.SetGesture(false)
	if r := b.Tick(); r.Outcome != PlayerWins {
		t.Errorf("outcome = %s after the gesture ended, want player", r.Outcome)
	}
}

func TestTickTerminalFreezes(t *testing.T) {
	b := NewGame(42, quietRules())
	b.Rules.BotCadenceTicks = 1
	b.Rules.InactivityTicks = 1
	b.Deal()
	clearHand(&b, &b.BotHand)
	drainPile(&b, PileBotDraw)
	b.Tick()
	if b.Outcome != BotWins {
		t.Fatalf("outcome = %s, want bot", b.Outcome)
	}

	before := b.Save()
	for i := 0; i < 5; i++ {
		r := b.Tick()
		if r.Outcome != BotWins || r.BotActed || r.StallFired {
			t.Fatalf("tick after end reported %+v", r)
		}
	}
	if b.Save() != before {
		t.Error("Tick changed a finished board")
	}
}

func TestTickBotCadence(t *testing.T) {
	b := NewGame(42, quietRules())
	b.Rules.BotCadenceTicks = 3
	b.Deal()

	var fired []uint32
	for i := 0; i < 9; i++ {
		if r := b.Tick(); r.BotActed {
			fired = append(fired, b.TickCount)
		}
	}
	want := []uint32{3, 6, 9}
	if len(fired) != len(want) {
		t.Fatalf("bot acted on ticks %v, want %v", fired, want)
	}
	for i := range want {
		if fired[i] != want[i] {
			t.Fatalf("bot acted on ticks %v, want %v", fired, want)
		}
	}
}

// TestTickSimulation drives whole games with a scripted player and checks
// that no card is lost or duplicated at any point.
func TestTickSimulation(t *testing.T) {
	for _, d := range [...]Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard} {
		for seed := uint64(1); seed <= 8; seed++ {
			b := NewGame(seed, RulesFor(d, DefaultTicksPerSecond))
			b.Deal()
			for i := 0; i < 5000 && !b.IsTerminal(); i++ {
				if i%25 == 0 {
					if c, slot, ok := b.SuggestPlayerPlay(); ok {
						b.SetGesture(true)
						b.Tick()
						if err := b.AttemptPlayerPlay(c, slot); err != nil && !errors.Is(err, ErrInvalidMove) && !errors.Is(err, ErrGameOver) {
							t.Fatalf("%s seed %d: play %s: %v", d, seed, c, err)
						}
						b.SetGesture(false)
					}
				}
				if i%40 == 0 {
					b.OnPileTapped(PilePlayerDraw)
				}
				b.Tick()
				if err := b.Audit(); err != nil {
					t.Fatalf("%s seed %d tick %d: %v", d, seed, b.TickCount, err)
				}
				for _, s := range [...]CenterSlot{SlotLeft, SlotRight} {
					if top := b.CenterTop(s); top != EmptyCard && top.Rank() != b.CenterRank[s] {
						t.Fatalf("%s seed %d: center %s rank %d, top %s", d, seed, s, b.CenterRank[s], top)
					}
				}
			}
		}
	}
}
