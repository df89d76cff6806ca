package engine

// TickReport summarizes what happened during one Tick.
type TickReport struct {
	BotActed bool        // a bot cadence tick fired
	Bot      BotDecision // valid when BotActed

	StallFired bool  // the inactivity threshold was reached
	StallErr   error // result of the forced FlipNewCenters (nil, ErrCentersExhausted)

	Outcome      Outcome
	AmbiguousWin bool // both win conditions held; resolved in the player's favour
}

// SetGesture marks whether the player is in the middle of a drag. While a
// gesture is active the stall counter does not advance and no winner is
// evaluated.
func (b *Board) SetGesture(active bool) { b.GestureActive = active }

// Tick advances the game by one fixed time unit: the bot cadence, the stall
// counter and, outside a gesture, the win evaluation. After a terminal
// outcome Tick changes nothing.
func (b *Board) Tick() TickReport {
	var r TickReport
	if b.IsTerminal() {
		r.Outcome = b.Outcome
		return r
	}
	b.TickCount++

	b.BotTicks++
	if b.BotTicks >= b.Rules.BotCadenceTicks {
		r.BotActed = true
		r.Bot = b.BotTurn()
		b.BotTicks = 0
	}

	if !b.GestureActive {
		b.StallTicks++
	}
	if b.StallTicks >= b.Rules.InactivityTicks {
		r.StallFired = true
		r.StallErr = b.FlipNewCenters()
		b.StallTicks = 0
	}

	if !b.GestureActive {
		r.Outcome, r.AmbiguousWin = b.evaluateWinner()
		b.Outcome = r.Outcome
	}
	return r
}
