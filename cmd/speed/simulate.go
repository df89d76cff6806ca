package main

import (
	"context"
	"time"

	"github.com/jason-s-yu/speed/engine"
	"github.com/jason-s-yu/speed/internal/game"
	"github.com/sirupsen/logrus"
)

const (
	simPlayEvery = 20 // ticks between scripted player plays
	simDrawEvery = 30 // ticks between scripted refills
	simMaxTicks  = 60 * 60 * 5
)

// simResult tallies a batch of headless games.
type simResult struct {
	Games      int
	PlayerWins int
	BotWins    int
	Stuck      int // still in progress at simMaxTicks
	Ticks      uint64
	Elapsed    time.Duration
}

// simulate plays games back to back, each driven tick by tick without a
// wall clock. A scripted player plays the first legal card on a fixed
// cadence and taps its draw pile to refill.
func simulate(ctx context.Context, settings game.Settings, games int) simResult {
	start := time.Now()
	base := settings.Seed
	if base == 0 {
		base = uint64(start.UnixNano())
	}

	var res simResult
	for i := 0; i < games; i++ {
		if ctx.Err() != nil {
			break
		}
		s := settings
		s.Seed = base + uint64(i)
		g := game.NewSpeedGame(s)
		g.Start()

		over := false
		for tick := 1; tick <= simMaxTicks && !over; tick++ {
			if tick%simPlayEvery == 0 {
				if in, ok := g.SuggestIntent(); ok {
					_ = g.HandleIntent(in)
				}
			}
			if tick%simDrawEvery == 0 {
				_ = g.HandleIntent(game.Intent{Type: game.IntentTapPile, Pile: engine.PilePlayerDraw.String()})
			}
			over = g.Step()
		}

		res.Games++
		res.Ticks += uint64(g.Engine.TickCount)
		switch g.Engine.CurrentOutcome() {
		case engine.PlayerWins:
			res.PlayerWins++
		case engine.BotWins:
			res.BotWins++
		default:
			res.Stuck++
		}
		if err := g.Engine.Audit(); err != nil {
			logrus.WithError(err).WithField("seed", s.Seed).Error("card audit failed")
		}
	}
	res.Elapsed = time.Since(start)
	return res
}

func (r simResult) log() {
	logrus.WithFields(logrus.Fields{
		"games":       r.Games,
		"player_wins": r.PlayerWins,
		"bot_wins":    r.BotWins,
		"stuck":       r.Stuck,
		"avg_ticks":   r.avgTicks(),
		"elapsed":     r.Elapsed.Round(time.Millisecond),
	}).Info("simulation finished")
}

func (r simResult) avgTicks() uint64 {
	if r.Games == 0 {
		return 0
	}
	return r.Ticks / uint64(r.Games)
}
