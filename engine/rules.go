package engine

import (
	"fmt"
	"math"
	"strings"
)

// Difficulty selects the automated opponent's profile.
type Difficulty uint8

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	}
	return fmt.Sprintf("difficulty(%d)", d)
}

// ParseDifficulty accepts "easy", "medium" or "hard" in any case.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, nil
	case "medium", "":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	}
	return DifficultyMedium, fmt.Errorf("unknown difficulty %q", s)
}

// DefaultTicksPerSecond is the tick rate the cadence tables are expressed in.
const DefaultTicksPerSecond = 60

// DefaultInactivitySeconds is the idle time before the centers are refreshed.
const DefaultInactivitySeconds = 2.5

// difficultyProfile holds the bot cadence (in ticks at DefaultTicksPerSecond)
// and whether the bot acts on every cadence tick.
type difficultyProfile struct {
	cadenceTicks uint16
	smart        bool
}

var difficultyProfiles = [...]difficultyProfile{
	DifficultyEasy:   {cadenceTicks: 180, smart: false},
	DifficultyMedium: {cadenceTicks: 90, smart: true},
	DifficultyHard:   {cadenceTicks: 45, smart: true},
}

// Rules holds configurable game settings. All durations are in ticks.
type Rules struct {
	TicksPerSecond  uint16
	BotCadenceTicks uint16  // ticks between bot decisions; lower plays more often
	BotSmart        bool    // if false, the bot skips some cadence ticks
	BotSkipChance   float64 // probability of skipping a cadence tick when !BotSmart
	InactivityTicks uint16  // idle ticks before the centers are refreshed
	FeederSize      uint8   // cards per center feeder
	DrawPileSize    uint8   // cards per draw pile
}

// DefaultRules returns the standard rules at medium difficulty.
func DefaultRules() Rules {
	return RulesFor(DifficultyMedium, DefaultTicksPerSecond)
}

// RulesFor returns default rules for the given difficulty, scaling the
// cadence to ticksPerSecond (0 means DefaultTicksPerSecond).
func RulesFor(d Difficulty, ticksPerSecond uint16) Rules {
	if ticksPerSecond == 0 {
		ticksPerSecond = DefaultTicksPerSecond
	}
	if int(d) >= len(difficultyProfiles) {
		d = DifficultyMedium
	}
	p := difficultyProfiles[d]
	r := Rules{
		TicksPerSecond:  ticksPerSecond,
		BotCadenceTicks: scaleTicks(float64(p.cadenceTicks)/DefaultTicksPerSecond, ticksPerSecond),
		BotSmart:        p.smart,
		BotSkipChance:   0.5,
		FeederSize:      5,
		DrawPileSize:    15,
	}
	r.SetInactivitySeconds(DefaultInactivitySeconds)
	return r
}

// SetInactivitySeconds converts an idle timeout in seconds to ticks.
func (r *Rules) SetInactivitySeconds(seconds float64) {
	r.InactivityTicks = scaleTicks(seconds, r.tickRate())
}

// InactivitySeconds reports the idle timeout in seconds.
func (r *Rules) InactivitySeconds() float64 {
	return float64(r.InactivityTicks) / float64(r.tickRate())
}

func (r *Rules) tickRate() uint16 {
	if r.TicksPerSecond == 0 {
		return DefaultTicksPerSecond
	}
	return r.TicksPerSecond
}

// scaleTicks converts seconds to a tick count, never less than one tick.
func scaleTicks(seconds float64, ticksPerSecond uint16) uint16 {
	n := math.Round(seconds * float64(ticksPerSecond))
	if n < 1 {
		return 1
	}
	if n > math.MaxUint16 {
		return math.MaxUint16
	}
	return uint16(n)
}
