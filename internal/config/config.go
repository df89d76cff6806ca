// Package config loads process settings from the environment, after an
// optional .env file.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/jason-s-yu/speed/engine"
	"github.com/jason-s-yu/speed/internal/game"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config is everything the binary needs to run a session.
type Config struct {
	Addr     string
	LogLevel logrus.Level
	Game     game.Settings
}

// Load reads .env (if present) and then the SPEED_* variables.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a getenv function. Malformed values fall back
// to their defaults with a warning.
func FromEnv(getenv func(string) string) Config {
	cfg := Config{
		Addr:     getenvDef(getenv, "SPEED_ADDR", ":8080"),
		LogLevel: logrus.InfoLevel,
		Game:     game.DefaultSettings(),
	}

	if v := getenv("SPEED_LOG_LEVEL"); v != "" {
		lvl, err := logrus.ParseLevel(v)
		if err != nil {
			logrus.WithError(err).Warn("SPEED_LOG_LEVEL ignored")
		} else {
			cfg.LogLevel = lvl
		}
	}
	if v := getenv("SPEED_DIFFICULTY"); v != "" {
		d, err := engine.ParseDifficulty(v)
		if err != nil {
			logrus.WithError(err).Warn("SPEED_DIFFICULTY ignored")
		} else {
			cfg.Game.Difficulty = d
		}
	}

	g := &cfg.Game
	g.InactivitySeconds = floatDef(getenv("SPEED_INACTIVITY_SECONDS"), g.InactivitySeconds)
	g.FeederSize = atoiDef(getenv("SPEED_FEEDER_SIZE"), g.FeederSize)
	g.DrawPileSize = atoiDef(getenv("SPEED_DRAW_PILE_SIZE"), g.DrawPileSize)
	g.TickRate = atoiDef(getenv("SPEED_TICK_RATE"), g.TickRate)
	g.BotSkipChance = floatDef(getenv("SPEED_BOT_SKIP_CHANCE"), g.BotSkipChance)
	if v := getenv("SPEED_SEED"); v != "" {
		seed, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
		if err != nil {
			logrus.WithError(err).Warn("SPEED_SEED ignored")
		} else {
			g.Seed = seed
		}
	}
	return cfg
}

func getenvDef(getenv func(string) string, k, def string) string {
	if v := getenv(k); v != "" {
		return v
	}
	return def
}

func atoiDef(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}

func floatDef(s string, def float64) float64 {
	if s == "" {
		return def
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return def
	}
	return f
}
