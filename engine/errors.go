package engine

import "errors"

// Errors reported by the turn handlers. None of them is fatal: the board is
// left consistent and the caller decides how to present the rejection.
var (
	ErrInvalidMove      = errors.New("card is not adjacent to the center rank")
	ErrPileEmpty        = errors.New("pile is empty")
	ErrCentersExhausted = errors.New("center feeders are exhausted")
	ErrGameOver         = errors.New("game is already over")
	ErrCardNotInHand    = errors.New("card is not in the player's hand")
	ErrHandFull         = errors.New("hand has no empty slot")
	ErrInvalidSlot      = errors.New("invalid slot")
)
