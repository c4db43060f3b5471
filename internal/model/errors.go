package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound     = errors.New("player not found")
	ErrInvalidSeat        = errors.New("seat must be between 1 and 4")
	ErrInvalidPlayerCount = errors.New("a game needs exactly 4 players")

	// Scoring errors
	ErrPointsUnavailable = errors.New("points are not available this round")

	// Settings errors
	ErrInvalidMoonRule    = errors.New("invalid moon rule")
	ErrInvalidAccentColor = errors.New("invalid accent color")

	// Storage errors
	ErrKeyNotFound = errors.New("key not found")
)
