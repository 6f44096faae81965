package domain

import "errors"

var (
	ErrPlayerUnknown   = errors.New("player not tracked")
	ErrSessionNotFound = errors.New("session not found")
)
