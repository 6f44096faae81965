package domain

// Player is a tracked identity. ID is the stable key sessions are recorded
// under; DisplayName is a human label captured onto sessions when they open.
type Player struct {
	ID          string
	DisplayName string
}
