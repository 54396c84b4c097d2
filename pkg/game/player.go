package game

import (
	"time"

	"github.com/google/uuid"
)

// PlayerID uniquely identifies a player within a session.
type PlayerID string

// NewPlayerID returns a fresh random player ID.
func NewPlayerID() PlayerID {
	return PlayerID(uuid.NewString())
}

// Player is one speaker taking part in the game. Players exist only for the
// lifetime of a session; StartOver destroys them.
type Player struct {
	ID        PlayerID  `json:"id"`
	Name      string    `json:"name"`
	Workplace string    `json:"workplace,omitempty"` // display only
	Score     int       `json:"score"`
	JoinedAt  time.Time `json:"joined_at"`
}

// PlayerScore is a player's standing as surfaced in snapshots and the win
// report.
type PlayerScore struct {
	ID    PlayerID `json:"id"`
	Name  string   `json:"name"`
	Score int      `json:"score"`
}
