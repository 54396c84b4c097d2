package game

// BoardSize is the number of cells on the grid (3x3).
const BoardSize = 9

// BoardWord is one cell of the bingo grid. Cell numbering (1..9, row-major)
// is display-only and has no effect on scoring.
type BoardWord struct {
	Cell   int    `json:"cell"`
	Word   string `json:"word"`
	Points int    `json:"points"`
	Used   bool   `json:"used"`
}

// Snapshot is the display-facing view of a session: the grid and the
// scoreboard, but never player-to-word attribution.
type Snapshot struct {
	SessionID string        `json:"session_id"`
	Phase     Phase         `json:"phase"`
	Board     []BoardWord   `json:"board,omitempty"`
	Players   []PlayerScore `json:"players"`
	Rounds    int           `json:"rounds"`
}
