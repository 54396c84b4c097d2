package game

import "errors"

// Structured failures returned by session operations. All of them are local,
// recoverable conditions: the conversational agent is expected to handle them
// by re-prompting the speakers, not by crashing.
//
// Note that repeating word_spoken for an already-used word is NOT an error;
// it is a silent no-op so the agent can safely forget board state.
var (
	// ErrInvalidPhase means the operation is not allowed in the session's
	// current phase.
	ErrInvalidPhase = errors.New("game: operation not valid in current phase")

	// ErrDuplicatePlayer means a player with that name already joined.
	ErrDuplicatePlayer = errors.New("game: player name already taken")

	// ErrNoPlayers means the board cannot be drawn before anyone joins.
	ErrNoPlayers = errors.New("game: at least one player required")

	// ErrInsufficientPool means the word pool is too small to fill the board.
	ErrInsufficientPool = errors.New("game: word pool too small for board")

	// ErrUnknownPlayer means the player reference does not match anyone in
	// the session.
	ErrUnknownPlayer = errors.New("game: no such player")

	// ErrUnknownWord means the word is not one of the 9 board words.
	ErrUnknownWord = errors.New("game: word is not on the board")
)
