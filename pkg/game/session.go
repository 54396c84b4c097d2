package game

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// WinningScore ends the game immediately when any player reaches it.
const WinningScore = 10

// Phase is the lifecycle stage of a session.
type Phase string

const (
	// PhaseSetup collects players.
	PhaseSetup Phase = "SETUP"

	// PhaseWordSelection is the transient stage while the board is drawn.
	PhaseWordSelection Phase = "WORD_SELECTION"

	// PhasePlaying accepts word-spoken events.
	PhasePlaying Phase = "PLAYING"

	// PhaseComplete means the winners have been decided.
	PhaseComplete Phase = "COMPLETE"
)

// Notifier receives board-facing updates. Implementations render the grid
// and scoreboard on screen; they are never told which player used which word.
type Notifier interface {
	// BoardChanged is called with a fresh snapshot whenever the visible
	// state changes: board drawn, a used flag flipped, or the game reset.
	BoardChanged(Snapshot)

	// GameOver is called once when the session reaches COMPLETE.
	GameOver(WinReport)
}

// WinReport is the read-only adjudication result. The conversational agent
// narrates it; the engine never produces prose.
type WinReport struct {
	// Winners lists the winning player IDs in join order. A single entry
	// means someone reached WinningScore; multiple entries mean the board
	// was exhausted with a score tie, and all tied players are co-winners.
	Winners []PlayerID `json:"winners"`

	// FinalScores lists every player's standing in join order.
	FinalScores []PlayerScore `json:"final_scores"`
}

// Outcome reports the effect of a single WordSpoken call.
type Outcome struct {
	// AlreadyUsed is set when the word had been marked before this call.
	// Nothing changed; repeated calls are a safe no-op.
	AlreadyUsed bool `json:"already_used,omitempty"`

	// PointsAwarded is zero for out-of-context or already-used words.
	PointsAwarded int `json:"points_awarded"`

	// Score is the speaking player's updated total.
	Score int `json:"score"`

	// Report is set when this call ended the game.
	Report *WinReport `json:"report,omitempty"`
}

// Session owns the full state of one game: players, board, scores, and
// phase. All methods are safe for concurrent use, though the expected caller
// is a single sequential agent turn-loop. Sessions share nothing but the
// read-only pool.
type Session struct {
	id     string
	pool   *Pool
	notify Notifier

	mu      sync.Mutex
	rng     *rand.Rand
	phase   Phase
	players []*Player
	board   []BoardWord
	rounds  int
	winners []PlayerID
}

// Option configures a session at creation time.
type Option func(*Session)

// WithRand sets the random source used for board draws. Inject a seeded
// source to make draws deterministic in tests.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) {
		s.rng = rng
	}
}

// WithNotifier attaches a board display notifier.
func WithNotifier(n Notifier) Option {
	return func(s *Session) {
		s.notify = n
	}
}

// NewSession creates an empty session in SETUP.
func NewSession(pool *Pool, opts ...Option) *Session {
	s := &Session{
		id:    uuid.NewString(),
		pool:  pool,
		phase: PhaseSetup,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Phase returns the current lifecycle stage.
func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// AddPlayer registers a new player. Valid only during SETUP; names must be
// unique within the session (case-insensitive).
func (s *Session) AddPlayer(name, workplace string) (PlayerID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseSetup {
		return "", fmt.Errorf("add player during %s: %w", s.phase, ErrInvalidPhase)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("game: player name required")
	}
	for _, p := range s.players {
		if strings.EqualFold(p.Name, name) {
			return "", fmt.Errorf("player %q: %w", name, ErrDuplicatePlayer)
		}
	}

	p := &Player{
		ID:        NewPlayerID(),
		Name:      name,
		Workplace: strings.TrimSpace(workplace),
		JoinedAt:  time.Now(),
	}
	s.players = append(s.players, p)
	return p.ID, nil
}

// DrawBoard draws 9 distinct words uniformly at random from the pool and
// moves the session through WORD_SELECTION into PLAYING. Valid only during
// SETUP with at least one player. The board goes to the display notifier;
// word identities are never part of any value returned toward the agent's
// narration channel.
func (s *Session) DrawBoard() error {
	s.mu.Lock()

	if s.phase != PhaseSetup {
		s.mu.Unlock()
		return fmt.Errorf("draw board during %s: %w", s.phase, ErrInvalidPhase)
	}
	if len(s.players) == 0 {
		s.mu.Unlock()
		return ErrNoPlayers
	}
	if s.pool.Len() < BoardSize {
		s.mu.Unlock()
		return fmt.Errorf("pool has %d words, need %d: %w", s.pool.Len(), BoardSize, ErrInsufficientPool)
	}

	s.phase = PhaseWordSelection
	s.board = lo.Map(s.pool.draw(s.rng, BoardSize), func(e WordEntry, i int) BoardWord {
		return BoardWord{Cell: i + 1, Word: e.Word, Points: e.Points}
	})
	s.phase = PhasePlaying

	snap := s.snapshotLocked()
	s.mu.Unlock()

	if s.notify != nil {
		s.notify.BoardChanged(snap)
	}
	return nil
}

// WordSpoken records that a player said a board word. Valid only during
// PLAYING. The word is marked used either way; points are awarded only when
// inContext is true (organic conversational use, as adjudicated upstream).
// Calling it again for an already-used word is a no-op success so the agent
// can safely replay events.
func (s *Session) WordSpoken(playerID PlayerID, word string, inContext bool) (Outcome, error) {
	s.mu.Lock()

	if s.phase != PhasePlaying {
		s.mu.Unlock()
		return Outcome{}, fmt.Errorf("word spoken during %s: %w", s.phase, ErrInvalidPhase)
	}

	player, ok := lo.Find(s.players, func(p *Player) bool { return p.ID == playerID })
	if !ok {
		s.mu.Unlock()
		return Outcome{}, fmt.Errorf("player %s: %w", playerID, ErrUnknownPlayer)
	}

	idx := -1
	for i := range s.board {
		if strings.EqualFold(s.board[i].Word, strings.TrimSpace(word)) {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return Outcome{}, fmt.Errorf("word %q: %w", word, ErrUnknownWord)
	}

	cell := &s.board[idx]
	if cell.Used {
		out := Outcome{AlreadyUsed: true, Score: player.Score}
		s.mu.Unlock()
		return out, nil
	}

	cell.Used = true
	awarded := 0
	if inContext {
		awarded = cell.Points
		player.Score += awarded
	}

	report := s.checkWinLocked(player)
	out := Outcome{PointsAwarded: awarded, Score: player.Score, Report: report}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	if s.notify != nil {
		s.notify.BoardChanged(snap)
		if report != nil {
			s.notify.GameOver(*report)
		}
	}
	return out, nil
}

// NoWordSpoken records a conversational turn in which no board word came
// up. Valid only during PLAYING. It bumps the round counter and never
// triggers a phase transition.
func (s *Session) NoWordSpoken() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhasePlaying {
		return fmt.Errorf("no word spoken during %s: %w", s.phase, ErrInvalidPhase)
	}
	s.rounds++
	return nil
}

// StartOver resets a finished game to SETUP, destroying the players and the
// board. The configured pool and random source survive. Valid only during
// COMPLETE.
func (s *Session) StartOver() error {
	s.mu.Lock()

	if s.phase != PhaseComplete {
		s.mu.Unlock()
		return fmt.Errorf("start over during %s: %w", s.phase, ErrInvalidPhase)
	}

	s.phase = PhaseSetup
	s.players = nil
	s.board = nil
	s.rounds = 0
	s.winners = nil

	snap := s.snapshotLocked()
	s.mu.Unlock()

	if s.notify != nil {
		s.notify.BoardChanged(snap)
	}
	return nil
}

// Report returns the win report. Valid only once the session is COMPLETE.
func (s *Session) Report() (*WinReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseComplete {
		return nil, fmt.Errorf("report during %s: %w", s.phase, ErrInvalidPhase)
	}
	r := s.reportLocked()
	return &r, nil
}

// Snapshot returns the display-facing view of the session.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Rounds returns how many turns passed without a board word.
func (s *Session) Rounds() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rounds
}

// checkWinLocked applies the win conditions after a scoring event and, when
// one is met, moves the session to COMPLETE and returns the report.
//
// A player reaching WinningScore wins alone, even with words left on the
// board. An exhausted board decides by highest score; every player tied at
// the maximum is a co-winner.
func (s *Session) checkWinLocked(scorer *Player) *WinReport {
	switch {
	case scorer.Score >= WinningScore:
		s.winners = []PlayerID{scorer.ID}

	case lo.EveryBy(s.board, func(w BoardWord) bool { return w.Used }):
		top := lo.MaxBy(s.players, func(a, b *Player) bool { return a.Score > b.Score })
		s.winners = lo.FilterMap(s.players, func(p *Player, _ int) (PlayerID, bool) {
			return p.ID, p.Score == top.Score
		})

	default:
		return nil
	}

	s.phase = PhaseComplete
	r := s.reportLocked()
	return &r
}

func (s *Session) reportLocked() WinReport {
	return WinReport{
		Winners:     append([]PlayerID(nil), s.winners...),
		FinalScores: s.standingsLocked(),
	}
}

func (s *Session) snapshotLocked() Snapshot {
	board := make([]BoardWord, len(s.board))
	copy(board, s.board)
	return Snapshot{
		SessionID: s.id,
		Phase:     s.phase,
		Board:     board,
		Players:   s.standingsLocked(),
		Rounds:    s.rounds,
	}
}

func (s *Session) standingsLocked() []PlayerScore {
	return lo.Map(s.players, func(p *Player, _ int) PlayerScore {
		return PlayerScore{ID: p.ID, Name: p.Name, Score: p.Score}
	})
}
