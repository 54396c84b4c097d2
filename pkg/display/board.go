// Package display is the board-side channel: it pushes the 3x3 grid, used
// flags, scoreboard, provisional highlights, and the final result to screen
// clients over websockets.
//
// The display deliberately never learns which player used which word; it
// receives snapshots and flag updates only.
package display

import (
	"sync"

	"github.com/gofiber/websocket/v2"

	"github.com/sam-s10s/bs-bingo/pkg/game"
	"github.com/sam-s10s/bs-bingo/pkg/hub"
)

// Event types sent to board clients.
const (
	TypeBoard     = "board"
	TypeHighlight = "highlight"
	TypeGameOver  = "game_over"
)

// Event is one message on the board websocket.
type Event struct {
	Type string `json:"type"`

	// Board is set for TypeBoard events.
	Board *game.Snapshot `json:"board,omitempty"`

	// Highlights lists lowercased words provisionally heard in the
	// transcript, for TypeHighlight events. An empty list clears them.
	Highlights []string `json:"highlights,omitempty"`

	// Report is set for TypeGameOver events.
	Report *game.WinReport `json:"report,omitempty"`
}

// Board broadcasts one session's grid updates to its websocket viewers.
// It implements game.Notifier.
type Board struct {
	h *hub.Hub

	mu   sync.Mutex
	last *game.Snapshot // replayed to late-joining clients
}

// New creates a board broadcaster named for logging, usually by session ID.
// Call Run in a goroutine before broadcasting.
func New(name string) *Board {
	return &Board{h: hub.New(name)}
}

// Run starts the underlying hub loop.
func (b *Board) Run() {
	b.h.Run()
}

// Attach registers a websocket connection, replays the latest snapshot so
// late joiners see the current grid, and blocks until the client leaves.
func (b *Board) Attach(conn *websocket.Conn) {
	client := hub.NewClient(b.h, conn)

	if snap := b.Last(); snap != nil {
		conn.WriteJSON(Event{Type: TypeBoard, Board: snap})
	}

	client.Run()
}

// BoardChanged broadcasts a fresh snapshot. Part of game.Notifier.
func (b *Board) BoardChanged(snap game.Snapshot) {
	b.mu.Lock()
	b.last = &snap
	b.mu.Unlock()

	b.h.BroadcastJSON(Event{Type: TypeBoard, Board: &snap})
}

// GameOver broadcasts the final result. Part of game.Notifier.
func (b *Board) GameOver(report game.WinReport) {
	b.h.BroadcastJSON(Event{Type: TypeGameOver, Report: &report})
}

// Highlight broadcasts the provisional transcript highlights. Pass an empty
// slice to clear them.
func (b *Board) Highlight(words []string) {
	if words == nil {
		words = []string{}
	}
	b.h.BroadcastJSON(Event{Type: TypeHighlight, Highlights: words})
}

// Last returns the most recent snapshot, or nil before the first update.
func (b *Board) Last() *game.Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.last == nil {
		return nil
	}
	snap := *b.last
	return &snap
}

// ClientCount returns the number of connected viewers.
func (b *Board) ClientCount() int {
	return b.h.ClientCount()
}
