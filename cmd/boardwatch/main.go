// boardwatch renders a session's bingo board in the terminal.
// It dials the host's board websocket and redraws the grid on every update.
//
// Usage:
//
//	BINGO_HOST=ws://localhost:8080 go run ./cmd/boardwatch <session-id>
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gorilla/websocket"

	"github.com/sam-s10s/bs-bingo/internal/config"
	"github.com/sam-s10s/bs-bingo/pkg/display"
	"github.com/sam-s10s/bs-bingo/pkg/game"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: boardwatch <session-id>")
		fmt.Fprintln(os.Stderr, "Set BINGO_HOST to override ws://localhost:8080")
		os.Exit(1)
	}
	sessionID := os.Args[1]

	host := config.HostURL("ws://localhost:" + config.Port())
	url := fmt.Sprintf("%s/ws/board/%s", host, sessionID)

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dial %s: %v\n", url, err)
		os.Exit(1)
	}
	defer conn.Close()

	fmt.Printf("Watching board for session %s\n", sessionID)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-interrupt
		conn.Close()
		os.Exit(0)
	}()

	var highlights []string
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			fmt.Fprintf(os.Stderr, "connection closed: %v\n", err)
			return
		}

		var ev display.Event
		if err := json.Unmarshal(data, &ev); err != nil {
			continue
		}

		switch ev.Type {
		case display.TypeBoard:
			if ev.Board != nil {
				render(*ev.Board, highlights)
			}
		case display.TypeHighlight:
			highlights = ev.Highlights
		case display.TypeGameOver:
			if ev.Report != nil {
				renderWinners(*ev.Report)
			}
		}
	}
}

func render(snap game.Snapshot, highlights []string) {
	fmt.Printf("\n=== %s ===\n", snap.Phase)

	if len(snap.Board) == game.BoardSize {
		for row := 0; row < 3; row++ {
			cells := make([]string, 3)
			for col := 0; col < 3; col++ {
				w := snap.Board[row*3+col]
				cell := fmt.Sprintf("%s (%d)", w.Word, w.Points)
				switch {
				case w.Used:
					cell = "[" + cell + "]"
				case contains(highlights, strings.ToLower(w.Word)):
					cell = "*" + cell + "*"
				}
				cells[col] = fmt.Sprintf("%-24s", cell)
			}
			fmt.Println(strings.Join(cells, " | "))
		}
	}

	if len(snap.Players) > 0 {
		fmt.Println("Scores:")
		for _, p := range snap.Players {
			fmt.Printf("  %s: %d\n", p.Name, p.Score)
		}
	}
}

func renderWinners(report game.WinReport) {
	fmt.Println("\n*** GAME OVER ***")
	winners := make(map[game.PlayerID]bool, len(report.Winners))
	for _, id := range report.Winners {
		winners[id] = true
	}
	for _, p := range report.FinalScores {
		marker := " "
		if winners[p.ID] {
			marker = "*"
		}
		fmt.Printf(" %s %s: %d\n", marker, p.Name, p.Score)
	}
}

func contains(words []string, w string) bool {
	for _, x := range words {
		if x == w {
			return true
		}
	}
	return false
}
