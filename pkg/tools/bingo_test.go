package tools

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/sam-s10s/bs-bingo/pkg/game"
)

func testRegistry(t *testing.T) (*Registry, *game.Session) {
	t.Helper()
	pool := game.NewPool([]game.WordEntry{
		{Word: "cloud"}, {Word: "pivot"}, {Word: "synergy"},
		{Word: "bandwidth"}, {Word: "leverage"}, {Word: "scalable"},
		{Word: "disrupt"}, {Word: "agile"}, {Word: "ecosystem"},
	})
	sess := game.NewSession(pool)
	return ForSession(sess), sess
}

func dispatch(t *testing.T, r *Registry, name string, args map[string]any) map[string]any {
	t.Helper()
	res := r.Dispatch(ToolCall{ID: "call-1", Name: name, Arguments: args})
	if res.Err != nil {
		t.Fatalf("%s failed: %v", name, res.Err)
	}
	var payload map[string]any
	if err := json.Unmarshal([]byte(res.Result), &payload); err != nil {
		t.Fatalf("%s returned invalid JSON %q: %v", name, res.Result, err)
	}
	return payload
}

func TestRegistryHasFiveTools(t *testing.T) {
	r, _ := testRegistry(t)

	names := []string{}
	for _, tool := range r.List() {
		names = append(names, tool.Name)
	}
	want := []string{"add_player", "get_words", "no_word_spoken", "start_over", "word_spoken"}
	if len(names) != len(want) {
		t.Fatalf("expected %d tools, got %v", len(want), names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("tool %d: expected %s, got %s", i, want[i], names[i])
		}
	}
}

func TestAddPlayerTool(t *testing.T) {
	r, sess := testRegistry(t)

	payload := dispatch(t, r, "add_player", map[string]any{
		"name":      "Alice",
		"workplace": "Initech",
	})
	if payload["player_id"] == "" {
		t.Error("expected player_id in result")
	}

	snap := sess.Snapshot()
	if len(snap.Players) != 1 || snap.Players[0].Name != "Alice" {
		t.Errorf("player not registered: %+v", snap.Players)
	}
}

func TestAddPlayerToolMissingName(t *testing.T) {
	r, _ := testRegistry(t)

	res := r.Dispatch(ToolCall{Name: "add_player", Arguments: map[string]any{}})
	if res.Err == nil {
		t.Error("expected error for missing name")
	}
}

func TestGetWordsToolHidesWords(t *testing.T) {
	r, sess := testRegistry(t)
	dispatch(t, r, "add_player", map[string]any{"name": "Alice"})

	res := r.Dispatch(ToolCall{Name: "get_words"})
	if res.Err != nil {
		t.Fatalf("get_words failed: %v", res.Err)
	}

	// The result must not leak any board word toward the narration channel.
	for _, w := range sess.Snapshot().Board {
		if strings.Contains(strings.ToLower(res.Result), strings.ToLower(w.Word)) {
			t.Errorf("get_words result leaks board word %q: %s", w.Word, res.Result)
		}
	}
	if sess.Phase() != game.PhasePlaying {
		t.Errorf("expected PLAYING after get_words, got %s", sess.Phase())
	}
}

func TestGetWordsToolRequiresPlayers(t *testing.T) {
	r, _ := testRegistry(t)

	res := r.Dispatch(ToolCall{Name: "get_words"})
	if !errors.Is(res.Err, game.ErrNoPlayers) {
		t.Errorf("expected ErrNoPlayers, got %v", res.Err)
	}
}

func TestWordSpokenTool(t *testing.T) {
	r, sess := testRegistry(t)
	added := dispatch(t, r, "add_player", map[string]any{"name": "Alice"})
	dispatch(t, r, "get_words", nil)
	word := sess.Snapshot().Board[0].Word

	payload := dispatch(t, r, "word_spoken", map[string]any{
		"player_id": added["player_id"],
		"word":      word,
		"valid_use": true,
	})
	if payload["points_awarded"].(float64) < 1 {
		t.Errorf("expected points awarded, got %v", payload["points_awarded"])
	}

	// Stringified boolean arguments are tolerated.
	repeat := dispatch(t, r, "word_spoken", map[string]any{
		"player_id": added["player_id"],
		"word":      word,
		"valid_use": "true",
	})
	if repeat["points_awarded"].(float64) != 0 {
		t.Errorf("repeat call awarded points: %v", repeat["points_awarded"])
	}
}

func TestWordSpokenToolErrors(t *testing.T) {
	r, sess := testRegistry(t)
	dispatch(t, r, "add_player", map[string]any{"name": "Alice"})
	dispatch(t, r, "get_words", nil)
	word := sess.Snapshot().Board[0].Word

	res := r.Dispatch(ToolCall{Name: "word_spoken", Arguments: map[string]any{
		"player_id": "nobody", "word": word, "valid_use": true,
	}})
	if !errors.Is(res.Err, game.ErrUnknownPlayer) {
		t.Errorf("expected ErrUnknownPlayer, got %v", res.Err)
	}

	alice := string(sess.Snapshot().Players[0].ID)
	res = r.Dispatch(ToolCall{Name: "word_spoken", Arguments: map[string]any{
		"player_id": alice, "word": "quux", "valid_use": true,
	}})
	if !errors.Is(res.Err, game.ErrUnknownWord) {
		t.Errorf("expected ErrUnknownWord, got %v", res.Err)
	}

	res = r.Dispatch(ToolCall{Name: "word_spoken", Arguments: map[string]any{
		"player_id": alice, "word": word,
	}})
	if res.Err == nil {
		t.Error("expected error for missing valid_use")
	}
}

func TestStartOverToolOutsideComplete(t *testing.T) {
	r, _ := testRegistry(t)

	res := r.Dispatch(ToolCall{Name: "start_over"})
	if !errors.Is(res.Err, game.ErrInvalidPhase) {
		t.Errorf("expected ErrInvalidPhase, got %v", res.Err)
	}
}

func TestDispatchUnknownTool(t *testing.T) {
	r, _ := testRegistry(t)

	res := r.Dispatch(ToolCall{ID: "x", Name: "fire_missiles"})
	if res.Err == nil {
		t.Error("expected error for unknown tool")
	}
	if res.CallID != "x" {
		t.Errorf("expected call ID preserved, got %q", res.CallID)
	}
}
