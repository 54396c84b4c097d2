package transcript

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/sam-s10s/bs-bingo/pkg/game"
)

type fakeHighlighter struct {
	calls [][]string
}

func (f *fakeHighlighter) Highlight(words []string) {
	f.calls = append(f.calls, words)
}

func playingSession(t *testing.T) (*game.Session, game.PlayerID) {
	t.Helper()
	pool := game.NewPool([]game.WordEntry{
		{Word: "cloud"}, {Word: "pivot"}, {Word: "synergy"},
		{Word: "bandwidth"}, {Word: "leverage"}, {Word: "scalable"},
		{Word: "disrupt"}, {Word: "agile"}, {Word: "ecosystem"},
	})
	sess := game.NewSession(pool, game.WithRand(rand.New(rand.NewSource(1))))
	id, err := sess.AddPlayer("Alice", "")
	if err != nil {
		t.Fatal(err)
	}
	if err := sess.DrawBoard(); err != nil {
		t.Fatal(err)
	}
	return sess, id
}

func TestFinderFindsUnusedWords(t *testing.T) {
	sess, _ := playingSession(t)
	h := &fakeHighlighter{}
	f := NewFinder(sess, h)

	found := f.Hear(Utterance{Speaker: "spk_1", Text: "we should leverage the new Cloud setup"})
	want := []string{"cloud", "leverage"}
	if !reflect.DeepEqual(found, want) {
		t.Fatalf("expected %v, got %v", want, found)
	}
	if !reflect.DeepEqual(f.Active(), want) {
		t.Errorf("active highlights mismatch: %v", f.Active())
	}
	if len(h.calls) != 1 {
		t.Fatalf("expected 1 highlight broadcast, got %d", len(h.calls))
	}
}

func TestFinderClearsOnQuietUtterance(t *testing.T) {
	sess, _ := playingSession(t)
	h := &fakeHighlighter{}
	f := NewFinder(sess, h)

	f.Hear(Utterance{Speaker: "spk_1", Text: "synergy everywhere"})
	f.Hear(Utterance{Speaker: "spk_1", Text: "nothing interesting here"})

	if len(f.Active()) != 0 {
		t.Errorf("expected highlights cleared, got %v", f.Active())
	}
	if len(h.calls) != 2 {
		t.Fatalf("expected highlight then clear, got %d calls", len(h.calls))
	}
	if len(h.calls[1]) != 0 {
		t.Errorf("expected empty clear broadcast, got %v", h.calls[1])
	}

	// A second quiet utterance must not re-broadcast the clear.
	f.Hear(Utterance{Speaker: "spk_1", Text: "still quiet"})
	if len(h.calls) != 2 {
		t.Errorf("redundant clear broadcast sent")
	}
}

func TestFinderIgnoresUsedWords(t *testing.T) {
	sess, alice := playingSession(t)
	f := NewFinder(sess, nil)

	if _, err := sess.WordSpoken(alice, "synergy", true); err != nil {
		t.Fatal(err)
	}

	if found := f.Hear(Utterance{Text: "more synergy please"}); found != nil {
		t.Errorf("used word still highlighted: %v", found)
	}
}

func TestFinderInactiveOutsidePlaying(t *testing.T) {
	pool := game.NewPool([]game.WordEntry{{Word: "cloud"}})
	sess := game.NewSession(pool)
	f := NewFinder(sess, nil)

	if found := f.Hear(Utterance{Text: "cloud"}); found != nil {
		t.Errorf("finder active during SETUP: %v", found)
	}
}
