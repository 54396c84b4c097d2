package display

import (
	"testing"

	"github.com/sam-s10s/bs-bingo/pkg/game"
)

// The board is the engine's display collaborator.
var _ game.Notifier = (*Board)(nil)

func TestBoardReplaysLastSnapshot(t *testing.T) {
	b := New("test")

	if b.Last() != nil {
		t.Error("expected no snapshot before the first update")
	}

	b.BoardChanged(game.Snapshot{SessionID: "s1", Phase: game.PhasePlaying})
	b.BoardChanged(game.Snapshot{SessionID: "s1", Phase: game.PhaseComplete})

	snap := b.Last()
	if snap == nil {
		t.Fatal("expected a snapshot after updates")
	}
	if snap.Phase != game.PhaseComplete {
		t.Errorf("expected latest snapshot, got phase %s", snap.Phase)
	}

	// Last returns a copy; mutating it must not affect later reads.
	snap.Phase = game.PhaseSetup
	if b.Last().Phase != game.PhaseComplete {
		t.Error("Last exposed internal state")
	}
}

func TestBoardSnapshotCarriesNoAttribution(t *testing.T) {
	pool := game.NewPool([]game.WordEntry{
		{Word: "cloud"}, {Word: "pivot"}, {Word: "synergy"},
		{Word: "bandwidth"}, {Word: "leverage"}, {Word: "scalable"},
		{Word: "disrupt"}, {Word: "agile"}, {Word: "ecosystem"},
	})

	b := New("test")
	sess := game.NewSession(pool, game.WithNotifier(b))

	alice, err := sess.AddPlayer("Alice", "")
	if err != nil {
		t.Fatal(err)
	}
	if err := sess.DrawBoard(); err != nil {
		t.Fatal(err)
	}

	word := sess.Snapshot().Board[0].Word
	if _, err := sess.WordSpoken(alice, word, true); err != nil {
		t.Fatal(err)
	}

	snap := b.Last()
	if snap == nil {
		t.Fatal("expected snapshot pushed through the notifier")
	}
	if !snap.Board[0].Used {
		t.Error("used flag not reflected on the display")
	}
	// The snapshot shows scores and used flags but never who used what;
	// BoardWord has no player field by construction. Verify the scoreboard
	// came through.
	if len(snap.Players) != 1 || snap.Players[0].Score != 1 {
		t.Errorf("unexpected scoreboard: %+v", snap.Players)
	}
}
