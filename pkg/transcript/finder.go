// Package transcript watches the live speech transcript for board words and
// drives provisional display highlights while the agent is still deciding
// whether a use counts.
//
// The finder never scores. Scoring happens only through the adjudicated
// word_spoken tool call; highlights are immediate visual feedback and are
// cleared as soon as the words stop being heard.
package transcript

import (
	"sort"
	"strings"
	"sync"

	"github.com/sam-s10s/bs-bingo/internal/log"
	"github.com/sam-s10s/bs-bingo/pkg/game"
)

// Highlighter receives provisional word highlights. *display.Board
// satisfies it.
type Highlighter interface {
	Highlight(words []string)
}

// Utterance is one speaker-tagged piece of transcript text. Utterances are
// ephemeral; they are processed and discarded.
type Utterance struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
	Final   bool   `json:"final"`
}

// Finder scans utterances for unused board words.
type Finder struct {
	sess  *game.Session
	board Highlighter

	mu     sync.Mutex
	active map[string]struct{} // lowercased words currently highlighted
}

// NewFinder creates a finder for one session.
func NewFinder(sess *game.Session, board Highlighter) *Finder {
	return &Finder{
		sess:   sess,
		board:  board,
		active: make(map[string]struct{}),
	}
}

// Hear processes one utterance and returns the unused board words found in
// it, lowercased and sorted. Highlights are replaced on every hit and
// cleared on the first quiet utterance after one.
func (f *Finder) Hear(u Utterance) []string {
	if f.sess.Phase() != game.PhasePlaying {
		return nil
	}

	text := strings.ToLower(u.Text)
	var found []string
	for _, w := range f.sess.Snapshot().Board {
		if w.Used {
			continue
		}
		if strings.Contains(text, strings.ToLower(w.Word)) {
			found = append(found, strings.ToLower(w.Word))
		}
	}
	sort.Strings(found)

	f.mu.Lock()
	defer f.mu.Unlock()

	if len(found) > 0 {
		log.Debug("transcript contains board words", "speaker", u.Speaker, "words", found)
		f.active = make(map[string]struct{}, len(found))
		for _, w := range found {
			f.active[w] = struct{}{}
		}
		if f.board != nil {
			f.board.Highlight(found)
		}
		return found
	}

	if len(f.active) > 0 {
		f.active = make(map[string]struct{})
		if f.board != nil {
			f.board.Highlight(nil)
		}
	}
	return nil
}

// Active returns the currently highlighted words, sorted.
func (f *Finder) Active() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]string, 0, len(f.active))
	for w := range f.active {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
