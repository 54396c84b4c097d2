package game

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strings"
)

// Point values assigned per difficulty tier when loading a tiered pool file.
const (
	PointsObvious = 1
	PointsHard    = 2
	PointsObscure = 3
)

// WordEntry is a single candidate word in the pool with the points it is
// worth when used in conversation.
type WordEntry struct {
	Word   string `json:"word"`
	Points int    `json:"points"`
}

// poolFile is the on-disk pool layout. Both the tiered form used by the
// original game data and a flat word list are accepted; flat words are worth
// one point each.
type poolFile struct {
	Obvious []string `json:"obvious"`
	Hard    []string `json:"hard"`
	Obscure []string `json:"obscure"`
	Words   []string `json:"words"`
}

// Pool is an immutable set of candidate words. A single pool is shared by
// all sessions; it is never mutated after construction.
type Pool struct {
	entries []WordEntry
}

// NewPool builds a pool from entries. Blank words are dropped, duplicate
// words (case-insensitive) keep their first entry, and non-positive point
// values default to one.
func NewPool(entries []WordEntry) *Pool {
	seen := make(map[string]struct{}, len(entries))
	kept := make([]WordEntry, 0, len(entries))

	for _, e := range entries {
		word := strings.TrimSpace(e.Word)
		if word == "" {
			continue
		}
		key := strings.ToLower(word)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		if e.Points <= 0 {
			e.Points = PointsObvious
		}
		kept = append(kept, WordEntry{Word: word, Points: e.Points})
	}

	return &Pool{entries: kept}
}

// LoadPool reads a word pool from a JSON file.
func LoadPool(path string) (*Pool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("game: read pool: %w", err)
	}

	var pf poolFile
	if err := json.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("game: parse pool %s: %w", path, err)
	}

	var entries []WordEntry
	for _, w := range pf.Obvious {
		entries = append(entries, WordEntry{Word: w, Points: PointsObvious})
	}
	for _, w := range pf.Hard {
		entries = append(entries, WordEntry{Word: w, Points: PointsHard})
	}
	for _, w := range pf.Obscure {
		entries = append(entries, WordEntry{Word: w, Points: PointsObscure})
	}
	for _, w := range pf.Words {
		entries = append(entries, WordEntry{Word: w, Points: PointsObvious})
	}

	pool := NewPool(entries)
	if pool.Len() == 0 {
		return nil, fmt.Errorf("game: pool %s contains no words", path)
	}
	return pool, nil
}

// Len returns the number of distinct words in the pool.
func (p *Pool) Len() int {
	return len(p.entries)
}

// Entries returns a copy of the pool contents.
func (p *Pool) Entries() []WordEntry {
	out := make([]WordEntry, len(p.entries))
	copy(out, p.entries)
	return out
}

// draw returns n distinct entries chosen uniformly at random. The caller
// guarantees n <= p.Len().
func (p *Pool) draw(rng *rand.Rand, n int) []WordEntry {
	idx := rng.Perm(len(p.entries))
	out := make([]WordEntry, n)
	for i := range out {
		out[i] = p.entries[idx[i]]
	}
	return out
}
