// Package album implements the picture album: named decks of picture
// references, random draws with forgiving name matching, one-step undo of
// the last draw, and persistence to a single file.
package album

import (
	"iter"
	"math/rand/v2"
	"slices"
	"sort"
	"sync"
	"time"
)

// Album is the shared picture store. All methods are safe for concurrent
// use; each one holds the album lock for its whole duration, including the
// file write in Save.
type Album struct {
	mu     sync.Mutex
	decks  *DeckStore
	last   LastTracker
	rng    Rand
	source string // file the album was loaded from; empty if none
}

// Option configures an Album.
type Option func(*Album)

// WithRand sets the random source used by draws.
func WithRand(r Rand) Option {
	return func(a *Album) {
		a.rng = r
	}
}

// WithSeed seeds the default random source for reproducible draws.
func WithSeed(seed uint64) Option {
	return func(a *Album) {
		a.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithDecks pre-seeds the album. Empty decks are skipped.
func WithDecks(decks map[string][]string) Option {
	return func(a *Album) {
		for name, pictures := range decks {
			for _, url := range pictures {
				a.decks.Add(name, url)
			}
		}
	}
}

// New returns an album with no source file.
func New(opts ...Option) *Album {
	a := &Album{decks: NewDeckStore()}
	for _, opt := range opts {
		opt(a)
	}
	if a.rng == nil {
		now := uint64(time.Now().UnixNano())
		a.rng = rand.New(rand.NewPCG(now, now>>32))
	}
	return a
}

// Source returns the file the album was loaded from, or "" if none.
func (a *Album) Source() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.source
}

// AddPicture appends url to deck, creating the deck if needed.
func (a *Album) AddPicture(deck, url string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.decks.Add(deck, url)
}

// AddPictures appends every url to deck in one critical section and returns
// how many were added.
func (a *Album) AddPictures(deck string, urls ...string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, url := range urls {
		a.decks.Add(deck, url)
	}
	return len(urls)
}

// Draw picks a random picture from the deck matching query and remembers
// it as the last action. The returned Action carries the stored deck key.
func (a *Album) Draw(query string) (Action, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	deck, url, ok := a.decks.Draw(query, a.rng)
	if !ok {
		return Action{}, false
	}
	a.last.Record(deck, url)
	return Action{Deck: deck, URL: url}, true
}

// DrawRandom is Draw returning only the picture reference.
func (a *Album) DrawRandom(query string) (string, bool) {
	action, ok := a.Draw(query)
	return action.URL, ok
}

// RemovePicture removes one occurrence of url from deck, matching both
// exactly. Reports whether anything was removed.
func (a *Album) RemovePicture(deck, url string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.decks.Remove(deck, url)
}

// UndoLast removes the picture served by the most recent draw and forgets
// that draw. A second call in a row returns false.
func (a *Album) UndoLast() (Action, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.last.Undo(a.decks)
}

// LastAction returns the most recent draw without consuming it.
func (a *Album) LastAction() (Action, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.last.Peek()
}

// DeckCount returns the number of decks.
func (a *Album) DeckCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.decks.DeckCount()
}

// PictureCount returns the number of pictures across all decks.
func (a *Album) PictureCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.decks.PictureCount()
}

// DeckNames yields the deck names present when it was called. The
// sequence can be ranged over any number of times.
func (a *Album) DeckNames() iter.Seq[string] {
	a.mu.Lock()
	names := slices.Collect(a.decks.Names())
	a.mu.Unlock()
	return slices.Values(names)
}

// DeckInfo summarizes one deck.
type DeckInfo struct {
	Name     string
	Pictures int
}

// Decks returns every deck with its size, sorted by name.
func (a *Album) Decks() []DeckInfo {
	a.mu.Lock()
	defer a.mu.Unlock()

	infos := make([]DeckInfo, 0, a.decks.DeckCount())
	for name := range a.decks.Names() {
		infos = append(infos, DeckInfo{Name: name, Pictures: a.decks.Len(name)})
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name < infos[j].Name
	})
	return infos
}

// Pictures returns a copy of the pictures stored under the exact deck key.
func (a *Album) Pictures(deck string) []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.decks.Pictures(deck)
}
