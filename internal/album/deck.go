package album

import (
	"iter"
	"maps"
	"slices"
)

// Rand is the source of randomness used to pick a picture from a deck.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	// IntN returns a value in [0, n). n is always > 0.
	IntN(n int) int
}

// DeckStore maps deck names to the picture references they hold.
// A deck never exists with zero pictures.
//
// DeckStore is not safe for concurrent use; Album serializes access to it.
type DeckStore struct {
	decks map[string][]string
}

// NewDeckStore returns an empty store.
func NewDeckStore() *DeckStore {
	return &DeckStore{decks: make(map[string][]string)}
}

// Add appends url to deck, creating the deck if needed.
// Duplicates are kept.
func (s *DeckStore) Add(deck, url string) {
	s.decks[deck] = append(s.decks[deck], url)
}

// Resolve returns the stored deck key that query refers to.
// An exact key match wins. Otherwise the lexicographically smallest key
// that normalizes to the same value as query is returned.
func (s *DeckStore) Resolve(query string) (string, bool) {
	if _, ok := s.decks[query]; ok {
		return query, true
	}

	want := Normalize(query)
	var found string
	ok := false
	for key := range s.decks {
		if Normalize(key) != want {
			continue
		}
		if !ok || key < found {
			found = key
			ok = true
		}
	}
	return found, ok
}

// Draw picks a picture uniformly at random from the deck matching query.
// It returns the canonical deck key, not query, so the pair can later be
// removed by exact match.
func (s *DeckStore) Draw(query string, rng Rand) (deck, url string, ok bool) {
	key, found := s.Resolve(query)
	if !found {
		return "", "", false
	}
	pictures := s.decks[key]
	if len(pictures) == 0 {
		return "", "", false
	}
	return key, pictures[rng.IntN(len(pictures))], true
}

// Remove deletes one occurrence of url from deck. Both must match exactly.
// The deck is deleted when its last picture goes.
// Reports whether anything was removed.
func (s *DeckStore) Remove(deck, url string) bool {
	pictures, ok := s.decks[deck]
	if !ok {
		return false
	}
	i := slices.Index(pictures, url)
	if i < 0 {
		return false
	}

	pictures = slices.Delete(pictures, i, i+1)
	if len(pictures) == 0 {
		delete(s.decks, deck)
	} else {
		s.decks[deck] = pictures
	}
	return true
}

// DeckCount returns the number of decks.
func (s *DeckStore) DeckCount() int {
	return len(s.decks)
}

// PictureCount returns the number of picture references across all decks,
// duplicates included.
func (s *DeckStore) PictureCount() int {
	n := 0
	for _, pictures := range s.decks {
		n += len(pictures)
	}
	return n
}

// Names yields every deck key. Order follows map iteration.
func (s *DeckStore) Names() iter.Seq[string] {
	return maps.Keys(s.decks)
}

// Len returns the number of pictures in deck, 0 if it does not exist.
func (s *DeckStore) Len(deck string) int {
	return len(s.decks[deck])
}

// Pictures returns a copy of the pictures in deck.
func (s *DeckStore) Pictures(deck string) []string {
	return slices.Clone(s.decks[deck])
}

// clone returns a deep copy of the deck mapping.
func (s *DeckStore) clone() map[string][]string {
	out := make(map[string][]string, len(s.decks))
	for name, pictures := range s.decks {
		out[name] = slices.Clone(pictures)
	}
	return out
}
