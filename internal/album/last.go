package album

// Action is a picture served from a deck. Deck is always the stored key.
type Action struct {
	Deck string `yaml:"deck" json:"deck"`
	URL  string `yaml:"url" json:"url"`
}

// LastTracker remembers the most recent successful draw. There is no
// history: each Record overwrites the previous one.
type LastTracker struct {
	action *Action
}

// Record remembers deck/url as the last served picture.
func (l *LastTracker) Record(deck, url string) {
	l.action = &Action{Deck: deck, URL: url}
}

// Peek returns the remembered action without clearing it.
func (l *LastTracker) Peek() (Action, bool) {
	if l.action == nil {
		return Action{}, false
	}
	return *l.action, true
}

// TakeAndClear returns the remembered action and forgets it.
func (l *LastTracker) TakeAndClear() (Action, bool) {
	a, ok := l.Peek()
	l.action = nil
	return a, ok
}

// Undo removes the remembered picture from store and forgets it.
// The action is returned even when the picture was already gone.
func (l *LastTracker) Undo(store *DeckStore) (Action, bool) {
	a, ok := l.TakeAndClear()
	if !ok {
		return Action{}, false
	}
	store.Remove(a.Deck, a.URL)
	return a, true
}
