// Package cli provides CLI infrastructure for album.
package cli

import (
	"fmt"
	"strings"

	"github.com/jacksmith/album/internal/album"
)

// MatchDeck finds a unique deck from a possibly abbreviated name.
// Comparison uses album normalization, so case and accents are ignored.
// An exact normalized match wins over prefix matches.
func MatchDeck(query string, decks []string) (string, error) {
	want := album.Normalize(query)
	if want == "" {
		return "", &ValidationError{Field: "deck", Message: "must not be empty"}
	}

	for _, deck := range decks {
		if deck == query {
			return deck, nil
		}
	}
	var exact []string
	for _, deck := range decks {
		if album.Normalize(deck) == want {
			exact = append(exact, deck)
		}
	}
	if len(exact) > 0 {
		return exact[0], nil
	}

	var matches []string
	for _, deck := range decks {
		if strings.HasPrefix(album.Normalize(deck), want) {
			matches = append(matches, deck)
		}
	}

	switch len(matches) {
	case 0:
		return "", &NotFoundError{Type: "deck", ID: query}
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("ambiguous deck %q matches: %s", query, strings.Join(matches, ", "))
	}
}
