package album

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// document is the on-disk form of an album. The source path is never
// part of it.
type document struct {
	Pictures map[string][]string `yaml:"pictures" json:"pictures"`
	LastSent *Action             `yaml:"last_sent,omitempty" json:"last_sent,omitempty"`
}

// isJSON reports whether path should use the JSON encoding.
// Every other extension uses YAML.
func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

func encodeDocument(path string, doc *document) ([]byte, error) {
	if doc.Pictures == nil {
		doc.Pictures = map[string][]string{}
	}

	if isJSON(path) {
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeDocument(path string, data []byte) (*document, error) {
	var doc document
	if isJSON(path) {
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		return &doc, nil
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// LoadFrom reads the album stored at path. The returned album remembers
// path and Save writes back to it.
func LoadFrom(path string, opts ...Option) (*Album, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}

	a, err := Decode(path, data, opts...)
	if err != nil {
		return nil, err
	}
	a.source = path
	return a, nil
}

// Decode parses an album document without recording a source, so the
// result cannot be saved. The extension of name selects the encoding.
func Decode(name string, data []byte, opts ...Option) (*Album, error) {
	doc, err := decodeDocument(name, data)
	if err != nil {
		return nil, &ParseError{Path: name, Err: err}
	}

	a := New(slices.Concat(opts, []Option{WithDecks(doc.Pictures)})...)
	if doc.LastSent != nil {
		a.last.Record(doc.LastSent.Deck, doc.LastSent.URL)
	}
	return a, nil
}

// Create writes an empty album to path, which must not exist yet, and
// returns it with path as its source.
func Create(path string, opts ...Option) (*Album, error) {
	if _, err := os.Stat(path); err == nil {
		return nil, &IOError{Op: "create", Path: path, Err: fs.ErrExist}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, &IOError{Op: "create", Path: path, Err: err}
	}

	a := New(opts...)
	a.source = path
	if err := a.Save(); err != nil {
		return nil, err
	}
	return a, nil
}

// Save overwrites the album's source file with its current decks and last
// action. It fails with ErrNotSourced if the album has no source file.
//
// The album lock is held during the write, so concurrent draws wait for it.
func (a *Album) Save() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.source == "" {
		return ErrNotSourced
	}

	doc := &document{Pictures: a.decks.clone()}
	if last, ok := a.last.Peek(); ok {
		doc.LastSent = &last
	}

	data, err := encodeDocument(a.source, doc)
	if err != nil {
		return &IOError{Op: "write", Path: a.source, Err: err}
	}
	if err := os.WriteFile(a.source, data, 0644); err != nil {
		return &IOError{Op: "write", Path: a.source, Err: err}
	}
	return nil
}
