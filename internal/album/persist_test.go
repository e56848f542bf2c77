package album

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestSaveWithoutSource(t *testing.T) {
	a := New(WithDecks(sampleDecks()))
	err := a.Save()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotSourced)
}

func TestLoadFrom(t *testing.T) {
	t.Run("yaml document", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "album.yaml")
		writeFile(t, path, `pictures:
  mood:
    - http://example.com/mood1.png
    - http://example.com/mood2.png
  tata:
    - http://example.com/tata.png
last_sent:
  deck: tata
  url: http://example.com/tata.png
`)

		a, err := LoadFrom(path)
		require.NoError(t, err)
		assert.Equal(t, path, a.Source())
		assert.Equal(t, 2, a.DeckCount())
		assert.Equal(t, 3, a.PictureCount())

		last, ok := a.LastAction()
		require.True(t, ok)
		assert.Equal(t, Action{Deck: "tata", URL: "http://example.com/tata.png"}, last)
	})

	t.Run("json document", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "albums.json")
		writeFile(t, path, `{"pictures": {"riri": ["r1", "r2"]}, "last_sent": null}`)

		a, err := LoadFrom(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"r1", "r2"}, a.Pictures("riri"))
		_, ok := a.LastAction()
		assert.False(t, ok)
	})

	t.Run("empty yaml file is an empty album", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "album.yaml")
		writeFile(t, path, "")

		a, err := LoadFrom(path)
		require.NoError(t, err)
		assert.Equal(t, 0, a.DeckCount())
	})

	t.Run("missing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nope.yaml")

		_, err := LoadFrom(path)
		require.Error(t, err)
		var ioErr *IOError
		require.ErrorAs(t, err, &ioErr)
		assert.Equal(t, "read", ioErr.Op)
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "album.yaml")
		writeFile(t, path, "pictures: [unclosed\n")

		_, err := LoadFrom(path)
		require.Error(t, err)
		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, path, parseErr.Path)
	})

	t.Run("wrong shape", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "album.yaml")
		writeFile(t, path, "pictures: 5\n")

		_, err := LoadFrom(path)
		var parseErr *ParseError
		assert.ErrorAs(t, err, &parseErr)
	})

	t.Run("malformed json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "album.json")
		writeFile(t, path, `{"pictures": `)

		_, err := LoadFrom(path)
		var parseErr *ParseError
		assert.ErrorAs(t, err, &parseErr)
	})
}

func TestSaveRoundTrip(t *testing.T) {
	for _, name := range []string{"album.yaml", "album.yml", "albums.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			seed, err := Create(path)
			require.NoError(t, err)
			for deck, pictures := range sampleDecks() {
				seed.AddPictures(deck, pictures...)
			}
			// Decks whose names look like other YAML types must stay strings.
			seed.AddPicture("123", "http://example.com/n.png")
			seed.AddPicture("true", "http://example.com/b.png")
			_, ok := seed.Draw("riri")
			require.True(t, ok)
			require.NoError(t, seed.Save())

			first, err := LoadFrom(path)
			require.NoError(t, err)
			require.NoError(t, first.Save())

			second, err := LoadFrom(path)
			require.NoError(t, err)

			assert.Equal(t, seed.decks.clone(), second.decks.clone())
			assert.Equal(t, first.decks.clone(), second.decks.clone())

			want, ok := seed.LastAction()
			require.True(t, ok)
			got, ok := second.LastAction()
			require.True(t, ok)
			assert.Equal(t, want, got)
		})
	}
}

func TestSaveDoesNotWriteSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "album.yaml")
	a, err := Create(path)
	require.NoError(t, err)
	a.AddPicture("mood", "m1")
	require.NoError(t, a.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), path)
	assert.Contains(t, string(data), "pictures:")
	assert.NotContains(t, string(data), "last_sent")
}

func TestSaveAfterUndoClearsLastSent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "album.yaml")
	a, err := Create(path)
	require.NoError(t, err)
	a.AddPicture("tata", "t1")
	a.AddPicture("tata", "t2")
	_, ok := a.Draw("tata")
	require.True(t, ok)
	_, ok = a.UndoLast()
	require.True(t, ok)
	require.NoError(t, a.Save())

	loaded, err := LoadFrom(path)
	require.NoError(t, err)
	_, ok = loaded.LastAction()
	assert.False(t, ok)
	assert.Equal(t, 1, loaded.PictureCount())
}

func TestCreate(t *testing.T) {
	t.Run("writes an empty album", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "album.yaml")
		a, err := Create(path)
		require.NoError(t, err)
		assert.Equal(t, path, a.Source())

		loaded, err := LoadFrom(path)
		require.NoError(t, err)
		assert.Equal(t, 0, loaded.DeckCount())
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "album.yaml")
		writeFile(t, path, "pictures: {}\n")

		_, err := Create(path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, fs.ErrExist))
	})

	t.Run("unwritable directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "album.yaml")

		_, err := Create(path)
		var ioErr *IOError
		require.ErrorAs(t, err, &ioErr)
		assert.Equal(t, "write", ioErr.Op)
	})
}

func TestJSONLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "albums.json")
	a, err := Create(path, WithRand(fixedRand(0)))
	require.NoError(t, err)
	a.AddPictures("mood", "http://example.com/mood1.png", "http://example.com/mood2.png")
	a.AddPicture("tata", "http://example.com/tata.png")
	_, ok := a.Draw("tata")
	require.True(t, ok)
	require.NoError(t, a.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "albums_json", data)
}

func TestDecode(t *testing.T) {
	a, err := Decode("album.yaml", []byte("pictures:\n  mood: [m1, m2]\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, a.PictureCount())
	assert.Empty(t, a.Source())
	assert.ErrorIs(t, a.Save(), ErrNotSourced)

	_, err = Decode("album.json", []byte("pictures:\n  mood: [m1]\n"))
	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestDecodeLeavesOptionsUntouched(t *testing.T) {
	opts := make([]Option, 1, 2)
	opts[0] = WithRand(fixedRand(0))
	spare := opts[:2]

	_, err := Decode("album.yaml", []byte("pictures:\n  mood: [m1]\n"), opts...)
	require.NoError(t, err)
	assert.Nil(t, spare[1])
}
