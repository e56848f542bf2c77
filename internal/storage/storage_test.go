package storage

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/jacksmith/album/internal/album"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlbumPath(t *testing.T) {
	t.Run("default from config", func(t *testing.T) {
		dir := t.TempDir()
		path, err := Open(dir).AlbumPath("")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "album.yaml"), path)
	})

	t.Run("configured relative path", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "album: data/albums.json\n")

		path, err := Open(dir).AlbumPath("")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "data", "albums.json"), path)
	})

	t.Run("override wins", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "album: data/albums.json\n")

		path, err := Open(dir).AlbumPath("other.yaml")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "other.yaml"), path)
	})

	t.Run("absolute override kept", func(t *testing.T) {
		abs := filepath.Join(t.TempDir(), "abs.yaml")
		path, err := Open(t.TempDir()).AlbumPath(abs)
		require.NoError(t, err)
		assert.Equal(t, abs, path)
	})

	t.Run("broken config", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "album: [\n")
		_, err := Open(dir).AlbumPath("")
		assert.Error(t, err)
	})
}

func TestInitAndLoad(t *testing.T) {
	t.Run("init then load", func(t *testing.T) {
		dir := t.TempDir()
		s := Open(dir)

		a, err := s.Init("")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "album.yaml"), a.Source())

		a.AddPicture("mood", "m1")
		require.NoError(t, a.Save())

		loaded, err := s.Load("")
		require.NoError(t, err)
		assert.Equal(t, 1, loaded.PictureCount())
	})

	t.Run("init twice fails", func(t *testing.T) {
		s := Open(t.TempDir())
		_, err := s.Init("")
		require.NoError(t, err)

		_, err = s.Init("")
		require.Error(t, err)
		assert.True(t, errors.Is(err, fs.ErrExist))
	})

	t.Run("load without init", func(t *testing.T) {
		_, err := Open(t.TempDir()).Load("")
		var ioErr *album.IOError
		assert.ErrorAs(t, err, &ioErr)
	})

	t.Run("seed makes draws repeatable", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "seed: 99\n")
		s := Open(dir)

		a, err := s.Init("")
		require.NoError(t, err)
		for i := range 10 {
			a.AddPicture("deck", string(rune('a'+i)))
		}
		require.NoError(t, a.Save())

		draw := func() []string {
			loaded, err := s.Load("")
			require.NoError(t, err)
			var got []string
			for range 5 {
				url, ok := loaded.DrawRandom("deck")
				require.True(t, ok)
				got = append(got, url)
			}
			return got
		}
		assert.Equal(t, draw(), draw())
	})
}
