// Package storage locates the album file and user configuration for a
// working directory.
package storage

import (
	"path/filepath"

	"github.com/jacksmith/album/internal/album"
)

// Storage resolves album files relative to a root directory.
type Storage struct {
	root string // directory containing .albumconfig.yaml
}

// Open returns a Storage rooted at dir.
func Open(dir string) *Storage {
	return &Storage{root: dir}
}

// AlbumPath returns the album file to use. override (from --album) wins
// over the config; relative paths are resolved against the root.
func (s *Storage) AlbumPath(override string) (string, error) {
	path := override
	if path == "" {
		cfg, err := s.LoadConfig()
		if err != nil {
			return "", err
		}
		path = cfg.Album
	}
	if filepath.IsAbs(path) {
		return path, nil
	}
	return filepath.Join(s.root, path), nil
}

// albumOptions returns the album options derived from the config.
func (s *Storage) albumOptions() ([]album.Option, error) {
	cfg, err := s.LoadConfig()
	if err != nil {
		return nil, err
	}
	if cfg.Seed != 0 {
		return []album.Option{album.WithSeed(cfg.Seed)}, nil
	}
	return nil, nil
}

// Init creates an empty album file. It fails if the file already exists.
func (s *Storage) Init(override string) (*album.Album, error) {
	path, err := s.AlbumPath(override)
	if err != nil {
		return nil, err
	}
	opts, err := s.albumOptions()
	if err != nil {
		return nil, err
	}
	return album.Create(path, opts...)
}

// Load reads the album file.
func (s *Storage) Load(override string) (*album.Album, error) {
	path, err := s.AlbumPath(override)
	if err != nil {
		return nil, err
	}
	opts, err := s.albumOptions()
	if err != nil {
		return nil, err
	}
	return album.LoadFrom(path, opts...)
}
