// Package importer copies validated pictures from a SQLite database into
// an album file.
package importer

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/jacksmith/album/internal/album"
)

//go:embed schema.sql
var schemaSQL string

// Picture is one row of the pictures table.
type Picture struct {
	Link      string
	Validated bool
	AuthorID  string
	AuthorTag string
	Album     string
}

// Source is a picture database.
type Source struct {
	db *sql.DB
}

// Open opens the SQLite database at path and makes sure the pictures table
// exists.
func Open(path string) (*Source, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	// SQLite only supports one writer at a time.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}
	return &Source{db: db}, nil
}

// Close closes the database connection.
func (s *Source) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Insert adds a picture row.
func (s *Source) Insert(ctx context.Context, p Picture) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO pictures (link, validated, author_id, author_tag, album) VALUES (?, ?, ?, ?, ?)`,
		p.Link, p.Validated, p.AuthorID, p.AuthorTag, p.Album)
	if err != nil {
		return fmt.Errorf("failed to insert picture %s: %w", p.Link, err)
	}
	return nil
}

// Validated returns the validated pictures in insertion order.
func (s *Source) Validated(ctx context.Context) ([]Picture, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT link, validated, author_id, author_tag, album FROM pictures WHERE validated = 1 ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to query pictures: %w", err)
	}
	defer rows.Close()

	var pictures []Picture
	for rows.Next() {
		var p Picture
		if err := rows.Scan(&p.Link, &p.Validated, &p.AuthorID, &p.AuthorTag, &p.Album); err != nil {
			return nil, fmt.Errorf("failed to scan picture: %w", err)
		}
		pictures = append(pictures, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read pictures: %w", err)
	}
	return pictures, nil
}

// Import adds every validated picture of src to a and returns how many
// were added. It does not save a.
func Import(ctx context.Context, src *Source, a *album.Album, logger *slog.Logger) (int, error) {
	pictures, err := src.Validated(ctx)
	if err != nil {
		return 0, err
	}
	addPictures(ctx, a, pictures, logger)
	return len(pictures), nil
}

func addPictures(ctx context.Context, a *album.Album, pictures []Picture, logger *slog.Logger) {
	for _, p := range pictures {
		logger.DebugContext(ctx, "importing picture", "album", p.Album, "link", p.Link, "author", p.AuthorTag)
		a.AddPicture(p.Album, p.Link)
	}
}

// ImportFile imports the validated pictures of the database at dbPath into
// a new album file at albumPath. The database is read before the album
// file is created, and a failed save removes the file again, so a failed
// import can be retried.
func ImportFile(ctx context.Context, dbPath, albumPath string, logger *slog.Logger) (*album.Album, int, error) {
	src, err := Open(dbPath)
	if err != nil {
		return nil, 0, err
	}
	defer src.Close()

	pictures, err := src.Validated(ctx)
	if err != nil {
		return nil, 0, err
	}

	a, err := album.Create(albumPath)
	if err != nil {
		return nil, 0, err
	}
	addPictures(ctx, a, pictures, logger)
	if err := a.Save(); err != nil {
		os.Remove(albumPath)
		return nil, 0, err
	}
	logger.InfoContext(ctx, "import finished", "pictures", len(pictures), "decks", a.DeckCount(), "album", albumPath)
	return a, len(pictures), nil
}
