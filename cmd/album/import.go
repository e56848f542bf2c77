package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/album/internal/cli"
	"github.com/jacksmith/album/internal/importer"
	"github.com/jacksmith/album/internal/logger"
	"github.com/jacksmith/album/internal/storage"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import --db <path>",
	Short: "Build a new album from a submissions database",
	Long: `Build a new album file from the validated pictures of a SQLite
submissions database.

Only rows with validated = 1 are imported, each into the deck named by
its album column. The album file must not exist yet.

Examples:
  album import --db submissions.db
  album import --db submissions.db --album albums.json`,
	Args: cobra.NoArgs,
	RunE: runImport,
}

var importDB string

func init() {
	importCmd.Flags().StringVar(&importDB, "db", "", "SQLite submissions database")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	if importDB == "" {
		return &cli.ValidationError{Field: "db", Message: "--db is required"}
	}

	s := storage.Open(".")
	cfg, err := s.LoadConfig()
	if err != nil {
		return err
	}
	path, err := s.AlbumPath(albumFile)
	if err != nil {
		return err
	}

	log := logger.New(os.Stderr, cfg.LogLevel, logger.FormatText)
	a, n, err := importer.ImportFile(commandContext(cmd), importDB, path, log)
	if err != nil {
		return err
	}

	fmt.Printf("Imported %d picture(s) into %d deck(s) in %s\n", n, a.DeckCount(), path)
	return nil
}
