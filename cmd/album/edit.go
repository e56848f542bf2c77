package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jacksmith/album/internal/album"
	"github.com/jacksmith/album/internal/cli"
	"github.com/jacksmith/album/internal/storage"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the album file in $EDITOR",
	Long: `Open the album file in $VISUAL or $EDITOR.

The edited content is checked before it replaces the album file; if it
does not parse, the file is left untouched.`,
	Args: cobra.NoArgs,
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	return editAlbum(cli.EditorFromEnv())
}

func editAlbum(editor *cli.Editor) error {
	path, err := storage.Open(".").AlbumPath(albumFile)
	if err != nil {
		return err
	}

	original, err := os.ReadFile(path)
	if err != nil {
		return &album.IOError{Op: "read", Path: path, Err: err}
	}

	edited, err := editor.Edit(original, filepath.Ext(path))
	if err != nil {
		return err
	}
	if bytes.Equal(edited, original) {
		fmt.Println("No changes.")
		return nil
	}

	a, err := album.Decode(path, edited)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, edited, 0644); err != nil {
		return &album.IOError{Op: "write", Path: path, Err: err}
	}

	fmt.Printf("Album updated: %d decks, %d pictures.\n", a.DeckCount(), a.PictureCount())
	return nil
}
