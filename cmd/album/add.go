package main

import (
	"fmt"
	"strings"

	"github.com/jacksmith/album/internal/cli"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <deck> <url>...",
	Short: "Add pictures to a deck",
	Long: `Add one or more pictures to a deck, creating the deck if needed.

The deck name is stored exactly as given. Duplicate pictures are kept.

Examples:
  album add mood https://example.com/mood1.png
  album add riri https://example.com/a.png https://example.com/b.png`,
	Args:              cobra.MinimumNArgs(2),
	RunE:              runAdd,
	ValidArgsFunction: completeDeckNames,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	deck := args[0]
	if strings.TrimSpace(deck) == "" {
		return &cli.ValidationError{Field: "deck", Message: "deck name cannot be empty"}
	}

	_, a, err := loadAlbum()
	if err != nil {
		return err
	}

	n := a.AddPictures(deck, args[1:]...)
	if err := a.Save(); err != nil {
		return err
	}

	fmt.Printf("Added %d picture(s) to %s.\n", n, deck)
	return nil
}
