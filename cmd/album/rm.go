package main

import (
	"fmt"

	"github.com/jacksmith/album/internal/cli"
	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm <deck> <url>",
	Short: "Remove a picture from a deck",
	Long: `Remove one occurrence of a picture from a deck.

Both the deck name and the link must match exactly. The deck disappears
when its last picture is removed.

Examples:
  album rm mood https://example.com/mood1.png`,
	Args:              cobra.ExactArgs(2),
	RunE:              runRm,
	ValidArgsFunction: completeDeckNames,
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

func runRm(cmd *cobra.Command, args []string) error {
	deck, url := args[0], args[1]

	_, a, err := loadAlbum()
	if err != nil {
		return err
	}

	if !a.RemovePicture(deck, url) {
		return &cli.NotFoundError{Type: "picture", ID: deck + " " + url}
	}
	if err := a.Save(); err != nil {
		return err
	}

	fmt.Printf("Removed %s from %s.\n", url, deck)
	return nil
}
