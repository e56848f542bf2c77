package main

import (
	"fmt"

	"github.com/jacksmith/album/internal/cli"
	"github.com/spf13/cobra"
)

var drawCmd = &cobra.Command{
	Use:   "draw <deck>",
	Short: "Draw a random picture from a deck",
	Long: `Draw a random picture from a deck and print its link.

The deck name ignores case and accents. The draw is remembered as the
last action, so "album undo" can remove the picture afterwards.

Examples:
  album draw mood
  album draw MÖÖD --deck`,
	Args:              cobra.ExactArgs(1),
	RunE:              runDraw,
	ValidArgsFunction: completeDeckNames,
}

var drawShowDeck bool

func init() {
	drawCmd.Flags().BoolVar(&drawShowDeck, "deck", false, "also print the deck the picture came from")
	rootCmd.AddCommand(drawCmd)
}

func runDraw(cmd *cobra.Command, args []string) error {
	_, a, err := loadAlbum()
	if err != nil {
		return err
	}

	action, ok := a.Draw(args[0])
	if !ok {
		return &cli.NotFoundError{Type: "deck", ID: args[0]}
	}
	if err := a.Save(); err != nil {
		return err
	}

	if drawShowDeck {
		fmt.Printf("%s\t%s\n", cli.Green(action.Deck), action.URL)
		return nil
	}
	fmt.Println(action.URL)
	return nil
}
