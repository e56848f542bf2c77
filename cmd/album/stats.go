package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show deck and picture counts",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	_, a, err := loadAlbum()
	if err != nil {
		return err
	}

	fmt.Printf("Decks:    %d\n", a.DeckCount())
	fmt.Printf("Pictures: %d\n", a.PictureCount())
	if last, ok := a.LastAction(); ok {
		fmt.Printf("Last:     %s %s\n", last.Deck, last.URL)
	}
	return nil
}
