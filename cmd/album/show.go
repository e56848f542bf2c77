package main

import (
	"fmt"
	"os"
	"slices"
	"strconv"

	"github.com/jacksmith/album/internal/cli"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <deck>",
	Short: "List the pictures of a deck",
	Long: `List the pictures of a deck.

The deck may be abbreviated to any unique prefix, ignoring case and
accents.

Examples:
  album show mood
  album show mo`,
	Args:              cobra.ExactArgs(1),
	RunE:              runShow,
	ValidArgsFunction: completeDeckNames,
}

var showFull bool

func init() {
	showCmd.Flags().BoolVar(&showFull, "full", false, "do not truncate long links")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	_, a, err := loadAlbum()
	if err != nil {
		return err
	}

	names := slices.Sorted(a.DeckNames())
	deck, err := cli.MatchDeck(args[0], names)
	if err != nil {
		return err
	}

	fmt.Println(cli.Bold(deck))
	table := cli.NewTable()
	table.AlignRight(0)
	if !showFull {
		table.SetMaxWidth(1, 72)
	}
	for i, url := range a.Pictures(deck) {
		table.AddRow(cli.Gray(strconv.Itoa(i+1)), url)
	}
	table.Render(os.Stdout)
	return nil
}
