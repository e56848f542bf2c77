package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jacksmith/album/internal/cli"
	"github.com/spf13/cobra"
)

var decksCmd = &cobra.Command{
	Use:   "decks",
	Short: "List decks and their sizes",
	Args:  cobra.NoArgs,
	RunE:  runDecks,
}

func init() {
	rootCmd.AddCommand(decksCmd)
}

func runDecks(cmd *cobra.Command, args []string) error {
	_, a, err := loadAlbum()
	if err != nil {
		return err
	}

	table := cli.NewTable("DECK", "PICTURES")
	table.AlignRight(1)
	for _, d := range a.Decks() {
		table.AddRow(d.Name, strconv.Itoa(d.Pictures))
	}
	if table.Len() == 0 {
		fmt.Println("No decks.")
		return nil
	}
	table.Render(os.Stdout)
	return nil
}
