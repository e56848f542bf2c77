package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Remove the picture served by the last draw",
	Long: `Remove the picture served by the most recent draw and forget that draw.

Only one step is remembered: a second undo in a row does nothing.`,
	Args: cobra.NoArgs,
	RunE: runUndo,
}

func init() {
	rootCmd.AddCommand(undoCmd)
}

func runUndo(cmd *cobra.Command, args []string) error {
	_, a, err := loadAlbum()
	if err != nil {
		return err
	}

	action, ok := a.UndoLast()
	if !ok {
		fmt.Println("Nothing to undo.")
		return nil
	}
	if err := a.Save(); err != nil {
		return err
	}

	fmt.Printf("Removed %s from %s.\n", action.URL, action.Deck)
	return nil
}
