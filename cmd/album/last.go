package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var lastCmd = &cobra.Command{
	Use:   "last",
	Short: "Show the last drawn picture",
	Args:  cobra.NoArgs,
	RunE:  runLast,
}

func init() {
	rootCmd.AddCommand(lastCmd)
}

func runLast(cmd *cobra.Command, args []string) error {
	_, a, err := loadAlbum()
	if err != nil {
		return err
	}

	action, ok := a.LastAction()
	if !ok {
		fmt.Println("No picture drawn yet.")
		return nil
	}
	fmt.Printf("%s\t%s\n", action.Deck, action.URL)
	return nil
}
