package main

import (
	"fmt"

	"github.com/jacksmith/album/internal/storage"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an empty album file",
	Long: `Create an empty album file.

The file is album.yaml in the current directory unless .albumconfig.yaml
or --album names another one. init fails if the file already exists.

Examples:
  album init
  album init --album pictures.json`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	s := storage.Open(".")
	a, err := s.Init(albumFile)
	if err != nil {
		return err
	}

	fmt.Printf("Initialized empty album in %s\n", a.Source())
	return nil
}
