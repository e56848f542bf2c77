// Package main is the entry point for the album CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jacksmith/album/internal/album"
	"github.com/jacksmith/album/internal/cli"
	"github.com/jacksmith/album/internal/storage"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "album",
	Short: "album - a picture album of named decks",
	Long: `album keeps named decks of picture links in a single file and draws
random pictures from them.

Deck names are matched forgivingly: "Mood", "MOOD" and "mööd" all
refer to the deck "mood". The most recent draw can be undone, which
removes the picture that was served.

The album file is album.yaml unless .albumconfig.yaml or --album says
otherwise. Files ending in .json are read and written as JSON.`,
	Version:       Version,
	SilenceErrors: true,
	SilenceUsage:  true,
	// Show help when no subcommand is provided
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// albumFile overrides the album file from the config.
var albumFile string

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVarP(&albumFile, "album", "a", "", "album file (default from .albumconfig.yaml)")
	rootCmd.SetVersionTemplate("album version {{.Version}}\n")
}

// loadAlbum opens the working directory storage and reads the album file.
func loadAlbum() (*storage.Storage, *album.Album, error) {
	s := storage.Open(".")
	a, err := s.Load(albumFile)
	if err != nil {
		return nil, nil, err
	}
	return s, a, nil
}

// commandContext returns the command's context, or a background context
// when the command is run directly.
func commandContext(cmd *cobra.Command) context.Context {
	if cmd != nil && cmd.Context() != nil {
		return cmd.Context()
	}
	return context.Background()
}
