package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/jacksmith/album/internal/bot"
	"github.com/jacksmith/album/internal/logger"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Answer chat messages read from standard input",
	Long: `Run the chat bot on the console. Each input line is one message from
the configured user; replies go to standard output and logs to standard
error as JSON.

  patate                        Pong!
  !<deck>                       a random picture from the deck
  !add <deck> <url>...          add pictures (admin)
  !delete_last                  remove the last drawn picture (admin)
  !delete_pic <deck> <url>      remove a picture (admin)
  !help                         deck and picture counts

The album is saved after every change and once more on exit, whether
input ends or the process receives SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var serveUser string

func init() {
	serveCmd.Flags().StringVar(&serveUser, "user", "", "user name for console messages (default from config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	s, a, err := loadAlbum()
	if err != nil {
		return err
	}
	cfg, err := s.LoadConfig()
	if err != nil {
		return err
	}

	user := cfg.User
	if serveUser != "" {
		user = serveUser
	}

	log := logger.New(os.Stderr, cfg.LogLevel, logger.FormatJSON)
	log.Info("album loaded",
		"album", a.Source(),
		"decks", a.DeckCount(),
		"pictures", a.PictureCount(),
		"user", user)

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	console := &bot.Console{
		Dispatcher: bot.NewDispatcher(a, log),
		Author:     user,
		Admin:      cfg.IsAdmin(user),
		Logger:     log,
	}
	runErr := console.Run(ctx, os.Stdin, os.Stdout)
	if errors.Is(runErr, context.Canceled) {
		runErr = nil
	}

	if err := bot.ShutdownSave(a, log); err != nil {
		return err
	}
	return runErr
}
