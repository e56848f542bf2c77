// Package bot turns chat messages into album operations and replies.
//
// The dispatcher never performs I/O while holding the album lock: every
// album call returns before the reply is produced, and sending the reply
// is left to the caller.
package bot

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/jacksmith/album/internal/album"
)

const commandPrefix = "!"

// Replies sent back to the chat.
const (
	replyPong            = "Pong!"
	replyAdminOnly       = "Only an admin can do this."
	replyNothingAttached = "I found no attachment to add."
	replyNothingToUndo   = "I don't remember the last picture I sent, so I removed nothing."
	replyNothingRemoved  = "I removed nothing."
	replyPictureRemoved  = "Picture removed!"
)

// Message is an inbound chat message.
type Message struct {
	Author      string
	Content     string
	Attachments []string // attachment URLs
	Admin       bool     // whether Author may run admin commands
}

// Store is the album contract the dispatcher relies on.
type Store interface {
	AddPictures(deck string, urls ...string) int
	DrawRandom(query string) (string, bool)
	RemovePicture(deck, url string) bool
	UndoLast() (album.Action, bool)
	Decks() []album.DeckInfo
	Save() error
}

// Dispatcher routes messages to album operations.
type Dispatcher struct {
	store  Store
	logger *slog.Logger
}

// NewDispatcher returns a dispatcher over store.
func NewDispatcher(store Store, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{store: store, logger: logger}
}

// Handle processes msg and returns the reply, if any.
func (d *Dispatcher) Handle(ctx context.Context, msg Message) (string, bool) {
	content := strings.TrimSpace(msg.Content)

	if strings.Contains(content, "patate") {
		return replyPong, true
	}

	rest, ok := strings.CutPrefix(content, commandPrefix)
	if !ok || rest == "" {
		return "", false
	}
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return "", false
	}

	switch fields[0] {
	case "add":
		return d.admin(ctx, msg, func() string { return d.add(ctx, fields[1:], msg.Attachments) })
	case "delete_last":
		return d.admin(ctx, msg, func() string { return d.deleteLast(ctx) })
	case "delete_pic":
		return d.admin(ctx, msg, func() string { return d.deletePicture(ctx, fields[1:]) })
	case "help", "albums":
		return d.help(), true
	default:
		return d.draw(ctx, rest)
	}
}

// admin runs fn if msg comes from an admin.
func (d *Dispatcher) admin(ctx context.Context, msg Message, fn func() string) (string, bool) {
	if !msg.Admin {
		d.logger.InfoContext(ctx, "refused admin command", "author", msg.Author, "content", msg.Content)
		return replyAdminOnly, true
	}
	return fn(), true
}

func (d *Dispatcher) draw(ctx context.Context, query string) (string, bool) {
	url, ok := d.store.DrawRandom(query)
	if !ok {
		d.logger.DebugContext(ctx, "no deck matched", "query", query)
		return "", false
	}
	return url, true
}

func (d *Dispatcher) add(ctx context.Context, args []string, attachments []string) string {
	if len(args) == 0 || len(attachments) == 0 {
		return replyNothingAttached
	}
	deck := args[0]

	n := d.store.AddPictures(deck, attachments...)
	d.save(ctx, "add")
	d.logger.InfoContext(ctx, "pictures added", "deck", deck, "count", n)
	return fmt.Sprintf("I added %d picture(s)!", n)
}

func (d *Dispatcher) deleteLast(ctx context.Context) string {
	removed, ok := d.store.UndoLast()
	if !ok {
		return replyNothingToUndo
	}
	d.save(ctx, "delete_last")
	d.logger.InfoContext(ctx, "last picture removed", "deck", removed.Deck, "url", removed.URL)
	return fmt.Sprintf("From deck %s I removed the picture %s", removed.Deck, removed.URL)
}

func (d *Dispatcher) deletePicture(ctx context.Context, args []string) string {
	if len(args) < 2 {
		return replyNothingRemoved
	}
	if !d.store.RemovePicture(args[0], args[1]) {
		return replyNothingRemoved
	}
	d.save(ctx, "delete_pic")
	return replyPictureRemoved
}

// help reports counts and names from a single snapshot of the album.
func (d *Dispatcher) help() string {
	decks := d.store.Decks()
	names := make([]string, 0, len(decks))
	pictures := 0
	for _, deck := range decks {
		names = append(names, deck.Name)
		pictures += deck.Pictures
	}
	slices.Sort(names)

	return fmt.Sprintf("Number of albums: %d, number of pictures: %d.\nAlbum names: %s.",
		len(decks), pictures, strings.Join(names, ", "))
}

// save persists the album after a mutation. A failure is logged and the
// command still succeeds; the change stays in memory.
func (d *Dispatcher) save(ctx context.Context, command string) {
	if err := d.store.Save(); err != nil {
		d.logger.ErrorContext(ctx, "failed to save album, data loss is possible",
			"command", command, "error", err)
	}
}
