package bot

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// Console feeds lines from a reader to a Dispatcher, one message per line,
// and writes replies to a writer. Each line is handled in its own
// goroutine, like one task per inbound chat event.
type Console struct {
	Dispatcher *Dispatcher
	Author     string
	Admin      bool
	Logger     *slog.Logger

	mu sync.Mutex // serializes writes to out
}

// ParseLine builds the message for one console line. The console has no
// attachments, so the tokens after "!add <deck>" stand in for them.
func (c *Console) ParseLine(line string) Message {
	msg := Message{
		Author:  c.Author,
		Content: line,
		Admin:   c.Admin,
	}
	fields := strings.Fields(line)
	if len(fields) > 2 && fields[0] == commandPrefix+"add" {
		msg.Attachments = fields[2:]
	}
	return msg
}

// Run reads in until EOF or until ctx is done.
//
// On EOF it waits for in-flight messages and returns nil. When ctx is done
// it returns ctx.Err() at once; messages still being handled are abandoned.
func (c *Console) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	logger := c.Logger
	if logger == nil {
		logger = slog.Default()
	}

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	var wg sync.WaitGroup
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				wg.Wait()
				select {
				case err := <-scanErr:
					if err != nil {
						return fmt.Errorf("failed to read input: %w", err)
					}
				default:
				}
				return nil
			}
			if strings.TrimSpace(line) == "" {
				continue
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				reply, ok := c.Dispatcher.Handle(ctx, c.ParseLine(line))
				if !ok {
					return
				}
				c.write(out, reply, logger)
			}()
		}
	}
}

func (c *Console) write(out io.Writer, reply string, logger *slog.Logger) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := fmt.Fprintln(out, reply); err != nil {
		logger.Error("failed to write reply", "error", err)
	}
}

// Saver is anything that can persist itself.
type Saver interface {
	Save() error
}

// ShutdownSave performs the best-effort final save on termination. It
// waits for the album lock like any other caller and logs the outcome.
func ShutdownSave(s Saver, logger *slog.Logger) error {
	logger.Info("stopping")
	if err := s.Save(); err != nil {
		logger.Error("failed to save album", "error", err)
		return err
	}
	logger.Info("saved album successfully")
	return nil
}
