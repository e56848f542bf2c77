package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Editor runs an external editor on a temporary copy of some content.
type Editor struct {
	Command string // e.g. "vim" or "code --wait"
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
}

// EditorFromEnv returns an Editor using $VISUAL, then $EDITOR, attached to
// the process's standard streams.
func EditorFromEnv() *Editor {
	command := os.Getenv("VISUAL")
	if command == "" {
		command = os.Getenv("EDITOR")
	}
	return &Editor{Command: command, Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Edit writes content to a temp file ending in suffix, opens it in the
// editor and returns what the file holds once the editor exits.
func (e *Editor) Edit(content []byte, suffix string) ([]byte, error) {
	if e.Command == "" {
		return nil, fmt.Errorf("EDITOR not set")
	}

	tmp, err := os.CreateTemp("", "album-*"+suffix)
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := e.run(tmpPath); err != nil {
		return nil, err
	}

	edited, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read edited file: %w", err)
	}
	return edited, nil
}

// run executes the editor on path. The command may carry arguments.
func (e *Editor) run(path string) error {
	parts := strings.Fields(e.Command)
	if len(parts) == 0 {
		return fmt.Errorf("empty editor command")
	}

	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("editor exited with status %d", exitErr.ExitCode())
		}
		return fmt.Errorf("failed to run editor: %w", err)
	}
	return nil
}
