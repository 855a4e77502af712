// Package editor opens notes in the user's programs.
package editor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Launcher picks a program by file extension and runs it in the foreground.
type Launcher struct {
	TextEditor string
	PDFViewer  string
}

// Command returns the program and arguments that open path.
// Configured commands may carry their own arguments, e.g. "code -w".
func (l Launcher) Command(path string) (string, []string, error) {
	cmdline := l.TextEditor
	if strings.EqualFold(filepath.Ext(path), ".pdf") && l.PDFViewer != "" {
		cmdline = l.PDFViewer
	}
	fields := strings.Fields(cmdline)
	if len(fields) == 0 {
		return "", nil, fmt.Errorf("editor: no program configured for %s", filepath.Base(path))
	}
	return fields[0], append(fields[1:], path), nil
}

// Open runs the program for path attached to the current terminal and waits
// for it to exit.
func (l Launcher) Open(ctx context.Context, path string) error {
	name, args, err := l.Command(path)
	if err != nil {
		return err
	}
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor: run %s: %w", name, err)
	}
	return nil
}
