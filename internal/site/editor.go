package site

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// OpenInEditor opens path with the given editor command, falling back to
// $EDITOR. The editor inherits the terminal.
func OpenInEditor(editor, path string) error {
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		return errors.New("no editor configured (postkit config set editor <cmd>, or set $EDITOR)")
	}

	parts := strings.Fields(editor)
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("open editor: %w", err)
	}
	return nil
}
