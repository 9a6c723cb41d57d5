// Package cli implements the postkit CLI commands.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"postkit/internal/settings"
	"postkit/internal/site"
)

var (
	dbPath     string
	formatFlag string
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "postkit",
	Short: "Scaffold dated content posts",
	Long:  "A tiny CLI for scaffolding dated content posts. Pick a kind, type a title, get a folder with an index.md. SQLite-backed settings, single binary.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Settings database path (default: $POSTKIT_DB or ~/.postkit/postkit.db)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "json", "Output format: json or text")
}

func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	if env := os.Getenv("POSTKIT_DB"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".postkit", "postkit.db")
}

func openSettings() (*settings.Store, error) {
	return settings.Open(getDBPath())
}

// currentSettings loads the settings record, opening and closing the store.
func currentSettings(ctx context.Context) (settings.Settings, error) {
	s, err := openSettings()
	if err != nil {
		return settings.Settings{}, err
	}
	defer s.Close()
	return s.Load(ctx)
}

// findSite locates the site containing the working directory.
func findSite() (site.Dir, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return site.Dir{}, fmt.Errorf("get working directory: %w", err)
	}
	return site.Find(cwd)
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}

var noticeColor = color.New(color.FgYellow)

// notify prints a fire-and-forget user-visible notice.
func notify(format string, args ...any) {
	noticeColor.Fprintf(os.Stderr, format+"\n", args...)
}
