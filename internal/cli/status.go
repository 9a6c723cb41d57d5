package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"postkit/internal/settings"
)

func init() {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show site info",
		Long:  "Show the site root, post count, and active settings. Only available inside a site.",
		Run:   runStatus,
	}

	RootCmd.AddCommand(cmd)
}

type statusOut struct {
	Root     string            `json:"root"`
	Posts    int               `json:"posts"`
	Drafts   int               `json:"drafts"`
	DB       string            `json:"db"`
	Settings settings.Settings `json:"settings"`
}

func runStatus(cmd *cobra.Command, args []string) {
	// Gated: not inside a site means the command is unavailable.
	dir, err := findSite()
	if err != nil {
		exitErr("status", err)
	}

	cfg, err := currentSettings(cmd.Context())
	if err != nil {
		exitErr("load settings", err)
	}

	posts, err := dir.Posts()
	if err != nil {
		exitErr("status", err)
	}
	drafts := 0
	for _, p := range posts {
		if p.Draft {
			drafts++
		}
	}

	out := statusOut{
		Root:     dir.Root,
		Posts:    len(posts),
		Drafts:   drafts,
		DB:       getDBPath(),
		Settings: cfg,
	}

	if formatFlag == "text" {
		fmt.Printf("root:   %s\n", out.Root)
		fmt.Printf("posts:  %d (%d drafts)\n", out.Posts, out.Drafts)
		fmt.Printf("db:     %s\n", out.DB)
		fmt.Printf("editor: %s\n", cfg.Editor)
		return
	}

	b, _ := json.MarshalIndent(out, "", "  ")
	fmt.Println(string(b))
}
