package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"postkit/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List posts",
		Long:  "List the posts under content/posts, newest first.",
		Run:   runList,
	}

	cmd.Flags().StringP("kind", "k", "", "Filter by kind: blog-post, note, photos")
	cmd.Flags().IntP("limit", "l", 0, "Max results (0 = all)")

	RootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) {
	kindFlag, _ := cmd.Flags().GetString("kind")
	limit, _ := cmd.Flags().GetInt("limit")

	dir, err := findSite()
	if err != nil {
		exitErr("list", err)
	}

	var kind model.PostKind
	if kindFlag != "" {
		kind, err = model.ParseKind(kindFlag)
		if err != nil {
			exitErr("list", err)
		}
	}

	posts, err := dir.Posts()
	if err != nil {
		exitErr("list", err)
	}

	filtered := posts[:0]
	for _, p := range posts {
		if kind != "" && p.Kind != kind {
			continue
		}
		filtered = append(filtered, p)
		if limit > 0 && len(filtered) == limit {
			break
		}
	}

	if formatFlag == "text" {
		for _, p := range filtered {
			fmt.Printf("%-10s %s %s\n", p.Kind, p.Date.Format("2006-01-02 15:04"), p.Title)
		}
		return
	}

	b, _ := json.MarshalIndent(filtered, "", "  ")
	fmt.Println(string(b))
}
