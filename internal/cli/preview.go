package cli

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yuin/goldmark"

	"postkit/internal/archetype"
	"postkit/internal/naming"
)

func init() {
	cmd := &cobra.Command{
		Use:   "preview <post>",
		Short: "Render a post to HTML",
		Long:  "Render a post's index.md to HTML on stdout, front matter stripped. The post is a folder name under content/posts.",
		Args:  cobra.ExactArgs(1),
		Run:   runPreview,
	}

	RootCmd.AddCommand(cmd)
}

func runPreview(cmd *cobra.Command, args []string) {
	dir, err := findSite()
	if err != nil {
		exitErr("preview", err)
	}

	folder := args[0]
	if !strings.Contains(folder, "/") {
		folder = naming.PostsDir + "/" + folder
	}

	body, err := os.ReadFile(dir.Abs(naming.DocumentPath(folder)))
	if err != nil {
		exitErr("preview", err)
	}
	body = archetype.StripFrontMatter(body)

	var buf bytes.Buffer
	if err := goldmark.Convert(body, &buf); err != nil {
		exitErr("render markdown", err)
	}
	fmt.Print(buf.String())
}
