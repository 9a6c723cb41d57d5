package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"postkit/internal/archetype"
	"postkit/internal/model"
	"postkit/internal/naming"
	"postkit/internal/prompt"
	"postkit/internal/scaffold"
	"postkit/internal/site"
)

func init() {
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a new post",
		Long:  "Create a new dated post folder with an index.md and open it in your editor. Prompts for kind and title unless the flags are given.",
		Run:   runNew,
	}

	cmd.Flags().StringP("kind", "k", "", "Post kind: blog-post, note, photos (skips the prompt)")
	cmd.Flags().StringP("title", "t", "", "Post title (skips the prompt)")
	cmd.Flags().Bool("no-open", false, "Do not open the new document in an editor")

	RootCmd.AddCommand(cmd)
}

func runNew(cmd *cobra.Command, args []string) {
	kindFlag, _ := cmd.Flags().GetString("kind")
	titleFlag, _ := cmd.Flags().GetString("title")
	noOpen, _ := cmd.Flags().GetBool("no-open")
	titleGiven := cmd.Flags().Changed("title")

	dir, err := findSite()
	if err != nil {
		exitErr("new", err)
	}

	cfg, err := currentSettings(cmd.Context())
	if err != nil {
		exitErr("load settings", err)
	}

	needsPrompt := kindFlag == "" || !titleGiven
	if needsPrompt && !term.IsTerminal(int(os.Stdin.Fd())) {
		exitErr("new", errors.New("stdin is not a terminal; pass --kind and --title"))
	}

	seq := &scaffold.Sequencer{
		KindPrompt:  kindPrompt(kindFlag),
		TitlePrompt: titlePrompt(titleFlag, titleGiven),
		Storage:     dir,
		Notifier:    noticeNotifier{},
		Contents: func(kind model.PostKind, title string, t time.Time) (string, error) {
			return archetype.Contents(cfg.Archetype, archetype.NewData(kind, title, t))
		},
	}
	if !noOpen {
		seq.Navigator = editorNavigator{dir: dir, editor: cfg.Editor}
	}

	folder, err := seq.Run()
	if err != nil {
		if errors.Is(err, prompt.ErrCanceled) {
			notify("canceled")
			os.Exit(1)
		}
		exitErr("new", err)
	}
	if folder == "" {
		// The failure was already surfaced as a notice.
		os.Exit(1)
	}

	if formatFlag == "text" {
		fmt.Println(dir.Abs(folder))
		return
	}
	out := struct {
		Folder   string `json:"folder"`
		Document string `json:"document"`
		Root     string `json:"root"`
	}{folder, naming.DocumentPath(folder), dir.Root}
	b, _ := json.MarshalIndent(out, "", "  ")
	fmt.Println(string(b))
}

// kindPrompt returns a fixed prompt when the flag is set, otherwise the
// interactive choice prompt over all kinds.
func kindPrompt(flag string) scaffold.Prompt {
	if flag != "" {
		return fixedPrompt(flag)
	}
	opts := make([]string, len(model.Kinds))
	for i, k := range model.Kinds {
		opts[i] = string(k)
	}
	return &prompt.Choice{Label: "Pick a post kind", Options: opts}
}

func titlePrompt(flag string, given bool) scaffold.Prompt {
	if given {
		return fixedPrompt(flag)
	}
	return &prompt.Text{Label: "Title"}
}

// fixedPrompt resolves from a flag value without user interaction.
type fixedPrompt string

func (p fixedPrompt) Run() (string, error) { return string(p), nil }

type noticeNotifier struct{}

func (noticeNotifier) Notify(format string, args ...any) { notify(format, args...) }

type editorNavigator struct {
	dir    site.Dir
	editor string
}

func (n editorNavigator) Open(rel string) error {
	return site.OpenInEditor(n.editor, n.dir.Abs(rel))
}
