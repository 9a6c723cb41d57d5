package scaffold

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"postkit/internal/model"
	"postkit/internal/prompt"
)

var frozen = time.Date(2024, 3, 5, 9, 7, 0, 0, time.Local)

type fixedPrompt string

func (p fixedPrompt) Run() (string, error) { return string(p), nil }

type failingPrompt struct{ err error }

func (p failingPrompt) Run() (string, error) { return "", p.err }

type fakeStorage struct {
	folders   []string
	files     map[string]string
	folderErr error
	fileErr   error
}

func (s *fakeStorage) CreateFolder(rel string) error {
	if s.folderErr != nil {
		return s.folderErr
	}
	s.folders = append(s.folders, rel)
	return nil
}

func (s *fakeStorage) CreateFile(rel, contents string) error {
	if s.fileErr != nil {
		return s.fileErr
	}
	if s.files == nil {
		s.files = map[string]string{}
	}
	s.files[rel] = contents
	return nil
}

type fakeNav struct {
	opened []string
	err    error
}

func (n *fakeNav) Open(rel string) error {
	if n.err != nil {
		return n.err
	}
	n.opened = append(n.opened, rel)
	return nil
}

type fakeNotifier struct{ notices []string }

func (n *fakeNotifier) Notify(format string, args ...any) {
	n.notices = append(n.notices, fmt.Sprintf(format, args...))
}

func newSequencer(kind, title string, st *fakeStorage, nav *fakeNav, not *fakeNotifier) *Sequencer {
	seq := &Sequencer{
		KindPrompt:  fixedPrompt(kind),
		TitlePrompt: fixedPrompt(title),
		Storage:     st,
		Notifier:    not,
		Now:         func() time.Time { return frozen },
	}
	// A nil *fakeNav must stay a nil Navigator interface, not a typed nil.
	if nav != nil {
		seq.Navigator = nav
	}
	return seq
}

func TestRun_NotePost(t *testing.T) {
	st := &fakeStorage{}
	nav := &fakeNav{}
	not := &fakeNotifier{}

	folder, err := newSequencer("note", "hello", st, nav, not).Run()
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if folder != "content/posts/note-2024-03-05-09-07-hello" {
		t.Errorf("unexpected folder %q", folder)
	}
	if len(st.folders) != 1 || st.folders[0] != folder {
		t.Errorf("expected folder created, got %v", st.folders)
	}
	doc := folder + "/index.md"
	if got, ok := st.files[doc]; !ok || got != "" {
		t.Errorf("expected empty document at %s, got %v", doc, st.files)
	}
	if len(nav.opened) != 1 || nav.opened[0] != doc {
		t.Errorf("expected document opened, got %v", nav.opened)
	}
	if len(not.notices) != 0 {
		t.Errorf("expected no notices, got %v", not.notices)
	}
}

func TestRun_BlogPostHasNoKindPrefix(t *testing.T) {
	st := &fakeStorage{}
	not := &fakeNotifier{}

	folder, err := newSequencer("blog-post", "hello", st, nil, not).Run()
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if folder != "content/posts/2024-03-05-09-07-hello" {
		t.Errorf("unexpected folder %q", folder)
	}
}

func TestRun_UnknownKind(t *testing.T) {
	st := &fakeStorage{}

	_, err := newSequencer("journal", "x", st, nil, &fakeNotifier{}).Run()
	if err == nil {
		t.Fatal("expected error for unknown kind")
	}
	if len(st.folders) != 0 {
		t.Errorf("expected no filesystem work, got %v", st.folders)
	}
}

func TestRun_CanceledPromptAbortsBeforeStorage(t *testing.T) {
	st := &fakeStorage{}
	seq := newSequencer("note", "x", st, nil, &fakeNotifier{})
	seq.KindPrompt = failingPrompt{err: prompt.ErrCanceled}

	_, err := seq.Run()
	if !errors.Is(err, prompt.ErrCanceled) {
		t.Fatalf("expected ErrCanceled, got %v", err)
	}
	if len(st.folders) != 0 || len(st.files) != 0 {
		t.Errorf("expected no filesystem work, got %v / %v", st.folders, st.files)
	}
}

func TestRun_FolderFailureStopsSequence(t *testing.T) {
	st := &fakeStorage{folderErr: errors.New("folder already exists")}
	nav := &fakeNav{}
	not := &fakeNotifier{}

	folder, err := newSequencer("note", "hello", st, nav, not).Run()
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if folder != "" {
		t.Errorf("expected empty folder result, got %q", folder)
	}
	if len(not.notices) != 1 {
		t.Fatalf("expected one notice, got %v", not.notices)
	}
	if len(st.files) != 0 {
		t.Errorf("expected no file creation after folder failure, got %v", st.files)
	}
	if len(nav.opened) != 0 {
		t.Errorf("expected no navigation after folder failure, got %v", nav.opened)
	}
}

func TestRun_FileFailureLeavesFolderBehind(t *testing.T) {
	st := &fakeStorage{fileErr: errors.New("disk full")}
	not := &fakeNotifier{}

	folder, err := newSequencer("note", "hello", st, nil, not).Run()
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if folder != "" {
		t.Errorf("expected empty folder result, got %q", folder)
	}
	// No compensating deletion: the folder stays.
	if len(st.folders) != 1 {
		t.Errorf("expected folder to remain, got %v", st.folders)
	}
	if len(not.notices) != 1 {
		t.Errorf("expected one notice, got %v", not.notices)
	}
}

func TestRun_ContentsFuncFeedsDocument(t *testing.T) {
	st := &fakeStorage{}
	not := &fakeNotifier{}

	seq := newSequencer("photos", "trip", st, nil, not)
	seq.Contents = func(kind model.PostKind, title string, when time.Time) (string, error) {
		return fmt.Sprintf("kind=%s title=%s at=%s\n", kind, title, when.Format("15:04")), nil
	}

	folder, err := seq.Run()
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	want := "kind=photos title=trip at=09:07\n"
	if got := st.files[folder+"/index.md"]; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRun_EmptyTitle(t *testing.T) {
	st := &fakeStorage{}

	folder, err := newSequencer("note", "", st, nil, &fakeNotifier{}).Run()
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if folder != "content/posts/note-2024-03-05-09-07-" {
		t.Errorf("unexpected folder %q", folder)
	}
}
