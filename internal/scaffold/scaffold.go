// Package scaffold chains the two prompts and the filesystem calls behind
// `postkit new` into one sequence: pick a kind, enter a title, create the
// dated folder and its document, open the document.
package scaffold

import (
	"time"

	"postkit/internal/model"
	"postkit/internal/naming"
)

// Prompt resolves to a single value, at most once.
type Prompt interface {
	Run() (string, error)
}

// Storage creates folders and files under a site root. Creation fails when
// the target already exists.
type Storage interface {
	CreateFolder(rel string) error
	CreateFile(rel, contents string) error
}

// Navigator opens a created document for editing.
type Navigator interface {
	Open(rel string) error
}

// Notifier surfaces a user-visible notice. Fire and forget.
type Notifier interface {
	Notify(format string, args ...any)
}

// ContentsFunc produces the initial document body for a new post.
type ContentsFunc func(kind model.PostKind, title string, t time.Time) (string, error)

// Sequencer runs the create-post sequence. KindPrompt, TitlePrompt, Storage,
// and Notifier are required; Navigator, Contents, and Now are optional.
type Sequencer struct {
	KindPrompt  Prompt
	TitlePrompt Prompt
	Storage     Storage
	Notifier    Notifier
	Navigator   Navigator    // nil: skip the editor step
	Contents    ContentsFunc // nil: empty document
	Now         func() time.Time
}

// Run executes the sequence and returns the created folder path. Prompt
// errors (including cancellation) propagate to the caller before any
// filesystem work happens. Storage and navigation failures are caught here,
// surfaced as a single notice, and terminate the sequence with an empty
// path: no retry, and no cleanup of a folder whose document failed to
// materialize.
func (s *Sequencer) Run() (string, error) {
	kindValue, err := s.KindPrompt.Run()
	if err != nil {
		return "", err
	}
	kind, err := model.ParseKind(kindValue)
	if err != nil {
		return "", err
	}

	title, err := s.TitlePrompt.Run()
	if err != nil {
		return "", err
	}

	// The clock is read after both prompts resolve, so the folder is stamped
	// with creation time, not command start time.
	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}

	folder := naming.FolderName(kind, title, now)
	doc := naming.DocumentPath(folder)

	contents := ""
	if s.Contents != nil {
		contents, err = s.Contents(kind, title, now)
		if err != nil {
			return "", err
		}
	}

	if err := s.create(folder, doc, contents); err != nil {
		s.Notifier.Notify("create post: %v", err)
		return "", nil
	}
	return folder, nil
}

func (s *Sequencer) create(folder, doc, contents string) error {
	if err := s.Storage.CreateFolder(folder); err != nil {
		return err
	}
	if err := s.Storage.CreateFile(doc, contents); err != nil {
		return err
	}
	if s.Navigator != nil {
		if err := s.Navigator.Open(doc); err != nil {
			return err
		}
	}
	return nil
}
