// Package site locates a content site on disk and performs the filesystem
// operations postkit needs: exclusive folder/file creation under the site
// root and inventory of existing posts.
package site

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"postkit/internal/archetype"
	"postkit/internal/model"
	"postkit/internal/naming"
)

// ErrNotFound is returned when no directory owning content/posts is found.
var ErrNotFound = errors.New("not inside a site (no content/posts directory found)")

// Dir is a site rooted at a directory owning content/posts.
type Dir struct {
	Root string
}

// Find walks up from start to the nearest directory containing content/posts.
func Find(start string) (Dir, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return Dir{}, fmt.Errorf("resolve %s: %w", start, err)
	}
	for {
		info, err := os.Stat(filepath.Join(dir, filepath.FromSlash(naming.PostsDir)))
		if err == nil && info.IsDir() {
			return Dir{Root: dir}, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return Dir{}, ErrNotFound
		}
		dir = parent
	}
}

// Abs resolves a site-relative path against the root.
func (d Dir) Abs(rel string) string {
	return filepath.Join(d.Root, filepath.FromSlash(rel))
}

// CreateFolder creates rel under the site root, failing if it already exists.
func (d Dir) CreateFolder(rel string) error {
	abs := d.Abs(rel)
	if _, err := os.Stat(abs); err == nil {
		return fmt.Errorf("folder already exists: %s", rel)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return fmt.Errorf("create folder %s: %w", rel, err)
	}
	return nil
}

// CreateFile creates rel with the given initial contents, failing if a file
// already exists there.
func (d Dir) CreateFile(rel, contents string) error {
	f, err := os.OpenFile(d.Abs(rel), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create file %s: %w", rel, err)
	}
	if _, err := f.WriteString(contents); err != nil {
		f.Close()
		return fmt.Errorf("write file %s: %w", rel, err)
	}
	return f.Close()
}

// Posts lists the posts under content/posts, newest first. The folder name is
// the source of truth for date and title; front matter, when present,
// refines the kind (photo posts are not distinguishable from blog posts by
// name alone) and carries the ID and draft flag. Entries that do not parse as
// post folders are skipped.
func (d Dir) Posts() ([]model.Post, error) {
	entries, err := os.ReadDir(d.Abs(naming.PostsDir))
	if err != nil {
		return nil, fmt.Errorf("read posts dir: %w", err)
	}

	var posts []model.Post
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		kind, when, title, ok := naming.ParseFolderName(e.Name())
		if !ok {
			continue
		}
		p := model.Post{
			Kind:   kind,
			Title:  title,
			Date:   when,
			Folder: naming.PostsDir + "/" + e.Name(),
		}
		if body, err := os.ReadFile(d.Abs(naming.DocumentPath(p.Folder))); err == nil {
			if fm, ok := archetype.ParseFrontMatter(body); ok {
				p.ID = fm.ID
				p.Draft = fm.Draft
				if k, err := model.ParseKind(fm.Kind); err == nil {
					p.Kind = k
				}
				if fm.Title != "" {
					p.Title = fm.Title
				}
			}
		}
		posts = append(posts, p)
	}

	sort.Slice(posts, func(i, j int) bool { return posts[i].Date.After(posts[j].Date) })
	return posts, nil
}
