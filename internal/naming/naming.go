// Package naming turns a kind, title, and timestamp into a canonical post
// folder path. Everything here is pure; callers decide what to do with the
// resulting site-relative paths.
package naming

import (
	"fmt"
	"regexp"
	"time"

	"postkit/internal/model"
)

// PostsDir is the site-relative directory that holds all posts.
const PostsDir = "content/posts"

// Document is the file created inside every post folder.
const Document = "index.md"

// notePrefix is prepended to the folder name for note posts only.
const notePrefix = "note-"

// dateLayout is the folder-name timestamp layout: minute resolution, local
// wall clock, lexicographically sortable.
const dateLayout = "2006-01-02-15-04"

// DatePrefix formats t's local calendar fields as "YYYY-MM-DD-hh-mm".
func DatePrefix(t time.Time) string {
	return t.Format(dateLayout)
}

// FolderName returns the site-relative folder path for a new post. The title
// is used verbatim: no slugification, no trimming.
func FolderName(kind model.PostKind, title string, t time.Time) string {
	prefix := ""
	if kind == model.KindNote {
		prefix = notePrefix
	}
	return fmt.Sprintf("%s/%s%s-%s", PostsDir, prefix, DatePrefix(t), title)
}

// DocumentPath returns the site-relative path of the document inside folder.
func DocumentPath(folder string) string {
	return folder + "/" + Document
}

var folderRe = regexp.MustCompile(`^(note-)?(\d{4}-\d{2}-\d{2}-\d{2}-\d{2})-(.*)$`)

// ParseFolderName inverts FolderName for a bare folder name (no directory
// part). Folder names without a kind prefix are ambiguous between blog posts
// and photo posts; they parse as blog posts and callers consult front matter
// to tell the two apart.
func ParseFolderName(name string) (model.PostKind, time.Time, string, bool) {
	m := folderRe.FindStringSubmatch(name)
	if m == nil {
		return "", time.Time{}, "", false
	}
	t, err := time.ParseInLocation(dateLayout, m[2], time.Local)
	if err != nil {
		return "", time.Time{}, "", false
	}
	kind := model.KindBlogPost
	if m[1] == notePrefix {
		kind = model.KindNote
	}
	return kind, t, m[3], true
}
