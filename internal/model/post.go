// Package model defines the core post data types.
package model

import (
	"fmt"
	"time"
)

// PostKind is the closed category tag attached to a new post.
type PostKind string

const (
	KindBlogPost PostKind = "blog-post"
	KindNote     PostKind = "note"
	KindPhotos   PostKind = "photos"
)

// Kinds lists all post kinds in display order.
var Kinds = []PostKind{KindBlogPost, KindNote, KindPhotos}

// ValidKinds are the allowed post kinds.
var ValidKinds = map[PostKind]bool{
	KindBlogPost: true,
	KindNote:     true,
	KindPhotos:   true,
}

// ParseKind validates a kind string.
func ParseKind(s string) (PostKind, error) {
	k := PostKind(s)
	if !ValidKinds[k] {
		return "", fmt.Errorf("unknown kind %q (use blog-post, note, or photos)", s)
	}
	return k, nil
}

// Post represents an existing post discovered under the content tree.
type Post struct {
	Kind   PostKind  `json:"kind"`
	Title  string    `json:"title"`
	Date   time.Time `json:"date"`
	Folder string    `json:"folder"`
	Draft  bool      `json:"draft,omitempty"`
	ID     string    `json:"id,omitempty"`
}
