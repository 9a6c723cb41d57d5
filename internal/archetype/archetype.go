// Package archetype renders the initial contents of a new post document and
// reads front matter back out of existing ones.
package archetype

import (
	"bytes"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/oklog/ulid/v2"
	"gopkg.in/yaml.v3"

	"postkit/internal/model"
)

const delimiter = "---"

// Data is what templates and front matter are built from.
type Data struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	Date  string `yaml:"date"`
	Kind  string `yaml:"kind"`
	Draft bool   `yaml:"draft"`
}

var entropy = rand.New(rand.NewSource(time.Now().UnixNano()))

// NewData builds the template data for a post created at t.
func NewData(kind model.PostKind, title string, t time.Time) Data {
	return Data{
		ID:    ulid.MustNew(ulid.Timestamp(t), entropy).String(),
		Title: title,
		Date:  t.Format(time.RFC3339),
		Kind:  string(kind),
		Draft: true,
	}
}

// Contents returns the initial index.md body for the configured archetype.
// "" keeps the document empty, "default" emits a front matter block, anything
// else is read as a text/template path and rendered with d.
func Contents(archetype string, d Data) (string, error) {
	switch archetype {
	case "":
		return "", nil
	case "default":
		return FrontMatter(d)
	}

	src, err := os.ReadFile(archetype)
	if err != nil {
		return "", fmt.Errorf("read archetype: %w", err)
	}
	tmpl, err := template.New(filepath.Base(archetype)).Parse(string(src))
	if err != nil {
		return "", fmt.Errorf("parse archetype: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, d); err != nil {
		return "", fmt.Errorf("render archetype: %w", err)
	}
	return buf.String(), nil
}

// FrontMatter renders d as a YAML front matter block.
func FrontMatter(d Data) (string, error) {
	b, err := yaml.Marshal(d)
	if err != nil {
		return "", fmt.Errorf("encode front matter: %w", err)
	}
	return delimiter + "\n" + string(b) + delimiter + "\n\n", nil
}

// ParseFrontMatter extracts the front matter block from a document body.
// Documents without one (including empty documents) return ok=false.
func ParseFrontMatter(body []byte) (Data, bool) {
	block, _, ok := split(body)
	if !ok {
		return Data{}, false
	}
	var d Data
	if err := yaml.Unmarshal(block, &d); err != nil {
		return Data{}, false
	}
	return d, true
}

// StripFrontMatter returns the document body without its front matter block.
func StripFrontMatter(body []byte) []byte {
	_, rest, ok := split(body)
	if !ok {
		return body
	}
	return rest
}

func split(body []byte) (frontMatter, rest []byte, ok bool) {
	s := string(body)
	if !strings.HasPrefix(s, delimiter+"\n") {
		return nil, nil, false
	}
	s = s[len(delimiter)+1:]
	end := strings.Index(s, "\n"+delimiter)
	if end < 0 {
		return nil, nil, false
	}
	rest = []byte(strings.TrimLeft(s[end+1+len(delimiter):], "\n"))
	return []byte(s[:end+1]), rest, true
}
