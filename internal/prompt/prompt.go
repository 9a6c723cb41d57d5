// Package prompt implements the interactive terminal prompts used by
// `postkit new`: a filterable choice list and a single-line text entry. Each
// prompt resolves at most once; a prompt whose input ends before a value is
// confirmed resolves ErrCanceled instead of blocking forever.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrCanceled is returned when the user dismisses a prompt (EOF on input).
var ErrCanceled = errors.New("prompt canceled")

// ErrResolved is returned when a prompt is asked to resolve a second time.
var ErrResolved = errors.New("prompt already resolved")

// outcome holds a prompt's single resolution.
type outcome struct {
	value string
	done  bool
}

func (o *outcome) resolve(v string) error {
	if o.done {
		return ErrResolved
	}
	o.value = v
	o.done = true
	return nil
}

// Choice prompts for one of a fixed set of options. Each line read is either
// a selection (an index into the surviving options, or an exact option name)
// or a new filter query. Options surviving a query are exactly the
// case-insensitive substring matches, in their original order.
type Choice struct {
	Label   string
	Options []string

	// In/Out default to stdin/stdout.
	In  io.Reader
	Out io.Writer

	res outcome
}

// Run reads input until an option is selected and returns it.
func (c *Choice) Run() (string, error) {
	if c.res.done {
		return "", ErrResolved
	}
	in, out := c.streams()
	sc := bufio.NewScanner(in)

	query := ""
	for {
		matches := Filter(c.Options, query)
		c.render(out, matches, query)

		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", fmt.Errorf("read input: %w", err)
			}
			return "", ErrCanceled
		}
		line := strings.TrimSpace(sc.Text())

		if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= len(matches) {
			if err := c.res.resolve(matches[n-1]); err != nil {
				return "", err
			}
			return c.res.value, nil
		}
		for _, m := range matches {
			if strings.EqualFold(m, line) {
				if err := c.res.resolve(m); err != nil {
					return "", err
				}
				return c.res.value, nil
			}
		}
		query = line
	}
}

func (c *Choice) render(out io.Writer, matches []string, query string) {
	if query == "" {
		fmt.Fprintf(out, "%s:\n", c.Label)
	} else {
		fmt.Fprintf(out, "%s (filter: %q):\n", c.Label, query)
	}
	// Two-line blocks: primary and secondary label, currently identical.
	for i, m := range matches {
		fmt.Fprintf(out, "%3d. %s\n     %s\n", i+1, m, m)
	}
	fmt.Fprint(out, "> ")
}

func (c *Choice) streams() (io.Reader, io.Writer) {
	in, out := c.In, c.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return in, out
}

// Filter returns the options whose text contains query, case-insensitively,
// preserving the original order.
func Filter(options []string, query string) []string {
	q := strings.ToLower(query)
	var out []string
	for _, o := range options {
		if strings.Contains(strings.ToLower(o), q) {
			out = append(out, o)
		}
	}
	return out
}

// Text prompts for a single line of text. Submitting without typing resolves
// the empty string.
type Text struct {
	Label string

	In  io.Reader
	Out io.Writer

	res outcome
}

// Run reads one line and returns it verbatim (trailing newline removed).
func (t *Text) Run() (string, error) {
	if t.res.done {
		return "", ErrResolved
	}
	in, out := t.streams()
	fmt.Fprintf(out, "%s: ", t.Label)

	sc := bufio.NewScanner(in)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", ErrCanceled
	}
	if err := t.res.resolve(sc.Text()); err != nil {
		return "", err
	}
	return t.res.value, nil
}

func (t *Text) streams() (io.Reader, io.Writer) {
	in, out := t.In, t.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return in, out
}
