// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package emit writes rendered documents under <root>/<sanitized title>/.
package emit

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/project-builder/internal/logger"
)

const (
	readmeFile    = "README.md"
	statementFile = "statement.md"
)

// WriteError reports a failed directory creation or file write.
type WriteError struct {
	Op   string // "mkdir" or "write"
	Path string
	Err  error
}

// Error returns the cause alone when it already names an operation and path.
func (e *WriteError) Error() string {
	var pe *fs.PathError
	if errors.As(e.Err, &pe) {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Result is the outcome of one Emit. Files lists the paths written before
// any failure; a failed run leaves earlier files in place.
type Result struct {
	Dir   string
	Files []string
	Err   error
}

// OK reports whether both documents were written.
func (r Result) OK() bool {
	return r.Err == nil
}

// SanitizeTitle keeps ASCII letters, digits, underscores and spaces, then
// replaces spaces with underscores.
func SanitizeTitle(title string) string {
	var b strings.Builder
	for _, c := range title {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			b.WriteRune(c)
		case c == '_', c == ' ':
			b.WriteRune(c)
		}
	}
	return strings.ReplaceAll(b.String(), " ", "_")
}

// DisplayFolder is the folder shown to the operator on completion. Only
// spaces are replaced, so it can differ from the directory Emit creates
// when the title holds punctuation.
func DisplayFolder(root, title string) string {
	return root + "/" + strings.ReplaceAll(title, " ", "_")
}

// Emitter writes README.md and statement.md for a project title.
type Emitter struct {
	root string
	log  *logger.Logger
}

// New returns an Emitter rooted at root. A nil log discards diagnostics.
func New(root string, log *logger.Logger) *Emitter {
	if log == nil {
		log = logger.Nop()
	}
	return &Emitter{root: root, log: log}
}

// Dir returns the directory Emit writes to for title.
func (e *Emitter) Dir(title string) string {
	return filepath.Join(e.root, SanitizeTitle(title))
}

// Emit creates the project directory if needed and writes both documents,
// overwriting existing files. It stops at the first failure and does not
// remove files already written.
func (e *Emitter) Emit(title, readme, statement string) Result {
	res := Result{Dir: e.Dir(title)}

	if err := os.MkdirAll(res.Dir, 0o755); err != nil {
		res.Err = &WriteError{Op: "mkdir", Path: res.Dir, Err: err}
		return res
	}
	e.log.Debug("output directory ready", "dir", res.Dir)

	docs := []struct {
		name string
		body string
	}{
		{readmeFile, readme},
		{statementFile, statement},
	}
	for _, d := range docs {
		path := filepath.Join(res.Dir, d.name)
		if err := os.WriteFile(path, []byte(d.body), 0o644); err != nil {
			res.Err = &WriteError{Op: "write", Path: path, Err: err}
			return res
		}
		res.Files = append(res.Files, path)
		e.log.Debug("document written", "path", path, "bytes", len(d.body))
	}
	return res
}
