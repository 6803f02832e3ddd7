// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package emit

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeTitle(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"My Project! #1", "My_Project_1"},
		{"Library System", "Library_System"},
		{"snake_case stays", "snake_case_stays"},
		{"Café Ünïcode", "Caf_ncode"},
		{"  padded  ", "__padded__"},
		{"!!!", ""},
		{"", ""},
		{"tab\tseparated", "tabseparated"},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeTitle(tt.title))
		})
	}
}

func TestDisplayFolder(t *testing.T) {
	assert.Equal(t, "output/Library_System", DisplayFolder("output", "Library System"))
	// Punctuation is kept in the displayed path.
	assert.Equal(t, "output/My_Project!_#1", DisplayFolder("output", "My Project! #1"))
}

func TestEmitWritesBothFiles(t *testing.T) {
	root := filepath.Join(t.TempDir(), "output")
	e := New(root, nil)

	res := e.Emit("Library System", "# readme\n", "# statement")
	require.NoError(t, res.Err)
	assert.True(t, res.OK())
	assert.Equal(t, filepath.Join(root, "Library_System"), res.Dir)
	assert.Len(t, res.Files, 2)

	readme, err := os.ReadFile(filepath.Join(res.Dir, "README.md"))
	require.NoError(t, err)
	assert.Equal(t, "# readme\n", string(readme))

	statement, err := os.ReadFile(filepath.Join(res.Dir, "statement.md"))
	require.NoError(t, err)
	assert.Equal(t, "# statement", string(statement))
}

func TestEmitIdempotent(t *testing.T) {
	root := t.TempDir()
	e := New(root, nil)

	read := func(dir string) (readme, statement []byte) {
		t.Helper()
		readme, err := os.ReadFile(filepath.Join(dir, "README.md"))
		require.NoError(t, err)
		statement, err = os.ReadFile(filepath.Join(dir, "statement.md"))
		require.NoError(t, err)
		return readme, statement
	}

	first := e.Emit("Repeat Me", "same readme", "same statement")
	require.NoError(t, first.Err)
	readmeBefore, statementBefore := read(first.Dir)

	second := e.Emit("Repeat Me", "same readme", "same statement")
	require.NoError(t, second.Err)
	readmeAfter, statementAfter := read(second.Dir)

	assert.Equal(t, readmeBefore, readmeAfter)
	assert.Equal(t, statementBefore, statementAfter)
	assert.Equal(t, "same readme", string(readmeAfter))
	assert.Equal(t, "same statement", string(statementAfter))
}

func TestEmitOverwritesShorterContent(t *testing.T) {
	root := t.TempDir()
	e := New(root, nil)

	require.NoError(t, e.Emit("P", "a much longer readme body", "statement").Err)
	require.NoError(t, e.Emit("P", "short", "s").Err)

	got, err := os.ReadFile(filepath.Join(root, "P", "README.md"))
	require.NoError(t, err)
	assert.Equal(t, "short", string(got))
}

func TestEmitDirectoryFailure(t *testing.T) {
	root := filepath.Join(t.TempDir(), "blocked")
	require.NoError(t, os.WriteFile(root, []byte("not a directory"), 0o644))

	res := New(root, nil).Emit("Library System", "r", "s")
	require.Error(t, res.Err)
	assert.False(t, res.OK())
	assert.Empty(t, res.Files)

	var werr *WriteError
	require.True(t, errors.As(res.Err, &werr))
	assert.Equal(t, "mkdir", werr.Op)
	assert.NotNil(t, errors.Unwrap(res.Err))

	// The path appears once, from the underlying *fs.PathError.
	assert.Equal(t, werr.Err.Error(), res.Err.Error())
	assert.Equal(t, 1, strings.Count(res.Err.Error(), root))
}

func TestWriteErrorMessage(t *testing.T) {
	plain := &WriteError{Op: "write", Path: "output/P/README.md", Err: errors.New("disk full")}
	assert.Equal(t, "write output/P/README.md: disk full", plain.Error())

	cause := &fs.PathError{Op: "open", Path: "output/P/README.md", Err: errors.New("permission denied")}
	wrapped := &WriteError{Op: "write", Path: "output/P/README.md", Err: cause}
	assert.Equal(t, "open output/P/README.md: permission denied", wrapped.Error())
}

func TestEmitPartialWrite(t *testing.T) {
	root := t.TempDir()
	// A directory named statement.md makes the second write fail.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Half", "statement.md"), 0o755))

	res := New(root, nil).Emit("Half", "readme body", "statement body")
	require.Error(t, res.Err)

	var werr *WriteError
	require.True(t, errors.As(res.Err, &werr))
	assert.Equal(t, "write", werr.Op)
	assert.Equal(t, filepath.Join(root, "Half", "statement.md"), werr.Path)

	// README stays behind; no cleanup is attempted.
	assert.Equal(t, []string{filepath.Join(root, "Half", "README.md")}, res.Files)
	got, err := os.ReadFile(filepath.Join(root, "Half", "README.md"))
	require.NoError(t, err)
	assert.Equal(t, "readme body", string(got))
}
