// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewInfoLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false)

	l.Debug("hidden detail")
	l.Info("files written", "dir", "output/Library_System")
	l.With("title", "Library System").Error("write failed", "error", "disk full")

	got := buf.String()
	assert.NotContains(t, got, "hidden detail")
	assert.Contains(t, got, "INFO")
	assert.Contains(t, got, "files written")
	assert.Contains(t, got, `"dir": "output/Library_System"`)
	assert.Contains(t, got, "ERROR")
	assert.Contains(t, got, `"title": "Library System"`)
	assert.Contains(t, got, `"error": "disk full"`)
}

func TestNewVerbose(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, true).Debug("directory ready", "dir", "output/x")
	assert.Contains(t, buf.String(), "DEBUG")
	assert.Contains(t, buf.String(), "directory ready")
}

func TestNopDiscards(t *testing.T) {
	l := Nop().With("component", "test")
	assert.NotPanics(t, func() {
		l.Debug("debug", "k", 1)
		l.Info("info")
		l.Error("error", "err", "boom")
		l.Sync()
	})
}
