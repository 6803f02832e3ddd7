// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package collect gathers a Project from a line-oriented text source.
// Section loops are written against LineSource so they run without a real
// console; Console binds a LineSource to a reader and writer.
package collect

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// doneToken ends a repeating section, compared case-insensitively.
const doneToken = "done"

// LineSource yields one trimmed response per prompt. The boolean is false
// once input is exhausted.
type LineSource interface {
	Next(prompt string) (string, bool)
}

// Console prompts on w and reads lines from r.
type Console struct {
	w io.Writer
	r *bufio.Reader
}

// NewConsole returns a Console reading from r and prompting on w.
func NewConsole(r io.Reader, w io.Writer) *Console {
	return &Console{w: w, r: bufio.NewReader(r)}
}

// Next prints prompt without a newline and returns the next trimmed line.
// Lines have no length limit. A final line without a newline is still
// returned; input ends once nothing is left to read.
func (c *Console) Next(prompt string) (string, bool) {
	fmt.Fprint(c.w, prompt)
	line, err := c.r.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimSpace(line), true
}

// Lines is an in-memory LineSource. It records every prompt it was asked.
type Lines struct {
	lines   []string
	Prompts []string
}

// NewLines returns a LineSource replaying lines in order.
func NewLines(lines ...string) *Lines {
	return &Lines{lines: lines}
}

// Next returns the next queued line, trimmed.
func (l *Lines) Next(prompt string) (string, bool) {
	l.Prompts = append(l.Prompts, prompt)
	if len(l.lines) == 0 {
		return "", false
	}
	line := l.lines[0]
	l.lines = l.lines[1:]
	return strings.TrimSpace(line), true
}

func isDone(s string) bool {
	return strings.EqualFold(s, doneToken)
}
