// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package collect

import (
	"fmt"
	"io"

	"github.com/pdiddy/project-builder/pkg/types"
)

// Banner is printed before the first prompt.
const Banner = "=== Project Builder ==="

// Prompts for the single-value fields.
const (
	PromptName    = "Enter your name: "
	PromptRoll    = "Enter your roll number: "
	PromptTitle   = "Project Title: "
	PromptProblem = "Problem Statement: "
	PromptScope   = "Project Scope: "
)

// Session drives the full prompt sequence for one project.
type Session struct {
	src LineSource
	out io.Writer
	cfg types.BuildConfig
}

// NewSession returns a Session reading answers from src and writing section
// banners to out. With a Console, out is normally the Console's own writer.
func NewSession(src LineSource, out io.Writer, cfg types.BuildConfig) *Session {
	return &Session{src: src, out: out, cfg: cfg}
}

// Run collects author, details, modules and requirements, then returns the
// finalized Project. Input is never rejected.
func (s *Session) Run() (types.Project, error) {
	fmt.Fprintln(s.out, Banner)

	name := Field(s.src, PromptName)
	roll := Field(s.src, PromptRoll)
	b := NewBuilder(types.NewAuthor(name, roll, s.cfg.Course), s.cfg.Defaults)

	fmt.Fprintln(s.out, "\n--- Enter Project Details ---")
	title := Field(s.src, PromptTitle)
	problem := Field(s.src, PromptProblem)
	scope := Field(s.src, PromptScope)
	b.Details(title, problem, scope)

	fmt.Fprintln(s.out, "\n--- Add Modules ---")
	b.AddModules(CollectModules(s.src)...)

	fmt.Fprintln(s.out, "\n--- Add Functional Requirements ---")
	b.AddFunctional(CollectLines(s.src, PromptFunctional)...)

	fmt.Fprintln(s.out, "\n--- Add Non-Functional Requirements ---")
	b.AddNonFunctional(CollectLines(s.src, PromptNonFunctional)...)

	return b.Finalize()
}
