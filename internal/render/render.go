// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns a finalized Project into its two markdown documents.
// README and Statement use separate layouts and share no formatting code.
package render

import (
	"fmt"
	"strings"

	"github.com/pdiddy/project-builder/pkg/types"
)

// Section headings of the README.
const (
	HeadingProblem       = "## Problem Statement"
	HeadingScope         = "## Project Scope"
	HeadingModules       = "## Modules"
	HeadingFunctional    = "## Functional Requirements"
	HeadingNonFunctional = "## Non-Functional Requirements"
)

// README renders the full project document.
func README(p types.Project) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", p.Title)
	fmt.Fprintf(&b, "*Author:* %s\n", p.Author.Name)
	fmt.Fprintf(&b, "*Roll No:* %s\n", p.Author.Roll)
	fmt.Fprintf(&b, "*Course:* %s\n\n", p.Author.Course)

	fmt.Fprintf(&b, "%s\n%s\n\n", HeadingProblem, p.ProblemStatement)
	fmt.Fprintf(&b, "%s\n%s\n\n", HeadingScope, p.Scope)

	b.WriteString(HeadingModules + "\n")
	for _, m := range p.Modules {
		fmt.Fprintf(&b, "- *%s*: %s\n", m.Title, m.Description)
	}

	b.WriteString("\n" + HeadingFunctional + "\n")
	for _, r := range p.FunctionalReqs {
		fmt.Fprintf(&b, "- %s\n", r)
	}

	b.WriteString("\n" + HeadingNonFunctional + "\n")
	for _, r := range p.NonFunctionalReqs {
		fmt.Fprintf(&b, "- %s\n", r)
	}

	return b.String()
}

// Statement renders the short project statement. The document ends with the
// author trailer and no final newline.
func Statement(p types.Project) string {
	var mods strings.Builder
	for _, m := range p.Modules {
		mods.WriteString("- " + m.Title + ": " + m.Description + "\n")
	}

	return "# Project Statement\n\n" +
		"*Title:* " + p.Title + "\n\n" +
		"*Problem Statement:*\n" + p.ProblemStatement + "\n\n" +
		"*Scope:*\n" + p.Scope + "\n\n" +
		"*Modules:*\n" +
		mods.String() +
		"\n*Author:* " + p.Author.Name + " (" + p.Author.Roll + ")"
}

// ModuleBullets counts the bullet lines in the Modules section of a rendered
// README. The section ends at the next heading.
func ModuleBullets(readme string) int {
	count := 0
	inModules := false
	for _, line := range strings.Split(readme, "\n") {
		if strings.HasPrefix(line, "#") {
			inModules = line == HeadingModules
			continue
		}
		if inModules && strings.HasPrefix(line, "- ") {
			count++
		}
	}
	return count
}
