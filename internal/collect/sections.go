// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package collect

import "github.com/pdiddy/project-builder/pkg/types"

// Prompts for the repeating sections.
const (
	PromptModuleTitle       = "Module Title (or 'done'): "
	PromptModuleDescription = "Module Description: "
	PromptFunctional        = "Functional Requirement (or 'done'): "
	PromptNonFunctional     = "Non-Functional Requirement (or 'done'): "
)

// Field reads a single value. End of input yields the empty string.
func Field(src LineSource, prompt string) string {
	s, _ := src.Next(prompt)
	return s
}

// CollectModules reads title/description pairs until a title equals "done"
// or input ends. The description is read for every non-terminating title,
// including an empty one.
func CollectModules(src LineSource) []types.Module {
	var modules []types.Module
	for {
		title, ok := src.Next(PromptModuleTitle)
		if !ok || isDone(title) {
			return modules
		}
		desc, _ := src.Next(PromptModuleDescription)
		modules = append(modules, types.Module{Title: title, Description: desc})
	}
}

// CollectLines reads free-text entries until "done" or end of input.
// Empty entries are dropped.
func CollectLines(src LineSource, prompt string) []string {
	var lines []string
	for {
		line, ok := src.Next(prompt)
		if !ok || isDone(line) {
			return lines
		}
		if line != "" {
			lines = append(lines, line)
		}
	}
}

// ApplyDefaults tops up short sections from d. All default modules are
// appended when fewer than MinModules were entered; requirement defaults are
// appended only to an empty section.
func ApplyDefaults(p *types.Project, d types.DefaultsConfig) {
	if len(p.Modules) < types.MinModules {
		p.Modules = append(p.Modules, d.Modules...)
	}
	if len(p.FunctionalReqs) == 0 {
		p.FunctionalReqs = append(p.FunctionalReqs, d.Functional...)
	}
	if len(p.NonFunctionalReqs) == 0 {
		p.NonFunctionalReqs = append(p.NonFunctionalReqs, d.NonFunctional...)
	}
}
