// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the entities collected for a project and the build
// configuration shared by the collector and the emitter.
package types

import "strings"

// Author identifies the student submitting the project.
type Author struct {
	// Name is the author's display name.
	Name string `json:"name" yaml:"name"`

	// Roll is the author's roll number.
	Roll string `json:"roll" yaml:"roll"`

	// Course is the course the project is submitted for.
	Course string `json:"course" yaml:"course"`
}

// NewAuthor returns an Author with every field trimmed.
func NewAuthor(name, roll, course string) Author {
	return Author{
		Name:   strings.TrimSpace(name),
		Roll:   strings.TrimSpace(roll),
		Course: strings.TrimSpace(course),
	}
}

// Module is a named functional unit of the described project.
// Modules are rendered in insertion order.
type Module struct {
	Title       string `json:"title" yaml:"title" mapstructure:"title"`
	Description string `json:"description" yaml:"description" mapstructure:"description"`
}

// Project aggregates everything collected for one run. A Project handed to
// the renderer is never mutated again.
type Project struct {
	// Title is the project title; it also names the output directory.
	Title string `json:"title" yaml:"title"`

	// ProblemStatement describes the problem the project addresses.
	ProblemStatement string `json:"problem_statement" yaml:"problem_statement"`

	// Scope describes what the project covers.
	Scope string `json:"scope" yaml:"scope"`

	// Modules lists the project's modules in entry order.
	Modules []Module `json:"modules" yaml:"modules"`

	// FunctionalReqs lists behaviors the project provides.
	FunctionalReqs []string `json:"functional_requirements" yaml:"functional_requirements"`

	// NonFunctionalReqs lists quality attributes of the project.
	NonFunctionalReqs []string `json:"non_functional_requirements" yaml:"non_functional_requirements"`

	// Author is the student who described the project.
	Author Author `json:"author" yaml:"author"`
}
