// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package collect

import (
	"errors"
	"slices"
	"strings"

	"github.com/pdiddy/project-builder/pkg/types"
)

// ErrFinalized is returned when a Builder is finalized a second time.
var ErrFinalized = errors.New("project already finalized")

// Builder accumulates project fields during collection. Finalize applies the
// default fill and hands out the finished Project exactly once.
type Builder struct {
	project   types.Project
	defaults  types.DefaultsConfig
	finalized bool
}

// NewBuilder returns a Builder for author that fills short sections from d.
func NewBuilder(author types.Author, d types.DefaultsConfig) *Builder {
	return &Builder{
		project:  types.Project{Author: author},
		defaults: d,
	}
}

// Details sets the single-value project fields.
func (b *Builder) Details(title, problem, scope string) *Builder {
	b.project.Title = strings.TrimSpace(title)
	b.project.ProblemStatement = strings.TrimSpace(problem)
	b.project.Scope = strings.TrimSpace(scope)
	return b
}

// AddModules appends modules in order.
func (b *Builder) AddModules(mods ...types.Module) *Builder {
	for _, m := range mods {
		b.project.Modules = append(b.project.Modules, types.Module{
			Title:       strings.TrimSpace(m.Title),
			Description: strings.TrimSpace(m.Description),
		})
	}
	return b
}

// AddFunctional appends functional requirements in order.
func (b *Builder) AddFunctional(reqs ...string) *Builder {
	b.project.FunctionalReqs = appendTrimmed(b.project.FunctionalReqs, reqs)
	return b
}

// AddNonFunctional appends non-functional requirements in order.
func (b *Builder) AddNonFunctional(reqs ...string) *Builder {
	b.project.NonFunctionalReqs = appendTrimmed(b.project.NonFunctionalReqs, reqs)
	return b
}

// Finalize applies the default fill and returns the Project. The returned
// value shares no slices with the Builder.
func (b *Builder) Finalize() (types.Project, error) {
	if b.finalized {
		return types.Project{}, ErrFinalized
	}
	b.finalized = true

	p := b.project
	p.Modules = slices.Clone(p.Modules)
	p.FunctionalReqs = slices.Clone(p.FunctionalReqs)
	p.NonFunctionalReqs = slices.Clone(p.NonFunctionalReqs)
	ApplyDefaults(&p, types.DefaultsConfig{
		Modules:       slices.Clone(b.defaults.Modules),
		Functional:    slices.Clone(b.defaults.Functional),
		NonFunctional: slices.Clone(b.defaults.NonFunctional),
	})
	return p, nil
}

func appendTrimmed(dst, src []string) []string {
	for _, s := range src {
		dst = append(dst, strings.TrimSpace(s))
	}
	return dst
}
