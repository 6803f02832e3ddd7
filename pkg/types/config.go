package types

import "fmt"

// Minimum section sizes guaranteed before rendering.
const (
	MinModules      = 3
	MinRequirements = 2
)

// DefaultsConfig holds the entries appended to sections the user left short.
type DefaultsConfig struct {
	// Modules are appended, all of them, when fewer than MinModules were entered.
	Modules []Module `json:"modules" yaml:"modules" mapstructure:"modules"`

	// Functional is appended when no functional requirement was entered.
	Functional []string `json:"functional" yaml:"functional" mapstructure:"functional"`

	// NonFunctional is appended when no non-functional requirement was entered.
	NonFunctional []string `json:"non_functional" yaml:"non_functional" mapstructure:"non_functional"`
}

// BuildConfig holds the settings for one interactive build.
type BuildConfig struct {
	// Course is stamped on every Author (default "Computer Engineering 3rd Semester").
	Course string `json:"course" yaml:"course" mapstructure:"course"`

	// OutputRoot is the directory that holds one folder per project (default "output").
	OutputRoot string `json:"output_root" yaml:"output_root" mapstructure:"output_root"`

	// Defaults fills sections left below their minimum.
	Defaults DefaultsConfig `json:"defaults" yaml:"defaults" mapstructure:"defaults"`
}

// DefaultBuildConfig returns the stock course, output root and default entries.
func DefaultBuildConfig() BuildConfig {
	return BuildConfig{
		Course:     "Computer Engineering 3rd Semester",
		OutputRoot: "output",
		Defaults: DefaultsConfig{
			Modules: []Module{
				{Title: "User Management", Description: "Handles basic user details"},
				{Title: "Project Management", Description: "Stores project information"},
				{Title: "Report Generator", Description: "Creates README & statement files"},
			},
			Functional: []string{
				"User can create/view project details",
				"System generates README.md & statement.md",
			},
			NonFunctional: []string{
				"Simple console-based application",
				"Generates structured markdown files",
			},
		},
	}
}

// Validate checks that the defaults alone can satisfy the section minimums,
// so a filled Project always has at least MinModules modules and
// MinRequirements entries per requirement list.
func (c BuildConfig) Validate() error {
	if n := len(c.Defaults.Modules); n < MinModules {
		return fmt.Errorf("defaults.modules: %d entries, need at least %d", n, MinModules)
	}
	if n := len(c.Defaults.Functional); n < MinRequirements {
		return fmt.Errorf("defaults.functional: %d entries, need at least %d", n, MinRequirements)
	}
	if n := len(c.Defaults.NonFunctional); n < MinRequirements {
		return fmt.Errorf("defaults.non_functional: %d entries, need at least %d", n, MinRequirements)
	}
	return nil
}
