//go:build mage

// Package main contains Mage build targets for project-builder developer tooling.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// outputRoot is where generated project folders are written.
const outputRoot = "output"

// Init creates the output root so generated folders land in a known place.
func Init() error {
	if err := os.MkdirAll(outputRoot, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", outputRoot, err)
	}
	fmt.Println("  ", outputRoot)
	fmt.Println("Output directory initialized.")
	return nil
}

// Clean removes generated project folders and the built binary.
func Clean() error {
	for _, dir := range []string{outputRoot, binDir} {
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("removing %s: %w", dir, err)
		}
	}
	return nil
}

const (
	binDir  = "bin"
	binName = "project-builder"
	cmdPkg  = "./cmd/project-builder"
)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests for every package.
func Test() error {
	if err := sh.RunV("go", "test", "./..."); err != nil {
		return fmt.Errorf("go test: %w", err)
	}
	return nil
}

// Run builds the binary and starts an interactive session.
func Run() error {
	mg.Deps(Init, Build)
	return sh.RunV(filepath.Join(binDir, binName))
}

// Stats prints Go line counts and the word count of every generated
// project's README.md and statement.md.
func Stats() error {
	prodLines, testLines, err := goLines(".")
	if err != nil {
		return err
	}
	fmt.Printf("Lines of code (Go, production): %d\n", prodLines)
	fmt.Printf("Lines of code (Go, tests):      %d\n", testLines)

	projects, err := projectWords(outputRoot)
	if err != nil {
		return err
	}
	if len(projects) == 0 {
		fmt.Printf("No generated projects under %s/\n", outputRoot)
		return nil
	}
	for _, p := range projects {
		fmt.Printf("%-30s  README %5d words  statement %5d words\n", p.Name, p.Readme, p.Statement)
	}
	return nil
}

// goLines counts non-blank lines in production and test Go files under
// root, skipping hidden and underscore-prefixed directories.
func goLines(root string) (prod, test int, err error) {
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && (strings.HasPrefix(d.Name(), "_") || strings.HasPrefix(d.Name(), ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		n := nonBlankLines(data)
		if strings.HasSuffix(path, "_test.go") {
			test += n
		} else {
			prod += n
		}
		return nil
	})
	return prod, test, err
}

func nonBlankLines(data []byte) int {
	n := 0
	for _, line := range bytes.Split(data, []byte("\n")) {
		if len(bytes.TrimSpace(line)) > 0 {
			n++
		}
	}
	return n
}

// projectStats holds the word counts of one generated project folder.
type projectStats struct {
	Name      string
	Readme    int
	Statement int
}

// projectWords reports word counts for each project folder under root,
// sorted by folder name. A missing root yields no projects.
func projectWords(root string) ([]projectStats, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", root, err)
	}

	var stats []projectStats
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		dir := filepath.Join(root, e.Name())
		readme, err := fileWords(filepath.Join(dir, "README.md"))
		if err != nil {
			return nil, err
		}
		statement, err := fileWords(filepath.Join(dir, "statement.md"))
		if err != nil {
			return nil, err
		}
		stats = append(stats, projectStats{Name: e.Name(), Readme: readme, Statement: statement})
	}
	return stats, nil
}

// fileWords counts whitespace-separated words in path. A missing file
// counts as zero, as after a partial write.
func fileWords(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}
	return len(strings.Fields(string(data))), nil
}
