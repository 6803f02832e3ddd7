// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/project-builder/internal/collect"
	"github.com/pdiddy/project-builder/internal/emit"
	"github.com/pdiddy/project-builder/internal/render"
)

func init() {
	rootCmd.Flags().Bool("strict", false, "exit non-zero when the output files cannot be written")
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadBuildConfig()
	if err != nil {
		return err
	}
	log := newLogger(cmd)
	defer log.Sync()

	if f := viper.ConfigFileUsed(); f != "" {
		log.Info("using config file", "path", f)
	}

	out := cmd.OutOrStdout()
	console := collect.NewConsole(cmd.InOrStdin(), out)
	project, err := collect.NewSession(console, out, cfg).Run()
	if err != nil {
		return err
	}
	log = log.With("title", project.Title)
	log.Debug("project collected",
		"modules", len(project.Modules),
		"functional", len(project.FunctionalReqs),
		"non_functional", len(project.NonFunctionalReqs))

	res := emit.New(cfg.OutputRoot, log).Emit(project.Title, render.README(project), render.Statement(project))
	if !res.OK() {
		fmt.Fprintln(out, "ERROR WRITING FILES: "+res.Err.Error())
		log.Error("writing project files failed", "dir", res.Dir, "written", res.Files, "error", res.Err)
	} else {
		log.Info("project files written", "dir", res.Dir)
	}

	fmt.Fprintln(out, "\nProject files generated successfully!")
	fmt.Fprintln(out, "Check the folder: "+emit.DisplayFolder(cfg.OutputRoot, project.Title))

	strict, _ := cmd.Flags().GetBool("strict")
	if strict && !res.OK() {
		return fmt.Errorf("writing project files: %w", res.Err)
	}
	return nil
}
