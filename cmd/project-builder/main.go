// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the project-builder CLI.
// The root command runs the interactive build: collect, render, emit.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/project-builder/internal/logger"
	"github.com/pdiddy/project-builder/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// configErr holds a config file that exists but could not be read.
var configErr error

// rootCmd is the base command for the project-builder CLI.
var rootCmd = &cobra.Command{
	Use:   "project-builder",
	Short: "Collect project details and generate README.md and statement.md",
	Long: `project-builder asks for the author, the project title, problem statement,
scope, modules and requirements on the console, then writes README.md and
statement.md under output/<project title>/.

Sections left short are filled with default entries. Type 'done' to end a
repeating section.`,
	SilenceUsage: true,
	RunE:         runBuild,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./project-builder.yaml or ~/.config/project-builder/config.yaml)")
	rootCmd.PersistentFlags().String("output-root", "", "directory that holds generated project folders (default \"output\")")
	rootCmd.PersistentFlags().String("course", "", "course stamped on the author block")
	rootCmd.PersistentFlags().Bool("verbose", false, "log diagnostics at debug level on stderr")

	bindFlags()
}

// bindFlags maps persistent flags onto their config keys.
func bindFlags() {
	_ = viper.BindPFlag("output_root", rootCmd.PersistentFlags().Lookup("output-root"))
	_ = viper.BindPFlag("course", rootCmd.PersistentFlags().Lookup("course"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	d := types.DefaultBuildConfig()
	viper.SetDefault("course", d.Course)
	viper.SetDefault("output_root", d.OutputRoot)

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("project-builder")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "project-builder"))
		}
	}

	viper.SetEnvPrefix("PROJECT_BUILDER")
	viper.AutomaticEnv()

	configErr = nil
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			configErr = err
		}
	}
}

// loadBuildConfig merges config file, environment and flags over the
// built-in defaults.
func loadBuildConfig() (types.BuildConfig, error) {
	if configErr != nil {
		return types.BuildConfig{}, fmt.Errorf("reading config: %w", configErr)
	}

	cfg := types.DefaultBuildConfig()
	if c := viper.GetString("course"); c != "" {
		cfg.Course = c
	}
	if r := viper.GetString("output_root"); r != "" {
		cfg.OutputRoot = r
	}

	if viper.IsSet("defaults.modules") {
		var mods []types.Module
		if err := viper.UnmarshalKey("defaults.modules", &mods); err != nil {
			return types.BuildConfig{}, fmt.Errorf("parsing defaults.modules: %w", err)
		}
		cfg.Defaults.Modules = mods
	}
	if viper.IsSet("defaults.functional") {
		cfg.Defaults.Functional = viper.GetStringSlice("defaults.functional")
	}
	if viper.IsSet("defaults.non_functional") {
		cfg.Defaults.NonFunctional = viper.GetStringSlice("defaults.non_functional")
	}
	if err := cfg.Validate(); err != nil {
		return types.BuildConfig{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command) *logger.Logger {
	return logger.New(cmd.ErrOrStderr(), viper.GetBool("verbose"))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
