// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Command intellitest analyzes the structure of a Python, JavaScript,
// TypeScript or Java project and writes an analysis report.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MuhibNayem/IntelliTest/internal/logging"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd(viper.New()).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree around v so tests can use a private
// viper instance.
func newRootCmd(v *viper.Viper) *cobra.Command {
	var logCloser io.Closer

	rootCmd := &cobra.Command{
		Use:           "intellitest",
		Short:         "Project structure analyzer for test generation",
		Long:          "intellitest parses a multi-language source tree, builds its file dependency graph and finds the functions worth testing.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			closer, err := logging.Init(logrus.StandardLogger(), logging.Config{
				Level:  v.GetString("log-level"),
				Format: v.GetString("log-format"),
				Output: v.GetString("log-output"),
			})
			logCloser = closer
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if logCloser != nil {
				return logCloser.Close()
			}
			return nil
		},
	}

	// Global flags.
	flags := rootCmd.PersistentFlags()
	flags.String("log-level", "warn", "Log level (trace, debug, info, warn, error)")
	flags.String("log-format", "text", "Log format (text or json)")
	flags.String("log-output", "stderr", "Log destination (stderr, stdout or a file path)")
	flags.Int("concurrency", 0, "Parallel parsers (0 = number of CPUs)")
	flags.StringSlice("ignore-dirs", nil, "Extra directory names to skip")
	flags.Bool("respect-gitignore", true, "Skip files matched by .gitignore")
	flags.Bool("keep-partial", false, "Keep best-effort records of files with syntax errors")

	// Bind flags to viper.
	for _, name := range []string{
		"log-level", "log-format", "log-output", "concurrency",
		"ignore-dirs", "respect-gitignore", "keep-partial",
	} {
		v.BindPFlag(name, flags.Lookup(name))
	}

	// Env vars: INTELLITEST_LOG_LEVEL, INTELLITEST_CONCURRENCY, etc.
	v.SetEnvPrefix("INTELLITEST")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	// Config file.
	v.SetConfigName(".intellitest")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.ReadInConfig() // Ignore error; config file is optional.

	// Add commands.
	rootCmd.AddCommand(newAnalyzeCmd(v))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// newVersionCmd creates the "version" command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print intellitest version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "intellitest %s\n", version)
		},
	}
}
