// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MuhibNayem/IntelliTest/internal/report"
	"github.com/MuhibNayem/IntelliTest/pkg/analyzer"
)

// newAnalyzeCmd creates the "analyze" command.
func newAnalyzeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a project and write the report",
		Long:  "Analyze walks the project, parses every supported source file, resolves imports into a dependency graph and writes the analysis report.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, v)
		},
	}

	cmd.Flags().String("project-path", ".", "Project root directory")
	cmd.Flags().StringP("output", "o", "analysis.json", "Report path, or - for stdout")
	cmd.Flags().String("format", "", "Report format: json, yaml or text (default from the output extension)")

	return cmd
}

// runAnalyze executes the analysis.
func runAnalyze(cmd *cobra.Command, v *viper.Viper) error {
	projectPath, _ := cmd.Flags().GetString("project-path")
	output, _ := cmd.Flags().GetString("output")
	formatName, _ := cmd.Flags().GetString("format")

	format := report.FormatForPath(output)
	if formatName != "" {
		f, err := report.ParseFormat(formatName)
		if err != nil {
			return err
		}
		format = f
	}

	// Status lines go to stderr when the report itself goes to stdout.
	out := printer{w: cmd.OutOrStdout()}
	if output == "-" {
		out = printer{w: cmd.ErrOrStderr()}
	}

	cfg := analyzer.Config{
		ProjectPath:      projectPath,
		Concurrency:      v.GetInt("concurrency"),
		IgnoreDirs:       v.GetStringSlice("ignore-dirs"),
		RespectGitignore: v.GetBool("respect-gitignore"),
		KeepPartial:      v.GetBool("keep-partial"),
		Logger:           logrus.StandardLogger(),
	}

	a, err := analyzer.New(cfg)
	if err != nil {
		out.failure(err.Error())
		return fmt.Errorf("initialization failed: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	out.info(fmt.Sprintf("Analyzing %s", projectPath))
	result, err := a.Analyze(ctx)
	if err != nil {
		out.failure(err.Error())
		return err
	}

	if output == "-" {
		if err := report.Write(cmd.OutOrStdout(), result, format); err != nil {
			return err
		}
	} else {
		if err := report.WriteFile(output, result, format); err != nil {
			out.failure(err.Error())
			return err
		}
		out.success(fmt.Sprintf("Report written to %s", output))
	}

	out.summary(result)
	return nil
}
