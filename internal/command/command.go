// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

// Package command implements the urifmt command line interface.
package command

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/opentofu/urifmt/internal/logging"
)

const (
	envLogLevel  = "URIFMT_LOG_LEVEL"
	envLogFormat = "URIFMT_LOG_FORMAT"
)

// New returns the root urifmt command. buildVersion is reported by the
// version subcommand.
func New(buildVersion string) *cobra.Command {
	var logLevel, logFormat string

	root := &cobra.Command{
		Use:   "urifmt",
		Short: "Build percent-encoded URIs from templates",
		Long: `urifmt fills the placeholders of a URI template with values, escaping
each value so it cannot change the structure of the URI around it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := logging.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			format, err := logging.ParseFormat(logFormat)
			if err != nil {
				return err
			}
			logger := logging.New(logging.Config{
				Level:  level,
				Format: format,
				Output: cmd.ErrOrStderr(),
			})
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(logging.WithLogger(ctx, logger))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", envOr(envLogLevel, "warn"), "log level: debug, info, warn or error")
	root.PersistentFlags().StringVar(&logFormat, "log-format", envOr(envLogFormat, "text"), "log format: text or json")

	root.AddCommand(
		newRenderCommand(),
		newEscapeCommand(),
		newVersionCommand(buildVersion),
	)
	return root
}

// Execute runs the root command with the process arguments and returns the
// exit status.
func Execute(ctx context.Context, buildVersion string) int {
	root := New(buildVersion)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(root.ErrOrStderr(), "Error: %s\n", err)
		return 1
	}
	return 0
}

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func writeLine(w io.Writer, s string) error {
	_, err := fmt.Fprintln(w, s)
	return err
}
