// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

package command

import (
	"fmt"

	"github.com/hashicorp/go-version"
	"github.com/spf13/cobra"
)

func newVersionCommand(buildVersion string) *cobra.Command {
	var short bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the urifmt version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := version.NewVersion(buildVersion)
			if err != nil {
				return fmt.Errorf("invalid build version %q: %w", buildVersion, err)
			}
			if short {
				return writeLine(cmd.OutOrStdout(), v.String())
			}
			line := "urifmt v" + v.String()
			if v.Prerelease() != "" {
				line += " (development build)"
			}
			return writeLine(cmd.OutOrStdout(), line)
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "print only the version number")
	return cmd
}
