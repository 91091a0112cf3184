// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

package command

import (
	"bufio"

	"github.com/spf13/cobra"

	"github.com/opentofu/urifmt"
)

// maxLineBytes bounds a single line read by the escape command from stdin.
const maxLineBytes = 16 * 1024 * 1024

func newEscapeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "escape [STRING...]",
		Short: "Percent-encode strings as URI components",
		Long: `Print the URI component encoding of each argument on its own line.
With no arguments, encode each line read from standard input. Lines may be
up to 16 MiB long.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) > 0 {
				for _, arg := range args {
					if err := writeLine(out, urifmt.EscapeComponent(arg)); err != nil {
						return err
					}
				}
				return nil
			}

			sc := bufio.NewScanner(cmd.InOrStdin())
			sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
			for sc.Scan() {
				if err := writeLine(out, urifmt.EscapeComponent(sc.Text())); err != nil {
					return err
				}
			}
			return sc.Err()
		},
	}
}
