// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opentofu/urifmt"
	"github.com/opentofu/urifmt/internal/logging"
	"github.com/opentofu/urifmt/internal/values"
)

type renderOptions struct {
	raw          []int
	set          []string
	setRaw       []string
	valuesFile   string
	allowMissing bool
}

func (o *renderOptions) named() bool {
	return o.valuesFile != "" || len(o.set) > 0 || len(o.setRaw) > 0
}

func newRenderCommand() *cobra.Command {
	opts := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render PATTERN [VALUE...]",
		Short: "Fill a URI template and print the result",
		Long: `Fill the {name} placeholders of PATTERN and print the resulting URI.

Values given as arguments fill the placeholders in order. Use --raw with a
zero-based position to insert that value without escaping.

Alternatively, fill placeholders by name with --set, --set-raw and --values.
The two styles cannot be combined.`,
		Example: `  urifmt render '/users/{group}?filter={filter}' admin/manager 'active&inactive'
  urifmt render '{base}/users/{id}' --raw 0 https://api.example.com/v1 42
  urifmt render '{base}/users/{id}' --set-raw base=/api/v1 --set id=a/b
  urifmt render '{base}/users/{group}' --values values.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := runRender(cmd, args[0], args[1:], opts)
			if err != nil {
				return err
			}
			return writeLine(cmd.OutOrStdout(), result)
		},
	}

	flags := cmd.Flags()
	flags.IntSliceVar(&opts.raw, "raw", nil, "zero-based `position` of a value to insert without escaping (repeatable)")
	flags.StringArrayVar(&opts.set, "set", nil, "set placeholder `name=value`, escaping the value (repeatable)")
	flags.StringArrayVar(&opts.setRaw, "set-raw", nil, "set placeholder `name=value` without escaping (repeatable)")
	flags.StringVar(&opts.valuesFile, "values", "", "read placeholder values from a YAML, TOML or JSON `file`")
	flags.BoolVar(&opts.allowMissing, "allow-missing", false, "expand placeholders without a value to the empty string")
	return cmd
}

func runRender(cmd *cobra.Command, pattern string, positional []string, opts *renderOptions) (string, error) {
	logger := logging.FromContext(cmd.Context())

	var tmplOpts []urifmt.TemplateOption
	if opts.allowMissing {
		tmplOpts = append(tmplOpts, urifmt.AllowMissing())
	}
	tmpl, err := urifmt.Parse(pattern, tmplOpts...)
	if err != nil {
		return "", err
	}
	logger.Debug("parsed template", "pattern", pattern, "placeholders", tmpl.Names())

	if !opts.named() {
		vals, err := positionalValues(positional, opts.raw)
		if err != nil {
			return "", err
		}
		result, err := tmpl.Execute(vals...)
		if err != nil {
			var merr *urifmt.MismatchError
			if errors.As(err, &merr) {
				return "", fmt.Errorf("template has %d placeholders but %d values were given", merr.Fragments-1, merr.Values)
			}
			return "", err
		}
		logger.Info("rendered template", "pattern", pattern, "values", len(vals))
		return result, nil
	}

	if len(positional) > 0 || len(opts.raw) > 0 {
		return "", errors.New("positional values and --raw cannot be combined with --set, --set-raw or --values")
	}
	vars, err := namedValues(opts)
	if err != nil {
		return "", err
	}
	result, err := tmpl.Expand(vars)
	if err != nil {
		return "", err
	}
	logger.Info("rendered template", "pattern", pattern, "values", len(vars))
	return result, nil
}

func positionalValues(args []string, raw []int) ([]any, error) {
	ret := make([]any, len(args))
	for i, arg := range args {
		ret[i] = arg
	}
	for _, pos := range raw {
		if pos < 0 || pos >= len(args) {
			return nil, fmt.Errorf("--raw %d is out of range; %d values were given", pos, len(args))
		}
		ret[pos] = urifmt.Raw(args[pos])
	}
	return ret, nil
}

// namedValues merges the values file, if any, with the --set and --set-raw
// flags. Flags override entries from the file.
func namedValues(opts *renderOptions) (map[string]any, error) {
	vars := map[string]any{}
	if opts.valuesFile != "" {
		f, err := values.Load(opts.valuesFile)
		if err != nil {
			return nil, err
		}
		vars, err = f.Vars()
		if err != nil {
			return nil, err
		}
	}
	for _, kv := range opts.set {
		name, value, err := splitAssignment("--set", kv)
		if err != nil {
			return nil, err
		}
		vars[name] = value
	}
	for _, kv := range opts.setRaw {
		name, value, err := splitAssignment("--set-raw", kv)
		if err != nil {
			return nil, err
		}
		vars[name] = urifmt.Raw(value)
	}
	return vars, nil
}

func splitAssignment(flag, kv string) (string, string, error) {
	name, value, ok := strings.Cut(kv, "=")
	if !ok || name == "" {
		return "", "", fmt.Errorf("invalid %s %q; must be name=value", flag, kv)
	}
	return name, value, nil
}
