// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

package urifmt

// TemplateOption customizes a [Template] at parse time.
type TemplateOption interface {
	applyOption(t *Template)
}

type templateOption func(t *Template)

func (o templateOption) applyOption(t *Template) {
	o(t)
}

// AllowMissing makes [Template.Expand] treat a placeholder with no value as
// the empty string, as RFC 6570 does for undefined variables, instead of
// failing with a [*MissingValueError].
func AllowMissing() TemplateOption {
	return templateOption(func(t *Template) {
		t.allowMissing = true
	})
}
