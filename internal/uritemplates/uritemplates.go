// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

// Package uritemplates splits URI templates written in the Level 1 syntax of
// [RFC 6570] into their literal text and variable names.
//
// Only the syntax is taken from the RFC. Expansion is left to the caller,
// which in this module applies its own component-encoding rules rather than
// the RFC's simple string expansion, and which may treat some values as raw.
// Operators, explode modifiers and prefix modifiers from the higher levels
// are rejected at parse time.
//
// [RFC 6570]: https://www.rfc-editor.org/rfc/rfc6570
package uritemplates
