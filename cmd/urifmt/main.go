// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

// Command urifmt renders URI templates from the command line.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/opentofu/urifmt/internal/command"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "0.1.0-dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := command.Execute(ctx, Version)
	stop()
	os.Exit(code)
}
