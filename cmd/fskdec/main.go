// SPDX-License-Identifier: EPL-2.0

// Command fskdec decodes binary messages from FSK tone recordings.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ik5/fskdec/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()

	os.Exit(code)
}
