// Package main provides the rpgsim command simulator CLI.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	platformcmd "github.com/louisbranch/rpgsim/internal/platform/cmd"
	"github.com/louisbranch/rpgsim/internal/platform/config"

	rpgsimcmd "github.com/louisbranch/rpgsim/internal/cmd/rpgsim"
)

func main() {
	cfg, err := rpgsimcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceSimulator, func(ctx context.Context) error {
		return rpgsimcmd.Run(ctx, cfg, os.Stdout, os.Stderr)
	}); err != nil {
		config.Exitf("Error: %v", err)
	}
}
