package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"task-list/internal/cli"
	"task-list/internal/config"
)

func main() {
	// Load configuration: defaults, then $TASKS_CONFIG, then TASKS_* variables.
	// Flags are applied by the root command.
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCommand(cfg, cli.NewSession)
	if err := root.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
