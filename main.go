package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
)

func main() {
	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	opts, err := processOptions(flags, os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}

	config, err := buildConfig(opts)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	g, err := newGame(config, os.Stdout)
	if err != nil {
		log.Fatalf("Invalid game settings: %v", err)
	}
	log.Printf("Rules: %s | Iterations: %d | Boards: %d", g.rules, config.Iterations, len(opts.Inputs))

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = g.runAll(ctx, opts.Inputs); err != nil {
		stop()
		log.Fatal(err)
	}
}
