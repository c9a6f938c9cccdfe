// Command crisis opens a window with a steerable vehicle on an endless grid.
//
// Controls: W/S accelerate and brake, A/D steer, Space centres the camera on
// the vehicle, middle mouse drag pans, Escape quits.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"crisis/internal/config"
	"crisis/internal/game"
	"crisis/internal/logging"
)

func main() {
	configPath := pflag.StringP("config", "c", "", "path to a YAML, JSON or TOML config file")
	pflag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	log := logging.New(cfg.Log.Level, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := game.RunDesktop(ctx, cfg, log); err != nil {
		log.Error().Err(err).Msg("exiting")
		stop()
		os.Exit(1)
	}
}
