package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	channelscout "channel-scout/agents/channel-scout"
	"channel-scout/shared/config"
	"channel-scout/shared/logging"
	"channel-scout/shared/scheduler"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Output.DataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}

	// Create context that responds to signals
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	agent := channelscout.NewScoutAgent(cfg, logger)
	s := scheduler.New(cfg, agent, logger)

	if len(os.Args) > 1 && os.Args[1] == "--daemon" {
		logger.Info().Msg("Starting scheduler...")
		if err := s.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Fatal().Err(err).Msg("Scheduler failed")
		}
		return
	}

	// Default mode: one ad-hoc scan
	if err := agent.Initialize(); err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize agent")
	}
	if err := s.RunOnce(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Scan failed")
	}
}
