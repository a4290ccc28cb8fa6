package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/alimikegami/point-of-sales/ecommerce-service/config"
	"github.com/alimikegami/point-of-sales/ecommerce-service/internal/app"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// webservice serve is also what runs with no subcommand.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	conf := config.CreateNewConfig()
	app.SetupLogger(conf.Environment, conf.LogLevel)

	server := app.App{
		Config: conf,
	}

	if err := server.Setup(); err != nil {
		log.Error().Err(err).Msg("Failed to set up server")
		server.StopServer()
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		server.StopServer()
		return err
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("Shutting down server")
	}

	if err := server.StopServer(); err != nil {
		log.Error().Err(err).Msg("Failed to shut down cleanly")
		return err
	}

	return nil
}
