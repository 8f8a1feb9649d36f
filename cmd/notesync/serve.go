package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/handler"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/server"
	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/MKhiriev/go-note-sync/internal/store"
)

func newServeCmd(c *cli) *cobra.Command {
	var flags config.ServerConfig

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the reference sync server",
		Long: `Run a single-tenant sync server that keeps its change log in memory.
It is meant for local development and testing; everything is lost on exit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.HashKey = c.client.Adapter.HashKey
			flags.Token = c.client.Adapter.Token
			flags.LogLevel = c.client.Log.Level

			cfg, err := config.GetServerConfig(&flags)
			if err != nil {
				return err
			}

			log := logger.NewLogger(appName + "-server")
			if level, lerr := zerolog.ParseLevel(cfg.LogLevel); lerr == nil && cfg.LogLevel != "" {
				log.Logger = log.Level(level)
			}
			log.Debug().
				Str("address", cfg.Address).
				Int("page_size", cfg.PageSize).
				Bool("auth", cfg.Token != "").
				Bool("signed", cfg.HashKey != "").
				Msg("received configs")

			services, err := service.NewServices(store.NewMemoryChangeLog(log), *cfg, c.info, log)
			if err != nil {
				return fmt.Errorf("error creating services: %w", err)
			}

			handlers, err := handler.NewHandlers(services, *cfg, log)
			if err != nil {
				return fmt.Errorf("error creating handlers: %w", err)
			}

			srv, err := server.NewServer(handlers, *cfg, log)
			if err != nil {
				return fmt.Errorf("error creating server: %w", err)
			}

			srv.RunServer()
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.Address, "address", "a", "", fmt.Sprintf("listen address (default %s)", config.DefaultServerAddress))
	cmd.Flags().IntVar(&flags.PageSize, "page-size", 0, fmt.Sprintf("changes per pull page (default %d)", config.DefaultPageSize))
	cmd.Flags().DurationVar(&flags.Timeout, "shutdown-timeout", 0, "graceful shutdown timeout (default 10s)")
	return cmd
}
