package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dpetruhin/roomcast-server/internal/app"
	"github.com/dpetruhin/roomcast-server/internal/config"
	"github.com/dpetruhin/roomcast-server/internal/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		addr       string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:          "roomcast-server",
		Short:        "Real-time room fan-out chat relay",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Bootstrap logger until the configured level is known.
			bootLog := log.New("info")

			cfg, path, err := config.Load(bootLog, configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if addr != "" {
				cfg.Addr = addr
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}

			logger := log.New(cfg.LogLevel)
			logger.Info().
				Str("addr", cfg.Addr).
				Str("config", path).
				Str("default_room", cfg.DefaultRoom).
				Msg("starting roomcast server")

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := app.New(&cfg, logger).Run(ctx); err != nil {
				return err
			}
			logger.Info().Msg("server stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to config file")
	cmd.Flags().StringVar(&addr, "addr", "", "HTTP listen address (overrides config)")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")

	return cmd
}
