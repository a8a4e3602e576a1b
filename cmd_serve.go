package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/cookiemilk-backend/internal"
	"github.com/rocketscienceinc/cookiemilk-backend/internal/config"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP board server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&configPath, "config", "c", "./config.yml", "path to the config file")
}

func runServe(cmd *cobra.Command, _ []string) error {
	conf := config.MustLoad(configPath)
	logger := initLogger(conf)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.RunApp(ctx, logger, conf); err != nil {
		return fmt.Errorf("app run failed: %w", err)
	}

	logger.Info("Application stopped")

	return nil
}
