package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sahasharan/telugu-culinary-app2/internal/assistant"
	"github.com/sahasharan/telugu-culinary-app2/internal/config"
	"github.com/sahasharan/telugu-culinary-app2/internal/store"
	"github.com/sahasharan/telugu-culinary-app2/internal/web"
)

var (
	serveAddr string
	serveData string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web UI and JSON API",
	Long: `Start the Telugu Culinary web server.

Examples:
  culinary serve
  culinary serve --addr :8080 --data /var/lib/culinary
  CULINARY_SERVER_ADDR=:9000 culinary serve`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
	serveCmd.Flags().StringVar(&serveData, "data", "", "data directory (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}
	if serveData != "" {
		cfg.Data.Dir = serveData
	}
	if !verbose {
		if lvl, err := zapcore.ParseLevel(cfg.Logging.Level); err == nil {
			logLevel.SetLevel(lvl)
		}
	}

	st, err := store.Open(cfg.Data.Dir, logger)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}

	watcher, err := store.Watch(st, logger)
	if err != nil {
		logger.Warn("file watching disabled", zap.Error(err))
	} else {
		defer watcher.Close()
	}

	annapurna, err := assistant.New(cfg.Assistant, st, logger)
	if err != nil {
		return fmt.Errorf("building assistant: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Telugu Culinary at http://localhost%s\n", cfg.Server.Addr)
	server := web.NewServer(st, annapurna, logger)
	return server.Run(ctx, cfg.Server.Addr, cfg.Server.CORSOrigins)
}
