package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AbdullahEmadeldeen/Whatsapp-links-from-excel/internal/config"
	"github.com/AbdullahEmadeldeen/Whatsapp-links-from-excel/internal/logger"
	"github.com/AbdullahEmadeldeen/Whatsapp-links-from-excel/internal/web"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the local web UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			logger.Init(cfg.Log.Level)

			if addr == "" {
				addr = cfg.HTTP.Addr
			}

			server := web.NewServer(cfg)

			errCh := make(chan error, 1)
			go func() {
				logger.Log.Info("starting http", zap.String("addr", addr))
				errCh <- server.Start(addr)
			}()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

			select {
			case sig := <-sigCh:
				logger.Log.Info("signal received, shutting down", zap.String("signal", sig.String()))
			case err := <-errCh:
				if err != nil {
					logger.Log.Error("http server exited", zap.Error(err))
				}
			}

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return server.Shutdown(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config)")

	return cmd
}
