package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"github.com/yumechi/make-something-webhook/pkg/cli/config"
	controller "github.com/yumechi/make-something-webhook/pkg/controller/http"
	"github.com/yumechi/make-something-webhook/pkg/infra/discord"
	"github.com/yumechi/make-something-webhook/pkg/transform/backlog"
	"github.com/yumechi/make-something-webhook/pkg/usecase"
)

func cmdServe() *cli.Command {
	var (
		serverCfg  config.Server
		backlogCfg config.Backlog
		kibelaCfg  config.Kibela
	)

	flags := append(serverCfg.Flags(), backlogCfg.Flags()...)
	flags = append(flags, kibelaCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting webhook relay server",
				slog.String("addr", serverCfg.Addr),
				slog.String("backlog_base_url", backlogCfg.BaseURL),
				slog.String("backlog_project_prefix", backlogCfg.ProjectPrefix),
			)

			notifier := discord.New()
			notifyUC := usecase.NewNotify(
				notifier,
				backlog.Config{
					BaseURL:       backlogCfg.BaseURL,
					ProjectPrefix: backlogCfg.ProjectPrefix,
				},
				backlogCfg.WebhookURL,
				kibelaCfg.WebhookURL,
			)

			server, err := controller.NewServer(
				ctx,
				notifyUC,
				controller.WithAddr(serverCfg.Addr),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			// Start server in goroutine
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
