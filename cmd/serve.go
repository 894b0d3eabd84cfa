package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"newpunch-journalist/internal/api"
	"newpunch-journalist/internal/redisclient"
	"newpunch-journalist/worker"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the scheduled refresher and the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		rdb := redisclient.New(cfg.Redis)
		defer rdb.Close()
		store := newStore(cfg, rdb)

		refresher, err := newRefresher(cfg, store)
		if err != nil {
			return err
		}
		svc := newQueryService(cfg, store)
		adapter, err := newVoiceAdapter(cfg, svc)
		if err != nil {
			return err
		}

		if cfg.App.LogLevel != "debug" {
			gin.SetMode(gin.ReleaseMode)
		}
		router := api.NewRouter(api.Deps{
			Query:     svc,
			Voice:     adapter,
			Refresher: refresher,
			Ping: func(ctx context.Context) error {
				ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
				defer cancel()
				return store.Ping(ctx)
			},
		})

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Signal handling for systemd
		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			s := <-sigc
			slog.Info("serve: received signal, shutting down", "signal", s.String())
			cancel()
		}()

		slog.Info("serve: starting", "addr", cfg.Server.Addr, "schedule", cfg.Refresh.Schedule, "pages", cfg.Facepunch.MaxPages)
		mgr := worker.NewManager(
			refresher,
			&worker.HTTPServer{Addr: cfg.Server.Addr, Handler: router},
		)
		return mgr.Start(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
