package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/limbo/codetrack/internal/api"
	"github.com/limbo/codetrack/internal/github"
	"github.com/limbo/codetrack/internal/metrics"
	"github.com/limbo/codetrack/internal/reconcile"
	"github.com/limbo/codetrack/internal/repository"
	"github.com/limbo/codetrack/internal/service"
	"github.com/limbo/codetrack/pkg/cleanup"
	"github.com/limbo/codetrack/pkg/config"
	jwtservice "github.com/limbo/codetrack/pkg/jwt_service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

const defaultRequestsPerSecond = 2

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := config.New()
	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	ghCfg, err := cfg.Github()
	if err != nil {
		return err
	}
	rps, err := cfg.GetFloat("GITHUB_REQUESTS_PER_SECOND", defaultRequestsPerSecond)
	if err != nil {
		return err
	}
	tokenTTL, err := cfg.GetDuration("JWT_TTL", jwtservice.DefaultTokenTTL)
	if err != nil {
		return err
	}
	secret := cfg.GetString("JWT_SECRET")
	if secret == "" {
		return errors.New("JWT_SECRET is not set")
	}

	feed, err := github.NewFeed(ghCfg, github.Options{
		BaseURL:           cfg.GetString("GITHUB_API_URL"),
		RequestsPerSecond: rps,
	})
	if err != nil {
		return err
	}
	if !ghCfg.IsConfigured() {
		slog.Warn("github sync is not configured: set GITHUB_TOKEN, GITHUB_USERNAME and GITHUB_REPO")
	}

	pool := repository.NewPool(cfg.Postgres())
	usersRepo := repository.NewUsersRepoWithConn(pool)
	logsRepo := repository.NewProblemLogsRepoWithConn(pool)
	m := metrics.New(prometheus.DefaultRegisterer)

	serv := api.New(&api.ServicesList{
		UserService:    service.NewUserService(usersRepo),
		StreakService:  service.NewStreakService(logsRepo, loc, nil),
		SyncService:    service.NewSyncService(usersRepo, logsRepo, reconcile.New(feed, ghCfg, loc), loc, m),
		StatsService:   service.NewStatsService(logsRepo, loc, nil),
		ExportService:  service.NewExportService(usersRepo, logsRepo, loc, nil),
		JwtService:     jwtservice.New(secret, tokenTTL),
		Metrics:        m,
		MetricsHandler: promhttp.Handler(),
		MetricsUser:    cfg.GetString("METRICS_USER"),
		MetricsPass:    cfg.GetString("METRICS_PASS"),
	})

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	runErr := serv.Run(ctx, cfg.GetStringOr("API_ADDRESS", ":8080"))
	if err := cleanup.CleanUp(); err != nil {
		slog.Error("cleanup finished with errors", slog.String("error", err.Error()))
	}
	if runErr != nil {
		return errors.New("server error: " + runErr.Error())
	}
	slog.Info("server stopped")
	return nil
}
