package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/limbo/codetrack/internal/metrics"
	"github.com/limbo/codetrack/internal/service"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	mx             *chi.Mux
	userService    service.UserServiceI
	streakService  service.StreakServiceI
	syncService    service.SyncServiceI
	statsService   service.StatsServiceI
	exportService  service.ExportServiceI
	jwtService     JWTServiceI
	metrics        *metrics.Metrics
	metricsHandler http.Handler
	metricsUser    string
	metricsPass    string
}

type ServicesList struct {
	UserService   service.UserServiceI
	StreakService service.StreakServiceI
	SyncService   service.SyncServiceI
	StatsService  service.StatsServiceI
	ExportService service.ExportServiceI
	JwtService    JWTServiceI
	// Metrics may be nil. MetricsHandler is mounted at /metrics when set,
	// behind basic auth when MetricsUser is not empty.
	Metrics        *metrics.Metrics
	MetricsHandler http.Handler
	MetricsUser    string
	MetricsPass    string
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:             chi.NewMux(),
		userService:    servicesOptions.UserService,
		streakService:  servicesOptions.StreakService,
		syncService:    servicesOptions.SyncService,
		statsService:   servicesOptions.StatsService,
		exportService:  servicesOptions.ExportService,
		jwtService:     servicesOptions.JwtService,
		metrics:        servicesOptions.Metrics,
		metricsHandler: servicesOptions.MetricsHandler,
		metricsUser:    servicesOptions.MetricsUser,
		metricsPass:    servicesOptions.MetricsPass,
	}
	s.mountRoutes()
	return s
}

func (s *Server) mountRoutes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware, s.MonitorMiddleware)
	s.mx.Get("/healthz", s.Health)
	if s.metricsHandler != nil {
		if s.metricsUser != "" {
			s.mx.With(middleware.BasicAuth("metrics", map[string]string{s.metricsUser: s.metricsPass})).Method(http.MethodGet, "/metrics", s.metricsHandler)
		} else {
			s.mx.Method(http.MethodGet, "/metrics", s.metricsHandler)
		}
	}
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		r.Get("/profile/{name}", s.GetProfile)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Route("/logs", func(r chi.Router) {
				r.Get("/streak", s.GetStreak)
				r.Get("/stats", s.GetStats)
				r.Get("/weekly-summary", s.GetWeeklySummary)
				r.Get("/export/csv", s.ExportCSV)
				r.Get("/export/html", s.ExportHTML)
			})
			r.Route("/github", func(r chi.Router) {
				r.Post("/sync", s.SyncGithub)
				r.Get("/status", s.GithubStatus)
			})
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server started", slog.String("address", addr))
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.New("listening error: " + err.Error())
	case <-ctx.Done():
	}
	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("shutdown error: " + err.Error())
	}
	return nil
}
