package api

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/codetrack/internal/error_values"
	"github.com/limbo/codetrack/pkg/httputil"
)

func (s *Server) GetStreak(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get streak error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	res, err := s.streakService.GetStreak(ctx, uid)
	if err != nil {
		logger.Error("get streak error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while calculating streak", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, res)
	logger.Info("successful streak calculation")
}

func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get stats error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	stats, err := s.statsService.GetStats(ctx, uid)
	if err != nil {
		logger.Error("get stats error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while collecting stats", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
	logger.Info("successful stats collection")
}

func (s *Server) GetWeeklySummary(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("weekly summary error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	summary, err := s.statsService.WeeklySummary(ctx, uid)
	if err != nil {
		logger.Error("weekly summary error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while building weekly summary", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, summary)
	logger.Info("successful weekly summary")
}

func (s *Server) ExportCSV(w http.ResponseWriter, r *http.Request) {
	s.export(w, r, "csv", "text/csv; charset=utf-8", s.exportService.WriteCSV)
}

func (s *Server) ExportHTML(w http.ResponseWriter, r *http.Request) {
	s.export(w, r, "html", "text/html; charset=utf-8", s.exportService.WriteHTML)
}

// export renders into a buffer first so that a failure still yields a JSON error.
func (s *Server) export(w http.ResponseWriter, r *http.Request, ext, contentType string,
	write func(ctx context.Context, uid uuid.UUID, w io.Writer) error) {
	logger := GetLoggerFromCtx(r.Context()).With(slog.String("format", ext))
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("export error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()
	var buf bytes.Buffer
	err = write(ctx, uid, &buf)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrNoData):
			logger.Info("export: nothing to export")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "no data to export", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("export error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user not found", nil)
		default:
			logger.Error("export error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error exporting "+ext, nil)
		}
		return
	}
	filename := s.exportService.FileName(ext)
	if err := httputil.WriteAttachment(w, contentType, filename, buf.Len(), &buf); err != nil {
		logger.Error("export error: writing response", slog.String("error", err.Error()))
		return
	}
	logger.Info("successful export")
}
