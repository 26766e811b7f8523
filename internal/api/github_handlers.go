package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	errorvalues "github.com/limbo/codetrack/internal/error_values"
	"github.com/limbo/codetrack/internal/service"
	"github.com/limbo/codetrack/pkg/httputil"
)

// Sync keeps going when the client disconnects; its result is stored either way.
const syncTimeout = 2 * time.Minute

type SyncResponse struct {
	Message           string                 `json:"message"`
	SyncedCount       int                    `json:"syncedCount"`
	TotalCommits      int                    `json:"totalCommits"`
	SkippedDuplicates int                    `json:"skippedDuplicates"`
	Commits           []service.SyncedCommit `json:"commits"`
	LastSyncedSHA     string                 `json:"lastSyncedCommitSha"`
}

func (s *Server) SyncGithub(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("github sync error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), syncTimeout)
	defer cancel()
	report, err := s.syncService.Sync(ctx, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrNotConfigured):
			logger.Error("github sync error: not configured")
			httputil.WriteErrorResponse(w, http.StatusInternalServerError,
				"GitHub service is not properly configured. Please check environment variables.", err)
		case errors.Is(err, errorvalues.ErrFeedUnavailable):
			logger.Error("github sync error: feed unavailable", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusServiceUnavailable,
				"Unable to fetch commits from GitHub. Please check your GitHub token and repository settings.", err)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("github sync error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user not found", nil)
		default:
			logger.Error("github sync error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal server error during GitHub sync", nil)
		}
		return
	}
	message := "No new commits to sync"
	if report.TotalCommits > 0 {
		message = "Successfully synced " + strconv.Itoa(report.SyncedCount) + " new problem(s)"
	}
	httputil.WriteJSONResponse(w, http.StatusOK, SyncResponse{
		Message:           message,
		SyncedCount:       report.SyncedCount,
		TotalCommits:      report.TotalCommits,
		SkippedDuplicates: report.SkippedDuplicates,
		Commits:           report.Commits,
		LastSyncedSHA:     report.Watermark,
	})
	logger.Info("successful github sync",
		slog.Int("synced", report.SyncedCount),
		slog.Int("skipped", report.SkippedDuplicates),
		slog.String("watermark", report.Watermark))
}

func (s *Server) GithubStatus(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("github status error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	status, err := s.syncService.Status(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			logger.Error("github status error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user not found", nil)
			return
		}
		logger.Error("github status error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, status)
}
