package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	errorvalues "github.com/limbo/codetrack/internal/error_values"
	"github.com/limbo/codetrack/internal/service"
	"github.com/limbo/codetrack/pkg/httputil"
)

type ProfileUser struct {
	Name           string `json:"name"`
	GithubUsername string `json:"githubUsername,omitempty"`
	TotalProblems  int    `json:"totalProblems"`
}

type ProfileResponse struct {
	User  ProfileUser      `json:"user"`
	Stats *service.Profile `json:"stats"`
}

// GetProfile serves the public profile of user by name.
func (s *Server) GetProfile(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	logger := GetLoggerFromCtx(r.Context()).With(slog.String("profile", name))
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			logger.Info("get profile: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user not found", nil)
			return
		}
		logger.Error("get profile error: user service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error fetching profile", nil)
		return
	}
	profile, err := s.statsService.Profile(ctx, user.ID)
	if err != nil {
		logger.Error("get profile error: stats service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error fetching profile", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ProfileResponse{
		User: ProfileUser{
			Name:           user.Name,
			GithubUsername: user.GithubUsername,
			TotalProblems:  profile.Total,
		},
		Stats: profile,
	})
	logger.Info("successful profile fetch")
}
