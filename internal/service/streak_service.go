package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/codetrack/internal/repository"
	"github.com/limbo/codetrack/internal/streak"
)

type StreakService struct {
	logsRepo repository.ProblemLogsRepositoryI
	loc      *time.Location
	now      func() time.Time
}

// NewStreakService creates service that counts days in loc. If now is nil, time.Now is used.
func NewStreakService(logsRepo repository.ProblemLogsRepositoryI, loc *time.Location, now func() time.Time) *StreakService {
	if loc == nil {
		loc = time.Local
	}
	if now == nil {
		now = time.Now
	}
	return &StreakService{
		logsRepo: logsRepo,
		loc:      loc,
		now:      now,
	}
}

func (ss *StreakService) GetStreak(ctx context.Context, uid uuid.UUID) (*streak.Result, error) {
	times, err := ss.logsRepo.GetSolvedTimes(ctx, uid)
	if err != nil {
		return nil, errors.New("repository getting solved times error: " + err.Error())
	}
	res := streak.Compute(streak.DatesFrom(times, ss.loc), streak.DateOf(ss.now(), ss.loc))
	return &res, nil
}
