package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/limbo/codetrack/internal/repository/mocks"
	"github.com/limbo/codetrack/internal/service"
	"github.com/limbo/codetrack/internal/streak"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestGetStreak(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	logsRepo := mocks.NewMockProblemLogsRepositoryI(ctrl)
	uid := uuid.New()
	now := time.Date(2025, time.March, 12, 10, 0, 0, 0, time.UTC)
	serv := service.NewStreakService(logsRepo, time.UTC, fixedClock(now))

	t.Run("alive streak", func(t *testing.T) {
		logsRepo.EXPECT().GetSolvedTimes(gomock.Any(), uid).Return([]time.Time{
			time.Date(2025, time.March, 12, 8, 0, 0, 0, time.UTC),
			time.Date(2025, time.March, 11, 23, 0, 0, 0, time.UTC),
			time.Date(2025, time.March, 11, 7, 0, 0, 0, time.UTC),
			time.Date(2025, time.March, 10, 7, 0, 0, 0, time.UTC),
		}, nil)
		res, err := serv.GetStreak(context.Background(), uid)
		require.NoError(t, err)
		assert.Equal(t, 3, res.CurrentStreak)
		assert.Equal(t, 3, res.LongestStreak)
		assert.Empty(t, res.MissedDays)
		assert.Nil(t, res.LastMissedDay)
	})
	t.Run("no logs", func(t *testing.T) {
		logsRepo.EXPECT().GetSolvedTimes(gomock.Any(), uid).Return(nil, nil)
		res, err := serv.GetStreak(context.Background(), uid)
		require.NoError(t, err)
		assert.Equal(t, 0, res.CurrentStreak)
		assert.NotNil(t, res.MissedDays)
	})
	t.Run("db error", func(t *testing.T) {
		logsRepo.EXPECT().GetSolvedTimes(gomock.Any(), uid).Return(nil, errors.New("db error"))
		_, err := serv.GetStreak(context.Background(), uid)
		assert.EqualError(t, err, "repository getting solved times error: db error")
	})
}

func TestGetStreakUsesLocation(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	logsRepo := mocks.NewMockProblemLogsRepositoryI(ctrl)
	uid := uuid.New()
	loc := time.FixedZone("UTC-5", -5*60*60)
	// 02:00 UTC on the 12th is still the 11th in loc.
	now := time.Date(2025, time.March, 12, 2, 0, 0, 0, time.UTC)
	serv := service.NewStreakService(logsRepo, loc, fixedClock(now))

	logsRepo.EXPECT().GetSolvedTimes(gomock.Any(), uid).Return([]time.Time{
		time.Date(2025, time.March, 12, 1, 0, 0, 0, time.UTC),
		time.Date(2025, time.March, 9, 12, 0, 0, 0, time.UTC),
	}, nil)
	res, err := serv.GetStreak(context.Background(), uid)
	require.NoError(t, err)
	assert.Equal(t, 1, res.CurrentStreak)
	assert.Equal(t, []streak.Date{streak.NewDate(2025, time.March, 10)}, res.MissedDays)
}
