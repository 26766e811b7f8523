package service

import (
	"context"
	"errors"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/codetrack/internal/export"
	"github.com/limbo/codetrack/internal/repository"
	"github.com/limbo/codetrack/internal/streak"
	"github.com/limbo/codetrack/pkg/entity"
)

const (
	unknownKey          = "unknown"
	weeklyTopTopicLimit = 5
	recentActivityLimit = 10
)

type StatsService struct {
	logsRepo repository.ProblemLogsRepositoryI
	loc      *time.Location
	now      func() time.Time
}

func NewStatsService(logsRepo repository.ProblemLogsRepositoryI, loc *time.Location, now func() time.Time) *StatsService {
	if loc == nil {
		loc = time.Local
	}
	if now == nil {
		now = time.Now
	}
	return &StatsService{
		logsRepo: logsRepo,
		loc:      loc,
		now:      now,
	}
}

func (ss *StatsService) GetStats(ctx context.Context, uid uuid.UUID) (*entity.LogStats, error) {
	logs, err := ss.logsRepo.ListByUser(ctx, uid)
	if err != nil {
		return nil, errors.New("repository listing logs error: " + err.Error())
	}
	stats := summarize(logs)
	return &stats, nil
}

// Profile returns stats, streaks and the latest logs of user.
func (ss *StatsService) Profile(ctx context.Context, uid uuid.UUID) (*Profile, error) {
	logs, err := ss.logsRepo.ListByUser(ctx, uid)
	if err != nil {
		return nil, errors.New("repository listing logs error: " + err.Error())
	}
	dates := make([]streak.Date, 0, len(logs))
	for _, l := range logs {
		dates = append(dates, streak.DateOf(l.SolvedAt, ss.loc))
	}
	res := streak.Compute(dates, streak.DateOf(ss.now(), ss.loc))
	profile := &Profile{
		LogStats:       summarize(logs),
		CurrentStreak:  res.CurrentStreak,
		LongestStreak:  res.LongestStreak,
		RecentActivity: make([]RecentActivity, 0, min(len(logs), recentActivityLimit)),
	}
	// logs come newest first
	for _, l := range logs[:min(len(logs), recentActivityLimit)] {
		profile.RecentActivity = append(profile.RecentActivity, RecentActivity{
			Title:      l.Title,
			Platform:   l.Platform,
			Difficulty: l.Difficulty,
			Topic:      l.Topic,
			Date:       l.SolvedAt,
		})
	}
	return profile, nil
}

// WeeklySummary covers the week starting on Monday that contains today.
// Streak info is computed over all logs of the user.
func (ss *StatsService) WeeklySummary(ctx context.Context, uid uuid.UUID) (*WeeklySummary, error) {
	today := streak.DateOf(ss.now(), ss.loc)
	offset := (int(today.In(ss.loc).Weekday()) + 6) % 7
	start := today.AddDays(-offset)
	end := start.AddDays(6)

	logs, err := ss.logsRepo.ListByUserAndRange(ctx, uid, start.In(ss.loc), end.AddDays(1).In(ss.loc))
	if err != nil {
		return nil, errors.New("repository listing logs error: " + err.Error())
	}
	times, err := ss.logsRepo.GetSolvedTimes(ctx, uid)
	if err != nil {
		return nil, errors.New("repository getting solved dates error: " + err.Error())
	}
	res := streak.Compute(streak.DatesFrom(times, ss.loc), today)

	stats := summarize(logs)
	summary := &WeeklySummary{
		WeekStart:       start,
		WeekEnd:         end,
		ProblemsSolved:  len(logs),
		Difficulty:      stats.Difficulty,
		DifficultyTrend: make([]DifficultyShare, 0, len(stats.Difficulty)),
		TopTopics:       make([]TopicCount, 0, weeklyTopTopicLimit),
		PlatformsUsed:   make([]PlatformCount, 0, len(stats.Platforms)),
		StreakInfo:      StreakInfo{CurrentStreak: res.CurrentStreak, LongestStreak: res.LongestStreak},
	}
	for _, c := range export.SortedCounts(stats.Difficulty, 0) {
		summary.DifficultyTrend = append(summary.DifficultyTrend, DifficultyShare{
			Difficulty: c.Name,
			Count:      c.Count,
			Percentage: int(math.Round(float64(c.Count) * 100 / float64(len(logs)))),
		})
	}
	for _, c := range export.SortedCounts(stats.Topics, weeklyTopTopicLimit) {
		summary.TopTopics = append(summary.TopTopics, TopicCount{Topic: c.Name, Count: c.Count})
	}
	for _, c := range export.SortedCounts(stats.Platforms, 0) {
		summary.PlatformsUsed = append(summary.PlatformsUsed, PlatformCount{Platform: c.Name, Count: c.Count})
	}
	days := make(map[streak.Date]struct{})
	for _, l := range logs {
		days[streak.DateOf(l.SolvedAt, ss.loc)] = struct{}{}
	}
	summary.ActiveDays = len(days)
	if len(logs) == 0 {
		summary.Message = "No problems solved this week yet"
	} else {
		summary.Message = "You solved " + strconv.Itoa(len(logs)) + " problems this week!"
	}
	return summary, nil
}

// summarize counts logs by difficulty, topic and platform. Empty values count as "unknown".
func summarize(logs []entity.ProblemLog) entity.LogStats {
	stats := entity.LogStats{
		Total:      len(logs),
		Difficulty: make(map[string]int),
		Topics:     make(map[string]int),
		Platforms:  make(map[string]int),
	}
	for _, l := range logs {
		stats.Difficulty[orUnknown(l.Difficulty)]++
		stats.Topics[orUnknown(l.Topic)]++
		stats.Platforms[orUnknown(l.Platform)]++
	}
	return stats
}

func orUnknown(s string) string {
	if s == "" {
		return unknownKey
	}
	return s
}
