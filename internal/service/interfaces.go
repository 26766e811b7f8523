package service

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/codetrack/internal/reconcile"
	"github.com/limbo/codetrack/internal/streak"
	"github.com/limbo/codetrack/pkg/entity"
)

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks . StreakServiceI,SyncServiceI,StatsServiceI,ExportServiceI

type RegisterRequest struct {
	Name           string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password       string `validate:"required,min=8,max=72"`
	GithubUsername string `validate:"omitempty,github_login"`
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
}

type StreakServiceI interface {
	// Computes streaks and missed days of user as of today in the service's time zone
	GetStreak(ctx context.Context, uid uuid.UUID) (*streak.Result, error)
}

type SyncServiceI interface {
	// Imports new solved problems from the commit feed. Runs for the same user never overlap
	Sync(ctx context.Context, uid uuid.UUID) (*SyncReport, error)
	Status(ctx context.Context, uid uuid.UUID) (*SyncStatus, error)
}

type StatsServiceI interface {
	GetStats(ctx context.Context, uid uuid.UUID) (*entity.LogStats, error)
	Profile(ctx context.Context, uid uuid.UUID) (*Profile, error)
	WeeklySummary(ctx context.Context, uid uuid.UUID) (*WeeklySummary, error)
}

type ExportServiceI interface {
	// Name of the attachment for ext, dated today in the service location
	FileName(ext string) string
	// Writes all logs of user as CSV. Returns ErrNoData if there is nothing to export
	WriteCSV(ctx context.Context, uid uuid.UUID, w io.Writer) error
	// Writes a progress report page. Returns ErrNoData if there is nothing to export
	WriteHTML(ctx context.Context, uid uuid.UUID, w io.Writer) error
}

// Reconciler is the part of reconcile.Reconciler the sync service drives.
type Reconciler interface {
	IsConfigured() bool
	Reconcile(ctx context.Context, watermark string, known reconcile.KnownSet) (*reconcile.Outcome, error)
}

type SyncedCommit struct {
	SHA        string    `json:"sha"`
	Title      string    `json:"title"`
	Difficulty string    `json:"difficulty"`
	Date       time.Time `json:"date"`
	Message    string    `json:"message"`
}

type SyncReport struct {
	SyncedCount       int            `json:"syncedCount"`
	TotalCommits      int            `json:"totalCommits"`
	SkippedDuplicates int            `json:"skippedDuplicates"`
	Commits           []SyncedCommit `json:"commits"`
	Watermark         string         `json:"lastSyncedCommitSha"`
}

type SyncStatus struct {
	Configured      bool   `json:"configured"`
	HasSyncedBefore bool   `json:"hasSyncedBefore"`
	LastWatermark   string `json:"lastSyncedCommitSha"`
	GithubUsername  string `json:"githubUsername"`
}

type WeeklySummary struct {
	WeekStart       streak.Date       `json:"weekStart"`
	WeekEnd         streak.Date       `json:"weekEnd"`
	ProblemsSolved  int               `json:"problemsSolved"`
	ActiveDays      int               `json:"activeDays"`
	Difficulty      map[string]int    `json:"difficulty"`
	DifficultyTrend []DifficultyShare `json:"difficultyTrend"`
	TopTopics       []TopicCount      `json:"topTopics"`
	PlatformsUsed   []PlatformCount   `json:"platformsUsed"`
	StreakInfo      StreakInfo        `json:"streakInfo"`
	Message         string            `json:"message"`
}

// DifficultyShare is the part of the week's problems of one difficulty.
// Percentage is rounded to the nearest integer.
type DifficultyShare struct {
	Difficulty string `json:"difficulty"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

type TopicCount struct {
	Topic string `json:"topic"`
	Count int    `json:"count"`
}

type PlatformCount struct {
	Platform string `json:"platform"`
	Count    int    `json:"count"`
}

// Profile is the public view of a user's progress.
type Profile struct {
	entity.LogStats
	CurrentStreak  int              `json:"currentStreak"`
	LongestStreak  int              `json:"longestStreak"`
	RecentActivity []RecentActivity `json:"recentActivity"`
}

// RecentActivity leaves out notes and ids of a log.
type RecentActivity struct {
	Title      string    `json:"title"`
	Platform   string    `json:"platform"`
	Difficulty string    `json:"difficulty"`
	Topic      string    `json:"topic"`
	Date       time.Time `json:"date"`
}

// StreakInfo is computed over the whole history, not only the week.
type StreakInfo struct {
	CurrentStreak int `json:"currentStreak"`
	LongestStreak int `json:"longestStreak"`
}
