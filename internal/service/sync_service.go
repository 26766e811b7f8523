package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/codetrack/internal/error_values"
	"github.com/limbo/codetrack/internal/metrics"
	"github.com/limbo/codetrack/internal/reconcile"
	"github.com/limbo/codetrack/internal/repository"
	"github.com/limbo/codetrack/internal/streak"
	"github.com/limbo/codetrack/pkg/entity"
	"golang.org/x/sync/singleflight"
)

// Topic of imported problems; commit messages don't carry one.
const importedTopic = "Unknown"

type SyncService struct {
	usersRepo  repository.UsersRepositoryI
	logsRepo   repository.ProblemLogsRepositoryI
	reconciler Reconciler
	loc        *time.Location
	metrics    *metrics.Metrics
	inflight   singleflight.Group
}

// NewSyncService creates service importing commits of reconciler's feed.
// loc must be the location reconciler was built with. m may be nil.
func NewSyncService(usersRepo repository.UsersRepositoryI, logsRepo repository.ProblemLogsRepositoryI,
	reconciler Reconciler, loc *time.Location, m *metrics.Metrics) *SyncService {
	if loc == nil {
		loc = time.Local
	}
	return &SyncService{
		usersRepo:  usersRepo,
		logsRepo:   logsRepo,
		reconciler: reconciler,
		loc:        loc,
		metrics:    m,
	}
}

// Sync imports solved problems committed since the user's watermark. Concurrent
// calls for the same user share one run and its result. Nothing is stored
// unless the whole run succeeds.
func (ss *SyncService) Sync(ctx context.Context, uid uuid.UUID) (*SyncReport, error) {
	res, err, _ := ss.inflight.Do(uid.String(), func() (any, error) {
		return ss.sync(ctx, uid)
	})
	if err != nil {
		return nil, err
	}
	return res.(*SyncReport), nil
}

func (ss *SyncService) sync(ctx context.Context, uid uuid.UUID) (*SyncReport, error) {
	if !ss.reconciler.IsConfigured() {
		ss.metrics.ObserveSync(metrics.OutcomeNotConfigured, 0, 0)
		return nil, errorvalues.ErrNotConfigured
	}
	watermark, err := ss.usersRepo.GetWatermark(ctx, uid)
	if err != nil {
		ss.metrics.ObserveSync(metrics.OutcomeError, 0, 0)
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("repository getting watermark error: " + err.Error())
	}
	pairs, err := ss.logsRepo.GetTitleDatePairs(ctx, uid, entity.PlatformLeetCode)
	if err != nil {
		ss.metrics.ObserveSync(metrics.OutcomeError, 0, 0)
		return nil, errors.New("repository getting logged problems error: " + err.Error())
	}
	known := reconcile.NewKnownSet()
	for _, p := range pairs {
		known.Add(reconcile.TitleDate{Title: p.Title, Date: streak.DateOf(p.SolvedAt, ss.loc)})
	}

	out, err := ss.reconciler.Reconcile(ctx, watermark, known)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrNotConfigured):
			ss.metrics.ObserveSync(metrics.OutcomeNotConfigured, 0, 0)
		case errors.Is(err, errorvalues.ErrFeedUnavailable):
			ss.metrics.ObserveSync(metrics.OutcomeFeedUnavailable, 0, 0)
		default:
			ss.metrics.ObserveSync(metrics.OutcomeError, 0, 0)
		}
		return nil, err
	}

	logs := make([]entity.ProblemLog, 0, len(out.NewEntries))
	report := &SyncReport{
		SyncedCount:       len(out.NewEntries),
		TotalCommits:      len(out.Candidates),
		SkippedDuplicates: out.SkippedDuplicates,
		Commits:           make([]SyncedCommit, 0, len(out.NewEntries)),
		Watermark:         out.Watermark,
	}
	for _, c := range out.NewEntries {
		logs = append(logs, entity.ProblemLog{
			UserID:     uid,
			Platform:   entity.PlatformLeetCode,
			Title:      c.Title,
			Difficulty: string(c.Difficulty),
			Topic:      importedTopic,
			SolvedAt:   c.Timestamp,
		})
		report.Commits = append(report.Commits, SyncedCommit{
			SHA:        c.SHA,
			Title:      c.Title,
			Difficulty: string(c.Difficulty),
			Date:       c.Timestamp,
			Message:    c.Message,
		})
	}
	if len(logs) > 0 || out.Watermark != watermark {
		if err := ss.logsRepo.SaveSyncResult(ctx, uid, logs, out.Watermark); err != nil {
			ss.metrics.ObserveSync(metrics.OutcomeError, 0, 0)
			if errors.Is(err, errorvalues.ErrUserNotFound) {
				return nil, errorvalues.ErrUserNotFound
			}
			return nil, errors.New("repository saving sync result error: " + err.Error())
		}
	}
	ss.metrics.ObserveSync(metrics.OutcomeSuccess, report.SyncedCount, report.SkippedDuplicates)
	return report, nil
}

func (ss *SyncService) Status(ctx context.Context, uid uuid.UUID) (*SyncStatus, error) {
	user, err := ss.usersRepo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return &SyncStatus{
		Configured:      ss.reconciler.IsConfigured(),
		HasSyncedBefore: user.LastSyncedSHA != "",
		LastWatermark:   user.LastSyncedSHA,
		GithubUsername:  user.GithubUsername,
	}, nil
}
