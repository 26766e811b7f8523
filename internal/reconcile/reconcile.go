// Package reconcile turns a commit history into problem logs that have not
// been imported yet.
package reconcile

import (
	"context"
	"errors"
	"fmt"
	"time"

	errorvalues "github.com/limbo/codetrack/internal/error_values"
	"github.com/limbo/codetrack/internal/streak"
)

const DefaultPageSize = 100

type Commit struct {
	SHA       string
	Message   string
	Author    string
	Timestamp time.Time
}

// Feed lists commits newest first, one page at a time. Pages are 1-based.
// sinceSHA is the caller's watermark; providers may use it as a hint but must
// still return commits newer than it.
type Feed interface {
	FetchCommitPage(ctx context.Context, page, pageSize int, sinceSHA string) ([]Commit, error)
}

// Config identifies the repository whose commits are imported.
type Config struct {
	Token    string
	Owner    string
	Repo     string
	PageSize int
}

func (c Config) IsConfigured() bool {
	return c.Token != "" && c.Owner != "" && c.Repo != ""
}

func (c Config) pageSize() int {
	if c.PageSize <= 0 {
		return DefaultPageSize
	}
	return c.PageSize
}

// Candidate is a commit whose message parsed as a solved problem.
type Candidate struct {
	Commit
	ParsedProblem
}

type Outcome struct {
	// Candidates are all parsed commits newer than the watermark, newest first.
	Candidates []Candidate
	// NewEntries are the candidates that are not already logged.
	NewEntries        []Candidate
	SkippedDuplicates int
	// Fetched counts commits newer than the watermark, parsed or not.
	Fetched   int
	Pages     int
	State     PagerState
	Watermark string
}

type Reconciler struct {
	feed Feed
	cfg  Config
	loc  *time.Location
}

// New builds a reconciler. Commit timestamps are bucketed into days in loc
// when checking for duplicates.
func New(feed Feed, cfg Config, loc *time.Location) *Reconciler {
	if loc == nil {
		loc = time.Local
	}
	return &Reconciler{
		feed: feed,
		cfg:  cfg,
		loc:  loc,
	}
}

func (r *Reconciler) IsConfigured() bool {
	return r.cfg.IsConfigured()
}

// Reconcile pages through the feed until the watermark or the end of history
// and returns the commits to import. Either the full outcome or an error is
// returned, never both.
func (r *Reconciler) Reconcile(ctx context.Context, watermark string, known KnownSet) (*Outcome, error) {
	if !r.cfg.IsConfigured() {
		return nil, errorvalues.ErrNotConfigured
	}
	pager := NewPager(watermark)
	for page := 1; !pager.Done(); page++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", errorvalues.ErrFeedUnavailable, err)
		}
		commits, err := r.feed.FetchCommitPage(ctx, page, r.cfg.pageSize(), watermark)
		if err != nil {
			if errors.Is(err, errorvalues.ErrFeedUnavailable) {
				return nil, err
			}
			return nil, fmt.Errorf("%w: page %d: %w", errorvalues.ErrFeedUnavailable, page, err)
		}
		pager.Feed(commits)
	}

	fetched := pager.Commits()
	out := &Outcome{
		Candidates: make([]Candidate, 0),
		NewEntries: make([]Candidate, 0),
		Fetched:    len(fetched),
		Pages:      pager.Pages(),
		State:      pager.State(),
		Watermark:  watermark,
	}
	if len(fetched) > 0 {
		out.Watermark = fetched[0].SHA
	}

	seen := known.Clone()
	for _, c := range fetched {
		parsed, ok := Parse(c.Message)
		if !ok {
			continue
		}
		cand := Candidate{Commit: c, ParsedProblem: parsed}
		out.Candidates = append(out.Candidates, cand)
		key := TitleDate{Title: parsed.Title, Date: streak.DateOf(c.Timestamp, r.loc)}
		if seen.Has(key) {
			out.SkippedDuplicates++
			continue
		}
		seen.Add(key)
		out.NewEntries = append(out.NewEntries, cand)
	}
	return out, nil
}
