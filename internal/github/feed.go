// Package github lists repository commits through the GitHub REST API.
package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	gh "github.com/google/go-github/v66/github"
	errorvalues "github.com/limbo/codetrack/internal/error_values"
	"github.com/limbo/codetrack/internal/reconcile"
	"golang.org/x/time/rate"
)

const (
	userAgent      = "codetrack"
	requestTimeout = 30 * time.Second
)

type Options struct {
	// BaseURL points at a GitHub Enterprise or test server. Empty means api.github.com.
	BaseURL string
	// RequestsPerSecond paces page fetches. Zero disables pacing.
	RequestsPerSecond float64
	HTTPClient        *http.Client
}

// Feed implements reconcile.Feed for one repository.
type Feed struct {
	client  *gh.Client
	owner   string
	repo    string
	limiter *rate.Limiter
}

func NewFeed(cfg reconcile.Config, opts Options) (*Feed, error) {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: requestTimeout}
	}
	client := gh.NewClient(httpClient)
	if cfg.Token != "" {
		client = client.WithAuthToken(cfg.Token)
	}
	client.UserAgent = userAgent
	if opts.BaseURL != "" {
		base := opts.BaseURL
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		u, err := url.Parse(base)
		if err != nil {
			return nil, fmt.Errorf("parsing github base url: %w", err)
		}
		client.BaseURL = u
	}
	limiter := rate.NewLimiter(rate.Inf, 1)
	if opts.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1)
	}
	return &Feed{
		client:  client,
		owner:   cfg.Owner,
		repo:    cfg.Repo,
		limiter: limiter,
	}, nil
}

// FetchCommitPage lists one page of the default branch, newest first.
// sinceSHA is not forwarded: GitHub's sha parameter selects the ref the
// listing starts from, which would hide everything newer than the watermark.
func (f *Feed) FetchCommitPage(ctx context.Context, page, pageSize int, sinceSHA string) ([]reconcile.Commit, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", errorvalues.ErrFeedUnavailable, err)
	}
	repoCommits, _, err := f.client.Repositories.ListCommits(ctx, f.owner, f.repo, &gh.CommitsListOptions{
		ListOptions: gh.ListOptions{
			Page:    page,
			PerPage: pageSize,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch commits: %w", errorvalues.ErrFeedUnavailable, err)
	}
	commits := make([]reconcile.Commit, 0, len(repoCommits))
	for _, rc := range repoCommits {
		c := rc.GetCommit()
		author := c.GetAuthor()
		commits = append(commits, reconcile.Commit{
			SHA:       rc.GetSHA(),
			Message:   c.GetMessage(),
			Author:    author.GetName(),
			Timestamp: author.GetDate().Time,
		})
	}
	return commits, nil
}
