package reconcile_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	errorvalues "github.com/limbo/codetrack/internal/error_values"
	"github.com/limbo/codetrack/internal/reconcile"
	"github.com/limbo/codetrack/internal/streak"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type feedMock struct {
	pages   [][]reconcile.Commit
	failAt  int
	calls   []int
	sinceID []string
}

func (f *feedMock) FetchCommitPage(ctx context.Context, page, pageSize int, sinceSHA string) ([]reconcile.Commit, error) {
	f.calls = append(f.calls, page)
	f.sinceID = append(f.sinceID, sinceSHA)
	if f.failAt == page {
		return nil, errors.New("connection reset")
	}
	if page > len(f.pages) {
		return nil, nil
	}
	return f.pages[page-1], nil
}

var (
	cfg = reconcile.Config{Token: "token", Owner: "limbo", Repo: "solutions", PageSize: 2}
	day = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
)

func commit(sha, msg string, ts time.Time) reconcile.Commit {
	return reconcile.Commit{SHA: sha, Message: msg, Author: "limbo", Timestamp: ts}
}

func history() [][]reconcile.Commit {
	return [][]reconcile.Commit{
		{
			commit("c5", "leetcode: solved Two Sum (Easy)", day),
			commit("c4", "fix: typo", day.Add(-time.Hour)),
		},
		{
			commit("c3", "LeetCode: solved LRU Cache (medium)", day.Add(-24*time.Hour)),
			commit("c2", "leetcode: solved Median of Two Sorted Arrays (HARD)", day.Add(-48*time.Hour)),
		},
		{
			commit("c1", "initial commit", day.Add(-72*time.Hour)),
		},
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		Desc    string
		Message string
		Want    reconcile.ParsedProblem
		OK      bool
	}{
		{Desc: "canonical", Message: "leetcode: solved Two Sum (Easy)", Want: reconcile.ParsedProblem{Title: "Two Sum", Difficulty: reconcile.Easy}, OK: true},
		{Desc: "case insensitive", Message: "LEETCODE: SOLVED Word Ladder (hard)", Want: reconcile.ParsedProblem{Title: "Word Ladder", Difficulty: reconcile.Hard}, OK: true},
		{Desc: "surrounding whitespace", Message: "  leetcode:   solved   3Sum   (mEdIuM)\n", Want: reconcile.ParsedProblem{Title: "3Sum", Difficulty: reconcile.Medium}, OK: true},
		{Desc: "title with parentheses", Message: "leetcode: solved Pow(x, n) (Medium)", Want: reconcile.ParsedProblem{Title: "Pow(x, n)", Difficulty: reconcile.Medium}, OK: true},
		{Desc: "unrelated message", Message: "fix: typo", OK: false},
		{Desc: "unknown difficulty", Message: "leetcode: solved X (Invalid)", OK: false},
		{Desc: "missing difficulty", Message: "leetcode: solved Two Sum", OK: false},
		{Desc: "trailing text", Message: "leetcode: solved Two Sum (Easy) again", OK: false},
		{Desc: "empty title", Message: "leetcode: solved  (Easy)", OK: false},
		{Desc: "multi-line body", Message: "leetcode: solved Two Sum (Easy)\n\nused a hash map", OK: false},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			got, ok := reconcile.Parse(tc.Message)
			assert.Equal(t, tc.OK, ok)
			if tc.OK {
				assert.Equal(t, tc.Want, got)
			}
		})
	}
}

func TestPager(t *testing.T) {
	t.Run("exhausted on empty page", func(t *testing.T) {
		p := reconcile.NewPager("")
		assert.Equal(t, reconcile.Fetching, p.Feed([]reconcile.Commit{{SHA: "b"}, {SHA: "a"}}))
		assert.False(t, p.Done())
		assert.Equal(t, reconcile.Exhausted, p.Feed(nil))
		assert.True(t, p.Done())
		assert.Equal(t, 2, p.Pages())
		assert.Len(t, p.Commits(), 2)
	})
	t.Run("stops at watermark and truncates", func(t *testing.T) {
		p := reconcile.NewPager("b")
		assert.Equal(t, reconcile.FoundWatermark, p.Feed([]reconcile.Commit{{SHA: "c"}, {SHA: "b"}, {SHA: "a"}}))
		assert.Equal(t, []reconcile.Commit{{SHA: "c"}}, p.Commits())
	})
	t.Run("watermark on first position", func(t *testing.T) {
		p := reconcile.NewPager("c")
		assert.Equal(t, reconcile.FoundWatermark, p.Feed([]reconcile.Commit{{SHA: "c"}, {SHA: "b"}}))
		assert.Empty(t, p.Commits())
	})
	t.Run("terminal state ignores later pages", func(t *testing.T) {
		p := reconcile.NewPager("")
		p.Feed(nil)
		assert.Equal(t, reconcile.Exhausted, p.Feed([]reconcile.Commit{{SHA: "x"}}))
		assert.Empty(t, p.Commits())
		assert.Equal(t, 1, p.Pages())
	})
	t.Run("state names", func(t *testing.T) {
		assert.Equal(t, "fetching", reconcile.Fetching.String())
		assert.Equal(t, "found_watermark", reconcile.FoundWatermark.String())
		assert.Equal(t, "exhausted", reconcile.Exhausted.String())
	})
}

func TestReconcileFirstSync(t *testing.T) {
	feed := &feedMock{pages: history()}
	r := reconcile.New(feed, cfg, time.UTC)

	out, err := r.Reconcile(context.Background(), "", reconcile.NewKnownSet())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, feed.calls)
	assert.Equal(t, reconcile.Exhausted, out.State)
	assert.Equal(t, "c5", out.Watermark)
	assert.Equal(t, 5, out.Fetched)
	require.Len(t, out.NewEntries, 3)
	assert.Equal(t, "Two Sum", out.NewEntries[0].Title)
	assert.Equal(t, "LRU Cache", out.NewEntries[1].Title)
	assert.Equal(t, reconcile.Medium, out.NewEntries[1].Difficulty)
	assert.Equal(t, "Median of Two Sorted Arrays", out.NewEntries[2].Title)
	assert.Equal(t, "c2", out.NewEntries[2].SHA)
	assert.Equal(t, 0, out.SkippedDuplicates)
}

func TestReconcileIsIdempotent(t *testing.T) {
	feed := &feedMock{pages: history()}
	r := reconcile.New(feed, cfg, time.UTC)
	ctx := context.Background()

	first, err := r.Reconcile(ctx, "", reconcile.NewKnownSet())
	require.NoError(t, err)
	require.Len(t, first.NewEntries, 3)

	known := reconcile.NewKnownSet()
	for _, c := range first.NewEntries {
		known.Add(reconcile.TitleDate{Title: c.Title, Date: streak.DateOf(c.Timestamp, time.UTC)})
	}
	feed.calls = nil
	second, err := r.Reconcile(ctx, first.Watermark, known)
	require.NoError(t, err)
	assert.Empty(t, second.NewEntries)
	assert.Equal(t, first.Watermark, second.Watermark)
	assert.Equal(t, reconcile.FoundWatermark, second.State)
	assert.Equal(t, []int{1}, feed.calls)
	assert.Equal(t, []string{first.Watermark}, feed.sinceID[len(feed.sinceID)-1:])
}

func TestReconcileSkipsKnownPairs(t *testing.T) {
	feed := &feedMock{pages: history()}
	r := reconcile.New(feed, cfg, time.UTC)
	known := reconcile.NewKnownSet(reconcile.TitleDate{Title: "LRU Cache", Date: streak.DateOf(day.Add(-24*time.Hour), time.UTC)})

	out, err := r.Reconcile(context.Background(), "", known)
	require.NoError(t, err)
	assert.Equal(t, 1, out.SkippedDuplicates)
	assert.Len(t, out.Candidates, 3)
	for _, e := range out.NewEntries {
		assert.NotEqual(t, "LRU Cache", e.Title)
	}
}

func TestReconcileSameDayDuplicatesInFeed(t *testing.T) {
	feed := &feedMock{pages: [][]reconcile.Commit{{
		commit("b", "leetcode: solved Two Sum (Easy)", day),
		commit("a", "leetcode: solved Two Sum (Easy)", day.Add(-time.Hour)),
	}}}
	r := reconcile.New(feed, cfg, time.UTC)

	out, err := r.Reconcile(context.Background(), "", reconcile.NewKnownSet())
	require.NoError(t, err)
	assert.Len(t, out.NewEntries, 1)
	assert.Equal(t, "b", out.NewEntries[0].SHA)
	assert.Equal(t, 1, out.SkippedDuplicates)
}

func TestReconcileWatermarkOnLaterPage(t *testing.T) {
	feed := &feedMock{pages: history()}
	r := reconcile.New(feed, cfg, time.UTC)

	out, err := r.Reconcile(context.Background(), "c2", reconcile.NewKnownSet())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, feed.calls)
	assert.Equal(t, 3, out.Fetched)
	assert.Equal(t, "c5", out.Watermark)
	require.Len(t, out.NewEntries, 2)
	assert.Equal(t, "c3", out.NewEntries[1].SHA)
}

func TestReconcileUnknownWatermarkReadsWholeHistory(t *testing.T) {
	feed := &feedMock{pages: history()}
	r := reconcile.New(feed, cfg, time.UTC)

	out, err := r.Reconcile(context.Background(), "rewritten", reconcile.NewKnownSet())
	require.NoError(t, err)
	assert.Equal(t, reconcile.Exhausted, out.State)
	assert.Len(t, out.NewEntries, 3)
	assert.Equal(t, "c5", out.Watermark)
}

func TestReconcileEmptyFeedKeepsWatermark(t *testing.T) {
	feed := &feedMock{}
	r := reconcile.New(feed, cfg, time.UTC)

	out, err := r.Reconcile(context.Background(), "old", reconcile.NewKnownSet())
	require.NoError(t, err)
	assert.Equal(t, "old", out.Watermark)
	assert.Empty(t, out.NewEntries)
}

func TestReconcileFeedFailure(t *testing.T) {
	feed := &feedMock{pages: history(), failAt: 2}
	r := reconcile.New(feed, cfg, time.UTC)

	out, err := r.Reconcile(context.Background(), "c1", reconcile.NewKnownSet())
	assert.Nil(t, out)
	assert.ErrorIs(t, err, errorvalues.ErrFeedUnavailable)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestReconcileKeepsProviderError(t *testing.T) {
	wrapped := fmt.Errorf("%w: bad credentials", errorvalues.ErrFeedUnavailable)
	r := reconcile.New(failingFeed{err: wrapped}, cfg, time.UTC)

	_, err := r.Reconcile(context.Background(), "", reconcile.NewKnownSet())
	assert.Equal(t, wrapped, err)
}

func TestReconcileNotConfigured(t *testing.T) {
	feed := &feedMock{pages: history()}
	r := reconcile.New(feed, reconcile.Config{Owner: "limbo"}, time.UTC)

	assert.False(t, r.IsConfigured())
	_, err := r.Reconcile(context.Background(), "", reconcile.NewKnownSet())
	assert.ErrorIs(t, err, errorvalues.ErrNotConfigured)
	assert.Empty(t, feed.calls)
}

func TestReconcileCancelledContext(t *testing.T) {
	feed := &feedMock{pages: history()}
	r := reconcile.New(feed, cfg, time.UTC)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Reconcile(ctx, "", reconcile.NewKnownSet())
	assert.ErrorIs(t, err, errorvalues.ErrFeedUnavailable)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, feed.calls)
}

func TestReconcileDefaultPageSize(t *testing.T) {
	var sizes []int
	feed := pageSizeFeed(func(size int) { sizes = append(sizes, size) })
	r := reconcile.New(feed, reconcile.Config{Token: "t", Owner: "o", Repo: "r"}, nil)

	_, err := r.Reconcile(context.Background(), "", nil)
	require.NoError(t, err)
	assert.Equal(t, []int{reconcile.DefaultPageSize}, sizes)
}

type failingFeed struct {
	err error
}

func (f failingFeed) FetchCommitPage(ctx context.Context, page, pageSize int, sinceSHA string) ([]reconcile.Commit, error) {
	return nil, f.err
}

type pageSizeFeed func(size int)

func (f pageSizeFeed) FetchCommitPage(ctx context.Context, page, pageSize int, sinceSHA string) ([]reconcile.Commit, error) {
	f(pageSize)
	return nil, nil
}
