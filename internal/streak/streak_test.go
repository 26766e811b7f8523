package streak_test

import (
	"testing"
	"time"

	"github.com/limbo/codetrack/internal/streak"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = streak.NewDate(2025, time.March, 15)

func daysAgo(n int) streak.Date {
	return today.AddDays(-n)
}

func TestCompute(t *testing.T) {
	testCases := []struct {
		Desc          string
		Dates         []streak.Date
		Current       int
		Longest       int
		Missed        []streak.Date
		LastMissedDay *streak.Date
	}{
		{
			Desc:    "empty input",
			Dates:   nil,
			Current: 0,
			Longest: 0,
			Missed:  []streak.Date{},
		},
		{
			Desc:    "three contiguous days ending today",
			Dates:   []streak.Date{today, daysAgo(1), daysAgo(2)},
			Current: 3,
			Longest: 3,
			Missed:  []streak.Date{},
		},
		{
			Desc:          "gap of two days",
			Dates:         []streak.Date{today, daysAgo(3)},
			Current:       1,
			Longest:       1,
			Missed:        []streak.Date{daysAgo(1), daysAgo(2)},
			LastMissedDay: ptr(daysAgo(1)),
		},
		{
			Desc:          "single old day is back-filled from yesterday",
			Dates:         []streak.Date{daysAgo(5)},
			Current:       0,
			Longest:       1,
			Missed:        []streak.Date{daysAgo(1), daysAgo(2), daysAgo(3), daysAgo(4)},
			LastMissedDay: ptr(daysAgo(1)),
		},
		{
			Desc:    "single day today",
			Dates:   []streak.Date{today},
			Current: 1,
			Longest: 1,
			Missed:  []streak.Date{},
		},
		{
			Desc:    "single day yesterday keeps streak alive",
			Dates:   []streak.Date{daysAgo(1)},
			Current: 1,
			Longest: 1,
			Missed:  []streak.Date{},
		},
		{
			Desc:    "run ending yesterday",
			Dates:   []streak.Date{daysAgo(1), daysAgo(2), daysAgo(3), daysAgo(4)},
			Current: 4,
			Longest: 4,
			Missed:  []streak.Date{},
		},
		{
			Desc:          "longest run is in the past",
			Dates:         []streak.Date{today, daysAgo(1), daysAgo(4), daysAgo(5), daysAgo(6), daysAgo(7)},
			Current:       2,
			Longest:       4,
			Missed:        []streak.Date{daysAgo(2), daysAgo(3)},
			LastMissedDay: ptr(daysAgo(2)),
		},
		{
			Desc:          "dead streak keeps history",
			Dates:         []streak.Date{daysAgo(3), daysAgo(4), daysAgo(6)},
			Current:       0,
			Longest:       2,
			Missed:        []streak.Date{daysAgo(1), daysAgo(2), daysAgo(5)},
			LastMissedDay: ptr(daysAgo(1)),
		},
		{
			Desc:    "duplicates and unordered input",
			Dates:   []streak.Date{daysAgo(2), today, daysAgo(1), today, daysAgo(2)},
			Current: 3,
			Longest: 3,
			Missed:  []streak.Date{},
		},
		{
			Desc:    "future days are ignored",
			Dates:   []streak.Date{today.AddDays(2), today},
			Current: 1,
			Longest: 1,
			Missed:  []streak.Date{},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			res := streak.Compute(tc.Dates, today)
			assert.Equal(t, tc.Current, res.CurrentStreak)
			assert.Equal(t, tc.Longest, res.LongestStreak)
			assert.Equal(t, tc.Missed, res.MissedDays)
			assert.Equal(t, tc.LastMissedDay, res.LastMissedDay)
		})
	}
}

func TestComputeCapsMissedDays(t *testing.T) {
	res := streak.Compute([]streak.Date{daysAgo(100), daysAgo(200)}, today)
	require.Len(t, res.MissedDays, streak.MaxMissedDays)
	assert.Equal(t, daysAgo(1), res.MissedDays[0])
	assert.Equal(t, daysAgo(streak.MaxMissedDays), res.MissedDays[streak.MaxMissedDays-1])
	assert.Equal(t, 0, res.CurrentStreak)
	assert.Equal(t, 1, res.LongestStreak)
}

func TestComputeInvariants(t *testing.T) {
	inputs := [][]streak.Date{
		{today},
		{daysAgo(40)},
		{today, daysAgo(1), daysAgo(10), daysAgo(11), daysAgo(12), daysAgo(13)},
		{daysAgo(2), daysAgo(3)},
		{daysAgo(1), daysAgo(3), daysAgo(5), daysAgo(7)},
	}
	for _, dates := range inputs {
		res := streak.Compute(dates, today)
		assert.GreaterOrEqual(t, res.CurrentStreak, 0)
		assert.GreaterOrEqual(t, res.LongestStreak, res.CurrentStreak)
		assert.LessOrEqual(t, len(res.MissedDays), streak.MaxMissedDays)
		assert.Equal(t, res, streak.Compute(dates, today), "must be idempotent")
	}
}

func TestDatesFrom(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	times := []time.Time{
		time.Date(2025, time.March, 14, 22, 30, 0, 0, time.UTC),
		time.Date(2025, time.March, 14, 8, 0, 0, 0, time.UTC),
	}
	dates := streak.DatesFrom(times, loc)
	assert.Equal(t, []streak.Date{streak.NewDate(2025, time.March, 15), streak.NewDate(2025, time.March, 14)}, dates)
}

func TestDateJSON(t *testing.T) {
	d := streak.NewDate(2025, time.January, 2)
	data, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"2025-01-02"`, string(data))

	var parsed streak.Date
	require.NoError(t, parsed.UnmarshalJSON(data))
	assert.Equal(t, d, parsed)
	assert.Error(t, parsed.UnmarshalJSON([]byte(`"02/01/2025"`)))
}

func TestDaysSinceAcrossMonths(t *testing.T) {
	assert.Equal(t, 2, streak.NewDate(2024, time.March, 1).DaysSince(streak.NewDate(2024, time.February, 28)))
	assert.Equal(t, 1, streak.NewDate(2025, time.January, 1).DaysSince(streak.NewDate(2024, time.December, 31)))
}

func ptr(d streak.Date) *streak.Date {
	return &d
}
