// Package streak derives consistency metrics from the days a user was active.
package streak

import (
	"slices"
)

// MaxMissedDays caps Result.MissedDays.
const MaxMissedDays = 30

type Result struct {
	CurrentStreak int    `json:"currentStreak"`
	LongestStreak int    `json:"longestStreak"`
	MissedDays    []Date `json:"missedDays"`
	LastMissedDay *Date  `json:"lastMissedDay"`
}

// Compute walks the distinct activity days from the most recent backwards.
//
// The current streak is alive only when the latest day is today or
// yesterday. Missed days are listed most recent first: days between
// yesterday and the latest activity when the streak is not alive, then the
// holes between consecutive activity days. Today is never reported as
// missed. Days after today are ignored.
func Compute(dates []Date, today Date) Result {
	days := distinctDesc(dates, today)
	res := Result{MissedDays: make([]Date, 0)}
	if len(days) == 0 {
		return res
	}

	yesterday := today.AddDays(-1)
	alive := days[0] == today || days[0] == yesterday
	if alive {
		res.CurrentStreak = 1
	} else {
		for d := yesterday; d.After(days[0]) && len(res.MissedDays) < MaxMissedDays; d = d.AddDays(-1) {
			res.MissedDays = append(res.MissedDays, d)
		}
	}

	run := 1
	broken := false
	for i := 0; i+1 < len(days); i++ {
		if days[i].DaysSince(days[i+1]) == 1 {
			run++
			if alive && !broken {
				res.CurrentStreak++
			}
			continue
		}
		broken = true
		for d := days[i].AddDays(-1); d.After(days[i+1]) && len(res.MissedDays) < MaxMissedDays; d = d.AddDays(-1) {
			res.MissedDays = append(res.MissedDays, d)
		}
		res.LongestStreak = max(res.LongestStreak, run)
		run = 1
	}
	res.LongestStreak = max(res.LongestStreak, run)

	if len(res.MissedDays) > 0 {
		last := res.MissedDays[0]
		res.LastMissedDay = &last
	}
	return res
}

func distinctDesc(dates []Date, today Date) []Date {
	days := make([]Date, 0, len(dates))
	for _, d := range dates {
		if d.IsZero() || d.After(today) {
			continue
		}
		days = append(days, d)
	}
	slices.SortFunc(days, func(a, b Date) int {
		return b.t.Compare(a.t)
	})
	return slices.Compact(days)
}
