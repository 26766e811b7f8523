package export

import (
	"cmp"
	"errors"
	"html/template"
	"io"
	"slices"
	"time"

	"github.com/limbo/codetrack/pkg/entity"
)

const (
	topTopicsLimit   = 10
	recentLogsLimit  = 10
	reportDateLayout = "Jan 2, 2006"
)

type Count struct {
	Name  string
	Count int
}

// Report is the data of the HTML progress page.
type Report struct {
	UserName    string
	GeneratedAt time.Time
	Stats       entity.LogStats
	Difficulty  []Count
	TopTopics   []Count
	Platforms   []Count
	Recent      []entity.ProblemLog
	FirstSolved time.Time
	LastSolved  time.Time
	Location    *time.Location
}

// NewReport builds report of logs sorted newest first.
func NewReport(userName string, logs []entity.ProblemLog, stats entity.LogStats, now time.Time, loc *time.Location) Report {
	if loc == nil {
		loc = time.Local
	}
	r := Report{
		UserName:    userName,
		GeneratedAt: now,
		Stats:       stats,
		Difficulty:  SortedCounts(stats.Difficulty, 0),
		TopTopics:   SortedCounts(stats.Topics, topTopicsLimit),
		Platforms:   SortedCounts(stats.Platforms, 0),
		Recent:      logs[:min(len(logs), recentLogsLimit)],
		Location:    loc,
	}
	for i, l := range logs {
		if i == 0 || l.SolvedAt.Before(r.FirstSolved) {
			r.FirstSolved = l.SolvedAt
		}
		if i == 0 || l.SolvedAt.After(r.LastSolved) {
			r.LastSolved = l.SolvedAt
		}
	}
	return r
}

// SortedCounts orders by count descending, then by name. limit <= 0 keeps all.
func SortedCounts(m map[string]int, limit int) []Count {
	counts := make([]Count, 0, len(m))
	for name, n := range m {
		counts = append(counts, Count{Name: name, Count: n})
	}
	slices.SortFunc(counts, func(a, b Count) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	if limit > 0 && len(counts) > limit {
		counts = counts[:limit]
	}
	return counts
}

var reportTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"day": func(t time.Time, loc *time.Location) string {
		return t.In(loc).Format(reportDateLayout)
	},
}).Parse(reportHTML))

func WriteHTML(w io.Writer, r Report) error {
	if err := reportTemplate.Execute(w, r); err != nil {
		return errors.New("rendering report error: " + err.Error())
	}
	return nil
}

const reportHTML = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>Problem Solving Progress Report</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 40px; color: #333; line-height: 1.6; }
        .header { text-align: center; border-bottom: 2px solid #6366f1; padding-bottom: 20px; margin-bottom: 30px; }
        .stats-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(200px, 1fr)); gap: 20px; margin-bottom: 30px; }
        .stat-card { padding: 20px; border: 1px solid #e5e7eb; border-radius: 8px; text-align: center; }
        .stat-value { font-size: 2rem; font-weight: bold; color: #6366f1; }
        .section h3 { color: #6366f1; border-left: 3px solid #6366f1; padding-left: 12px; }
        .list-item { display: flex; justify-content: space-between; padding: 8px 0; border-bottom: 1px solid #f3f4f6; }
        .activity-item { margin-bottom: 15px; padding: 15px; background: #f8f9fa; border-radius: 8px; }
        .activity-meta, .footer { color: #6b7280; font-size: 0.9rem; }
    </style>
</head>
<body>
    <div class="header">
        <h1>Problem Solving Progress Report</h1>
        <p>Generated on {{day .GeneratedAt .Location}} for {{.UserName}}</p>
    </div>
    <div class="stats-grid">
        <div class="stat-card"><div class="stat-value">{{.Stats.Total}}</div><div>Total Problems</div></div>
        <div class="stat-card"><div class="stat-value">{{len .Difficulty}}</div><div>Difficulty Levels</div></div>
        <div class="stat-card"><div class="stat-value">{{len .Stats.Topics}}</div><div>Topics Covered</div></div>
        <div class="stat-card"><div class="stat-value">{{len .Platforms}}</div><div>Platforms Used</div></div>
    </div>
    <div class="section">
        <h3>Difficulty Breakdown</h3>
        {{range .Difficulty}}<div class="list-item"><span>{{.Name}}</span><span><strong>{{.Count}}</strong></span></div>
        {{end}}
    </div>
    <div class="section">
        <h3>Popular Topics</h3>
        {{range .TopTopics}}<div class="list-item"><span>{{.Name}}</span><span><strong>{{.Count}}</strong></span></div>
        {{end}}
    </div>
    <div class="section">
        <h3>Platforms Used</h3>
        {{range .Platforms}}<div class="list-item"><span>{{.Name}}</span><span><strong>{{.Count}}</strong></span></div>
        {{end}}
    </div>
    <div class="section">
        <h3>Recent Activity</h3>
        {{range .Recent}}<div class="activity-item">
            <div><strong>{{.Title}}</strong></div>
            <div class="activity-meta">{{.Platform}} &bull; {{.Difficulty}} &bull; {{.Topic}} &bull; {{day .SolvedAt $.Location}}</div>
            {{if .Notes}}<p><em>{{.Notes}}</em></p>{{end}}
        </div>
        {{end}}
    </div>
    <div class="footer">
        <p>Date Range: {{day .FirstSolved .Location}} - {{day .LastSolved .Location}}</p>
    </div>
</body>
</html>
`
