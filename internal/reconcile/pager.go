package reconcile

// PagerState is the position of a commit listing relative to the watermark.
type PagerState int

const (
	// Fetching means more pages may hold commits newer than the watermark.
	Fetching PagerState = iota
	// FoundWatermark means the watermark commit was seen; older commits are dropped.
	FoundWatermark
	// Exhausted means the provider returned an empty page.
	Exhausted
)

func (s PagerState) String() string {
	switch s {
	case Fetching:
		return "fetching"
	case FoundWatermark:
		return "found_watermark"
	case Exhausted:
		return "exhausted"
	}
	return "unknown"
}

// Pager accumulates pages of a newest-first commit listing until the
// watermark is seen or the listing runs out.
type Pager struct {
	watermark string
	state     PagerState
	pages     int
	commits   []Commit
}

func NewPager(watermark string) *Pager {
	return &Pager{
		watermark: watermark,
		state:     Fetching,
		commits:   make([]Commit, 0),
	}
}

// Feed consumes the next page and returns the new state. Pages fed after a
// terminal state are ignored.
func (p *Pager) Feed(page []Commit) PagerState {
	if p.state != Fetching {
		return p.state
	}
	p.pages++
	if len(page) == 0 {
		p.state = Exhausted
		return p.state
	}
	for _, c := range page {
		if p.watermark != "" && c.SHA == p.watermark {
			p.state = FoundWatermark
			return p.state
		}
		p.commits = append(p.commits, c)
	}
	return p.state
}

func (p *Pager) State() PagerState { return p.state }

// Done reports whether no further page is needed.
func (p *Pager) Done() bool { return p.state != Fetching }

// Pages is the number of pages consumed so far, including the empty one.
func (p *Pager) Pages() int { return p.pages }

// Commits returns the accumulated commits strictly newer than the watermark,
// newest first.
func (p *Pager) Commits() []Commit { return p.commits }
