package reconcile

import "github.com/limbo/codetrack/internal/streak"

type TitleDate struct {
	Title string
	Date  streak.Date
}

// KnownSet holds the (title, day) pairs that are already logged.
type KnownSet map[TitleDate]struct{}

func NewKnownSet(pairs ...TitleDate) KnownSet {
	set := make(KnownSet, len(pairs))
	for _, p := range pairs {
		set.Add(p)
	}
	return set
}

func (s KnownSet) Add(p TitleDate) { s[p] = struct{}{} }

func (s KnownSet) Has(p TitleDate) bool {
	_, ok := s[p]
	return ok
}

func (s KnownSet) Clone() KnownSet {
	c := make(KnownSet, len(s))
	for k := range s {
		c[k] = struct{}{}
	}
	return c
}
