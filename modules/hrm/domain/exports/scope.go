package exports

import (
	"fmt"
	"net/url"
	"time"
)

type Kind string

const (
	KindAll   Kind = "all"
	KindDay   Kind = "day"
	KindRange Kind = "range"
	KindMonth Kind = "month"
)

const (
	dayLayout   = "2006-01-02"
	monthLayout = "2006-01"
)

// Scope narrows an export to a dataset slice: everything, one day, a
// date range, or a month.
type Scope struct {
	kind  Kind
	day   time.Time
	start time.Time
	end   time.Time
	month time.Time
}

func All() Scope { return Scope{kind: KindAll} }

func SingleDay(day time.Time) Scope { return Scope{kind: KindDay, day: day} }

func DateRange(start, end time.Time) Scope {
	return Scope{kind: KindRange, start: start, end: end}
}

func ForMonth(month time.Time) Scope { return Scope{kind: KindMonth, month: month} }

func (s Scope) Kind() Kind { return s.kind }

// Contains reports whether a dated record falls inside the scope,
// comparing at day granularity.
func (s Scope) Contains(t time.Time) bool {
	switch s.kind {
	case KindDay:
		return t.Format(dayLayout) == s.day.Format(dayLayout)
	case KindRange:
		day := t.Format(dayLayout)
		return day >= s.start.Format(dayLayout) && day <= s.end.Format(dayLayout)
	case KindMonth:
		return t.Format(monthLayout) == s.month.Format(monthLayout)
	default:
		return true
	}
}

// Label is the filename fragment identifying the scope: "tous" for a
// full export, an ISO date, "<start>_au_<end>", or an ISO month.
func (s Scope) Label() string {
	switch s.kind {
	case KindDay:
		return s.day.Format(dayLayout)
	case KindRange:
		return fmt.Sprintf("%s_au_%s", s.start.Format(dayLayout), s.end.Format(dayLayout))
	case KindMonth:
		return s.month.Format(monthLayout)
	default:
		return "tous"
	}
}

// Query encodes the scope as request parameters for the export
// endpoint.
func (s Scope) Query() url.Values {
	q := url.Values{"scope": {string(s.kind)}}
	switch s.kind {
	case KindDay:
		q.Set("date", s.day.Format(dayLayout))
	case KindRange:
		q.Set("from", s.start.Format(dayLayout))
		q.Set("to", s.end.Format(dayLayout))
	case KindMonth:
		q.Set("month", s.month.Format(monthLayout))
	}
	return q
}

// Filename derives the export file name for a dataset under this
// scope.
func Filename(dataset string, s Scope) string {
	return fmt.Sprintf("%s_%s.xlsx", dataset, s.Label())
}
