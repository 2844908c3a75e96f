package api

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar date format the listing endpoint expects.
const DateLayout = "2006-01-02"

// Listing pagination defaults.
const (
	DefaultPage    = 1
	DefaultPerPage = 20
)

var ErrDateRange = errors.New("invalid date range")

// DateQuery selects one page of a title's videos between two calendar dates, both inclusive.
type DateQuery struct {
	TitleID string
	From    time.Time
	To      time.Time
	Page    uint
	PerPage uint
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a YYYY-MM-DD date", ErrDateRange, s)
	}
	return t, nil
}

// NewDateQuery builds a query from optional date strings. An empty from means
// today (relative to now), an empty to means the same day as from.
func NewDateQuery(titleID, from, to string, now time.Time) (DateQuery, error) {
	titleID = strings.TrimSpace(titleID)
	if titleID == "" {
		return DateQuery{}, errors.New("title id is required")
	}

	q := DateQuery{TitleID: titleID}

	if from == "" {
		y, m, d := now.Date()
		q.From = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	} else {
		parsed, err := ParseDate(from)
		if err != nil {
			return DateQuery{}, err
		}
		q.From = parsed
	}

	if to == "" {
		q.To = q.From
	} else {
		parsed, err := ParseDate(to)
		if err != nil {
			return DateQuery{}, err
		}
		q.To = parsed
	}

	if q.From.After(q.To) {
		return DateQuery{}, fmt.Errorf("%w: %s is after %s", ErrDateRange, q.From.Format(DateLayout), q.To.Format(DateLayout))
	}

	return q, nil
}

func (q DateQuery) page() uint {
	if q.Page == 0 {
		return DefaultPage
	}
	return q.Page
}

func (q DateQuery) perPage() uint {
	if q.PerPage == 0 {
		return DefaultPerPage
	}
	return q.PerPage
}

// String identifies the query; it doubles as the listing cache key.
func (q DateQuery) String() string {
	return fmt.Sprintf(
		"%s@%s..%s#%d/%d",
		q.TitleID,
		q.From.Format(DateLayout),
		q.To.Format(DateLayout),
		q.page(),
		q.perPage(),
	)
}
