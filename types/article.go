package types

import (
	"fmt"
	"strings"
	"time"
)

// Article represents one blog article extracted from a listing tile.
// Title and URL are always set; Image and Summary may be empty but are
// always present in the JSON payload so downstream field mapping stays
// stable.
type Article struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Image   string `json:"image"`
	Date    Date   `json:"date"`
	Summary string `json:"summary"`
}

// BatchPayload is the top-level wrapper for batch webhook delivery.
type BatchPayload struct {
	Articles []Article `json:"articles"`
	Count    int       `json:"count"`
}

// NewBatchPayload wraps articles for a single batched POST.
func NewBatchPayload(articles []Article) BatchPayload {
	return BatchPayload{
		Articles: articles,
		Count:    len(articles),
	}
}

// Date is a calendar date with no time component. It serializes as an
// ISO date string ("2006-01-02") rather than a full RFC 3339 timestamp.
type Date struct {
	t time.Time
}

const dateLayout = "2006-01-02"

// NewDate builds a Date at UTC midnight.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Year returns the calendar year.
func (d Date) Year() int { return d.t.Year() }

// Month returns the calendar month.
func (d Date) Month() time.Month { return d.t.Month() }

// Day returns the day of month.
func (d Date) Day() int { return d.t.Day() }

// IsZero reports whether the date is the zero value.
func (d Date) IsZero() bool { return d.t.IsZero() }

// Before reports whether d falls before other.
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }

// Equal reports whether two dates name the same calendar day.
func (d Date) Equal(other Date) bool { return d.t.Equal(other.t) }

func (d Date) String() string { return d.t.Format(dateLayout) }

// MarshalJSON encodes the date as a quoted ISO calendar date.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.t.Format(dateLayout) + `"`), nil
}

// UnmarshalJSON decodes a quoted ISO calendar date.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	d.t = t
	return nil
}
