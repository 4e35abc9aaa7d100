package calculator

import (
	"fmt"
	"time"

	"github.com/mmynk/profitshare/internal/models"
)

// DateLayout is the calendar-date format accepted for range bounds.
const DateLayout = "2006-01-02"

// DateRange restricts a summary to transactions between two calendar dates,
// inclusive on both ends. A zero bound leaves that side open.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// IsZero reports whether the range filters nothing.
func (r DateRange) IsZero() bool {
	return r.Start.IsZero() && r.End.IsZero()
}

// endOfDay returns the last millisecond of End's calendar day.
func (r DateRange) endOfDay() time.Time {
	y, m, d := r.End.Date()
	return time.Date(y, m, d, 23, 59, 59, 999_000_000, r.End.Location())
}

// Contains reports whether t falls inside the range. The end bound extends to
// 23:59:59.999 of its calendar day.
func (r DateRange) Contains(t time.Time) bool {
	if !r.Start.IsZero() && t.Before(r.Start) {
		return false
	}
	if !r.End.IsZero() && t.After(r.endOfDay()) {
		return false
	}
	return true
}

// ParseDateRange parses "YYYY-MM-DD" bounds in loc. Empty strings leave the
// corresponding bound open.
func ParseDateRange(start, end string, loc *time.Location) (DateRange, error) {
	if loc == nil {
		loc = time.Local
	}
	var r DateRange
	if start != "" {
		t, err := time.ParseInLocation(DateLayout, start, loc)
		if err != nil {
			return DateRange{}, fmt.Errorf("invalid start date %q: %w", start, err)
		}
		r.Start = t
	}
	if end != "" {
		t, err := time.ParseInLocation(DateLayout, end, loc)
		if err != nil {
			return DateRange{}, fmt.Errorf("invalid end date %q: %w", end, err)
		}
		r.End = t
	}
	if !r.Start.IsZero() && !r.End.IsZero() && r.End.Before(r.Start) {
		return DateRange{}, fmt.Errorf("end date %s is before start date %s", end, start)
	}
	return r, nil
}

// FilterByDateRange returns the transactions dated inside r, preserving
// their order.
func FilterByDateRange(txs []models.Transaction, r DateRange) []models.Transaction {
	if r.IsZero() {
		return txs
	}
	filtered := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if r.Contains(tx.Date) {
			filtered = append(filtered, tx)
		}
	}
	return filtered
}
