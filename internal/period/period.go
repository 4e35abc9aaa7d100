// Package period derives and orders the "YEAR-MONTH" keys that group
// transactions and tag period-scoped payments.
//
// The key format is load-bearing: it is stored verbatim in Payment.Month and
// matched by string equality, so every producer must go through KeyOf or
// Key.String.
package period

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Key is a calendar month.
type Key struct {
	Year  int
	Month time.Month
}

// KeyOf returns the period key of t using t's own location, e.g. "2024-3".
func KeyOf(t time.Time) string {
	return Key{Year: t.Year(), Month: t.Month()}.String()
}

// String returns the canonical unpadded form "{year}-{month}".
func (k Key) String() string {
	return fmt.Sprintf("%d-%d", k.Year, int(k.Month))
}

// Before reports whether k is chronologically earlier than other.
func (k Key) Before(other Key) bool {
	if k.Year != other.Year {
		return k.Year < other.Year
	}
	return k.Month < other.Month
}

// Parse reads a key in "YYYY-M" or "YYYY-MM" form.
func Parse(s string) (Key, error) {
	year, month, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return Key{}, fmt.Errorf("invalid period %q: want YEAR-MONTH", s)
	}
	if len(year) != 4 || !digits(year) {
		return Key{}, fmt.Errorf("invalid period %q: bad year", s)
	}
	y, err := strconv.Atoi(year)
	if err != nil || y < 1 {
		return Key{}, fmt.Errorf("invalid period %q: bad year", s)
	}
	m, err := strconv.Atoi(month)
	if err != nil || !digits(month) || m < 1 || m > 12 || len(month) > 2 {
		return Key{}, fmt.Errorf("invalid period %q: month must be 1-12", s)
	}
	return Key{Year: y, Month: time.Month(m)}, nil
}

func digits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Normalize parses s and returns its canonical form, so "2024-03" becomes
// "2024-3".
func Normalize(s string) (string, error) {
	k, err := Parse(s)
	if err != nil {
		return "", err
	}
	return k.String(), nil
}

// Sort orders keys chronologically in place. Keys that fail to parse sort
// after every valid key, lexicographically among themselves.
//
// A plain string sort would put "2024-10" before "2024-2".
func Sort(keys []string) {
	sort.SliceStable(keys, func(i, j int) bool {
		a, errA := Parse(keys[i])
		b, errB := Parse(keys[j])
		switch {
		case errA == nil && errB == nil:
			return a.Before(b)
		case errA == nil:
			return true
		case errB == nil:
			return false
		default:
			return keys[i] < keys[j]
		}
	})
}
