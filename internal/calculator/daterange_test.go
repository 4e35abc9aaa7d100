package calculator

import (
	"testing"
	"time"

	"github.com/mmynk/profitshare/internal/models"
)

func TestDateRange_EndOfDayBoundary(t *testing.T) {
	r, err := ParseDateRange("2024-03-01", "2024-03-31", time.UTC)
	if err != nil {
		t.Fatalf("ParseDateRange failed: %v", err)
	}

	lastInstant := time.Date(2024, time.March, 31, 23, 59, 59, 999_000_000, time.UTC)
	if !r.Contains(lastInstant) {
		t.Errorf("expected %v to be inside the range", lastInstant)
	}
	if r.Contains(lastInstant.Add(time.Millisecond)) {
		t.Errorf("expected %v to be outside the range", lastInstant.Add(time.Millisecond))
	}

	start := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	if !r.Contains(start) {
		t.Errorf("expected start %v to be inside the range", start)
	}
	if r.Contains(start.Add(-time.Millisecond)) {
		t.Errorf("expected %v to be outside the range", start.Add(-time.Millisecond))
	}
}

func TestParseDateRange(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		wantErr  bool
		wantOpen bool
	}{
		{name: "both bounds", start: "2024-01-01", end: "2024-12-31"},
		{name: "no bounds", wantOpen: true},
		{name: "start only", start: "2024-01-01"},
		{name: "end only", end: "2024-01-31"},
		{name: "malformed start", start: "01/01/2024", end: "2024-12-31", wantErr: true},
		{name: "malformed end", start: "2024-01-01", end: "tomorrow", wantErr: true},
		{name: "end before start", start: "2024-02-01", end: "2024-01-01", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ParseDateRange(tt.start, tt.end, time.UTC)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDateRange() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && r.IsZero() != tt.wantOpen {
				t.Errorf("IsZero() = %v, want %v", r.IsZero(), tt.wantOpen)
			}
		})
	}
}

func TestFilterByDateRange(t *testing.T) {
	txs := []models.Transaction{
		profit(1, "10", day(2024, time.January, 31)),
		profit(2, "20", day(2024, time.February, 1)),
		profit(3, "30", day(2024, time.February, 29)),
		profit(4, "40", day(2024, time.March, 1)),
	}

	r, err := ParseDateRange("2024-02-01", "2024-02-29", time.UTC)
	if err != nil {
		t.Fatalf("ParseDateRange failed: %v", err)
	}

	got := FilterByDateRange(txs, r)
	if len(got) != 2 || got[0].ID != 2 || got[1].ID != 3 {
		t.Errorf("FilterByDateRange = %+v, want transactions 2 and 3", got)
	}

	if all := FilterByDateRange(txs, DateRange{}); len(all) != len(txs) {
		t.Errorf("zero range kept %d transactions, want %d", len(all), len(txs))
	}
}
