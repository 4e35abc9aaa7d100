package period

import (
	"reflect"
	"testing"
	"time"
)

func TestKeyOf(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{"march unpadded", time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC), "2024-3"},
		{"october two digits", time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC), "2024-10"},
		{"last instant of december", time.Date(2023, time.December, 31, 23, 59, 59, 999_000_000, time.UTC), "2023-12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KeyOf(tt.date); got != tt.want {
				t.Errorf("KeyOf(%v) = %q, want %q", tt.date, got, tt.want)
			}
		})
	}
}

func TestKeyOf_UsesDateLocation(t *testing.T) {
	warsaw := time.FixedZone("CET", 60*60)
	// 23:30 UTC on Jan 31 is already Feb 1 in UTC+1.
	instant := time.Date(2024, time.January, 31, 23, 30, 0, 0, time.UTC)

	if got := KeyOf(instant); got != "2024-1" {
		t.Errorf("UTC key = %q, want 2024-1", got)
	}
	if got := KeyOf(instant.In(warsaw)); got != "2024-2" {
		t.Errorf("UTC+1 key = %q, want 2024-2", got)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Key
		wantErr bool
	}{
		{in: "2024-3", want: Key{2024, time.March}},
		{in: "2024-03", want: Key{2024, time.March}},
		{in: "2024-12", want: Key{2024, time.December}},
		{in: " 2024-7 ", want: Key{2024, time.July}},
		{in: "2024-0", wantErr: true},
		{in: "2024-13", wantErr: true},
		{in: "2024-003", wantErr: true},
		{in: "24-3", wantErr: true},
		{in: "+202-3", wantErr: true},
		{in: "-202-3", wantErr: true},
		{in: "2024-+3", wantErr: true},
		{in: "2024/3", wantErr: true},
		{in: "", wantErr: true},
		{in: "march", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	got, err := Normalize("2024-03")
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if got != "2024-3" {
		t.Errorf("Normalize = %q, want 2024-3", got)
	}
}

func TestSort_Chronological(t *testing.T) {
	keys := []string{"2024-10", "2024-2", "2023-12", "2024-9", "2024-11", "2024-1"}
	Sort(keys)

	want := []string{"2023-12", "2024-1", "2024-2", "2024-9", "2024-10", "2024-11"}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("Sort = %v, want %v", keys, want)
	}
}

func TestSort_InvalidKeysLast(t *testing.T) {
	keys := []string{"zzz", "2024-2", "abc", "2024-1"}
	Sort(keys)

	want := []string{"2024-1", "2024-2", "abc", "zzz"}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("Sort = %v, want %v", keys, want)
	}
}
