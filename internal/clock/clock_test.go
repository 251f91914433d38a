package clock

import (
	"strings"
	"testing"
	"time"
)

func TestAt(t *testing.T) {
	// Fixed instant so zone offsets are deterministic.
	instant := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		zone     string
		wantZone string
		wantTime string
	}{
		{"utc", "UTC", "UTC", "2025-03-15 12:00:00 UTC"},
		{"new york", "America/New_York", "America/New_York", "2025-03-15 08:00:00 EDT"},
		{"tokyo", "Asia/Tokyo", "Asia/Tokyo", "2025-03-15 21:00:00 JST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := At(instant, tt.zone)
			if err != nil {
				t.Fatalf("At returned error: %v", err)
			}
			if info.Timezone != tt.wantZone {
				t.Errorf("Timezone = %q, want %q", info.Timezone, tt.wantZone)
			}
			if info.Local != tt.wantTime {
				t.Errorf("Local = %q, want %q", info.Local, tt.wantTime)
			}
		})
	}
}

func TestAt_UnknownZone(t *testing.T) {
	_, err := At(time.Now(), "Not/AZone")
	if err == nil {
		t.Fatal("expected error for unknown zone, got nil")
	}
	if !strings.Contains(err.Error(), "Not/AZone") {
		t.Errorf("error %q does not mention the offending input", err)
	}
}

func TestResolve_RoundTrip(t *testing.T) {
	loc, err := Resolve("Europe/Lisbon")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if loc.String() != "Europe/Lisbon" {
		t.Errorf("resolved zone = %q, want Europe/Lisbon", loc.String())
	}
}
