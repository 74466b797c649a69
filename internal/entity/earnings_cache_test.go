package entity

import (
	"testing"
	"time"
)

func TestEarningsCacheEntry_Fresh(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		age  time.Duration
		want bool
	}{
		{"just written", 0, true},
		{"almost expired", 24*time.Hour - time.Minute, true},
		{"exactly at ttl", 24 * time.Hour, false},
		{"past ttl", 24*time.Hour + time.Minute, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			entry := &EarningsCacheEntry{
				Ticker:    "GME",
				FetchedAt: now.Add(-tc.age).Unix(),
			}
			if got := entry.Fresh(now); got != tc.want {
				t.Errorf("Fresh() with age %v = %v, want %v", tc.age, got, tc.want)
			}
		})
	}
}
