package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionActive(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	ttl := 30 * time.Minute

	ptr := func(t time.Time) *time.Time { return &t }

	tests := []struct {
		name      string
		expiresAt *time.Time
		lastSeen  *time.Time
		want      bool
	}{
		{
			name: "no expiry stored",
			want: false,
		},
		{
			name:      "expiry in the past",
			expiresAt: ptr(now.Add(-time.Second)),
			lastSeen:  ptr(now.Add(-time.Minute)),
			want:      false,
		},
		{
			name:      "expiry exactly now",
			expiresAt: ptr(now),
			lastSeen:  ptr(now.Add(-time.Minute)),
			want:      false,
		},
		{
			name:      "live with recent activity",
			expiresAt: ptr(now.Add(20 * time.Minute)),
			lastSeen:  ptr(now.Add(-10 * time.Minute)),
			want:      true,
		},
		{
			name:      "live with no recorded activity",
			expiresAt: ptr(now.Add(20 * time.Minute)),
			want:      true,
		},
		{
			name:      "expiry ahead but holder idle past the window",
			expiresAt: ptr(now.Add(20 * time.Minute)),
			lastSeen:  ptr(now.Add(-31 * time.Minute)),
			want:      false,
		},
		{
			name:      "idle exactly at the window boundary",
			expiresAt: ptr(now.Add(20 * time.Minute)),
			lastSeen:  ptr(now.Add(-ttl)),
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, SessionActive(tt.expiresAt, tt.lastSeen, now, ttl))
		})
	}
}
