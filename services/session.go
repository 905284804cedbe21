package services

import "time"

// SessionActive reports whether a stored session is still live at now. A
// session is live when its absolute expiry is in the future and the holder
// has been seen within the inactivity window. A session with no recorded
// activity falls back to the expiry alone.
func SessionActive(expiresAt, lastSeen *time.Time, now time.Time, ttl time.Duration) bool {
	if expiresAt == nil || !expiresAt.After(now) {
		return false
	}
	if lastSeen == nil {
		return true
	}
	return now.Sub(*lastSeen) <= ttl
}
