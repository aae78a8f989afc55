package notifier

import "time"

// PendingCount is the last known number of unclaimed rewards. Stale is set
// when the latest refresh failed and Count comes from an earlier one.
// A zero UpdatedAt means no refresh has succeeded yet.
type PendingCount struct {
	Count     int       `json:"count"`
	Stale     bool      `json:"stale"`
	UpdatedAt time.Time `json:"updatedAt"`
	LastError string    `json:"lastError,omitempty"`
}
