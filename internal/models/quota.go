package models

import "time"

// QuotaWindow is a rolling usage counter that resets lazily: the count is
// zeroed the first time it is touched after ResetAt has passed, never by a
// background timer. The ceiling is the caller's decision; QuotaWindow only
// keeps the bookkeeping honest.
type QuotaWindow struct {
	Count   int       `gorm:"not null;default:0" json:"count"`
	ResetAt time.Time `gorm:"not null" json:"reset_at"`
}

// NewQuotaWindow returns a fresh counter whose first reset is one window out.
func NewQuotaWindow(now time.Time, window time.Duration) QuotaWindow {
	return QuotaWindow{Count: 0, ResetAt: now.Add(window)}
}

// Consume applies the lazy reset, then records one use and returns the count
// within the current window (so the first use after a reset returns 1).
func (q *QuotaWindow) Consume(now time.Time, window time.Duration) int {
	if !now.Before(q.ResetAt) {
		q.Count = 0
		q.ResetAt = now.Add(window)
	}
	q.Count++
	return q.Count
}

// Used returns the count that applies at now, treating an elapsed window as
// empty without mutating the stored state.
func (q QuotaWindow) Used(now time.Time) int {
	if !now.Before(q.ResetAt) {
		return 0
	}
	return q.Count
}

// Remaining returns how many uses are left under limit at now, never negative.
func (q QuotaWindow) Remaining(limit int, now time.Time) int {
	remaining := limit - q.Used(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}
