package impl

import "rentora/internal/domain/entity"

// quotaTracker gates sends for one organization during one run. It works on
// the settings snapshot loaded at the start of the run plus a local
// reservation count; the authoritative counter update is the repository's
// guarded atomic increment, performed per physical message on success.
type quotaTracker struct {
	limit    int
	sent     int // snapshot of sent_this_month at run start
	reserved int
}

func newQuotaTracker(setting entity.NotificationSetting) *quotaTracker {
	return &quotaTracker{
		limit: setting.MonthlyLimit,
		sent:  setting.SentThisMonth,
	}
}

// TryReserve reserves n physical messages if they fit under the monthly
// limit. A denied reservation changes nothing.
func (q *quotaTracker) TryReserve(n int) bool {
	if q.sent+q.reserved+n > q.limit {
		return false
	}
	q.reserved += n

	return true
}

// Release frees a reservation for a message that was not actually sent
// (dispatch failed, so the counter was never incremented).
func (q *quotaTracker) Release(n int) {
	q.reserved -= n
	if q.reserved < 0 {
		q.reserved = 0
	}
}

// Exhausted reports whether no further message fits.
func (q *quotaTracker) Exhausted() bool {
	return q.sent+q.reserved >= q.limit
}
