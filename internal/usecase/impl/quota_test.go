package impl

import (
	"testing"

	"rentora/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestQuotaTracker_TryReserve(t *testing.T) {
	quota := newQuotaTracker(entity.NotificationSetting{MonthlyLimit: 1000, SentThisMonth: 998})

	assert.True(t, quota.TryReserve(1))
	assert.True(t, quota.TryReserve(1))
	// 998 sent + 2 reserved = limit, nothing more fits
	assert.False(t, quota.TryReserve(1))
	assert.True(t, quota.Exhausted())
}

func TestQuotaTracker_DeniedReservationChangesNothing(t *testing.T) {
	quota := newQuotaTracker(entity.NotificationSetting{MonthlyLimit: 10, SentThisMonth: 9})

	// A two-message reservation (BOTH channel) does not fit...
	assert.False(t, quota.TryReserve(2))
	// ...and must not consume the remaining single slot.
	assert.True(t, quota.TryReserve(1))
}

func TestQuotaTracker_Release(t *testing.T) {
	quota := newQuotaTracker(entity.NotificationSetting{MonthlyLimit: 10, SentThisMonth: 9})

	assert.True(t, quota.TryReserve(1))
	assert.False(t, quota.TryReserve(1))

	quota.Release(1)
	assert.True(t, quota.TryReserve(1))

	// Releasing more than reserved clamps at zero.
	quota.Release(5)
	assert.True(t, quota.TryReserve(1))
}
