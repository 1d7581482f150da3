package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotificationStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from    NotificationStatus
		to      NotificationStatus
		allowed bool
	}{
		{StatusPending, StatusSent, true},
		{StatusPending, StatusFailed, true},
		{StatusPending, StatusDelivered, false},
		{StatusSent, StatusDelivered, true},
		{StatusSent, StatusFailed, true},
		{StatusSent, StatusPending, false},
		{StatusDelivered, StatusFailed, false},
		{StatusDelivered, StatusSent, false},
		{StatusFailed, StatusSent, false},
		{StatusFailed, StatusDelivered, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestNotificationStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusSent.IsTerminal())
	assert.True(t, StatusDelivered.IsTerminal())
	assert.True(t, StatusFailed.IsTerminal())
}
