package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationSetting is the per-organization reminder configuration,
// embedded in Organization. The sent counter is only ever mutated through
// the repository's atomic increment.
type NotificationSetting struct {
	Enabled              bool                `json:"enabled"`
	Channel              NotificationChannel `json:"channel"` // SMS, WHATSAPP or BOTH
	AdminDigestEnabled   bool                `json:"admin_digest_enabled"`
	MonthlyLimit         int                 `json:"monthly_limit"`
	SentThisMonth        int                 `json:"sent_this_month"`
	LastCounterReset     time.Time           `json:"last_counter_reset"`
	PlanCode             PlanCode            `json:"plan_code"`
	PreferredSMSProvider string              `json:"preferred_sms_provider,omitempty"`
}

// QuotaRemaining returns how many notifications the organization may still
// send this month.
func (s NotificationSetting) QuotaRemaining() int {
	remaining := s.MonthlyLimit - s.SentThisMonth
	if remaining < 0 {
		return 0
	}

	return remaining
}

// Organization is a property-management business (a tenant of the platform,
// not to be confused with the Tenant renting a property).
type Organization struct {
	ID            uuid.UUID           `json:"id"`
	Name          string              `json:"name"`
	OwnerID       uuid.UUID           `json:"owner_id"`
	OwnerName     string              `json:"owner_name"`
	OwnerPhone    string              `json:"owner_phone"`
	MaxProperties int                 `json:"max_properties"`
	Notification  NotificationSetting `json:"notification"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}
