package usecase

import (
	"context"
	"time"
)

// RunSummary aggregates the outcome of one reminder cycle across all
// organizations.
type RunSummary struct {
	StartedAt              time.Time `json:"started_at"`
	FinishedAt             time.Time `json:"finished_at"`
	OrganizationsProcessed int       `json:"organizations_processed"`
	OrganizationsSkipped   int       `json:"organizations_skipped"` // quota already exhausted before the run
	OrganizationsFailed    int       `json:"organizations_failed"`
	RemindersSent          int       `json:"reminders_sent"`
	RemindersFailed        int       `json:"reminders_failed"`
	QuotaSkipped           int       `json:"quota_skipped"` // payments skipped mid-run on quota exhaustion
	InvalidPhones          int       `json:"invalid_phones"`
	DigestsSent            int       `json:"digests_sent"`
	StaleResumed           int       `json:"stale_resumed"`
}

// ReminderUsecase drives the scheduled payment-reminder batch.
type ReminderUsecase interface {
	// RunReminderCycle executes one reminder run for all eligible
	// organizations, using now as "today". A per-organization failure never
	// aborts the run; the error return is reserved for run-level failures
	// (e.g. the organization listing itself).
	RunReminderCycle(ctx context.Context, now time.Time) (*RunSummary, error)
}
