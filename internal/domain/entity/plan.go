package entity

// PlanCode identifies an organization's subscription tier.
type PlanCode string

const (
	// PlanSuperior is the top tier: unlimited history, overdue reminders,
	// flat monthly notification quota.
	PlanSuperior PlanCode = "SUPERIOR"
	// PlanProfesional is the mid tier: quota derived from property count.
	PlanProfesional PlanCode = "PROFESIONAL"
	// PlanBasica is the entry tier: reminders disabled.
	PlanBasica PlanCode = "BASICA"
)

const superiorMonthlyLimit = 1000

// MonthlyLimit returns the notification quota for the plan.
// The mid tier scales with property count: one upcoming and one due-today
// reminder for up to three payments per property each month.
func (p PlanCode) MonthlyLimit(maxProperties int) int {
	switch p {
	case PlanSuperior:
		return superiorMonthlyLimit
	case PlanProfesional:
		return maxProperties * 3 * 2
	default:
		return 0
	}
}

// IncludesOverdueReminders reports whether the plan receives the
// three-days-overdue reminder bucket. Only the top tier does.
func (p PlanCode) IncludesOverdueReminders() bool {
	return p == PlanSuperior
}
