package impl

import (
	"fmt"
	"time"

	"rentora/internal/domain/entity"
)

// Reminder titles, shared by the notification record and the admin digest
// aggregation.
const (
	TitleUpcoming = "Recordatorio de pago"
	TitleDueToday = "Pago vence hoy"
	TitleOverdue  = "Pago atrasado"
)

// ComposeReminder builds the title and body for one payment reminder from the
// payment read model and its day-offset bucket. Pure function.
func ComposeReminder(payment *entity.Payment, daysUntilDue int) (title, body string) {
	amount := formatAmount(payment.TotalAmount)

	switch {
	case daysUntilDue > 0:
		title = TitleUpcoming
		body = fmt.Sprintf(
			"Hola %s, te recordamos que tu pago de %s vence el %s. Propiedad: %s.",
			payment.TenantName, amount, formatDate(payment.DueDate), payment.PropertyAddress)
	case daysUntilDue == 0:
		title = TitleDueToday
		body = fmt.Sprintf(
			"Hola %s, tu pago de %s vence HOY. Por favor realiza tu pago para evitar recargos. Propiedad: %s.",
			payment.TenantName, amount, payment.PropertyAddress)
	default:
		daysLate := -daysUntilDue
		title = TitleOverdue
		body = fmt.Sprintf(
			"Hola %s, tu pago de %s tiene %d días de atraso. Por favor realiza tu pago a la brevedad.",
			payment.TenantName, amount, daysLate)
	}

	return title, body
}

// DigestStats aggregates one run's outcome for a single organization, for the
// owner digest message.
type DigestStats struct {
	DueTodayCount   int
	DueTodayAmount  float64
	OverdueCount    int
	OverdueAmount   float64
	UpcomingCount   int
	RemindersSent   int
	RemindersFailed int
}

// Record folds one dispatched reminder into the stats.
func (d *DigestStats) Record(payment *entity.Payment, daysUntilDue int, sent bool) {
	switch {
	case daysUntilDue == 0:
		d.DueTodayCount++
		d.DueTodayAmount += payment.TotalAmount
	case daysUntilDue < 0:
		d.OverdueCount++
		d.OverdueAmount += payment.TotalAmount
	default:
		d.UpcomingCount++
	}

	if sent {
		d.RemindersSent++
	} else {
		d.RemindersFailed++
	}
}

// ComposeDigest builds the consolidated owner summary sent after a run.
func ComposeDigest(organizationName string, stats DigestStats) (title, body string) {
	title = "Resumen de recordatorios"
	body = fmt.Sprintf(
		"%s: se enviaron %d recordatorios de pago. Vencen hoy: %d pagos por %s. Atrasados: %d pagos por %s.",
		organizationName, stats.RemindersSent,
		stats.DueTodayCount, formatAmount(stats.DueTodayAmount),
		stats.OverdueCount, formatAmount(stats.OverdueAmount))

	return title, body
}

func formatAmount(amount float64) string {
	return fmt.Sprintf("$%.2f MXN", amount)
}

func formatDate(t time.Time) string {
	return t.Format("02/01/2006")
}
