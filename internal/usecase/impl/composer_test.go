package impl

import (
	"testing"
	"time"

	"rentora/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func testPayment() *entity.Payment {
	return &entity.Payment{
		DueDate:         time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		TotalAmount:     8500,
		TenantName:      "María López",
		PropertyAddress: "Av. Reforma 123, Depto 4B",
	}
}

func TestComposeReminder_Upcoming(t *testing.T) {
	title, body := ComposeReminder(testPayment(), 3)

	assert.Equal(t, "Recordatorio de pago", title)
	assert.Contains(t, body, "María López")
	assert.Contains(t, body, "$8500.00 MXN")
	assert.Contains(t, body, "15/09/2026")
	assert.Contains(t, body, "Av. Reforma 123, Depto 4B")
}

func TestComposeReminder_DueToday(t *testing.T) {
	title, body := ComposeReminder(testPayment(), 0)

	assert.Equal(t, "Pago vence hoy", title)
	assert.Contains(t, body, "HOY")
	assert.Contains(t, body, "Av. Reforma 123, Depto 4B")
}

func TestComposeReminder_Overdue(t *testing.T) {
	title, body := ComposeReminder(testPayment(), -3)

	assert.Equal(t, "Pago atrasado", title)
	assert.Contains(t, body, "3 días de atraso")
	assert.Contains(t, body, "$8500.00 MXN")
	// Overdue messages carry the amount only, never the address.
	assert.NotContains(t, body, "Av. Reforma 123")
}

func TestComposeDigest(t *testing.T) {
	stats := DigestStats{
		DueTodayCount:  2,
		DueTodayAmount: 17000,
		OverdueCount:   1,
		OverdueAmount:  8500,
		RemindersSent:  4,
	}

	title, body := ComposeDigest("Inmobiliaria Centro", stats)

	assert.Equal(t, "Resumen de recordatorios", title)
	assert.Contains(t, body, "Inmobiliaria Centro")
	assert.Contains(t, body, "4 recordatorios")
	assert.Contains(t, body, "Vencen hoy: 2 pagos por $17000.00 MXN")
	assert.Contains(t, body, "Atrasados: 1 pagos por $8500.00 MXN")
}

func TestDigestStats_Record(t *testing.T) {
	var stats DigestStats
	payment := testPayment()

	stats.Record(payment, 3, true)
	stats.Record(payment, 0, true)
	stats.Record(payment, -3, false)

	assert.Equal(t, 1, stats.UpcomingCount)
	assert.Equal(t, 1, stats.DueTodayCount)
	assert.Equal(t, 1, stats.OverdueCount)
	assert.Equal(t, 2, stats.RemindersSent)
	assert.Equal(t, 1, stats.RemindersFailed)
	assert.InDelta(t, 8500, stats.DueTodayAmount, 0.001)
	assert.InDelta(t, 8500, stats.OverdueAmount, 0.001)
}
