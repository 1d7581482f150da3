package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanCode_MonthlyLimit(t *testing.T) {
	assert.Equal(t, 1000, PlanSuperior.MonthlyLimit(5))
	assert.Equal(t, 1000, PlanSuperior.MonthlyLimit(0))
	assert.Equal(t, 60, PlanProfesional.MonthlyLimit(10))
	assert.Equal(t, 0, PlanProfesional.MonthlyLimit(0))
	assert.Equal(t, 0, PlanBasica.MonthlyLimit(50))
	assert.Equal(t, 0, PlanCode("DESCONOCIDO").MonthlyLimit(50))
}

func TestPlanCode_IncludesOverdueReminders(t *testing.T) {
	assert.True(t, PlanSuperior.IncludesOverdueReminders())
	assert.False(t, PlanProfesional.IncludesOverdueReminders())
	assert.False(t, PlanBasica.IncludesOverdueReminders())
}

func TestNotificationSetting_QuotaRemaining(t *testing.T) {
	assert.Equal(t, 3, NotificationSetting{MonthlyLimit: 10, SentThisMonth: 7}.QuotaRemaining())
	assert.Equal(t, 0, NotificationSetting{MonthlyLimit: 10, SentThisMonth: 10}.QuotaRemaining())
	assert.Equal(t, 0, NotificationSetting{MonthlyLimit: 10, SentThisMonth: 12}.QuotaRemaining())
}
