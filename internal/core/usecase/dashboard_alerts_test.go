package usecase

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property-management-service/internal/core/domain"
)

func TestGenerateAlerts_EmptySnapshot(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

	alerts := GenerateAlerts(domain.DashboardSnapshot{}, now)

	assert.Empty(t, alerts)
}

func TestGenerateAlerts_OverduePayments(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

	snapshot := domain.DashboardSnapshot{
		Payments: []domain.Payment{
			{Amount: 500, Status: domain.PaymentStatusOverdue},
			{Amount: 300, Status: domain.PaymentStatusOverdue},
			{Amount: 1000, Status: domain.PaymentStatusPaid},
		},
	}

	alerts := GenerateAlerts(snapshot, now)

	require.Len(t, alerts, 1)
	assert.Equal(t, domain.AlertTypeOverduePayments, alerts[0].Type)
	assert.Equal(t, domain.AlertSeverityHigh, alerts[0].Severity)
	assert.Equal(t, 2, alerts[0].Count)
	assert.Equal(t, "2 payments are overdue, totalling 800.00", alerts[0].Description)
}

func TestGenerateAlerts_LeaseExpiringInsideWindow(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

	in20d := now.AddDate(0, 0, 20)
	in40d := now.AddDate(0, 0, 40)
	past := now.AddDate(0, 0, -1)

	snapshot := domain.DashboardSnapshot{
		Tenants: []domain.Tenant{
			{ID: uuid.New(), Status: domain.TenantStatusActive, LeaseEnd: &in20d},
			{ID: uuid.New(), Status: domain.TenantStatusActive, LeaseEnd: &in40d},
			{ID: uuid.New(), Status: domain.TenantStatusActive, LeaseEnd: &past},
			{ID: uuid.New(), Status: domain.TenantStatusActive, LeaseEnd: nil},
		},
	}

	alerts := GenerateAlerts(snapshot, now)

	require.Len(t, alerts, 1)
	assert.Equal(t, domain.AlertTypeExpiringLeases, alerts[0].Type)
	assert.Equal(t, domain.AlertSeverityMedium, alerts[0].Severity)
	assert.Equal(t, 1, alerts[0].Count)
}

func TestGenerateAlerts_WindowBoundsInclusive(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

	atNow := now
	atWindowEnd := now.AddDate(0, 0, 30)

	snapshot := domain.DashboardSnapshot{
		Tenants: []domain.Tenant{
			{ID: uuid.New(), LeaseEnd: &atNow},
			{ID: uuid.New(), LeaseEnd: &atWindowEnd},
		},
	}

	alerts := GenerateAlerts(snapshot, now)

	require.Len(t, alerts, 1)
	assert.Equal(t, 2, alerts[0].Count)
}

func TestGenerateAlerts_VacantUnits(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	occupiedProperty := uuid.New()
	emptyProperty := uuid.New()

	snapshot := domain.DashboardSnapshot{
		Properties: []domain.Property{
			{ID: occupiedProperty, TotalUnits: 2},
			{ID: emptyProperty, TotalUnits: 3},
		},
		Tenants: []domain.Tenant{
			{ID: uuid.New(), PropertyID: occupiedProperty, Status: domain.TenantStatusActive},
		},
	}

	alerts := GenerateAlerts(snapshot, now)

	require.Len(t, alerts, 1)
	assert.Equal(t, domain.AlertTypeVacantUnits, alerts[0].Type)
	assert.Equal(t, domain.AlertSeverityLow, alerts[0].Severity)
	// 1 свободный юнит в первом объекте + 3 во втором.
	assert.Equal(t, 4, alerts[0].Count)
}

func TestGenerateAlerts_FixedOrder(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	propertyID := uuid.New()
	leaseEnd := now.AddDate(0, 0, 10)

	snapshot := domain.DashboardSnapshot{
		Properties: []domain.Property{{ID: propertyID, TotalUnits: 5}},
		Tenants: []domain.Tenant{
			{ID: uuid.New(), PropertyID: propertyID, Status: domain.TenantStatusActive, LeaseEnd: &leaseEnd},
		},
		Payments: []domain.Payment{
			{Amount: 250, Status: domain.PaymentStatusOverdue},
		},
	}

	alerts := GenerateAlerts(snapshot, now)

	require.Len(t, alerts, 3)
	assert.Equal(t, domain.AlertTypeOverduePayments, alerts[0].Type)
	assert.Equal(t, domain.AlertTypeExpiringLeases, alerts[1].Type)
	assert.Equal(t, domain.AlertTypeVacantUnits, alerts[2].Type)
}
