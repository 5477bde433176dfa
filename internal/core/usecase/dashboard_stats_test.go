package usecase

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"property-management-service/internal/core/domain"
)

func TestComputeDashboardStats_EmptySnapshot(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

	stats := ComputeDashboardStats(domain.DashboardSnapshot{}, now)

	assert.Equal(t, 0, stats.Properties.TotalProperties)
	assert.Equal(t, 0, stats.Properties.TotalUnits)
	assert.Equal(t, 0, stats.Tenants.ActiveTenants)
	assert.Equal(t, 0, stats.Tenants.VacantUnits)
	assert.Equal(t, 0.0, stats.Tenants.OccupancyRate)
	assert.Equal(t, 0.0, stats.Revenue.TotalRevenue)
	assert.Equal(t, 0, stats.Payments.ThisMonth)
}

func TestComputeDashboardStats_SinglePropertyWithActiveTenant(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	propertyID := uuid.New()

	snapshot := domain.DashboardSnapshot{
		Properties: []domain.Property{
			{ID: propertyID, Name: "Sunrise", TotalUnits: 2, Status: domain.PropertyStatusActive},
		},
		Tenants: []domain.Tenant{
			{ID: uuid.New(), PropertyID: propertyID, Status: domain.TenantStatusActive, MonthlyRent: 1000},
		},
	}

	stats := ComputeDashboardStats(snapshot, now)

	assert.Equal(t, 1, stats.Properties.TotalProperties)
	assert.Equal(t, 2, stats.Properties.TotalUnits)
	assert.Equal(t, 1, stats.Tenants.ActiveTenants)
	assert.Equal(t, 1, stats.Tenants.OccupiedUnits)
	assert.Equal(t, 1, stats.Tenants.VacantUnits)
	assert.Equal(t, 50.0, stats.Tenants.OccupancyRate)
	assert.Equal(t, 1000.0, stats.Revenue.MonthlyRentPotential)
	assert.Equal(t, 1000.0, stats.Revenue.MonthlyRentActual)
}

func TestComputeDashboardStats_UnsetUnitsCountAsOne(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

	snapshot := domain.DashboardSnapshot{
		Properties: []domain.Property{
			{ID: uuid.New(), TotalUnits: 0},
			{ID: uuid.New(), TotalUnits: -3},
		},
	}

	stats := ComputeDashboardStats(snapshot, now)

	assert.Equal(t, 2, stats.Properties.TotalUnits)
}

func TestComputeDashboardStats_InactiveTenantCountedOnlyInPotential(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	propertyID := uuid.New()

	snapshot := domain.DashboardSnapshot{
		Properties: []domain.Property{{ID: propertyID, TotalUnits: 1}},
		Tenants: []domain.Tenant{
			{ID: uuid.New(), PropertyID: propertyID, Status: domain.TenantStatusInactive, MonthlyRent: 800},
		},
	}

	stats := ComputeDashboardStats(snapshot, now)

	assert.Equal(t, 0, stats.Tenants.ActiveTenants)
	assert.Equal(t, 800.0, stats.Revenue.MonthlyRentPotential)
	assert.Equal(t, 0.0, stats.Revenue.MonthlyRentActual)
	assert.Equal(t, 0.0, stats.Tenants.OccupancyRate)
}

func TestComputeDashboardStats_VacantUnitsNeverNegative(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	propertyID := uuid.New()

	// Активных арендаторов больше, чем юнитов.
	snapshot := domain.DashboardSnapshot{
		Properties: []domain.Property{{ID: propertyID, TotalUnits: 1}},
		Tenants: []domain.Tenant{
			{ID: uuid.New(), PropertyID: propertyID, Status: domain.TenantStatusActive},
			{ID: uuid.New(), PropertyID: propertyID, Status: domain.TenantStatusActive},
		},
	}

	stats := ComputeDashboardStats(snapshot, now)

	assert.Equal(t, 0, stats.Tenants.VacantUnits)
	assert.Equal(t, 100.0, stats.Tenants.OccupancyRate)
}

func TestComputeDashboardStats_RevenueByStatusAndMonth(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	inMonth := time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC)
	outOfMonth := time.Date(2024, time.January, 3, 0, 0, 0, 0, time.UTC)

	snapshot := domain.DashboardSnapshot{
		Payments: []domain.Payment{
			{Amount: 1200, Status: domain.PaymentStatusPaid, PaymentDate: inMonth},
			{Amount: 900, Status: domain.PaymentStatusPaid, PaymentDate: outOfMonth},
			{Amount: 500, Status: domain.PaymentStatusOverdue, PaymentDate: inMonth},
			{Amount: 300, Status: domain.PaymentStatusPending, PaymentDate: inMonth},
		},
	}

	stats := ComputeDashboardStats(snapshot, now)

	assert.Equal(t, 2, stats.Payments.Paid)
	assert.Equal(t, 1, stats.Payments.Overdue)
	assert.Equal(t, 1, stats.Payments.Pending)
	// ThisMonth считает все платежи текущего месяца независимо от статуса.
	assert.Equal(t, 3, stats.Payments.ThisMonth)

	assert.Equal(t, 2100.0, stats.Revenue.TotalRevenue)
	assert.Equal(t, 1200.0, stats.Revenue.ThisMonthRevenue)
	assert.Equal(t, 500.0, stats.Revenue.OverdueAmount)
}

func TestComputeDashboardStats_OccupancyRateRounding(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	propertyID := uuid.New()

	// 1 из 3 юнитов: 33.333... -> 33.33
	snapshot := domain.DashboardSnapshot{
		Properties: []domain.Property{{ID: propertyID, TotalUnits: 3}},
		Tenants: []domain.Tenant{
			{ID: uuid.New(), PropertyID: propertyID, Status: domain.TenantStatusActive},
		},
	}

	stats := ComputeDashboardStats(snapshot, now)

	assert.Equal(t, 33.33, stats.Tenants.OccupancyRate)
}
