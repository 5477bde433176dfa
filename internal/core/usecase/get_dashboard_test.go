package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"property-management-service/internal/core/domain"
)

// --- Моки хранилищ ---

type mockPropertyStorage struct {
	mock.Mock
}

func (m *mockPropertyStorage) Save(ctx context.Context, property domain.Property) error {
	args := m.Called(ctx, property)
	return args.Error(0)
}

func (m *mockPropertyStorage) FindByID(ctx context.Context, propertyID uuid.UUID) (*domain.Property, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

func (m *mockPropertyStorage) FindWithFilters(ctx context.Context, filters domain.FindPropertiesFilters, limit, offset int) ([]domain.Property, int, error) {
	args := m.Called(ctx, filters, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Property), args.Int(1), args.Error(2)
}

type mockTenantStorage struct {
	mock.Mock
}

func (m *mockTenantStorage) Save(ctx context.Context, tenant domain.Tenant) error {
	args := m.Called(ctx, tenant)
	return args.Error(0)
}

func (m *mockTenantStorage) FindWithFilters(ctx context.Context, filters domain.FindTenantsFilters, limit, offset int) ([]domain.Tenant, int, error) {
	args := m.Called(ctx, filters, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Tenant), args.Int(1), args.Error(2)
}

type mockPaymentStorage struct {
	mock.Mock
}

func (m *mockPaymentStorage) Save(ctx context.Context, payment domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *mockPaymentStorage) FindWithFilters(ctx context.Context, filters domain.FindPaymentsFilters, limit, offset int) ([]domain.Payment, int, error) {
	args := m.Called(ctx, filters, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Payment), args.Int(1), args.Error(2)
}

func fixedNow() time.Time {
	return time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
}

func newDashboardUseCase(properties *mockPropertyStorage, tenants *mockTenantStorage, payments *mockPaymentStorage) *GetDashboardUseCase {
	uc := NewGetDashboardUseCase(properties, tenants, payments)
	uc.now = fixedNow
	return uc
}

func TestGetDashboard_AllSectionsByDefault(t *testing.T) {
	propertyID := uuid.New()

	properties := new(mockPropertyStorage)
	tenants := new(mockTenantStorage)
	payments := new(mockPaymentStorage)

	properties.On("FindWithFilters", mock.Anything, mock.Anything, 0, 0).
		Return([]domain.Property{{ID: propertyID, TotalUnits: 2}}, 1, nil)
	tenants.On("FindWithFilters", mock.Anything, mock.Anything, 0, 0).
		Return([]domain.Tenant{{ID: uuid.New(), PropertyID: propertyID, Status: domain.TenantStatusActive, MonthlyRent: 1000}}, 1, nil)
	payments.On("FindWithFilters", mock.Anything, mock.Anything, 0, 0).
		Return([]domain.Payment{{Amount: 500, Status: domain.PaymentStatusPaid, PaymentDate: fixedNow()}}, 1, nil)

	uc := newDashboardUseCase(properties, tenants, payments)

	result := uc.Execute(context.Background(), domain.DashboardQuery{})

	require.NotNil(t, result)
	assert.Empty(t, result.Errors)
	assert.Len(t, result.Properties, 1)
	assert.Len(t, result.Tenants, 1)
	assert.Len(t, result.Payments, 1)
	require.NotNil(t, result.Stats)
	assert.Equal(t, 1, result.Stats.Properties.TotalProperties)
	assert.NotNil(t, result.Alerts)
	assert.Equal(t, fixedNow(), result.GeneratedAt)
}

func TestGetDashboard_PartialFailureDoesNotFailRequest(t *testing.T) {
	properties := new(mockPropertyStorage)
	tenants := new(mockTenantStorage)
	payments := new(mockPaymentStorage)

	properties.On("FindWithFilters", mock.Anything, mock.Anything, 0, 0).
		Return([]domain.Property{{ID: uuid.New(), TotalUnits: 2}}, 1, nil)
	tenants.On("FindWithFilters", mock.Anything, mock.Anything, 0, 0).
		Return(nil, 0, errors.New("connection refused"))
	payments.On("FindWithFilters", mock.Anything, mock.Anything, 0, 0).
		Return([]domain.Payment{{Amount: 500, Status: domain.PaymentStatusPaid, PaymentDate: fixedNow()}}, 1, nil)

	uc := newDashboardUseCase(properties, tenants, payments)

	result := uc.Execute(context.Background(), domain.DashboardQuery{})

	require.NotNil(t, result)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, domain.SectionTenants, result.Errors[0].Entity)
	assert.Equal(t, "connection refused", result.Errors[0].Message)

	// Удачные выборки и агрегаты на месте, сбойная - пустая.
	assert.Len(t, result.Properties, 1)
	assert.Len(t, result.Payments, 1)
	assert.Empty(t, result.Tenants)
	require.NotNil(t, result.Stats)
	assert.Equal(t, 0, result.Stats.Tenants.ActiveTenants)
	assert.Equal(t, 500.0, result.Stats.Revenue.TotalRevenue)
}

func TestGetDashboard_StatsOnlyStillFetchesAllEntities(t *testing.T) {
	properties := new(mockPropertyStorage)
	tenants := new(mockTenantStorage)
	payments := new(mockPaymentStorage)

	properties.On("FindWithFilters", mock.Anything, mock.Anything, 0, 0).Return([]domain.Property{}, 0, nil)
	tenants.On("FindWithFilters", mock.Anything, mock.Anything, 0, 0).Return([]domain.Tenant{}, 0, nil)
	payments.On("FindWithFilters", mock.Anything, mock.Anything, 0, 0).Return([]domain.Payment{}, 0, nil)

	uc := newDashboardUseCase(properties, tenants, payments)

	result := uc.Execute(context.Background(), domain.DashboardQuery{Include: []string{domain.SectionStats}})

	require.NotNil(t, result.Stats)
	// Секции-сырье не запрошены, значит в результат не попадают.
	assert.False(t, result.Include.Properties)
	assert.Nil(t, result.Properties)
	assert.Nil(t, result.Tenants)
	assert.Nil(t, result.Payments)
	assert.Nil(t, result.Alerts)

	properties.AssertExpectations(t)
	tenants.AssertExpectations(t)
	payments.AssertExpectations(t)
}

func TestGetDashboard_AlertsOnlySkipsProperties(t *testing.T) {
	tenants := new(mockTenantStorage)
	payments := new(mockPaymentStorage)
	properties := new(mockPropertyStorage)

	tenants.On("FindWithFilters", mock.Anything, mock.Anything, 0, 0).Return([]domain.Tenant{}, 0, nil)
	payments.On("FindWithFilters", mock.Anything, mock.Anything, 0, 0).Return([]domain.Payment{}, 0, nil)

	uc := newDashboardUseCase(properties, tenants, payments)

	result := uc.Execute(context.Background(), domain.DashboardQuery{Include: []string{domain.SectionAlerts}})

	require.NotNil(t, result.Alerts)
	assert.Empty(t, result.Alerts)
	assert.Nil(t, result.Stats)

	// Объекты для алертов не нужны, выборка не должна выполняться.
	properties.AssertNotCalled(t, "FindWithFilters", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGetDashboard_PaymentsFilterWindow(t *testing.T) {
	properties := new(mockPropertyStorage)
	tenants := new(mockTenantStorage)
	payments := new(mockPaymentStorage)

	var captured domain.FindPaymentsFilters
	payments.On("FindWithFilters", mock.Anything, mock.Anything, 0, 0).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(domain.FindPaymentsFilters)
		}).
		Return([]domain.Payment{}, 0, nil)

	uc := newDashboardUseCase(properties, tenants, payments)

	uc.Execute(context.Background(), domain.DashboardQuery{Include: []string{domain.SectionPayments}})

	require.NotNil(t, captured.DateFrom)
	require.NotNil(t, captured.DateTo)
	assert.Equal(t, fixedNow().AddDate(0, 0, -90), *captured.DateFrom)
	assert.Equal(t, fixedNow(), *captured.DateTo)
}

func TestResolveInclude(t *testing.T) {
	all := domain.IncludeSet{Properties: true, Tenants: true, Payments: true, Stats: true, Alerts: true}

	tests := []struct {
		name    string
		include []string
		want    domain.IncludeSet
	}{
		{
			name:    "empty means all",
			include: nil,
			want:    all,
		},
		{
			name:    "only unknown values means all",
			include: []string{"bogus", "unknown"},
			want:    all,
		},
		{
			name:    "unknown values mixed with known are ignored",
			include: []string{"properties", "bogus"},
			want:    domain.IncludeSet{Properties: true},
		},
		{
			name:    "stats and alerts",
			include: []string{"stats", "alerts"},
			want:    domain.IncludeSet{Stats: true, Alerts: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveInclude(tt.include))
		})
	}
}
