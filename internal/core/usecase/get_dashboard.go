package usecase

import (
	"context"
	"sync"
	"time"

	"property-management-service/internal/constants"
	"property-management-service/internal/contextkeys"
	"property-management-service/internal/core/domain"
	"property-management-service/internal/core/port"
)

// GetDashboardUseCase - координатор batch-запроса дашборда.
// Выборки по сущностям выполняются параллельно, каждая пишет только
// в свой слот результата. Координатор ждет завершения всех выборок
// (settle-all, не fail-fast) и никогда не возвращает ошибку наверх:
// сбой отдельной выборки превращается в пустую коллекцию плюс запись
// в Errors.
type GetDashboardUseCase struct {
	properties port.PropertyStoragePort
	tenants    port.TenantStoragePort
	payments   port.PaymentStoragePort

	// now выделено в поле, чтобы тесты могли зафиксировать время
	now func() time.Time
}

func NewGetDashboardUseCase(properties port.PropertyStoragePort,
	tenants port.TenantStoragePort,
	payments port.PaymentStoragePort) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		properties: properties,
		tenants:    tenants,
		payments:   payments,
		now:        time.Now,
	}
}

// ResolveInclude превращает список include в набор секций.
// Пустой или полностью нераспознанный список означает "все секции".
func ResolveInclude(include []string) domain.IncludeSet {
	if len(include) == 0 {
		return domain.IncludeSet{Properties: true, Tenants: true, Payments: true, Stats: true, Alerts: true}
	}

	var set domain.IncludeSet
	known := false
	for _, section := range include {
		switch section {
		case domain.SectionProperties:
			set.Properties = true
			known = true
		case domain.SectionTenants:
			set.Tenants = true
			known = true
		case domain.SectionPayments:
			set.Payments = true
			known = true
		case domain.SectionStats:
			set.Stats = true
			known = true
		case domain.SectionAlerts:
			set.Alerts = true
			known = true
		}
		// неизвестные значения просто игнорируем
	}
	if !known {
		return domain.IncludeSet{Properties: true, Tenants: true, Payments: true, Stats: true, Alerts: true}
	}
	return set
}

// dashboardFilters - результат работы построителя фильтров:
// по одному набору ограничений на каждую сущность.
type dashboardFilters struct {
	properties domain.FindPropertiesFilters
	tenants    domain.FindTenantsFilters
	payments   domain.FindPaymentsFilters
}

// buildFilters переводит параметры запроса в ограничения выборок.
// Дефолтное окно платежей: [now - 90 дней, now]. Если start > end,
// выборка всё равно выполняется (и вернет пустой результат) -
// потребители обязаны переживать пустые коллекции.
func buildFilters(query domain.DashboardQuery, now time.Time) dashboardFilters {
	start := now.AddDate(0, 0, -constants.DefaultDashboardRangeDays)
	end := now
	if query.TimeRangeStart != nil {
		start = *query.TimeRangeStart
	}
	if query.TimeRangeEnd != nil {
		end = *query.TimeRangeEnd
	}

	return dashboardFilters{
		properties: domain.FindPropertiesFilters{
			IDs: query.PropertyIDs,
		},
		tenants: domain.FindTenantsFilters{
			PropertyIDs: query.PropertyIDs,
			Status:      query.TenantStatus,
		},
		payments: domain.FindPaymentsFilters{
			PropertyIDs: query.PropertyIDs,
			Status:      query.PaymentStatus,
			DateFrom:    &start,
			DateTo:      &end,
		},
	}
}

func (uc *GetDashboardUseCase) Execute(ctx context.Context, query domain.DashboardQuery) *domain.DashboardResult {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetDashboard",
		"include":  query.Include,
	})

	ucLogger.Info("Use case started", nil)

	now := uc.now()
	include := ResolveInclude(query.Include)
	filters := buildFilters(query, now)

	var (
		snapshot  domain.DashboardSnapshot
		fetchErrs []domain.FetchError

		wg sync.WaitGroup
		mu sync.Mutex // только для fetchErrs, слоты снапшота не пересекаются
	)

	recordError := func(entity string, err error) {
		mu.Lock()
		defer mu.Unlock()
		fetchErrs = append(fetchErrs, domain.FetchError{Entity: entity, Message: err.Error()})
	}

	if include.NeedsProperties() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			items, _, err := uc.properties.FindWithFilters(ctx, filters.properties, 0, 0)
			if err != nil {
				ucLogger.Error("Properties fetch failed", err, nil)
				recordError(domain.SectionProperties, err)
				return
			}
			snapshot.Properties = items
		}()
	}

	if include.NeedsTenants() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			items, _, err := uc.tenants.FindWithFilters(ctx, filters.tenants, 0, 0)
			if err != nil {
				ucLogger.Error("Tenants fetch failed", err, nil)
				recordError(domain.SectionTenants, err)
				return
			}
			snapshot.Tenants = items
		}()
	}

	if include.NeedsPayments() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			items, _, err := uc.payments.FindWithFilters(ctx, filters.payments, 0, 0)
			if err != nil {
				ucLogger.Error("Payments fetch failed", err, nil)
				recordError(domain.SectionPayments, err)
				return
			}
			snapshot.Payments = items
		}()
	}

	// Барьер settle-all: ждем исхода каждой выборки, успех или ошибка.
	wg.Wait()

	result := &domain.DashboardResult{
		Include:     include,
		Errors:      fetchErrs,
		GeneratedAt: now,
	}

	if include.Properties {
		result.Properties = snapshot.Properties
	}
	if include.Tenants {
		result.Tenants = snapshot.Tenants
	}
	if include.Payments {
		result.Payments = snapshot.Payments
	}
	if include.Stats {
		stats := ComputeDashboardStats(snapshot, now)
		result.Stats = &stats
	}
	if include.Alerts {
		result.Alerts = GenerateAlerts(snapshot, now)
	}

	ucLogger.Info("Use case finished", port.Fields{
		"properties":   len(snapshot.Properties),
		"tenants":      len(snapshot.Tenants),
		"payments":     len(snapshot.Payments),
		"fetch_errors": len(fetchErrs),
	})

	return result
}
