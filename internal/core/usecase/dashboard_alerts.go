package usecase

import (
	"fmt"
	"time"

	"property-management-service/internal/constants"
	"property-management-service/internal/core/domain"
)

// GenerateAlerts прогоняет слепок данных через фиксированный набор
// правил. Правила независимы, ни одно не подавляет другое, порядок
// в результате всегда одинаковый: просроченные платежи, истекающие
// аренды, свободные юниты. Чистая функция от (snapshot, now).
func GenerateAlerts(snapshot domain.DashboardSnapshot, now time.Time) []domain.Alert {
	alerts := make([]domain.Alert, 0, 3)

	// Правило 1: просроченные платежи.
	overdueCount := 0
	overdueTotal := 0.0
	for _, payment := range snapshot.Payments {
		if payment.Status == domain.PaymentStatusOverdue {
			overdueCount++
			overdueTotal += payment.Amount
		}
	}
	if overdueCount > 0 {
		alerts = append(alerts, domain.Alert{
			Type:        domain.AlertTypeOverduePayments,
			Severity:    domain.AlertSeverityHigh,
			Title:       "Overdue payments",
			Description: fmt.Sprintf("%d payments are overdue, totalling %.2f", overdueCount, overdueTotal),
			Count:       overdueCount,
			Action:      "View payments",
		})
	}

	// Правило 2: аренды, истекающие в окне [now, now + 30 дней], включительно.
	windowEnd := now.AddDate(0, 0, constants.LeaseExpiryWindowDays)
	expiringCount := 0
	for _, tenant := range snapshot.Tenants {
		if tenant.LeaseEnd == nil {
			continue
		}
		if !tenant.LeaseEnd.Before(now) && !tenant.LeaseEnd.After(windowEnd) {
			expiringCount++
		}
	}
	if expiringCount > 0 {
		alerts = append(alerts, domain.Alert{
			Type:        domain.AlertTypeExpiringLeases,
			Severity:    domain.AlertSeverityMedium,
			Title:       "Leases expiring soon",
			Description: fmt.Sprintf("%d leases expire within the next %d days", expiringCount, constants.LeaseExpiryWindowDays),
			Count:       expiringCount,
			Action:      "Review leases",
		})
	}

	// Правило 3: свободные юниты по всем объектам.
	activeByProperty := make(map[string]int)
	for _, tenant := range snapshot.Tenants {
		if tenant.IsActive() {
			activeByProperty[tenant.PropertyID.String()]++
		}
	}
	vacantTotal := 0
	for _, property := range snapshot.Properties {
		vacant := property.UnitsOrDefault() - activeByProperty[property.ID.String()]
		if vacant > 0 {
			vacantTotal += vacant
		}
	}
	if vacantTotal > 0 {
		alerts = append(alerts, domain.Alert{
			Type:        domain.AlertTypeVacantUnits,
			Severity:    domain.AlertSeverityLow,
			Title:       "Vacant units",
			Description: fmt.Sprintf("%d units are currently vacant", vacantTotal),
			Count:       vacantTotal,
			Action:      "Advertise units",
		})
	}

	return alerts
}
