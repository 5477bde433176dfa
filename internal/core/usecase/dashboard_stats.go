package usecase

import (
	"math"
	"time"

	"property-management-service/internal/core/domain"
)

// ComputeDashboardStats вычисляет сводные показатели по слепку данных.
// Чистая функция: никакого I/O, никаких побочных эффектов, пустые
// коллекции дают нулевые показатели. "Текущий месяц" определяется
// по локальному времени сервера через аргумент now.
func ComputeDashboardStats(snapshot domain.DashboardSnapshot, now time.Time) domain.DashboardStats {
	var stats domain.DashboardStats

	stats.Properties.TotalProperties = len(snapshot.Properties)
	for _, property := range snapshot.Properties {
		stats.Properties.TotalUnits += property.UnitsOrDefault()
	}

	for _, tenant := range snapshot.Tenants {
		stats.Revenue.MonthlyRentPotential += tenant.MonthlyRent
		if tenant.IsActive() {
			stats.Tenants.ActiveTenants++
			stats.Revenue.MonthlyRentActual += tenant.MonthlyRent
		}
	}

	// Занятым считаем один юнит на активного арендатора.
	stats.Tenants.OccupiedUnits = stats.Tenants.ActiveTenants
	stats.Tenants.VacantUnits = stats.Properties.TotalUnits - stats.Tenants.OccupiedUnits
	if stats.Tenants.VacantUnits < 0 {
		stats.Tenants.VacantUnits = 0
	}
	if stats.Properties.TotalUnits > 0 {
		rate := float64(stats.Tenants.OccupiedUnits) / float64(stats.Properties.TotalUnits) * 100
		// Арендаторов может оказаться больше, чем юнитов, но
		// заполняемость выше 100% не показываем.
		if rate > 100 {
			rate = 100
		}
		stats.Tenants.OccupancyRate = math.Round(rate*100) / 100
	}

	for _, payment := range snapshot.Payments {
		inCurrentMonth := sameMonth(payment.PaymentDate, now)
		if inCurrentMonth {
			stats.Payments.ThisMonth++
		}

		switch payment.Status {
		case domain.PaymentStatusPaid:
			stats.Payments.Paid++
			stats.Revenue.TotalRevenue += payment.Amount
			if inCurrentMonth {
				stats.Revenue.ThisMonthRevenue += payment.Amount
			}
		case domain.PaymentStatusOverdue:
			stats.Payments.Overdue++
			stats.Revenue.OverdueAmount += payment.Amount
		case domain.PaymentStatusPending:
			stats.Payments.Pending++
		}
	}

	return stats
}

// sameMonth проверяет, попадают ли две даты в один календарный месяц.
func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
