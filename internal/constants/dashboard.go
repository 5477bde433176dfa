package constants

// Пороговые значения для дашборда. Пока захардкожены,
// настройка per-tenant — отдельное продуктовое решение.
const (
	// DefaultDashboardRangeDays - окно выборки платежей по умолчанию.
	DefaultDashboardRangeDays = 90

	// LeaseExpiryWindowDays - за сколько дней предупреждаем об окончании аренды.
	LeaseExpiryWindowDays = 30
)
