package domain

import "time"

// Секции дашборда, которые клиент может запросить через `include`.
const (
	SectionProperties = "properties"
	SectionTenants    = "tenants"
	SectionPayments   = "payments"
	SectionStats      = "stats"
	SectionAlerts     = "alerts"
)

// DashboardQuery - разобранный запрос к batch-эндпоинту дашборда.
// Пустой Include означает "все секции".
type DashboardQuery struct {
	Include        []string
	TimeRangeStart *time.Time
	TimeRangeEnd   *time.Time
	PropertyIDs    []string
	TenantStatus   string
	PaymentStatus  string
}

// IncludeSet - какие секции запрошены явно (или по умолчанию).
// Производные секции (`stats`, `alerts`) транзитивно требуют данных:
// stats -> properties+tenants+payments, alerts -> tenants+payments.
type IncludeSet struct {
	Properties bool
	Tenants    bool
	Payments   bool
	Stats      bool
	Alerts     bool
}

// NeedsProperties сообщает, нужна ли выборка объектов.
func (s IncludeSet) NeedsProperties() bool { return s.Properties || s.Stats }

// NeedsTenants сообщает, нужна ли выборка арендаторов.
func (s IncludeSet) NeedsTenants() bool { return s.Tenants || s.Stats || s.Alerts }

// NeedsPayments сообщает, нужна ли выборка платежей.
func (s IncludeSet) NeedsPayments() bool { return s.Payments || s.Stats || s.Alerts }

// DashboardSnapshot - слепок данных, собранный для одного запроса.
// Коллекции независимы и не обязаны быть консистентны между собой
// на один момент времени; агрегатор их не мутирует.
type DashboardSnapshot struct {
	Properties []Property
	Tenants    []Tenant
	Payments   []Payment
}

// FetchError - ошибка выборки одной сущности. Не прерывает запрос,
// а попадает в поле errors ответа.
type FetchError struct {
	Entity  string
	Message string
}

// PropertyStats - счетчики по объектам.
type PropertyStats struct {
	TotalProperties int
	TotalUnits      int
}

// TenantStats - счетчики по арендаторам и заполняемости.
type TenantStats struct {
	ActiveTenants int
	OccupiedUnits int
	VacantUnits   int
	OccupancyRate float64 // проценты, [0, 100]
}

// RevenueStats - денежные агрегаты.
type RevenueStats struct {
	MonthlyRentPotential float64
	MonthlyRentActual    float64
	ThisMonthRevenue     float64
	TotalRevenue         float64
	OverdueAmount        float64
}

// PaymentStats - счетчики платежей по статусам.
type PaymentStats struct {
	Paid      int
	Overdue   int
	Pending   int
	ThisMonth int
}

// DashboardStats - сводные показатели дашборда.
type DashboardStats struct {
	Properties PropertyStats
	Tenants    TenantStats
	Revenue    RevenueStats
	Payments   PaymentStats
}

// Уровни важности оповещений.
const (
	AlertSeverityHigh   = "high"
	AlertSeverityMedium = "medium"
	AlertSeverityLow    = "low"
)

// Типы оповещений. Порядок генерации фиксирован:
// overdue_payments, expiring_leases, vacant_units.
const (
	AlertTypeOverduePayments = "overdue_payments"
	AlertTypeExpiringLeases  = "expiring_leases"
	AlertTypeVacantUnits     = "vacant_units"
)

// Alert - оповещение для дашборда.
type Alert struct {
	Type        string
	Severity    string
	Title       string
	Description string
	Count       int
	Action      string // подпись кнопки в UI, для бэкенда непрозрачна
}

// DashboardResult - результат работы координатора.
// Координатор никогда не возвращает ошибку: частичные сбои
// складываются в Errors, а соответствующие коллекции остаются пустыми.
type DashboardResult struct {
	Include     IncludeSet
	Properties  []Property
	Tenants     []Tenant
	Payments    []Payment
	Stats       *DashboardStats
	Alerts      []Alert
	Errors      []FetchError
	GeneratedAt time.Time
}
