package rest

// --- Запросы ---

// TimeRangeRequest - границы выборки платежей, ISO-8601.
type TimeRangeRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DashboardFiltersRequest - блок filters из тела запроса.
type DashboardFiltersRequest struct {
	PropertyIDs   []string `json:"property_ids"`
	TenantStatus  string   `json:"tenant_status"`
	PaymentStatus string   `json:"payment_status"`
}

// DashboardRequest - тело POST /batch/dashboard.
type DashboardRequest struct {
	Include   []string                 `json:"include"`
	TimeRange *TimeRangeRequest        `json:"timeRange"`
	Filters   *DashboardFiltersRequest `json:"filters"`
}

type CreatePropertyRequest struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	TotalUnits int    `json:"total_units"`
	Status     string `json:"status"`
}

type CreateTenantRequest struct {
	PropertyID  string  `json:"property_id"`
	FullName    string  `json:"full_name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Status      string  `json:"status"`
	MonthlyRent float64 `json:"monthly_rent"`
	LeaseStart  string  `json:"lease_start_date"`
	LeaseEnd    string  `json:"lease_end_date"`
}

type CreatePaymentRequest struct {
	TenantID    string  `json:"tenant_id"`
	PropertyID  string  `json:"property_id"`
	Amount      float64 `json:"amount"`
	PaymentDate string  `json:"payment_date"`
	DueDate     string  `json:"due_date"`
	Status      string  `json:"status"`
	Method      string  `json:"method"`
	Type        string  `json:"type"`
	LateFee     float64 `json:"late_fee"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// --- Ответы ---

type PropertyResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	TotalUnits int    `json:"total_units"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`
}

type TenantResponse struct {
	ID          string  `json:"id"`
	PropertyID  string  `json:"property_id"`
	FullName    string  `json:"full_name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Status      string  `json:"status"`
	MonthlyRent float64 `json:"monthly_rent"`
	LeaseStart  *string `json:"lease_start_date"`
	LeaseEnd    *string `json:"lease_end_date"`
	CreatedAt   string  `json:"created_at"`
}

type PaymentResponse struct {
	ID          string  `json:"id"`
	TenantID    string  `json:"tenant_id"`
	PropertyID  string  `json:"property_id"`
	Amount      float64 `json:"amount"`
	PaymentDate string  `json:"payment_date"`
	DueDate     *string `json:"due_date"`
	Status      string  `json:"status"`
	Method      string  `json:"method"`
	Type        string  `json:"type"`
	LateFee     float64 `json:"late_fee"`
	CreatedAt   string  `json:"created_at"`
}

// PaginatedResponse - стандартная обертка для списков.
type PaginatedResponse[T any] struct {
	Data    []T `json:"data"`
	Total   int `json:"total"`
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
}

type PropertyDetailsResponse struct {
	Property PropertyResponse `json:"property"`
	Tenants  []TenantResponse `json:"tenants"`
}

type PropertyStatsResponse struct {
	TotalProperties int `json:"totalProperties"`
	TotalUnits      int `json:"totalUnits"`
}

type TenantStatsResponse struct {
	ActiveTenants int     `json:"activeTenants"`
	OccupiedUnits int     `json:"occupiedUnits"`
	VacantUnits   int     `json:"vacantUnits"`
	OccupancyRate float64 `json:"occupancyRate"`
}

type RevenueStatsResponse struct {
	MonthlyRentPotential float64 `json:"monthlyRentPotential"`
	MonthlyRentActual    float64 `json:"monthlyRentActual"`
	ThisMonthRevenue     float64 `json:"thisMonthRevenue"`
	TotalRevenue         float64 `json:"totalRevenue"`
	OverdueAmount        float64 `json:"overdueAmount"`
}

type PaymentStatsResponse struct {
	Paid      int `json:"paid"`
	Overdue   int `json:"overdue"`
	Pending   int `json:"pending"`
	ThisMonth int `json:"thisMonth"`
}

type StatsResponse struct {
	Properties PropertyStatsResponse `json:"properties"`
	Tenants    TenantStatsResponse   `json:"tenants"`
	Revenue    RevenueStatsResponse  `json:"revenue"`
	Payments   PaymentStatsResponse  `json:"payments"`
}

type AlertResponse struct {
	Type        string `json:"type"`
	Severity    string `json:"severity"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Count       int    `json:"count"`
	Action      string `json:"action"`
}

type FetchErrorResponse struct {
	Entity  string `json:"entity"`
	Message string `json:"message"`
}

// DashboardResponse - единый payload batch-эндпоинта. Секции -
// указатели: секция присутствует в JSON только если была запрошена
// (пустая, но запрошенная коллекция сериализуется как []).
type DashboardResponse struct {
	Properties *[]PropertyResponse  `json:"properties,omitempty"`
	Tenants    *[]TenantResponse    `json:"tenants,omitempty"`
	Payments   *[]PaymentResponse   `json:"payments,omitempty"`
	Stats      *StatsResponse       `json:"stats,omitempty"`
	Alerts     *[]AlertResponse     `json:"alerts,omitempty"`
	Errors     []FetchErrorResponse `json:"errors,omitempty"`
	Timestamp  string               `json:"timestamp"`
}

type RegisterResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}
