package rest

import (
	"time"

	"property-management-service/internal/core/domain"
)

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func toPropertyResponse(p domain.Property) PropertyResponse {
	return PropertyResponse{
		ID:         p.ID.String(),
		Name:       p.Name,
		Address:    p.Address,
		TotalUnits: p.TotalUnits,
		Status:     p.Status,
		CreatedAt:  p.CreatedAt.Format(time.RFC3339),
	}
}

func toPropertyResponses(props []domain.Property) []PropertyResponse {
	out := make([]PropertyResponse, 0, len(props))
	for _, p := range props {
		out = append(out, toPropertyResponse(p))
	}
	return out
}

func toTenantResponse(t domain.Tenant) TenantResponse {
	return TenantResponse{
		ID:          t.ID.String(),
		PropertyID:  t.PropertyID.String(),
		FullName:    t.FullName,
		Email:       t.Email,
		Phone:       t.Phone,
		Status:      t.Status,
		MonthlyRent: t.MonthlyRent,
		LeaseStart:  formatTimePtr(t.LeaseStart),
		LeaseEnd:    formatTimePtr(t.LeaseEnd),
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
	}
}

func toTenantResponses(tenants []domain.Tenant) []TenantResponse {
	out := make([]TenantResponse, 0, len(tenants))
	for _, t := range tenants {
		out = append(out, toTenantResponse(t))
	}
	return out
}

func toPaymentResponse(p domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:          p.ID.String(),
		TenantID:    p.TenantID.String(),
		PropertyID:  p.PropertyID.String(),
		Amount:      p.Amount,
		PaymentDate: p.PaymentDate.Format(time.RFC3339),
		DueDate:     formatTimePtr(p.DueDate),
		Status:      p.Status,
		Method:      p.Method,
		Type:        p.Type,
		LateFee:     p.LateFee,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
	}
}

func toPaymentResponses(payments []domain.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, toPaymentResponse(p))
	}
	return out
}

func toStatsResponse(s *domain.DashboardStats) *StatsResponse {
	if s == nil {
		return nil
	}
	return &StatsResponse{
		Properties: PropertyStatsResponse{
			TotalProperties: s.Properties.TotalProperties,
			TotalUnits:      s.Properties.TotalUnits,
		},
		Tenants: TenantStatsResponse{
			ActiveTenants: s.Tenants.ActiveTenants,
			OccupiedUnits: s.Tenants.OccupiedUnits,
			VacantUnits:   s.Tenants.VacantUnits,
			OccupancyRate: s.Tenants.OccupancyRate,
		},
		Revenue: RevenueStatsResponse{
			MonthlyRentPotential: s.Revenue.MonthlyRentPotential,
			MonthlyRentActual:    s.Revenue.MonthlyRentActual,
			ThisMonthRevenue:     s.Revenue.ThisMonthRevenue,
			TotalRevenue:         s.Revenue.TotalRevenue,
			OverdueAmount:        s.Revenue.OverdueAmount,
		},
		Payments: PaymentStatsResponse{
			Paid:      s.Payments.Paid,
			Overdue:   s.Payments.Overdue,
			Pending:   s.Payments.Pending,
			ThisMonth: s.Payments.ThisMonth,
		},
	}
}

func toAlertResponses(alerts []domain.Alert) []AlertResponse {
	out := make([]AlertResponse, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, AlertResponse{
			Type:        a.Type,
			Severity:    a.Severity,
			Title:       a.Title,
			Description: a.Description,
			Count:       a.Count,
			Action:      a.Action,
		})
	}
	return out
}

func toDashboardResponse(result *domain.DashboardResult) DashboardResponse {
	resp := DashboardResponse{
		Timestamp: result.GeneratedAt.Format(time.RFC3339),
	}

	if result.Include.Properties {
		props := toPropertyResponses(result.Properties)
		resp.Properties = &props
	}
	if result.Include.Tenants {
		tenants := toTenantResponses(result.Tenants)
		resp.Tenants = &tenants
	}
	if result.Include.Payments {
		payments := toPaymentResponses(result.Payments)
		resp.Payments = &payments
	}
	if result.Include.Stats {
		resp.Stats = toStatsResponse(result.Stats)
	}
	if result.Include.Alerts {
		alerts := toAlertResponses(result.Alerts)
		resp.Alerts = &alerts
	}

	for _, e := range result.Errors {
		resp.Errors = append(resp.Errors, FetchErrorResponse{Entity: e.Entity, Message: e.Message})
	}

	return resp
}
