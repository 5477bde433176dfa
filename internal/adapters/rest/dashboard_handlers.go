package rest

import (
	"encoding/json"
	"net/http"
	"strings"

	"property-management-service/internal/contextkeys"
	"property-management-service/internal/core/domain"
	"property-management-service/internal/core/port/usecases_port"
)

type DashboardHandler struct {
	getDashboardUC usecases_port.GetDashboardUseCase
}

func NewDashboardHandler(getDashboardUC usecases_port.GetDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{getDashboardUC: getDashboardUC}
}

// GetDashboard обрабатывает GET /api/v1/batch/dashboard.
// Секции задаются query-параметром include (CSV), фильтры недоступны.
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	query := domain.DashboardQuery{
		Include: parseIncludeCSV(r.URL.Query().Get("include")),
	}

	result := h.getDashboardUC.Execute(r.Context(), query)
	RespondWithJSON(w, http.StatusOK, toDashboardResponse(result))
}

// PostDashboard обрабатывает POST /api/v1/batch/dashboard.
func (h *DashboardHandler) PostDashboard(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	var req DashboardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("Failed to decode dashboard request body", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to process dashboard request")
		return
	}

	query := domain.DashboardQuery{Include: req.Include}

	if req.TimeRange != nil {
		query.TimeRangeStart = parseTime(req.TimeRange.Start)
		query.TimeRangeEnd = parseTime(req.TimeRange.End)
	}
	if req.Filters != nil {
		query.PropertyIDs = req.Filters.PropertyIDs
		query.TenantStatus = req.Filters.TenantStatus
		query.PaymentStatus = req.Filters.PaymentStatus
	}

	result := h.getDashboardUC.Execute(r.Context(), query)
	RespondWithJSON(w, http.StatusOK, toDashboardResponse(result))
}

func parseIncludeCSV(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	include := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			include = append(include, trimmed)
		}
	}
	return include
}
