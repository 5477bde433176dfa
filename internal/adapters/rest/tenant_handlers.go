package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"property-management-service/internal/contextkeys"
	"property-management-service/internal/core/domain"
	"property-management-service/internal/core/port/usecases_port"

	"github.com/google/uuid"
)

type TenantHandler struct {
	createTenantUC usecases_port.CreateTenantUseCase
	findTenantsUC  usecases_port.FindTenantsUseCase
}

func NewTenantHandler(createTenantUC usecases_port.CreateTenantUseCase,
	findTenantsUC usecases_port.FindTenantsUseCase) *TenantHandler {
	return &TenantHandler{
		createTenantUC: createTenantUC,
		findTenantsUC:  findTenantsUC,
	}
}

// CreateTenant обрабатывает POST /api/v1/tenants
func (h *TenantHandler) CreateTenant(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	var req CreateTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	propertyID, err := uuid.Parse(req.PropertyID)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid property_id format")
		return
	}
	if req.FullName == "" {
		WriteJSONError(w, http.StatusBadRequest, "Field 'full_name' is required")
		return
	}

	tenant := domain.Tenant{
		PropertyID:  propertyID,
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       req.Phone,
		Status:      req.Status,
		MonthlyRent: req.MonthlyRent,
		LeaseStart:  parseTime(req.LeaseStart),
		LeaseEnd:    parseTime(req.LeaseEnd),
	}

	created, err := h.createTenantUC.Execute(r.Context(), tenant)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			WriteJSONError(w, http.StatusBadRequest, "Property does not exist")
			return
		}
		logger.Error("Failed to create tenant", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to create tenant")
		return
	}

	RespondWithJSON(w, http.StatusCreated, toTenantResponse(*created))
}

// FindTenants обрабатывает GET /api/v1/tenants
func (h *TenantHandler) FindTenants(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	query := r.URL.Query()
	page, perPage := GetPagination(query)

	filters := domain.FindTenantsFilters{
		PropertyIDs: query["propertyId"],
		Status:      query.Get("status"),
	}

	tenants, total, err := h.findTenantsUC.Execute(r.Context(), filters, perPage, (page-1)*perPage)
	if err != nil {
		logger.Error("Failed to find tenants", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to find tenants")
		return
	}

	RespondWithJSON(w, http.StatusOK, PaginatedResponse[TenantResponse]{
		Data:    toTenantResponses(tenants),
		Total:   total,
		Page:    page,
		PerPage: perPage,
	})
}
