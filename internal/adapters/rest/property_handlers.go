package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"property-management-service/internal/contextkeys"
	"property-management-service/internal/core/domain"
	"property-management-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type PropertyHandler struct {
	createPropertyUC     usecases_port.CreatePropertyUseCase
	findPropertiesUC     usecases_port.FindPropertiesUseCase
	getPropertyDetailsUC usecases_port.GetPropertyDetailsUseCase
}

func NewPropertyHandler(createPropertyUC usecases_port.CreatePropertyUseCase,
	findPropertiesUC usecases_port.FindPropertiesUseCase,
	getPropertyDetailsUC usecases_port.GetPropertyDetailsUseCase) *PropertyHandler {
	return &PropertyHandler{
		createPropertyUC:     createPropertyUC,
		findPropertiesUC:     findPropertiesUC,
		getPropertyDetailsUC: getPropertyDetailsUC,
	}
}

// CreateProperty обрабатывает POST /api/v1/properties
func (h *PropertyHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	var req CreatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" {
		WriteJSONError(w, http.StatusBadRequest, "Field 'name' is required")
		return
	}

	property := domain.Property{
		Name:       req.Name,
		Address:    req.Address,
		TotalUnits: req.TotalUnits,
		Status:     req.Status,
	}

	created, err := h.createPropertyUC.Execute(r.Context(), property)
	if err != nil {
		logger.Error("Failed to create property", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to create property")
		return
	}

	RespondWithJSON(w, http.StatusCreated, toPropertyResponse(*created))
}

// FindProperties обрабатывает GET /api/v1/properties
func (h *PropertyHandler) FindProperties(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	query := r.URL.Query()
	page, perPage := GetPagination(query)

	filters := domain.FindPropertiesFilters{
		IDs:    query["id"],
		Status: query.Get("status"),
	}

	properties, total, err := h.findPropertiesUC.Execute(r.Context(), filters, perPage, (page-1)*perPage)
	if err != nil {
		logger.Error("Failed to find properties", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to find properties")
		return
	}

	RespondWithJSON(w, http.StatusOK, PaginatedResponse[PropertyResponse]{
		Data:    toPropertyResponses(properties),
		Total:   total,
		Page:    page,
		PerPage: perPage,
	})
}

// GetPropertyDetails обрабатывает GET /api/v1/properties/{propertyID}
func (h *PropertyHandler) GetPropertyDetails(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	propertyID, err := uuid.Parse(chi.URLParam(r, "propertyID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid property ID format")
		return
	}

	details, err := h.getPropertyDetailsUC.Execute(r.Context(), propertyID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Property not found")
			return
		}
		logger.Error("Failed to get property details", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to get property details")
		return
	}

	RespondWithJSON(w, http.StatusOK, PropertyDetailsResponse{
		Property: toPropertyResponse(details.Property),
		Tenants:  toTenantResponses(details.Tenants),
	})
}
