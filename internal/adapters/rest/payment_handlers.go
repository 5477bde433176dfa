package rest

import (
	"encoding/json"
	"net/http"

	"property-management-service/internal/contextkeys"
	"property-management-service/internal/core/domain"
	"property-management-service/internal/core/port/usecases_port"

	"github.com/google/uuid"
)

type PaymentHandler struct {
	savePaymentUC  usecases_port.SavePaymentUseCase
	findPaymentsUC usecases_port.FindPaymentsUseCase
}

func NewPaymentHandler(savePaymentUC usecases_port.SavePaymentUseCase,
	findPaymentsUC usecases_port.FindPaymentsUseCase) *PaymentHandler {
	return &PaymentHandler{
		savePaymentUC:  savePaymentUC,
		findPaymentsUC: findPaymentsUC,
	}
}

// CreatePayment обрабатывает POST /api/v1/payments
func (h *PaymentHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	var req CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	tenantID, err := uuid.Parse(req.TenantID)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid tenant_id format")
		return
	}
	propertyID, err := uuid.Parse(req.PropertyID)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid property_id format")
		return
	}
	if req.Amount <= 0 {
		WriteJSONError(w, http.StatusBadRequest, "Field 'amount' must be positive")
		return
	}

	payment := domain.Payment{
		TenantID:   tenantID,
		PropertyID: propertyID,
		Amount:     req.Amount,
		DueDate:    parseTime(req.DueDate),
		Status:     req.Status,
		Method:     req.Method,
		Type:       req.Type,
		LateFee:    req.LateFee,
	}
	if paymentDate := parseTime(req.PaymentDate); paymentDate != nil {
		payment.PaymentDate = *paymentDate
	}

	created, err := h.savePaymentUC.Execute(r.Context(), payment)
	if err != nil {
		logger.Error("Failed to save payment", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to save payment")
		return
	}

	RespondWithJSON(w, http.StatusCreated, toPaymentResponse(*created))
}

// FindPayments обрабатывает GET /api/v1/payments
func (h *PaymentHandler) FindPayments(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	query := r.URL.Query()
	page, perPage := GetPagination(query)

	filters := domain.FindPaymentsFilters{
		PropertyIDs: query["propertyId"],
		Status:      query.Get("status"),
		DateFrom:    parseTime(query.Get("dateFrom")),
		DateTo:      parseTime(query.Get("dateTo")),
	}

	payments, total, err := h.findPaymentsUC.Execute(r.Context(), filters, perPage, (page-1)*perPage)
	if err != nil {
		logger.Error("Failed to find payments", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to find payments")
		return
	}

	RespondWithJSON(w, http.StatusOK, PaginatedResponse[PaymentResponse]{
		Data:    toPaymentResponses(payments),
		Total:   total,
		Page:    page,
		PerPage: perPage,
	})
}
