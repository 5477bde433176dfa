package domain

import (
	"time"

	"github.com/google/uuid"
)

// Статусы платежа.
const (
	PaymentStatusPaid    = "paid"
	PaymentStatusOverdue = "overdue"
	PaymentStatusPending = "pending"
)

// Payment - платёж арендатора по конкретному объекту.
type Payment struct {
	ID          uuid.UUID
	TenantID    uuid.UUID
	PropertyID  uuid.UUID
	Amount      float64
	PaymentDate time.Time
	DueDate     *time.Time
	Status      string
	Method      string
	Type        string
	LateFee     float64
	CreatedAt   time.Time
}

// FindPaymentsFilters - фильтры для выборки платежей.
// Диапазон дат применяется к payment_date.
type FindPaymentsFilters struct {
	PropertyIDs []string
	Status      string
	DateFrom    *time.Time
	DateTo      *time.Time
}

// PaymentImportReport - отчёт о результате обработки одного
// платёжного события из очереди.
type PaymentImportReport struct {
	PaymentID string    `json:"payment_id"`
	Status    string    `json:"status"` // saved | rejected | failed
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
