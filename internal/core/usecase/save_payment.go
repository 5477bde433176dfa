package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"property-management-service/internal/contextkeys"
	"property-management-service/internal/core/domain"
	"property-management-service/internal/core/port"
)

type SavePaymentUseCase struct {
	storage port.PaymentStoragePort
}

func NewSavePaymentUseCase(storage port.PaymentStoragePort) *SavePaymentUseCase {
	return &SavePaymentUseCase{storage: storage}
}

func (uc *SavePaymentUseCase) Execute(ctx context.Context, payment domain.Payment) (*domain.Payment, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "SavePayment",
		"tenant_id": payment.TenantID.String(),
		"amount":    payment.Amount,
	})

	ucLogger.Info("Use case started", nil)

	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	if payment.Status == "" {
		payment.Status = domain.PaymentStatusPending
	}
	if payment.PaymentDate.IsZero() {
		payment.PaymentDate = time.Now()
	}
	if payment.CreatedAt.IsZero() {
		payment.CreatedAt = time.Now()
	}

	if err := uc.storage.Save(ctx, payment); err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"payment_id": payment.ID.String()})

	return &payment, nil
}
