package usecase

import (
	"context"

	"property-management-service/internal/contextkeys"
	"property-management-service/internal/core/domain"
	"property-management-service/internal/core/port"
)

type FindPaymentsUseCase struct {
	storage port.PaymentStoragePort
}

func NewFindPaymentsUseCase(storage port.PaymentStoragePort) *FindPaymentsUseCase {
	return &FindPaymentsUseCase{storage: storage}
}

func (uc *FindPaymentsUseCase) Execute(ctx context.Context, filters domain.FindPaymentsFilters, limit, offset int) ([]domain.Payment, int, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "FindPayments",
		"filters":  filters,
	})

	ucLogger.Info("Use case started", nil)

	payments, total, err := uc.storage.FindWithFilters(ctx, filters, limit, offset)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, 0, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"total_found": total})

	return payments, total, nil
}
