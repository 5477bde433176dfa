package usecases_port

import (
	"context"

	"property-management-service/internal/core/domain"
)

type SavePaymentUseCase interface {
	Execute(ctx context.Context, payment domain.Payment) (*domain.Payment, error)
}
