package postgres_adapter

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"property-management-service/internal/contextkeys"
	"property-management-service/internal/core/domain"
	"property-management-service/internal/core/port"
)

// PaymentRepository - реализация PaymentStoragePort для PostgreSQL.
type PaymentRepository struct {
	pool *pgxpool.Pool
}

func NewPaymentRepository(pool *pgxpool.Pool) (*PaymentRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &PaymentRepository{pool: pool}, nil
}

func (r *PaymentRepository) Save(ctx context.Context, payment domain.Payment) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":  "PaymentRepository",
		"method":     "Save",
		"payment_id": payment.ID.String(),
	})

	// Upsert, чтобы повторная доставка события из очереди была идемпотентной
	query := `INSERT INTO payments (id, tenant_id, property_id, amount, payment_date, due_date, status, method, type, late_fee, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			  ON CONFLICT (id) DO UPDATE SET
				  amount = EXCLUDED.amount,
				  payment_date = EXCLUDED.payment_date,
				  due_date = EXCLUDED.due_date,
				  status = EXCLUDED.status,
				  method = EXCLUDED.method,
				  type = EXCLUDED.type,
				  late_fee = EXCLUDED.late_fee`

	repoLogger.Debug("Executing query to save payment.", nil)
	_, err := r.pool.Exec(ctx, query,
		payment.ID, payment.TenantID, payment.PropertyID, payment.Amount, payment.PaymentDate,
		payment.DueDate, payment.Status, payment.Method, payment.Type, payment.LateFee, payment.CreatedAt)
	if err != nil {
		repoLogger.Error("Failed to save payment", err, nil)
		return fmt.Errorf("PaymentRepository: failed to save payment: %w", err)
	}

	return nil
}

func (r *PaymentRepository) FindWithFilters(ctx context.Context, filters domain.FindPaymentsFilters, limit, offset int) ([]domain.Payment, int, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PaymentRepository",
		"method":    "FindWithFilters",
	})

	qb := newQueryBuilder()
	qb.AddMembership("property_id::text", filters.PropertyIDs)
	qb.AddEqual("status", filters.Status)
	qb.AddDateRange("payment_date", filters.DateFrom, filters.DateTo)
	pagination := qb.Pagination(limit, offset)
	whereClause, args := qb.Build()

	query := fmt.Sprintf(`SELECT id, tenant_id, property_id, amount, payment_date, due_date, status, method, type, late_fee, created_at, COUNT(*) OVER() AS total
						  FROM payments %s ORDER BY payment_date DESC%s`, whereClause, pagination)

	repoLogger.Debug("Querying payments.", nil)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		repoLogger.Error("Failed to query payments", err, port.Fields{"query": query})
		return nil, 0, fmt.Errorf("PaymentRepository: failed to query payments: %w", err)
	}
	defer rows.Close()

	var (
		payments []domain.Payment
		total    int
	)
	for rows.Next() {
		var payment domain.Payment
		if err := rows.Scan(
			&payment.ID,
			&payment.TenantID,
			&payment.PropertyID,
			&payment.Amount,
			&payment.PaymentDate,
			&payment.DueDate,
			&payment.Status,
			&payment.Method,
			&payment.Type,
			&payment.LateFee,
			&payment.CreatedAt,
			&total,
		); err != nil {
			repoLogger.Error("Failed to scan payment row", err, nil)
			return nil, 0, fmt.Errorf("PaymentRepository: failed to scan payment: %w", err)
		}
		payments = append(payments, payment)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return payments, total, nil
}
