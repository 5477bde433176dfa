package postgres_adapter

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"property-management-service/internal/contextkeys"
	"property-management-service/internal/core/domain"
	"property-management-service/internal/core/port"
)

// TenantRepository - реализация TenantStoragePort для PostgreSQL.
type TenantRepository struct {
	pool *pgxpool.Pool
}

func NewTenantRepository(pool *pgxpool.Pool) (*TenantRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &TenantRepository{pool: pool}, nil
}

func (r *TenantRepository) Save(ctx context.Context, tenant domain.Tenant) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "TenantRepository",
		"method":    "Save",
		"tenant_id": tenant.ID.String(),
	})

	query := `INSERT INTO tenants (id, property_id, full_name, email, phone, status, monthly_rent, lease_start, lease_end, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			  ON CONFLICT (id) DO UPDATE SET
				  full_name = EXCLUDED.full_name,
				  email = EXCLUDED.email,
				  phone = EXCLUDED.phone,
				  status = EXCLUDED.status,
				  monthly_rent = EXCLUDED.monthly_rent,
				  lease_start = EXCLUDED.lease_start,
				  lease_end = EXCLUDED.lease_end`

	repoLogger.Debug("Executing query to save tenant.", nil)
	_, err := r.pool.Exec(ctx, query,
		tenant.ID, tenant.PropertyID, tenant.FullName, tenant.Email, tenant.Phone,
		tenant.Status, tenant.MonthlyRent, tenant.LeaseStart, tenant.LeaseEnd, tenant.CreatedAt)
	if err != nil {
		repoLogger.Error("Failed to save tenant", err, nil)
		return fmt.Errorf("TenantRepository: failed to save tenant: %w", err)
	}

	return nil
}

func (r *TenantRepository) FindWithFilters(ctx context.Context, filters domain.FindTenantsFilters, limit, offset int) ([]domain.Tenant, int, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "TenantRepository",
		"method":    "FindWithFilters",
	})

	qb := newQueryBuilder()
	qb.AddMembership("property_id::text", filters.PropertyIDs)
	qb.AddEqual("status", filters.Status)
	pagination := qb.Pagination(limit, offset)
	whereClause, args := qb.Build()

	query := fmt.Sprintf(`SELECT id, property_id, full_name, email, phone, status, monthly_rent, lease_start, lease_end, created_at, COUNT(*) OVER() AS total
						  FROM tenants %s ORDER BY created_at DESC%s`, whereClause, pagination)

	repoLogger.Debug("Querying tenants.", nil)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		repoLogger.Error("Failed to query tenants", err, port.Fields{"query": query})
		return nil, 0, fmt.Errorf("TenantRepository: failed to query tenants: %w", err)
	}
	defer rows.Close()

	var (
		tenants []domain.Tenant
		total   int
	)
	for rows.Next() {
		var tenant domain.Tenant
		if err := rows.Scan(
			&tenant.ID,
			&tenant.PropertyID,
			&tenant.FullName,
			&tenant.Email,
			&tenant.Phone,
			&tenant.Status,
			&tenant.MonthlyRent,
			&tenant.LeaseStart,
			&tenant.LeaseEnd,
			&tenant.CreatedAt,
			&total,
		); err != nil {
			repoLogger.Error("Failed to scan tenant row", err, nil)
			return nil, 0, fmt.Errorf("TenantRepository: failed to scan tenant: %w", err)
		}
		tenants = append(tenants, tenant)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return tenants, total, nil
}
