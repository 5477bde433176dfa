package postgres_adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"property-management-service/internal/contextkeys"
	"property-management-service/internal/core/domain"
	"property-management-service/internal/core/port"
)

// PropertyRepository - реализация PropertyStoragePort для PostgreSQL.
type PropertyRepository struct {
	pool *pgxpool.Pool
}

func NewPropertyRepository(pool *pgxpool.Pool) (*PropertyRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &PropertyRepository{pool: pool}, nil
}

func (r *PropertyRepository) Save(ctx context.Context, property domain.Property) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":   "PropertyRepository",
		"method":      "Save",
		"property_id": property.ID.String(),
	})

	query := `INSERT INTO properties (id, name, address, total_units, status, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  ON CONFLICT (id) DO UPDATE SET
				  name = EXCLUDED.name,
				  address = EXCLUDED.address,
				  total_units = EXCLUDED.total_units,
				  status = EXCLUDED.status`

	repoLogger.Debug("Executing query to save property.", nil)
	_, err := r.pool.Exec(ctx, query,
		property.ID, property.Name, property.Address, property.TotalUnits, property.Status, property.CreatedAt)
	if err != nil {
		repoLogger.Error("Failed to save property", err, nil)
		return fmt.Errorf("PropertyRepository: failed to save property: %w", err)
	}

	return nil
}

func (r *PropertyRepository) FindByID(ctx context.Context, propertyID uuid.UUID) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":   "PropertyRepository",
		"method":      "FindByID",
		"property_id": propertyID.String(),
	})

	query := `SELECT id, name, address, total_units, status, created_at
			  FROM properties WHERE id = $1`

	var property domain.Property
	err := r.pool.QueryRow(ctx, query, propertyID).Scan(
		&property.ID,
		&property.Name,
		&property.Address,
		&property.TotalUnits,
		&property.Status,
		&property.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			repoLogger.Warn("Property not found.", nil)
			return nil, domain.ErrNotFound
		}
		repoLogger.Error("Failed to find property", err, nil)
		return nil, fmt.Errorf("PropertyRepository: failed to find property: %w", err)
	}

	return &property, nil
}

func (r *PropertyRepository) FindWithFilters(ctx context.Context, filters domain.FindPropertiesFilters, limit, offset int) ([]domain.Property, int, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PropertyRepository",
		"method":    "FindWithFilters",
	})

	qb := newQueryBuilder()
	qb.AddMembership("id::text", filters.IDs)
	qb.AddEqual("status", filters.Status)
	pagination := qb.Pagination(limit, offset)
	whereClause, args := qb.Build()

	// COUNT(*) OVER() отдает общее число строк под фильтром в каждой строке страницы
	query := fmt.Sprintf(`SELECT id, name, address, total_units, status, created_at, COUNT(*) OVER() AS total
						  FROM properties %s ORDER BY created_at DESC%s`, whereClause, pagination)

	repoLogger.Debug("Querying properties.", nil)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		repoLogger.Error("Failed to query properties", err, port.Fields{"query": query})
		return nil, 0, fmt.Errorf("PropertyRepository: failed to query properties: %w", err)
	}
	defer rows.Close()

	var (
		properties []domain.Property
		total      int
	)
	for rows.Next() {
		var property domain.Property
		if err := rows.Scan(
			&property.ID,
			&property.Name,
			&property.Address,
			&property.TotalUnits,
			&property.Status,
			&property.CreatedAt,
			&total,
		); err != nil {
			repoLogger.Error("Failed to scan property row", err, nil)
			return nil, 0, fmt.Errorf("PropertyRepository: failed to scan property: %w", err)
		}
		properties = append(properties, property)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return properties, total, nil
}
