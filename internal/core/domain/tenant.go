package domain

import (
	"time"

	"github.com/google/uuid"
)

// Статусы арендатора.
const (
	TenantStatusActive   = "active"
	TenantStatusInactive = "inactive"
)

// Tenant - арендатор. Привязан ровно к одному объекту недвижимости.
type Tenant struct {
	ID          uuid.UUID
	PropertyID  uuid.UUID
	FullName    string
	Email       string
	Phone       string
	Status      string
	MonthlyRent float64
	LeaseStart  *time.Time
	LeaseEnd    *time.Time
	CreatedAt   time.Time
}

// IsActive сообщает, действует ли аренда.
func (t Tenant) IsActive() bool {
	return t.Status == TenantStatusActive
}

// FindTenantsFilters - фильтры для выборки арендаторов.
type FindTenantsFilters struct {
	PropertyIDs []string
	Status      string
}
