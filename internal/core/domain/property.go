package domain

import (
	"time"

	"github.com/google/uuid"
)

// Статусы объекта недвижимости.
const (
	PropertyStatusActive   = "active"
	PropertyStatusArchived = "archived"
)

// Property - объект недвижимости (дом, многоквартирное здание и т.д.).
type Property struct {
	ID         uuid.UUID
	Name       string
	Address    string
	TotalUnits int // количество юнитов; 0 трактуется как "не указано" (= 1)
	Status     string
	CreatedAt  time.Time
}

// UnitsOrDefault возвращает количество юнитов, считая незаполненное значение за 1.
func (p Property) UnitsOrDefault() int {
	if p.TotalUnits <= 0 {
		return 1
	}
	return p.TotalUnits
}

// FindPropertiesFilters - фильтры для выборки объектов.
type FindPropertiesFilters struct {
	IDs    []string
	Status string
}

// PropertyDetailsView - объект вместе с его арендаторами для детальной страницы.
type PropertyDetailsView struct {
	Property Property
	Tenants  []Tenant
}
