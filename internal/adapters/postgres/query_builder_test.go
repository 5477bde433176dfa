package postgres_adapter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQueryBuilder_Empty(t *testing.T) {
	qb := newQueryBuilder()

	whereClause, args := qb.Build()

	assert.Equal(t, "", whereClause)
	assert.Empty(t, args)
}

func TestQueryBuilder_SkipsEmptyValues(t *testing.T) {
	qb := newQueryBuilder()
	qb.AddEqual("status", "")
	qb.AddMembership("id::text", nil)
	qb.AddDateRange("payment_date", nil, nil)

	whereClause, args := qb.Build()

	assert.Equal(t, "", whereClause)
	assert.Empty(t, args)
}

func TestQueryBuilder_NumbersPlaceholdersSequentially(t *testing.T) {
	from := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)

	qb := newQueryBuilder()
	qb.AddMembership("property_id::text", []string{"a", "b"})
	qb.AddEqual("status", "paid")
	qb.AddDateRange("payment_date", &from, &to)

	whereClause, args := qb.Build()

	assert.Equal(t,
		"WHERE property_id::text = ANY($1) AND status = $2 AND payment_date >= $3 AND payment_date <= $4",
		whereClause)
	assert.Len(t, args, 4)
	assert.Equal(t, []string{"a", "b"}, args[0])
	assert.Equal(t, "paid", args[1])
}

func TestQueryBuilder_Pagination(t *testing.T) {
	qb := newQueryBuilder()
	qb.AddEqual("status", "active")

	suffix := qb.Pagination(20, 40)
	_, args := qb.Build()

	assert.Equal(t, " LIMIT $2 OFFSET $3", suffix)
	assert.Equal(t, []interface{}{"active", 20, 40}, args)
}

func TestQueryBuilder_PaginationDisabled(t *testing.T) {
	qb := newQueryBuilder()

	// limit <= 0 означает выборку без пагинации.
	assert.Equal(t, "", qb.Pagination(0, 10))
	_, args := qb.Build()
	assert.Empty(t, args)
}
