package postgres_adapter

import (
	"fmt"
	"strings"
	"time"
)

// queryBuilder собирает WHERE и параметры запроса c нумерованными
// плейсхолдерами pgx ($1, $2, ...).
type queryBuilder struct {
	conditions []string
	args       []interface{}
	argId      int
}

func newQueryBuilder() *queryBuilder {
	return &queryBuilder{
		argId: 1,
		args:  make([]interface{}, 0),
	}
}

func (qb *queryBuilder) addCondition(condition string, fieldName string, arg interface{}) {
	qb.conditions = append(qb.conditions, fmt.Sprintf(condition, fieldName, qb.argId))
	qb.args = append(qb.args, arg)
	qb.argId++
}

// AddEqual добавляет точное совпадение; пустое значение пропускается.
func (qb *queryBuilder) AddEqual(fieldName string, value string) {
	if value == "" {
		return
	}
	qb.addCondition("%s = $%d", fieldName, value)
}

// AddMembership добавляет фильтр по вхождению в список.
func (qb *queryBuilder) AddMembership(fieldName string, values []string) {
	if len(values) == 0 {
		return
	}
	qb.addCondition("%s = ANY($%d)", fieldName, values)
}

// AddDateRange добавляет фильтр по диапазону дат. Если from > to,
// условия все равно добавляются - запрос просто вернет пустой результат.
func (qb *queryBuilder) AddDateRange(fieldName string, from, to *time.Time) {
	if from != nil {
		qb.addCondition("%s >= $%d", fieldName, *from)
	}
	if to != nil {
		qb.addCondition("%s <= $%d", fieldName, *to)
	}
}

// Pagination добавляет LIMIT/OFFSET; limit <= 0 означает "без пагинации".
func (qb *queryBuilder) Pagination(limit, offset int) string {
	var sb strings.Builder
	if limit > 0 {
		sb.WriteString(fmt.Sprintf(" LIMIT $%d", qb.argId))
		qb.args = append(qb.args, limit)
		qb.argId++
		if offset > 0 {
			sb.WriteString(fmt.Sprintf(" OFFSET $%d", qb.argId))
			qb.args = append(qb.args, offset)
			qb.argId++
		}
	}
	return sb.String()
}

// Build возвращает WHERE clause (возможно пустой) и аргументы.
func (qb *queryBuilder) Build() (string, []interface{}) {
	whereClause := ""
	if len(qb.conditions) > 0 {
		whereClause = "WHERE " + strings.Join(qb.conditions, " AND ")
	}
	return whereClause, qb.args
}
