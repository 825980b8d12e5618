package postgres

import (
	"fmt"
	"sharespace/internal/core/domain"
	"strings"
)

const listingColumns = `id, owner_id, title, description, location, price, bedrooms, bathrooms,
	image_urls, available_from, available_until, created_at, updated_at`

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

// addDateFilter - грубая серверная выборка в режиме source. Строки с NULL
// в available_until отсекаются сравнением при заданном to.
func (qb *queryBuilder) addDateFilter(w domain.SearchWindow) {
	if w.From != nil {
		qb.addCondition("%s >= $%d", "available_from", w.From.Time())
	}
	if w.To != nil {
		qb.addCondition("%s <= $%d", "available_until", w.To.Time())
	}
}

// addCoverageFilter - надмножество предиката CoversWindow.
func (qb *queryBuilder) addCoverageFilter(w domain.SearchWindow) {
	if w.From != nil && w.To != nil && w.To.Before(*w.From) {
		qb.conditions = append(qb.conditions, "FALSE")
		return
	}
	start, end := w.Bounds()
	if start != nil {
		qb.addCondition("%s <= $%d", "available_from", start.Time())
	}
	if end != nil {
		qb.addCondition("(%[1]s IS NULL OR %[1]s >= $%[2]d)", "available_until", end.Time())
	}
}

func (qb *queryBuilder) build(limit int) (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(listingColumns)
	sb.WriteString(" FROM listings")
	if len(qb.conditions) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(qb.conditions, " AND "))
	}
	sb.WriteString(" ORDER BY created_at DESC, id DESC")

	args := qb.args
	if limit > 0 {
		sb.WriteString(fmt.Sprintf(" LIMIT $%d", qb.argId))
		args = append(args, limit)
	}
	return sb.String(), args
}

// buildListingQuery строит SELECT кандидатов. Порядок всегда от новых к старым.
func buildListingQuery(q domain.ListingQuery) (string, []interface{}) {
	qb := newQueryBuilder()

	if q.OwnerID != nil {
		qb.addCondition("%s = $%d", "owner_id", *q.OwnerID)
	}

	switch q.Mode {
	case domain.FilterModeCoverage:
		qb.addCoverageFilter(q.Window)
	default:
		qb.addDateFilter(q.Window)
	}

	return qb.build(q.Limit)
}
