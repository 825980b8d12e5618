package postgres

import (
	"fmt"
	"sharespace/internal/core/domain"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// listingRow - строка таблицы listings до проверки формы.
type listingRow struct {
	ID             uuid.UUID
	OwnerID        uuid.UUID
	Title          pgtype.Text
	Description    pgtype.Text
	Location       pgtype.Text
	Price          pgtype.Float8
	Bedrooms       pgtype.Int4
	Bathrooms      pgtype.Int4
	ImageURLs      []string
	AvailableFrom  pgtype.Date
	AvailableUntil pgtype.Date
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func scanListingRow(row pgx.Row) (listingRow, error) {
	var r listingRow
	err := row.Scan(
		&r.ID, &r.OwnerID, &r.Title, &r.Description, &r.Location, &r.Price,
		&r.Bedrooms, &r.Bathrooms, &r.ImageURLs, &r.AvailableFrom, &r.AvailableUntil,
		&r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

// toDomain проверяет обязательные поля и возвращает domain.ErrFetchFailure при несоответствии.
func (r listingRow) toDomain() (domain.Listing, error) {
	switch {
	case r.ID == uuid.Nil:
		return domain.Listing{}, fmt.Errorf("%w: listing row without id", domain.ErrFetchFailure)
	case !r.Title.Valid || r.Title.String == "":
		return domain.Listing{}, fmt.Errorf("%w: listing %s has empty title", domain.ErrFetchFailure, r.ID)
	case !r.Price.Valid || r.Price.Float64 < 0:
		return domain.Listing{}, fmt.Errorf("%w: listing %s has invalid price", domain.ErrFetchFailure, r.ID)
	case !r.AvailableFrom.Valid || r.AvailableFrom.InfinityModifier != pgtype.Finite:
		return domain.Listing{}, fmt.Errorf("%w: listing %s has no available_from", domain.ErrFetchFailure, r.ID)
	}

	l := domain.Listing{
		ID:            r.ID,
		OwnerID:       r.OwnerID,
		Title:         r.Title.String,
		Description:   r.Description.String,
		Location:      r.Location.String,
		Price:         r.Price.Float64,
		Bedrooms:      intPtr(r.Bedrooms),
		Bathrooms:     intPtr(r.Bathrooms),
		ImageURLs:     r.ImageURLs,
		AvailableFrom: domain.CalendarDateFromTime(r.AvailableFrom.Time),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
	if l.ImageURLs == nil {
		l.ImageURLs = []string{}
	}
	// infinity в available_until трактуем как бессрочное объявление
	if r.AvailableUntil.Valid && r.AvailableUntil.InfinityModifier == pgtype.Finite {
		until := domain.CalendarDateFromTime(r.AvailableUntil.Time)
		l.AvailableUntil = &until
	}
	return l, nil
}

func intPtr(v pgtype.Int4) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int32)
	return &n
}

func nullableDate(d *domain.CalendarDate) interface{} {
	if d == nil {
		return nil
	}
	return d.Time()
}
