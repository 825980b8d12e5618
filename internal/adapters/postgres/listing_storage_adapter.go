package postgres

import (
	"context"
	"errors"
	"fmt"
	"sharespace/internal/contextkeys"
	"sharespace/internal/core/domain"
	"sharespace/internal/core/port"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ListingStorageAdapter реализует ListingStoragePort для PostgreSQL.
type ListingStorageAdapter struct {
	pool *pgxpool.Pool
}

func NewListingStorageAdapter(pool *pgxpool.Pool) (*ListingStorageAdapter, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &ListingStorageAdapter{pool: pool}, nil
}

func (a *ListingStorageAdapter) FindListings(ctx context.Context, q domain.ListingQuery) ([]domain.Listing, error) {
	repoLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "ListingStorageAdapter",
		"method":    "FindListings",
	})

	query, args := buildListingQuery(q)

	rows, err := a.pool.Query(ctx, query, args...)
	if err != nil {
		repoLogger.Error("Failed to query listings", err, port.Fields{"query": query})
		return nil, fmt.Errorf("%w: failed to query listings: %w", domain.ErrFetchFailure, err)
	}
	defer rows.Close()

	listings := make([]domain.Listing, 0)
	for rows.Next() {
		row, err := scanListingRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to scan listing row: %w", domain.ErrFetchFailure, err)
		}
		listing, err := row.toDomain()
		if err != nil {
			repoLogger.Error("Listing row failed shape check", err, nil)
			return nil, err
		}
		listings = append(listings, listing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: error during rows iteration: %w", domain.ErrFetchFailure, err)
	}

	repoLogger.Debug("Listings fetched", port.Fields{"count": len(listings)})
	return listings, nil
}

func (a *ListingStorageAdapter) GetListing(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	query := "SELECT " + listingColumns + " FROM listings WHERE id = $1"

	row, err := scanListingRow(a.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrListingNotFound
		}
		return nil, fmt.Errorf("%w: failed to get listing %s: %w", domain.ErrFetchFailure, id, err)
	}

	listing, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

func (a *ListingStorageAdapter) CreateListing(ctx context.Context, l domain.Listing) error {
	query := `
		INSERT INTO listings (` + listingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := a.pool.Exec(ctx, query,
		l.ID, l.OwnerID, l.Title, l.Description, l.Location, l.Price, l.Bedrooms, l.Bathrooms,
		l.ImageURLs, l.AvailableFrom.Time(), nullableDate(l.AvailableUntil), l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("listing %s already exists: %w", l.ID, err)
		}
		return fmt.Errorf("failed to insert listing: %w", err)
	}
	return nil
}

// Запросы изменения ограничены владельцем: если объявление сменило владельца
// после проверки в use case, строка не найдется и вернется ErrListingNotFound.
const (
	updateListingQuery = `
		UPDATE listings SET
			title = $2, description = $3, location = $4, price = $5, bedrooms = $6, bathrooms = $7,
			image_urls = $8, available_from = $9, available_until = $10, updated_at = $11
		WHERE id = $1 AND owner_id = $12`

	deleteListingQuery = "DELETE FROM listings WHERE id = $1 AND owner_id = $2"
)

func (a *ListingStorageAdapter) UpdateListing(ctx context.Context, l domain.Listing) error {
	tag, err := a.pool.Exec(ctx, updateListingQuery,
		l.ID, l.Title, l.Description, l.Location, l.Price, l.Bedrooms, l.Bathrooms,
		l.ImageURLs, l.AvailableFrom.Time(), nullableDate(l.AvailableUntil), l.UpdatedAt, l.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("failed to update listing: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrListingNotFound
	}
	return nil
}

func (a *ListingStorageAdapter) DeleteListing(ctx context.Context, id, ownerID uuid.UUID) error {
	tag, err := a.pool.Exec(ctx, deleteListingQuery, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete listing: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrListingNotFound
	}
	return nil
}

// DeleteOwnerListings возвращает только идентификаторы удаленных объявлений и владельца.
func (a *ListingStorageAdapter) DeleteOwnerListings(ctx context.Context, ownerID uuid.UUID) ([]domain.Listing, error) {
	tx, err := a.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	rows, err := tx.Query(ctx, "DELETE FROM listings WHERE owner_id = $1 RETURNING id", ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete owner listings: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("failed to collect deleted ids: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	deleted := make([]domain.Listing, len(ids))
	for i, id := range ids {
		deleted[i] = domain.Listing{ID: id, OwnerID: ownerID}
	}
	return deleted, nil
}
