package port

import (
	"context"
	"sharespace/internal/core/domain"

	"github.com/google/uuid"
)

// ListingStoragePort - контракт хранилища объявлений.
type ListingStoragePort interface {
	// FindListings возвращает кандидатов, отсортированных от новых к старым.
	// Ошибка выборки или строка неверной формы оборачивают domain.ErrFetchFailure.
	FindListings(ctx context.Context, query domain.ListingQuery) ([]domain.Listing, error)

	// GetListing возвращает domain.ErrListingNotFound, если объявления нет.
	GetListing(ctx context.Context, id uuid.UUID) (*domain.Listing, error)
	CreateListing(ctx context.Context, listing domain.Listing) error

	// UpdateListing и DeleteListing меняют строку, только если она принадлежит владельцу,
	// иначе возвращают domain.ErrListingNotFound.
	UpdateListing(ctx context.Context, listing domain.Listing) error
	DeleteListing(ctx context.Context, id, ownerID uuid.UUID) error

	// DeleteOwnerListings удаляет все объявления пользователя и возвращает их.
	DeleteOwnerListings(ctx context.Context, ownerID uuid.UUID) ([]domain.Listing, error)
}
