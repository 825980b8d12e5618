package usecases_port

import (
	"context"
	"sharespace/internal/core/domain"

	"github.com/google/uuid"
)

type CreateListingUseCasePort interface {
	Execute(ctx context.Context, owner domain.Identity, input domain.ListingInput) (*domain.Listing, error)
}

type UpdateListingUseCasePort interface {
	Execute(ctx context.Context, owner domain.Identity, listingID uuid.UUID, input domain.ListingInput) (*domain.Listing, error)
}

type DeleteListingUseCasePort interface {
	Execute(ctx context.Context, owner domain.Identity, listingID uuid.UUID) error
}

type DeleteOwnerListingsUseCasePort interface {
	// Execute возвращает число удаленных объявлений.
	Execute(ctx context.Context, owner domain.Identity) (int, error)
}

// HandleListingChangedUseCasePort обрабатывает событие из брокера.
type HandleListingChangedUseCasePort interface {
	Execute(ctx context.Context, event domain.ListingChangedEvent) error
}
