package usecases_port

import (
	"context"
	"sharespace/internal/core/domain"

	"github.com/google/uuid"
)

type GetListingUseCasePort interface {
	Execute(ctx context.Context, listingID uuid.UUID) (*domain.Listing, error)
}

type GetFeaturedListingsUseCasePort interface {
	Execute(ctx context.Context) ([]domain.CardView, error)
}

type GetOwnerListingsUseCasePort interface {
	Execute(ctx context.Context, owner domain.Identity) ([]domain.CardView, error)
}
