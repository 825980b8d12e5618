package usecase

import (
	"context"
	"sharespace/internal/contextkeys"
	"sharespace/internal/core/domain"
	"sharespace/internal/core/port"

	"github.com/google/uuid"
)

type GetListingUseCase struct {
	storage port.ListingStoragePort
}

func NewGetListingUseCase(storage port.ListingStoragePort) *GetListingUseCase {
	return &GetListingUseCase{storage: storage}
}

func (uc *GetListingUseCase) Execute(ctx context.Context, listingID uuid.UUID) (*domain.Listing, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":   "GetListing",
		"listing_id": listingID,
	})

	listing, err := uc.storage.GetListing(ctx, listingID)
	if err != nil {
		ucLogger.Warn("Failed to get listing", port.Fields{"error": err.Error()})
		return nil, err
	}
	return listing, nil
}
