package usecase

import (
	"context"
	"fmt"
	"sharespace/internal/contextkeys"
	"sharespace/internal/core/domain"
	"sharespace/internal/core/port"

	"github.com/google/uuid"
)

type DeleteListingUseCase struct {
	storage  port.ListingStoragePort
	notifier listingChangeNotifier
}

func NewDeleteListingUseCase(
	storage port.ListingStoragePort,
	publisher port.ListingEventsPublisherPort,
	cache port.FeaturedCachePort,
) *DeleteListingUseCase {
	return &DeleteListingUseCase{
		storage:  storage,
		notifier: newListingChangeNotifier(publisher, cache),
	}
}

func (uc *DeleteListingUseCase) Execute(ctx context.Context, owner domain.Identity, listingID uuid.UUID) error {
	if owner.IsAnonymous() {
		return domain.ErrUnauthenticated
	}

	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":   "DeleteListing",
		"owner_id":   owner.UserID,
		"listing_id": listingID,
	})
	ucLogger.Info("Use case started", nil)

	listing, err := uc.storage.GetListing(ctx, listingID)
	if err != nil {
		ucLogger.Warn("Listing lookup failed", port.Fields{"error": err.Error()})
		return err
	}
	if !listing.IsOwnedBy(owner) {
		ucLogger.Warn("Attempt to delete a foreign listing", port.Fields{"actual_owner_id": listing.OwnerID})
		return domain.ErrNotListingOwner
	}

	if err := uc.storage.DeleteListing(ctx, listingID, owner.UserID); err != nil {
		ucLogger.Error("Failed to delete listing", err, nil)
		return fmt.Errorf("failed to delete listing: %w", err)
	}

	uc.notifier.notify(ctx, ucLogger, domain.ListingDeleted, *listing)

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}
