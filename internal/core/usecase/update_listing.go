package usecase

import (
	"context"
	"fmt"
	"sharespace/internal/contextkeys"
	"sharespace/internal/core/domain"
	"sharespace/internal/core/port"

	"github.com/google/uuid"
)

type UpdateListingUseCase struct {
	storage  port.ListingStoragePort
	rules    domain.ListingRules
	notifier listingChangeNotifier
}

func NewUpdateListingUseCase(
	storage port.ListingStoragePort,
	publisher port.ListingEventsPublisherPort,
	cache port.FeaturedCachePort,
	rules domain.ListingRules,
) *UpdateListingUseCase {
	return &UpdateListingUseCase{
		storage:  storage,
		rules:    rules,
		notifier: newListingChangeNotifier(publisher, cache),
	}
}

func (uc *UpdateListingUseCase) Execute(ctx context.Context, owner domain.Identity, listingID uuid.UUID, input domain.ListingInput) (*domain.Listing, error) {
	if owner.IsAnonymous() {
		return nil, domain.ErrUnauthenticated
	}

	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":   "UpdateListing",
		"owner_id":   owner.UserID,
		"listing_id": listingID,
	})
	ucLogger.Info("Use case started", nil)

	if err := input.Validate(uc.rules); err != nil {
		ucLogger.Warn("Listing input rejected", port.Fields{"reason": err.Error()})
		return nil, err
	}

	listing, err := uc.storage.GetListing(ctx, listingID)
	if err != nil {
		ucLogger.Warn("Listing lookup failed", port.Fields{"error": err.Error()})
		return nil, err
	}
	if !listing.IsOwnedBy(owner) {
		ucLogger.Warn("Attempt to edit a foreign listing", port.Fields{"actual_owner_id": listing.OwnerID})
		return nil, domain.ErrNotListingOwner
	}

	input.ApplyTo(listing, uc.notifier.now().UTC())
	if err := uc.storage.UpdateListing(ctx, *listing); err != nil {
		ucLogger.Error("Failed to update listing", err, nil)
		return nil, fmt.Errorf("failed to update listing: %w", err)
	}

	uc.notifier.notify(ctx, ucLogger, domain.ListingUpdated, *listing)

	ucLogger.Info("Use case finished successfully", nil)
	return listing, nil
}
