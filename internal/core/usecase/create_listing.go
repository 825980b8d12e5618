package usecase

import (
	"context"
	"fmt"
	"sharespace/internal/contextkeys"
	"sharespace/internal/core/domain"
	"sharespace/internal/core/port"
)

type CreateListingUseCase struct {
	storage  port.ListingStoragePort
	rules    domain.ListingRules
	notifier listingChangeNotifier
}

func NewCreateListingUseCase(
	storage port.ListingStoragePort,
	publisher port.ListingEventsPublisherPort,
	cache port.FeaturedCachePort,
	rules domain.ListingRules,
) *CreateListingUseCase {
	return &CreateListingUseCase{
		storage:  storage,
		rules:    rules,
		notifier: newListingChangeNotifier(publisher, cache),
	}
}

func (uc *CreateListingUseCase) Execute(ctx context.Context, owner domain.Identity, input domain.ListingInput) (*domain.Listing, error) {
	if owner.IsAnonymous() {
		return nil, domain.ErrUnauthenticated
	}

	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "CreateListing",
		"owner_id": owner.UserID,
	})
	ucLogger.Info("Use case started", nil)

	if err := input.Validate(uc.rules); err != nil {
		ucLogger.Warn("Listing input rejected", port.Fields{"reason": err.Error()})
		return nil, err
	}

	listing := input.NewListing(owner, uc.notifier.now().UTC())
	if err := uc.storage.CreateListing(ctx, listing); err != nil {
		ucLogger.Error("Failed to save listing", err, nil)
		return nil, fmt.Errorf("failed to create listing: %w", err)
	}

	uc.notifier.notify(ctx, ucLogger, domain.ListingCreated, listing)

	ucLogger.Info("Use case finished successfully", port.Fields{"listing_id": listing.ID})
	return &listing, nil
}
