package usecase

import (
	"context"
	"fmt"
	"sharespace/internal/contextkeys"
	"sharespace/internal/core/domain"
	"sharespace/internal/core/port"
)

// DeleteOwnerListingsUseCase - шаг удаления аккаунта: убирает все объявления пользователя.
type DeleteOwnerListingsUseCase struct {
	storage  port.ListingStoragePort
	notifier listingChangeNotifier
}

func NewDeleteOwnerListingsUseCase(
	storage port.ListingStoragePort,
	publisher port.ListingEventsPublisherPort,
	cache port.FeaturedCachePort,
) *DeleteOwnerListingsUseCase {
	return &DeleteOwnerListingsUseCase{
		storage:  storage,
		notifier: newListingChangeNotifier(publisher, cache),
	}
}

func (uc *DeleteOwnerListingsUseCase) Execute(ctx context.Context, owner domain.Identity) (int, error) {
	if owner.IsAnonymous() {
		return 0, domain.ErrUnauthenticated
	}

	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "DeleteOwnerListings",
		"owner_id": owner.UserID,
	})
	ucLogger.Info("Use case started", nil)

	deleted, err := uc.storage.DeleteOwnerListings(ctx, owner.UserID)
	if err != nil {
		ucLogger.Error("Failed to delete owner listings", err, nil)
		return 0, fmt.Errorf("failed to delete owner listings: %w", err)
	}

	for _, listing := range deleted {
		uc.notifier.notify(ctx, ucLogger, domain.ListingDeleted, listing)
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"deleted": len(deleted)})
	return len(deleted), nil
}
