package usecase

import (
	"context"
	"sharespace/internal/contextkeys"
	"sharespace/internal/core/domain"
	"sharespace/internal/core/port"
)

// HandleListingChangedUseCase реагирует на изменения, сделанные любым экземпляром сервиса.
type HandleListingChangedUseCase struct {
	cache port.FeaturedCachePort
}

func NewHandleListingChangedUseCase(cache port.FeaturedCachePort) *HandleListingChangedUseCase {
	return &HandleListingChangedUseCase{cache: cache}
}

func (uc *HandleListingChangedUseCase) Execute(ctx context.Context, event domain.ListingChangedEvent) error {
	uc.cache.Invalidate()

	contextkeys.LoggerFromContext(ctx).Debug("Featured cache invalidated", port.Fields{
		"use_case":   "HandleListingChanged",
		"event_id":   event.EventID,
		"change":     string(event.Change),
		"listing_id": event.ListingID,
	})
	return nil
}
