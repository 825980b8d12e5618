package usecase

import (
	"context"
	"sharespace/internal/core/domain"
	"sharespace/internal/core/port"
	"time"
)

// listingChangeNotifier сбрасывает локальный кэш и публикует событие после записи.
// Запись уже зафиксирована, поэтому ошибка публикации только логируется.
type listingChangeNotifier struct {
	publisher port.ListingEventsPublisherPort
	cache     port.FeaturedCachePort
	now       func() time.Time
}

func newListingChangeNotifier(publisher port.ListingEventsPublisherPort, cache port.FeaturedCachePort) listingChangeNotifier {
	return listingChangeNotifier{publisher: publisher, cache: cache, now: time.Now}
}

func (n listingChangeNotifier) notify(ctx context.Context, logger port.LoggerPort, change domain.ListingChange, listing domain.Listing) {
	n.cache.Invalidate()

	event := domain.NewListingChangedEvent(change, listing, n.now().UTC())
	if err := n.publisher.PublishListingChanged(ctx, event); err != nil {
		logger.Error("Failed to publish listing changed event", err, port.Fields{
			"event_id":   event.EventID,
			"change":     string(change),
			"listing_id": listing.ID,
		})
	}
}
