package port

import (
	"context"
	"sharespace/internal/core/domain"
)

// ListingEventsPublisherPort сообщает остальным экземплярам об изменении объявлений.
type ListingEventsPublisherPort interface {
	PublishListingChanged(ctx context.Context, event domain.ListingChangedEvent) error
}
