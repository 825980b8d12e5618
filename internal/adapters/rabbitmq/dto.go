package rabbitmq

import (
	"sharespace/internal/constants"
	"sharespace/internal/core/domain"
	"time"

	"github.com/google/uuid"
)

// ListingChangedDTO - тело сообщения в listings_exchange.
type ListingChangedDTO struct {
	EventID    uuid.UUID `json:"event_id"`
	Change     string    `json:"change"`
	ListingID  uuid.UUID `json:"listing_id"`
	OwnerID    uuid.UUID `json:"owner_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

func toListingChangedDTO(e domain.ListingChangedEvent) ListingChangedDTO {
	return ListingChangedDTO{
		EventID:    e.EventID,
		Change:     string(e.Change),
		ListingID:  e.ListingID,
		OwnerID:    e.OwnerID,
		OccurredAt: e.OccurredAt.UTC(),
	}
}

func (d ListingChangedDTO) toDomain() domain.ListingChangedEvent {
	return domain.ListingChangedEvent{
		EventID:    d.EventID,
		Change:     domain.ListingChange(d.Change),
		ListingID:  d.ListingID,
		OwnerID:    d.OwnerID,
		OccurredAt: d.OccurredAt,
	}
}

func routingKeyFor(change domain.ListingChange) string {
	switch change {
	case domain.ListingCreated:
		return constants.ListingCreatedRoutingKey
	case domain.ListingUpdated:
		return constants.ListingUpdatedRoutingKey
	case domain.ListingDeleted:
		return constants.ListingDeletedRoutingKey
	}
	return ""
}
