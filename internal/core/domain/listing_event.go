package domain

import (
	"time"

	"github.com/google/uuid"
)

type ListingChange string

const (
	ListingCreated ListingChange = "created"
	ListingUpdated ListingChange = "updated"
	ListingDeleted ListingChange = "deleted"
)

// ListingChangedEvent публикуется после успешной записи в хранилище.
type ListingChangedEvent struct {
	EventID    uuid.UUID
	Change     ListingChange
	ListingID  uuid.UUID
	OwnerID    uuid.UUID
	OccurredAt time.Time
}

func NewListingChangedEvent(change ListingChange, l Listing, now time.Time) ListingChangedEvent {
	return ListingChangedEvent{
		EventID:    uuid.New(),
		Change:     change,
		ListingID:  l.ID,
		OwnerID:    l.OwnerID,
		OccurredAt: now,
	}
}
