package domain

import (
	"time"

	"github.com/google/uuid"
)

// Listing - объявление о субаренде в том виде, в каком его хранит хранилище.
type Listing struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Title       string
	Description string
	Location    string
	Price       float64 // в месяц
	Bedrooms    *int
	Bathrooms   *int
	ImageURLs   []string

	AvailableFrom  CalendarDate
	AvailableUntil *CalendarDate // nil - без даты окончания

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOwnedBy - проверка владельца перед изменением или удалением.
func (l Listing) IsOwnedBy(identity Identity) bool {
	return identity.UserID != uuid.Nil && l.OwnerID == identity.UserID
}

// ListingQuery - параметры выборки кандидатов из хранилища.
type ListingQuery struct {
	Window  SearchWindow
	Mode    FilterMode
	OwnerID *uuid.UUID // только объявления этого пользователя
	Limit   int        // 0 - без ограничения
}
